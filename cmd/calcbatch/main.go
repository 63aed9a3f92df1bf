package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/graeme-hill/calcstuff-go/lib"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errLinesFailed = errors.New("one or more expressions failed")

type config struct {
	LogLevel      string
	Postfix       bool
	HistoryDriver string
	HistoryDSN    string
}

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errLinesFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout io.Writer, stderr io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var configFile string

	cmd := &cobra.Command{
		Use:           "calcbatch [file or dir]...",
		Short:         "Evaluate files of arithmetic expressions, one per line",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("Reading config %s: %w", configFile, err)
				}
			}
			cfg := config{
				LogLevel:      v.GetString("log-level"),
				Postfix:       v.GetBool("postfix"),
				HistoryDriver: v.GetString("history.driver"),
				HistoryDSN:    v.GetString("history.dsn"),
			}
			logger := newLogger(stderr, cfg.LogLevel)
			return run(cmd.Context(), cfg, args, stdin, stdout, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "YAML config file.")
	flags.String("log-level", "info", "Log level (debug, info, warn, error).")
	flags.Bool("postfix", false, "Print the postfix form of each expression.")
	flags.String("history-driver", lib.DriverPostgres, "History database driver (postgres, sqlite3).")
	flags.String("history-dsn", "", "History database DSN. Results are only recorded when set.")

	_ = v.BindPFlag("log-level", flags.Lookup("log-level"))
	_ = v.BindPFlag("postfix", flags.Lookup("postfix"))
	_ = v.BindPFlag("history.driver", flags.Lookup("history-driver"))
	_ = v.BindPFlag("history.dsn", flags.Lookup("history-dsn"))

	return cmd
}

func newLogger(w io.Writer, logLevel string) zerolog.Logger {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().Timestamp().Str("service", "calcbatch").Logger().
		Level(level)
}

func run(ctx context.Context, cfg config, args []string, stdin io.Reader, out io.Writer, logger zerolog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	batches, err := readBatches(args, stdin)
	if err != nil {
		return err
	}

	failed := 0
	for _, b := range batches {
		printBatch(out, b, cfg.Postfix)
		failed += b.Failed()
		logger.Debug().Str("batch", b.Name).Int("results", len(b.Results)).Int("failed", b.Failed()).Msg("evaluated")
	}

	if cfg.HistoryDSN != "" {
		err = record(ctx, cfg, batches, logger)
		if err != nil {
			return err
		}
	}

	if failed > 0 {
		logger.Warn().Int("failed", failed).Msg("batch finished with errors")
		return errLinesFailed
	}
	return nil
}

func readBatches(args []string, stdin io.Reader) ([]lib.Batch, error) {
	if len(args) == 0 {
		b, err := lib.EvaluateLines("stdin", stdin)
		if err != nil {
			return nil, err
		}
		return []lib.Batch{b}, nil
	}

	batches := []lib.Batch{}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			bs, err := lib.ReadBatchesFromDir(arg)
			if err != nil {
				return nil, err
			}
			batches = append(batches, bs...)
			continue
		}
		b, err := lib.ReadBatchFromFile(arg)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, nil
}

func printBatch(out io.Writer, b lib.Batch, showPostfix bool) {
	for _, res := range b.Results {
		suffix := ""
		if showPostfix && res.Postfix != nil {
			suffix = fmt.Sprintf(" [%s]", res.Postfix)
		}
		if res.Err != nil {
			fmt.Fprintf(out, "%s:%d: %s: Error: %s%s\n", b.Name, res.Line, res.Input, res.Err, suffix)
		} else {
			fmt.Fprintf(out, "%s:%d: %s = %d%s\n", b.Name, res.Line, res.Input, res.Value, suffix)
		}
	}
}

func record(ctx context.Context, cfg config, batches []lib.Batch, logger zerolog.Logger) error {
	history, err := lib.OpenHistory(ctx, cfg.HistoryDriver, cfg.HistoryDSN)
	if err != nil {
		return err
	}
	defer history.Close()

	runID := lib.NewRunID()
	for _, b := range batches {
		err = history.RecordBatch(ctx, runID, b)
		if err != nil {
			return err
		}
	}
	logger.Info().Str("run_id", runID).Str("driver", cfg.HistoryDriver).Msg("recorded history")
	return nil
}

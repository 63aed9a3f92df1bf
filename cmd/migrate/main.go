package main

import (
	"context"
	"flag"
	"os"

	"github.com/graeme-hill/calcstuff-go/lib"
	"github.com/rs/zerolog"
)

func main() {
	driver := flag.String("driver", lib.DriverPostgres, "history database driver (postgres, sqlite3)")
	dsn := flag.String("dsn", "", "history database DSN")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("service", "migrate").Logger()

	if *dsn == "" {
		logger.Fatal().Msg("-dsn is required")
	}

	ctx := context.Background()
	history, err := lib.OpenHistory(ctx, *driver, *dsn)
	if err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}
	defer history.Close()

	logger.Info().Str("driver", *driver).Msg("history schema up to date")
}

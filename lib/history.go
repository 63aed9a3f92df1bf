package lib

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// History records batch results in a SQL database.
type History struct {
	db     *sql.DB
	driver string
}

// Entry is one recorded evaluation. Result is only valid when ErrorKind is
// empty.
type Entry struct {
	ID          string
	RunID       string
	Source      string
	Line        int
	Expression  string
	Postfix     string
	Result      int64
	ErrorKind   string
	EvaluatedAt time.Time
}

func OpenHistory(ctx context.Context, driver string, dsn string) (*History, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("Unsupported history driver '%s'", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "opening history")
	}
	if driver == DriverSQLite {
		// Keeps ":memory:" databases on one connection.
		db.SetMaxOpenConns(1)
	}

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "connecting to history")
	}

	err = RunMigrations(ctx, db, driver)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &History{db: db, driver: driver}, nil
}

func (h *History) Close() error {
	return h.db.Close()
}

// NewRunID returns an id grouping the results of one batch run.
func NewRunID() string {
	return uuid.NewString()
}

func (h *History) Record(ctx context.Context, runID string, source string, res Result) error {
	var value sql.NullInt64
	var kind sql.NullString
	if res.Err != nil {
		kind = sql.NullString{String: errorKindName(res.Err), Valid: true}
	} else {
		value = sql.NullInt64{Int64: res.Value, Valid: true}
	}

	query := "INSERT INTO evaluations " +
		"(id, run_id, source, line, expression, postfix, result, error_kind, evaluated_at) " +
		"VALUES (" + placeholders(h.driver, 9) + ")"
	_, err := h.db.ExecContext(ctx, query,
		uuid.NewString(),
		runID,
		source,
		res.Line,
		res.Input,
		res.Postfix.String(),
		value,
		kind,
		time.Now().UnixNano())
	return errors.Wrapf(err, "recording %s:%d", source, res.Line)
}

// RecordBatch records every result of b under runID.
func (h *History) RecordBatch(ctx context.Context, runID string, b Batch) error {
	for _, res := range b.Results {
		if err := h.Record(ctx, runID, b.Name, res); err != nil {
			return err
		}
	}
	return nil
}

// Run lists the entries of one run ordered by source then line.
func (h *History) Run(ctx context.Context, runID string) ([]Entry, error) {
	query := "SELECT id, run_id, source, line, expression, postfix, result, error_kind, evaluated_at " +
		"FROM evaluations WHERE run_id = " + placeholders(h.driver, 1) + " ORDER BY source, line"
	rows, err := h.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, errors.Wrap(err, "querying history")
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var value sql.NullInt64
		var kind sql.NullString
		var at int64
		err = rows.Scan(&e.ID, &e.RunID, &e.Source, &e.Line, &e.Expression, &e.Postfix, &value, &kind, &at)
		if err != nil {
			return nil, errors.Wrap(err, "scanning history")
		}
		e.Result = value.Int64
		e.ErrorKind = kind.String
		e.EvaluatedAt = time.Unix(0, at)
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "querying history")
	}
	return entries, nil
}

func errorKindName(err error) string {
	if kind, ok := KindOf(err); ok {
		return kind.String()
	}
	return "Unknown"
}

// placeholders renders n positional parameters in the driver's syntax.
func placeholders(driver string, n int) string {
	ps := make([]string, n)
	for i := range ps {
		if driver == DriverPostgres {
			ps[i] = fmt.Sprintf("$%d", i+1)
		} else {
			ps[i] = "?"
		}
	}
	return strings.Join(ps, ", ")
}

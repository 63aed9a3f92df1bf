package lib

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

type Migration struct {
	Name    string
	UpSQL   string
	DownSQL string
}

// ReadMigrations loads NAME.up.sql / NAME.down.sql pairs from dir in fsys,
// sorted by name.
func ReadMigrations(fsys fs.FS, dir string) ([]*Migration, error) {
	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrap(err, "reading migrations")
	}

	migrations := map[string]*Migration{}

	withMigration := func(name string) *Migration {
		m, ok := migrations[name]
		if !ok {
			m = &Migration{
				Name: name,
			}
			migrations[name] = m
		}
		return m
	}

	// Load all migration files into migrations map
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}
		bytes, err := fs.ReadFile(fsys, path.Join(dir, file.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "reading migration %s", file.Name())
		}

		name, isUp := parseMigrationFileName(file.Name())
		migration := withMigration(name)
		if isUp {
			migration.UpSQL = string(bytes)
		} else {
			migration.DownSQL = string(bytes)
		}
	}

	// Sort keys lexicographically
	keys := []string{}
	for k := range migrations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Make result slice
	result := []*Migration{}
	for _, k := range keys {
		result = append(result, migrations[k])
	}
	return result, nil
}

func parseMigrationFileName(fileName string) (string, bool) {
	return getMigrationName(fileName), getUpness(fileName)
}

func getMigrationName(fileName string) string {
	dotParts := strings.Split(fileName, ".")
	return dotParts[0]
}

func getUpness(fileName string) bool {
	return !strings.HasSuffix(fileName, ".down.sql")
}

// RunMigrations applies the embedded history schema migrations that are not
// yet recorded in schema_migrations.
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	migrations, err := ReadMigrations(embeddedMigrations, "migrations")
	if err != nil {
		return err
	}

	err = requireMigrationsTable(ctx, db)
	if err != nil {
		return err
	}

	applied, err := appliedMigrations(ctx, db)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if applied[migration.Name] {
			continue
		}
		err = execMigration(ctx, db, driver, migration)
		if err != nil {
			return err
		}
	}

	return nil
}

func requireMigrationsTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx,
		"CREATE TABLE IF NOT EXISTS schema_migrations (name VARCHAR(255) PRIMARY KEY, applied_at BIGINT NOT NULL)")
	return errors.Wrap(err, "creating schema_migrations")
}

func appliedMigrations(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM schema_migrations")
	if err != nil {
		return nil, errors.Wrap(err, "listing applied migrations")
	}
	defer rows.Close()

	applied := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "listing applied migrations")
		}
		applied[name] = true
	}
	return applied, errors.Wrap(rows.Err(), "listing applied migrations")
}

func execMigration(ctx context.Context, db *sql.DB, driver string, migration *Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrapf(err, "migration %s", migration.Name)
	}

	_, err = tx.ExecContext(ctx, migration.UpSQL)
	if err != nil {
		_ = tx.Rollback()
		return errors.Wrapf(err, "migration %s", migration.Name)
	}

	query := "INSERT INTO schema_migrations (name, applied_at) VALUES (" +
		placeholders(driver, 2) + ")"
	_, err = tx.ExecContext(ctx, query, migration.Name, time.Now().UnixNano())
	if err != nil {
		_ = tx.Rollback()
		return errors.Wrapf(err, "recording migration %s", migration.Name)
	}

	return errors.Wrapf(tx.Commit(), "migration %s", migration.Name)
}

// Package storage opens the local SQLite database, applies the embedded
// goose migrations and imports JSON snapshots into the key/value table.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/autoprime/internal/migrations"
	"github.com/dmitrijs2005/autoprime/internal/repositories/kv"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Database bundles the open handle with the repository built on it.
type Database struct {
	DB *sql.DB
	KV kv.Repository
}

func (d *Database) Close() error {
	return d.DB.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// InitDatabase opens dsn with the pure-Go sqlite driver and migrates it.
// SQLite allows one writer at a time, so the pool is capped at one
// connection; this also keeps ":memory:" databases on a single handle.
func InitDatabase(ctx context.Context, dsn string) (*Database, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Database{DB: db, KV: kv.NewSQLiteRepository(db)}, nil
}

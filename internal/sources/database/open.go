package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// ErrUnknownDriver is returned for driver names other than postgres or sqlite.
var ErrUnknownDriver = errors.New("database: unknown driver")

// Supported driver names.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects to dsn with the dialect matching driver.
func Open(driver, dsn string) (*bun.DB, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, errors.New("database: dsn required")
	}

	switch NormalizeDriver(driver) {
	case DriverPostgres:
		sqldb, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("database: open postgres: %w", err)
		}
		return bun.NewDB(sqldb, pgdialect.New()), nil
	case DriverSQLite:
		sqldb, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("database: open sqlite: %w", err)
		}
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

// NormalizeDriver maps driver aliases to the supported names.
func NormalizeDriver(driver string) string {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "postgres", "postgresql", "pg":
		return DriverPostgres
	case "sqlite", "sqlite3":
		return DriverSQLite
	default:
		return strings.ToLower(strings.TrimSpace(driver))
	}
}

// Migrate creates the content and comment tables when missing.
func Migrate(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*categoryModel)(nil),
		(*authorModel)(nil),
		(*articleModel)(nil),
		(*breakingNewsModel)(nil),
		(*advertisementModel)(nil),
		(*CommentModel)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("database: create table: %w", err)
		}
	}
	return nil
}

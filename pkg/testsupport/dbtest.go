// Package testsupport provides shared helpers for database backed tests.
package testsupport

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-newsroom/internal/sources/database"
	"github.com/goliatone/go-newsroom/internal/sources/memory"
)

// NewSQLiteMemoryDB opens a named shared-cache in-memory sqlite database and
// creates the newsroom tables. Distinct names give isolated databases.
func NewSQLiteMemoryDB(name string) (*bun.DB, error) {
	db, err := database.Open(database.DriverSQLite, "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewSeededSQLiteDB is NewSQLiteMemoryDB loaded with the sample catalog
// dated relative to now.
func NewSeededSQLiteDB(name string, now time.Time) (*bun.DB, error) {
	db, err := NewSQLiteMemoryDB(name)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Seed(ctx, db, memory.SampleCatalog(now)); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

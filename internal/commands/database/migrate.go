// Package databasecmd prepares the relational content tier.
package databasecmd

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-newsroom/internal/commands"
	"github.com/goliatone/go-newsroom/internal/sources/database"
	"github.com/goliatone/go-newsroom/internal/sources/memory"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

const migrateMessageType = "newsroom.database.migrate"

// MigrateCommand creates the newsroom tables. With Seed set it also loads
// the sample catalog, skipping rows that already exist.
type MigrateCommand struct {
	Seed bool `json:"seed,omitempty"`
}

// Type implements command.Message.
func (MigrateCommand) Type() string { return migrateMessageType }

// Validate implements command.Message.
func (MigrateCommand) Validate() error { return nil }

// Result reports what a MigrateCommand changed.
type Result struct {
	Seeded     bool
	Articles   int
	Categories int
}

// Option configures the migrate handler.
type Option func(*migrateHandler)

// WithLogger sets the handler logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(h *migrateHandler) {
		h.logger = logger
	}
}

// WithClock dates the seeded sample catalog.
func WithClock(now func() time.Time) Option {
	return func(h *migrateHandler) {
		if now != nil {
			h.now = now
		}
	}
}

// WithResult receives the outcome after a successful run.
func WithResult(fn func(Result)) Option {
	return func(h *migrateHandler) {
		h.report = fn
	}
}

type migrateHandler struct {
	db     *bun.DB
	logger interfaces.Logger
	now    func() time.Time
	report func(Result)
}

// NewMigrateHandler returns a handler bound to db.
func NewMigrateHandler(db *bun.DB, opts ...Option) *commands.Handler[MigrateCommand] {
	h := &migrateHandler{db: db, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return commands.NewHandler(command.CommandFunc[MigrateCommand](h.execute),
		commands.WithLogger[MigrateCommand](h.logger),
		commands.WithOperation[MigrateCommand]("database.migrate"),
	)
}

func (h *migrateHandler) execute(ctx context.Context, msg MigrateCommand) error {
	if err := database.Migrate(ctx, h.db); err != nil {
		return err
	}

	result := Result{}
	if msg.Seed {
		catalog := memory.SampleCatalog(h.now())
		if err := database.Seed(ctx, h.db, catalog); err != nil {
			return err
		}
		result = Result{Seeded: true, Articles: len(catalog.Articles), Categories: len(catalog.Categories)}
	}
	if h.report != nil {
		h.report(result)
	}
	return nil
}

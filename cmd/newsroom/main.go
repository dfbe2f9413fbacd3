// Command newsroom serves the newsroom read API and manages the database tier.
//
// Usage:
//
//	newsroom [flags] [serve|migrate|seed]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	newsroom "github.com/goliatone/go-newsroom"
	"github.com/goliatone/go-newsroom/internal/commands"
	databasecmd "github.com/goliatone/go-newsroom/internal/commands/database"
	"github.com/goliatone/go-newsroom/internal/di"
	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/internal/sources/database"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("newsroom: %v", err)
	}
}

// envFiles collects repeated or comma separated -env values.
type envFiles []string

func (e *envFiles) String() string { return strings.Join(*e, ",") }

func (e *envFiles) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*e = append(*e, part)
		}
	}
	return nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("newsroom", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a YAML config file")
	addr := fs.String("addr", "", "Listen address (overrides config)")
	var env envFiles
	fs.Var(&env, "env", "Dotenv file to load; repeat or comma separate (default .env)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(env) == 0 {
		env = envFiles{".env"}
	}

	cfg, err := newsroom.LoadConfig(*configPath, env...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *addr != "" {
		cfg.HTTP.Addr = *addr
	}

	command := fs.Arg(0)
	if command == "" {
		command = "serve"
	}

	switch command {
	case "serve":
		return serve(ctx, cfg, stdout)
	case "migrate":
		return migrate(ctx, cfg, stdout, false)
	case "seed":
		return migrate(ctx, cfg, stdout, true)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func migrate(ctx context.Context, cfg newsroom.Config, stdout io.Writer, seed bool) error {
	if !cfg.Sources.Database.Configured() {
		return errors.New("database dsn is not configured")
	}
	provider, err := di.NewLoggerProvider(cfg)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Sources.Database.Driver, cfg.Sources.Database.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	var result databasecmd.Result
	handler := databasecmd.NewMigrateHandler(db,
		databasecmd.WithLogger(commands.CommandLogger(provider, "database")),
		databasecmd.WithResult(func(r databasecmd.Result) { result = r }),
	)
	if err := handler.Execute(ctx, databasecmd.MigrateCommand{Seed: seed}); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "database schema is up to date")
	if result.Seeded {
		fmt.Fprintf(stdout, "seeded %d articles and %d categories\n", result.Articles, result.Categories)
	}
	return nil
}

func serve(ctx context.Context, cfg newsroom.Config, stdout io.Writer) error {
	module, err := newsroom.New(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Close()

	handler, err := module.Handler()
	if err != nil {
		return fmt.Errorf("build handler: %w", err)
	}

	listener, err := net.Listen("tcp", cfg.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.HTTP.Addr, err)
	}

	logger := logging.ModuleLogger(module.Container().LoggerProvider(), "newsroom.cmd")
	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()
	logger.Info("server.started", "addr", listener.Addr().String())
	fmt.Fprintf(stdout, "listening on %s\n", listener.Addr())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server.stopped")

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

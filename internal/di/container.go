package di

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-newsroom/internal/comments"
	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/internal/logging/console"
	"github.com/goliatone/go-newsroom/internal/logging/gologger"
	"github.com/goliatone/go-newsroom/internal/resolver"
	"github.com/goliatone/go-newsroom/internal/richtext"
	"github.com/goliatone/go-newsroom/internal/runtimeconfig"
	"github.com/goliatone/go-newsroom/internal/sources"
	"github.com/goliatone/go-newsroom/internal/sources/contentful"
	"github.com/goliatone/go-newsroom/internal/sources/database"
	"github.com/goliatone/go-newsroom/internal/sources/memory"
	"github.com/goliatone/go-newsroom/internal/sources/postgrest"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

const defaultHTTPTimeout = 10 * time.Second

// Container wires module dependencies from a validated Config.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logger         interfaces.Logger
	httpClient     *http.Client
	now            func() time.Time

	bunDB   *bun.DB
	ownsDB  bool
	catalog *memory.Catalog

	postgrestClient *postgrest.Client
	tiers           []sources.Adapter
	commentStores   []comments.Store
	renderer        *richtext.Renderer

	resolverSvc resolver.Service
	commentsSvc comments.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithHTTPClient sets the client shared by the remote tiers.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

// WithBunDB supplies the database tier connection. The container does not
// close connections it did not open.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithTiers replaces the content tiers, in priority order.
func WithTiers(tiers ...sources.Adapter) Option {
	return func(c *Container) {
		c.tiers = tiers
	}
}

// WithCommentStore puts store ahead of the configured comment backends.
func WithCommentStore(store comments.Store) Option {
	return func(c *Container) {
		if store != nil {
			c.commentStores = append(c.commentStores, store)
		}
	}
}

// WithClock overrides time.Now for ad eligibility and generated records.
func WithClock(now func() time.Time) Option {
	return func(c *Container) {
		c.now = now
	}
}

// WithCatalog replaces the sample catalog served by the memory tier and
// used to seed the database tier.
func WithCatalog(catalog memory.Catalog) Option {
	return func(c *Container) {
		c.catalog = &catalog
	}
}

// WithRenderer overrides the article body renderer.
func WithRenderer(renderer *richtext.Renderer) Option {
	return func(c *Container) {
		c.renderer = renderer
	}
}

// NewContainer validates cfg and builds the read and write services.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.now == nil {
		c.now = time.Now
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if c.renderer == nil {
		c.renderer = richtext.New(richtext.Options{})
	}
	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if err := c.configureDatabase(context.Background()); err != nil {
		return nil, err
	}
	c.configureSources()
	c.configureComments()

	c.logger.Info("container.configured",
		"tiers", describeTiers(c.resolverSvc.Tiers()),
		"comments", c.commentsSvc.Available(),
	)
	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider == nil {
		provider, err := NewLoggerProvider(c.Config)
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	}
	c.logger = logging.ModuleLogger(c.loggerProvider, "newsroom.di")
	return nil
}

// NewLoggerProvider builds the provider named by cfg.Logging. It returns nil
// when the logger feature is off.
func NewLoggerProvider(cfg runtimeconfig.Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return nil, nil
	}
	logCfg := cfg.Logging
	switch strings.ToLower(strings.TrimSpace(logCfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     logCfg.Level,
			Format:    logCfg.Format,
			AddSource: logCfg.AddSource,
			Focus:     logCfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return console.NewProvider(console.Options{
			MinLevel: console.ParseLevel(logCfg.Level),
		}), nil
	}
}

func (c *Container) configureDatabase(ctx context.Context) error {
	dbCfg := c.Config.Sources.Database
	if c.bunDB == nil && dbCfg.Configured() {
		db, err := database.Open(dbCfg.Driver, dbCfg.DSN)
		if err != nil {
			return fmt.Errorf("di: open database tier: %w", err)
		}
		c.bunDB = db
		c.ownsDB = true
	}
	if c.bunDB == nil {
		return nil
	}
	if dbCfg.AutoMigrate || dbCfg.Seed {
		if err := database.Migrate(ctx, c.bunDB); err != nil {
			return errors.Join(fmt.Errorf("di: migrate database tier: %w", err), c.Close())
		}
	}
	if dbCfg.Seed {
		if err := database.Seed(ctx, c.bunDB, c.sampleCatalog()); err != nil {
			return errors.Join(fmt.Errorf("di: seed database tier: %w", err), c.Close())
		}
		c.logger.Info("database.seeded", "driver", database.NormalizeDriver(dbCfg.Driver))
	}
	return nil
}

func (c *Container) sampleCatalog() memory.Catalog {
	if c.catalog == nil {
		catalog := memory.SampleCatalog(c.now())
		c.catalog = &catalog
	}
	return *c.catalog
}

func (c *Container) configureSources() {
	srcCfg := c.Config.Sources
	c.postgrestClient = postgrest.NewClient(
		postgrest.Config{URL: srcCfg.PostgREST.URL, APIKey: srcCfg.PostgREST.AnonKey},
		postgrest.WithHTTPClient(c.httpClient),
		postgrest.WithLogger(logging.SourceLogger(c.loggerProvider, postgrest.Name)),
	)

	if c.tiers == nil {
		cmsCfg := contentful.Config{
			SpaceID:     srcCfg.Contentful.SpaceID,
			AccessToken: srcCfg.Contentful.AccessToken,
			Environment: srcCfg.Contentful.Environment,
			BaseURL:     srcCfg.Contentful.BaseURL,
			Locale:      srcCfg.Contentful.Locale,
		}
		c.tiers = []sources.Adapter{
			contentful.New(cmsCfg,
				contentful.WithHTTPClient(c.httpClient),
				contentful.WithLogger(logging.SourceLogger(c.loggerProvider, contentful.Name)),
			),
			postgrest.NewAdapter(c.postgrestClient),
			database.NewAdapter(c.bunDB),
			memory.New(srcCfg.Mock.Enabled,
				memory.WithCatalog(c.sampleCatalog()),
				memory.WithClock(c.now),
			),
		}
	}

	c.resolverSvc = resolver.NewService(c.tiers,
		resolver.WithLogger(logging.ResolverLogger(c.loggerProvider)),
		resolver.WithTimeout(c.Config.Resolver.Timeout),
		resolver.WithClock(c.now),
	)
}

func (c *Container) configureComments() {
	var stores []comments.Store
	if c.Config.Features.Comments {
		stores = append(stores, c.commentStores...)
		stores = append(stores, comments.NewPostgRESTStore(c.postgrestClient))
		if c.bunDB != nil {
			stores = append(stores, comments.NewDatabaseStore(c.bunDB, c.now))
		}
		if c.Config.Comments.MemoryFallback {
			stores = append(stores, comments.NewMemoryStore(c.now))
		}
	}
	c.commentsSvc = comments.NewService(stores,
		comments.WithLogger(logging.CommentsLogger(c.loggerProvider)),
	)
}

func describeTiers(statuses []resolver.TierStatus) string {
	parts := make([]string, 0, len(statuses))
	for _, status := range statuses {
		state := "off"
		if status.Configured {
			state = "on"
		}
		parts = append(parts, status.Name+"="+state)
	}
	return strings.Join(parts, ",")
}

// Reader returns the tiered read service.
func (c *Container) Reader() resolver.Service {
	return c.resolverSvc
}

// Comments returns the comment write service.
func (c *Container) Comments() comments.Service {
	return c.commentsSvc
}

// Renderer returns the article body renderer.
func (c *Container) Renderer() *richtext.Renderer {
	return c.renderer
}

// LoggerProvider returns the provider used by every module logger. It is
// nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// BunDB returns the database tier connection, if any.
func (c *Container) BunDB() *bun.DB {
	return c.bunDB
}

// Now returns the container clock.
func (c *Container) Now() time.Time {
	return c.now()
}

// Close releases the database connection when the container opened it.
func (c *Container) Close() error {
	if c == nil || !c.ownsDB || c.bunDB == nil {
		return nil
	}
	err := c.bunDB.Close()
	c.bunDB = nil
	c.ownsDB = false
	return err
}

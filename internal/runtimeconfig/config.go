package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrSiteURLInvalid = errors.New("newsroom config: site url must be an absolute http(s) url")
var ErrPostgRESTURLInvalid = errors.New("newsroom config: postgrest url must be an absolute http(s) url")
var ErrContentfulBaseURLInvalid = errors.New("newsroom config: contentful base url must be an absolute http(s) url")
var ErrDatabaseDriverUnknown = errors.New("newsroom config: database driver is invalid")
var ErrDatabaseDSNRequired = errors.New("newsroom config: database dsn is required when a driver is set")
var ErrResolverTimeoutInvalid = errors.New("newsroom config: resolver timeout must be positive")
var ErrCommentsRateInvalid = errors.New("newsroom config: comment rate limit must be zero or positive")
var ErrHTTPAddrRequired = errors.New("newsroom config: http address is required")
var ErrLoggingProviderRequired = errors.New("newsroom config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("newsroom config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("newsroom config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("newsroom config: logging format is invalid")

// Config aggregates site metadata, backend credentials and runtime toggles
// for the newsroom module. It is read once at startup.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Sources  SourcesConfig  `yaml:"sources"`
	Resolver ResolverConfig `yaml:"resolver"`
	Comments CommentsConfig `yaml:"comments"`
	HTTP     HTTPConfig     `yaml:"http"`
	Logging  LoggingConfig  `yaml:"logging"`
	Features Features       `yaml:"features"`
}

// SiteConfig describes the publication.
type SiteConfig struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Language string `yaml:"language"`
}

// SourcesConfig lists backend credentials in tier order.
type SourcesConfig struct {
	Contentful ContentfulConfig `yaml:"contentful"`
	PostgREST  PostgRESTConfig  `yaml:"postgrest"`
	Database   DatabaseConfig   `yaml:"database"`
	Mock       MockConfig       `yaml:"mock"`
}

// ContentfulConfig holds headless CMS delivery credentials.
type ContentfulConfig struct {
	SpaceID         string `yaml:"space_id"`
	AccessToken     string `yaml:"access_token"`
	ManagementToken string `yaml:"management_token"`
	Environment     string `yaml:"environment"`
	BaseURL         string `yaml:"base_url"`
	Locale          string `yaml:"locale"`
}

// Configured reports whether delivery reads are possible.
func (c ContentfulConfig) Configured() bool {
	return strings.TrimSpace(c.SpaceID) != "" && strings.TrimSpace(c.AccessToken) != ""
}

// PostgRESTConfig holds the relational REST endpoint and anonymous key.
type PostgRESTConfig struct {
	URL     string `yaml:"url"`
	AnonKey string `yaml:"anon_key"`
}

// Configured reports whether both URL and key are present.
func (c PostgRESTConfig) Configured() bool {
	return strings.TrimSpace(c.URL) != "" && strings.TrimSpace(c.AnonKey) != ""
}

// DatabaseConfig points the direct database tier at a bun connection.
type DatabaseConfig struct {
	Driver      string `yaml:"driver"`
	DSN         string `yaml:"dsn"`
	AutoMigrate bool   `yaml:"auto_migrate"`
	Seed        bool   `yaml:"seed"`
}

// Configured reports whether a connection should be opened.
func (c DatabaseConfig) Configured() bool {
	return strings.TrimSpace(c.Driver) != "" && strings.TrimSpace(c.DSN) != ""
}

// MockConfig toggles the in-memory sample catalog tier.
type MockConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ResolverConfig tunes the tiered read path.
type ResolverConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// CommentsConfig tunes the comment write path. RatePerMinute of zero
// disables throttling.
type CommentsConfig struct {
	RatePerMinute float64 `yaml:"rate_per_minute"`
	Burst         int     `yaml:"burst"`
	// MemoryFallback keeps comments in process memory when no backend is
	// configured. Comments are lost on restart.
	MemoryFallback bool `yaml:"memory_fallback"`
}

// HTTPConfig configures the public API server.
type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// Features toggles optional surfaces.
type Features struct {
	Comments bool `yaml:"comments"`
	Sitemap  bool `yaml:"sitemap"`
	Debug    bool `yaml:"debug"`
	Logger   bool `yaml:"logger"`
}

// DefaultConfig returns defaults for a local deployment with every remote
// tier unconfigured.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			Name:     "Sweet FM Online",
			URL:      "https://www.sweetfmonline.com",
			Language: "en",
		},
		Sources: SourcesConfig{
			Contentful: ContentfulConfig{
				Environment: "master",
				BaseURL:     "https://cdn.contentful.com",
			},
		},
		Resolver: ResolverConfig{
			Timeout: 5 * time.Second,
		},
		Comments: CommentsConfig{
			RatePerMinute: 6,
			Burst:         3,
		},
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Features: Features{
			Comments: true,
			Sitemap:  true,
			Logger:   true,
		},
	}
}

// Validate performs consistency checks and returns the first sentinel that
// applies.
func (cfg Config) Validate() error {
	if err := validation.Validate(cfg.Site.URL, validation.Required, absoluteURL); err != nil {
		return fmt.Errorf("%w: %v", ErrSiteURLInvalid, err)
	}
	if err := validation.Validate(cfg.Sources.PostgREST.URL, absoluteURL); err != nil {
		return fmt.Errorf("%w: %v", ErrPostgRESTURLInvalid, err)
	}
	if err := validation.Validate(cfg.Sources.Contentful.BaseURL, absoluteURL); err != nil {
		return fmt.Errorf("%w: %v", ErrContentfulBaseURLInvalid, err)
	}
	if driver := strings.TrimSpace(cfg.Sources.Database.Driver); driver != "" {
		if !isSupportedDriver(driver) {
			return fmt.Errorf("%w: %s", ErrDatabaseDriverUnknown, driver)
		}
		if strings.TrimSpace(cfg.Sources.Database.DSN) == "" {
			return ErrDatabaseDSNRequired
		}
	}
	if cfg.Resolver.Timeout <= 0 {
		return ErrResolverTimeoutInvalid
	}
	if cfg.Comments.RatePerMinute < 0 || cfg.Comments.Burst < 0 {
		return ErrCommentsRateInvalid
	}
	if strings.TrimSpace(cfg.HTTP.Addr) == "" {
		return ErrHTTPAddrRequired
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

// absoluteURL accepts empty values; pair it with validation.Required.
var absoluteURL = validation.By(func(value any) error {
	raw, _ := value.(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return validation.NewError("validation_url_absolute", "must be an absolute http(s) url")
	}
	return nil
})

func isSupportedDriver(driver string) bool {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "postgres", "postgresql", "pg", "sqlite", "sqlite3":
		return true
	default:
		return false
	}
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

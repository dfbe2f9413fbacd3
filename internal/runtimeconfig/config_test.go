package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goliatone/go-newsroom/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if cfg.Sources.Contentful.Configured() || cfg.Sources.PostgREST.Configured() || cfg.Sources.Database.Configured() {
		t.Fatalf("expected remote tiers unconfigured by default")
	}
	if cfg.Sources.Mock.Enabled {
		t.Fatalf("expected mock catalog disabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{
			name:   "missing site url",
			mutate: func(c *runtimeconfig.Config) { c.Site.URL = "" },
			want:   runtimeconfig.ErrSiteURLInvalid,
		},
		{
			name:   "relative site url",
			mutate: func(c *runtimeconfig.Config) { c.Site.URL = "/news" },
			want:   runtimeconfig.ErrSiteURLInvalid,
		},
		{
			name:   "postgrest url without scheme",
			mutate: func(c *runtimeconfig.Config) { c.Sources.PostgREST.URL = "project.supabase.co" },
			want:   runtimeconfig.ErrPostgRESTURLInvalid,
		},
		{
			name:   "contentful base url scheme",
			mutate: func(c *runtimeconfig.Config) { c.Sources.Contentful.BaseURL = "ftp://cdn.contentful.com" },
			want:   runtimeconfig.ErrContentfulBaseURLInvalid,
		},
		{
			name:   "unknown driver",
			mutate: func(c *runtimeconfig.Config) { c.Sources.Database.Driver = "oracle" },
			want:   runtimeconfig.ErrDatabaseDriverUnknown,
		},
		{
			name:   "driver without dsn",
			mutate: func(c *runtimeconfig.Config) { c.Sources.Database.Driver = "sqlite" },
			want:   runtimeconfig.ErrDatabaseDSNRequired,
		},
		{
			name:   "zero timeout",
			mutate: func(c *runtimeconfig.Config) { c.Resolver.Timeout = 0 },
			want:   runtimeconfig.ErrResolverTimeoutInvalid,
		},
		{
			name:   "negative rate",
			mutate: func(c *runtimeconfig.Config) { c.Comments.RatePerMinute = -1 },
			want:   runtimeconfig.ErrCommentsRateInvalid,
		},
		{
			name:   "blank addr",
			mutate: func(c *runtimeconfig.Config) { c.HTTP.Addr = " " },
			want:   runtimeconfig.ErrHTTPAddrRequired,
		},
		{
			name:   "missing logging provider",
			mutate: func(c *runtimeconfig.Config) { c.Logging.Provider = "" },
			want:   runtimeconfig.ErrLoggingProviderRequired,
		},
		{
			name:   "unknown logging provider",
			mutate: func(c *runtimeconfig.Config) { c.Logging.Provider = "syslog" },
			want:   runtimeconfig.ErrLoggingProviderUnknown,
		},
		{
			name:   "invalid level",
			mutate: func(c *runtimeconfig.Config) { c.Logging.Level = "loud" },
			want:   runtimeconfig.ErrLoggingLevelInvalid,
		},
		{
			name: "invalid gologger format",
			mutate: func(c *runtimeconfig.Config) {
				c.Logging.Provider = "gologger"
				c.Logging.Format = "xml"
			},
			want: runtimeconfig.ErrLoggingFormatInvalid,
		},
		{
			name: "logging checks skipped when feature disabled",
			mutate: func(c *runtimeconfig.Config) {
				c.Features.Logger = false
				c.Logging.Provider = "syslog"
			},
		},
		{
			name: "postgres database",
			mutate: func(c *runtimeconfig.Config) {
				c.Sources.Database.Driver = "postgres"
				c.Sources.Database.DSN = "postgres://localhost/newsroom?sslmode=disable"
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	lookup := runtimeconfig.MapLookup(map[string]string{
		"CONTENTFUL_SPACE_ID":       "space-1",
		"CONTENTFUL_ACCESS_TOKEN":   "delivery",
		"CONTENTFUL_ENVIRONMENT_ID": "staging",
		"SUPABASE_URL":              "https://project.supabase.co",
		"SUPABASE_ANON_KEY":         "anon",
		"NEWSROOM_DATABASE_DRIVER":  "sqlite",
		"NEWSROOM_DATABASE_DSN":     "file:newsroom.db",
		"NEWSROOM_MOCK_DATA":        "true",
		"NEWSROOM_RESOLVER_TIMEOUT": "2s",
		"NEWSROOM_LOG_LEVEL":        "debug",
		"NEWSROOM_DEBUG":            "not-a-bool",
	})

	cfg := runtimeconfig.ApplyEnv(runtimeconfig.DefaultConfig(), lookup)

	if !cfg.Sources.Contentful.Configured() || cfg.Sources.Contentful.Environment != "staging" {
		t.Fatalf("unexpected contentful config %#v", cfg.Sources.Contentful)
	}
	if !cfg.Sources.PostgREST.Configured() {
		t.Fatalf("expected postgrest configured, got %#v", cfg.Sources.PostgREST)
	}
	if !cfg.Sources.Database.Configured() {
		t.Fatalf("expected database configured, got %#v", cfg.Sources.Database)
	}
	if !cfg.Sources.Mock.Enabled {
		t.Fatalf("expected mock enabled")
	}
	if cfg.Resolver.Timeout != 2*time.Second {
		t.Fatalf("expected 2s timeout, got %s", cfg.Resolver.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Logging.Level)
	}
	if cfg.Features.Debug {
		t.Fatalf("unparsable bool must leave the default")
	}
}

func TestApplyEnvPrefersFirstName(t *testing.T) {
	lookup := runtimeconfig.MapLookup(map[string]string{
		"NEXT_PUBLIC_SUPABASE_URL": "https://public.supabase.co",
		"SUPABASE_URL":             "https://private.supabase.co",
	})
	cfg := runtimeconfig.ApplyEnv(runtimeconfig.DefaultConfig(), lookup)
	if cfg.Sources.PostgREST.URL != "https://public.supabase.co" {
		t.Fatalf("unexpected url %q", cfg.Sources.PostgREST.URL)
	}
}

func TestLayeredLookup(t *testing.T) {
	lookup := runtimeconfig.Layered(
		runtimeconfig.MapLookup(map[string]string{"A": "process"}),
		nil,
		runtimeconfig.MapLookup(map[string]string{"A": "file", "B": "file"}),
	)
	if value, _ := lookup("A"); value != "process" {
		t.Fatalf("expected first layer to win, got %q", value)
	}
	if value, _ := lookup("B"); value != "file" {
		t.Fatalf("expected fallback layer, got %q", value)
	}
	if _, ok := lookup("C"); ok {
		t.Fatalf("expected miss")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "newsroom.yaml")
	envPath := filepath.Join(dir, ".env")

	writeFile(t, configPath, `
site:
  name: Test Desk
  url: https://desk.example.com
resolver:
  timeout: 750ms
comments:
  rate_per_minute: 2
  burst: 1
http:
  addr: ":9090"
features:
  comments: true
  sitemap: false
  logger: true
`)
	writeFile(t, envPath, "CONTENTFUL_SPACE_ID=from-file\nCONTENTFUL_ACCESS_TOKEN=file-token\n")
	t.Setenv("CONTENTFUL_ACCESS_TOKEN", "process-token")

	cfg, err := runtimeconfig.Load(configPath, envPath, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Site.Name != "Test Desk" || cfg.Site.URL != "https://desk.example.com" {
		t.Fatalf("unexpected site %#v", cfg.Site)
	}
	if cfg.Site.Language != "en" {
		t.Fatalf("expected default language kept, got %q", cfg.Site.Language)
	}
	if cfg.Resolver.Timeout != 750*time.Millisecond {
		t.Fatalf("unexpected timeout %s", cfg.Resolver.Timeout)
	}
	if cfg.HTTP.Addr != ":9090" || cfg.HTTP.ReadTimeout != 10*time.Second {
		t.Fatalf("unexpected http config %#v", cfg.HTTP)
	}
	if cfg.Features.Sitemap {
		t.Fatalf("expected sitemap disabled by file")
	}
	if cfg.Sources.Contentful.SpaceID != "from-file" {
		t.Fatalf("expected env file value, got %q", cfg.Sources.Contentful.SpaceID)
	}
	if cfg.Sources.Contentful.AccessToken != "process-token" {
		t.Fatalf("expected process env to win, got %q", cfg.Sources.Contentful.AccessToken)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "newsroom.yaml")
	writeFile(t, configPath, "site:\n  url: not a url\n")

	if _, err := runtimeconfig.Load(configPath); !errors.Is(err, runtimeconfig.ErrSiteURLInvalid) {
		t.Fatalf("expected ErrSiteURLInvalid, got %v", err)
	}
	if _, err := runtimeconfig.Load(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

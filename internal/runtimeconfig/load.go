package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// Load builds the runtime configuration: defaults, then the optional YAML
// file at path, then variables from envFiles, then the process environment.
// Process variables win over env files. Missing env files are ignored.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) != "" {
		var err error
		if cfg, err = LoadFile(cfg, path); err != nil {
			return Config{}, err
		}
	}

	fileVars, err := ReadEnvFiles(envFiles...)
	if err != nil {
		return Config{}, err
	}
	cfg = ApplyEnv(cfg, Layered(os.LookupEnv, MapLookup(fileVars)))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes the YAML document at path over base.
func LoadFile(base Config, path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("newsroom config: read %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("newsroom config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// ReadEnvFiles parses dotenv files without touching the process
// environment. Later files override earlier ones.
func ReadEnvFiles(paths ...string) (map[string]string, error) {
	out := map[string]string{}
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("newsroom config: env file %s: %w", path, err)
		}
		for key, value := range values {
			out[key] = value
		}
	}
	return out, nil
}

// MapLookup adapts a map to LookupFunc.
func MapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

// Layered consults each lookup in order and returns the first non-blank hit.
func Layered(lookups ...LookupFunc) LookupFunc {
	return func(key string) (string, bool) {
		for _, lookup := range lookups {
			if lookup == nil {
				continue
			}
			if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
				return value, true
			}
		}
		return "", false
	}
}

// ApplyEnv overlays environment variables on cfg. When several names map to
// the same setting the first present one wins.
func ApplyEnv(cfg Config, lookup LookupFunc) Config {
	if lookup == nil {
		return cfg
	}
	env := envReader{lookup: lookup}

	env.setString(&cfg.Site.Name, "NEWSROOM_SITE_NAME")
	env.setString(&cfg.Site.URL, "NEWSROOM_SITE_URL", "NEXT_PUBLIC_SITE_URL")

	contentful := &cfg.Sources.Contentful
	env.setString(&contentful.SpaceID, "CONTENTFUL_SPACE_ID")
	env.setString(&contentful.AccessToken, "CONTENTFUL_ACCESS_TOKEN")
	env.setString(&contentful.ManagementToken, "CONTENTFUL_MANAGEMENT_TOKEN")
	env.setString(&contentful.Environment, "CONTENTFUL_ENVIRONMENT", "CONTENTFUL_ENVIRONMENT_ID")
	env.setString(&contentful.BaseURL, "CONTENTFUL_BASE_URL")

	postgrest := &cfg.Sources.PostgREST
	env.setString(&postgrest.URL, "NEXT_PUBLIC_SUPABASE_URL", "SUPABASE_URL")
	env.setString(&postgrest.AnonKey, "NEXT_PUBLIC_SUPABASE_ANON_KEY", "SUPABASE_ANON_KEY")

	database := &cfg.Sources.Database
	env.setString(&database.Driver, "NEWSROOM_DATABASE_DRIVER")
	env.setString(&database.DSN, "NEWSROOM_DATABASE_DSN", "DATABASE_URL")
	env.setBool(&database.AutoMigrate, "NEWSROOM_DATABASE_AUTO_MIGRATE")
	env.setBool(&database.Seed, "NEWSROOM_DATABASE_SEED")

	env.setBool(&cfg.Sources.Mock.Enabled, "NEWSROOM_MOCK_DATA")
	env.setDuration(&cfg.Resolver.Timeout, "NEWSROOM_RESOLVER_TIMEOUT")
	env.setBool(&cfg.Comments.MemoryFallback, "NEWSROOM_COMMENTS_MEMORY")
	env.setString(&cfg.HTTP.Addr, "NEWSROOM_ADDR")
	env.setString(&cfg.Logging.Provider, "NEWSROOM_LOG_PROVIDER")
	env.setString(&cfg.Logging.Level, "NEWSROOM_LOG_LEVEL")
	env.setString(&cfg.Logging.Format, "NEWSROOM_LOG_FORMAT")
	env.setBool(&cfg.Features.Debug, "NEWSROOM_DEBUG")
	return cfg
}

type envReader struct {
	lookup LookupFunc
}

func (e envReader) first(keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := e.lookup(key); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value), true
		}
	}
	return "", false
}

func (e envReader) setString(target *string, keys ...string) {
	if value, ok := e.first(keys...); ok {
		*target = value
	}
}

// setBool ignores unparsable values.
func (e envReader) setBool(target *bool, keys ...string) {
	value, ok := e.first(keys...)
	if !ok {
		return
	}
	if parsed, err := strconv.ParseBool(value); err == nil {
		*target = parsed
	}
}

func (e envReader) setDuration(target *time.Duration, keys ...string) {
	value, ok := e.first(keys...)
	if !ok {
		return
	}
	if parsed, err := time.ParseDuration(value); err == nil {
		*target = parsed
	}
}

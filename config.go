package newsroom

import "github.com/goliatone/go-newsroom/internal/runtimeconfig"

var (
	ErrSiteURLInvalid           = runtimeconfig.ErrSiteURLInvalid
	ErrPostgRESTURLInvalid      = runtimeconfig.ErrPostgRESTURLInvalid
	ErrContentfulBaseURLInvalid = runtimeconfig.ErrContentfulBaseURLInvalid
	ErrDatabaseDriverUnknown    = runtimeconfig.ErrDatabaseDriverUnknown
	ErrDatabaseDSNRequired      = runtimeconfig.ErrDatabaseDSNRequired
	ErrResolverTimeoutInvalid   = runtimeconfig.ErrResolverTimeoutInvalid
	ErrCommentsRateInvalid      = runtimeconfig.ErrCommentsRateInvalid
	ErrHTTPAddrRequired         = runtimeconfig.ErrHTTPAddrRequired
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config           = runtimeconfig.Config
	SiteConfig       = runtimeconfig.SiteConfig
	SourcesConfig    = runtimeconfig.SourcesConfig
	ContentfulConfig = runtimeconfig.ContentfulConfig
	PostgRESTConfig  = runtimeconfig.PostgRESTConfig
	DatabaseConfig   = runtimeconfig.DatabaseConfig
	MockConfig       = runtimeconfig.MockConfig
	ResolverConfig   = runtimeconfig.ResolverConfig
	CommentsConfig   = runtimeconfig.CommentsConfig
	HTTPConfig       = runtimeconfig.HTTPConfig
	LoggingConfig    = runtimeconfig.LoggingConfig
	Features         = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads defaults, the optional YAML file, dotenv files and the
// process environment, in that order.
func LoadConfig(path string, envFiles ...string) (Config, error) {
	return runtimeconfig.Load(path, envFiles...)
}

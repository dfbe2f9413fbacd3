package logging

import (
	"context"
	"maps"
	"strings"

	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

const (
	rootModule     = "newsroom"
	resolverModule = "newsroom.resolver"
	sourcesModule  = "newsroom.sources"
	commentsModule = "newsroom.comments"
	httpModule     = "newsroom.http"
)

const fieldSource = "source"

// ModuleLogger returns a logger scoped to module. A nil provider yields a
// no-op logger so services never have to nil-check.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	module = strings.TrimSpace(module)
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ResolverLogger returns the logger used by the tier resolution policy.
func ResolverLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, resolverModule)
}

// SourceLogger returns a logger for a single content source adapter.
func SourceLogger(provider interfaces.LoggerProvider, source string) interfaces.Logger {
	logger := ModuleLogger(provider, sourcesModule)
	if trimmed := strings.TrimSpace(source); trimmed != "" {
		logger = WithFields(logger, map[string]any{fieldSource: trimmed})
	}
	return logger
}

// CommentsLogger returns the logger used by the comment write path.
func CommentsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commentsModule)
}

// HTTPLogger returns the logger used by the public HTTP handlers.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// WithFields attaches fields when the logger supports FieldsLogger and
// returns it unchanged otherwise.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}
	return logger
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}

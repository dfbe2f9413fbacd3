package resolver

import (
	"context"
	"time"

	"github.com/goliatone/go-newsroom/internal/sources"
)

// attempt runs one logical read against one tier. final marks an empty
// result as authoritative for that tier.
type attempt func(ctx context.Context, tier sources.Adapter) (rows []sources.Row, final bool, err error)

// resolve walks the tiers in order. Unconfigured tiers are skipped silently,
// failing tiers are logged and skipped, and empty tiers are skipped unless
// acceptEmpty is set or the attempt marks its result final. When every tier
// is exhausted the result is nil.
func (s *service) resolve(ctx context.Context, op string, acceptEmpty bool, run attempt) []sources.Row {
	logger := s.logger.WithContext(ctx)

	for _, tier := range s.tiers {
		if !tier.Configured() {
			continue
		}

		started := time.Now()
		rows, final, err := run(ctx, tier)
		switch {
		case err == nil:
		case sources.IsNotConfigured(err):
			continue
		default:
			logger.Warn("resolver.tier_failed",
				"operation", op,
				"tier", tier.Name(),
				"duration", time.Since(started),
				"error", err,
			)
			continue
		}

		if len(rows) > 0 || final || acceptEmpty {
			logger.Debug("resolver.resolved",
				"operation", op,
				"tier", tier.Name(),
				"rows", len(rows),
				"duration", time.Since(started),
			)
			return rows
		}
	}

	logger.Debug("resolver.exhausted", "operation", op)
	return nil
}

// single adapts one query into an attempt.
func (s *service) single(q sources.Query) attempt {
	return func(ctx context.Context, tier sources.Adapter) ([]sources.Row, bool, error) {
		rows, err := s.fetch(ctx, tier, q)
		return rows, false, err
	}
}

// fetch executes q on tier under the per-call timeout.
func (s *service) fetch(ctx context.Context, tier sources.Adapter, q sources.Query) ([]sources.Row, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	outcome := sources.Execute(callCtx, tier, q)
	return outcome.Rows, outcome.Err
}

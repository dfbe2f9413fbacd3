package sources

import "context"

// Adapter executes backend-agnostic queries against one content backend.
// Implementations are read-only and safe for concurrent use.
type Adapter interface {
	// Name identifies the tier in logs and status reports.
	Name() string
	// Configured reports whether the credentials needed to reach the
	// backend are present. It must not perform I/O.
	Configured() bool
	// Fetch runs q and returns raw rows. Unconfigured adapters return an
	// error matching ErrNotConfigured; every other failure is a
	// TransportFailure.
	Fetch(ctx context.Context, q Query) ([]Row, error)
}

// PatternMatcher is implemented by adapters that accept OpMatch filters.
type PatternMatcher interface {
	SupportsMatch() bool
}

// SupportsMatch reports whether a accepts pattern filters.
func SupportsMatch(a Adapter) bool {
	matcher, ok := a.(PatternMatcher)
	return ok && matcher.SupportsMatch()
}

// Status is the outcome class of a single adapter call.
type Status int

const (
	StatusOK Status = iota
	StatusNotConfigured
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotConfigured:
		return "not_configured"
	default:
		return "failed"
	}
}

// Outcome is the uniform result of one adapter call.
type Outcome struct {
	Source string
	Status Status
	Rows   []Row
	Err    error
}

// Execute runs q on a and classifies the result. Unclassified errors are
// treated as transport failures.
func Execute(ctx context.Context, a Adapter, q Query) Outcome {
	out := Outcome{Source: a.Name()}
	if !a.Configured() {
		out.Status = StatusNotConfigured
		out.Err = NotConfigured(a.Name())
		return out
	}

	rows, err := a.Fetch(ctx, q)
	switch {
	case err == nil:
		out.Status = StatusOK
		out.Rows = rows
	case IsNotConfigured(err):
		out.Status = StatusNotConfigured
		out.Err = err
	default:
		out.Status = StatusFailed
		out.Err = TransportFailure(a.Name(), err)
	}
	return out
}

package sources

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// ErrNotConfigured reports that an adapter has no credentials. The
// resolution policy skips such tiers without logging.
var ErrNotConfigured = errors.New("sources: adapter not configured")

// ErrUnsupportedFilter is returned when a query uses a filter the adapter
// cannot express.
var ErrUnsupportedFilter = errors.New("sources: unsupported filter")

const textCodeRequestFailed = "SOURCE_REQUEST_FAILED"

// StatusError captures a non-success HTTP response from a backend.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// NotConfigured builds the not-configured error for the named adapter.
func NotConfigured(adapter string) error {
	return fmt.Errorf("%w: %s", ErrNotConfigured, adapter)
}

// TransportFailure classifies err as a failed request against adapter:
// network errors, timeouts, non-success statuses and malformed bodies.
func TransportFailure(adapter string, err error) error {
	if err == nil {
		return nil
	}
	if IsTransportFailure(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, adapter+" request failed").
		WithTextCode(textCodeRequestFailed)
}

// IsNotConfigured reports whether err is a not-configured error.
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}

// IsTransportFailure reports whether err is a classified request failure.
func IsTransportFailure(err error) bool {
	return err != nil && goerrors.IsCategory(err, goerrors.CategoryExternal)
}

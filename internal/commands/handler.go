// Package commands runs maintenance operations as go-command handlers.
package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

const defaultHandlerTimeout = 2 * time.Minute

// HandlerOption configures a Handler.
type HandlerOption[T command.Message] func(*Handler[T])

// Handler validates a message, bounds its execution time and logs the
// outcome before delegating to the wrapped function.
type Handler[T command.Message] struct {
	exec      command.CommandFunc[T]
	logger    interfaces.Logger
	timeout   time.Duration
	operation string
	now       func() time.Time
}

// NewHandler wraps fn. It panics when fn is nil.
func NewHandler[T command.Message](fn command.CommandFunc[T], opts ...HandlerOption[T]) *Handler[T] {
	if fn == nil {
		panic("commands: handler function cannot be nil")
	}
	h := &Handler[T]{
		exec:    fn,
		logger:  logging.NoOp(),
		timeout: defaultHandlerTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Execute implements command.Commander.
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	if err := command.ValidateMessage(msg); err != nil {
		return wrapValidationError(err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return wrapContextError(err)
	}

	fields := map[string]any{"command": command.GetMessageType(msg)}
	if h.operation != "" {
		fields["operation"] = h.operation
	}
	logger := logging.WithFields(h.logger.WithContext(ctx), fields)
	started := h.now()

	if err := h.exec(ctx, msg); err != nil {
		logger.Error("command.failed", "error", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return wrapContextError(ctxErr)
		}
		return wrapExecuteError(err)
	}

	logger.Info("command.completed", "duration", h.now().Sub(started).String())
	return nil
}

// WithTimeout bounds execution. Zero or negative disables the bound.
func WithTimeout[T command.Message](timeout time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.timeout = max(timeout, 0)
	}
}

// WithLogger sets the execution logger.
func WithLogger[T command.Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithOperation names the operation in every log entry.
func WithOperation[T command.Message](operation string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.operation = operation
	}
}

// WithClock sets the clock used to measure durations.
func WithClock[T command.Message](now func() time.Time) HandlerOption[T] {
	return func(h *Handler[T]) {
		if now != nil {
			h.now = now
		}
	}
}

package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to command failures.
const (
	CodeValidationFailed = "NEWSROOM_COMMAND_INVALID"
	CodeCanceled         = "NEWSROOM_COMMAND_CANCELED"
	CodeTimedOut         = "NEWSROOM_COMMAND_TIMEOUT"
	CodeFailed           = "NEWSROOM_COMMAND_FAILED"
)

func wrapValidationError(err error) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(CodeValidationFailed)
}

func wrapContextError(err error) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command deadline exceeded").
			WithTextCode(CodeTimedOut)
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command cancelled").
		WithTextCode(CodeCanceled)
}

func wrapExecuteError(err error) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(CodeFailed)
}

package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried by wrapped command errors so CLI consumers can match a
// failure class without parsing message strings.
const (
	textCodeInvalid  = "CORPUS_COMMAND_INVALID"
	textCodeCanceled = "CORPUS_COMMAND_CANCELED"
	textCodeTimeout  = "CORPUS_COMMAND_TIMEOUT"
	textCodeContext  = "CORPUS_COMMAND_CONTEXT"
	textCodeFailed   = "CORPUS_COMMAND_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "corpus command rejected by validation").
		WithTextCode(textCodeInvalid)
}

func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	message, code := "corpus command context error", textCodeContext
	switch {
	case errors.Is(err, context.Canceled):
		message, code = "corpus command canceled", textCodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		message, code = "corpus command deadline exceeded", textCodeTimeout
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, message).WithTextCode(code)
}

func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "corpus command execution failed").
		WithTextCode(textCodeFailed)
}

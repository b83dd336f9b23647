package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestWrapContextErrorClassifiesCause(t *testing.T) {
	canceled := wrapContextError(context.Canceled)
	if !goerrors.IsCategory(canceled, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", canceled)
	}
	if !errors.Is(canceled, context.Canceled) {
		t.Fatalf("expected cause to survive wrapping, got %v", canceled)
	}
	if !strings.Contains(canceled.Error(), "canceled") {
		t.Fatalf("expected cancellation message, got %q", canceled.Error())
	}

	deadline := wrapContextError(context.DeadlineExceeded)
	if !errors.Is(deadline, context.DeadlineExceeded) {
		t.Fatalf("expected cause to survive wrapping, got %v", deadline)
	}
	if !strings.Contains(deadline.Error(), "deadline") {
		t.Fatalf("expected deadline message, got %q", deadline.Error())
	}
}

func TestWrapHelpersPassWrappedErrorsThrough(t *testing.T) {
	already := goerrors.Wrap(errors.New("boom"), goerrors.CategoryCommand, "corpus command execution failed")

	if got := wrapExecuteError(already); !errors.Is(got, already) {
		t.Fatalf("expected wrapped error returned unchanged, got %v", got)
	}
	if got := wrapValidationError(nil); got != nil {
		t.Fatalf("expected nil passthrough, got %v", got)
	}
}

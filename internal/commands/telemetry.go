package commands

import (
	"context"
	"time"

	"github.com/docworks/go-corpus/internal/logging"
	"github.com/docworks/go-corpus/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

// TelemetryStatus classifies how a command execution ended.
type TelemetryStatus string

const (
	// TelemetryStatusSuccess marks a run that completed without error.
	TelemetryStatusSuccess TelemetryStatus = "success"
	// TelemetryStatusFailed marks a run whose handler returned an error.
	TelemetryStatusFailed TelemetryStatus = "failed"
	// TelemetryStatusContextError marks a run cut short by cancellation or deadline.
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// TelemetryInfo summarises a single command execution for after-the-fact
// observers. Fields holds the same structured fields the handler logged with.
type TelemetryInfo struct {
	Message   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Err       error
	Status    TelemetryStatus
}

// Telemetry is an optional callback invoked once per command execution.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// DefaultTelemetry emits one command.telemetry log entry per execution,
// carrying status and duration so corpus CLI runs can be traced end to end.
func DefaultTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	if logger == nil {
		logger = logging.NoOp()
	}
	return func(_ context.Context, _ T, info TelemetryInfo) {
		entry := logging.WithFields(logger, info.Fields)
		args := []any{
			"status", string(info.Status),
			"duration_ms", info.Duration.Milliseconds(),
		}
		if info.Err != nil {
			entry.Error("command.telemetry", append(args, "error", info.Err)...)
			return
		}
		entry.Info("command.telemetry", args...)
	}
}

package commands

import (
	"strings"

	"github.com/docworks/go-corpus/internal/logging"
	"github.com/docworks/go-corpus/pkg/interfaces"
)

const commandLoggerRoot = "corpus.commands"

// CommandLogger returns the logger a command registry hands to its handlers.
// Entries carry the owning command group so CLI output stays filterable when
// several groups share one provider.
func CommandLogger(provider interfaces.LoggerProvider, group string) interfaces.Logger {
	name := strings.TrimSpace(group)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandLoggerRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":     "command",
		"command_group": name,
	})
}

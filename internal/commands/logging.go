package commands

import (
	"strings"

	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

const commandModuleRoot = "newsroom.commands"

// CommandLogger returns a logger scoped to a command module.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	return logging.WithFields(logging.ModuleLogger(provider, commandModuleRoot+"."+name), map[string]any{
		"component": "command",
	})
}

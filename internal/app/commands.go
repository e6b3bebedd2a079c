package app

import (
	"errors"
	"fmt"

	"killspree/internal/ports"
)

const (
	// CommandSpree reports a player's current spree.
	CommandSpree = "spree"
	// CommandReload re-reads the spree configuration.
	CommandReload = "spree_reload"
)

// ErrNoCommandRegistrar is returned when the host offers no way to register commands.
var ErrNoCommandRegistrar = errors.New("command registrar unavailable")

// CommandSet is the handlers and privilege thresholds exposed to the host.
type CommandSet struct {
	Spree          ports.CommandHandler
	SpreeMinLevel  func() int
	Reload         ports.CommandHandler
	ReloadMinLevel func() int
}

// RegisterCommands registers the spree commands. A missing registrar is fatal.
func RegisterCommands(reg ports.CommandRegistrar, cmds CommandSet) error {
	if reg == nil {
		return ErrNoCommandRegistrar
	}
	if err := reg.RegisterCommand(CommandSpree, cmds.SpreeMinLevel, cmds.Spree); err != nil {
		return fmt.Errorf("register %s: %w", CommandSpree, err)
	}
	if cmds.Reload == nil {
		return nil
	}
	if err := reg.RegisterCommand(CommandReload, cmds.ReloadMinLevel, cmds.Reload); err != nil {
		return fmt.Errorf("register %s: %w", CommandReload, err)
	}
	return nil
}

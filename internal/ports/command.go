package ports

import "context"

// CommandRequest is a parsed invocation of a registered command.
type CommandRequest struct {
	CallerID string
	Payload  string
}

// CommandHandler runs a command and returns the reply delivered to the caller.
type CommandHandler func(ctx context.Context, req CommandRequest) (string, error)

// CommandRegistrar registers commands with the hosting server.
type CommandRegistrar interface {
	// RegisterCommand exposes handler under name for callers at or above minLevel.
	RegisterCommand(name string, minLevel func() int, handler CommandHandler) error
}

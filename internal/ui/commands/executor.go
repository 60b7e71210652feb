package commands

import (
	"fmt"

	"vlist/internal/router"
)

// Registrar is the part of the router items register with
type Registrar interface {
	RegisterForItem(item int, command string, handler router.Handler[*Request]) error
}

// Executor owns the per-item commands and binds them for items
type Executor struct {
	ctx      *CommandContext
	commands []Command
}

// NewExecutor creates a new command executor
func NewExecutor(ctx *CommandContext) *Executor {
	return &Executor{
		ctx: ctx,
		commands: []Command{
			NewToggleMarkCommand(ctx),
			NewActivateCommand(ctx),
			NewYankCommand(ctx),
			NewOpenCommand(ctx),
			NewDeleteCommand(ctx),
		},
	}
}

// Commands returns the per-item commands
func (e *Executor) Commands() []Command {
	return e.commands
}

// Bind proposes every command on behalf of item
func (e *Executor) Bind(r Registrar, item int) error {
	for _, c := range e.commands {
		if err := r.RegisterForItem(item, c.Name(), c.Execute); err != nil {
			return fmt.Errorf("failed to bind %s for item %d: %w", c.Name(), item, err)
		}
	}
	return nil
}

package commands

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"vlist/internal/domain"
	"vlist/internal/eventbus"
	"vlist/internal/logic"
	"vlist/internal/ui/input/types"
	"vlist/internal/ui/services/selection"
)

// ErrItemNotFound is returned when a handler's index is not in the dispatch snapshot
var ErrItemNotFound = errors.New("item not found")

// Command is a per-item action delivered through the router
type Command interface {
	Name() string
	Execute(item int, req *Request) error
}

// CommandContext provides context for command execution
type CommandContext struct {
	Store     logic.ItemStore
	Selection *selection.Service
	Bus       eventbus.EventBus
	Clipboard func(text string) error
	Pager     func(title, body string) tea.Cmd
}

// Request is what a handler receives on dispatch: the list as it was when
// the command fired, plus a place to leave follow-up work for the UI.
type Request struct {
	Items  domain.Snapshot
	status string
	cmds   []tea.Cmd
}

// NewRequest creates a request over items
func NewRequest(items domain.Snapshot) *Request {
	return &Request{Items: items}
}

// Emit queues a tea.Cmd to run after dispatch
func (r *Request) Emit(cmd tea.Cmd) {
	if cmd != nil {
		r.cmds = append(r.cmds, cmd)
	}
}

// SetStatus sets the message shown in the status line
func (r *Request) SetStatus(format string, args ...any) {
	r.status = fmt.Sprintf(format, args...)
}

// Status returns the status message left by the handler
func (r *Request) Status() string {
	return r.status
}

// Cmd batches everything emitted during dispatch
func (r *Request) Cmd() tea.Cmd {
	return tea.Batch(r.cmds...)
}

func lookup(req *Request, item int) (domain.Item, error) {
	it, ok := req.Items.At(item)
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: index %d of %d", ErrItemNotFound, item, req.Items.Len())
	}
	return it, nil
}

// ToggleMarkCommand marks or unmarks the focused item
type ToggleMarkCommand struct {
	ctx *CommandContext
}

// NewToggleMarkCommand creates a new toggle mark command
func NewToggleMarkCommand(ctx *CommandContext) *ToggleMarkCommand {
	return &ToggleMarkCommand{ctx: ctx}
}

func (c *ToggleMarkCommand) Name() string { return types.CmdToggle }

func (c *ToggleMarkCommand) Execute(item int, req *Request) error {
	it, err := lookup(req, item)
	if err != nil {
		return err
	}
	if c.ctx.Selection.Toggle(it.ID) {
		req.SetStatus("marked %d", item+1)
	} else {
		req.SetStatus("unmarked %d", item+1)
	}
	return nil
}

// ActivateCommand announces the focused item to the rest of the application
type ActivateCommand struct {
	ctx *CommandContext
}

// NewActivateCommand creates a new activate command
func NewActivateCommand(ctx *CommandContext) *ActivateCommand {
	return &ActivateCommand{ctx: ctx}
}

func (c *ActivateCommand) Name() string { return types.CmdActivate }

func (c *ActivateCommand) Execute(item int, req *Request) error {
	it, err := lookup(req, item)
	if err != nil {
		return err
	}
	log.Info("item activated", "index", item, "text", it.Text)
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.ItemActivatedEvent{Index: item, Item: it})
	}
	req.SetStatus("activated item %d: %s", item+1, it.Text)
	return nil
}

// YankCommand copies the focused item's text to the clipboard
type YankCommand struct {
	ctx *CommandContext
}

// NewYankCommand creates a new yank command
func NewYankCommand(ctx *CommandContext) *YankCommand {
	return &YankCommand{ctx: ctx}
}

func (c *YankCommand) Name() string { return types.CmdYank }

func (c *YankCommand) Execute(item int, req *Request) error {
	it, err := lookup(req, item)
	if err != nil {
		return err
	}
	if c.ctx.Clipboard == nil {
		return errors.New("clipboard not available")
	}
	if err := c.ctx.Clipboard(it.Text); err != nil {
		return fmt.Errorf("failed to copy item %d: %w", item+1, err)
	}
	req.SetStatus("copied item %d", item+1)
	return nil
}

// OpenCommand shows the focused item in the pager
type OpenCommand struct {
	ctx *CommandContext
}

// NewOpenCommand creates a new open command
func NewOpenCommand(ctx *CommandContext) *OpenCommand {
	return &OpenCommand{ctx: ctx}
}

func (c *OpenCommand) Name() string { return types.CmdOpen }

func (c *OpenCommand) Execute(item int, req *Request) error {
	it, err := lookup(req, item)
	if err != nil {
		return err
	}
	if c.ctx.Pager == nil {
		return errors.New("pager not available")
	}
	req.Emit(c.ctx.Pager(fmt.Sprintf("item %d", item+1), Details(item, it)))
	return nil
}

// Details renders the pager body for an item
func Details(index int, it domain.Item) string {
	body := fmt.Sprintf("%s\n\n---\nindex: %d\n", it.Text, index+1)
	if it.Line > 0 {
		body += fmt.Sprintf("line:  %d\n", it.Line)
	}
	body += fmt.Sprintf("id:    %s\n", it.ID)
	return body
}

// DeleteCommand removes the focused item from the list
type DeleteCommand struct {
	ctx *CommandContext
}

// NewDeleteCommand creates a new delete command
func NewDeleteCommand(ctx *CommandContext) *DeleteCommand {
	return &DeleteCommand{ctx: ctx}
}

func (c *DeleteCommand) Name() string { return types.CmdDelete }

func (c *DeleteCommand) Execute(item int, req *Request) error {
	it, err := lookup(req, item)
	if err != nil {
		return err
	}
	idx, removed, ok := c.ctx.Store.RemoveByID(it.ID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, it.ID)
	}
	c.ctx.Selection.RemoveFromSelection([]string{removed.ID})
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.ItemRemovedEvent{Index: idx, Item: removed})
	}
	req.SetStatus("deleted item %d", idx+1)
	return nil
}

package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"vlist/internal/ui/input/types"
)

// ConfirmMode asks before the focused item is deleted
type ConfirmMode struct {
	target string
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

// Target is the text of the item awaiting confirmation
func (m *ConfirmMode) Target() string {
	return m.target
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	m.target = ctx.CurrentItemText()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.target = ""
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return []types.Action{
			types.CommandAction{ID: types.CmdDelete},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N", "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// Swallow everything else so nothing moves while the prompt is open
	return nil, true
}

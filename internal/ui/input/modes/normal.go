package modes

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vlist/internal/ui/input/keys"
	"vlist/internal/ui/input/types"
)

const ggTimeout = 500 * time.Millisecond

type NormalMode struct {
	keys        keys.KeyMap
	vi          bool
	lastKeyWasG bool
	lastGTime   time.Time
	now         func() time.Time
}

func NewNormalMode(km keys.KeyMap, vi bool) *NormalMode {
	return &NormalMode{keys: km, vi: vi, now: time.Now}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func command(id string, arg int) ([]types.Action, bool) {
	return []types.Action{types.CommandAction{ID: id, Arg: arg}}, true
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if m.vi && msg.String() == "g" {
		now := m.now()
		if m.lastKeyWasG && now.Sub(m.lastGTime) < ggTimeout {
			m.lastKeyWasG = false
			return command(types.CmdGoToIndex, 0)
		}
		m.lastKeyWasG = true
		m.lastGTime = now
		return nil, true
	}
	m.lastKeyWasG = false

	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Up):
		return command(types.CmdDecrement, 0)
	case key.Matches(msg, k.Down):
		return command(types.CmdIncrement, 0)
	case key.Matches(msg, k.PageUp):
		return command(types.CmdGoToIndex, max(ctx.CurrentIndex()-ctx.PageSize(), 0))
	case key.Matches(msg, k.PageDown):
		return command(types.CmdGoToIndex, min(ctx.CurrentIndex()+ctx.PageSize(), ctx.TotalItems()-1))
	case key.Matches(msg, k.Home):
		return command(types.CmdGoToIndex, 0)
	case key.Matches(msg, k.End):
		return command(types.CmdGoToIndex, ctx.TotalItems()-1)
	case key.Matches(msg, k.GoTo):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoto}}, true

	case key.Matches(msg, k.Resize):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeResize}}, true
	case key.Matches(msg, k.Grow):
		return command(types.CmdResizeWindow, ctx.WindowSize()+1)
	case key.Matches(msg, k.Shrink):
		return command(types.CmdResizeWindow, ctx.WindowSize()-1)
	case key.Matches(msg, k.Policy):
		return []types.Action{types.TogglePolicyAction{}}, true

	case key.Matches(msg, k.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case key.Matches(msg, k.NextMatch):
		if ctx.SearchQuery() != "" {
			return []types.Action{types.SearchNavigateAction{Direction: "next"}}, true
		}
		return nil, true
	case key.Matches(msg, k.PrevMatch):
		if ctx.SearchQuery() != "" {
			return []types.Action{types.SearchNavigateAction{Direction: "prev"}}, true
		}
		return nil, true

	case key.Matches(msg, k.Toggle):
		return command(types.CmdToggle, 0)
	case key.Matches(msg, k.Activate):
		return command(types.CmdActivate, 0)
	case key.Matches(msg, k.Yank):
		return command(types.CmdYank, 0)
	case key.Matches(msg, k.Open):
		return command(types.CmdOpen, 0)
	case key.Matches(msg, k.Delete):
		if ctx.HasCommand(types.CmdDelete) {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeDeleteConfirm}}, true
		}
		return nil, true

	case key.Matches(msg, k.Reload):
		return []types.Action{types.ReloadAction{}}, true
	case key.Matches(msg, k.ClearMarks):
		if ctx.HasSelection() {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		return nil, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}

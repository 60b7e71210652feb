package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vlist/internal/config"
	"vlist/internal/eventbus"
	"vlist/internal/source"
	inputtypes "vlist/internal/ui/input/types"
	"vlist/internal/viewport"
)

type harness struct {
	m      *Model
	copied []string
	paged  []string
}

func newHarness(t *testing.T, count, size int) *harness {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Window.Size = size

	h := &harness{}
	h.m = NewModel(nil, cfg,
		WithClipboard(func(s string) error {
			h.copied = append(h.copied, s)
			return nil
		}),
		WithPager(func(title, body string) tea.Cmd {
			h.paged = append(h.paged, title)
			return nil
		}),
	)
	h.send(tea.WindowSizeMsg{Width: 80, Height: 30})
	h.send(EventMsg{Event: eventbus.ItemsLoadedEvent{Source: "generated", Items: source.GenerateItems(count)}})
	return h
}

func (h *harness) send(msg tea.Msg) {
	h.m.Update(msg)
}

func (h *harness) keys(keys ...string) {
	for _, k := range keys {
		switch k {
		case "enter":
			h.send(tea.KeyMsg{Type: tea.KeyEnter})
		case "esc":
			h.send(tea.KeyMsg{Type: tea.KeyEsc})
		case "space":
			h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		default:
			h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		}
	}
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) state() viewport.State {
	return h.m.navigation.State()
}

func (h *harness) window() (int, int, int) {
	st := h.state()
	return st.Start, st.End, st.Focus
}

func TestEdgeFollowScrolling(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 21, 5)
	require.Equal(t, viewport.State{Focus: 0, Start: 0, End: 5, Size: 5, Count: 21}, h.state())

	h.keys("j", "j", "j", "j")
	start, end, focus := h.window()
	assert.Equal(t, [3]int{0, 5, 4}, [3]int{start, end, focus})

	h.keys("j")
	start, end, focus = h.window()
	assert.Equal(t, [3]int{1, 6, 5}, [3]int{start, end, focus})

	h.keys("k", "k", "k", "k", "k", "k", "k")
	start, end, focus = h.window()
	assert.Equal(t, [3]int{0, 5, 0}, [3]int{start, end, focus}, "moving above the top is a no-op")

	h.keys("G")
	start, end, focus = h.window()
	assert.Equal(t, [3]int{16, 21, 20}, [3]int{start, end, focus})
	h.keys("g", "g")
	assert.Equal(t, 0, h.state().Focus)
}

func TestCenteredPolicyToggle(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 20, 5)
	h.keys("j", "j")
	h.keys("c")
	assert.Equal(t, viewport.PolicyCentered, h.m.navigation.Policy().Name())
	assert.Equal(t, viewport.PolicyCentered, h.m.config.Window.Policy)

	h.keys("j")
	start, end, focus := h.window()
	assert.Equal(t, [3]int{1, 6, 3}, [3]int{start, end, focus})
}

func TestItemCommandsFollowFocus(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 10, 5)
	items := h.m.store.Snapshot()

	h.keys("space")
	h.keys("j", "space")

	assert.True(t, h.m.selection.IsSelected(items[0].ID))
	assert.True(t, h.m.selection.IsSelected(items[1].ID))
	assert.False(t, h.m.selection.IsSelected(items[2].ID))
	assert.Equal(t, "marked 2", h.m.state.StatusMessage)

	h.keys("y")
	assert.Equal(t, []string{"This is item: 1"}, h.copied)

	h.keys("o")
	assert.Equal(t, []string{"item 2"}, h.paged)

	assert.ElementsMatch(t, []string{
		inputtypes.CmdActivate, inputtypes.CmdDelete, inputtypes.CmdOpen, inputtypes.CmdToggle, inputtypes.CmdYank,
	}, h.m.router.Commands())
}

func TestDeleteWithConfirmation(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 21, 5)
	h.keys("G")

	h.keys("d")
	require.Equal(t, inputtypes.ModeDeleteConfirm, h.m.inputHandler.CurrentMode())
	assert.Contains(t, ansi.Strip(h.m.View()), "Delete 'This is item: 20'?")

	h.keys("n")
	assert.Equal(t, 21, h.m.store.Len())

	h.keys("d", "y")
	assert.Equal(t, 20, h.m.store.Len())
	assert.Equal(t, viewport.State{Focus: 19, Start: 15, End: 20, Size: 5, Count: 20}, h.state())
	assert.Equal(t, "deleted item 21", h.m.state.StatusMessage)
}

func TestReloadShrinksWindow(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 21, 5)
	h.keys("G")

	h.send(EventMsg{Event: eventbus.ItemsLoadedEvent{Items: source.GenerateItems(10), Reload: true}})
	assert.Equal(t, viewport.State{Focus: 9, Start: 5, End: 10, Size: 5, Count: 10}, h.state())
	assert.Equal(t, "reloaded 10 items", h.m.state.StatusMessage)

	h.send(EventMsg{Event: eventbus.ItemsLoadedEvent{Reload: true}})
	assert.True(t, h.state().IsEmpty())
	assert.Empty(t, h.m.router.Commands())

	h.keys("space", "j")
	assert.Equal(t, 0, h.m.selection.GetCount())
}

func TestMarksSurviveReload(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 5, 5)
	h.keys("j", "space")
	id := h.m.store.Snapshot()[1].ID

	h.send(EventMsg{Event: eventbus.ItemsLoadedEvent{Items: source.GenerateItems(5), Reload: true}})
	assert.True(t, h.m.selection.IsSelected(id))

	h.send(EventMsg{Event: eventbus.ItemsLoadedEvent{Items: source.GenerateItems(1), Reload: true}})
	assert.False(t, h.m.selection.IsSelected(id))
}

func TestGotoAndResizePrompts(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 50, 5)

	h.keys(":")
	h.typeText("15")
	h.keys("enter")
	start, end, focus := h.window()
	assert.Equal(t, [3]int{10, 15, 14}, [3]int{start, end, focus})

	h.keys(":")
	h.typeText("99")
	h.keys("enter")
	assert.Equal(t, 14, h.state().Focus)
	assert.True(t, h.m.state.StatusIsError)

	h.keys("=")
	h.typeText("8")
	h.keys("enter")
	assert.Equal(t, 8, h.state().Width())
	assert.True(t, h.state().Contains(14))

	h.keys("-")
	assert.Equal(t, 7, h.state().Width())
	h.keys("+", "+")
	assert.Equal(t, 9, h.state().Width())
}

func TestSearchFocusesMatches(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 30, 5)

	h.keys("/")
	h.typeText("=item: 2")
	h.keys("enter")
	assert.Equal(t, 2, h.state().Focus)
	assert.Equal(t, 11, h.m.search.GetMatchCount()) // 2, 20-29

	h.keys("n")
	assert.Equal(t, 20, h.state().Focus)
	h.keys("N", "N")
	assert.Equal(t, 29, h.state().Focus)

	h.keys("/")
	h.typeText("zzz")
	h.keys("esc")
	assert.Empty(t, h.m.search.GetQuery())
	assert.Equal(t, 29, h.state().Focus)
}

func TestWindowFollowsTerminalHeight(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 100, 0)
	assert.Equal(t, 22, h.state().Width())

	h.send(tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Equal(t, 12, h.state().Width())

	h.keys("=")
	h.typeText("4")
	h.keys("enter")
	h.send(tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Equal(t, 4, h.state().Width(), "an explicit size stops following the terminal")
}

func TestEmptyListIgnoresCommands(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 0, 5)
	h.keys("space", "enter", "y", "d", "j", "G")

	assert.True(t, h.state().IsEmpty())
	assert.Empty(t, h.copied)
	assert.Equal(t, inputtypes.ModeNormal, h.m.inputHandler.CurrentMode())
	assert.Contains(t, ansi.Strip(h.m.View()), "No items.")
}

func TestBackgroundErrorShowsInStatus(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 3, 5)
	h.send(EventMsg{Event: eventbus.ErrorEvent{Message: "cannot read input"}})
	assert.True(t, h.m.state.StatusIsError)
	assert.Equal(t, "cannot read input", h.m.state.StatusMessage)

	h.send(EventMsg{Event: eventbus.WatchStartedEvent{Path: "items.txt"}})
	assert.True(t, h.m.state.Watching)
	assert.Contains(t, ansi.Strip(h.m.View()), "[watching]")
}

func TestHelpOverlay(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 3, 5)
	h.keys("?")
	require.True(t, h.m.state.ShowHelp)
	assert.Contains(t, ansi.Strip(h.m.View()), "vlist help")

	h.keys("j")
	assert.Equal(t, 0, h.state().Focus, "keys scroll the overlay, not the list")
	h.keys("esc")
	assert.False(t, h.m.state.ShowHelp)
}

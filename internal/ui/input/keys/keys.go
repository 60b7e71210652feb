// Package keys defines the key bindings of the list browser.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding shown in help and matched by the input modes
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	GoTo       key.Binding
	Resize     key.Binding
	Grow       key.Binding
	Shrink     key.Binding
	Policy     key.Binding
	Search     key.Binding
	NextMatch  key.Binding
	PrevMatch  key.Binding
	Toggle     key.Binding
	Activate   key.Binding
	Yank       key.Binding
	Open       key.Binding
	Delete     key.Binding
	Reload     key.Binding
	ClearMarks key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// Default returns the bindings. vi adds j/k/G and the gg prefix.
func Default(vi bool) KeyMap {
	km := KeyMap{
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "ctrl+f"), key.WithHelp("pgdn", "page down")),
		Home:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		GoTo:       key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to line")),
		Resize:     key.NewBinding(key.WithKeys("="), key.WithHelp("=", "set window size")),
		Grow:       key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "grow window")),
		Shrink:     key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shrink window")),
		Policy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "toggle centered")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		NextMatch:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
		PrevMatch:  key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "previous match")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "mark")),
		Activate:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate")),
		Yank:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Open:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in pager")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Reload:     key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "reload")),
		ClearMarks: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear marks")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
	if vi {
		km.Up.SetKeys("up", "k")
		km.Up.SetHelp("↑/k", "up")
		km.Down.SetKeys("down", "j")
		km.Down.SetHelp("↓/j", "down")
		km.Home.SetHelp("gg/home", "first")
		km.End.SetKeys("end", "G")
		km.End.SetHelp("G/end", "last")
	}
	return km
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Activate, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.GoTo},
		{k.Resize, k.Grow, k.Shrink, k.Policy, k.Search, k.NextMatch, k.PrevMatch},
		{k.Toggle, k.Activate, k.Yank, k.Open, k.Delete, k.ClearMarks},
		{k.Reload, k.Help, k.Quit},
	}
}

package ui

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"vlist/internal/config"
	"vlist/internal/domain"
	"vlist/internal/eventbus"
	"vlist/internal/logic"
	"vlist/internal/router"
	"vlist/internal/ui/commands"
	"vlist/internal/ui/input"
	"vlist/internal/ui/input/keys"
	"vlist/internal/ui/input/modes"
	inputtypes "vlist/internal/ui/input/types"
	uilogic "vlist/internal/ui/logic"
	"vlist/internal/ui/services/events"
	"vlist/internal/ui/services/navigation"
	"vlist/internal/ui/services/search"
	"vlist/internal/ui/services/selection"
	"vlist/internal/ui/state"
	"vlist/internal/ui/views"
	"vlist/internal/viewport"
)

const statusTimeout = 3 * time.Second

// Option configures a Model
type Option func(*Model)

// WithClipboard replaces the system clipboard writer
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) {
		m.clipboard = fn
	}
}

// WithPager replaces the pager used by the open command
func WithPager(fn func(title, body string) tea.Cmd) Option {
	return func(m *Model) {
		m.pager = fn
	}
}

// WithSource sets the source shown in the title line
func WithSource(info domain.SourceInfo) Option {
	return func(m *Model) {
		m.state.SourceName = info.Name
		m.state.Watching = info.Watching
	}
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	width  int
	height int
	help   help.Model
	mode   inputtypes.Mode // mode the actions being processed were produced in

	// Services
	uiBus        *events.Bus
	navigation   *navigation.Service
	selection    *selection.Service
	search       *search.Service
	store        logic.ItemStore
	router       *router.Router[*commands.Request]
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	renderer     *views.Renderer

	clipboard func(string) error
	pager     func(title, body string) tea.Cmd
}

// NewModel creates a new UI model over an empty list. Items arrive as
// ItemsLoaded events.
func NewModel(bus eventbus.EventBus, cfg *config.Config, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		bus:       bus,
		config:    cfg,
		state:     state.NewAppState(),
		help:      help.New(),
		mode:      inputtypes.ModeNormal,
		uiBus:     events.NewBus(),
		store:     logic.NewMemoryItemStore(),
		router:    router.New[*commands.Request](router.WithLogger(log.Default())),
		renderer:  views.NewRenderer(),
		clipboard: clipboard.WriteAll,
		pager:     openPager,
	}
	m.state.FixedSize = cfg.Window.Size > 0
	m.state.DesiredSize = cfg.Window.Size
	for _, opt := range opts {
		opt(m)
	}

	size := cfg.Window.Size
	if size == 0 {
		size = views.FitWindow(24) // until the first WindowSizeMsg
	}
	engine := viewport.New(0, size,
		viewport.WithPolicy(cfg.ScrollPolicy()),
		viewport.WithResizePreference(cfg.ResizePreference()),
		viewport.WithLogger(log.Default()),
	)

	m.navigation = navigation.NewService(m.uiBus, engine)
	m.selection = selection.NewService(m.uiBus)
	m.search = search.NewService(m.uiBus)
	m.search.SetMatcherFunction(func(query string) []search.MatchResult {
		return uilogic.FindMatches(m.store.Snapshot(), query)
	})
	m.search.SetNavigateFunction(m.navigation.MoveToIndex)

	m.cmdExecutor = commands.NewExecutor(&commands.CommandContext{
		Store:     m.store,
		Selection: m.selection,
		Bus:       bus,
		Clipboard: func(text string) error { return m.clipboard(text) },
		Pager:     func(title, body string) tea.Cmd { return m.pager(title, body) },
	})
	m.inputHandler = input.New(keys.Default(cfg.Keys.Vi), cfg.Keys.Vi)

	// Handlers of the previous item stop firing as soon as focus moves,
	// before the next refresh cycle rebinds.
	m.uiBus.Subscribe(events.TypeOf(navigation.CursorMovedEvent{}), func(e interface{}) {
		ev := e.(navigation.CursorMovedEvent)
		log.Debug("cursor moved", "from", ev.OldIndex, "to", ev.NewIndex)
		m.router.Refocus(ev.NewIndex)
	})
	m.uiBus.Subscribe(events.TypeOf(navigation.ViewportChangedEvent{}), func(e interface{}) {
		ev := e.(navigation.ViewportChangedEvent)
		log.Debug("viewport changed", "start", ev.Start, "end", ev.End, "size", ev.Size, "count", ev.Count)
	})

	m.refresh()
	return m
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.fitWindow()

	case tea.KeyMsg:
		if m.state.ShowHelp {
			m.handleHelpKey(msg)
			return m, nil
		}
		cmd = m.handleKey(msg)

	case EventMsg:
		cmd = m.handleEvent(msg.Event)

	case pagerClosedMsg:
		if msg.err != nil {
			log.Error("pager failed", "title", msg.title, "err", msg.err)
			cmd = m.setError("pager failed: %v", msg.err)
		}

	case clearStatusMsg:
		m.state.ClearStatus(msg.seq)
		return m, nil

	default:
		// Non-keyboard messages for the text input (cursor blink)
		cmd = m.inputHandler.Update(msg)
	}

	m.refresh()
	return m, cmd
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	st := m.navigation.State()
	vs := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Source:        m.state.SourceName,
		Watching:      m.state.Watching,
		Items:         m.store.Snapshot(),
		Viewport:      st,
		Policy:        m.navigation.Policy().Name(),
		IsMarked:      m.selection.IsSelected,
		MarkCount:     m.selection.GetCount(),
		SearchQuery:   m.search.GetQuery(),
		MatchPosition: m.search.GetCurrentMatchPosition(),
		MatchCount:    m.search.GetMatchCount(),
		StatusMessage: m.state.StatusMessage,
		StatusIsError: m.state.StatusIsError,
		ShowScrollbar: m.config.Window.Scrollbar,
		ShowHelp:      m.state.ShowHelp,
		HelpScroll:    m.state.HelpScrollOffset,
		HelpModel:     m.help,
		Keys:          m.inputHandler.Keys(),
	}
	vs.MatchedBytes = func(index int) []int {
		if mr, ok := m.search.MatchFor(index); ok {
			return mr.MatchedIndexes
		}
		return nil
	}

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeDeleteConfirm:
		if cm, ok := m.inputHandler.ModeHandler().(*modes.ConfirmMode); ok {
			vs.DeleteTarget = cm.Target()
		}
	case inputtypes.ModeSearch, inputtypes.ModeGoto, inputtypes.ModeResize:
		vs.InputMode = m.inputHandler.ModeHandler().Name()
		if ti := m.inputHandler.TextInput(); ti != nil {
			vs.TextInput = m.renderer.Styles().Prompt.Render(m.inputHandler.Prompt()) + ti.View()
		}
	}

	return m.renderer.Render(vs)
}

// refresh runs one registration cycle: the focused item binds its commands
// and every binding it did not renew is dropped.
func (m *Model) refresh() {
	st := m.navigation.State()
	focus := st.Focus
	if st.IsEmpty() {
		focus = -1
	}

	if err := m.router.BeginCycle(focus); err != nil {
		log.Error("router: begin cycle", "err", err)
		m.router.Reset()
		return
	}
	for i := st.Start; i < st.End; i++ {
		if err := m.cmdExecutor.Bind(m.router, i); err != nil {
			log.Error("router: bind", "item", i, "err", err)
		}
	}
	if err := m.router.EndCycle(); err != nil {
		log.Error("router: end cycle", "err", err)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	ctx := &input.ModelContext{
		Navigation: m.navigation,
		Search:     m.search,
		Selection:  m.selection,
		Items:      m.store.Snapshot,
		Bound:      m.router.Bound,
	}

	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "?", "q":
		m.state.ToggleHelp()
	case "j", "down":
		m.state.ScrollHelp(1)
	case "k", "up":
		m.state.ScrollHelp(-1)
	}
}

// processAction handles a single action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.CommandAction:
		return m.route(a)

	case inputtypes.ChangeModeAction:
		m.mode = a.Mode

	case inputtypes.UpdateTextAction:
		if m.mode == inputtypes.ModeSearch {
			// Search as you type
			if err := m.search.StartSearch(a.Text); err != nil {
				return m.reportError(err)
			}
		}

	case inputtypes.SubmitTextAction:
		return m.handleSubmit(a)

	case inputtypes.CancelTextAction:
		if m.mode == inputtypes.ModeSearch {
			m.search.ClearSearch()
		}

	case inputtypes.DeselectAllAction:
		n := m.selection.GetCount()
		m.selection.DeselectAll()
		return m.setStatus("cleared %d marks", n)

	case inputtypes.SearchNavigateAction:
		var err error
		if a.Direction == "prev" {
			err = m.search.NavigatePrevious()
		} else {
			err = m.search.NavigateNext()
		}
		if err != nil {
			return m.reportError(err)
		}

	case inputtypes.TogglePolicyAction:
		p := m.navigation.TogglePolicy()
		m.config.Window.Policy = p.Name()
		if m.bus != nil {
			m.bus.Publish(eventbus.ConfigChangedEvent{Policy: p.Name(), WindowSize: m.config.Window.Size})
		}
		return m.setStatus("scrolling: %s", p.Name())

	case inputtypes.ToggleHelpAction:
		m.state.ToggleHelp()

	case inputtypes.ReloadAction:
		if m.bus != nil {
			m.bus.Publish(eventbus.ReloadRequestedEvent{})
		}
		return m.setStatus("reloading...")

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// route sends a command identifier to the viewport or to the router
func (m *Model) route(a inputtypes.CommandAction) tea.Cmd {
	if inputtypes.IsViewportCommand(a.ID) {
		if err := m.navigate(a); err != nil {
			return m.reportError(err)
		}
		return nil
	}

	req := commands.NewRequest(m.store.Snapshot())
	handled, err := m.router.Dispatch(a.ID, req)
	if !handled {
		log.Debug("command not handled", "command", a.ID)
		return nil
	}

	// Handlers may have changed the list underneath the window
	if n := m.store.Len(); n != m.navigation.State().Count {
		if rerr := m.navigation.SetItemCount(n); rerr != nil {
			log.Error("reconcile after command", "command", a.ID, "err", rerr)
		}
		m.fitWindow()
		m.search.Refresh()
	}

	cmds := []tea.Cmd{req.Cmd()}
	if err != nil {
		log.Warn("command failed", "command", a.ID, "err", err)
		cmds = append(cmds, m.setError("%s: %v", a.ID, err))
	} else if status := req.Status(); status != "" {
		cmds = append(cmds, m.setStatus("%s", status))
	}
	return tea.Batch(cmds...)
}

func (m *Model) navigate(a inputtypes.CommandAction) error {
	switch a.ID {
	case inputtypes.CmdIncrement:
		return m.navigation.Navigate(navigation.DirectionDown)
	case inputtypes.CmdDecrement:
		return m.navigation.Navigate(navigation.DirectionUp)
	case inputtypes.CmdGoToIndex:
		return m.navigation.MoveToIndex(a.Arg)
	case inputtypes.CmdResizeWindow:
		if a.Arg < 1 {
			return nil
		}
		m.state.FixedSize = true
		m.state.DesiredSize = a.Arg
		return m.navigation.Resize(a.Arg)
	}
	return nil
}

func (m *Model) handleSubmit(a inputtypes.SubmitTextAction) tea.Cmd {
	text := strings.TrimSpace(a.Text)

	switch a.Mode {
	case inputtypes.ModeSearch:
		if err := m.search.StartSearch(text); err != nil {
			return m.reportError(err)
		}
		if text != "" && m.search.GetMatchCount() == 0 {
			return m.setStatus("no matches for %q", text)
		}

	case inputtypes.ModeGoto:
		line, err := strconv.Atoi(text)
		if err != nil || line < 1 || line > m.store.Len() {
			return m.setError("no line %q", text)
		}
		return m.route(inputtypes.CommandAction{ID: inputtypes.CmdGoToIndex, Arg: line - 1})

	case inputtypes.ModeResize:
		size, err := strconv.Atoi(text)
		if err != nil || size < 1 {
			return m.setError("invalid window size %q", text)
		}
		return m.route(inputtypes.CommandAction{ID: inputtypes.CmdResizeWindow, Arg: size})
	}
	return nil
}

// handleEvent processes domain events forwarded from the event bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ItemsLoadedEvent:
		return m.loadItems(e)

	case eventbus.ErrorEvent:
		log.Error("background error", "message", e.Message, "err", e.Err)
		if e.Err != nil {
			return m.setError("%s: %v", e.Message, e.Err)
		}
		return m.setError("%s", e.Message)

	case eventbus.WatchStartedEvent:
		m.state.Watching = true
		if m.state.SourceName == "" {
			m.state.SourceName = e.Path
		}

	case eventbus.ConfigSavedEvent:
		return m.setStatus("saved %s", e.Path)
	}
	return nil
}

func (m *Model) loadItems(e eventbus.ItemsLoadedEvent) tea.Cmd {
	m.store.Replace(e.Items)

	live := make([]string, len(e.Items))
	for i, it := range e.Items {
		live[i] = it.ID
	}
	m.selection.Retain(live)

	err := m.navigation.SetItemCount(len(e.Items))
	m.fitWindow()
	m.search.Refresh()
	if e.Source != "" {
		m.state.SourceName = e.Source
	}
	m.state.Loaded = true

	if err != nil {
		return m.reportError(err)
	}
	if e.Reload {
		return m.setStatus("reloaded %d items", len(e.Items))
	}
	return nil
}

// fitWindow applies the wanted window size: the chosen one, or the
// terminal height. The engine clamps sizes to the list length, so this runs
// again whenever the list or the terminal changes.
func (m *Model) fitWindow() {
	size := m.state.DesiredSize
	if !m.state.FixedSize {
		if m.height <= 0 {
			return
		}
		size = views.FitWindow(m.height)
	}
	if err := m.navigation.Resize(size); err != nil {
		log.Error("fit window", "size", size, "err", err)
	}
}

func (m *Model) reportError(err error) tea.Cmd {
	var ie *viewport.InvariantError
	if errors.As(err, &ie) {
		return m.setError("viewport repaired: %s", ie.Rule)
	}
	return m.setError("%v", err)
}

func (m *Model) setStatus(format string, args ...any) tea.Cmd {
	return clearStatusAfter(m.state.SetStatus(format, args...))
}

func (m *Model) setError(format string, args ...any) tea.Cmd {
	return clearStatusAfter(m.state.SetError(format, args...))
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

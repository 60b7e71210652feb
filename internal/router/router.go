// Package router delivers named commands to whichever list item holds focus.
//
// Items propose their bindings on every refresh cycle. Proposals from items
// other than the focused one are dropped, and a proposal from the focused
// item replaces the previous handler for that command, so each command has
// at most one live handler at any time.
package router

import (
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	// ErrNoCycle is returned when registration is attempted outside a refresh cycle.
	ErrNoCycle = errors.New("router: no refresh cycle in progress")
	// ErrCycleActive is returned when a cycle is started before the previous one ended.
	ErrCycleActive = errors.New("router: refresh cycle already in progress")
)

// Handler runs a command for the item at index. snap is the caller's view of
// the list at dispatch time; handlers must read list state from it.
type Handler[S any] func(item int, snap S) error

type binding[S any] struct {
	item    int
	handler Handler[S]
}

// Router holds the live command table for one list.
type Router[S any] struct {
	mu      sync.Mutex
	focus   int
	live    map[string]binding[S]
	seen    map[string]struct{}
	inCycle bool
	logger  *log.Logger
}

type options struct {
	logger *log.Logger
}

// Option configures a Router.
type Option func(*options)

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates a router with no focus and no bindings.
func New[S any](opts ...Option) *Router[S] {
	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Router[S]{
		focus:  -1,
		live:   make(map[string]binding[S]),
		logger: o.logger,
	}
}

// BeginCycle opens a registration pass for the given focused index.
// Bindings owned by other items are dropped immediately.
func (r *Router[S]) BeginCycle(focus int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.inCycle {
		return ErrCycleActive
	}
	r.inCycle = true
	r.seen = make(map[string]struct{})
	r.refocusLocked(focus)
	return nil
}

// RegisterForItem proposes handler for command on behalf of item. It is a
// no-op unless item is the focused index. A nil handler removes the binding.
func (r *Router[S]) RegisterForItem(item int, command string, handler Handler[S]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.inCycle {
		return ErrNoCycle
	}
	if item != r.focus {
		return nil
	}

	delete(r.live, command)
	if handler == nil {
		return nil
	}
	r.live[command] = binding[S]{item: item, handler: handler}
	r.seen[command] = struct{}{}
	return nil
}

// EndCycle closes the registration pass. Commands the focused item did not
// register during the pass are dropped.
func (r *Router[S]) EndCycle() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.inCycle {
		return ErrNoCycle
	}
	for command := range r.live {
		if _, ok := r.seen[command]; !ok {
			delete(r.live, command)
		}
	}
	r.inCycle = false
	r.seen = nil
	return nil
}

// Focus returns the focused index of the open cycle.
func (r *Router[S]) Focus() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.inCycle {
		return -1, ErrNoCycle
	}
	return r.focus, nil
}

// Refocus records a focus change outside a cycle so that handlers of the
// previously focused item stop receiving commands right away.
func (r *Router[S]) Refocus(focus int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refocusLocked(focus)
}

func (r *Router[S]) refocusLocked(focus int) {
	if focus == r.focus {
		return
	}
	r.focus = focus
	for command, b := range r.live {
		if b.item != focus {
			delete(r.live, command)
		}
	}
}

// Dispatch runs the live handler for command. It reports false when no
// handler is bound.
func (r *Router[S]) Dispatch(command string, snap S) (bool, error) {
	r.mu.Lock()
	b, ok := r.live[command]
	r.mu.Unlock()

	if !ok {
		r.logger.Debug("router: no handler", "command", command)
		return false, nil
	}
	return true, b.handler(b.item, snap)
}

// Bound reports whether command currently has a handler.
func (r *Router[S]) Bound(command string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.live[command]
	return ok
}

// Commands returns the bound command names in sorted order.
func (r *Router[S]) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.live))
}

// Reset drops every binding and forgets the focus.
func (r *Router[S]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.focus = -1
	r.live = make(map[string]binding[S])
	r.seen = nil
	r.inCycle = false
}

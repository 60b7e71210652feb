package router

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	items []string
}

type call struct {
	item int
	text string
}

// registerAll mimics a refresh pass where every visible item proposes a handler.
func registerAll(t *testing.T, r *Router[snapshot], focus, start, end int, command string, calls *[]call) {
	t.Helper()
	require.NoError(t, r.BeginCycle(focus))
	for i := start; i < end; i++ {
		require.NoError(t, r.RegisterForItem(i, command, func(item int, snap snapshot) error {
			*calls = append(*calls, call{item: item, text: snap.items[item]})
			return nil
		}))
	}
	require.NoError(t, r.EndCycle())
}

func TestOnlyTheFocusedItemReceivesCommands(t *testing.T) {
	t.Parallel()

	r := New[snapshot]()
	var calls []call
	registerAll(t, r, 2, 0, 5, "toggle", &calls)

	handled, err := r.Dispatch("toggle", snapshot{items: []string{"a", "b", "c", "d", "e"}})
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, []call{{item: 2, text: "c"}}, calls)
}

func TestStaleHandlersNeverFire(t *testing.T) {
	t.Parallel()

	r := New[snapshot]()
	var calls []call
	snap := snapshot{items: []string{"a", "b", "c", "d", "e", "f"}}

	registerAll(t, r, 3, 0, 5, "activate", &calls)
	r.Refocus(4)
	assert.False(t, r.Bound("activate"))

	registerAll(t, r, 4, 0, 5, "activate", &calls)
	handled, err := r.Dispatch("activate", snap)
	require.NoError(t, err)
	require.True(t, handled)

	assert.Equal(t, []call{{item: 4, text: "e"}}, calls)
}

func TestRegisteringAgainReplacesTheHandler(t *testing.T) {
	t.Parallel()

	r := New[snapshot]()
	var got []string

	require.NoError(t, r.BeginCycle(0))
	require.NoError(t, r.RegisterForItem(0, "yank", func(int, snapshot) error {
		got = append(got, "first")
		return nil
	}))
	require.NoError(t, r.RegisterForItem(0, "yank", func(int, snapshot) error {
		got = append(got, "second")
		return nil
	}))
	require.NoError(t, r.EndCycle())

	_, err := r.Dispatch("yank", snapshot{})
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, got)
}

func TestUnregisteredCommandIsANoOp(t *testing.T) {
	t.Parallel()

	r := New[snapshot]()
	handled, err := r.Dispatch("missing", snapshot{})
	require.NoError(t, err)
	assert.False(t, handled)
}

func TestHandlerErrorsPropagate(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := New[snapshot]()
	require.NoError(t, r.BeginCycle(1))
	require.NoError(t, r.RegisterForItem(1, "delete", func(int, snapshot) error { return boom }))
	require.NoError(t, r.EndCycle())

	handled, err := r.Dispatch("delete", snapshot{})
	assert.True(t, handled)
	require.ErrorIs(t, err, boom)
}

func TestCycleMisuse(t *testing.T) {
	t.Parallel()

	r := New[snapshot]()
	require.ErrorIs(t, r.RegisterForItem(0, "x", func(int, snapshot) error { return nil }), ErrNoCycle)
	require.ErrorIs(t, r.EndCycle(), ErrNoCycle)

	_, err := r.Focus()
	require.ErrorIs(t, err, ErrNoCycle)

	require.NoError(t, r.BeginCycle(3))
	require.ErrorIs(t, r.BeginCycle(3), ErrCycleActive)

	focus, err := r.Focus()
	require.NoError(t, err)
	assert.Equal(t, 3, focus)
	require.NoError(t, r.EndCycle())
}

func TestCommandsNotRenewedAreDropped(t *testing.T) {
	t.Parallel()

	r := New[snapshot]()
	noop := func(int, snapshot) error { return nil }

	require.NoError(t, r.BeginCycle(0))
	require.NoError(t, r.RegisterForItem(0, "open", noop))
	require.NoError(t, r.RegisterForItem(0, "yank", noop))
	require.NoError(t, r.EndCycle())
	assert.Equal(t, []string{"open", "yank"}, r.Commands())

	require.NoError(t, r.BeginCycle(0))
	require.NoError(t, r.RegisterForItem(0, "yank", noop))
	require.NoError(t, r.EndCycle())
	assert.Equal(t, []string{"yank"}, r.Commands())

	require.NoError(t, r.BeginCycle(0))
	require.NoError(t, r.RegisterForItem(0, "yank", nil))
	require.NoError(t, r.EndCycle())
	assert.Empty(t, r.Commands())
}

func TestResetDropsEverything(t *testing.T) {
	t.Parallel()

	r := New[snapshot]()
	var calls []call
	registerAll(t, r, 1, 0, 3, "toggle", &calls)
	require.True(t, r.Bound("toggle"))

	r.Reset()
	assert.False(t, r.Bound("toggle"))
	assert.Empty(t, r.Commands())
}

func TestLatestHandlerWinsAcrossCycles(t *testing.T) {
	t.Parallel()

	r := New[snapshot]()
	var got []string
	snap := snapshot{items: []string{"a", "b", "c", "d", "e"}}

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, r.BeginCycle(3))
		require.NoError(t, r.RegisterForItem(3, "toggle", func(int, snapshot) error {
			got = append(got, name)
			return nil
		}))
		require.NoError(t, r.EndCycle())

		handled, err := r.Dispatch("toggle", snap)
		require.NoError(t, err)
		require.True(t, handled)
	}

	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestProposalFromUnfocusedItemNeverFires(t *testing.T) {
	t.Parallel()

	r := New[snapshot]()
	fired := false
	snap := snapshot{items: []string{"a", "b", "c", "d", "e", "f"}}

	require.NoError(t, r.BeginCycle(3))
	require.NoError(t, r.RegisterForItem(5, "open", func(int, snapshot) error {
		fired = true
		return nil
	}))
	require.NoError(t, r.EndCycle())

	for _, focus := range []int{5, 3, 5} {
		r.Refocus(focus)
		handled, err := r.Dispatch("open", snap)
		require.NoError(t, err)
		assert.False(t, handled, "focus %d", focus)
	}
	assert.False(t, fired)
}

func TestDispatchLogsThroughInjectedLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	r := New[snapshot](WithLogger(logger))

	handled, err := r.Dispatch("missing", snapshot{})
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Contains(t, buf.String(), "router: no handler")
	assert.Contains(t, buf.String(), "missing")
}

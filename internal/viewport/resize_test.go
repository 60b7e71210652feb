package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		pref   ResizePreference
		size   int
		focus  int
		resize int
		want   State
	}{
		{
			name: "grow from the end", pref: PreferEnd, size: 3, focus: 0, resize: 5,
			want: State{Focus: 0, Start: 0, End: 5, Size: 5, Count: 10},
		},
		{
			name: "grow from the start once the end is reached", pref: PreferEnd, size: 3, focus: 9, resize: 5,
			want: State{Focus: 9, Start: 5, End: 10, Size: 5, Count: 10},
		},
		{
			name: "shrink from the end", pref: PreferEnd, size: 5, focus: 0, resize: 2,
			want: State{Focus: 0, Start: 0, End: 2, Size: 2, Count: 10},
		},
		{
			name: "shrink from the start when focus sits at the end", pref: PreferEnd, size: 5, focus: 9, resize: 2,
			want: State{Focus: 9, Start: 8, End: 10, Size: 2, Count: 10},
		},
		{
			name: "prefer start grows towards the top", pref: PreferStart, size: 3, focus: 5, resize: 5,
			want: State{Focus: 5, Start: 1, End: 6, Size: 5, Count: 10},
		},
		{
			name: "prefer end grows towards the bottom", pref: PreferEnd, size: 3, focus: 5, resize: 5,
			want: State{Focus: 5, Start: 3, End: 8, Size: 5, Count: 10},
		},
		{
			name: "prefer start shrinks from the top", pref: PreferStart, size: 5, focus: 9, resize: 2,
			want: State{Focus: 9, Start: 8, End: 10, Size: 2, Count: 10},
		},
		{
			name: "oversized request shows the whole list and keeps the target", pref: PreferEnd, size: 5, focus: 2, resize: 100,
			want: State{Focus: 2, Start: 0, End: 10, Size: 100, Count: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEngine(10, tt.size, WithResizePreference(tt.pref))
			_, err := e.JumpFocus(tt.focus)
			require.NoError(t, err)

			tr, err := e.ResizeWindow(tt.resize)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.Next)
		})
	}
}

func TestResizeWindowIsIdempotent(t *testing.T) {
	t.Parallel()

	e := newEngine(10, 5)
	_, _ = e.JumpFocus(6)

	tr, err := e.ResizeWindow(5)
	require.NoError(t, err)
	assert.False(t, tr.Changed())

	tr, err = e.ResizeWindow(3)
	require.NoError(t, err)
	require.True(t, tr.Changed())

	tr, err = e.ResizeWindow(3)
	require.NoError(t, err)
	assert.False(t, tr.Changed())
}

func TestResizeWindowToSizeAboveCountIsIdempotent(t *testing.T) {
	t.Parallel()

	e := newEngine(5, 10)
	require.Equal(t, State{Focus: 0, Start: 0, End: 5, Size: 10, Count: 5}, e.State())

	tr, err := e.ResizeWindow(e.State().Size)
	require.NoError(t, err)
	assert.False(t, tr.Changed())
	assert.Equal(t, 10, e.State().Size)
}

func TestResizeTargetSurvivesListGrowth(t *testing.T) {
	t.Parallel()

	e := newEngine(5, 3)
	tr, err := e.ResizeWindow(10)
	require.NoError(t, err)
	assert.Equal(t, State{Focus: 0, Start: 0, End: 5, Size: 10, Count: 5}, tr.Next)

	tr, err = e.Reconcile(20)
	require.NoError(t, err)
	assert.Equal(t, State{Focus: 0, Start: 0, End: 10, Size: 10, Count: 20}, tr.Next)
}

func TestResizeWindowRejectsNonPositive(t *testing.T) {
	t.Parallel()

	e := newEngine(10, 5)
	for _, n := range []int{0, -3} {
		tr, err := e.ResizeWindow(n)
		require.NoError(t, err)
		assert.False(t, tr.Changed())
	}
}

func TestParseResizePreference(t *testing.T) {
	t.Parallel()

	p, err := ParseResizePreference("start")
	require.NoError(t, err)
	assert.Equal(t, PreferStart, p)

	p, err = ParseResizePreference("")
	require.NoError(t, err)
	assert.Equal(t, PreferEnd, p)

	_, err = ParseResizePreference("middle")
	require.Error(t, err)
}

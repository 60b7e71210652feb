package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vlist/internal/domain"
)

func TestMemoryItemStore(t *testing.T) {
	t.Parallel()

	s := NewMemoryItemStore(
		domain.Item{ID: "a", Text: "alpha"},
		domain.Item{ID: "b", Text: "beta"},
	)
	s.Append(domain.Item{ID: "c", Text: "gamma"})
	require.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.IndexOf("c"))
	assert.Equal(t, -1, s.IndexOf("zzz"))

	snap := s.Snapshot()
	idx, removed, ok := s.RemoveByID("b")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "beta", removed.Text)
	assert.Equal(t, 2, s.Len())

	// Earlier snapshots are unaffected by later mutations.
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, snap.Texts())
	assert.Equal(t, []string{"alpha", "gamma"}, s.Snapshot().Texts())

	_, _, ok = s.RemoveByID("b")
	assert.False(t, ok)

	s.Replace(nil)
	assert.Equal(t, 0, s.Len())
}

func TestSnapshotAt(t *testing.T) {
	t.Parallel()

	snap := domain.Snapshot{{ID: "a", Text: "alpha"}}
	it, ok := snap.At(0)
	require.True(t, ok)
	assert.Equal(t, "alpha", it.Text)

	_, ok = snap.At(1)
	assert.False(t, ok)
	_, ok = snap.At(-1)
	assert.False(t, ok)
}

package logic

import (
	"slices"
	"sync"

	"vlist/internal/domain"
)

// MemoryItemStore is an in-memory implementation of ItemStore
type MemoryItemStore struct {
	mu    sync.RWMutex
	items []domain.Item
}

// NewMemoryItemStore creates a new memory-based item store
func NewMemoryItemStore(items ...domain.Item) *MemoryItemStore {
	return &MemoryItemStore{
		items: slices.Clone(items),
	}
}

func (s *MemoryItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Snapshot returns a copy so callers can hold it across mutations
func (s *MemoryItemStore) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Snapshot(slices.Clone(s.items))
}

func (s *MemoryItemStore) Replace(items []domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = slices.Clone(items)
}

func (s *MemoryItemStore) Append(item domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

func (s *MemoryItemStore) RemoveByID(id string) (int, domain.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return -1, domain.Item{}, false
	}
	removed := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	return i, removed, true
}

func (s *MemoryItemStore) IndexOf(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id)
}

func (s *MemoryItemStore) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(it domain.Item) bool { return it.ID == id })
}

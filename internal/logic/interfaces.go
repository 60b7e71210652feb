package logic

import "vlist/internal/domain"

// ItemStore provides ordered access to the browsed items
type ItemStore interface {
	Len() int
	Snapshot() domain.Snapshot
	Replace(items []domain.Item)
	Append(item domain.Item)
	RemoveByID(id string) (index int, removed domain.Item, ok bool)
	IndexOf(id string) int
}

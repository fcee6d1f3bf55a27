// Package memory provides a thread-safe in-memory implementation of the
// storage interfaces. It is intended for tests and prototyping and
// deliberately keeps the implementation simple.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ninalamo/itemsvc/internal/item"
	"github.com/ninalamo/itemsvc/internal/storage"
)

// Store is a mutex-guarded map of items with a monotonically increasing ID
// counter.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]item.Item
}

var _ storage.ItemStore = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		nextID: 1,
		items:  make(map[int64]item.Item),
	}
}

func (s *Store) CreateItem(_ context.Context, draft item.Draft) (item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	it := item.Item{
		ID:          s.nextID,
		Name:        draft.Name,
		Description: cloneString(draft.Description),
		Done:        draft.Done,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextID++
	s.items[it.ID] = it
	return cloneItem(it), nil
}

func (s *Store) ListItems(_ context.Context, skip, limit int) ([]item.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := []item.Item{}
	for _, id := range ids {
		if skip > 0 {
			skip--
			continue
		}
		if len(result) >= limit {
			break
		}
		result = append(result, cloneItem(s.items[id]))
	}
	return result, nil
}

func (s *Store) GetItem(_ context.Context, id int64) (item.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return item.Item{}, storage.ErrNotFound
	}
	return cloneItem(it), nil
}

func (s *Store) UpdateItem(_ context.Context, id int64, draft item.Draft) (item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.items[id]
	if !ok {
		return item.Item{}, storage.ErrNotFound
	}

	existing.Name = draft.Name
	existing.Description = cloneString(draft.Description)
	existing.Done = draft.Done
	existing.UpdatedAt = time.Now().UTC()

	s.items[id] = existing
	return cloneItem(existing), nil
}

func (s *Store) DeleteItem(_ context.Context, id int64) (item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.items[id]
	if !ok {
		return item.Item{}, storage.ErrNotFound
	}
	delete(s.items, id)
	return cloneItem(existing), nil
}

func cloneItem(it item.Item) item.Item {
	it.Description = cloneString(it.Description)
	return it
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

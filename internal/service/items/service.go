// Package items implements the domain-facing repository over item records.
package items

import (
	"context"
	"fmt"
	"strings"

	"github.com/ninalamo/itemsvc/internal/item"
	"github.com/ninalamo/itemsvc/internal/logging"
	"github.com/ninalamo/itemsvc/internal/storage"
)

// DefaultListLimit applies when a caller does not specify one.
const DefaultListLimit = 10

// Service manages item records. It holds no state between operations; every
// call begins a fresh read against the store.
type Service struct {
	store storage.ItemStore
	log   *logging.Logger
}

// New constructs an item service.
func New(store storage.ItemStore, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NewDefault("items")
	}
	return &Service{store: store, log: log}
}

// Create persists a new item from the draft and returns it with its assigned
// ID.
func (s *Service) Create(ctx context.Context, draft item.Draft) (item.Item, error) {
	if err := validateDraft(draft); err != nil {
		return item.Item{}, err
	}

	created, err := s.store.CreateItem(ctx, draft)
	if err != nil {
		return item.Item{}, err
	}
	s.log.Infof("item %d created", created.ID)
	return created, nil
}

// List returns items in creation order, skipping skip records and returning
// at most limit.
func (s *Service) List(ctx context.Context, skip, limit int) ([]item.Item, error) {
	if skip < 0 {
		return nil, fmt.Errorf("skip must be non-negative")
	}
	if limit < 0 {
		return nil, fmt.Errorf("limit must be non-negative")
	}
	return s.store.ListItems(ctx, skip, limit)
}

// Get returns the item with the given ID.
func (s *Service) Get(ctx context.Context, id int64) (item.Item, error) {
	return s.store.GetItem(ctx, id)
}

// Update replaces every mutable field of the item with the draft's values.
// Fields absent from the draft overwrite the stored values with their zero
// forms; partial updates are not supported.
func (s *Service) Update(ctx context.Context, id int64, draft item.Draft) (item.Item, error) {
	if err := validateDraft(draft); err != nil {
		return item.Item{}, err
	}

	updated, err := s.store.UpdateItem(ctx, id, draft)
	if err != nil {
		return item.Item{}, err
	}
	s.log.Infof("item %d updated", id)
	return updated, nil
}

// Delete removes the item and returns its pre-deletion snapshot.
func (s *Service) Delete(ctx context.Context, id int64) (item.Item, error) {
	deleted, err := s.store.DeleteItem(ctx, id)
	if err != nil {
		return item.Item{}, err
	}
	s.log.Infof("item %d deleted", id)
	return deleted, nil
}

func validateDraft(draft item.Draft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

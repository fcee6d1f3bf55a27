package storage

import (
	"context"
	"errors"

	"github.com/ninalamo/itemsvc/internal/item"
)

// Store errors. ErrNotFound is a first-class domain outcome; ErrUnavailable
// wraps connectivity or transaction failures and aborts the operation.
var (
	ErrNotFound    = errors.New("item not found")
	ErrUnavailable = errors.New("store unavailable")
)

// ItemStore persists item records. Implementations scope each operation to a
// single storage session: writes either fully commit or fully roll back, even
// when the caller's context is cancelled mid-operation.
type ItemStore interface {
	// CreateItem assigns a fresh ID and persists the draft.
	CreateItem(ctx context.Context, draft item.Draft) (item.Item, error)

	// ListItems returns items in ascending creation order, skipping skip
	// records and returning at most limit. A limit of zero yields an empty
	// slice, as does a skip beyond the total count.
	ListItems(ctx context.Context, skip, limit int) ([]item.Item, error)

	// GetItem returns the item with the given ID or ErrNotFound.
	GetItem(ctx context.Context, id int64) (item.Item, error)

	// UpdateItem overwrites every mutable field from the draft. The read and
	// the write are serialized within one transaction scope so concurrent
	// operations on the same ID cannot interleave.
	UpdateItem(ctx context.Context, id int64, draft item.Draft) (item.Item, error)

	// DeleteItem removes the record and returns it as it existed immediately
	// before deletion, or ErrNotFound.
	DeleteItem(ctx context.Context, id int64) (item.Item, error)
}

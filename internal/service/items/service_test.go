package items

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ninalamo/itemsvc/internal/item"
	"github.com/ninalamo/itemsvc/internal/storage"
	"github.com/ninalamo/itemsvc/internal/storage/memory"
)

func strptr(s string) *string { return &s }

func TestCreateGetRoundTrip(t *testing.T) {
	svc := New(memory.New(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, item.Draft{Name: "Buy milk", Description: strptr("2%")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.Done {
		t.Fatalf("done should default to false")
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID || got.Name != created.Name || got.Done != created.Done {
		t.Fatalf("round trip mismatch: created %+v got %+v", created, got)
	}
	if got.Description == nil || *got.Description != "2%" {
		t.Fatalf("description not preserved: %v", got.Description)
	}
}

func TestCreateRequiresName(t *testing.T) {
	svc := New(memory.New(), nil)

	if _, err := svc.Create(context.Background(), item.Draft{}); err == nil {
		t.Fatalf("expected error for missing name")
	}
}

func TestUpdateReplacesAllFields(t *testing.T) {
	svc := New(memory.New(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, item.Draft{Name: "Buy milk", Description: strptr("whole")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, item.Draft{Name: "Buy milk", Description: strptr("2%"), Done: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("update must not change id: %d != %d", updated.ID, created.ID)
	}
	if !updated.Done || updated.Description == nil || *updated.Description != "2%" {
		t.Fatalf("fields not replaced: %+v", updated)
	}

	// A draft without a description clears the stored one.
	cleared, err := svc.Update(ctx, created.ID, item.Draft{Name: "Buy milk"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if cleared.Description != nil || cleared.Done {
		t.Fatalf("expected full replacement, got %+v", cleared)
	}
}

func TestUpdateMissingItem(t *testing.T) {
	svc := New(memory.New(), nil)

	_, err := svc.Update(context.Background(), 42, item.Draft{Name: "x"})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteReturnsSnapshotThenNotFound(t *testing.T) {
	svc := New(memory.New(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, item.Draft{Name: "Buy milk", Done: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := svc.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != created.ID || deleted.Name != created.Name || !deleted.Done {
		t.Fatalf("expected pre-deletion snapshot, got %+v", deleted)
	}

	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := svc.Delete(ctx, created.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestListOrderingAndPaging(t *testing.T) {
	svc := New(memory.New(), nil)
	ctx := context.Background()

	const n = 5
	ids := make(map[int64]bool)
	for i := 0; i < n; i++ {
		created, err := svc.Create(ctx, item.Draft{Name: fmt.Sprintf("task %d", i)})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if ids[created.ID] {
			t.Fatalf("duplicate id %d", created.ID)
		}
		ids[created.ID] = true
	}

	all, err := svc.List(ctx, 0, n)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != n {
		t.Fatalf("expected %d items, got %d", n, len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].ID <= all[i-1].ID {
			t.Fatalf("list not in creation order: %v", all)
		}
	}

	slice, err := svc.List(ctx, 1, 2)
	if err != nil {
		t.Fatalf("list slice: %v", err)
	}
	if len(slice) != 2 || slice[0].ID != all[1].ID || slice[1].ID != all[2].ID {
		t.Fatalf("expected items [1,3) of creation order, got %v", slice)
	}

	beyond, err := svc.List(ctx, n, 10)
	if err != nil {
		t.Fatalf("list beyond: %v", err)
	}
	if len(beyond) != 0 {
		t.Fatalf("expected empty slice for skip beyond count, got %v", beyond)
	}

	zero, err := svc.List(ctx, 0, 0)
	if err != nil {
		t.Fatalf("list zero limit: %v", err)
	}
	if len(zero) != 0 {
		t.Fatalf("limit 0 must return empty slice, got %v", zero)
	}
}

func TestListEmptyStore(t *testing.T) {
	svc := New(memory.New(), nil)

	list, err := svc.List(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("list on empty store: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty slice, got %v", list)
	}
}

func TestListRejectsNegativeArguments(t *testing.T) {
	svc := New(memory.New(), nil)

	if _, err := svc.List(context.Background(), -1, 10); err == nil {
		t.Fatalf("expected error for negative skip")
	}
	if _, err := svc.List(context.Background(), 0, -1); err == nil {
		t.Fatalf("expected error for negative limit")
	}
}

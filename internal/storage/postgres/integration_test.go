package postgres

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	_ "github.com/lib/pq"

	"github.com/ninalamo/itemsvc/internal/item"
	"github.com/ninalamo/itemsvc/internal/storage"
)

func TestStoreIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping postgres integration test")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	store := New(db)

	desc := "2%"
	created, err := store.CreateItem(ctx, item.Draft{Name: "Buy milk", Description: &desc})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := store.GetItem(ctx, created.ID)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if got.Name != "Buy milk" || got.Description == nil || *got.Description != "2%" {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	updated, err := store.UpdateItem(ctx, created.ID, item.Draft{Name: "Buy milk", Done: true})
	if err != nil {
		t.Fatalf("update item: %v", err)
	}
	if !updated.Done || updated.Description != nil {
		t.Fatalf("full replacement not applied: %+v", updated)
	}

	deleted, err := store.DeleteItem(ctx, created.ID)
	if err != nil {
		t.Fatalf("delete item: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("expected snapshot of %d, got %+v", created.ID, deleted)
	}

	if _, err := store.GetItem(ctx, created.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

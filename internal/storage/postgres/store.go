// Package postgres implements the storage interfaces backed by PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ninalamo/itemsvc/internal/item"
	"github.com/ninalamo/itemsvc/internal/storage"
)

// Store implements storage.ItemStore on a shared *sql.DB. Each mutating
// operation acquires its own transaction; the transaction commits on success
// and rolls back on every other exit path, including context cancellation.
type Store struct {
	db *sql.DB
}

var _ storage.ItemStore = (*Store)(nil)

// New creates a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// withTx scopes fn to a single transaction. The rollback is deferred so it
// runs even when fn panics or the context is cancelled mid-operation; after a
// successful commit the deferred rollback is a no-op.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable("begin", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return unavailable("commit", err)
	}
	return nil
}

func (s *Store) CreateItem(ctx context.Context, draft item.Draft) (item.Item, error) {
	now := time.Now().UTC()
	it := item.Item{
		Name:        draft.Name,
		Description: draft.Description,
		Done:        draft.Done,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			INSERT INTO items (name, description, done, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, it.Name, toNullString(it.Description), it.Done, it.CreatedAt, it.UpdatedAt)
		if err := row.Scan(&it.ID); err != nil {
			return unavailable("insert item", err)
		}
		return nil
	})
	if err != nil {
		return item.Item{}, err
	}
	return it, nil
}

func (s *Store) ListItems(ctx context.Context, skip, limit int) ([]item.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, done, created_at, updated_at
		FROM items
		ORDER BY id
		OFFSET $1 LIMIT $2
	`, skip, limit)
	if err != nil {
		return nil, unavailable("list items", err)
	}
	defer rows.Close()

	result := []item.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, unavailable("scan item", err)
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list items", err)
	}
	return result, nil
}

func (s *Store) GetItem(ctx context.Context, id int64) (item.Item, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, done, created_at, updated_at
		FROM items
		WHERE id = $1
	`, id)

	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return item.Item{}, storage.ErrNotFound
		}
		return item.Item{}, unavailable("get item", err)
	}
	return it, nil
}

// UpdateItem overwrites every mutable field in one conditional statement so a
// concurrent delete or update on the same ID cannot interleave with the read.
func (s *Store) UpdateItem(ctx context.Context, id int64, draft item.Draft) (item.Item, error) {
	it := item.Item{
		ID:          id,
		Name:        draft.Name,
		Description: draft.Description,
		Done:        draft.Done,
		UpdatedAt:   time.Now().UTC(),
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			UPDATE items
			SET name = $2, description = $3, done = $4, updated_at = $5
			WHERE id = $1
			RETURNING created_at
		`, id, it.Name, toNullString(it.Description), it.Done, it.UpdatedAt)
		if err := row.Scan(&it.CreatedAt); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrNotFound
			}
			return unavailable("update item", err)
		}
		return nil
	})
	if err != nil {
		return item.Item{}, err
	}
	return it, nil
}

// DeleteItem removes the record and returns the pre-deletion snapshot. The
// RETURNING clause makes the read and the delete one atomic statement.
func (s *Store) DeleteItem(ctx context.Context, id int64) (item.Item, error) {
	var it item.Item
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			DELETE FROM items
			WHERE id = $1
			RETURNING id, name, description, done, created_at, updated_at
		`, id)
		var err error
		it, err = scanItem(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrNotFound
			}
			return unavailable("delete item", err)
		}
		return nil
	})
	if err != nil {
		return item.Item{}, err
	}
	return it, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (item.Item, error) {
	var (
		it          item.Item
		description sql.NullString
	)
	if err := row.Scan(&it.ID, &it.Name, &description, &it.Done, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return item.Item{}, err
	}
	if description.Valid {
		it.Description = &description.String
	}
	return it, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", storage.ErrUnavailable, op, err)
}

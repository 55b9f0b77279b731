package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"shorts_studio/internal/store"
)

// SlotStore keeps named JSON slots in the content_slots table.
type SlotStore struct {
	db *sqlx.DB
}

func NewSlotStore(db *sqlx.DB) *SlotStore {
	return &SlotStore{db: db}
}

// Slot binds the store to one slot name so it satisfies store.Slot.
func (s *SlotStore) Slot(name string) *Slot {
	return &Slot{store: s, name: name}
}

func (s *SlotStore) Get(ctx context.Context, name string) ([]byte, error) {
	var payload []byte
	query := `SELECT payload FROM content_slots WHERE name = $1`

	err := s.db.GetContext(ctx, &payload, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("select slot %s: %w", name, err)
	}
	return payload, nil
}

func (s *SlotStore) Put(ctx context.Context, name string, payload []byte) error {
	query := `
		INSERT INTO content_slots (name, payload, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (name) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at`

	if _, err := s.db.ExecContext(ctx, query, name, string(payload)); err != nil {
		return fmt.Errorf("upsert slot %s: %w", name, err)
	}
	return nil
}

func (s *SlotStore) Delete(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM content_slots WHERE name = $1`, name); err != nil {
		return fmt.Errorf("delete slot %s: %w", name, err)
	}
	return nil
}

type Slot struct {
	store *SlotStore
	name  string
}

func (s *Slot) Read(ctx context.Context) ([]byte, error) {
	return s.store.Get(ctx, s.name)
}

func (s *Slot) Write(ctx context.Context, data []byte) error {
	return s.store.Put(ctx, s.name, data)
}

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"shorts_studio/internal/domain"
)

// ErrSlotEmpty is returned by a Slot that holds no value yet.
var ErrSlotEmpty = errors.New("slot is empty")

// Slot is a single named value holding the serialized collection.
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// ContentStore owns the content collection. The in-memory copy is the
// source of truth for the session; the slot is written after every
// mutation on a best-effort basis.
type ContentStore struct {
	mu     sync.Mutex
	slot   Slot
	items  []domain.ContentItem
	logger *slog.Logger
}

func New(slot Slot, logger *slog.Logger) *ContentStore {
	return &ContentStore{
		slot:   slot,
		logger: logger.With("component", "store"),
	}
}

// Load reads the slot and replaces the in-memory collection. Missing,
// corrupt or schema-invalid data yields an empty collection.
func (s *ContentStore) Load(ctx context.Context) []domain.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = s.read(ctx)
	return snapshot(s.items)
}

func (s *ContentStore) read(ctx context.Context) []domain.ContentItem {
	data, err := s.slot.Read(ctx)
	if errors.Is(err, ErrSlotEmpty) {
		return nil
	}
	if err != nil {
		s.logger.Warn("failed to read slot", "error", err)
		return nil
	}

	items, err := Decode(data)
	if err != nil {
		s.logger.Warn("discarding invalid slot contents", "error", err)
		return nil
	}

	s.logger.Debug("loaded content", "count", len(items))
	return items
}

// Persist overwrites the slot with items. Failures are logged and dropped.
func (s *ContentStore) Persist(ctx context.Context, items []domain.ContentItem) {
	data, err := json.Marshal(nonNil(items))
	if err != nil {
		s.logger.Error("failed to encode content", "error", err)
		return
	}
	if err := s.slot.Write(ctx, data); err != nil {
		s.logger.Warn("failed to persist content", "error", err, "count", len(items))
	}
}

// Upsert replaces the item with the same id in place, or prepends it.
func (s *ContentStore) Upsert(ctx context.Context, item domain.ContentItem) []domain.ContentItem {
	return s.mutate(ctx, func(items []domain.ContentItem) []domain.ContentItem {
		if i := indexOf(items, item.ID); i >= 0 {
			next := snapshot(items)
			next[i] = item.Clone()
			return next
		}
		next := make([]domain.ContentItem, 0, len(items)+1)
		next = append(next, item.Clone())
		return append(next, snapshot(items)...)
	})
}

// Remove deletes the item with id. Unknown ids leave the collection as is.
func (s *ContentStore) Remove(ctx context.Context, id string) []domain.ContentItem {
	return s.mutate(ctx, func(items []domain.ContentItem) []domain.ContentItem {
		next := make([]domain.ContentItem, 0, len(items))
		for _, item := range items {
			if item.ID != id {
				next = append(next, item.Clone())
			}
		}
		return next
	})
}

func (s *ContentStore) ToggleFavorite(ctx context.Context, id string) []domain.ContentItem {
	return s.mutate(ctx, func(items []domain.ContentItem) []domain.ContentItem {
		next := snapshot(items)
		if i := indexOf(next, id); i >= 0 {
			next[i].IsFavorite = !next[i].IsFavorite
		}
		return next
	})
}

// Items returns a copy of the current collection.
func (s *ContentStore) Items() []domain.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.items)
}

func (s *ContentStore) Get(id string) (domain.ContentItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexOf(s.items, id); i >= 0 {
		return s.items[i].Clone(), true
	}
	return domain.ContentItem{}, false
}

func (s *ContentStore) mutate(ctx context.Context, fn func([]domain.ContentItem) []domain.ContentItem) []domain.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = fn(s.items)
	s.Persist(ctx, s.items)
	return snapshot(s.items)
}

// Decode parses a serialized collection and rejects anything that is not a
// list of items with unique, non-empty ids and a known status.
func Decode(data []byte) ([]domain.ContentItem, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty payload")
	}

	var items []domain.ContentItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if items == nil {
		return nil, errors.New("payload is not a list")
	}

	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("item %d: missing id", i)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("item %d: duplicate id %q", i, item.ID)
		}
		if !item.Status.Valid() {
			return nil, fmt.Errorf("item %d: invalid status %q", i, item.Status)
		}
		seen[item.ID] = struct{}{}
	}
	return items, nil
}

func indexOf(items []domain.ContentItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func snapshot(items []domain.ContentItem) []domain.ContentItem {
	out := make([]domain.ContentItem, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}

func nonNil(items []domain.ContentItem) []domain.ContentItem {
	if items == nil {
		return []domain.ContentItem{}
	}
	return items
}

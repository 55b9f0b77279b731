package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"shorts_studio/internal/domain"
	"shorts_studio/internal/generation"
	"shorts_studio/internal/review"
)

var (
	ErrNotFound      = errors.New("content item not found")
	ErrInvalidFilter = errors.New("invalid filter")
)

type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

const week = 7 * 24 * time.Hour

// Filter narrows List. Query matches topic or niche case-insensitively; an
// empty Status or "all" keeps every status.
type Filter struct {
	Query  string
	Status string
	Sort   SortOrder
}

type Stats struct {
	Total     int
	ThisWeek  int
	Favorites int
	ByStatus  map[domain.Status]int
}

type Options struct {
	// SampleMode serves SampleItems while the store is empty.
	SampleMode bool
}

// Studio is the entry point for every user action: it runs generations,
// hands results to the store and routes edits through the review controller.
type Studio struct {
	generator  ContentGenerator
	thumbnails ThumbnailGenerator
	repo       ContentRepository
	review     *review.Controller
	opts       Options
	logger     *slog.Logger
}

func NewStudio(
	generator ContentGenerator,
	thumbnails ThumbnailGenerator,
	repo ContentRepository,
	sinks []ExportSink,
	logger *slog.Logger,
	opts Options,
) *Studio {
	reviewSinks := make([]review.ExportSink, 0, len(sinks))
	for _, sink := range sinks {
		reviewSinks = append(reviewSinks, sink)
	}

	return &Studio{
		generator:  generator,
		thumbnails: thumbnails,
		repo:       repo,
		review:     review.NewController(repo, reviewSinks, logger),
		opts:       opts,
		logger:     logger.With("component", "studio"),
	}
}

// Load reads the persisted collection and returns how many items it holds.
func (s *Studio) Load(ctx context.Context) int {
	items := s.repo.Load(ctx)
	s.logger.Debug("collection loaded", "count", len(items))
	return len(items)
}

// Generate validates the request, runs a generation and stores the new
// draft at the front of the collection.
func (s *Studio) Generate(ctx context.Context, req domain.GenerationRequest, onProgress func(domain.Progress)) (domain.ContentItem, error) {
	if err := req.Validate(); err != nil {
		return domain.ContentItem{}, err
	}

	startTime := time.Now()
	item, err := s.generator.Start(ctx, req, onProgress)
	if err != nil {
		s.logger.Warn("generation failed", "topic", req.Topic, "error", err)
		return domain.ContentItem{}, fmt.Errorf("generate content: %w", err)
	}

	s.repo.Upsert(ctx, *item)
	s.logger.Info("content generated",
		"item_id", item.ID,
		"scripts", len(item.Scripts),
		"duration", time.Since(startTime),
	)
	return *item, nil
}

// GenerateThumbnail produces a thumbnail for the item's selected script and
// stores it on the item. An item without a usable script is returned as is.
//
// The thumbnail is attached to the item as stored when the call returns, so
// edits made while it ran are kept. An item deleted in the meantime stays
// deleted.
func (s *Studio) GenerateThumbnail(ctx context.Context, id string) (domain.ContentItem, error) {
	item, stored := s.repo.Get(id)
	if !stored {
		var err error
		if item, err = s.Get(id); err != nil {
			return domain.ContentItem{}, err
		}
	}

	thumb, err := s.thumbnails.Generate(ctx, item)
	switch {
	case errors.Is(err, generation.ErrNoSelectedScript):
		s.logger.Info("no script selected, skipping thumbnail", "item_id", id)
		return item, nil
	case err != nil:
		return item, fmt.Errorf("generate thumbnail: %w", err)
	}

	if stored {
		latest, ok := s.repo.Get(id)
		if !ok {
			s.logger.Info("item deleted during thumbnail generation", "item_id", id)
			return domain.ContentItem{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		item = latest
	}

	item = s.review.AttachThumbnail(item, *thumb)
	return s.review.Commit(ctx, item), nil
}

func (s *Studio) SelectScript(ctx context.Context, id string, index int) (domain.ContentItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return domain.ContentItem{}, err
	}
	return s.review.Commit(ctx, s.review.SelectScript(item, index)), nil
}

func (s *Studio) EditScript(ctx context.Context, id string, index int, body string) (domain.ContentItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return domain.ContentItem{}, err
	}
	return s.review.Commit(ctx, s.review.EditScriptBody(item, index, body)), nil
}

func (s *Studio) Save(ctx context.Context, id string) (domain.ContentItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return domain.ContentItem{}, err
	}
	return s.review.Save(ctx, item), nil
}

// Export delivers the export text to every sink and marks the item
// exported. The text is returned even when a sink fails.
func (s *Studio) Export(ctx context.Context, id string) (domain.ContentItem, string, error) {
	item, err := s.Get(id)
	if err != nil {
		return domain.ContentItem{}, "", err
	}
	return s.review.Export(ctx, item)
}

// Summary renders the short history export without changing the item.
func (s *Studio) Summary(id string) (string, error) {
	item, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return review.BuildSummaryText(item), nil
}

// Delete removes the item. Deleting an id that is not stored does nothing.
func (s *Studio) Delete(ctx context.Context, id string) error {
	s.repo.Remove(ctx, id)
	s.logger.Info("item deleted", "item_id", id)
	return nil
}

func (s *Studio) ToggleFavorite(ctx context.Context, id string) (domain.ContentItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return domain.ContentItem{}, err
	}
	if _, stored := s.repo.Get(id); !stored {
		// a sample item is stored once touched
		s.repo.Upsert(ctx, item)
	}
	s.repo.ToggleFavorite(ctx, id)
	item.IsFavorite = !item.IsFavorite
	return item, nil
}

func (s *Studio) Get(id string) (domain.ContentItem, error) {
	if item, ok := s.repo.Get(id); ok {
		return item, nil
	}
	if s.showSamples() {
		for _, item := range SampleItems() {
			if item.ID == id {
				return item, nil
			}
		}
	}
	return domain.ContentItem{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// List returns the items matching the filter, newest first unless the filter
// asks otherwise.
func (s *Studio) List(filter Filter) ([]domain.ContentItem, error) {
	var status domain.Status
	if filter.Status != "" && filter.Status != "all" {
		parsed, err := domain.ParseStatus(filter.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
		}
		status = parsed
	}

	order := filter.Sort
	switch order {
	case "":
		order = SortNewest
	case SortNewest, SortOldest:
	default:
		return nil, fmt.Errorf("%w: unknown sort order %q", ErrInvalidFilter, order)
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	result := make([]domain.ContentItem, 0)
	for _, item := range s.items() {
		if status != "" && item.Status != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Topic), query) &&
			!strings.Contains(strings.ToLower(item.Niche), query) {
			continue
		}
		result = append(result, item)
	}

	slices.SortStableFunc(result, func(a, b domain.ContentItem) int {
		if order == SortOldest {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return result, nil
}

// Stats counts the visible collection. ThisWeek holds items created within
// the seven days before now.
func (s *Studio) Stats(now time.Time) Stats {
	stats := Stats{ByStatus: make(map[domain.Status]int)}
	weekAgo := now.Add(-week)

	for _, item := range s.items() {
		stats.Total++
		stats.ByStatus[item.Status]++
		if item.IsFavorite {
			stats.Favorites++
		}
		if item.CreatedAt.After(weekAgo) {
			stats.ThisWeek++
		}
	}
	return stats
}

// Generating reports whether a content generation is in flight.
func (s *Studio) Generating() bool {
	return s.generator.Active()
}

// Close abandons every outstanding generation.
func (s *Studio) Close() {
	s.generator.Close()
	s.thumbnails.Close()
}

func (s *Studio) items() []domain.ContentItem {
	items := s.repo.Items()
	if len(items) == 0 && s.opts.SampleMode {
		return SampleItems()
	}
	return items
}

func (s *Studio) showSamples() bool {
	return s.opts.SampleMode && len(s.repo.Items()) == 0
}

package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"shorts_studio/internal/domain"
)

type ContentGenerator interface {
	Start(ctx context.Context, req domain.GenerationRequest, onProgress func(domain.Progress)) (*domain.ContentItem, error)
	Active() bool
	Close()
}

type ThumbnailGenerator interface {
	Generate(ctx context.Context, item domain.ContentItem) (*domain.Thumbnail, error)
	Close()
}

type ContentRepository interface {
	Load(ctx context.Context) []domain.ContentItem
	Upsert(ctx context.Context, item domain.ContentItem) []domain.ContentItem
	Remove(ctx context.Context, id string) []domain.ContentItem
	ToggleFavorite(ctx context.Context, id string) []domain.ContentItem
	Items() []domain.ContentItem
	Get(id string) (domain.ContentItem, bool)
}

type ExportSink interface {
	Name() string
	Deliver(ctx context.Context, item domain.ContentItem, text string) error
}

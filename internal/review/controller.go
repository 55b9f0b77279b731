package review

import (
	"context"
	"fmt"
	"log/slog"

	"shorts_studio/internal/domain"
)

// Repository is where committed items are written back.
type Repository interface {
	Upsert(ctx context.Context, item domain.ContentItem) []domain.ContentItem
}

// ExportSink receives the rendered export of an item.
type ExportSink interface {
	Name() string
	Deliver(ctx context.Context, item domain.ContentItem, text string) error
}

// Controller applies user edits to working copies and writes them back.
//
// The edit operations take an item by value and return the edited copy;
// the argument is never modified. Nothing is persisted until Commit, Save
// or Export.
type Controller struct {
	repo   Repository
	sinks  []ExportSink
	logger *slog.Logger
}

func NewController(repo Repository, sinks []ExportSink, logger *slog.Logger) *Controller {
	return &Controller{
		repo:   repo,
		sinks:  sinks,
		logger: logger.With("component", "review"),
	}
}

// SelectScript picks the script variant the user wants. Indices outside the
// item's scripts are ignored.
func (c *Controller) SelectScript(item domain.ContentItem, index int) domain.ContentItem {
	out := item.Clone()
	if index >= 0 && index < len(out.Scripts) {
		out.SelectedScriptIndex = index
	}
	return out
}

// EditScriptBody replaces the body of one script and nothing else.
func (c *Controller) EditScriptBody(item domain.ContentItem, index int, body string) domain.ContentItem {
	out := item.Clone()
	if index >= 0 && index < len(out.Scripts) {
		out.Scripts[index].Body = body
	}
	return out
}

// AttachThumbnail sets or replaces the whole thumbnail.
func (c *Controller) AttachThumbnail(item domain.ContentItem, thumb domain.Thumbnail) domain.ContentItem {
	out := item.Clone()
	out.Thumbnail = &thumb
	return out
}

// MarkReady forces status to ready, whatever it was before.
func (c *Controller) MarkReady(item domain.ContentItem) domain.ContentItem {
	out := item.Clone()
	out.Status = domain.StatusReady
	return out
}

// MarkExported forces status to exported, whatever it was before.
func (c *Controller) MarkExported(item domain.ContentItem) domain.ContentItem {
	out := item.Clone()
	out.Status = domain.StatusExported
	return out
}

func (c *Controller) BuildExportText(item domain.ContentItem) string {
	return BuildExportText(item)
}

// Commit writes the working copy back as is.
func (c *Controller) Commit(ctx context.Context, item domain.ContentItem) domain.ContentItem {
	c.repo.Upsert(ctx, item)
	return item
}

// Save marks the item ready and writes it back. Saving an exported item
// moves it back to ready.
func (c *Controller) Save(ctx context.Context, item domain.ContentItem) domain.ContentItem {
	saved := c.MarkReady(item)
	c.repo.Upsert(ctx, saved)
	c.logger.Info("item saved", "item_id", saved.ID, "previous_status", item.Status)
	return saved
}

// Export renders the item, hands the text to every sink and then marks the
// item exported and writes it back. If a sink fails the item is returned
// unchanged with the error.
func (c *Controller) Export(ctx context.Context, item domain.ContentItem) (domain.ContentItem, string, error) {
	text := BuildExportText(item)
	exported := c.MarkExported(item)

	for _, sink := range c.sinks {
		if err := sink.Deliver(ctx, exported, text); err != nil {
			c.logger.Warn("export failed", "item_id", item.ID, "sink", sink.Name(), "error", err)
			return item, text, fmt.Errorf("export to %s: %w", sink.Name(), err)
		}
	}

	c.repo.Upsert(ctx, exported)
	c.logger.Info("item exported", "item_id", exported.ID, "sinks", len(c.sinks))
	return exported, text, nil
}

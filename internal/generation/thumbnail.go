package generation

import (
	"context"
	"fmt"
	"log/slog"

	"shorts_studio/internal/domain"
)

type ThumbnailConfig struct {
	AgentID string
}

// ThumbnailOrchestrator generates a thumbnail concept for the selected
// script of one item. It never modifies the item; attaching the result is
// up to the caller, so a failed regeneration leaves the previous thumbnail
// in place.
type ThumbnailOrchestrator struct {
	*runner
	cfg ThumbnailConfig
}

func NewThumbnailOrchestrator(client AgentClient, cfg ThumbnailConfig, logger *slog.Logger) *ThumbnailOrchestrator {
	return &ThumbnailOrchestrator{
		runner: newRunner(client, logger.With("component", "thumbnail")),
		cfg:    cfg,
	}
}

func (o *ThumbnailOrchestrator) Generate(ctx context.Context, item domain.ContentItem) (*domain.Thumbnail, error) {
	script, ok := item.SelectedScript()
	if !ok {
		return nil, ErrNoSelectedScript
	}
	if o.isClosed() {
		return nil, ErrAbandoned
	}

	logger := o.logger.With("item_id", item.ID, "script_index", item.SelectedScriptIndex)
	logger.Info("starting thumbnail generation")

	t, outcome, err := o.begin(ctx, thumbnailPrompt(item, script), o.cfg.AgentID)
	if err != nil {
		return nil, err
	}
	defer o.end(t)

	select {
	case out := <-outcome:
		thumb, err := resolveThumbnail(out)
		if err != nil {
			t.Fail(err)
			logger.Warn("thumbnail generation failed", "error", t.Err(), "duration", t.Duration())
			return nil, err
		}
		t.Succeed()
		logger.Info("thumbnail generation completed",
			"has_image", thumb.ImageURL != "",
			"duration", t.Duration(),
		)
		return thumb, nil
	case <-ctx.Done():
		t.Abandon()
		logger.Info("thumbnail generation abandoned", "reason", ctx.Err())
		return nil, fmt.Errorf("%w: %w", ErrAbandoned, ctx.Err())
	case <-o.closed:
		t.Abandon()
		logger.Info("thumbnail generation abandoned", "reason", "orchestrator closed")
		return nil, ErrAbandoned
	}
}

func resolveThumbnail(out callOutcome) (*domain.Thumbnail, error) {
	if out.err != nil {
		return nil, &GenerationError{Message: thumbUnexpectedMessage, Err: out.err}
	}
	if out.result == nil || !out.result.Success {
		reported := ""
		if out.result != nil {
			reported = out.result.Error
		}
		return nil, serviceError(reported, thumbFailedMessage)
	}

	thumb := NormalizeThumbnail(out.result.Payload(), out.result.FirstArtifactURL())
	return &thumb, nil
}

func thumbnailPrompt(item domain.ContentItem, script domain.Script) string {
	return fmt.Sprintf(
		"Generate a thumbnail concept for a YouTube Short about \"%s\". Script title: \"%s\". Hook: \"%s\". The tone is %s.",
		item.Topic, script.Title, script.Hook, script.Tone,
	)
}

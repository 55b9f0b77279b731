package generation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"shorts_studio/internal/domain"
	"shorts_studio/internal/progress"
)

type Config struct {
	AgentID      string
	TickInterval time.Duration
	Phases       []string
	Rand         progress.Rand
	Now          func() time.Time
	NewID        func() string
}

func (c *Config) setDefaults() {
	if c.TickInterval <= 0 {
		c.TickInterval = 2500 * time.Millisecond
	}
	if c.Now == nil {
		c.Now = func() time.Time { return time.Now().UTC() }
	}
	if c.NewID == nil {
		c.NewID = uuid.NewString
	}
}

// Orchestrator runs primary generations and turns their results into new
// draft content items.
//
// Only one generation should be active at a time. This is a precondition
// for callers and is not enforced: overlapping Start calls each run their
// own task.
type Orchestrator struct {
	*runner
	cfg Config
}

func NewOrchestrator(client AgentClient, cfg Config, logger *slog.Logger) *Orchestrator {
	cfg.setDefaults()
	return &Orchestrator{
		runner: newRunner(client, logger.With("component", "generation")),
		cfg:    cfg,
	}
}

// Start runs one generation. onProgress gets updates below 100 while the
// call is outstanding, then exactly one update at 100 once the outcome is
// known. It is never called concurrently with itself and never after Start
// returns. Cancelling ctx or closing the orchestrator abandons the
// generation; no final update is sent in that case.
func (o *Orchestrator) Start(ctx context.Context, req domain.GenerationRequest, onProgress func(domain.Progress)) (*domain.ContentItem, error) {
	if onProgress == nil {
		onProgress = func(domain.Progress) {}
	}
	if o.isClosed() {
		return nil, ErrAbandoned
	}
	req.Topic = strings.TrimSpace(req.Topic)
	req.Keywords = domain.NormalizeKeywords(req.Keywords)

	logger := o.logger.With("topic", req.Topic)
	logger.Info("starting generation", "audience", req.Audience, "tone", req.Tone, "keywords", len(req.Keywords))

	sim := progress.NewSimulator(o.cfg.Phases, o.cfg.Rand)
	stop := progress.NewReporter(sim, o.cfg.TickInterval, logger).Start(ctx, onProgress)
	defer stop()

	t, outcome, err := o.begin(ctx, contentPrompt(req), o.cfg.AgentID)
	if err != nil {
		return nil, err
	}
	defer o.end(t)

	select {
	case out := <-outcome:
		stop()
		item, err := o.resolve(req, out)
		if err != nil {
			t.Fail(err)
			onProgress(sim.Complete())
			logger.Warn("generation failed", "error", t.Err(), "duration", t.Duration())
			return nil, err
		}
		t.Succeed()
		onProgress(sim.Complete())
		logger.Info("generation completed",
			"item_id", item.ID,
			"scripts", len(item.Scripts),
			"duration", t.Duration(),
		)
		return item, nil
	case <-ctx.Done():
		t.Abandon()
		logger.Info("generation abandoned", "reason", ctx.Err())
		return nil, fmt.Errorf("%w: %w", ErrAbandoned, ctx.Err())
	case <-o.closed:
		t.Abandon()
		logger.Info("generation abandoned", "reason", "orchestrator closed")
		return nil, ErrAbandoned
	}
}

func (o *Orchestrator) resolve(req domain.GenerationRequest, out callOutcome) (*domain.ContentItem, error) {
	if out.err != nil {
		return nil, &GenerationError{Message: contentUnexpectedMessage, Err: out.err}
	}
	if out.result == nil || !out.result.Success {
		reported := ""
		if out.result != nil {
			reported = out.result.Error
		}
		return nil, serviceError(reported, contentFailedMessage)
	}

	payload := NormalizeContent(out.result.Payload())
	topic := payload.Topic
	if topic == "" {
		topic = req.Topic
	}

	return &domain.ContentItem{
		ID:                  o.cfg.NewID(),
		Topic:               topic,
		Niche:               req.Topic,
		Keywords:            req.Keywords,
		Audience:            req.Audience,
		Tone:                req.Tone,
		TrendResearch:       payload.TrendResearch,
		Scripts:             payload.Scripts,
		SelectedScriptIndex: 0,
		ContentNotes:        payload.ContentNotes,
		Status:              domain.StatusDraft,
		IsFavorite:          false,
		CreatedAt:           o.cfg.Now(),
	}, nil
}

func contentPrompt(req domain.GenerationRequest) string {
	var kws string
	if len(req.Keywords) > 0 {
		kws = fmt.Sprintf(" Keywords: %s.", strings.Join(req.Keywords, ", "))
	}
	return fmt.Sprintf(
		"Generate YouTube Shorts content for the niche: \"%s\".%s Target audience: %s. Content tone: %s. Research trending topics and write 3 engaging scripts.",
		req.Topic, kws, req.Audience, req.Tone,
	)
}

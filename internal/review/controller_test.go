package review

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"shorts_studio/internal/domain"
)

type fakeRepo struct {
	mu      sync.Mutex
	upserts []domain.ContentItem
}

func (r *fakeRepo) Upsert(_ context.Context, item domain.ContentItem) []domain.ContentItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts = append(r.upserts, item.Clone())
	return r.upserts
}

type fakeSink struct {
	name      string
	err       error
	delivered []domain.ContentItem
	texts     []string
}

func (f *fakeSink) Name() string { return f.name }

func (f *fakeSink) Deliver(_ context.Context, item domain.ContentItem, text string) error {
	if f.err != nil {
		return f.err
	}
	f.delivered = append(f.delivered, item)
	f.texts = append(f.texts, text)
	return nil
}

func sampleItem() domain.ContentItem {
	return domain.ContentItem{
		ID:       "item-1",
		Topic:    "AI Tools",
		Niche:    "tech",
		Keywords: []string{"productivity", "automation"},
		Audience: "Professionals",
		Tone:     "Educational",
		TrendResearch: domain.TrendResearch{
			TrendingTopics:   []domain.TrendingTopic{{Topic: "Agents", Reason: "everyone ships one", PopularityScore: "92"}},
			Hashtags:         []string{"#ai", "#tools", "#work"},
			CompetitorAngles: []domain.CompetitorAngle{{Angle: "Speed", Description: "fast demos"}},
			AudienceInsights: "short attention spans",
		},
		Scripts: []domain.Script{
			{Title: "One", Hook: "Stop", Body: "first body", CTA: "Follow", EstimatedDuration: "30s"},
			{Title: "Two", Hook: "Wait", Body: "second body", CTA: "Subscribe", EstimatedDuration: "45s"},
		},
		ContentNotes: "post at 9am",
		Status:       domain.StatusDraft,
		CreatedAt:    time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

type ControllerTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *fakeRepo
	sink *fakeSink
	c    *Controller
}

func (s *ControllerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = &fakeRepo{}
	s.sink = &fakeSink{name: "memory"}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.c = NewController(s.repo, []ExportSink{s.sink}, logger)
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (s *ControllerTestSuite) TestEditScriptBody_OnlyTouchesTargetScript() {
	item := sampleItem()
	before := item.Clone()

	edited := s.c.EditScriptBody(item, 1, "new body")

	s.Equal("new body", edited.Scripts[1].Body)
	s.Equal(before.Scripts[0], edited.Scripts[0])
	s.Equal(before.Scripts[1].Title, edited.Scripts[1].Title)
	s.Equal(before, item, "argument must not change")
	s.Empty(s.repo.upserts)
}

func (s *ControllerTestSuite) TestEditScriptBody_OutOfRangeIgnored() {
	item := sampleItem()

	s.Equal(item, s.c.EditScriptBody(item, 5, "x"))
	s.Equal(item, s.c.EditScriptBody(item, -1, "x"))
}

func (s *ControllerTestSuite) TestSelectScript() {
	item := sampleItem()

	s.Equal(1, s.c.SelectScript(item, 1).SelectedScriptIndex)
	s.Equal(0, s.c.SelectScript(item, 2).SelectedScriptIndex)
	s.Equal(0, s.c.SelectScript(item, -1).SelectedScriptIndex)
	s.Equal(0, item.SelectedScriptIndex)
}

func (s *ControllerTestSuite) TestAttachThumbnailReplacesWhole() {
	item := sampleItem()
	item.Thumbnail = &domain.Thumbnail{ConceptDescription: "old", TextOverlay: "OLD"}

	out := s.c.AttachThumbnail(item, domain.Thumbnail{ConceptDescription: "new"})

	s.Equal(&domain.Thumbnail{ConceptDescription: "new"}, out.Thumbnail)
	s.Equal("old", item.Thumbnail.ConceptDescription)
}

func (s *ControllerTestSuite) TestStatusIsLastWriteWins() {
	item := sampleItem()

	s.Equal(domain.StatusExported, s.c.MarkExported(s.c.MarkReady(item)).Status)
	s.Equal(domain.StatusReady, s.c.MarkReady(s.c.MarkExported(item)).Status)
	s.Equal(domain.StatusDraft, item.Status)
}

func (s *ControllerTestSuite) TestCommitWritesAsIs() {
	item := s.c.SelectScript(sampleItem(), 1)

	s.c.Commit(s.ctx, item)

	s.Require().Len(s.repo.upserts, 1)
	s.Equal(item, s.repo.upserts[0])
	s.Equal(domain.StatusDraft, s.repo.upserts[0].Status)
}

func (s *ControllerTestSuite) TestSaveMovesExportedBackToReady() {
	item := sampleItem()
	item.Status = domain.StatusExported

	saved := s.c.Save(s.ctx, item)

	s.Equal(domain.StatusReady, saved.Status)
	s.Require().Len(s.repo.upserts, 1)
	s.Equal(domain.StatusReady, s.repo.upserts[0].Status)
}

func (s *ControllerTestSuite) TestExport_Success() {
	item := sampleItem()

	exported, text, err := s.c.Export(s.ctx, item)

	s.Require().NoError(err)
	s.Equal(domain.StatusExported, exported.Status)
	s.Equal(BuildExportText(item), text)
	s.Require().Len(s.sink.delivered, 1)
	s.Equal(domain.StatusExported, s.sink.delivered[0].Status)
	s.Equal(text, s.sink.texts[0])
	s.Require().Len(s.repo.upserts, 1)
	s.Equal(domain.StatusExported, s.repo.upserts[0].Status)
}

func (s *ControllerTestSuite) TestExport_SinkFailureKeepsStatus() {
	boom := errors.New("clipboard unavailable")
	failing := &fakeSink{name: "clipboard", err: boom}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	c := NewController(s.repo, []ExportSink{failing, s.sink}, logger)
	item := sampleItem()
	item.Status = domain.StatusReady

	out, _, err := c.Export(s.ctx, item)

	s.ErrorIs(err, boom)
	s.Contains(err.Error(), "clipboard")
	s.Equal(domain.StatusReady, out.Status)
	s.Empty(s.repo.upserts)
	s.Empty(s.sink.delivered, "later sinks are not reached")
}

func TestBuildExportText_WithoutThumbnail(t *testing.T) {
	want := "=== AI Tools ===\n" +
		"Niche: tech\n" +
		"Audience: Professionals\n" +
		"Tone: Educational\n" +
		"Keywords: productivity, automation\n" +
		"\n" +
		"--- TRENDING TOPICS ---\n" +
		"- Agents (Score: 92) - everyone ships one\n" +
		"\n" +
		"--- HASHTAGS ---\n" +
		"#ai #tools #work\n" +
		"\n" +
		"--- COMPETITOR ANGLES ---\n" +
		"- Speed: fast demos\n" +
		"\n" +
		"--- AUDIENCE INSIGHTS ---\n" +
		"short attention spans\n" +
		"\n" +
		"--- SELECTED SCRIPT ---\n" +
		"Title: One\n" +
		"Hook: Stop\n" +
		"Body: first body\n" +
		"CTA: Follow\n" +
		"Duration: 30s\n" +
		"\n" +
		"--- CONTENT NOTES ---\n" +
		"post at 9am"

	got := BuildExportText(sampleItem())

	assert.Equal(t, want, got)
	assert.NotContains(t, got, "THUMBNAIL")
}

func TestBuildExportText_WithThumbnail(t *testing.T) {
	item := sampleItem()
	item.SelectedScriptIndex = 1
	item.Thumbnail = &domain.Thumbnail{
		ConceptDescription: "shocked face",
		TextOverlay:        "NO WAY",
		ColorScheme:        "red/yellow",
		EmotionalTrigger:   "surprise",
	}

	got := BuildExportText(item)

	assert.Contains(t, got, "Title: Two\nHook: Wait\nBody: second body")
	assert.Contains(t, got, "\n\n--- THUMBNAIL ---\n"+
		"Concept: shocked face\n"+
		"Text Overlay: NO WAY\n"+
		"Color Scheme: red/yellow\n"+
		"Emotional Trigger: surprise")
}

func TestBuildExportText_SparseItem(t *testing.T) {
	item := domain.ContentItem{Topic: "Bare", Niche: "n", Audience: "General", Tone: "Funny"}

	got := BuildExportText(item)

	assert.Equal(t, "=== Bare ===\nNiche: n\nAudience: General\nTone: Funny", got)
}

func TestBuildSummaryText(t *testing.T) {
	item := sampleItem()
	item.SelectedScriptIndex = 1

	got := BuildSummaryText(item)

	assert.Equal(t, "=== AI Tools ===\n"+
		"Niche: tech\n"+
		"Audience: Professionals\n"+
		"Tone: Educational\n"+
		"\n"+
		"--- SCRIPT ---\n"+
		"Title: Two\n"+
		"Hook: Wait\n"+
		"Body: second body\n"+
		"CTA: Subscribe\n"+
		"\n"+
		"--- HASHTAGS ---\n"+
		"#ai #tools #work", got)
}

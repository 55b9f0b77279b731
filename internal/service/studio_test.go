package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"shorts_studio/internal/domain"
	"shorts_studio/internal/generation"
	"shorts_studio/internal/service/mocks"
	"shorts_studio/internal/storage/file"
	"shorts_studio/internal/store"
)

type StudioTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	ctx  context.Context

	generator  *mocks.MockContentGenerator
	thumbnails *mocks.MockThumbnailGenerator
	repo       *mocks.MockContentRepository
	sink       *mocks.MockExportSink

	studio *Studio
	logger *slog.Logger
}

func (s *StudioTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()

	s.generator = mocks.NewMockContentGenerator(s.ctrl)
	s.thumbnails = mocks.NewMockThumbnailGenerator(s.ctrl)
	s.repo = mocks.NewMockContentRepository(s.ctrl)
	s.sink = mocks.NewMockExportSink(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.sink.EXPECT().Name().Return("memory").AnyTimes()

	s.studio = NewStudio(s.generator, s.thumbnails, s.repo, []ExportSink{s.sink}, s.logger, Options{})
}

func (s *StudioTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStudioTestSuite(t *testing.T) {
	suite.Run(t, new(StudioTestSuite))
}

func draft(id string, created time.Time) domain.ContentItem {
	return domain.ContentItem{
		ID:       id,
		Topic:    "AI Tools",
		Niche:    "AI Tools",
		Audience: "Professionals",
		Tone:     "Educational",
		Scripts: []domain.Script{
			{Title: "One", Hook: "Stop", Body: "first"},
			{Title: "Two", Hook: "Wait", Body: "second"},
		},
		Status:    domain.StatusDraft,
		CreatedAt: created,
	}
}

func (s *StudioTestSuite) validRequest() domain.GenerationRequest {
	return domain.GenerationRequest{Topic: "AI Tools", Audience: "Professionals", Tone: "Educational"}
}

func (s *StudioTestSuite) TestGenerate_StoresDraft() {
	item := draft("item-1", time.Now())
	req := s.validRequest()

	s.generator.EXPECT().Start(gomock.Any(), req, gomock.Any()).Return(&item, nil)
	s.repo.EXPECT().Upsert(gomock.Any(), item).Return([]domain.ContentItem{item})

	got, err := s.studio.Generate(s.ctx, req, nil)

	s.NoError(err)
	s.Equal(item, got)
}

func (s *StudioTestSuite) TestGenerate_InvalidRequestNeverCallsAgent() {
	req := s.validRequest()
	req.Topic = "   "

	_, err := s.studio.Generate(s.ctx, req, nil)

	s.ErrorIs(err, domain.ErrEmptyTopic)
}

func (s *StudioTestSuite) TestGenerate_FailureStoresNothing() {
	genErr := &generation.GenerationError{Message: "quota exhausted"}
	s.generator.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, genErr)

	_, err := s.studio.Generate(s.ctx, s.validRequest(), nil)

	var target *generation.GenerationError
	s.Require().ErrorAs(err, &target)
	s.Equal("quota exhausted", target.Message)
}

func (s *StudioTestSuite) TestGenerate_Abandoned() {
	s.generator.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, generation.ErrAbandoned)

	_, err := s.studio.Generate(s.ctx, s.validRequest(), nil)

	s.ErrorIs(err, generation.ErrAbandoned)
}

func (s *StudioTestSuite) TestGenerateThumbnail_AttachesAndCommits() {
	item := draft("item-1", time.Now())
	thumb := domain.Thumbnail{ImageURL: "https://cdn/x.png", ConceptDescription: "face"}

	s.repo.EXPECT().Get("item-1").Return(item, true).Times(2)
	s.thumbnails.EXPECT().Generate(gomock.Any(), item).Return(&thumb, nil)

	want := item.Clone()
	want.Thumbnail = &thumb
	s.repo.EXPECT().Upsert(gomock.Any(), want).Return(nil)

	got, err := s.studio.GenerateThumbnail(s.ctx, "item-1")

	s.NoError(err)
	s.Equal(want, got)
	s.Equal(domain.StatusDraft, got.Status)
}

func (s *StudioTestSuite) TestGenerateThumbnail_KeepsEditsMadeDuringCall() {
	item := draft("item-1", time.Now())
	thumb := domain.Thumbnail{ConceptDescription: "face"}

	edited := item.Clone()
	edited.IsFavorite = true
	edited.Scripts[1].Body = "edited while generating"

	gomock.InOrder(
		s.repo.EXPECT().Get("item-1").Return(item, true),
		s.thumbnails.EXPECT().Generate(gomock.Any(), item).Return(&thumb, nil),
		s.repo.EXPECT().Get("item-1").Return(edited, true),
	)

	want := edited.Clone()
	want.Thumbnail = &thumb
	s.repo.EXPECT().Upsert(gomock.Any(), want).Return(nil)

	got, err := s.studio.GenerateThumbnail(s.ctx, "item-1")

	s.NoError(err)
	s.True(got.IsFavorite)
	s.Equal("edited while generating", got.Scripts[1].Body)
	s.Equal(&thumb, got.Thumbnail)
}

func (s *StudioTestSuite) TestGenerateThumbnail_ItemDeletedDuringCall() {
	item := draft("item-1", time.Now())
	thumb := domain.Thumbnail{ConceptDescription: "face"}

	gomock.InOrder(
		s.repo.EXPECT().Get("item-1").Return(item, true),
		s.thumbnails.EXPECT().Generate(gomock.Any(), item).Return(&thumb, nil),
		s.repo.EXPECT().Get("item-1").Return(domain.ContentItem{}, false),
	)

	_, err := s.studio.GenerateThumbnail(s.ctx, "item-1")

	s.ErrorIs(err, ErrNotFound)
}

func (s *StudioTestSuite) TestGenerateThumbnail_NoScriptIsNoop() {
	item := draft("item-1", time.Now())
	item.Scripts = nil

	s.repo.EXPECT().Get("item-1").Return(item, true)
	s.thumbnails.EXPECT().Generate(gomock.Any(), item).Return(nil, generation.ErrNoSelectedScript)

	got, err := s.studio.GenerateThumbnail(s.ctx, "item-1")

	s.NoError(err)
	s.Equal(item, got)
}

func (s *StudioTestSuite) TestGenerateThumbnail_FailureKeepsItem() {
	item := draft("item-1", time.Now())
	item.Thumbnail = &domain.Thumbnail{ConceptDescription: "previous"}

	s.repo.EXPECT().Get("item-1").Return(item, true)
	s.thumbnails.EXPECT().Generate(gomock.Any(), item).
		Return(nil, &generation.GenerationError{Message: "Failed to generate thumbnail"})

	got, err := s.studio.GenerateThumbnail(s.ctx, "item-1")

	s.Error(err)
	s.Equal("previous", got.Thumbnail.ConceptDescription)
}

func (s *StudioTestSuite) TestEditScript_CommitsWithoutStatusChange() {
	item := draft("item-1", time.Now())
	s.repo.EXPECT().Get("item-1").Return(item, true)

	want := item.Clone()
	want.Scripts[1].Body = "new body"
	s.repo.EXPECT().Upsert(gomock.Any(), want).Return(nil)

	got, err := s.studio.EditScript(s.ctx, "item-1", 1, "new body")

	s.NoError(err)
	s.Equal(item.Scripts[0], got.Scripts[0])
	s.Equal("new body", got.Scripts[1].Body)
	s.Equal(domain.StatusDraft, got.Status)
}

func (s *StudioTestSuite) TestSelectScript() {
	item := draft("item-1", time.Now())
	s.repo.EXPECT().Get("item-1").Return(item, true)

	want := item.Clone()
	want.SelectedScriptIndex = 1
	s.repo.EXPECT().Upsert(gomock.Any(), want).Return(nil)

	got, err := s.studio.SelectScript(s.ctx, "item-1", 1)

	s.NoError(err)
	s.Equal(1, got.SelectedScriptIndex)
}

func (s *StudioTestSuite) TestSave_ForcesReady() {
	item := draft("item-1", time.Now())
	item.Status = domain.StatusExported
	s.repo.EXPECT().Get("item-1").Return(item, true)
	s.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, saved domain.ContentItem) []domain.ContentItem {
			s.Equal(domain.StatusReady, saved.Status)
			return nil
		})

	got, err := s.studio.Save(s.ctx, "item-1")

	s.NoError(err)
	s.Equal(domain.StatusReady, got.Status)
}

func (s *StudioTestSuite) TestExport_DeliversThenMarksExported() {
	item := draft("item-1", time.Now())
	s.repo.EXPECT().Get("item-1").Return(item, true)

	gomock.InOrder(
		s.sink.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		s.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
	)

	got, text, err := s.studio.Export(s.ctx, "item-1")

	s.NoError(err)
	s.Equal(domain.StatusExported, got.Status)
	s.Contains(text, "=== AI Tools ===")
}

func (s *StudioTestSuite) TestExport_SinkFailure() {
	item := draft("item-1", time.Now())
	s.repo.EXPECT().Get("item-1").Return(item, true)
	s.sink.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	got, _, err := s.studio.Export(s.ctx, "item-1")

	s.Error(err)
	s.Equal(domain.StatusDraft, got.Status)
}

func (s *StudioTestSuite) TestUnknownID() {
	s.repo.EXPECT().Get("missing").Return(domain.ContentItem{}, false).AnyTimes()
	s.repo.EXPECT().Items().Return(nil).AnyTimes()

	_, err := s.studio.Save(s.ctx, "missing")
	s.ErrorIs(err, ErrNotFound)

	_, _, err = s.studio.Export(s.ctx, "missing")
	s.ErrorIs(err, ErrNotFound)

	_, err = s.studio.ToggleFavorite(s.ctx, "missing")
	s.ErrorIs(err, ErrNotFound)
}

func (s *StudioTestSuite) TestDelete() {
	s.repo.EXPECT().Remove(gomock.Any(), "item-1").Return(nil)

	s.NoError(s.studio.Delete(s.ctx, "item-1"))
}

func (s *StudioTestSuite) TestDelete_UnknownIDIsNoop() {
	repo := store.New(file.NewSlot(s.T().TempDir(), "studio"), s.logger)
	studio := NewStudio(s.generator, s.thumbnails, repo, nil, s.logger, Options{})
	kept := draft("item-1", time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC))
	repo.Upsert(s.ctx, kept)
	before := repo.Items()

	s.NoError(studio.Delete(s.ctx, "missing"))

	s.Equal(before, repo.Items())
	s.Equal(before, repo.Load(s.ctx))
}

func (s *StudioTestSuite) TestToggleFavorite() {
	item := draft("item-1", time.Now())
	s.repo.EXPECT().Get("item-1").Return(item, true).Times(2)
	s.repo.EXPECT().ToggleFavorite(gomock.Any(), "item-1").Return(nil)

	got, err := s.studio.ToggleFavorite(s.ctx, "item-1")

	s.NoError(err)
	s.True(got.IsFavorite)
}

func (s *StudioTestSuite) TestList_FiltersAndSorts() {
	base := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	a := draft("a", base)
	a.Topic, a.Niche = "Morning Routines", "Health"
	b := draft("b", base.Add(time.Hour))
	b.Topic, b.Niche = "AI Tools", "Technology"
	b.Status = domain.StatusReady
	c := draft("c", base.Add(2*time.Hour))
	c.Topic, c.Niche = "Budget Travel", "Travel tech"
	s.repo.EXPECT().Items().Return([]domain.ContentItem{a, c, b}).AnyTimes()

	got, err := s.studio.List(Filter{})
	s.Require().NoError(err)
	s.Equal([]string{"c", "b", "a"}, ids(got))

	got, err = s.studio.List(Filter{Sort: SortOldest})
	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "c"}, ids(got))

	got, err = s.studio.List(Filter{Query: "TECH"})
	s.Require().NoError(err)
	s.Equal([]string{"c", "b"}, ids(got))

	got, err = s.studio.List(Filter{Status: "ready"})
	s.Require().NoError(err)
	s.Equal([]string{"b"}, ids(got))

	got, err = s.studio.List(Filter{Status: "all", Query: "nothing matches"})
	s.Require().NoError(err)
	s.Empty(got)

	_, err = s.studio.List(Filter{Status: "archived"})
	s.ErrorIs(err, ErrInvalidFilter)

	_, err = s.studio.List(Filter{Sort: "random"})
	s.ErrorIs(err, ErrInvalidFilter)
}

func (s *StudioTestSuite) TestStats() {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	recent := draft("recent", now.Add(-24*time.Hour))
	recent.IsFavorite = true
	old := draft("old", now.Add(-8*24*time.Hour))
	old.Status = domain.StatusExported
	edge := draft("edge", now.Add(-7*24*time.Hour))
	s.repo.EXPECT().Items().Return([]domain.ContentItem{recent, old, edge})

	stats := s.studio.Stats(now)

	s.Equal(3, stats.Total)
	s.Equal(1, stats.ThisWeek)
	s.Equal(1, stats.Favorites)
	s.Equal(2, stats.ByStatus[domain.StatusDraft])
	s.Equal(1, stats.ByStatus[domain.StatusExported])
}

func (s *StudioTestSuite) TestSampleMode() {
	studio := NewStudio(s.generator, s.thumbnails, s.repo, nil, s.logger, Options{SampleMode: true})
	s.repo.EXPECT().Items().Return(nil).AnyTimes()
	s.repo.EXPECT().Get("sample-2").Return(domain.ContentItem{}, false).AnyTimes()

	got, err := studio.List(Filter{})
	s.Require().NoError(err)
	s.Equal([]string{"sample-1", "sample-2", "sample-3"}, ids(got))

	stats := studio.Stats(time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC))
	s.Equal(3, stats.Total)
	s.Equal(2, stats.Favorites)

	item, err := studio.Get("sample-2")
	s.NoError(err)
	s.Equal("Quick Healthy Meals", item.Topic)
}

func (s *StudioTestSuite) TestSampleItemsAreFreshCopies() {
	first := SampleItems()
	first[0].Scripts[0].Body = "changed"

	s.NotEqual("changed", SampleItems()[0].Scripts[0].Body)
}

func (s *StudioTestSuite) TestClose() {
	s.generator.EXPECT().Close()
	s.thumbnails.EXPECT().Close()

	s.studio.Close()
}

func ids(items []domain.ContentItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

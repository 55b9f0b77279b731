package domain

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusReady    Status = "ready"
	StatusExported Status = "exported"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusReady, StatusExported:
		return true
	}
	return false
}

// ParseStatus accepts the lowercase status names used on the command line.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return status, nil
}

type ContentItem struct {
	ID                  string        `json:"id"`
	Topic               string        `json:"topic"`
	Niche               string        `json:"niche"`
	Keywords            []string      `json:"keywords"`
	Audience            string        `json:"audience"`
	Tone                string        `json:"tone"`
	TrendResearch       TrendResearch `json:"trendResearch"`
	Scripts             []Script      `json:"scripts"`
	SelectedScriptIndex int           `json:"selectedScriptIndex"`
	Thumbnail           *Thumbnail    `json:"thumbnail,omitempty"`
	ContentNotes        string        `json:"contentNotes"`
	Status              Status        `json:"status"`
	IsFavorite          bool          `json:"isFavorite"`
	CreatedAt           time.Time     `json:"createdAt"`
}

type TrendResearch struct {
	TrendingTopics   []TrendingTopic   `json:"trending_topics"`
	Hashtags         []string          `json:"hashtags"`
	CompetitorAngles []CompetitorAngle `json:"competitor_angles"`
	AudienceInsights string            `json:"audience_insights"`
}

type TrendingTopic struct {
	Topic           string `json:"topic"`
	Reason          string `json:"reason"`
	PopularityScore string `json:"popularity_score"`
}

type CompetitorAngle struct {
	Angle       string `json:"angle"`
	Description string `json:"description"`
}

type Script struct {
	Title             string `json:"title"`
	Tone              string `json:"tone"`
	Hook              string `json:"hook"`
	Body              string `json:"body"`
	CTA               string `json:"cta"`
	EstimatedDuration string `json:"estimated_duration"`
	WordCount         string `json:"word_count"`
}

// Thumbnail is replaced as a whole on regeneration. An empty ImageURL is a
// concept-only thumbnail.
type Thumbnail struct {
	ImageURL           string `json:"imageUrl"`
	ConceptDescription string `json:"concept_description"`
	TextOverlay        string `json:"text_overlay"`
	ColorScheme        string `json:"color_scheme"`
	EmotionalTrigger   string `json:"emotional_trigger"`
	CompositionTips    string `json:"composition_tips"`
}

// SelectedScript returns the script at SelectedScriptIndex, or false when
// the item has no script at that position.
func (c ContentItem) SelectedScript() (Script, bool) {
	if c.SelectedScriptIndex < 0 || c.SelectedScriptIndex >= len(c.Scripts) {
		return Script{}, false
	}
	return c.Scripts[c.SelectedScriptIndex], true
}

// Clone returns a deep copy so callers can edit a working copy without
// touching the collection it came from.
func (c ContentItem) Clone() ContentItem {
	out := c
	out.Keywords = cloneSlice(c.Keywords)
	out.Scripts = cloneSlice(c.Scripts)
	out.TrendResearch.TrendingTopics = cloneSlice(c.TrendResearch.TrendingTopics)
	out.TrendResearch.Hashtags = cloneSlice(c.TrendResearch.Hashtags)
	out.TrendResearch.CompetitorAngles = cloneSlice(c.TrendResearch.CompetitorAngles)
	if c.Thumbnail != nil {
		thumb := *c.Thumbnail
		out.Thumbnail = &thumb
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

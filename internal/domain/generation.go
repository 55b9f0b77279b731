package domain

import (
	"errors"
	"slices"
	"strings"
)

var (
	Audiences = []string{"Gen Z", "Millennials", "General", "Professionals", "Students"}
	Tones     = []string{"Funny", "Educational", "Motivational", "Controversial", "Inspirational"}
)

var (
	ErrEmptyTopic      = errors.New("topic is required")
	ErrInvalidAudience = errors.New("audience must be one of the supported audiences")
	ErrInvalidTone     = errors.New("tone must be one of the supported tones")
)

// GenerationRequest holds the inputs of a primary generation.
type GenerationRequest struct {
	Topic    string
	Keywords []string
	Audience string
	Tone     string
}

// Validate checks the precondition callers must satisfy before starting a
// generation. The orchestrator itself does not call it.
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return ErrEmptyTopic
	}
	if !slices.Contains(Audiences, r.Audience) {
		return ErrInvalidAudience
	}
	if !slices.Contains(Tones, r.Tone) {
		return ErrInvalidTone
	}
	return nil
}

// NormalizeKeywords trims every keyword, drops empty ones and removes
// duplicates keeping the first occurrence.
func NormalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" || slices.Contains(out, kw) {
			continue
		}
		out = append(out, kw)
	}
	return out
}

// Progress is a snapshot of a running generation. Percent stays below 100
// until Done is set.
type Progress struct {
	Percent float64
	Message string
	Done    bool
}

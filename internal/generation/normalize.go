package generation

import (
	"encoding/json"
	"strconv"

	"shorts_studio/internal/domain"
)

// ContentPayload is the normalized result of a primary generation.
type ContentPayload struct {
	Topic         string
	TrendResearch domain.TrendResearch
	Scripts       []domain.Script
	ContentNotes  string
}

// NormalizeContent turns whatever the content agent returned into a
// well-formed payload. Missing or mistyped fields become their empty form;
// list entries that are not objects are skipped. It never fails.
func NormalizeContent(raw json.RawMessage) ContentPayload {
	obj := decodeObject(raw)
	research := asObject(obj["trend_research"])

	payload := ContentPayload{
		Topic:        asString(obj["topic"]),
		ContentNotes: asString(obj["content_notes"]),
		Scripts:      []domain.Script{},
		TrendResearch: domain.TrendResearch{
			TrendingTopics:   []domain.TrendingTopic{},
			Hashtags:         []string{},
			CompetitorAngles: []domain.CompetitorAngle{},
			AudienceInsights: asString(research["audience_insights"]),
		},
	}

	for _, v := range asList(research["trending_topics"]) {
		if o, ok := v.(map[string]any); ok {
			payload.TrendResearch.TrendingTopics = append(payload.TrendResearch.TrendingTopics, domain.TrendingTopic{
				Topic:           asString(o["topic"]),
				Reason:          asString(o["reason"]),
				PopularityScore: asString(o["popularity_score"]),
			})
		}
	}

	for _, v := range asList(research["hashtags"]) {
		if tag := asString(v); tag != "" {
			payload.TrendResearch.Hashtags = append(payload.TrendResearch.Hashtags, tag)
		}
	}

	for _, v := range asList(research["competitor_angles"]) {
		if o, ok := v.(map[string]any); ok {
			payload.TrendResearch.CompetitorAngles = append(payload.TrendResearch.CompetitorAngles, domain.CompetitorAngle{
				Angle:       asString(o["angle"]),
				Description: asString(o["description"]),
			})
		}
	}

	for _, v := range asList(obj["scripts"]) {
		if o, ok := v.(map[string]any); ok {
			payload.Scripts = append(payload.Scripts, domain.Script{
				Title:             asString(o["title"]),
				Tone:              asString(o["tone"]),
				Hook:              asString(o["hook"]),
				Body:              asString(o["body"]),
				CTA:               asString(o["cta"]),
				EstimatedDuration: asString(o["estimated_duration"]),
				WordCount:         asString(o["word_count"]),
			})
		}
	}

	return payload
}

// NormalizeThumbnail builds a complete thumbnail from the thumbnail agent's
// result. imageURL may be empty for a concept-only thumbnail.
func NormalizeThumbnail(raw json.RawMessage, imageURL string) domain.Thumbnail {
	obj := decodeObject(raw)
	return domain.Thumbnail{
		ImageURL:           imageURL,
		ConceptDescription: asString(obj["concept_description"]),
		TextOverlay:        asString(obj["text_overlay"]),
		ColorScheme:        asString(obj["color_scheme"]),
		EmotionalTrigger:   asString(obj["emotional_trigger"]),
		CompositionTips:    asString(obj["composition_tips"]),
	}
}

// decodeObject accepts an object, or a string holding one.
func decodeObject(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	if s, ok := v.(string); ok {
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return nil
		}
	}
	return asObject(v)
}

func asObject(v any) map[string]any {
	o, _ := v.(map[string]any)
	return o
}

func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

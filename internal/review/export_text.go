package review

import (
	"fmt"
	"strings"

	"shorts_studio/internal/domain"
)

type section struct {
	header string
	lines  []string
}

// BuildExportText renders the full plain-text export of an item. A section
// whose data is absent is left out together with its header.
func BuildExportText(item domain.ContentItem) string {
	research := item.TrendResearch

	topics := make([]string, 0, len(research.TrendingTopics))
	for _, t := range research.TrendingTopics {
		topics = append(topics, fmt.Sprintf("- %s (Score: %s) - %s", t.Topic, t.PopularityScore, t.Reason))
	}

	angles := make([]string, 0, len(research.CompetitorAngles))
	for _, a := range research.CompetitorAngles {
		angles = append(angles, fmt.Sprintf("- %s: %s", a.Angle, a.Description))
	}

	var script []string
	if s, ok := item.SelectedScript(); ok {
		script = []string{
			"Title: " + s.Title,
			"Hook: " + s.Hook,
			"Body: " + s.Body,
			"CTA: " + s.CTA,
			"Duration: " + s.EstimatedDuration,
		}
	}

	var thumbnail []string
	if t := item.Thumbnail; t != nil {
		thumbnail = []string{
			"Concept: " + t.ConceptDescription,
			"Text Overlay: " + t.TextOverlay,
			"Color Scheme: " + t.ColorScheme,
			"Emotional Trigger: " + t.EmotionalTrigger,
		}
	}

	return render(header(item, true),
		section{"--- TRENDING TOPICS ---", topics},
		section{"--- HASHTAGS ---", joined(research.Hashtags, " ")},
		section{"--- COMPETITOR ANGLES ---", angles},
		section{"--- AUDIENCE INSIGHTS ---", text(research.AudienceInsights)},
		section{"--- SELECTED SCRIPT ---", script},
		section{"--- CONTENT NOTES ---", text(item.ContentNotes)},
		section{"--- THUMBNAIL ---", thumbnail},
	)
}

// BuildSummaryText renders the short export offered from the history list:
// the header, the selected script and the hashtags.
func BuildSummaryText(item domain.ContentItem) string {
	var script []string
	if s, ok := item.SelectedScript(); ok {
		script = []string{
			"Title: " + s.Title,
			"Hook: " + s.Hook,
			"Body: " + s.Body,
			"CTA: " + s.CTA,
		}
	}

	return render(header(item, false),
		section{"--- SCRIPT ---", script},
		section{"--- HASHTAGS ---", joined(item.TrendResearch.Hashtags, " ")},
	)
}

func header(item domain.ContentItem, withKeywords bool) []string {
	lines := []string{
		fmt.Sprintf("=== %s ===", item.Topic),
		"Niche: " + item.Niche,
		"Audience: " + item.Audience,
		"Tone: " + item.Tone,
	}
	if withKeywords && len(item.Keywords) > 0 {
		lines = append(lines, "Keywords: "+strings.Join(item.Keywords, ", "))
	}
	return lines
}

func render(head []string, sections ...section) string {
	var b strings.Builder
	b.WriteString(strings.Join(head, "\n"))
	for _, s := range sections {
		if len(s.lines) == 0 {
			continue
		}
		b.WriteString("\n\n")
		b.WriteString(s.header)
		for _, l := range s.lines {
			b.WriteString("\n")
			b.WriteString(l)
		}
	}
	return b.String()
}

func joined(values []string, sep string) []string {
	if len(values) == 0 {
		return nil
	}
	return []string{strings.Join(values, sep)}
}

func text(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return []string{s}
}

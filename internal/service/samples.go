package service

import (
	"time"

	"shorts_studio/internal/domain"
)

// SampleItems returns the demo collection shown while sample mode is on and
// nothing has been generated yet. Every call returns fresh copies.
func SampleItems() []domain.ContentItem {
	return []domain.ContentItem{
		{
			ID:       "sample-1",
			Topic:    "AI Tools for Productivity",
			Niche:    "Technology",
			Keywords: []string{"AI", "productivity", "automation"},
			Audience: "Professionals",
			Tone:     "Educational",
			TrendResearch: domain.TrendResearch{
				TrendingTopics: []domain.TrendingTopic{
					{Topic: "AI Workflow Automation", Reason: "Rapid adoption of AI in workplace productivity", PopularityScore: "92"},
					{Topic: "ChatGPT Hacks", Reason: "Users sharing advanced prompt techniques", PopularityScore: "88"},
					{Topic: "No-Code AI Tools", Reason: "Growing demand for accessible AI solutions", PopularityScore: "85"},
				},
				Hashtags: []string{"#AIProductivity", "#TechHacks", "#WorkSmarter", "#AITools", "#Automation"},
				CompetitorAngles: []domain.CompetitorAngle{
					{Angle: "Tool comparison", Description: "Side-by-side comparison of popular AI tools"},
					{Angle: "Before and after", Description: "Show productivity before and after implementing AI"},
				},
				AudienceInsights: "Professionals aged 25-45 seeking ways to optimize their workflows with emerging AI technology.",
			},
			Scripts: []domain.Script{
				{
					Title:             "5 AI Tools That Replace Your Entire Team",
					Tone:              "Educational",
					Hook:              "Stop hiring. Start automating. These 5 AI tools do the work of an entire team.",
					Body:              "Tool 1: ChatGPT for writing and research. Tool 2: Midjourney for design. Tool 3: Notion AI for project management. Tool 4: Otter.ai for meeting notes. Tool 5: Jasper for marketing copy.",
					CTA:               "Follow for more AI productivity hacks. Link in bio for the full guide.",
					EstimatedDuration: "45 seconds",
					WordCount:         "78",
				},
				{
					Title:             "The Morning Routine AI Built For Me",
					Tone:              "Educational",
					Hook:              "I asked AI to build my perfect morning routine. Here is what happened.",
					Body:              "I used an assistant to analyze my schedule, goals, and energy patterns. It created a personalized routine that boosted my productivity by 40%. The key insight? Batch similar tasks together.",
					CTA:               "Try it yourself. Drop a comment and I will share the prompt.",
					EstimatedDuration: "38 seconds",
					WordCount:         "62",
				},
			},
			Thumbnail: &domain.Thumbnail{
				ConceptDescription: "Split-screen design showing a stressed person on one side and a calm, productive person with AI interfaces on the other.",
				TextOverlay:        "5 AI TOOLS = ENTIRE TEAM",
				ColorScheme:        "Electric blue and white on dark background",
				EmotionalTrigger:   "Curiosity and FOMO - viewers want to know these tools",
				CompositionTips:    "Use bold, contrasting text. Place the most shocking stat in the center.",
			},
			ContentNotes: "Focus on practical, immediately actionable tools. Avoid generic advice.",
			Status:       domain.StatusReady,
			IsFavorite:   true,
			CreatedAt:    time.Date(2025, 2, 24, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:       "sample-2",
			Topic:    "Quick Healthy Meals",
			Niche:    "Health & Fitness",
			Keywords: []string{"healthy", "meal prep", "quick recipes"},
			Audience: "Millennials",
			Tone:     "Motivational",
			TrendResearch: domain.TrendResearch{
				TrendingTopics: []domain.TrendingTopic{
					{Topic: "5-Minute Meals", Reason: "Time-poor audiences want fast healthy options", PopularityScore: "90"},
					{Topic: "Protein-Rich Snacks", Reason: "Fitness community driving demand", PopularityScore: "86"},
				},
				Hashtags: []string{"#HealthyEating", "#MealPrep", "#QuickRecipes", "#FitFood"},
				CompetitorAngles: []domain.CompetitorAngle{
					{Angle: "Ingredient challenges", Description: "Cook a healthy meal with only 3 ingredients"},
				},
				AudienceInsights: "Millennials who value health but lack time for elaborate cooking.",
			},
			Scripts: []domain.Script{
				{
					Title:             "3 Ingredients, 5 Minutes, Zero Excuses",
					Tone:              "Motivational",
					Hook:              "You have 5 minutes? Then you have time to eat healthy.",
					Body:              "Grab Greek yogurt, berries, and granola. Layer them in a jar. That is a 30g protein breakfast in under 2 minutes. No cooking required.",
					CTA:               "Save this for your next lazy morning. Follow for more.",
					EstimatedDuration: "30 seconds",
					WordCount:         "48",
				},
			},
			ContentNotes: "Keep recipes extremely simple. Show the final result first to hook viewers.",
			Status:       domain.StatusDraft,
			CreatedAt:    time.Date(2025, 2, 23, 14, 15, 0, 0, time.UTC),
		},
		{
			ID:       "sample-3",
			Topic:    "Side Hustles 2025",
			Niche:    "Finance",
			Keywords: []string{"side hustle", "passive income", "money"},
			Audience: "Gen Z",
			Tone:     "Controversial",
			TrendResearch: domain.TrendResearch{
				TrendingTopics: []domain.TrendingTopic{
					{Topic: "Digital Product Sales", Reason: "Low barrier to entry income stream", PopularityScore: "94"},
					{Topic: "AI Freelancing", Reason: "Using AI tools to offer services on Fiverr", PopularityScore: "91"},
				},
				Hashtags: []string{"#SideHustle", "#PassiveIncome", "#MoneyTips", "#FinancialFreedom"},
				CompetitorAngles: []domain.CompetitorAngle{
					{Angle: "Income proof", Description: "Showing actual earnings screenshots"},
				},
				AudienceInsights: "Gen Z viewers skeptical of traditional employment, seeking alternative income.",
			},
			Scripts: []domain.Script{
				{
					Title:             "Your 9-to-5 is a Scam. Here is Proof.",
					Tone:              "Controversial",
					Hook:              "Your boss makes 10x what you make. And you are okay with that?",
					Body:              "The average employee generates $150K in value but earns $55K. The gap goes straight to shareholders. Meanwhile, freelancers on Fiverr are making $10K/month using AI tools their employers do not even know about.",
					CTA:               "Stop making someone else rich. Link in bio for the free side hustle guide.",
					EstimatedDuration: "42 seconds",
					WordCount:         "65",
				},
			},
			ContentNotes: "Lean into the controversial angle but back claims with data.",
			Status:       domain.StatusExported,
			IsFavorite:   true,
			CreatedAt:    time.Date(2025, 2, 22, 9, 0, 0, 0, time.UTC),
		},
	}
}

package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/types"
)

// fallbackTopics seeds trending-topic and calendar fallbacks.
var fallbackTopics = []string{
	"Best Korean Skincare Routine for Pakistani Skin",
	"How to Get Rid of Dark Spots Naturally in Pakistan",
	"Vitamin C Serum Benefits for Oily Skin",
	"Niacinamide vs Hyaluronic Acid: Which is Better",
	"Summer Skincare Tips for Hot Pakistani Weather",
	"Building a Night Routine That Actually Works",
	"Sunscreen Myths Pakistani Women Should Stop Believing",
	"Gentle Exfoliation for Sensitive Skin",
}

// Fallback synthesizes a minimal schema-conformant record for a request
// whose generation could not be validated. Every field is populated: from
// request parameters where possible, placeholders elsewhere. Never nil.
func Fallback(req types.GenerationRequest) types.StructuredResult {
	switch req.Intent {
	case types.IntentOutline:
		return types.Outline{
			Sections: []string{
				"Introduction",
				"Understanding the Basics",
				"Step-by-Step Guide",
				"Conclusion",
			},
		}
	case types.IntentFullPost:
		return fallbackBlogPost(req)
	case types.IntentPersona:
		return fallbackPersona(req)
	case types.IntentTrendingTopics:
		topics := make([]types.TrendingTopic, 5)
		for i := range topics {
			topics[i] = types.TrendingTopic{
				Topic:  fallbackTopics[i],
				Reason: "Consistently searched by Pakistani skincare audiences",
			}
		}
		return types.TrendingTopics{Topics: topics}
	case types.IntentSeoAnalysis:
		return types.SeoAnalysis{
			Score:           50,
			Recommendations: []string{"Unable to analyze content"},
		}
	case types.IntentRepurpose:
		return fallbackRepurposed(req)
	case types.IntentSeoFaq:
		return fallbackSeoFaq(req)
	case types.IntentContentCalendar:
		return fallbackCalendar(req)
	case types.IntentBrandVoice:
		return types.BrandVoice{
			Profile: "Warm, knowledgeable, and approachable tone with clear, practical advice.",
		}
	default:
		return nil
	}
}

func fallbackBlogPost(req types.GenerationRequest) types.BlogPost {
	title := strings.TrimSpace(req.Param(types.ParamTitle))
	if title == "" {
		title = "Skincare Tips for Pakistani Women"
	}

	body := fmt.Sprintf(
		"<h1>%s</h1><p>Discover practical skincare advice for Pakistani skin, "+
			"from daily routines to ingredient guides. Explore Chamkili's "+
			"Vitamin C and Niacinamide serums for a healthy, radiant glow.</p>",
		title,
	)

	tags := splitKeywords(req.Param(types.ParamKeywords))
	if len(tags) == 0 {
		tags = []string{"skincare", "chamkili"}
	}

	post := types.BlogPost{
		Title:           title,
		Body:            body,
		MetaTitle:       truncate(title, 60),
		MetaDescription: fmt.Sprintf("Learn about %s with expert tips from Chamkili.", strings.ToLower(title)),
		Tags:            tags,
	}
	post.RecomputeWordCount()
	return post
}

func fallbackPersona(req types.GenerationRequest) types.Persona {
	bio := strings.TrimSpace(req.Param(types.ParamDescription))
	if bio == "" {
		bio = "A Pakistani woman looking for trustworthy, effective skincare."
	}
	return types.Persona{
		Name:          "Ayesha Khan",
		Age:           28,
		Occupation:    "Marketing professional",
		Location:      "Lahore",
		SkincareGoals: []string{"Brighter, more even skin tone"},
		PainPoints:    []string{"Dark spots and sun damage"},
		Motivations:   []string{"Visible results from trusted local brands"},
		Personality:   "Warm, practical, and research-driven",
		Bio:           bio,
	}
}

func fallbackRepurposed(req types.GenerationRequest) types.RepurposedContent {
	platform := strings.TrimSpace(req.Param(types.ParamPlatform))
	if platform == "" {
		platform = "social"
	}
	content := truncate(strings.TrimSpace(req.Param(types.ParamContent)), 500)
	if content == "" {
		content = "Glow-up season starts with the right routine. Read the full guide on the Chamkili blog. #Chamkili #PakistaniSkincare"
	}
	return types.RepurposedContent{Platform: platform, Content: content}
}

func fallbackSeoFaq(req types.GenerationRequest) types.SeoFaq {
	title := strings.TrimSpace(req.Param(types.ParamTitle))
	if title == "" {
		title = "Skincare Tips"
	}
	metaTitle := truncate(title, 57) + "..."
	metaDescription := fmt.Sprintf("Learn about %s with expert tips.", strings.ToLower(title))
	return types.SeoFaq{
		MetaTitles:       []string{metaTitle, metaTitle, metaTitle},
		MetaDescriptions: []string{metaDescription, metaDescription, metaDescription},
		Faq:              []types.FaqItem{},
		KeyTakeaways:     []string{fmt.Sprintf("Key insights about %s", strings.ToLower(title))},
	}
}

func fallbackCalendar(req types.GenerationRequest) types.ContentCalendar {
	goal := strings.TrimSpace(req.Param(types.ParamGoal))
	start := time.Now()
	topics := make([]types.CalendarTopic, len(fallbackTopics))
	for i, title := range fallbackTopics {
		topics[i] = types.CalendarTopic{
			Date:        start.AddDate(0, 0, i*3).Format("2006-01-02"),
			Title:       title,
			Keywords:    "skincare routine Pakistan, glowing skin tips",
			ContentType: "Standard Blog Post",
			Notes:       goal,
		}
		if topics[i].Notes == "" {
			topics[i].Notes = "Seasonal topic for the Pakistani market"
		}
	}
	return types.ContentCalendar{Topics: topics}
}

func splitKeywords(keywords string) []string {
	parts := strings.Split(keywords, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

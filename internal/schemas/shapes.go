package schemas

import (
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/llm"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/types"
)

// ShapeFor returns the response shape the generation client should constrain
// output to for an intent. Nil means plain JSON without a declared shape.
func ShapeFor(intent types.Intent) *llm.ResponseSchema {
	switch intent {
	case types.IntentOutline:
		return &llm.ResponseSchema{
			Name: "BlogOutline",
			Fields: []llm.SchemaField{
				{Name: "sections", Type: llm.FieldStringArray, Description: "Ordered H2 section headings", Required: true},
			},
		}
	case types.IntentFullPost:
		return &llm.ResponseSchema{
			Name: "BlogPost",
			Fields: []llm.SchemaField{
				{Name: "title", Type: llm.FieldString, Description: "Main blog post title", Required: true},
				{Name: "body", Type: llm.FieldString, Description: "Full HTML content", Required: true},
				{Name: "meta_title", Type: llm.FieldString, Description: "SEO meta title", Required: true},
				{Name: "meta_description", Type: llm.FieldString, Description: "SEO meta description", Required: true},
				{Name: "tags", Type: llm.FieldStringArray, Description: "Relevant tags", Required: true},
				{Name: "word_count", Type: llm.FieldInteger, Description: "Approximate word count"},
			},
		}
	case types.IntentPersona:
		return &llm.ResponseSchema{
			Name: "CustomerPersona",
			Fields: []llm.SchemaField{
				{Name: "name", Type: llm.FieldString, Description: "Pakistani name", Required: true},
				{Name: "age", Type: llm.FieldInteger, Description: "Age in years, 18-65", Required: true},
				{Name: "occupation", Type: llm.FieldString, Description: "Job or occupation", Required: true},
				{Name: "location", Type: llm.FieldString, Description: "Pakistani city", Required: true},
				{Name: "skincare_goals", Type: llm.FieldStringArray, Description: "What they want to achieve", Required: true},
				{Name: "pain_points", Type: llm.FieldStringArray, Description: "Their skincare struggles", Required: true},
				{Name: "motivations", Type: llm.FieldStringArray, Description: "What drives their purchasing decisions", Required: true},
				{Name: "personality", Type: llm.FieldString, Description: "Personality summary", Required: true},
				{Name: "bio", Type: llm.FieldString, Description: "Brief bio bringing the persona to life", Required: true},
			},
		}
	case types.IntentTrendingTopics:
		return &llm.ResponseSchema{
			Name: "TrendingTopics",
			Fields: []llm.SchemaField{
				{Name: "topics", Type: llm.FieldObjectArray, Description: "Exactly 5 trending topics", Required: true, Fields: []llm.SchemaField{
					{Name: "topic", Type: llm.FieldString, Description: "Trending skincare topic", Required: true},
					{Name: "reason", Type: llm.FieldString, Description: "Why it's trending", Required: true},
				}},
			},
		}
	case types.IntentSeoAnalysis:
		return &llm.ResponseSchema{
			Name: "SeoScore",
			Fields: []llm.SchemaField{
				{Name: "score", Type: llm.FieldInteger, Description: "SEO score from 0-100", Required: true},
				{Name: "recommendations", Type: llm.FieldStringArray, Description: "Actionable SEO recommendations", Required: true},
			},
		}
	case types.IntentRepurpose:
		return &llm.ResponseSchema{
			Name: "RepurposedContent",
			Fields: []llm.SchemaField{
				{Name: "platform", Type: llm.FieldString, Description: "Target platform"},
				{Name: "content", Type: llm.FieldString, Description: "Platform-optimized content", Required: true},
			},
		}
	case types.IntentSeoFaq:
		return &llm.ResponseSchema{
			Name: "SeoFaqData",
			Fields: []llm.SchemaField{
				{Name: "meta_titles", Type: llm.FieldStringArray, Description: "3 SEO-optimized title options", Required: true},
				{Name: "meta_descriptions", Type: llm.FieldStringArray, Description: "3 SEO-optimized description options", Required: true},
				{Name: "faq", Type: llm.FieldObjectArray, Description: "FAQ items", Required: true, Fields: []llm.SchemaField{
					{Name: "question", Type: llm.FieldString, Description: "Frequently asked question", Required: true},
					{Name: "answer", Type: llm.FieldString, Description: "Clear, concise answer", Required: true},
				}},
				{Name: "key_takeaways", Type: llm.FieldStringArray, Description: "Key takeaways from the article", Required: true},
			},
		}
	case types.IntentContentCalendar:
		return &llm.ResponseSchema{
			Name: "ContentCalendar",
			Fields: []llm.SchemaField{
				{Name: "topics", Type: llm.FieldObjectArray, Description: "8-10 planned posts", Required: true, Fields: []llm.SchemaField{
					{Name: "date", Type: llm.FieldString, Description: "Target publish date in YYYY-MM-DD format", Required: true},
					{Name: "title", Type: llm.FieldString, Description: "SEO-friendly blog post title", Required: true},
					{Name: "keywords", Type: llm.FieldString, Description: "Comma-separated SEO keywords", Required: true},
					{Name: "content_type", Type: llm.FieldString, Description: "Content template type", Required: true},
					{Name: "notes", Type: llm.FieldString, Description: "Strategic angle or hook", Required: true},
				}},
			},
		}
	case types.IntentBrandVoice:
		// Brand voice analysis is free-form prose, not schema-constrained.
		return nil
	default:
		return nil
	}
}

// TierFor maps each intent to the model tier it runs on.
func TierFor(intent types.Intent) llm.ModelTier {
	switch intent {
	case types.IntentFullPost, types.IntentContentCalendar:
		return llm.TierAdvanced
	case types.IntentTrendingTopics, types.IntentRepurpose:
		return llm.TierLite
	default:
		return llm.TierStandard
	}
}

// Package types defines the content intents and structured result records
// shared across the generation pipeline, HTTP API, and Shopify publisher.
package types

import "fmt"

// Intent is the category of content-generation request.
type Intent string

// Supported content intents.
const (
	IntentOutline         Intent = "outline"
	IntentFullPost        Intent = "full_post"
	IntentPersona         Intent = "persona"
	IntentTrendingTopics  Intent = "trending_topics"
	IntentSeoAnalysis     Intent = "seo_analysis"
	IntentRepurpose       Intent = "repurpose"
	IntentSeoFaq          Intent = "seo_faq"
	IntentContentCalendar Intent = "content_calendar"
	IntentBrandVoice      Intent = "brand_voice"
)

// Intents lists every supported intent in a stable order.
func Intents() []Intent {
	return []Intent{
		IntentOutline,
		IntentFullPost,
		IntentPersona,
		IntentTrendingTopics,
		IntentSeoAnalysis,
		IntentRepurpose,
		IntentSeoFaq,
		IntentContentCalendar,
		IntentBrandVoice,
	}
}

// actionIntents maps HTTP "action" values to intents.
var actionIntents = map[string]Intent{
	"generate_outline":    IntentOutline,
	"generate_blog":       IntentFullPost,
	"generate_persona":    IntentPersona,
	"trending_topics":     IntentTrendingTopics,
	"seo_analysis":        IntentSeoAnalysis,
	"repurpose_content":   IntentRepurpose,
	"seo_faq":             IntentSeoFaq,
	"content_calendar":    IntentContentCalendar,
	"analyze_brand_voice": IntentBrandVoice,
}

// IntentForAction resolves an HTTP action value to its intent.
func IntentForAction(action string) (Intent, error) {
	intent, ok := actionIntents[action]
	if !ok {
		return "", fmt.Errorf("unknown action: %s", action)
	}
	return intent, nil
}

// Actions lists the recognized HTTP action values in a stable order.
func Actions() []string {
	return []string{
		"generate_blog",
		"generate_outline",
		"generate_persona",
		"trending_topics",
		"seo_analysis",
		"repurpose_content",
		"seo_faq",
		"content_calendar",
		"analyze_brand_voice",
	}
}

// Parameter names recognized in generation requests.
const (
	ParamTitle           = "title"
	ParamKeywords        = "keywords"
	ParamTone            = "tone"
	ParamContentTemplate = "content_template"
	ParamAuthorPersona   = "author_persona"
	ParamBrandVoice      = "brand_voice"
	ParamDescription     = "description"
	ParamContent         = "content"
	ParamPlatform        = "platform"
	ParamOutline         = "outline"
	ParamGoal            = "goal"
	ParamMonth           = "month"
)

// GenerationRequest is a single content-generation request: an intent plus
// named string parameters. Requests are created per call and never reused.
type GenerationRequest struct {
	Intent Intent            `json:"intent"`
	Params map[string]string `json:"params,omitempty"`
}

// Param returns the named parameter, or "" when absent.
func (r GenerationRequest) Param(name string) string {
	if r.Params == nil {
		return ""
	}
	return r.Params[name]
}

// NewRequest builds a GenerationRequest for an intent with the given params.
func NewRequest(intent Intent, params map[string]string) GenerationRequest {
	return GenerationRequest{Intent: intent, Params: params}
}

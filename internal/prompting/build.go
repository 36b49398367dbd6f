// Package prompting renders per-intent generation prompts from embedded
// templates. Building a prompt is pure: the only failure mode is a missing
// required parameter.
package prompting

import (
	"fmt"
	"strings"

	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/types"
)

// maxContentRunes bounds how much source content is interpolated into a
// prompt, matching the limits the upstream API enforces on request size.
const maxContentRunes = 5000

// ProductLinks are the Chamkili products featured in generated posts.
var ProductLinks = []string{
	"https://www.chamkili.com/products/vitamin-c-skin-serum",
	"https://www.chamkili.com/products/niacinamide-zinc-skin-serum",
}

// requiredParams lists the parameters each intent cannot build without.
var requiredParams = map[types.Intent][]string{
	types.IntentOutline:         {types.ParamTitle},
	types.IntentFullPost:        {types.ParamTitle},
	types.IntentPersona:         {types.ParamDescription},
	types.IntentTrendingTopics:  {},
	types.IntentSeoAnalysis:     {types.ParamContent},
	types.IntentRepurpose:       {types.ParamContent, types.ParamPlatform},
	types.IntentSeoFaq:          {types.ParamTitle, types.ParamContent},
	types.IntentContentCalendar: {types.ParamGoal, types.ParamMonth},
	types.IntentBrandVoice:      {types.ParamContent},
}

// RequiredParams returns the required parameter names for an intent.
func RequiredParams(intent types.Intent) []string {
	return requiredParams[intent]
}

// Build renders the prompt for a generation request. It returns a
// *MissingParameterError when a required parameter is absent or blank.
func Build(req types.GenerationRequest) (string, error) {
	for _, name := range requiredParams[req.Intent] {
		if strings.TrimSpace(req.Param(name)) == "" {
			return "", &MissingParameterError{Intent: req.Intent, Param: name}
		}
	}

	switch req.Intent {
	case types.IntentOutline:
		return buildOutline(req), nil
	case types.IntentFullPost:
		return buildFullPost(req), nil
	case types.IntentPersona:
		return buildPersona(req), nil
	case types.IntentTrendingTopics:
		return template("trending_topics"), nil
	case types.IntentSeoAnalysis:
		return buildSeoAnalysis(req), nil
	case types.IntentRepurpose:
		return buildRepurpose(req), nil
	case types.IntentSeoFaq:
		return buildSeoFaq(req), nil
	case types.IntentContentCalendar:
		return buildContentCalendar(req), nil
	case types.IntentBrandVoice:
		return buildBrandVoice(req), nil
	default:
		return "", fmt.Errorf("no prompt template for intent %s", req.Intent)
	}
}

func buildOutline(req types.GenerationRequest) string {
	return fill(template("outline"), map[string]string{
		"Title":           sanitize(req.Param(types.ParamTitle)),
		"AuthorPersona":   defaultString(sanitize(req.Param(types.ParamAuthorPersona)), "Beauty Expert"),
		"ContentTemplate": defaultString(sanitize(req.Param(types.ParamContentTemplate)), "Standard Blog Post"),
		"KeywordsBlock":   keywordsBlock(req.Param(types.ParamKeywords), "Target SEO keywords"),
		"BrandVoiceBlock": brandVoiceBlock(req.Param(types.ParamBrandVoice)),
	})
}

func buildFullPost(req types.GenerationRequest) string {
	outlineBlock := ""
	if outline := strings.TrimSpace(req.Param(types.ParamOutline)); outline != "" {
		outlineBlock = fmt.Sprintf("Article Outline:\n%s\n\n", sanitizeBlock(outline))
	}

	var links strings.Builder
	for _, link := range ProductLinks {
		fmt.Fprintf(&links, "- %s\n", link)
	}

	return fill(template("full_post"), map[string]string{
		"Title":           sanitize(req.Param(types.ParamTitle)),
		"Tone":            defaultString(sanitize(req.Param(types.ParamTone)), "Professional"),
		"AuthorPersona":   defaultString(sanitize(req.Param(types.ParamAuthorPersona)), "Beauty Expert"),
		"KeywordsBlock":   keywordsBlock(req.Param(types.ParamKeywords), "Naturally incorporate keywords"),
		"BrandVoiceBlock": brandVoiceBlock(req.Param(types.ParamBrandVoice)),
		"OutlineBlock":    outlineBlock,
		"ProductLinks":    strings.TrimRight(links.String(), "\n"),
	})
}

func buildPersona(req types.GenerationRequest) string {
	return fill(template("persona"), map[string]string{
		"Description": sanitize(req.Param(types.ParamDescription)),
	})
}

func buildSeoAnalysis(req types.GenerationRequest) string {
	return fill(template("seo_analysis"), map[string]string{
		"Keywords": sanitize(req.Param(types.ParamKeywords)),
		"Content":  sanitizeBlock(req.Param(types.ParamContent)),
	})
}

func buildRepurpose(req types.GenerationRequest) string {
	platform := strings.ToLower(strings.TrimSpace(req.Param(types.ParamPlatform)))
	return fill(template("repurpose"), map[string]string{
		"Platform":             sanitize(platform),
		"PlatformInstructions": platformInstructions(platform),
		"BrandVoiceBlock":      brandVoiceBlock(req.Param(types.ParamBrandVoice)),
		"Content":              sanitizeBlock(req.Param(types.ParamContent)),
	})
}

func buildSeoFaq(req types.GenerationRequest) string {
	return fill(template("seo_faq"), map[string]string{
		"Title":         sanitize(req.Param(types.ParamTitle)),
		"KeywordsBlock": keywordsBlock(req.Param(types.ParamKeywords), "Target keywords"),
		"Content":       sanitizeBlock(req.Param(types.ParamContent)),
	})
}

func buildContentCalendar(req types.GenerationRequest) string {
	return fill(template("content_calendar"), map[string]string{
		"Goal":            sanitize(req.Param(types.ParamGoal)),
		"Month":           sanitize(req.Param(types.ParamMonth)),
		"BrandVoiceBlock": brandVoiceBlock(req.Param(types.ParamBrandVoice)),
	})
}

func buildBrandVoice(req types.GenerationRequest) string {
	return fill(template("brand_voice"), map[string]string{
		"Content": sanitizeBlock(req.Param(types.ParamContent)),
	})
}

// platformInstructions returns the per-platform formatting rules.
func platformInstructions(platform string) string {
	if instructions, ok := loadTemplates()["platform_"+platform]; ok {
		return instructions
	}
	return template("platform_default")
}

func keywordsBlock(keywords, label string) string {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		return ""
	}
	return fmt.Sprintf("%s: \"%s\"\n", label, sanitize(keywords))
}

func brandVoiceBlock(profile string) string {
	profile = strings.TrimSpace(profile)
	if profile == "" {
		return ""
	}
	return fmt.Sprintf("Brand Voice: %s\n", sanitize(profile))
}

// sanitize neutralizes characters that could break the surrounding
// instruction format: quotes become apostrophes, newlines become spaces.
func sanitize(value string) string {
	value = strings.TrimSpace(value)
	value = strings.ReplaceAll(value, `"`, "'")
	value = strings.ReplaceAll(value, "\r\n", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "`", "'")
	return value
}

// sanitizeBlock prepares multi-line content for interpolation inside a
// triple-quoted block: the delimiter sequence is removed and the length
// bounded.
func sanitizeBlock(value string) string {
	value = strings.TrimSpace(value)
	value = strings.ReplaceAll(value, `"""`, "'''")
	runes := []rune(value)
	if len(runes) > maxContentRunes {
		value = string(runes[:maxContentRunes])
	}
	return value
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

package pipeline

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/types"
)

func TestFallback_CoversEveryIntent(t *testing.T) {
	for _, intent := range types.Intents() {
		assert.NotNil(t, Fallback(types.NewRequest(intent, nil)), "intent %s has no fallback", intent)
	}
}

func TestFallback_Outline(t *testing.T) {
	outline := Fallback(types.NewRequest(types.IntentOutline, nil)).(types.Outline)
	assert.Equal(t, []string{
		"Introduction",
		"Understanding the Basics",
		"Step-by-Step Guide",
		"Conclusion",
	}, outline.Sections)
}

func TestFallback_BlogPostUsesRequestParams(t *testing.T) {
	post := Fallback(types.NewRequest(types.IntentFullPost, map[string]string{
		types.ParamTitle:    "Monsoon Skincare",
		types.ParamKeywords: "humidity, oily skin",
	})).(types.BlogPost)

	assert.Equal(t, "Monsoon Skincare", post.Title)
	assert.Contains(t, post.Body, "Monsoon Skincare")
	assert.Equal(t, []string{"humidity", "oily skin"}, post.Tags)
	assert.Equal(t, types.CountWords(post.Body), post.WordCount)
	assert.LessOrEqual(t, len(post.MetaTitle), 60)
}

func TestFallback_BlogPostDefaults(t *testing.T) {
	post := Fallback(types.NewRequest(types.IntentFullPost, nil)).(types.BlogPost)
	assert.NotEmpty(t, post.Title)
	assert.NotEmpty(t, post.Body)
	assert.NotEmpty(t, post.MetaDescription)
	assert.Equal(t, []string{"skincare", "chamkili"}, post.Tags)
	assert.Positive(t, post.WordCount)
}

func TestFallback_TrendingTopicsHasExactlyFive(t *testing.T) {
	trending := Fallback(types.NewRequest(types.IntentTrendingTopics, nil)).(types.TrendingTopics)
	require.Len(t, trending.Topics, 5)
	for _, topic := range trending.Topics {
		assert.NotEmpty(t, topic.Topic)
		assert.NotEmpty(t, topic.Reason)
	}
}

func TestFallback_SeoFaqShape(t *testing.T) {
	faq := Fallback(types.NewRequest(types.IntentSeoFaq, map[string]string{
		types.ParamTitle: "A Very Long Title About Vitamin C Serums and Pakistani Summer Skincare",
	})).(types.SeoFaq)

	require.Len(t, faq.MetaTitles, 3)
	require.Len(t, faq.MetaDescriptions, 3)
	for _, title := range faq.MetaTitles {
		assert.LessOrEqual(t, len([]rune(title)), 60)
	}
	assert.NotNil(t, faq.Faq)
	assert.NotEmpty(t, faq.KeyTakeaways)
}

func TestFallback_CalendarDatesAndNotes(t *testing.T) {
	calendar := Fallback(types.NewRequest(types.IntentContentCalendar, map[string]string{
		types.ParamGoal: "grow organic traffic",
	})).(types.ContentCalendar)

	require.Len(t, calendar.Topics, 8)
	datePattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	for _, topic := range calendar.Topics {
		assert.Regexp(t, datePattern, topic.Date)
		assert.Equal(t, "grow organic traffic", topic.Notes)
		assert.NotEmpty(t, topic.Title)
	}
}

func TestFallback_RepurposedTruncatesContent(t *testing.T) {
	long := make([]byte, 2000)
	for i := range long {
		long[i] = 'a'
	}
	repurposed := Fallback(types.NewRequest(types.IntentRepurpose, map[string]string{
		types.ParamContent:  string(long),
		types.ParamPlatform: "twitter",
	})).(types.RepurposedContent)

	assert.Equal(t, "twitter", repurposed.Platform)
	assert.Len(t, repurposed.Content, 500)
}

func TestFallback_BrandVoiceProfile(t *testing.T) {
	voice := Fallback(types.NewRequest(types.IntentBrandVoice, nil)).(types.BrandVoice)
	assert.Equal(t, "Warm, knowledgeable, and approachable tone with clear, practical advice.", voice.Profile)
}

func TestFallback_SeoAnalysis(t *testing.T) {
	analysis := Fallback(types.NewRequest(types.IntentSeoAnalysis, nil)).(types.SeoAnalysis)
	assert.Equal(t, 50, analysis.Score)
	assert.NotEmpty(t, analysis.Recommendations)
}

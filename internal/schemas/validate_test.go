package schemas

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/types"
)

func TestValidate_Outline(t *testing.T) {
	raw := `{"sections": ["Introduction", "Why Serums Matter", "Conclusion"]}`

	record, err := Validate(raw, types.IntentOutline)
	require.NoError(t, err)

	outline, ok := record.(types.Outline)
	require.True(t, ok)
	assert.Equal(t, []string{"Introduction", "Why Serums Matter", "Conclusion"}, outline.Sections)
}

func TestValidate_OutlineInCodeFence(t *testing.T) {
	raw := "```json\n{\"sections\": [\"Introduction\", \"Conclusion\"]}\n```"

	record, err := Validate(raw, types.IntentOutline)
	require.NoError(t, err)
	assert.Len(t, record.(types.Outline).Sections, 2)
}

func TestValidate_OutlineWrappedInProse(t *testing.T) {
	raw := "Sure! Here is your outline:\n{\"sections\": [\"Introduction\"]}\nHope this helps."

	record, err := Validate(raw, types.IntentOutline)
	require.NoError(t, err)
	assert.Equal(t, []string{"Introduction"}, record.(types.Outline).Sections)
}

func TestValidate_MissingFieldNamesField(t *testing.T) {
	raw := `{"title": "Serum Guide", "body": "<p>text</p>", "meta_title": "Serum Guide", "tags": ["skincare"]}`

	_, err := Validate(raw, types.IntentFullPost)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, types.IntentFullPost, ve.Intent)
	assert.Contains(t, ve.Fields(), "meta_description")
}

func TestValidate_WrongTypeNamesField(t *testing.T) {
	raw := `{"sections": "Introduction"}`

	_, err := Validate(raw, types.IntentOutline)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields(), "sections")
}

func TestValidate_MalformedJSON(t *testing.T) {
	_, err := Validate("this is not json at all", types.IntentOutline)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.NotEmpty(t, ve.Errors)
}

func TestValidate_BlogPostWordCountRecomputed(t *testing.T) {
	raw := `{
		"title": "Serum Guide",
		"body": "<p>one two three four five</p>",
		"meta_title": "Serum Guide",
		"meta_description": "A guide to serums.",
		"tags": ["skincare"],
		"word_count": 9000
	}`

	record, err := Validate(raw, types.IntentFullPost)
	require.NoError(t, err)

	post := record.(types.BlogPost)
	assert.Equal(t, types.CountWords(post.Body), post.WordCount)
	assert.NotEqual(t, 9000, post.WordCount)
}

func TestValidate_TrendingTopicsCount(t *testing.T) {
	topic := `{"topic": "Niacinamide", "reason": "Viral on social media"}`

	four := fmt.Sprintf(`{"topics": [%s, %s, %s, %s]}`, topic, topic, topic, topic)
	_, err := Validate(four, types.IntentTrendingTopics)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))

	five := fmt.Sprintf(`{"topics": [%s, %s, %s, %s, %s]}`, topic, topic, topic, topic, topic)
	record, err := Validate(five, types.IntentTrendingTopics)
	require.NoError(t, err)
	assert.Len(t, record.(types.TrendingTopics).Topics, 5)
}

func TestValidate_PersonaAgeBounds(t *testing.T) {
	persona := func(age int) string {
		return fmt.Sprintf(`{
			"name": "Ayesha Khan",
			"age": %d,
			"occupation": "Teacher",
			"location": "Lahore",
			"skincare_goals": ["glowing skin"],
			"pain_points": ["sun damage"],
			"motivations": ["affordable products"],
			"personality": "Practical",
			"bio": "A busy teacher."
		}`, age)
	}

	_, err := Validate(persona(12), types.IntentPersona)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields(), "age")

	record, err := Validate(persona(28), types.IntentPersona)
	require.NoError(t, err)
	assert.Equal(t, 28, record.(types.Persona).Age)
}

func TestValidate_SeoAnalysisScoreRange(t *testing.T) {
	_, err := Validate(`{"score": 150, "recommendations": ["shorten title"]}`, types.IntentSeoAnalysis)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))

	record, err := Validate(`{"score": 82, "recommendations": ["shorten title"]}`, types.IntentSeoAnalysis)
	require.NoError(t, err)
	assert.Equal(t, 82, record.(types.SeoAnalysis).Score)
}

func TestValidate_ContentCalendarDateFormat(t *testing.T) {
	item := func(date string) string {
		return fmt.Sprintf(`{"date": %q, "title": "Post", "keywords": "serum", "content_type": "Guide", "notes": "Seasonal"}`, date)
	}
	calendar := func(date string) string {
		items := ""
		for i := 0; i < 8; i++ {
			if i > 0 {
				items += ", "
			}
			items += item(date)
		}
		return fmt.Sprintf(`{"topics": [%s]}`, items)
	}

	_, err := Validate(calendar("next Tuesday"), types.IntentContentCalendar)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))

	record, err := Validate(calendar("2026-09-03"), types.IntentContentCalendar)
	require.NoError(t, err)
	assert.Len(t, record.(types.ContentCalendar).Topics, 8)
}

func TestShapeFor_CoversEveryIntent(t *testing.T) {
	for _, intent := range types.Intents() {
		if intent == types.IntentBrandVoice {
			assert.Nil(t, ShapeFor(intent), "brand voice output is free-form prose")
			continue
		}
		assert.NotNil(t, ShapeFor(intent), "intent %s has no response shape", intent)
	}
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, "advanced", string(TierFor(types.IntentFullPost)))
	assert.Equal(t, "lite", string(TierFor(types.IntentTrendingTopics)))
	assert.Equal(t, "standard", string(TierFor(types.IntentPersona)))
}

package types

import "strings"

// StructuredResult is implemented by every validated content record.
// Each intent has exactly one result variant.
type StructuredResult interface {
	// ResultIntent identifies which intent produced this record.
	ResultIntent() Intent
}

// Outline is a blog post outline: ordered section headings.
type Outline struct {
	Sections []string `json:"sections"`
}

// ResultIntent implements StructuredResult.
func (Outline) ResultIntent() Intent { return IntentOutline }

// BlogPost is a complete generated article with SEO metadata.
// WordCount is always derived locally from Body, never taken from the model.
type BlogPost struct {
	Title           string   `json:"title"`
	Body            string   `json:"body"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	Tags            []string `json:"tags"`
	WordCount       int      `json:"word_count"`
}

// ResultIntent implements StructuredResult.
func (BlogPost) ResultIntent() Intent { return IntentFullPost }

// RecomputeWordCount sets WordCount from the current Body.
func (p *BlogPost) RecomputeWordCount() {
	p.WordCount = CountWords(p.Body)
}

// Persona is a generated customer persona for the Pakistani skincare market.
type Persona struct {
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Occupation    string   `json:"occupation"`
	Location      string   `json:"location"`
	SkincareGoals []string `json:"skincare_goals"`
	PainPoints    []string `json:"pain_points"`
	Motivations   []string `json:"motivations"`
	Personality   string   `json:"personality"`
	Bio           string   `json:"bio"`
}

// ResultIntent implements StructuredResult.
func (Persona) ResultIntent() Intent { return IntentPersona }

// TrendingTopic is one trending skincare topic with its rationale.
type TrendingTopic struct {
	Topic  string `json:"topic"`
	Reason string `json:"reason"`
}

// TrendingTopics is the set of currently trending topics.
type TrendingTopics struct {
	Topics []TrendingTopic `json:"topics"`
}

// ResultIntent implements StructuredResult.
func (TrendingTopics) ResultIntent() Intent { return IntentTrendingTopics }

// SeoAnalysis is an SEO score with actionable recommendations.
type SeoAnalysis struct {
	Score           int      `json:"score"`
	Recommendations []string `json:"recommendations"`
}

// ResultIntent implements StructuredResult.
func (SeoAnalysis) ResultIntent() Intent { return IntentSeoAnalysis }

// RepurposedContent is blog content rewritten for a social platform.
type RepurposedContent struct {
	Platform string `json:"platform"`
	Content  string `json:"content"`
}

// ResultIntent implements StructuredResult.
func (RepurposedContent) ResultIntent() Intent { return IntentRepurpose }

// FaqItem is a single question/answer pair.
type FaqItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SeoFaq carries SEO metadata options plus FAQ and key takeaways for a post.
type SeoFaq struct {
	MetaTitles       []string  `json:"meta_titles"`
	MetaDescriptions []string  `json:"meta_descriptions"`
	Faq              []FaqItem `json:"faq"`
	KeyTakeaways     []string  `json:"key_takeaways"`
}

// ResultIntent implements StructuredResult.
func (SeoFaq) ResultIntent() Intent { return IntentSeoFaq }

// CalendarTopic is one planned post in a monthly content calendar.
type CalendarTopic struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Keywords    string `json:"keywords"`
	ContentType string `json:"content_type"`
	Notes       string `json:"notes"`
}

// ContentCalendar is a month of planned blog topics.
type ContentCalendar struct {
	Topics []CalendarTopic `json:"topics"`
}

// ResultIntent implements StructuredResult.
func (ContentCalendar) ResultIntent() Intent { return IntentContentCalendar }

// BrandVoice is a prose brand-voice profile derived from sample text. It is
// the one free-form result: the profile feeds the brand_voice parameter of
// later generation requests rather than a structured consumer.
type BrandVoice struct {
	Profile string `json:"profile"`
}

// ResultIntent implements StructuredResult.
func (BrandVoice) ResultIntent() Intent { return IntentBrandVoice }

// CountWords counts whitespace-separated words in text. Both the validation
// and fallback paths use this same count.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

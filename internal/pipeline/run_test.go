package pipeline

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/llm"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/prompting"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/types"
)

// stubClient replays scripted responses and records every prompt it receives.
type stubClient struct {
	prompts   []string
	responses []stubResponse
}

type stubResponse struct {
	text string
	err  error
}

func (s *stubClient) GenerateStructured(_ context.Context, prompt string, _ *llm.ResponseSchema, _ llm.ModelTier) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.responses) == 0 {
		return "", errors.New("stub: no scripted response left")
	}
	next := s.responses[0]
	s.responses = s.responses[1:]
	return next.text, next.err
}

func (s *stubClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return s.GenerateStructured(ctx, prompt, nil, tier)
}

func (s *stubClient) GetModel(llm.ModelTier) string { return "stub-model" }
func (s *stubClient) Close() error                  { return nil }

func newTestPipeline(client *stubClient, opts ...Option) *Pipeline {
	opts = append(opts, WithLogger(log.New(io.Discard, "", 0)))
	return New(client, opts...)
}

func TestRun_OutlineSuccess(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{text: `{"sections": ["Introduction", "Why Serums Matter", "How to Choose", "Conclusion"]}`},
	}}

	result, err := newTestPipeline(client).Run(context.Background(), types.NewRequest(
		types.IntentOutline, map[string]string{types.ParamTitle: "Serum Guide"},
	))
	require.NoError(t, err)

	assert.False(t, result.Fallback)
	assert.Equal(t, types.IntentOutline, result.Intent)
	outline := result.Record.(types.Outline)
	assert.Equal(t, []string{"Introduction", "Why Serums Matter", "How to Choose", "Conclusion"}, outline.Sections)
	assert.Len(t, client.prompts, 1)
}

func TestRun_ValidationFailureRetriesThenFallsBack(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{text: "I'm sorry, I can't produce that."},
		{text: "Still not JSON."},
	}}

	result, err := newTestPipeline(client).Run(context.Background(), types.NewRequest(
		types.IntentFullPost, map[string]string{types.ParamTitle: "T"},
	))
	require.NoError(t, err)

	require.Len(t, client.prompts, 2)
	assert.NotContains(t, client.prompts[0], "BlogPost schema")
	assert.Contains(t, client.prompts[1], "BlogPost schema")

	assert.True(t, result.Fallback)
	post := result.Record.(types.BlogPost)
	assert.Equal(t, "T", post.Title)
	assert.Equal(t, types.CountWords(post.Body), post.WordCount)
	assert.NotEmpty(t, post.Tags)
}

func TestRun_ValidationFailureThenSuccess(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{text: `{"sections": []}`},
		{text: `{"sections": ["Introduction", "Conclusion"]}`},
	}}

	result, err := newTestPipeline(client).Run(context.Background(), types.NewRequest(
		types.IntentOutline, map[string]string{types.ParamTitle: "Serum Guide"},
	))
	require.NoError(t, err)

	assert.False(t, result.Fallback)
	assert.Len(t, client.prompts, 2)
	assert.Contains(t, client.prompts[1], "BlogOutline schema")
	assert.Len(t, result.Record.(types.Outline).Sections, 2)
}

func TestRun_QuotaErrorIsNotRetried(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{err: &llm.QuotaError{StatusCode: 429}},
	}}

	_, err := newTestPipeline(client).Run(context.Background(), types.NewRequest(
		types.IntentPersona, map[string]string{types.ParamDescription: "young professionals"},
	))
	require.Error(t, err)

	var unavailable *ServiceUnavailableError
	require.True(t, errors.As(err, &unavailable))
	var quota *llm.QuotaError
	assert.True(t, errors.As(err, &quota))
	assert.Len(t, client.prompts, 1)
}

func TestRun_TransportErrorEachRunIndependent(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{err: &llm.TransportError{Cause: errors.New("connection reset")}},
		{err: &llm.TransportError{Cause: errors.New("connection reset")}},
	}}
	pipe := newTestPipeline(client)
	req := types.NewRequest(types.IntentOutline, map[string]string{types.ParamTitle: "Serum Guide"})

	for i := 0; i < 2; i++ {
		_, err := pipe.Run(context.Background(), req)
		var unavailable *ServiceUnavailableError
		require.True(t, errors.As(err, &unavailable), "run %d", i+1)
	}
	assert.Len(t, client.prompts, 2)
}

func TestRun_MissingParameterFailsBeforeGeneration(t *testing.T) {
	client := &stubClient{}

	_, err := newTestPipeline(client).Run(context.Background(), types.NewRequest(types.IntentFullPost, nil))
	require.Error(t, err)

	var missing *prompting.MissingParameterError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "title", missing.Param)
	assert.Empty(t, client.prompts)
}

func TestRun_EmptyResponseRetriedThenSucceeds(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{err: &llm.EmptyResponseError{Reason: "no candidates in response"}},
		{text: `{"sections": ["Introduction"]}`},
	}}

	result, err := newTestPipeline(client).Run(context.Background(), types.NewRequest(
		types.IntentOutline, map[string]string{types.ParamTitle: "Serum Guide"},
	))
	require.NoError(t, err)
	assert.False(t, result.Fallback)
	assert.Len(t, client.prompts, 2)
}

func TestRun_EmptyResponseExhaustsToFallback(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{err: &llm.EmptyResponseError{Reason: "no candidates in response"}},
		{err: &llm.EmptyResponseError{Reason: "no candidates in response"}},
	}}

	result, err := newTestPipeline(client).Run(context.Background(), types.NewRequest(
		types.IntentOutline, map[string]string{types.ParamTitle: "Serum Guide"},
	))
	require.NoError(t, err)
	assert.True(t, result.Fallback)
}

func TestRun_RetryLimitZero(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{text: "not json"},
	}}

	result, err := newTestPipeline(client, WithRetryLimit(0)).Run(context.Background(), types.NewRequest(
		types.IntentOutline, map[string]string{types.ParamTitle: "Serum Guide"},
	))
	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.Len(t, client.prompts, 1)
}

func TestRun_BrandVoiceReturnsProseProfile(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{text: "  Warm and playful, short sentences, Urdu-English code switching.\n"},
	}}

	result, err := newTestPipeline(client).Run(context.Background(), types.NewRequest(
		types.IntentBrandVoice, map[string]string{types.ParamContent: "<p>Sample post</p>"},
	))
	require.NoError(t, err)

	assert.False(t, result.Fallback)
	voice := result.Record.(types.BrandVoice)
	assert.Equal(t, "Warm and playful, short sentences, Urdu-English code switching.", voice.Profile)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "<p>Sample post</p>")
}

func TestRun_BrandVoiceTransportError(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{err: &llm.TransportError{Cause: errors.New("connection reset")}},
	}}

	_, err := newTestPipeline(client).Run(context.Background(), types.NewRequest(
		types.IntentBrandVoice, map[string]string{types.ParamContent: "<p>Sample post</p>"},
	))

	var unavailable *ServiceUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Len(t, client.prompts, 1)
}

func TestRun_BrandVoiceEmptyResponsesFallBack(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{err: &llm.EmptyResponseError{Reason: "response text is empty"}},
		{err: &llm.EmptyResponseError{Reason: "response text is empty"}},
	}}

	result, err := newTestPipeline(client).Run(context.Background(), types.NewRequest(
		types.IntentBrandVoice, map[string]string{types.ParamContent: "<p>Sample post</p>"},
	))
	require.NoError(t, err)

	assert.True(t, result.Fallback)
	voice := result.Record.(types.BrandVoice)
	assert.Equal(t, "Warm, knowledgeable, and approachable tone with clear, practical advice.", voice.Profile)
	assert.Len(t, client.prompts, 2)
}

func TestRun_RepurposePlatformFilledFromRequest(t *testing.T) {
	client := &stubClient{responses: []stubResponse{
		{text: `{"content": "Glow up with Chamkili! #skincare"}`},
	}}

	result, err := newTestPipeline(client).Run(context.Background(), types.NewRequest(
		types.IntentRepurpose, map[string]string{
			types.ParamContent:  "<p>Original post</p>",
			types.ParamPlatform: "instagram",
		},
	))
	require.NoError(t, err)

	repurposed := result.Record.(types.RepurposedContent)
	assert.Equal(t, "instagram", repurposed.Platform)
	assert.Equal(t, "Glow up with Chamkili! #skincare", repurposed.Content)
}

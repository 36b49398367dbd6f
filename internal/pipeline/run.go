// Package pipeline orchestrates content generation: build prompt, call the
// generation client, validate the response, retry once on shape mismatch,
// and synthesize a local fallback when the model cannot produce a valid
// record. Each run is stateless and independent.
package pipeline

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/llm"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/prompting"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/schemas"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/types"
)

// DefaultRetryLimit is how many stricter re-prompts follow a validation
// failure before falling back to a synthesized record.
const DefaultRetryLimit = 1

// Result is the outcome of a pipeline run. Fallback marks records that were
// synthesized locally after the model failed validation.
type Result struct {
	Intent   types.Intent           `json:"intent"`
	Record   types.StructuredResult `json:"record"`
	Fallback bool                   `json:"fallback"`
}

// Pipeline runs content-generation requests against an LLM client.
type Pipeline struct {
	client     llm.Client
	retryLimit int
	logger     *log.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRetryLimit overrides the number of validation-failure retries.
func WithRetryLimit(n int) Option {
	return func(p *Pipeline) {
		if n >= 0 {
			p.retryLimit = n
		}
	}
}

// WithLogger sets the pipeline's logger.
func WithLogger(logger *log.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// New creates a Pipeline around an LLM client.
func New(client llm.Client, opts ...Option) *Pipeline {
	p := &Pipeline{
		client:     client,
		retryLimit: DefaultRetryLimit,
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes one generation request.
//
// Error contract: a *prompting.MissingParameterError fails fast; transport
// and quota failures surface as *ServiceUnavailableError without retry;
// validation failures are retried with a stricter prompt and, if the retry
// also fails, replaced by a fallback record (never an error).
func (p *Pipeline) Run(ctx context.Context, req types.GenerationRequest) (*Result, error) {
	prompt, err := prompting.Build(req)
	if err != nil {
		return nil, err
	}

	shape := schemas.ShapeFor(req.Intent)
	tier := schemas.TierFor(req.Intent)

	if shape == nil {
		return p.runFreeform(ctx, req, prompt, tier)
	}

	attemptPrompt := prompt
	for attempt := 0; attempt <= p.retryLimit; attempt++ {
		raw, genErr := p.client.GenerateStructured(ctx, attemptPrompt, shape, tier)
		if genErr != nil {
			var emptyErr *llm.EmptyResponseError
			if errors.As(genErr, &emptyErr) {
				// An empty response is a content failure: eligible for the
				// same retry-then-fallback path as a shape mismatch.
				p.logger.Printf("[pipeline] %s attempt %d: empty response", req.Intent, attempt+1)
				attemptPrompt = strictPrompt(prompt, shape)
				continue
			}
			return nil, &ServiceUnavailableError{Cause: genErr}
		}

		record, valErr := schemas.Validate(raw, req.Intent)
		if valErr == nil {
			return &Result{
				Intent: req.Intent,
				Record: normalize(record, req),
			}, nil
		}

		var ve *schemas.ValidationError
		if !errors.As(valErr, &ve) {
			return nil, valErr
		}
		p.logger.Printf("[pipeline] %s attempt %d: validation failed on %v", req.Intent, attempt+1, ve.Fields())
		attemptPrompt = strictPrompt(prompt, shape)
	}

	p.logger.Printf("[pipeline] %s: falling back to synthesized record", req.Intent)
	return &Result{
		Intent:   req.Intent,
		Record:   Fallback(req),
		Fallback: true,
	}, nil
}

// runFreeform handles intents whose result is prose rather than a schema-
// constrained record. The only validation is that the model said something.
func (p *Pipeline) runFreeform(ctx context.Context, req types.GenerationRequest, prompt string, tier llm.ModelTier) (*Result, error) {
	for attempt := 0; attempt <= p.retryLimit; attempt++ {
		text, err := p.client.GenerateContent(ctx, prompt, tier)
		if err != nil {
			var emptyErr *llm.EmptyResponseError
			if errors.As(err, &emptyErr) {
				p.logger.Printf("[pipeline] %s attempt %d: empty response", req.Intent, attempt+1)
				continue
			}
			return nil, &ServiceUnavailableError{Cause: err}
		}
		return &Result{
			Intent: req.Intent,
			Record: freeformRecord(req.Intent, text),
		}, nil
	}

	p.logger.Printf("[pipeline] %s: falling back to synthesized record", req.Intent)
	return &Result{
		Intent:   req.Intent,
		Record:   Fallback(req),
		Fallback: true,
	}, nil
}

// freeformRecord wraps prose output in the intent's result type.
func freeformRecord(intent types.Intent, text string) types.StructuredResult {
	switch intent {
	case types.IntentBrandVoice:
		return types.BrandVoice{Profile: strings.TrimSpace(text)}
	default:
		return nil
	}
}

// strictPrompt appends an explicit schema instruction for the re-prompt.
func strictPrompt(prompt string, shape *llm.ResponseSchema) string {
	if shape == nil {
		return prompt + "\n\nRespond with ONLY valid JSON. No markdown, no explanation."
	}
	return prompt + "\n\n" + shape.Instructions()
}

// normalize fills request-derived fields the model is allowed to omit.
func normalize(record types.StructuredResult, req types.GenerationRequest) types.StructuredResult {
	if repurposed, ok := record.(types.RepurposedContent); ok && repurposed.Platform == "" {
		repurposed.Platform = req.Param(types.ParamPlatform)
		return repurposed
	}
	return record
}

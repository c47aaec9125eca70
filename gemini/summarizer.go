// Package gemini provides a Google Gemini-backed implementation of
// skim.Summarizer.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/skim"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is specified.
const DefaultModel = "gemini-2.5-flash"

const (
	// maxOutputTokens bounds the completion length; three short bullets
	// and a title fit comfortably.
	maxOutputTokens = 512

	// temperature is kept low to favor deterministic, parseable output.
	temperature = 0.2
)

// systemInstruction defines the required structured-output shape. The model
// is asked for JSON only, but the recovery parser tolerates decorated output
// anyway.
const systemInstruction = `You summarize web pages. Given the text of a page, respond with JSON only, no other text:
{
  "title": "short page title",
  "summary_points": ["key point 1", "key point 2", "key point 3"]
}
Use at most three summary points, most important first. Each point is one short sentence.`

// Ensure Summarizer implements skim.Summarizer at compile time.
var _ skim.Summarizer = (*Summarizer)(nil)

// Summarizer implements skim.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini API client from an explicit credential.
// Returns EUNAUTHORIZED if the key is empty.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, skim.Errorf(skim.EUNAUTHORIZED, "completion service API key required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, skim.Errorf(skim.EUNAVAILABLE, "connecting to completion service: %v", err)
	}
	return client, nil
}

// NewSummarizer creates a new Summarizer. An empty model selects DefaultModel.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize sends the article text to Gemini and recovers a structured draft
// from the first completion's text.
func (s *Summarizer) Summarize(ctx context.Context, text string) (*skim.SummaryDraft, error) {
	if strings.TrimSpace(text) == "" {
		return nil, skim.Errorf(skim.EINVALID, "article text required")
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(text)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, skim.Errorf(skim.ETIMEOUT, "completion service timed out")
		}
		return nil, skim.Errorf(skim.EUNAVAILABLE, "completion service: %v", err)
	}
	if result == nil || strings.TrimSpace(result.Text()) == "" {
		return nil, skim.Errorf(skim.EINTERNAL, "completion service returned no text")
	}

	obj, err := skim.RecoverObject(result.Text())
	if err != nil {
		return nil, err
	}

	return skim.DraftFromObject(obj), nil
}

// BuildConfig returns the GenerateContentConfig for summarization calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(temperature)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature:     &temp,
		MaxOutputTokens: maxOutputTokens,
	}
}

// BuildUserPrompt builds the user message embedding the article text verbatim.
func BuildUserPrompt(text string) string {
	return fmt.Sprintf("Page text:\n\n%s", text)
}

package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Summarizer implements skim.Summarizer at compile time.
var _ skim.Summarizer = (*gemini.Summarizer)(nil)

func TestNewClient_ReturnsErrorWhenKeyMissing(t *testing.T) {
	t.Parallel()

	_, err := gemini.NewClient(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, skim.EUNAUTHORIZED, skim.ErrorCode(err))
	assert.Contains(t, skim.ErrorMessage(err), "API key")
}

func TestSummarizer_Summarize_ReturnsErrorWhenTextEmpty(t *testing.T) {
	t.Parallel()

	s := gemini.NewSummarizer(nil, "") // nil client ok for this test

	_, err := s.Summarize(context.Background(), "   ")

	require.Error(t, err)
	assert.Equal(t, skim.EINVALID, skim.ErrorCode(err))
	assert.Contains(t, skim.ErrorMessage(err), "article text required")
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "summary_points")

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.2, float64(*config.Temperature), 0.001)

	assert.EqualValues(t, 512, config.MaxOutputTokens)
}

func TestBuildUserPrompt_EmbedsTextVerbatim(t *testing.T) {
	t.Parallel()

	text := "The quick brown fox. 42% of readers agree."
	prompt := gemini.BuildUserPrompt(text)

	assert.Contains(t, prompt, text)
}

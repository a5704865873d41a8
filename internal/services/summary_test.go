package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblos-search-api/internal/llm/anthropic"
	"github.com/biblos-search-api/internal/models"
)

type stubCompleter struct {
	replies map[string]string // keyed by a substring of the prompt
	err     error
	calls   int
}

func (c *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	for key, reply := range c.replies {
		if strings.Contains(prompt, key) {
			return reply, nil
		}
	}
	return "generic summary", nil
}

func searchResults() *models.SearchResponse {
	return &models.SearchResponse{
		Query: "what is love",
		Passages: []models.ScoredPassage{
			{Book: "1CO", BookName: "1 Corinthians", Chapter: 13, Text: "4 Love is patient", Score: 0.9},
		},
		Commentary: []models.ScoredCommentary{
			{Author: "Augustine of Hippo", Text: "On the love of God", Score: 0.85},
		},
	}
}

func TestSummarizeSearch_BothSummaries(t *testing.T) {
	llm := &stubCompleter{replies: map[string]string{
		"passages":   "passage summary",
		"commentary": "commentary summary",
	}}
	svc := NewSummaryService(llm)

	resp := svc.SummarizeSearch(context.Background(), searchResults())

	assert.True(t, resp.LLMEnabled)
	assert.Empty(t, resp.LLMError)
	assert.Equal(t, "passage summary", resp.PassageSummary)
	assert.Equal(t, "commentary summary", resp.CommentarySummary)
	assert.Equal(t, 2, llm.calls)
}

func TestSummarizeSearch_NoCommentarySkipsSecondCall(t *testing.T) {
	llm := &stubCompleter{}
	svc := NewSummaryService(llm)

	results := searchResults()
	results.Commentary = nil

	resp := svc.SummarizeSearch(context.Background(), results)

	assert.True(t, resp.LLMEnabled)
	assert.NotEmpty(t, resp.PassageSummary)
	assert.Empty(t, resp.CommentarySummary)
	assert.Equal(t, 1, llm.calls)
}

func TestSummarizeSearch_NotConfiguredDisablesLLM(t *testing.T) {
	llm := &stubCompleter{err: anthropic.ErrNotConfigured}
	svc := NewSummaryService(llm)

	resp := svc.SummarizeSearch(context.Background(), searchResults())

	assert.False(t, resp.LLMEnabled)
	assert.Contains(t, resp.LLMError, "disabled")
	assert.Empty(t, resp.PassageSummary)
	assert.Empty(t, resp.CommentarySummary)
	// No second call once the feature is known to be unconfigured
	assert.Equal(t, 1, llm.calls)
}

func TestSummarizeSearch_UpstreamErrorIsAbsorbed(t *testing.T) {
	llm := &stubCompleter{err: &anthropic.UpstreamError{StatusCode: 529, Body: "overloaded"}}
	svc := NewSummaryService(llm)

	resp := svc.SummarizeSearch(context.Background(), searchResults())

	assert.True(t, resp.LLMEnabled)
	assert.Contains(t, resp.LLMError, "529")
	assert.Empty(t, resp.PassageSummary)
	assert.Empty(t, resp.CommentarySummary)
	assert.Equal(t, 2, llm.calls)
}

func TestSummarizeSearch_FirstErrorIsKept(t *testing.T) {
	llm := &stubCompleter{err: errors.New("first failure")}
	svc := NewSummaryService(llm)

	resp := svc.SummarizeSearch(context.Background(), searchResults())

	assert.Equal(t, "first failure", resp.LLMError)
}

type unconfiguredCompleter struct {
	stubCompleter
}

func (c *unconfiguredCompleter) Configured() bool { return false }

func TestSummarizeSearch_UnconfiguredClientEmptyResults(t *testing.T) {
	llm := &unconfiguredCompleter{}
	svc := NewSummaryService(llm)

	resp := svc.SummarizeSearch(context.Background(), &models.SearchResponse{Query: "nothing"})

	assert.False(t, resp.LLMEnabled)
	assert.Contains(t, resp.LLMError, "disabled")
	assert.Equal(t, 0, llm.calls)
}

func TestSummarizeSearch_UnconfiguredClientSkipsCalls(t *testing.T) {
	llm := &unconfiguredCompleter{}
	svc := NewSummaryService(llm)

	resp := svc.SummarizeSearch(context.Background(), searchResults())

	assert.False(t, resp.LLMEnabled)
	assert.Equal(t, 0, llm.calls)
	assert.Empty(t, resp.PassageSummary)
}

func TestSummarizeSearch_EmptyResults(t *testing.T) {
	llm := &stubCompleter{}
	svc := NewSummaryService(llm)

	resp := svc.SummarizeSearch(context.Background(), &models.SearchResponse{Query: "nothing"})

	require.Equal(t, 0, llm.calls)
	assert.True(t, resp.LLMEnabled)
	assert.Equal(t, "nothing", resp.Query)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/biblos-search-api/internal/llm/anthropic"
	"github.com/biblos-search-api/internal/models"
)

// Prompt templates filled with the query and the newline-joined result blocks
const (
	passageSummaryPrompt = `You are a concise Biblical scholar assisting a seeker with their query: "%s" Given these relevant passages: %s Provide a brief, focused response on the central theme or teaching from these verses related to the query. Keep your response under 200 words, grounded in conservative theology.`

	commentarySummaryPrompt = `You are a concise Biblical scholar assisting a seeker with their query: %s Given these relevant church fathers commentary search results: %s
Provide a brief summary of the key insights and interpretations of the Church Fathers' thoughts. Keep your response under 200 words, grounded in conservative theology.`
)

// Completer produces a text completion for a single-turn prompt
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// SummaryService generates LLM summaries of search results. Every failure is
// absorbed into an absent summary; nothing here is fatal to the request.
type SummaryService struct {
	llm Completer
}

// NewSummaryService creates a new summary service
func NewSummaryService(llm Completer) *SummaryService {
	return &SummaryService{llm: llm}
}

// SummarizeSearch produces a passage summary and, when commentary results are
// present, a commentary summary
func (s *SummaryService) SummarizeSearch(ctx context.Context, results *models.SearchResponse) models.SummaryResponse {
	resp := models.SummaryResponse{
		Query:      results.Query,
		LLMEnabled: true,
	}

	// Report a missing API key even when there is nothing to summarize
	if c, ok := s.llm.(interface{ Configured() bool }); ok && !c.Configured() {
		resp.LLMEnabled = false
		resp.LLMError = "no API token found, so LLM support is disabled"
		return resp
	}

	if len(results.Passages) > 0 {
		blocks := FormatPassages(results.Passages)
		prompt := fmt.Sprintf(passageSummaryPrompt, results.Query, strings.Join(blocks, "\n\n"))
		text, err := s.llm.Complete(ctx, prompt)
		if err != nil {
			if s.recordFailure(&resp, err) {
				return resp
			}
		} else {
			resp.PassageSummary = text
		}
	}

	if len(results.Commentary) > 0 {
		blocks := FormatCommentary(results.Commentary)
		prompt := fmt.Sprintf(commentarySummaryPrompt, results.Query, strings.Join(blocks, "\n\n"))
		text, err := s.llm.Complete(ctx, prompt)
		if err != nil {
			s.recordFailure(&resp, err)
		} else {
			resp.CommentarySummary = text
		}
	}

	return resp
}

// recordFailure notes the error on the response and reports whether further
// LLM calls should be skipped (missing credentials disable the feature as a
// whole, upstream failures only lose the one summary)
func (s *SummaryService) recordFailure(resp *models.SummaryResponse, err error) bool {
	if errors.Is(err, anthropic.ErrNotConfigured) {
		resp.LLMEnabled = false
		resp.LLMError = "no API token found, so LLM support is disabled"
		return true
	}
	if resp.LLMError == "" {
		resp.LLMError = err.Error()
	}
	return false
}

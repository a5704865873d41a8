package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/biblos-search-api/internal/models"
	"github.com/biblos-search-api/internal/repository"
	pkgservices "github.com/biblos-search-api/pkg/schema/services"
)

// commentaryWorkers bounds the per-author commentary fan-out
const commentaryWorkers = 4

// QueryEmbedder embeds free-text queries for retrieval
type QueryEmbedder interface {
	EmbedQuery(ctx context.Context, query string) ([]float64, error)
}

// Ensure the shared embeddings service satisfies QueryEmbedder
var _ QueryEmbedder = (*pkgservices.EmbeddingsService)(nil)

// Options holds the tunable search parameters
type Options struct {
	Authors             []string // commentary authors, one lookup each
	MaxResultCount      int
	DefaultResultCount  int
	CommentaryMinScore  float64
	CommentaryMinLength int
}

// SearchService implements the retrieval pipeline: one scripture lookup with
// a testament filter, plus an optional per-author commentary fan-out
type SearchService struct {
	passageRepo    repository.PassageSearchRepository
	commentaryRepo repository.CommentarySearchRepository
	embeddings     QueryEmbedder
	opts           Options

	// testamentBooks is computed once at construction and never mutated
	testamentBooks map[models.Testament][]string
}

// NewSearchService creates a new search service
func NewSearchService(
	passageRepo repository.PassageSearchRepository,
	commentaryRepo repository.CommentarySearchRepository,
	embeddings QueryEmbedder,
	opts Options,
) *SearchService {
	if opts.MaxResultCount <= 0 {
		opts.MaxResultCount = 15
	}
	if opts.DefaultResultCount <= 0 {
		opts.DefaultResultCount = 4
	}
	if len(opts.Authors) == 0 {
		opts.Authors = models.ChurchFathers
	}

	return &SearchService{
		passageRepo:    passageRepo,
		commentaryRepo: commentaryRepo,
		embeddings:     embeddings,
		opts:           opts,
		testamentBooks: map[models.Testament][]string{
			models.TestamentOld: models.BooksOfTestament(models.TestamentOld),
			models.TestamentNew: models.BooksOfTestament(models.TestamentNew),
		},
	}
}

// Search runs the full retrieval pipeline for one request. An empty query is
// a no-op returning empty results. A scripture lookup failure is fatal to the
// request; per-author commentary failures are logged and excluded.
func (s *SearchService) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	resp := &models.SearchResponse{
		Query:      req.Query,
		Passages:   []models.ScoredPassage{},
		Commentary: []models.ScoredCommentary{},
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return resp, nil
	}

	limit := s.clampLimit(req.Limit)

	embedding, err := s.embeddings.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	passages, err := s.passageRepo.SearchPassagesByEmbedding(ctx, embedding, limit, s.booksFor(req.Testament))
	if err != nil {
		return nil, fmt.Errorf("passage search: %w", err)
	}
	resp.Passages = passages

	if req.IncludeCommentary {
		raw := s.searchCommentary(ctx, embedding)
		resp.Commentary = RankCommentary(raw, s.opts.CommentaryMinScore, s.opts.CommentaryMinLength)
	}

	return resp, nil
}

// clampLimit keeps the result count inside the configured range
func (s *SearchService) clampLimit(limit int) int {
	if limit <= 0 {
		return s.opts.DefaultResultCount
	}
	if limit > s.opts.MaxResultCount {
		return s.opts.MaxResultCount
	}
	return limit
}

// booksFor maps a testament filter to a book-code allow list. TestamentBoth
// (or anything unrecognized) means no filter.
func (s *SearchService) booksFor(t models.Testament) []string {
	return s.testamentBooks[t]
}

// searchCommentary fans one k=1 lookup per author out across a bounded worker
// pool and joins the successes. A failed author lookup never aborts the
// request: partial commentary coverage is an acceptable degraded result.
func (s *SearchService) searchCommentary(ctx context.Context, embedding []float64) []models.ScoredCommentary {
	var (
		wg        sync.WaitGroup
		sem       = make(chan struct{}, commentaryWorkers)
		resultsCh = make(chan []models.ScoredCommentary, len(s.opts.Authors))
	)

	for _, author := range s.opts.Authors {
		wg.Add(1)
		sem <- struct{}{}
		go func(author string) {
			defer wg.Done()
			defer func() { <-sem }()

			results, err := s.commentaryRepo.SearchCommentaryByAuthor(ctx, embedding, author, 1)
			if err != nil {
				log.Printf("commentary lookup failed for %s: %v", author, err)
				return
			}
			if len(results) > 0 {
				resultsCh <- results
			}
		}(author)
	}

	wg.Wait()
	close(resultsCh)

	var merged []models.ScoredCommentary
	for results := range resultsCh {
		merged = append(merged, results...)
	}
	return merged
}

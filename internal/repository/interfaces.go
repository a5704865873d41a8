package repository

import (
	"context"

	"github.com/biblos-search-api/internal/models"
)

// PassageSearchRepository defines vector similarity search over scripture passages
type PassageSearchRepository interface {
	// SearchPassagesByEmbedding returns the topK nearest passages. A non-empty
	// books list restricts results to those book codes.
	SearchPassagesByEmbedding(ctx context.Context, embedding []float64, topK int, books []string) ([]models.ScoredPassage, error)
}

// CommentarySearchRepository defines vector similarity search over patristic commentary
type CommentarySearchRepository interface {
	// SearchCommentaryByAuthor returns the topK nearest commentary chunks
	// written by the given author.
	SearchCommentaryByAuthor(ctx context.Context, embedding []float64, author string, topK int) ([]models.ScoredCommentary, error)
}

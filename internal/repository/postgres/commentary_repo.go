package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"

	"github.com/biblos-search-api/internal/models"
	"github.com/biblos-search-api/internal/repository"
)

// CommentarySearchRepository implements repository.CommentarySearchRepository for PostgreSQL with pgvector
type CommentarySearchRepository struct {
	db *sqlx.DB
}

// NewCommentarySearchRepository creates a new PostgreSQL commentary search repository
func NewCommentarySearchRepository(db *sqlx.DB) repository.CommentarySearchRepository {
	return &CommentarySearchRepository{db: db}
}

// SearchCommentaryByAuthor performs vector similarity search on commentary
// restricted to a single church father
func (r *CommentarySearchRepository) SearchCommentaryByAuthor(ctx context.Context, embedding []float64, author string, topK int) ([]models.ScoredCommentary, error) {
	vec := pgvector.NewVector(float32Slice(embedding))

	rows, err := r.db.QueryxContext(ctx, `
		SELECT father_name, source_title, book, append_to_author_name, text,
		       1 - (embedding <=> $1::vector) as score
		FROM commentary
		WHERE embedding IS NOT NULL AND father_name = $2
		ORDER BY embedding <=> $1::vector
		LIMIT $3
	`, vec, author, topK)
	if err != nil {
		return nil, fmt.Errorf("vector search commentary: %w", err)
	}
	defer rows.Close()

	var results []models.ScoredCommentary
	for rows.Next() {
		var (
			c           models.ScoredCommentary
			sourceTitle sql.NullString
			book        sql.NullString
			authorNote  sql.NullString
		)
		if err := rows.Scan(&c.Author, &sourceTitle, &book, &authorNote, &c.Text, &c.Score); err != nil {
			return nil, fmt.Errorf("scan commentary result: %w", err)
		}
		c.SourceTitle = sourceTitle.String
		c.Book = book.String
		c.AuthorNote = authorNote.String
		results = append(results, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate commentary results: %w", err)
	}

	if results == nil {
		results = []models.ScoredCommentary{}
	}
	return results, nil
}

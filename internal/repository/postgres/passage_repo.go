package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"

	"github.com/biblos-search-api/internal/models"
	"github.com/biblos-search-api/internal/repository"
)

// PassageSearchRepository implements repository.PassageSearchRepository for PostgreSQL with pgvector
type PassageSearchRepository struct {
	db *sqlx.DB
}

// NewPassageSearchRepository creates a new PostgreSQL passage search repository
func NewPassageSearchRepository(db *sqlx.DB) repository.PassageSearchRepository {
	return &PassageSearchRepository{db: db}
}

// SearchPassagesByEmbedding performs vector similarity search on passages using pgvector
func (r *PassageSearchRepository) SearchPassagesByEmbedding(ctx context.Context, embedding []float64, topK int, books []string) ([]models.ScoredPassage, error) {
	vec := pgvector.NewVector(float32Slice(embedding))

	query := `
		SELECT book, chapter, verse_nums, testament, text,
		       1 - (embedding <=> $1::vector) as score
		FROM passages
		WHERE embedding IS NOT NULL
	`
	args := []interface{}{vec}
	if len(books) > 0 {
		query += " AND book = ANY($2)"
		args = append(args, pq.Array(books))
	}
	query += fmt.Sprintf(" ORDER BY embedding <=> $1::vector LIMIT $%d", len(args)+1)
	args = append(args, topK)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("vector search passages: %w", err)
	}
	defer rows.Close()

	var results []models.ScoredPassage
	for rows.Next() {
		var p models.ScoredPassage
		if err := rows.Scan(&p.Book, &p.Chapter, &p.VerseNums, &p.Testament, &p.Text, &p.Score); err != nil {
			return nil, fmt.Errorf("scan passage result: %w", err)
		}
		p.BookName = models.BookName(p.Book)
		results = append(results, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate passage results: %w", err)
	}

	if results == nil {
		results = []models.ScoredPassage{}
	}
	return results, nil
}

// float32Slice converts []float64 to []float32 for pgvector
func float32Slice(f64 []float64) []float32 {
	f32 := make([]float32, len(f64))
	for i, v := range f64 {
		f32[i] = float32(v)
	}
	return f32
}

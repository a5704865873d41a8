package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/biblos-search-api/pkg/schema/config"
)

// EmbeddingsService handles text embedding operations using a pluggable backend
type EmbeddingsService struct {
	embedder Embedder
}

var (
	embeddingsService *EmbeddingsService
	embeddingsOnce    sync.Once
	initErr           error
)

// NewEmbeddingsService creates an embeddings service around the given embedder
func NewEmbeddingsService(embedder Embedder) *EmbeddingsService {
	return &EmbeddingsService{embedder: embedder}
}

// GetEmbeddingsService returns the singleton embeddings service
func GetEmbeddingsService() *EmbeddingsService {
	embeddingsOnce.Do(func() {
		cfg := config.GetConfig()
		ctx := context.Background()

		var embedder Embedder
		switch cfg.EmbeddingProvider {
		case "vertex":
			var err error
			embedder, err = NewVertexEmbedder(ctx, cfg)
			if err != nil {
				initErr = fmt.Errorf("failed to create Vertex AI embedder: %w", err)
				return
			}
		case "openai":
			var err error
			embedder, err = NewOpenAIEmbedder(cfg)
			if err != nil {
				initErr = fmt.Errorf("failed to create OpenAI embedder: %w", err)
				return
			}
		default:
			embedder = NewCustomEmbedder(cfg)
		}

		embeddingsService = NewEmbeddingsService(embedder)
	})
	return embeddingsService
}

// GetInitError returns any error that occurred during initialization
func GetInitError() error {
	return initErr
}

// EmbedQuery embeds a query for retrieval
func (s *EmbeddingsService) EmbedQuery(ctx context.Context, query string) ([]float64, error) {
	return s.embedder.Embed(ctx, query, TaskTypeQuery)
}

// EmbedPassage embeds a passage as a document for retrieval
func (s *EmbeddingsService) EmbedPassage(ctx context.Context, text string) ([]float64, error) {
	return s.embedder.Embed(ctx, text, TaskTypeDocument)
}

// EmbedPassageBatch embeds a batch of passages as documents for retrieval
func (s *EmbeddingsService) EmbedPassageBatch(ctx context.Context, texts []string) ([][]float64, error) {
	return s.embedder.EmbedBatch(ctx, texts, TaskTypeDocument)
}

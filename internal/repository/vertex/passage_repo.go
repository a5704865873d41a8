package vertex

import (
	"context"
	"fmt"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	aiplatformpb "cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"github.com/jmoiron/sqlx"
	"google.golang.org/api/option"

	"github.com/biblos-search-api/internal/models"
	"github.com/biblos-search-api/internal/repository"
)

// Ensure PassageSearchRepository implements repository.PassageSearchRepository
var _ repository.PassageSearchRepository = (*PassageSearchRepository)(nil)

// Config holds Vertex AI Vector Search configuration
type Config struct {
	ProjectID            string // GCP project ID
	Location             string // e.g., "us-central1"
	IndexEndpointID      string // Deployed index endpoint ID
	DeployedIndexID      string // The deployed index ID within the endpoint
	PublicEndpointDomain string // Public endpoint domain for queries (e.g., "123.us-central1-456.vdb.vertexai.goog")
}

// PassageSearchRepository implements repository.PassageSearchRepository using Vertex AI Vector Search
type PassageSearchRepository struct {
	config      Config
	matchClient *aiplatform.MatchClient
	db          *sqlx.DB // Used to look up passage text after getting IDs from Vertex AI
}

// NewPassageSearchRepository creates a new Vertex AI passage search repository
func NewPassageSearchRepository(ctx context.Context, config Config, db *sqlx.DB) (*PassageSearchRepository, error) {
	// For public endpoints, use the public domain; otherwise use regional endpoint
	var endpoint string
	if config.PublicEndpointDomain != "" {
		endpoint = fmt.Sprintf("%s:443", config.PublicEndpointDomain)
	} else {
		endpoint = fmt.Sprintf("%s-aiplatform.googleapis.com:443", config.Location)
	}

	matchClient, err := aiplatform.NewMatchClient(ctx, option.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("create match client: %w", err)
	}

	return &PassageSearchRepository{
		config:      config,
		matchClient: matchClient,
		db:          db,
	}, nil
}

// Close closes the Vertex AI client
func (r *PassageSearchRepository) Close() error {
	if r.matchClient != nil {
		return r.matchClient.Close()
	}
	return nil
}

// SearchPassagesByEmbedding performs vector similarity search using Vertex AI Vector Search.
// A non-empty books list becomes an allow-list restrict on the "book" namespace.
func (r *PassageSearchRepository) SearchPassagesByEmbedding(ctx context.Context, embedding []float64, topK int, books []string) ([]models.ScoredPassage, error) {
	// Build the index endpoint resource name
	indexEndpoint := fmt.Sprintf(
		"projects/%s/locations/%s/indexEndpoints/%s",
		r.config.ProjectID,
		r.config.Location,
		r.config.IndexEndpointID,
	)

	// Convert embedding to float32
	featureVector := make([]float32, len(embedding))
	for i, v := range embedding {
		featureVector[i] = float32(v)
	}

	datapoint := &aiplatformpb.IndexDatapoint{
		FeatureVector: featureVector,
	}
	if len(books) > 0 {
		datapoint.Restricts = []*aiplatformpb.IndexDatapoint_Restriction{
			{
				Namespace: "book",
				AllowList: books,
			},
		}
	}

	// Build the FindNeighbors request
	req := &aiplatformpb.FindNeighborsRequest{
		IndexEndpoint:   indexEndpoint,
		DeployedIndexId: r.config.DeployedIndexID,
		Queries: []*aiplatformpb.FindNeighborsRequest_Query{
			{
				Datapoint:     datapoint,
				NeighborCount: int32(topK),
			},
		},
	}

	// Execute the search
	resp, err := r.matchClient.FindNeighbors(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("find neighbors: %w", err)
	}

	// Extract passage IDs and scores from the response
	if len(resp.NearestNeighbors) == 0 || len(resp.NearestNeighbors[0].Neighbors) == 0 {
		return []models.ScoredPassage{}, nil
	}

	neighbors := resp.NearestNeighbors[0].Neighbors

	// Collect passage IDs for batch lookup
	passageIDs := make([]string, len(neighbors))
	scoreMap := make(map[string]float64, len(neighbors))

	for i, neighbor := range neighbors {
		passageID := neighbor.Datapoint.DatapointId
		passageIDs[i] = passageID
		// Vertex AI returns distance, convert to similarity score
		// For cosine distance: similarity = 1 - distance
		scoreMap[passageID] = float64(1 - neighbor.Distance)
	}

	// Look up passage details from PostgreSQL
	results, err := r.lookupPassages(ctx, passageIDs, scoreMap)
	if err != nil {
		return nil, fmt.Errorf("lookup passages: %w", err)
	}

	return results, nil
}

// lookupPassages retrieves passage details from PostgreSQL given a list of passage IDs
func (r *PassageSearchRepository) lookupPassages(ctx context.Context, passageIDs []string, scoreMap map[string]float64) ([]models.ScoredPassage, error) {
	if len(passageIDs) == 0 {
		return []models.ScoredPassage{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT passage_id, book, chapter, verse_nums, testament, text
		FROM passages
		WHERE passage_id IN (?)
	`, passageIDs)
	if err != nil {
		return nil, fmt.Errorf("build IN query: %w", err)
	}

	// Rebind for PostgreSQL
	query = r.db.Rebind(query)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query passages: %w", err)
	}
	defer rows.Close()

	// Create a map for ordering results by score
	passageMap := make(map[string]models.ScoredPassage)
	for rows.Next() {
		var (
			id string
			p  models.ScoredPassage
		)
		if err := rows.Scan(&id, &p.Book, &p.Chapter, &p.VerseNums, &p.Testament, &p.Text); err != nil {
			return nil, fmt.Errorf("scan passage: %w", err)
		}
		p.BookName = models.BookName(p.Book)
		p.Score = scoreMap[id]
		passageMap[id] = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate passages: %w", err)
	}

	// Preserve the order from Vertex AI (sorted by relevance)
	results := make([]models.ScoredPassage, 0, len(passageIDs))
	for _, id := range passageIDs {
		if p, ok := passageMap[id]; ok {
			results = append(results, p)
		}
	}

	return results, nil
}

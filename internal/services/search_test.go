package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblos-search-api/internal/models"
)

type stubEmbedder struct {
	embedding []float64
	err       error
	calls     int
}

func (e *stubEmbedder) EmbedQuery(ctx context.Context, query string) ([]float64, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return e.embedding, nil
}

type stubPassageRepo struct {
	results []models.ScoredPassage
	err     error

	gotTopK  int
	gotBooks []string
}

func (r *stubPassageRepo) SearchPassagesByEmbedding(ctx context.Context, embedding []float64, topK int, books []string) ([]models.ScoredPassage, error) {
	r.gotTopK = topK
	r.gotBooks = books
	return r.results, r.err
}

type stubCommentaryRepo struct {
	mu      sync.Mutex
	byAuth  map[string][]models.ScoredCommentary
	failFor map[string]error
	authors []string
	topKs   []int
}

func (r *stubCommentaryRepo) SearchCommentaryByAuthor(ctx context.Context, embedding []float64, author string, topK int) ([]models.ScoredCommentary, error) {
	r.mu.Lock()
	r.authors = append(r.authors, author)
	r.topKs = append(r.topKs, topK)
	r.mu.Unlock()

	if err, ok := r.failFor[author]; ok {
		return nil, err
	}
	return r.byAuth[author], nil
}

func newTestService(passages *stubPassageRepo, commentary *stubCommentaryRepo, opts Options) (*SearchService, *stubEmbedder) {
	embedder := &stubEmbedder{embedding: []float64{0.1, 0.2, 0.3}}
	return NewSearchService(passages, commentary, embedder, opts), embedder
}

func TestSearch_EmptyQueryIsNoOp(t *testing.T) {
	passages := &stubPassageRepo{}
	commentary := &stubCommentaryRepo{}
	svc, embedder := newTestService(passages, commentary, Options{})

	resp, err := svc.Search(context.Background(), models.SearchRequest{Query: "   "})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Empty(t, resp.Passages)
	assert.Empty(t, resp.Commentary)
	assert.Equal(t, 0, embedder.calls)
}

func TestSearch_DefaultAndMaxLimit(t *testing.T) {
	passages := &stubPassageRepo{}
	svc, _ := newTestService(passages, &stubCommentaryRepo{}, Options{
		MaxResultCount:     15,
		DefaultResultCount: 4,
	})

	_, err := svc.Search(context.Background(), models.SearchRequest{Query: "love"})
	require.NoError(t, err)
	assert.Equal(t, 4, passages.gotTopK)

	_, err = svc.Search(context.Background(), models.SearchRequest{Query: "love", Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, 15, passages.gotTopK)

	_, err = svc.Search(context.Background(), models.SearchRequest{Query: "love", Limit: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, passages.gotTopK)
}

func TestSearch_TestamentFilterBooks(t *testing.T) {
	passages := &stubPassageRepo{}
	svc, _ := newTestService(passages, &stubCommentaryRepo{}, Options{})

	_, err := svc.Search(context.Background(), models.SearchRequest{Query: "creation", Testament: models.TestamentOld})
	require.NoError(t, err)
	require.Len(t, passages.gotBooks, 39)
	assert.Contains(t, passages.gotBooks, "GEN")
	assert.NotContains(t, passages.gotBooks, "MAT")

	_, err = svc.Search(context.Background(), models.SearchRequest{Query: "creation", Testament: models.TestamentNew})
	require.NoError(t, err)
	require.Len(t, passages.gotBooks, 27)
	assert.Contains(t, passages.gotBooks, "REV")

	_, err = svc.Search(context.Background(), models.SearchRequest{Query: "creation", Testament: models.TestamentBoth})
	require.NoError(t, err)
	assert.Nil(t, passages.gotBooks)
}

func TestSearch_PassageErrorIsFatal(t *testing.T) {
	passages := &stubPassageRepo{err: errors.New("connection refused")}
	svc, _ := newTestService(passages, &stubCommentaryRepo{}, Options{})

	resp, err := svc.Search(context.Background(), models.SearchRequest{Query: "hope"})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "passage search")
}

func TestSearch_CommentaryDisabledSkipsLookups(t *testing.T) {
	commentary := &stubCommentaryRepo{}
	svc, _ := newTestService(&stubPassageRepo{}, commentary, Options{})

	resp, err := svc.Search(context.Background(), models.SearchRequest{Query: "grace"})
	require.NoError(t, err)

	assert.Empty(t, resp.Commentary)
	assert.Empty(t, commentary.authors)
}

func TestSearch_CommentaryFanOutPerAuthor(t *testing.T) {
	long := func(s string) string {
		for len(s) < 400 {
			s += " and more exposition on the text"
		}
		return s
	}

	commentary := &stubCommentaryRepo{
		byAuth: map[string][]models.ScoredCommentary{
			"Augustine of Hippo": {{Author: "Augustine of Hippo", Text: long("On grace"), Score: 0.9}},
			"John Chrysostom":    {{Author: "John Chrysostom", Text: long("Homily"), Score: 0.95}},
		},
	}
	svc, _ := newTestService(&stubPassageRepo{}, commentary, Options{
		Authors:             []string{"Augustine of Hippo", "John Chrysostom", "Origen of Alexandria"},
		CommentaryMinScore:  0.81,
		CommentaryMinLength: 325,
	})

	resp, err := svc.Search(context.Background(), models.SearchRequest{Query: "grace", IncludeCommentary: true})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Augustine of Hippo", "John Chrysostom", "Origen of Alexandria"}, commentary.authors)

	// Every lookup asks for a single result per author
	for _, k := range commentary.topKs {
		assert.Equal(t, 1, k)
	}

	require.Len(t, resp.Commentary, 2)
	assert.Equal(t, "John Chrysostom", resp.Commentary[0].Author)
	assert.Equal(t, "Augustine of Hippo", resp.Commentary[1].Author)

	seen := make(map[string]int)
	for _, c := range resp.Commentary {
		seen[c.Author]++
		assert.LessOrEqual(t, seen[c.Author], 1)
	}
}

func TestSearch_CommentaryAuthorFailureIsIsolated(t *testing.T) {
	long := func(s string) string {
		for len(s) < 400 {
			s += " exposition"
		}
		return s
	}

	commentary := &stubCommentaryRepo{
		byAuth: map[string][]models.ScoredCommentary{
			"Basil of Caesarea": {{Author: "Basil of Caesarea", Text: long("Hexaemeron"), Score: 0.88}},
		},
		failFor: map[string]error{
			"Augustine of Hippo": errors.New("timeout"),
		},
	}
	svc, _ := newTestService(&stubPassageRepo{}, commentary, Options{
		Authors:             []string{"Augustine of Hippo", "Basil of Caesarea"},
		CommentaryMinScore:  0.81,
		CommentaryMinLength: 325,
	})

	resp, err := svc.Search(context.Background(), models.SearchRequest{Query: "creation", IncludeCommentary: true})
	require.NoError(t, err)

	require.Len(t, resp.Commentary, 1)
	assert.Equal(t, "Basil of Caesarea", resp.Commentary[0].Author)
}

func TestSearch_EmbedErrorIsFatal(t *testing.T) {
	embedder := &stubEmbedder{err: errors.New("provider down")}
	svc := NewSearchService(&stubPassageRepo{}, &stubCommentaryRepo{}, embedder, Options{})

	resp, err := svc.Search(context.Background(), models.SearchRequest{Query: "faith"})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "embed query")
}

func TestNewSearchService_DefaultAuthors(t *testing.T) {
	svc, _ := newTestService(&stubPassageRepo{}, &stubCommentaryRepo{}, Options{})
	assert.Equal(t, models.ChurchFathers, svc.opts.Authors)
	assert.Equal(t, 15, svc.opts.MaxResultCount)
	assert.Equal(t, 4, svc.opts.DefaultResultCount)
}

package services

import (
	"sort"

	"github.com/biblos-search-api/internal/models"
)

// RankCommentary orders commentary results by descending score and drops
// entries below the relevance or length cutoffs. The sort is stable so ties
// keep their retrieval order. Short or weakly similar fragments are not
// useful standalone context, which is why both gates apply together.
func RankCommentary(results []models.ScoredCommentary, minScore float64, minLength int) []models.ScoredCommentary {
	ranked := make([]models.ScoredCommentary, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	kept := make([]models.ScoredCommentary, 0, len(ranked))
	for _, r := range ranked {
		if r.Score >= minScore && len(r.Text) >= minLength {
			kept = append(kept, r)
		}
	}
	return kept
}

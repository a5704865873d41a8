package services

import (
	"fmt"
	"strings"

	"github.com/biblos-search-api/internal/models"
)

// FormatPassages renders scripture results as source-attributed text blocks
// suitable for display or for inclusion in an LLM prompt
func FormatPassages(passages []models.ScoredPassage) []string {
	blocks := make([]string, len(passages))
	for i, p := range passages {
		blocks[i] = fmt.Sprintf("Source: %s %d\nContent: %s", p.BookName, p.Chapter, p.Text)
	}
	return blocks
}

// FormatCommentary renders commentary results as source-attributed text blocks.
// Missing optional metadata is simply omitted from the attribution.
func FormatCommentary(results []models.ScoredCommentary) []string {
	blocks := make([]string, len(results))
	for i, r := range results {
		attribution := r.Author
		if r.SourceTitle != "" {
			attribution += " - " + r.SourceTitle
		}
		blocks[i] = fmt.Sprintf("Source: %s\nContent: %s", attribution, r.Text)
	}
	return blocks
}

// ParseBlock splits an attributed text block back into its source and content
// parts. It reports false for anything that is not a well-formed block.
func ParseBlock(block string) (source, content string, ok bool) {
	rest, found := strings.CutPrefix(block, "Source: ")
	if !found {
		return "", "", false
	}
	source, content, found = strings.Cut(rest, "\nContent: ")
	if !found {
		return "", "", false
	}
	return source, content, true
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblos-search-api/internal/models"
)

func TestFormatPassages(t *testing.T) {
	passages := []models.ScoredPassage{
		{Book: "JHN", BookName: "John", Chapter: 3, Text: "16 For God so loved the world"},
	}

	blocks := FormatPassages(passages)
	require.Len(t, blocks, 1)
	assert.Equal(t, "Source: John 3\nContent: 16 For God so loved the world", blocks[0])
}

func TestFormatCommentary_WithSourceTitle(t *testing.T) {
	results := []models.ScoredCommentary{
		{Author: "Augustine of Hippo", SourceTitle: "Confessions", Text: "Late have I loved thee"},
	}

	blocks := FormatCommentary(results)
	require.Len(t, blocks, 1)
	assert.Equal(t, "Source: Augustine of Hippo - Confessions\nContent: Late have I loved thee", blocks[0])
}

func TestFormatCommentary_MissingSourceTitle(t *testing.T) {
	results := []models.ScoredCommentary{
		{Author: "John Chrysostom", Text: "Homily on the Gospel"},
	}

	blocks := FormatCommentary(results)
	require.Len(t, blocks, 1)
	assert.Equal(t, "Source: John Chrysostom\nContent: Homily on the Gospel", blocks[0])
}

func TestParseBlock_RoundTrip(t *testing.T) {
	passages := []models.ScoredPassage{
		{BookName: "Genesis", Chapter: 1, Text: "1 In the beginning God created"},
	}

	source, content, ok := ParseBlock(FormatPassages(passages)[0])
	require.True(t, ok)
	assert.Equal(t, "Genesis 1", source)
	assert.Equal(t, "1 In the beginning God created", content)
}

func TestParseBlock_Malformed(t *testing.T) {
	_, _, ok := ParseBlock("no prefix here")
	assert.False(t, ok)

	_, _, ok = ParseBlock("Source: John 3 but no content separator")
	assert.False(t, ok)
}

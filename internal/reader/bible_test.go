package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="utf-8"?>
<verseFile>
  <v b="GEN" c="1" v="2">And the earth was formless and empty.</v>
  <v b="GEN" c="1" v="1">In the beginning, God created the heavens and the earth.</v>
  <v b="GEN" c="2" v="1">The heavens, the earth, and all their vast array were finished.</v>
  <v b="JHN" c="3" v="16">For God so loved the world.</v>
</verseFile>`

func TestParse(t *testing.T) {
	bible, err := Parse([]byte(sampleXML))
	require.NoError(t, err)

	assert.True(t, bible.HasBook("GEN"))
	assert.True(t, bible.HasBook("JHN"))
	assert.False(t, bible.HasBook("EXO"))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("not xml at all <"))
	assert.Error(t, err)
}

func TestChapterText_OrdersVerses(t *testing.T) {
	bible, err := Parse([]byte(sampleXML))
	require.NoError(t, err)

	text, ok := bible.ChapterText("GEN", 1)
	require.True(t, ok)
	assert.Equal(t,
		"1 In the beginning, God created the heavens and the earth.\n2 And the earth was formless and empty.",
		text)
}

func TestChapterText_MissingChapter(t *testing.T) {
	bible, err := Parse([]byte(sampleXML))
	require.NoError(t, err)

	_, ok := bible.ChapterText("GEN", 50)
	assert.False(t, ok)

	_, ok = bible.ChapterText("EXO", 1)
	assert.False(t, ok)
}

func TestChapterVerses(t *testing.T) {
	bible, err := Parse([]byte(sampleXML))
	require.NoError(t, err)

	verses := bible.ChapterVerses("GEN", 1)
	require.Len(t, verses, 2)
	assert.Equal(t, 1, verses[0].Verse)
	assert.Equal(t, 2, verses[1].Verse)
}

func TestChapterCount(t *testing.T) {
	bible, err := Parse([]byte(sampleXML))
	require.NoError(t, err)

	assert.Equal(t, 2, bible.ChapterCount("GEN"))
	assert.Equal(t, 3, bible.ChapterCount("JHN"))
	assert.Equal(t, 0, bible.ChapterCount("EXO"))
}

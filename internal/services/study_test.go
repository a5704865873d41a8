package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblos-search-api/internal/greek"
	"github.com/biblos-search-api/internal/models"
	"github.com/biblos-search-api/internal/reader"
)

const testBibleXML = `<?xml version="1.0" encoding="utf-8"?>
<verseFile>
  <v b="GEN" c="1" v="1">In the beginning, God created the heavens and the earth.</v>
  <v b="MAT" c="1" v="1">The book of the genealogy of Jesus Christ.</v>
</verseFile>`

const testLexiconXML = `<?xml version="1.0" encoding="utf-8"?>
<TEI>
  <entry n="1">
    <form><orth>βίβλος</orth></form>
    <def role="full">a written book, roll, or volume.</def>
  </entry>
</TEI>`

func newTestStudyService(t *testing.T) *StudyService {
	t.Helper()

	bible, err := reader.Parse([]byte(testBibleXML))
	require.NoError(t, err)

	lexicon, err := greek.ParseLexicon([]byte(testLexiconXML))
	require.NoError(t, err)

	dir := t.TempDir()
	err = os.WriteFile(filepath.Join(dir, "61-Mt.txt"),
		[]byte("Matt 1:1\tβίβλος γενέσεως Ἰησοῦ χριστοῦ\n"), 0o644)
	require.NoError(t, err)
	texts, err := greek.LoadTexts(dir)
	require.NoError(t, err)

	return NewStudyService(bible, texts, lexicon)
}

func TestBooks_FullCanon(t *testing.T) {
	svc := newTestStudyService(t)

	books := svc.Books()
	require.Len(t, books, 66)

	assert.Equal(t, "GEN", books[0].Code)
	assert.Equal(t, "Genesis", books[0].Name)
	assert.Equal(t, models.TestamentOld, books[0].Testament)
	assert.Equal(t, 1, books[0].Chapters)

	// Books absent from the loaded corpus still appear, with zero chapters
	assert.Equal(t, "EXO", books[1].Code)
	assert.Equal(t, 0, books[1].Chapters)
}

func TestBooks_NilCorpus(t *testing.T) {
	svc := NewStudyService(nil, nil, nil)

	books := svc.Books()
	require.Len(t, books, 66)
	assert.Equal(t, 0, books[0].Chapters)
}

func TestChapter(t *testing.T) {
	svc := newTestStudyService(t)

	resp, err := svc.Chapter("GEN", 1)
	require.NoError(t, err)

	assert.Equal(t, "GEN", resp.Book)
	assert.Equal(t, "Genesis", resp.BookName)
	assert.Equal(t, 1, resp.Chapter)
	assert.Equal(t, "1 In the beginning, God created the heavens and the earth.", resp.Text)
}

func TestChapter_Errors(t *testing.T) {
	svc := newTestStudyService(t)

	_, err := svc.Chapter("XYZ", 1)
	assert.ErrorIs(t, err, ErrUnknownBook)

	_, err = svc.Chapter("GEN", 99)
	assert.ErrorIs(t, err, ErrChapterNotFound)

	_, err = NewStudyService(nil, nil, nil).Chapter("GEN", 1)
	assert.ErrorIs(t, err, ErrCorpusUnavailable)
}

func TestGreekChapter(t *testing.T) {
	svc := newTestStudyService(t)

	resp, err := svc.GreekChapter("MAT", 1)
	require.NoError(t, err)

	assert.Equal(t, "MAT", resp.Book)
	assert.Equal(t, "Matthew", resp.BookName)
	assert.Contains(t, resp.Text, "βίβλος")
	require.NotEmpty(t, resp.Definitions)
	assert.Equal(t, "βίβλος", resp.Definitions[0].Word)
	assert.Contains(t, resp.Definitions[0].Definition, "book")
}

func TestGreekChapter_Errors(t *testing.T) {
	svc := newTestStudyService(t)

	_, err := svc.GreekChapter("XYZ", 1)
	assert.ErrorIs(t, err, ErrUnknownBook)

	_, err = svc.GreekChapter("GEN", 1)
	assert.ErrorIs(t, err, ErrNotGreekBook)

	_, err = svc.GreekChapter("MAT", 99)
	assert.ErrorIs(t, err, ErrChapterNotFound)

	_, err = NewStudyService(nil, nil, nil).GreekChapter("MAT", 1)
	assert.ErrorIs(t, err, ErrCorpusUnavailable)
}

package greek

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTextFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadTexts(t *testing.T) {
	dir := t.TempDir()
	writeTextFile(t, dir, "61-Mt.txt",
		"Matt 1:1\tΒίβλος γενέσεως Ἰησοῦ χριστοῦ\nMatt 1:2\tἈβραὰμ ἐγέννησεν τὸν Ἰσαάκ\nMatt 2:1\tΤοῦ δὲ Ἰησοῦ γεννηθέντος\n")
	writeTextFile(t, dir, "64-Jn.txt",
		"John 1:1\tἘν ἀρχῇ ἦν ὁ λόγος\n")
	writeTextFile(t, dir, "README.md", "not a text file")

	texts, err := LoadTexts(dir)
	require.NoError(t, err)

	assert.Equal(t, "Βίβλος γενέσεως Ἰησοῦ χριστοῦ Ἀβραὰμ ἐγέννησεν τὸν Ἰσαάκ", texts.Chapter("Matt", 1))
	assert.Equal(t, "Τοῦ δὲ Ἰησοῦ γεννηθέντος", texts.Chapter("Matt", 2))
	assert.Equal(t, "Ἐν ἀρχῇ ἦν ὁ λόγος", texts.Chapter("John", 1))
}

func TestLoadTexts_MissingDir(t *testing.T) {
	_, err := LoadTexts(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestChapter_Missing(t *testing.T) {
	dir := t.TempDir()
	writeTextFile(t, dir, "61-Mt.txt", "Matt 1:1\tΒίβλος γενέσεως\n")

	texts, err := LoadTexts(dir)
	require.NoError(t, err)

	assert.Equal(t, "", texts.Chapter("Matt", 2))
	assert.Equal(t, "", texts.Chapter("Luke", 1))
}

func TestAddLine_MalformedLinesSkipped(t *testing.T) {
	dir := t.TempDir()
	writeTextFile(t, dir, "61-Mt.txt",
		"no tab here\nMatt\tmissing reference parts\nMatt one:1\tbad chapter\nMatt 1:1\tΒίβλος\n")

	texts, err := LoadTexts(dir)
	require.NoError(t, err)

	assert.Equal(t, "Βίβλος", texts.Chapter("Matt", 1))
}

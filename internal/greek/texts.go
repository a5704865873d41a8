package greek

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Texts holds the SBL Greek New Testament, one plain-text file per book with
// lines of the form "Matt 1:1\t<greek text>"
type Texts struct {
	chapters map[string]map[int][]string
}

// LoadTexts reads every .txt file in the SBLGNT directory
func LoadTexts(dir string) (*Texts, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read greek texts dir: %w", err)
	}

	t := &Texts{chapters: make(map[string]map[int][]string)}
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".txt") {
			continue
		}
		if err := t.loadFile(filepath.Join(dir, f.Name())); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Texts) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open greek text: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		t.addLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan greek text %s: %w", path, err)
	}
	return nil
}

// addLine parses one "Book chapter:verse\ttext" line; malformed lines are skipped
func (t *Texts) addLine(line string) {
	ref, text, ok := strings.Cut(line, "\t")
	if !ok {
		return
	}

	book, chapterVerse, ok := strings.Cut(strings.TrimSpace(ref), " ")
	if !ok {
		return
	}
	chapterStr, _, ok := strings.Cut(chapterVerse, ":")
	if !ok {
		return
	}
	chapter, err := strconv.Atoi(chapterStr)
	if err != nil {
		return
	}

	if t.chapters[book] == nil {
		t.chapters[book] = make(map[int][]string)
	}
	t.chapters[book][chapter] = append(t.chapters[book][chapter], strings.TrimSpace(text))
}

// Chapter returns the joined Greek text of a chapter, keyed by the SBLGNT
// book code (e.g. "Matt"), or "" when absent
func (t *Texts) Chapter(bookCode string, chapter int) string {
	return strings.Join(t.chapters[bookCode][chapter], " ")
}

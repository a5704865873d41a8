// Package reader loads the scripture XML corpus for reader-mode chapter access.
package reader

import (
	"encoding/xml"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Verse is one verse-per-line element from the scripture XML file
type Verse struct {
	Book    string `xml:"b,attr"`
	Chapter int    `xml:"c,attr"`
	Verse   int    `xml:"v,attr"`
	Text    string `xml:",chardata"`
}

type document struct {
	Verses []Verse `xml:"v"`
}

// Bible holds the full corpus keyed by book and chapter. Built once at load
// time and never mutated.
type Bible struct {
	chapters map[string]map[int][]Verse
}

// Load parses a verse-per-line scripture XML file
func Load(path string) (*Bible, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bible xml: %w", err)
	}
	return Parse(data)
}

// Parse builds a Bible from verse-per-line XML bytes
func Parse(data []byte) (*Bible, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse bible xml: %w", err)
	}

	chapters := make(map[string]map[int][]Verse)
	for _, v := range doc.Verses {
		if chapters[v.Book] == nil {
			chapters[v.Book] = make(map[int][]Verse)
		}
		chapters[v.Book][v.Chapter] = append(chapters[v.Book][v.Chapter], v)
	}

	for _, book := range chapters {
		for _, verses := range book {
			sort.SliceStable(verses, func(i, j int) bool {
				return verses[i].Verse < verses[j].Verse
			})
		}
	}

	return &Bible{chapters: chapters}, nil
}

// ChapterText returns the full chapter as numbered verse lines
func (b *Bible) ChapterText(book string, chapter int) (string, bool) {
	verses, ok := b.chapters[book][chapter]
	if !ok || len(verses) == 0 {
		return "", false
	}

	var sb strings.Builder
	for _, v := range verses {
		fmt.Fprintf(&sb, "%d %s\n", v.Verse, strings.TrimSpace(v.Text))
	}
	return strings.TrimSpace(sb.String()), true
}

// ChapterVerses returns the ordered verses of one chapter
func (b *Bible) ChapterVerses(book string, chapter int) []Verse {
	return b.chapters[book][chapter]
}

// ChapterCount returns the number of chapters known for a book, zero when the
// book is absent from the corpus
func (b *Bible) ChapterCount(book string) int {
	max := 0
	for c := range b.chapters[book] {
		if c > max {
			max = c
		}
	}
	return max
}

// HasBook reports whether the corpus contains any verses for the book
func (b *Bible) HasBook(book string) bool {
	return len(b.chapters[book]) > 0
}

// Package greek provides the SBL Greek New Testament texts and the Dodson
// Greek lexicon for the study endpoints.
package greek

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// lexiconEntry is one TEI <entry> with its headword and role-keyed definitions
type lexiconEntry struct {
	ID          string
	Orth        string
	Definitions map[string]string
}

// Lexicon is the parsed Dodson lexicon. Entries keep file order so prefix
// lookups are deterministic.
type Lexicon struct {
	entries []lexiconEntry
}

type teiEntry struct {
	N    string `xml:"n,attr"`
	Orth string `xml:"orth"`
	Defs []struct {
		Role string `xml:"role,attr"`
		Text string `xml:",chardata"`
	} `xml:"def"`
}

// LoadLexicon parses a Dodson TEI lexicon XML file
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon xml: %w", err)
	}
	return ParseLexicon(data)
}

// ParseLexicon builds a Lexicon from TEI XML bytes
func ParseLexicon(data []byte) (*Lexicon, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var entries []lexiconEntry
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse lexicon xml: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "entry" {
			continue
		}

		var e teiEntry
		if err := dec.DecodeElement(&e, &start); err != nil {
			return nil, fmt.Errorf("decode lexicon entry: %w", err)
		}

		defs := make(map[string]string, len(e.Defs))
		for _, d := range e.Defs {
			defs[d.Role] = strings.TrimSpace(d.Text)
		}
		entries = append(entries, lexiconEntry{
			ID:          e.N,
			Orth:        strings.TrimSpace(e.Orth),
			Definitions: defs,
		})
	}

	return &Lexicon{entries: entries}, nil
}

// Lookup returns the full definition of the first entry whose headword starts
// with the given Greek word
func (l *Lexicon) Lookup(greekWord string) (string, bool) {
	if greekWord == "" {
		return "", false
	}
	for _, e := range l.entries {
		if strings.HasPrefix(e.Orth, greekWord) {
			def, ok := e.Definitions["full"]
			return def, ok && def != ""
		}
	}
	return "", false
}

// greekWordRe matches runs of Greek and polytonic Greek letters
var greekWordRe = regexp.MustCompile(`[\x{0370}-\x{03FF}\x{1F00}-\x{1FFF}]+`)

// ExtractGreekWords pulls the Greek words out of a text block
func ExtractGreekWords(text string) []string {
	return greekWordRe.FindAllString(text, -1)
}

// Package ingest holds the shared pieces of the offline corpus build jobs.
package ingest

import "strings"

// Splitter breaks text into chunks of at most ChunkSize characters, cutting
// on Separator boundaries and carrying ChunkOverlap trailing characters into
// the next chunk
type Splitter struct {
	Separator    string
	ChunkSize    int
	ChunkOverlap int
}

// Split chunks the text. Segments longer than ChunkSize become chunks of
// their own rather than being cut mid-segment.
func (s Splitter) Split(text string) []string {
	sep := s.Separator
	if sep == "" {
		sep = "\n"
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if s.ChunkSize <= 0 || len(text) <= s.ChunkSize {
		return []string{text}
	}

	var (
		chunks  []string
		current []string
		length  int
		fresh   bool // whether current holds anything beyond carried overlap
	)

	flush := func() {
		if len(current) == 0 {
			return
		}
		chunks = append(chunks, strings.Join(current, sep))

		// Keep a tail of segments as overlap for the next chunk
		var (
			tail    []string
			tailLen int
		)
		for i := len(current) - 1; i >= 0; i-- {
			segLen := len(current[i])
			if len(tail) > 0 {
				segLen += len(sep)
			}
			if tailLen+segLen > s.ChunkOverlap {
				break
			}
			tail = append([]string{current[i]}, tail...)
			tailLen += segLen
		}
		current = tail
		length = tailLen
		fresh = false
	}

	for _, segment := range strings.Split(text, sep) {
		if segment == "" {
			continue
		}

		segLen := len(segment)
		if len(current) > 0 {
			segLen += len(sep)
		}

		if length+segLen > s.ChunkSize && len(current) > 0 {
			flush()
			segLen = len(segment)
			if len(current) > 0 {
				segLen += len(sep)
			}
		}

		current = append(current, segment)
		length += segLen
		fresh = true
	}

	if fresh && len(current) > 0 {
		chunks = append(chunks, strings.Join(current, sep))
	}

	return chunks
}

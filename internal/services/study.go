package services

import (
	"errors"
	"sort"

	"github.com/biblos-search-api/internal/greek"
	"github.com/biblos-search-api/internal/models"
	"github.com/biblos-search-api/internal/reader"
)

// Study lookup failures, mapped to HTTP statuses by the handlers
var (
	ErrUnknownBook       = errors.New("unknown book code")
	ErrChapterNotFound   = errors.New("chapter not found")
	ErrNotGreekBook      = errors.New("book is not part of the Greek New Testament")
	ErrCorpusUnavailable = errors.New("study corpus not loaded")
)

// StudyService serves the reader and Greek study surfaces from corpora loaded
// once at startup
type StudyService struct {
	bible   *reader.Bible
	texts   *greek.Texts
	lexicon *greek.Lexicon
}

// NewStudyService creates a new study service
func NewStudyService(bible *reader.Bible, texts *greek.Texts, lexicon *greek.Lexicon) *StudyService {
	return &StudyService{
		bible:   bible,
		texts:   texts,
		lexicon: lexicon,
	}
}

// Books lists the canon with chapter counts from the loaded corpus
func (s *StudyService) Books() []models.BookInfo {
	codes := models.AllBooks()
	books := make([]models.BookInfo, 0, len(codes))
	for _, code := range codes {
		testament, _ := models.BookTestament(code)
		info := models.BookInfo{
			Code:      code,
			Name:      models.BookName(code),
			Testament: testament,
		}
		if s.bible != nil {
			info.Chapters = s.bible.ChapterCount(code)
		}
		books = append(books, info)
	}
	return books
}

// Chapter returns the full text of one chapter
func (s *StudyService) Chapter(book string, chapter int) (*models.ChapterResponse, error) {
	if s.bible == nil {
		return nil, ErrCorpusUnavailable
	}
	if !models.KnownBook(book) {
		return nil, ErrUnknownBook
	}

	text, ok := s.bible.ChapterText(book, chapter)
	if !ok {
		return nil, ErrChapterNotFound
	}

	return &models.ChapterResponse{
		Book:     book,
		BookName: models.BookName(book),
		Chapter:  chapter,
		Text:     text,
	}, nil
}

// GreekChapter returns the SBLGNT text of one chapter together with the
// Dodson lexicon definitions of the Greek words found in it
func (s *StudyService) GreekChapter(book string, chapter int) (*models.GreekChapterResponse, error) {
	if s.texts == nil || s.lexicon == nil {
		return nil, ErrCorpusUnavailable
	}
	if !models.KnownBook(book) {
		return nil, ErrUnknownBook
	}

	greekCode := models.GreekBookCode(book)
	if greekCode == "" {
		return nil, ErrNotGreekBook
	}

	text := s.texts.Chapter(greekCode, chapter)
	if text == "" {
		return nil, ErrChapterNotFound
	}

	seen := make(map[string]bool)
	var definitions []models.LexiconEntry
	for _, word := range greek.ExtractGreekWords(text) {
		if seen[word] {
			continue
		}
		seen[word] = true
		if def, ok := s.lexicon.Lookup(word); ok {
			definitions = append(definitions, models.LexiconEntry{Word: word, Definition: def})
		}
	}
	sort.Slice(definitions, func(i, j int) bool {
		return definitions[i].Word < definitions[j].Word
	})
	if definitions == nil {
		definitions = []models.LexiconEntry{}
	}

	return &models.GreekChapterResponse{
		Book:        book,
		BookName:    models.BookName(book),
		Chapter:     chapter,
		Text:        text,
		Definitions: definitions,
	}, nil
}

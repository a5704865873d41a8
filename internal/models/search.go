package models

// ScoredPassage represents a scripture chunk with similarity score
type ScoredPassage struct {
	Book      string    `json:"book"`
	BookName  string    `json:"book_name"`
	Chapter   int       `json:"chapter"`
	VerseNums string    `json:"verse_nums,omitempty"`
	Testament Testament `json:"testament"`
	Text      string    `json:"text"`
	Score     float64   `json:"score"`
}

// ScoredCommentary represents a patristic commentary chunk with similarity score
type ScoredCommentary struct {
	Author      string  `json:"author"`
	SourceTitle string  `json:"source_title,omitempty"`
	Book        string  `json:"book,omitempty"`
	AuthorNote  string  `json:"author_note,omitempty"`
	Text        string  `json:"text"`
	Score       float64 `json:"score"`
}

// SearchRequest is the request for semantic search
type SearchRequest struct {
	Query             string    `json:"query"`
	Testament         Testament `json:"testament"`
	Limit             int       `json:"limit"`
	IncludeCommentary bool      `json:"include_commentary"`
}

// SearchResponse is the response for semantic search
type SearchResponse struct {
	Query      string             `json:"query"`
	Passages   []ScoredPassage    `json:"passages"`
	Commentary []ScoredCommentary `json:"commentary"`
}

// SummaryResponse is the response for search summarization
type SummaryResponse struct {
	Query             string `json:"query"`
	PassageSummary    string `json:"passage_summary,omitempty"`
	CommentarySummary string `json:"commentary_summary,omitempty"`
	LLMEnabled        bool   `json:"llm_enabled"`
	LLMError          string `json:"llm_error,omitempty"`
}

// BookInfo describes one canonical book
type BookInfo struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Testament Testament `json:"testament"`
	Chapters  int       `json:"chapters,omitempty"`
}

// ChapterResponse is the response for the chapter reader
type ChapterResponse struct {
	Book     string `json:"book"`
	BookName string `json:"book_name"`
	Chapter  int    `json:"chapter"`
	Text     string `json:"text"`
}

// LexiconEntry pairs a Greek word with its lexicon definition
type LexiconEntry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// GreekChapterResponse is the response for the Greek study endpoint
type GreekChapterResponse struct {
	Book        string         `json:"book"`
	BookName    string         `json:"book_name"`
	Chapter     int            `json:"chapter"`
	Text        string         `json:"text"`
	Definitions []LexiconEntry `json:"definitions"`
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblos-search-api/internal/models"
	"github.com/biblos-search-api/internal/reader"
	"github.com/biblos-search-api/internal/services"
)

const testBibleXML = `<?xml version="1.0" encoding="utf-8"?>
<verseFile>
  <v b="GEN" c="1" v="1">In the beginning, God created the heavens and the earth.</v>
</verseFile>`

func newStudyEcho(t *testing.T) *echo.Echo {
	t.Helper()

	bible, err := reader.Parse([]byte(testBibleXML))
	require.NoError(t, err)

	e := echo.New()
	handler := NewStudyHandler(services.NewStudyService(bible, nil, nil))
	handler.RegisterRoutes(e.Group(""))
	return e
}

func TestBooksEndpoint(t *testing.T) {
	e := newStudyEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var books []models.BookInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &books))
	require.Len(t, books, 66)
	assert.Equal(t, "GEN", books[0].Code)
	assert.Equal(t, 1, books[0].Chapters)
}

func TestChapterEndpoint(t *testing.T) {
	e := newStudyEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/chapters/GEN/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ChapterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Genesis", resp.BookName)
	assert.Contains(t, resp.Text, "In the beginning")
}

func TestChapterEndpoint_Errors(t *testing.T) {
	e := newStudyEcho(t)

	tests := []struct {
		path string
		code int
	}{
		{"/chapters/XYZ/1", http.StatusNotFound},
		{"/chapters/GEN/99", http.StatusNotFound},
		{"/chapters/GEN/0", http.StatusBadRequest},
		{"/chapters/GEN/one", http.StatusBadRequest},
		{"/greek/GEN/1", http.StatusServiceUnavailable}, // Greek corpus not loaded
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, tt.code, rec.Code, tt.path)
	}
}

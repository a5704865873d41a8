package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/biblos-search-api/internal/services"
)

// StudyHandler handles the reader and Greek study endpoints
type StudyHandler struct {
	study *services.StudyService
}

// NewStudyHandler creates a new study handler
func NewStudyHandler(study *services.StudyService) *StudyHandler {
	return &StudyHandler{study: study}
}

// Books handles GET /books - the canon with chapter counts
func (h *StudyHandler) Books(c echo.Context) error {
	return c.JSON(http.StatusOK, h.study.Books())
}

// Chapter handles GET /chapters/:book/:chapter - full chapter text
func (h *StudyHandler) Chapter(c echo.Context) error {
	book, chapter, err := chapterParams(c)
	if err != nil {
		return err
	}

	resp, err := h.study.Chapter(book, chapter)
	if err != nil {
		return studyError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GreekChapter handles GET /greek/:book/:chapter - SBLGNT text with lexicon definitions
func (h *StudyHandler) GreekChapter(c echo.Context) error {
	book, chapter, err := chapterParams(c)
	if err != nil {
		return err
	}

	resp, err := h.study.GreekChapter(book, chapter)
	if err != nil {
		return studyError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// RegisterRoutes registers study routes
func (h *StudyHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/books", h.Books)
	g.GET("/chapters/:book/:chapter", h.Chapter)
	g.GET("/greek/:book/:chapter", h.GreekChapter)
}

func chapterParams(c echo.Context) (string, int, error) {
	book := c.Param("book")
	chapter, err := strconv.Atoi(c.Param("chapter"))
	if err != nil || chapter < 1 {
		return "", 0, echo.NewHTTPError(http.StatusBadRequest, "Chapter must be a positive integer")
	}
	return book, chapter, nil
}

func studyError(err error) error {
	switch {
	case errors.Is(err, services.ErrUnknownBook),
		errors.Is(err, services.ErrChapterNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNotGreekBook):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrCorpusUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/biblos-search-api/internal/models"
	"github.com/biblos-search-api/internal/services"
)

// SearchHandler handles search and summarization endpoints
type SearchHandler struct {
	search  *services.SearchService
	summary *services.SummaryService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(search *services.SearchService, summary *services.SummaryService) *SearchHandler {
	return &SearchHandler{
		search:  search,
		summary: summary,
	}
}

// Search handles POST /search - semantic passage and commentary search
func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := bindSearchRequest(c)
	if err != nil {
		return err
	}

	resp, err := h.search.Search(ctx, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Search failed: "+err.Error())
	}

	return c.JSON(http.StatusOK, resp)
}

// Summary handles POST /search/summary - search plus LLM summarization
func (h *SearchHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := bindSearchRequest(c)
	if err != nil {
		return err
	}

	results, err := h.search.Search(ctx, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Search failed: "+err.Error())
	}

	return c.JSON(http.StatusOK, h.summary.SummarizeSearch(ctx, results))
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/search", h.Search)
	g.POST("/search/summary", h.Summary)
}

func bindSearchRequest(c echo.Context) (models.SearchRequest, error) {
	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	req.Testament = parseTestament(string(req.Testament))
	return req, nil
}

// parseTestament normalizes the testament filter; anything unrecognized means
// no filter
func parseTestament(value string) models.Testament {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "OT":
		return models.TestamentOld
	case "NT":
		return models.TestamentNew
	default:
		return models.TestamentBoth
	}
}

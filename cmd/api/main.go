package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/biblos-search-api/internal/config"
	"github.com/biblos-search-api/internal/greek"
	"github.com/biblos-search-api/internal/handlers"
	"github.com/biblos-search-api/internal/llm/anthropic"
	"github.com/biblos-search-api/internal/middleware"
	"github.com/biblos-search-api/internal/reader"
	"github.com/biblos-search-api/internal/repository"
	"github.com/biblos-search-api/internal/repository/postgres"
	"github.com/biblos-search-api/internal/repository/vertex"
	"github.com/biblos-search-api/internal/services"
	"github.com/biblos-search-api/pkg/schema/db"
	pkgservices "github.com/biblos-search-api/pkg/schema/services"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	// Get configuration
	cfg := config.GetConfig()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSMiddleware())

	// Initialize PostgreSQL
	ctx := context.Background()
	if err := db.InitPostgres(ctx); err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	log.Println("Database initialization complete")

	pgDB := db.GetPostgres()
	commentaryRepo := postgres.NewCommentarySearchRepository(pgDB)

	// Create passage search repository based on configuration
	var passageRepo repository.PassageSearchRepository
	var vertexRepo *vertex.PassageSearchRepository // For cleanup

	switch cfg.VectorBackend {
	case "vertex":
		log.Println("Using Vertex AI Vector Search backend for passages")
		vertexCfg := vertex.Config{
			ProjectID:            cfg.VertexProjectID,
			Location:             cfg.VertexLocation,
			IndexEndpointID:      cfg.VertexIndexEndpointID,
			DeployedIndexID:      cfg.VertexDeployedIndexID,
			PublicEndpointDomain: cfg.VertexPublicEndpointDomain,
		}
		var err error
		vertexRepo, err = vertex.NewPassageSearchRepository(ctx, vertexCfg, pgDB)
		if err != nil {
			log.Fatalf("Failed to create Vertex AI passage repository: %v", err)
		}
		passageRepo = vertexRepo
	default:
		log.Println("Using pgvector backend (unindexed)")
		passageRepo = postgres.NewPassageSearchRepository(pgDB)
	}

	// Create services
	embeddingsSvc := pkgservices.GetEmbeddingsService()
	if err := pkgservices.GetInitError(); err != nil {
		log.Fatalf("Failed to initialize embeddings service: %v", err)
	}

	searchSvc := services.NewSearchService(passageRepo, commentaryRepo, embeddingsSvc, services.Options{
		Authors:             cfg.CommentaryAuthors,
		MaxResultCount:      cfg.MaxResultCount,
		DefaultResultCount:  cfg.DefaultResultCount,
		CommentaryMinScore:  cfg.CommentaryMinScore,
		CommentaryMinLength: cfg.CommentaryMinLength,
	})

	llmClient := anthropic.NewClient(anthropic.Config{
		APIKey:    cfg.AnthropicAPIKey,
		BaseURL:   cfg.AnthropicBaseURL,
		Model:     cfg.AnthropicModel,
		MaxTokens: cfg.SummaryMaxTokens,
	})
	if !llmClient.Configured() {
		log.Println("No API token found, so LLM support is disabled")
	}
	summarySvc := services.NewSummaryService(llmClient)

	studySvc := services.NewStudyService(loadStudyCorpora(cfg))

	// Create API group with prefix
	api := e.Group(cfg.APIPrefix)

	// Register handlers
	healthHandler := handlers.NewHealthHandler()
	healthHandler.RegisterRoutes(api)

	searchHandler := handlers.NewSearchHandler(searchSvc, summarySvc)
	searchHandler.RegisterRoutes(api)

	studyHandler := handlers.NewStudyHandler(studySvc)
	studyHandler.RegisterRoutes(api)

	// Root health check
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"name":    cfg.APITitle,
			"version": cfg.APIVersion,
			"status":  "running",
		})
	})

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Starting %s v%s on %s", cfg.APITitle, cfg.APIVersion, addr)
		if err := e.Start(addr); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if err := db.ClosePostgres(); err != nil {
		log.Printf("Error closing PostgreSQL: %v", err)
	}

	// Close Vertex AI client if used
	if vertexRepo != nil {
		if err := vertexRepo.Close(); err != nil {
			log.Printf("Error closing Vertex AI client: %v", err)
		}
	}

	log.Println("Server stopped")
}

// loadStudyCorpora loads the reader and Greek corpora. Each is optional: a
// missing file disables its endpoints without taking search down.
func loadStudyCorpora(cfg *config.Config) (*reader.Bible, *greek.Texts, *greek.Lexicon) {
	bible, err := reader.Load(cfg.BibleXMLPath)
	if err != nil {
		log.Printf("Reader corpus unavailable: %v", err)
	}

	texts, err := greek.LoadTexts(cfg.GreekTextsDir)
	if err != nil {
		log.Printf("Greek texts unavailable: %v", err)
	}

	lexicon, err := greek.LoadLexicon(cfg.LexiconXMLPath)
	if err != nil {
		log.Printf("Greek lexicon unavailable: %v", err)
	}

	return bible, texts, lexicon
}

package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/biblos-search-api/internal/models"
)

// Config holds all application configuration
type Config struct {
	// API Settings
	APITitle   string
	APIVersion string
	APIPrefix  string
	Port       string

	// CORS
	CORSOrigins []string

	// Vector Search Backend: "pgvector" or "vertex"
	VectorBackend string

	// Vertex AI Vector Search settings (used when VectorBackend = "vertex")
	VertexProjectID            string
	VertexLocation             string
	VertexIndexEndpointID      string
	VertexDeployedIndexID      string
	VertexPublicEndpointDomain string

	// Search behavior
	MaxResultCount     int
	DefaultResultCount int

	// Commentary quality gate: entries below either cutoff are dropped
	CommentaryMinScore  float64
	CommentaryMinLength int

	// Commentary authors queried per search (one lookup each, k=1)
	CommentaryAuthors []string

	// Anthropic summarization
	AnthropicAPIKey  string
	AnthropicBaseURL string
	AnthropicModel   string
	SummaryMaxTokens int

	// Study corpus files
	BibleXMLPath   string
	LexiconXMLPath string
	GreekTextsDir  string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance
func GetConfig() *Config {
	once.Do(func() {
		config = loadConfig()
	})
	return config
}

func loadConfig() *Config {
	return &Config{
		APITitle:    getEnv("API_TITLE", "Biblos Search API"),
		APIVersion:  getEnv("API_VERSION", "1.0.0"),
		APIPrefix:   getEnv("API_PREFIX", "/api/v1"),
		Port:        getEnv("PORT", "8081"),
		CORSOrigins: parseCORSOrigins(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),

		// Vector search backend configuration
		VectorBackend: getEnv("VECTOR_BACKEND", "pgvector"), // "pgvector" or "vertex"

		// Vertex AI settings
		VertexProjectID:            getEnv("VERTEX_PROJECT_ID", ""),
		VertexLocation:             getEnv("VERTEX_LOCATION", "us-central1"),
		VertexIndexEndpointID:      getEnv("VERTEX_INDEX_ENDPOINT_ID", ""),
		VertexDeployedIndexID:      getEnv("VERTEX_DEPLOYED_INDEX_ID", ""),
		VertexPublicEndpointDomain: getEnv("VERTEX_PUBLIC_ENDPOINT_DOMAIN", ""),

		// Search behavior
		MaxResultCount:     getEnvInt("MAX_RESULT_COUNT", 15),
		DefaultResultCount: getEnvInt("DEFAULT_RESULT_COUNT", 4),

		// Commentary quality gate
		CommentaryMinScore:  getEnvFloat("COMMENTARY_MIN_SCORE", 0.81),
		CommentaryMinLength: getEnvInt("COMMENTARY_MIN_LENGTH", 325),

		CommentaryAuthors: parseList(getEnv("COMMENTARY_AUTHORS", ""), models.ChurchFathers),

		// Summarization
		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicBaseURL: getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
		AnthropicModel:   getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-20240620"),
		SummaryMaxTokens: getEnvInt("SUMMARY_MAX_TOKENS", 256),

		// Study corpus files
		BibleXMLPath:   getEnv("BIBLE_XML_PATH", "./data/engwebp_vpl.xml"),
		LexiconXMLPath: getEnv("LEXICON_XML_PATH", "./data/dodson.xml"),
		GreekTextsDir:  getEnv("GREEK_TEXTS_DIR", "./data/sblgnt"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return i
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return defaultValue
		}
		return f
	}
	return defaultValue
}

func parseCORSOrigins(value string) []string {
	var origins []string
	if err := json.Unmarshal([]byte(value), &origins); err == nil {
		return origins
	}
	parts := strings.Split(value, ",")
	origins = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func parseList(value string, defaultValue []string) []string {
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

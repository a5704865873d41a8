// ingest/commentary
//
// This script reads patristic commentary entries from a SQLite dump, keeps
// entries from the configured authors that meet the minimum length and carry
// a source title, chunks and embeds them, and inserts them into the
// commentary table.
//
// Environment variables:
//   POSTGRES_URI  - PostgreSQL connection string
//   plus the embedding provider variables (EMBEDDING_PROVIDER etc.)
//
// Usage:
//   go run scripts/ingest/commentary/main.go [-config ingest.yaml]

package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	_ "modernc.org/sqlite"

	"github.com/biblos-search-api/internal/ingest"
	"github.com/biblos-search-api/pkg/schema/services"
)

const insertCommentary = `
	INSERT INTO commentary (father_name, source_title, book, append_to_author_name, text, embedding)
	VALUES ($1, $2, $3, $4, $5, $6)`

type sourceEntry struct {
	FatherName         string         `db:"father_name"`
	SourceTitle        sql.NullString `db:"source_title"`
	Book               sql.NullString `db:"book"`
	AppendToAuthorName sql.NullString `db:"append_to_author_name"`
	Text               string         `db:"txt"`
}

type pendingChunk struct {
	entry sourceEntry
	text  string
}

func main() {
	configPath := flag.String("config", "ingest.yaml", "path to the ingest config file")
	flag.Parse()

	godotenv.Load()

	cfg, err := ingest.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load ingest config: %v", err)
	}

	postgresURI := os.Getenv("POSTGRES_URI")
	if postgresURI == "" {
		log.Fatal("POSTGRES_URI environment variable is required")
	}

	ctx := context.Background()

	src, err := sqlx.ConnectContext(ctx, "sqlite", cfg.Commentary.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open SQLite source %s: %v", cfg.Commentary.SQLitePath, err)
	}
	defer src.Close()

	db, err := sqlx.ConnectContext(ctx, "postgres", postgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	embeddings := services.GetEmbeddingsService()
	if err := services.GetInitError(); err != nil {
		log.Fatalf("Failed to initialize embeddings service: %v", err)
	}

	query, args, err := sqlx.In(`
		SELECT father_name, source_title, book, append_to_author_name, txt
		FROM commentary
		WHERE father_name IN (?)`, cfg.Commentary.Authors)
	if err != nil {
		log.Fatalf("Failed to build source query: %v", err)
	}

	var entries []sourceEntry
	if err := src.SelectContext(ctx, &entries, src.Rebind(query), args...); err != nil {
		log.Fatalf("Failed to read commentary source: %v", err)
	}
	log.Printf("Read %d commentary entries", len(entries))

	splitter := ingest.Splitter{
		Separator:    cfg.Commentary.Separator,
		ChunkSize:    cfg.Commentary.ChunkSize,
		ChunkOverlap: cfg.Commentary.ChunkOverlap,
	}

	var pending []pendingChunk
	skipped := 0
	for _, entry := range entries {
		text := strings.TrimSpace(entry.Text)
		if len(text) < cfg.Commentary.MinLength || strings.TrimSpace(entry.SourceTitle.String) == "" {
			skipped++
			continue
		}
		for _, chunk := range splitter.Split(text) {
			pending = append(pending, pendingChunk{entry: entry, text: chunk})
		}
	}
	log.Printf("Prepared %d chunks (%d entries skipped)", len(pending), skipped)

	inserted := 0
	for start := 0; start < len(pending); start += cfg.BatchSize {
		end := start + cfg.BatchSize
		if end > len(pending) {
			end = len(pending)
		}
		batch := pending[start:end]

		texts := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.text
		}
		vectors, err := embeddings.EmbedPassageBatch(ctx, texts)
		if err != nil {
			log.Fatalf("Failed to embed batch starting at %d: %v", start, err)
		}

		for i, c := range batch {
			vec := pgvector.NewVector(float32Slice(vectors[i]))
			_, err := db.ExecContext(ctx, insertCommentary,
				c.entry.FatherName, c.entry.SourceTitle, c.entry.Book,
				c.entry.AppendToAuthorName, c.text, vec)
			if err != nil {
				log.Fatalf("Failed to insert commentary chunk: %v", err)
			}
			inserted++
		}
		log.Printf("Inserted %d/%d chunks", inserted, len(pending))
	}

	log.Printf("Done: %d commentary chunks ingested", inserted)
}

func float32Slice(f64 []float64) []float32 {
	f32 := make([]float32, len(f64))
	for i, v := range f64 {
		f32[i] = float32(v)
	}
	return f32
}

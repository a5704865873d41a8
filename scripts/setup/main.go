// setup.go
//
// This script creates the PostgreSQL schema for the passage and commentary
// corpora: the pgvector extension, both tables and their lookup indexes.
//
// Environment variables:
//   POSTGRES_URI          - PostgreSQL connection string
//   EMBEDDING_DIMENSIONS  - Embedding vector width (default: 3072)
//
// Usage:
//   go run scripts/setup/main.go

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	godotenv.Load()

	postgresURI := os.Getenv("POSTGRES_URI")
	if postgresURI == "" {
		log.Fatal("POSTGRES_URI environment variable is required")
	}

	dimensions := 3072
	if v := os.Getenv("EMBEDDING_DIMENSIONS"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid EMBEDDING_DIMENSIONS: %v", err)
		}
		dimensions = d
	}

	ctx := context.Background()

	db, err := sqlx.ConnectContext(ctx, "postgres", postgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// The embedding columns stay unindexed: pgvector ANN index types cap out
	// below these dimensions, and the corpus is small enough for exact scans.
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS passages (
			id BIGSERIAL PRIMARY KEY,
			passage_id TEXT UNIQUE NOT NULL,
			book TEXT NOT NULL,
			chapter INTEGER NOT NULL,
			chunk_index INTEGER NOT NULL DEFAULT 0,
			verse_nums TEXT NOT NULL DEFAULT '',
			testament TEXT NOT NULL,
			text TEXT NOT NULL,
			embedding vector(%d)
		)`, dimensions),
		`CREATE INDEX IF NOT EXISTS passages_book_idx ON passages (book)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS commentary (
			id BIGSERIAL PRIMARY KEY,
			father_name TEXT NOT NULL,
			source_title TEXT,
			book TEXT,
			append_to_author_name TEXT,
			text TEXT NOT NULL,
			embedding vector(%d)
		)`, dimensions),
		`CREATE INDEX IF NOT EXISTS commentary_father_idx ON commentary (father_name)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Fatalf("Failed to execute statement: %v\n%s", err, stmt)
		}
	}

	log.Printf("Schema ready (embedding dimensions: %d)", dimensions)
}

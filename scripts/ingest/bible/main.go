// ingest/bible
//
// This script loads a verse-per-line Bible XML file, chunks each chapter,
// embeds the chunks and upserts them into the passages table.
//
// Environment variables:
//   POSTGRES_URI  - PostgreSQL connection string
//   plus the embedding provider variables (EMBEDDING_PROVIDER etc.)
//
// Usage:
//   go run scripts/ingest/bible/main.go [-config ingest.yaml]

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"

	"github.com/biblos-search-api/internal/ingest"
	"github.com/biblos-search-api/internal/models"
	"github.com/biblos-search-api/internal/reader"
	"github.com/biblos-search-api/pkg/schema/services"
)

const upsertPassage = `
	INSERT INTO passages (passage_id, book, chapter, chunk_index, verse_nums, testament, text, embedding)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (passage_id) DO UPDATE SET
		verse_nums = EXCLUDED.verse_nums,
		testament = EXCLUDED.testament,
		text = EXCLUDED.text,
		embedding = EXCLUDED.embedding`

type pendingChunk struct {
	passageID string
	book      string
	chapter   int
	index     int
	verseNums string
	testament models.Testament
	text      string
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

	db, err := sqlx.ConnectContext(ctx, "postgres", postgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	embeddings := services.GetEmbeddingsService()
	if err := services.GetInitError(); err != nil {
		log.Fatalf("Failed to initialize embeddings service: %v", err)
	}

	bible, err := reader.Load(cfg.Bible.XMLPath)
	if err != nil {
		log.Fatalf("Failed to load Bible XML from %s: %v", cfg.Bible.XMLPath, err)
	}

	splitter := ingest.Splitter{
		Separator:    cfg.Bible.Separator,
		ChunkSize:    cfg.Bible.ChunkSize,
		ChunkOverlap: cfg.Bible.ChunkOverlap,
	}

	var pending []pendingChunk
	for _, book := range models.AllBooks() {
		if !bible.HasBook(book) {
			log.Printf("Skipping %s: not present in source file", book)
			continue
		}
		testament, _ := models.BookTestament(book)

		for chapter := 1; chapter <= bible.ChapterCount(book); chapter++ {
			text, ok := bible.ChapterText(book, chapter)
			if !ok {
				continue
			}
			for i, chunk := range splitter.Split(text) {
				pending = append(pending, pendingChunk{
					passageID: book + "_" + strconv.Itoa(chapter) + "_" + strconv.Itoa(i),
					book:      book,
					chapter:   chapter,
					index:     i,
					verseNums: verseNums(chunk),
					testament: testament,
					text:      chunk,
				})
			}
		}
	}
	log.Printf("Prepared %d passage chunks", len(pending))

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
			_, err := db.ExecContext(ctx, upsertPassage,
				c.passageID, c.book, c.chapter, c.index, c.verseNums, string(c.testament), c.text, vec)
			if err != nil {
				log.Fatalf("Failed to upsert %s: %v", c.passageID, err)
			}
			inserted++
		}
		log.Printf("Upserted %d/%d passages", inserted, len(pending))
	}

	log.Printf("Done: %d passages ingested", inserted)
}

// verseNums extracts the leading verse numbers of a chunk's lines into a
// comma-separated list, e.g. "1,2,3".
func verseNums(chunk string) string {
	var nums []string
	for _, line := range strings.Split(chunk, "\n") {
		num, _, found := strings.Cut(strings.TrimSpace(line), " ")
		if !found {
			continue
		}
		if _, err := strconv.Atoi(num); err == nil {
			nums = append(nums, num)
		}
	}
	return strings.Join(nums, ",")
}

func float32Slice(f64 []float64) []float32 {
	f32 := make([]float32, len(f64))
	for i, v := range f64 {
		f32[i] = float32(v)
	}
	return f32
}

package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"

	"priorart/src/core/analysis"
	"priorart/src/log"
)

const (
	// DefaultChunkSize bounds each stored chunk in characters
	DefaultChunkSize = 500
	// DefaultChunkOverlap is the fixed overlap between adjacent chunks
	DefaultChunkOverlap = 50
)

// Patent is one source-corpus record, keyed by publication number.
type Patent struct {
	PatentID string   `json:"patent_id"`
	Title    string   `json:"title"`
	Abstract string   `json:"abstract"`
	CPCCodes []string `json:"cpc_codes"`
}

// ChunkVector is one embedded chunk ready for upsert, carrying the
// metadata the retrieval core filters and reads back.
type ChunkVector struct {
	ID       string
	Vector   []float32
	PatentID string
	CPCCodes []string
	Text     string
}

// VectorWriter is the index-side sink for ingestion
type VectorWriter interface {
	EnsureSchema(ctx context.Context) error
	UpsertChunks(ctx context.Context, chunks []ChunkVector) error
}

// Ingester chunks patent records, embeds the chunks in a batch, and
// upserts the vectors with their metadata.
type Ingester struct {
	embedder     analysis.Embedder
	writer       VectorWriter
	chunkSize    int
	chunkOverlap int
}

func NewIngester(embedder analysis.Embedder, writer VectorWriter) *Ingester {
	return &Ingester{
		embedder:     embedder,
		writer:       writer,
		chunkSize:    DefaultChunkSize,
		chunkOverlap: DefaultChunkOverlap,
	}
}

// IngestPatent processes a single patent record and returns the number of
// chunks written.
func (i *Ingester) IngestPatent(ctx context.Context, patent Patent) (int, error) {
	// Title and abstract together give a richer text to embed
	text := fmt.Sprintf("Title: %s\nAbstract: %s", patent.Title, patent.Abstract)

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(i.chunkSize),
		textsplitter.WithChunkOverlap(i.chunkOverlap),
	)

	chunks, err := splitter.SplitText(text)
	if err != nil {
		return 0, fmt.Errorf("failed to split patent %s: %w", patent.PatentID, err)
	}

	vectors, err := i.embedder.EmbedDocuments(ctx, chunks)
	if err != nil {
		return 0, fmt.Errorf("failed to embed chunks for patent %s: %w", patent.PatentID, err)
	}
	if len(vectors) != len(chunks) {
		return 0, fmt.Errorf("embedder returned %d vectors for %d chunks of patent %s",
			len(vectors), len(chunks), patent.PatentID)
	}

	chunkVectors := make([]ChunkVector, 0, len(chunks))
	for idx, chunk := range chunks {
		chunkVectors = append(chunkVectors, ChunkVector{
			ID:       fmt.Sprintf("%s-chunk-%d", patent.PatentID, idx),
			Vector:   vectors[idx],
			PatentID: patent.PatentID,
			CPCCodes: patent.CPCCodes,
			Text:     chunk,
		})
	}

	if err := i.writer.UpsertChunks(ctx, chunkVectors); err != nil {
		return 0, fmt.Errorf("failed to upsert chunks for patent %s: %w", patent.PatentID, err)
	}

	log.Debug("patent ingested", "patentId", patent.PatentID, "chunks", len(chunkVectors))

	return len(chunkVectors), nil
}

// LoadPatents decodes a JSON array of patent records and rejects entries
// missing the fields the retrieval core depends on.
func LoadPatents(r io.Reader) ([]Patent, error) {
	var patents []Patent
	if err := json.NewDecoder(r).Decode(&patents); err != nil {
		return nil, fmt.Errorf("failed to decode patent corpus: %w", err)
	}

	for idx, patent := range patents {
		if strings.TrimSpace(patent.PatentID) == "" {
			return nil, fmt.Errorf("corpus entry %d has no patent_id", idx)
		}
		if strings.TrimSpace(patent.Abstract) == "" {
			return nil, fmt.Errorf("patent %s has no abstract", patent.PatentID)
		}
	}

	return patents, nil
}

package weaviate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/filters"
	"github.com/weaviate/weaviate/entities/models"

	"priorart/src/core/analysis"
	"priorart/src/core/corpus"
)

const (
	// DefaultClassName is the Weaviate class holding patent chunks
	DefaultClassName = "PatentChunk"

	propPatentID = "patentId"
	propCPCCodes = "cpcCodes"
	propText     = "text"
)

// PatentIndex adapts the Weaviate SDK to the retrieval core's query
// contract and the ingestion boundary's writer contract. Each stored
// object is one chunk with {patentId, cpcCodes, text} metadata.
type PatentIndex struct {
	sdk       *SDK
	className string
}

func NewPatentIndex(sdk *SDK, className string) *PatentIndex {
	if className == "" {
		className = DefaultClassName
	}
	return &PatentIndex{
		sdk:       sdk,
		className: className,
	}
}

// Query runs nearest-neighbor search over patent chunks. A non-empty
// cpcCodes narrows matches to chunks whose stored code set intersects the
// given set; empty cpcCodes means pure semantic search.
func (i *PatentIndex) Query(ctx context.Context, vector []float32, cpcCodes []string, topK int) ([]analysis.IndexMatch, error) {
	config := QueryConfig{
		Fields: []string{propPatentID, propCPCCodes, propText},
		Limit:  topK,
	}

	if len(cpcCodes) > 0 {
		config.Where = filters.Where().
			WithPath([]string{propCPCCodes}).
			WithOperator(filters.ContainsAny).
			WithValueText(cpcCodes...)
	}

	results, err := i.sdk.QueryVectors(ctx, i.className, vector, config)
	if err != nil {
		return nil, fmt.Errorf("patent chunk query failed: %w", err)
	}

	matches := make([]analysis.IndexMatch, 0, len(results))
	for _, result := range results {
		matches = append(matches, analysis.IndexMatch{
			ID:       result.ID,
			Score:    result.Score,
			Metadata: result.Properties,
		})
	}

	return matches, nil
}

// EnsureSchema creates the patent chunk class if it does not exist
func (i *PatentIndex) EnsureSchema(ctx context.Context) error {
	properties := []*models.Property{
		{Name: propPatentID, DataType: []string{"text"}},
		{Name: propCPCCodes, DataType: []string{"text[]"}},
		{Name: propText, DataType: []string{"text"}},
	}

	return i.sdk.EnsureSchema(ctx, i.className, properties)
}

// UpsertChunks writes embedded chunks to the index. Chunk keys map to
// deterministic UUIDs so re-ingesting a patent replaces its chunks.
func (i *PatentIndex) UpsertChunks(ctx context.Context, chunks []corpus.ChunkVector) error {
	objects := make([]VectorObject, 0, len(chunks))
	for _, chunk := range chunks {
		objects = append(objects, VectorObject{
			ID:     uuid.NewSHA1(uuid.NameSpaceOID, []byte(chunk.ID)).String(),
			Vector: chunk.Vector,
			Properties: map[string]interface{}{
				propPatentID: chunk.PatentID,
				propCPCCodes: chunk.CPCCodes,
				propText:     chunk.Text,
			},
		})
	}

	return i.sdk.BatchUpsertVectors(ctx, i.className, objects)
}

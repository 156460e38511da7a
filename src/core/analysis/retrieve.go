package analysis

import (
	"context"

	"priorart/src/log"
)

type hybridRetriever struct {
	embedder Embedder
	index    PatentIndex
}

func NewRetriever(embedder Embedder, index PatentIndex) Retriever {
	return &hybridRetriever{
		embedder: embedder,
		index:    index,
	}
}

// Retrieve embeds the HyDE abstract and runs a filtered nearest-neighbor
// query against the patent index. Partial prior-art results are still
// useful, so provider failures degrade to an empty result set instead of
// aborting the analysis.
func (r *hybridRetriever) Retrieve(ctx context.Context, hydeAbstract string, cpcCodes []string, topK int) []RetrievedContext {
	vector, err := r.embedder.EmbedQuery(ctx, hydeAbstract)
	if err != nil {
		log.Error(err, "failed to embed query abstract, skipping retrieval")
		return []RetrievedContext{}
	}

	matches, err := r.index.Query(ctx, vector, cpcCodes, topK)
	if err != nil {
		log.Error(err, "patent index query failed, skipping retrieval", "cpcCodes", cpcCodes)
		return []RetrievedContext{}
	}

	contexts := make([]RetrievedContext, 0, len(matches))
	for _, match := range matches {
		contexts = append(contexts, RetrievedContext{
			PatentID: metadataString(match.Metadata, "patentId"),
			Text:     metadataString(match.Metadata, "text"),
			Score:    match.Score,
		})
	}

	log.Debug("retrieval complete", "cpcCodes", cpcCodes, "matches", len(contexts))

	return contexts
}

// metadataString reads a string field from match metadata, defaulting to
// empty rather than failing on missing or mistyped fields.
func metadataString(metadata map[string]interface{}, key string) string {
	if metadata == nil {
		return ""
	}
	value, ok := metadata[key].(string)
	if !ok {
		return ""
	}
	return value
}

package cmd

import (
	"github.com/spf13/viper"
	weaviateClient "github.com/weaviate/weaviate-go-client/v4/weaviate"

	"priorart/src/core/analysis"
	"priorart/src/infrastructure/integrations/groq"
	"priorart/src/infrastructure/integrations/openaiembed"
	"priorart/src/storage/weaviate"
)

// newLLMClient builds the reasoning-model client from config
func newLLMClient() (*groq.Client, error) {
	client, err := groq.NewClient(
		viper.GetString("groq.base_url"),
		viper.GetString("groq.api_key"),
		viper.GetString("groq.model"),
	)
	if err != nil {
		return nil, &analysis.ProviderInitError{Provider: "groq", Err: err}
	}
	return client, nil
}

// newEmbedder builds the embedding client from config
func newEmbedder() (*openaiembed.Embedder, error) {
	embedder, err := openaiembed.NewEmbedder(
		viper.GetString("openai.api_key"),
		viper.GetString("openai.embedding_model"),
	)
	if err != nil {
		return nil, &analysis.ProviderInitError{Provider: "openai embeddings", Err: err}
	}
	return embedder, nil
}

// newPatentIndex builds the Weaviate-backed patent index from config
func newPatentIndex() *weaviate.PatentIndex {
	wc := weaviateClient.New(weaviateClient.Config{
		Host:   viper.GetString("weaviate.host"),
		Scheme: viper.GetString("weaviate.scheme"),
	})
	return weaviate.NewPatentIndex(weaviate.NewSDK(wc), viper.GetString("weaviate.class"))
}

// newAnalysisService wires the full analysis pipeline from config
func newAnalysisService() (analysis.Service, error) {
	llm, err := newLLMClient()
	if err != nil {
		return nil, err
	}

	embedder, err := newEmbedder()
	if err != nil {
		return nil, err
	}

	index := newPatentIndex()

	return analysis.NewService(
		analysis.NewTransformer(llm),
		analysis.NewRetriever(embedder, index),
		analysis.NewSynthesizer(llm),
	), nil
}

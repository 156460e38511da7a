package analysis

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrEmptyDescription = errors.New("invention description is empty")
)

// SearchArtifacts is one bundle of search inputs produced by query
// transformation. Two bundles exist per analysis: one for the base
// technology and one for the novel features.
type SearchArtifacts struct {
	TechnicalKeywords []string `json:"technical_keywords"`
	HydeAbstract      string   `json:"hyde_abstract"`
	CPCCodes          []string `json:"cpc_codes"`
}

// TransformationResult holds both search-artifact bundles. Both bundles
// must carry a non-empty HyDE abstract and at least one CPC code.
type TransformationResult struct {
	Base  SearchArtifacts `json:"base_technology_search"`
	Novel SearchArtifacts `json:"novel_features_search"`
}

// RetrievedContext is a single chunk of prior art returned by one
// retrieval call. PatentID is the deduplication key across calls.
type RetrievedContext struct {
	PatentID string  `json:"patentId"`
	Text     string  `json:"text"`
	Score    float64 `json:"score"`
}

// Result is the terminal output of one analysis run.
type Result struct {
	FinalReport     string               `json:"finalReport"`
	SearchArtifacts TransformationResult `json:"searchArtifacts"`
}

// Transformer converts a user description into the two search-artifact
// bundles used for hybrid retrieval.
type Transformer interface {
	Transform(ctx context.Context, userDescription string) (*TransformationResult, error)
}

// Retriever performs one hybrid search. It never fails the caller's flow:
// provider errors are logged and degrade to an empty result set.
type Retriever interface {
	Retrieve(ctx context.Context, hydeAbstract string, cpcCodes []string, topK int) []RetrievedContext
}

// Synthesizer turns the merged evidence and the original description into
// the final prior-art report.
type Synthesizer interface {
	Synthesize(ctx context.Context, userDescription string, contexts []RetrievedContext) (string, error)
}

// Service runs the full analysis pipeline.
type Service interface {
	Run(ctx context.Context, userDescription string) (*Result, error)
}

// TransformationError reports an unparsable or incomplete model response
// during query transformation. RawResponse keeps the model output for
// diagnostics.
type TransformationError struct {
	RawResponse string
	Err         error
}

func (e *TransformationError) Error() string {
	return fmt.Sprintf("query transformation failed: %v", e.Err)
}

func (e *TransformationError) Unwrap() error {
	return e.Err
}

// SynthesisError reports a failed model call during report synthesis.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("report synthesis failed: %v", e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

// ProviderInitError reports a provider client that could not be
// constructed, before any pipeline stage runs.
type ProviderInitError struct {
	Provider string
	Err      error
}

func (e *ProviderInitError) Error() string {
	return fmt.Sprintf("failed to initialize %s provider: %v", e.Provider, e.Err)
}

func (e *ProviderInitError) Unwrap() error {
	return e.Err
}

package analysis

import (
	"context"
	"strings"
	"sync"

	"priorart/src/log"
)

// RetrievalTopK is the number of results requested from each of the two
// retrieval calls.
const RetrievalTopK = 3

type service struct {
	transformer Transformer
	retriever   Retriever
	synthesizer Synthesizer
}

func NewService(transformer Transformer, retriever Retriever, synthesizer Synthesizer) Service {
	return &service{
		transformer: transformer,
		retriever:   retriever,
		synthesizer: synthesizer,
	}
}

// Run executes the pipeline: query transformation, base and novel
// retrieval, evidence merge, then synthesis. Transformation and synthesis
// failures abort the run with no partial output; retrieval failures
// degrade to empty evidence and the run continues. No stage is retried.
func (s *service) Run(ctx context.Context, userDescription string) (*Result, error) {
	if strings.TrimSpace(userDescription) == "" {
		return nil, ErrEmptyDescription
	}

	artifacts, err := s.transformer.Transform(ctx, userDescription)
	if err != nil {
		return nil, err
	}

	contexts := s.retrieveEvidence(ctx, artifacts)

	report, err := s.synthesizer.Synthesize(ctx, userDescription, contexts)
	if err != nil {
		return nil, err
	}

	return &Result{
		FinalReport:     report,
		SearchArtifacts: *artifacts,
	}, nil
}

// retrieveEvidence fans out the two independent retrieval calls and merges
// the tagged results after both complete. Merge order is always base first,
// then novel, so a novel-features result overwrites a base result with the
// same patent ID regardless of which call finishes first.
func (s *service) retrieveEvidence(ctx context.Context, artifacts *TransformationResult) []RetrievedContext {
	var baseContexts, novelContexts []RetrievedContext

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		baseContexts = s.retriever.Retrieve(ctx, artifacts.Base.HydeAbstract, artifacts.Base.CPCCodes, RetrievalTopK)
	}()
	go func() {
		defer wg.Done()
		novelContexts = s.retriever.Retrieve(ctx, artifacts.Novel.HydeAbstract, artifacts.Novel.CPCCodes, RetrievalTopK)
	}()
	wg.Wait()

	evidence := NewEvidenceSet()
	for _, c := range baseContexts {
		evidence.Add(c)
	}
	for _, c := range novelContexts {
		evidence.Add(c)
	}

	log.Info("retrieval complete",
		"baseResults", len(baseContexts),
		"novelResults", len(novelContexts),
		"uniqueDocuments", evidence.Len())

	return evidence.Values()
}

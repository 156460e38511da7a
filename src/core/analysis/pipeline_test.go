package analysis_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"priorart/src/core/analysis"
)

type fakeTransformer struct {
	result *analysis.TransformationResult
	err    error
}

func (f *fakeTransformer) Transform(ctx context.Context, userDescription string) (*analysis.TransformationResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakeRetriever returns canned results keyed by HyDE abstract, so base and
// novel calls can be distinguished regardless of execution order.
type fakeRetriever struct {
	results map[string][]analysis.RetrievedContext
}

func (f *fakeRetriever) Retrieve(ctx context.Context, hydeAbstract string, cpcCodes []string, topK int) []analysis.RetrievedContext {
	return f.results[hydeAbstract]
}

type fakeSynthesizer struct {
	report      string
	err         error
	gotContexts []analysis.RetrievedContext
	calls       int
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, userDescription string, contexts []analysis.RetrievedContext) (string, error) {
	f.calls++
	f.gotContexts = contexts
	if f.err != nil {
		return "", f.err
	}
	return f.report, nil
}

func fixedArtifacts() *analysis.TransformationResult {
	return &analysis.TransformationResult{
		Base: analysis.SearchArtifacts{
			TechnicalKeywords: []string{"heated mug", "beverage warmer"},
			HydeAbstract:      "base abstract",
			CPCCodes:          []string{"A47J36/24"},
		},
		Novel: analysis.SearchArtifacts{
			TechnicalKeywords: []string{"bluetooth thermostat"},
			HydeAbstract:      "novel abstract",
			CPCCodes:          []string{"H04W4/80"},
		},
	}
}

func TestRunEndToEnd(t *testing.T) {
	artifacts := fixedArtifacts()
	retriever := &fakeRetriever{results: map[string][]analysis.RetrievedContext{
		"base abstract": {
			{PatentID: "PAT-A", Text: "a heated vessel", Score: 0.8},
		},
		"novel abstract": {
			{PatentID: "PAT-B", Text: "a wireless thermometer", Score: 0.9},
		},
	}}
	synthesizer := &fakeSynthesizer{report: "# Executive Summary\nModerate overlap."}

	service := analysis.NewService(&fakeTransformer{result: artifacts}, retriever, synthesizer)

	result, err := service.Run(context.Background(), "A smart mug with a heater and Bluetooth temperature sync")
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if result.FinalReport != synthesizer.report {
		t.Errorf("Run() final report = %q, want %q", result.FinalReport, synthesizer.report)
	}
	if !reflect.DeepEqual(result.SearchArtifacts, *artifacts) {
		t.Errorf("Run() search artifacts = %+v, want %+v", result.SearchArtifacts, *artifacts)
	}

	wantContexts := []analysis.RetrievedContext{
		{PatentID: "PAT-A", Text: "a heated vessel", Score: 0.8},
		{PatentID: "PAT-B", Text: "a wireless thermometer", Score: 0.9},
	}
	if !reflect.DeepEqual(synthesizer.gotContexts, wantContexts) {
		t.Errorf("Run() synthesized contexts = %+v, want %+v", synthesizer.gotContexts, wantContexts)
	}
}

func TestRunNovelOverridesBase(t *testing.T) {
	retriever := &fakeRetriever{results: map[string][]analysis.RetrievedContext{
		"base abstract": {
			{PatentID: "P1", Text: "A", Score: 0.5},
		},
		"novel abstract": {
			{PatentID: "P1", Text: "B", Score: 0.9},
		},
	}}
	synthesizer := &fakeSynthesizer{report: "report"}

	service := analysis.NewService(&fakeTransformer{result: fixedArtifacts()}, retriever, synthesizer)

	if _, err := service.Run(context.Background(), "description"); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	want := []analysis.RetrievedContext{{PatentID: "P1", Text: "B", Score: 0.9}}
	if !reflect.DeepEqual(synthesizer.gotContexts, want) {
		t.Errorf("Run() synthesized contexts = %+v, want %+v", synthesizer.gotContexts, want)
	}
}

func TestRunRetrievalDegradation(t *testing.T) {
	// Base retrieval degraded to empty; the novel call's results survive
	// and the pipeline does not abort.
	retriever := &fakeRetriever{results: map[string][]analysis.RetrievedContext{
		"base abstract": {},
		"novel abstract": {
			{PatentID: "PAT-B", Text: "a wireless thermometer", Score: 0.9},
		},
	}}
	synthesizer := &fakeSynthesizer{report: "report"}

	service := analysis.NewService(&fakeTransformer{result: fixedArtifacts()}, retriever, synthesizer)

	result, err := service.Run(context.Background(), "description")
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if result.FinalReport != "report" {
		t.Errorf("Run() final report = %q, want %q", result.FinalReport, "report")
	}

	want := []analysis.RetrievedContext{{PatentID: "PAT-B", Text: "a wireless thermometer", Score: 0.9}}
	if !reflect.DeepEqual(synthesizer.gotContexts, want) {
		t.Errorf("Run() synthesized contexts = %+v, want %+v", synthesizer.gotContexts, want)
	}
}

func TestRunEmptyEvidenceStillSynthesizes(t *testing.T) {
	retriever := &fakeRetriever{results: map[string][]analysis.RetrievedContext{}}
	synthesizer := &fakeSynthesizer{report: "report"}

	service := analysis.NewService(&fakeTransformer{result: fixedArtifacts()}, retriever, synthesizer)

	if _, err := service.Run(context.Background(), "description"); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if synthesizer.calls != 1 {
		t.Errorf("Run() invoked synthesizer %d times, want 1", synthesizer.calls)
	}
	if len(synthesizer.gotContexts) != 0 {
		t.Errorf("Run() synthesized %d contexts, want 0", len(synthesizer.gotContexts))
	}
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name        string
		description string
		transformer analysis.Transformer
		synthesizer *fakeSynthesizer
		wantErr     error
	}{
		{
			name:        "empty description",
			description: "   ",
			transformer: &fakeTransformer{result: fixedArtifacts()},
			synthesizer: &fakeSynthesizer{report: "report"},
			wantErr:     analysis.ErrEmptyDescription,
		},
		{
			name:        "transformation failure aborts",
			description: "description",
			transformer: &fakeTransformer{err: &analysis.TransformationError{Err: errors.New("bad json")}},
			synthesizer: &fakeSynthesizer{report: "report"},
		},
		{
			name:        "synthesis failure aborts",
			description: "description",
			transformer: &fakeTransformer{result: fixedArtifacts()},
			synthesizer: &fakeSynthesizer{err: &analysis.SynthesisError{Err: errors.New("model down")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retriever := &fakeRetriever{results: map[string][]analysis.RetrievedContext{}}
			service := analysis.NewService(tt.transformer, retriever, tt.synthesizer)

			result, err := service.Run(context.Background(), tt.description)
			if err == nil {
				t.Fatal("Run() expected error, got nil")
			}
			if result != nil {
				t.Errorf("Run() returned partial result %+v, want nil", result)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunTransformFailureSkipsSynthesis(t *testing.T) {
	synthesizer := &fakeSynthesizer{report: "report"}
	service := analysis.NewService(
		&fakeTransformer{err: &analysis.TransformationError{Err: errors.New("bad json")}},
		&fakeRetriever{results: map[string][]analysis.RetrievedContext{}},
		synthesizer,
	)

	if _, err := service.Run(context.Background(), "description"); err == nil {
		t.Fatal("Run() expected error, got nil")
	}

	if synthesizer.calls != 0 {
		t.Errorf("Run() invoked synthesizer %d times after transform failure, want 0", synthesizer.calls)
	}
}

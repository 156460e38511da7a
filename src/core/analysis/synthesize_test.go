package analysis_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"priorart/src/core/analysis"
)

func TestFormatContexts(t *testing.T) {
	tests := []struct {
		name     string
		contexts []analysis.RetrievedContext
		want     string
	}{
		{
			name:     "empty renders placeholder",
			contexts: nil,
			want:     "No relevant prior art was found.",
		},
		{
			name: "single context",
			contexts: []analysis.RetrievedContext{
				{PatentID: "PAT-A", Text: "a heated vessel", Score: 0.9},
			},
			want: "Patent ID: PAT-A\nText: a heated vessel",
		},
		{
			name: "multiple contexts joined by divider",
			contexts: []analysis.RetrievedContext{
				{PatentID: "PAT-A", Text: "a heated vessel"},
				{PatentID: "PAT-B", Text: "a wireless thermometer"},
			},
			want: "Patent ID: PAT-A\nText: a heated vessel\n\n---\n\nPatent ID: PAT-B\nText: a wireless thermometer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analysis.FormatContexts(tt.contexts)
			if got != tt.want {
				t.Errorf("FormatContexts() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSynthesize(t *testing.T) {
	llm := &fakeLLM{response: "# Executive Summary\nSignificant overlap found."}
	synthesizer := analysis.NewSynthesizer(llm)

	contexts := []analysis.RetrievedContext{
		{PatentID: "PAT-A", Text: "a heated vessel", Score: 0.9},
	}

	report, err := synthesizer.Synthesize(context.Background(), "A smart mug", contexts)
	if err != nil {
		t.Fatalf("Synthesize() unexpected error: %v", err)
	}
	if report != llm.response {
		t.Errorf("Synthesize() = %q, want the raw model output", report)
	}

	if len(llm.prompts) != 1 {
		t.Fatalf("Synthesize() made %d model calls, want 1", len(llm.prompts))
	}
	prompt := llm.prompts[0]
	if !strings.Contains(prompt, "A smart mug") {
		t.Error("Synthesize() prompt does not contain the user description")
	}
	if !strings.Contains(prompt, "Patent ID: PAT-A") {
		t.Error("Synthesize() prompt does not contain the rendered context block")
	}
}

func TestSynthesizeEmptyEvidenceStillInvokesModel(t *testing.T) {
	llm := &fakeLLM{response: "report"}
	synthesizer := analysis.NewSynthesizer(llm)

	if _, err := synthesizer.Synthesize(context.Background(), "A smart mug", nil); err != nil {
		t.Fatalf("Synthesize() unexpected error: %v", err)
	}

	if len(llm.prompts) != 1 {
		t.Fatalf("Synthesize() made %d model calls, want 1", len(llm.prompts))
	}
	if !strings.Contains(llm.prompts[0], analysis.NoPriorArtFound) {
		t.Error("Synthesize() prompt does not contain the no-prior-art placeholder")
	}
}

func TestSynthesizeModelFailure(t *testing.T) {
	llm := &fakeLLM{err: errors.New("upstream unavailable")}
	synthesizer := analysis.NewSynthesizer(llm)

	_, err := synthesizer.Synthesize(context.Background(), "A smart mug", nil)
	if err == nil {
		t.Fatal("Synthesize() expected error, got nil")
	}

	var synthesisErr *analysis.SynthesisError
	if !errors.As(err, &synthesisErr) {
		t.Errorf("Synthesize() error = %T, want *SynthesisError", err)
	}
}

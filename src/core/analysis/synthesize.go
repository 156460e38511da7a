package analysis

import (
	"context"
	"fmt"
	"strings"
)

// NoPriorArtFound is substituted into the synthesis prompt when both
// retrieval calls return empty.
const NoPriorArtFound = "No relevant prior art was found."

const contextDivider = "\n\n---\n\n"

type reportSynthesizer struct {
	llm LLMProvider
}

func NewSynthesizer(llm LLMProvider) Synthesizer {
	return &reportSynthesizer{
		llm: llm,
	}
}

// Synthesize renders the evidence block and asks the model for the final
// structured report. The model output is returned unmodified; the prompt
// is trusted to enforce the report structure.
func (s *reportSynthesizer) Synthesize(ctx context.Context, userDescription string, contexts []RetrievedContext) (string, error) {
	prompt, err := executeTemplate(AnalystSynthesisPromptTmpl, map[string]string{
		"UserDescription":  userDescription,
		"PriorArtContexts": FormatContexts(contexts),
	})
	if err != nil {
		return "", &SynthesisError{Err: fmt.Errorf("failed to build prompt: %w", err)}
	}

	report, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return "", &SynthesisError{Err: fmt.Errorf("model call failed: %w", err)}
	}

	return report, nil
}

// FormatContexts renders retrieved contexts as a delimited block, one
// paragraph per patent.
func FormatContexts(contexts []RetrievedContext) string {
	if len(contexts) == 0 {
		return NoPriorArtFound
	}

	paragraphs := make([]string, 0, len(contexts))
	for _, ctx := range contexts {
		paragraphs = append(paragraphs, fmt.Sprintf("Patent ID: %s\nText: %s", ctx.PatentID, ctx.Text))
	}

	return strings.Join(paragraphs, contextDivider)
}

package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"priorart/src/log"
)

type queryTransformer struct {
	llm LLMProvider
}

func NewTransformer(llm LLMProvider) Transformer {
	return &queryTransformer{
		llm: llm,
	}
}

// Transform asks the model for both search-artifact bundles in a single
// call and validates that each carries a HyDE abstract and CPC codes.
func (t *queryTransformer) Transform(ctx context.Context, userDescription string) (*TransformationResult, error) {
	prompt, err := executeTemplate(QueryTransformationPromptTmpl, map[string]string{
		"UserDescription": userDescription,
	})
	if err != nil {
		return nil, &TransformationError{Err: fmt.Errorf("failed to build prompt: %w", err)}
	}

	raw, err := t.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, &TransformationError{Err: fmt.Errorf("model call failed: %w", err)}
	}

	content := stripCodeFence(raw)

	var result TransformationResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		log.Error(err, "failed to decode transformation response", "response", raw)
		return nil, &TransformationError{
			RawResponse: raw,
			Err:         fmt.Errorf("failed to decode model response: %w", err),
		}
	}

	if err := validateArtifacts(&result); err != nil {
		return nil, &TransformationError{
			RawResponse: raw,
			Err:         err,
		}
	}

	log.Debug("query transformation complete",
		"baseCPCCodes", result.Base.CPCCodes,
		"novelCPCCodes", result.Novel.CPCCodes)

	return &result, nil
}

func validateArtifacts(result *TransformationResult) error {
	for _, bundle := range []struct {
		name      string
		artifacts SearchArtifacts
	}{
		{"base_technology_search", result.Base},
		{"novel_features_search", result.Novel},
	} {
		if strings.TrimSpace(bundle.artifacts.HydeAbstract) == "" {
			return fmt.Errorf("%s is missing a hyde_abstract", bundle.name)
		}
		if len(bundle.artifacts.CPCCodes) == 0 {
			return fmt.Errorf("%s is missing cpc_codes", bundle.name)
		}
	}
	return nil
}

// stripCodeFence removes a Markdown code fence wrapping, which some models
// add around JSON output despite instructions not to.
func stripCodeFence(s string) string {
	content := strings.TrimSpace(s)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

func executeTemplate(tmpl string, data interface{}) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

package analysis_test

import (
	"reflect"
	"testing"

	"priorart/src/core/analysis"
)

func TestEvidenceSetDisjointMerge(t *testing.T) {
	base := []analysis.RetrievedContext{
		{PatentID: "P1", Text: "base one", Score: 0.8},
		{PatentID: "P2", Text: "base two", Score: 0.7},
	}
	novel := []analysis.RetrievedContext{
		{PatentID: "P3", Text: "novel one", Score: 0.9},
	}

	set := analysis.NewEvidenceSet()
	for _, c := range base {
		set.Add(c)
	}
	for _, c := range novel {
		set.Add(c)
	}

	if set.Len() != len(base)+len(novel) {
		t.Errorf("Len() = %d, want %d", set.Len(), len(base)+len(novel))
	}

	want := []string{"P1", "P2", "P3"}
	values := set.Values()
	got := make([]string, 0, len(values))
	for _, v := range values {
		got = append(got, v.PatentID)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Values() order = %v, want %v", got, want)
	}
}

func TestEvidenceSetOverride(t *testing.T) {
	set := analysis.NewEvidenceSet()
	set.Add(analysis.RetrievedContext{PatentID: "P1", Text: "A", Score: 0.5})
	set.Add(analysis.RetrievedContext{PatentID: "P2", Text: "other", Score: 0.4})
	set.Add(analysis.RetrievedContext{PatentID: "P1", Text: "B", Score: 0.9})

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}

	values := set.Values()
	if values[0].PatentID != "P1" {
		t.Errorf("Values()[0].PatentID = %q, want P1 (position of first insertion kept)", values[0].PatentID)
	}
	if values[0].Text != "B" || values[0].Score != 0.9 {
		t.Errorf("Values()[0] = %+v, want text B and score 0.9 from the later write", values[0])
	}
}

package examplan

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fasahat78/startege/internal/catalog"
)

func concepts(n int) []catalog.Concept {
	out := make([]catalog.Concept, n)
	for i := range out {
		out[i] = catalog.Concept{
			ID:         fmt.Sprintf("concept-%d", i+1),
			Name:       fmt.Sprintf("Concept %d", i+1),
			CategoryID: "cat-1",
		}
	}
	return out
}

func TestBuildPlan_ExactCoverage(t *testing.T) {
	cs := concepts(7)
	plan, err := BuildPlan(cs, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan) != 7 {
		t.Fatalf("expected 7 slots, got %d", len(plan))
	}

	seen := make(map[string]bool)
	for i, s := range plan {
		if s.QuestionNumber != i+1 {
			t.Errorf("slot %d: question number %d", i, s.QuestionNumber)
		}
		if s.PrimaryConceptID != cs[i].ID {
			t.Errorf("slot %d: expected %s, got %s", i, cs[i].ID, s.PrimaryConceptID)
		}
		if len(s.AllowedConceptIDs) != 1 || s.AllowedConceptIDs[0] != s.PrimaryConceptID {
			t.Errorf("slot %d: allowed concepts %v", i, s.AllowedConceptIDs)
		}
		if s.MaxConceptsInQuestion != 1 {
			t.Errorf("slot %d: max concepts %d", i, s.MaxConceptsInQuestion)
		}
		seen[s.PrimaryConceptID] = true
	}
	// Bijection: every concept appears exactly once.
	if len(seen) != 7 {
		t.Errorf("expected bijection onto 7 concepts, got %d distinct", len(seen))
	}
}

func TestBuildPlan_RoundRobinOverflow(t *testing.T) {
	cs := concepts(3)
	plan, err := BuildPlan(cs, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(plan))
	}

	// First three cover each concept once, then 1, 2, 3, 1, 2 again.
	want := []string{
		"concept-1", "concept-2", "concept-3",
		"concept-1", "concept-2", "concept-3", "concept-1", "concept-2",
	}
	for i, s := range plan {
		if s.PrimaryConceptID != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], s.PrimaryConceptID)
		}
	}
}

func TestBuildPlan_TooFewQuestions(t *testing.T) {
	_, err := BuildPlan(concepts(5), 3)
	if err == nil {
		t.Fatal("expected configuration error when question count < concept count")
	}
}

func TestBuildPlan_NoConcepts(t *testing.T) {
	_, err := BuildPlan(nil, 5)
	if err == nil {
		t.Fatal("expected error for empty concept set")
	}
}

func TestFormatForPrompt(t *testing.T) {
	plan, err := BuildPlan(concepts(2), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := FormatForPrompt(plan)
	if !strings.Contains(out, `Question 1: Test concept ID "concept-1"`) {
		t.Errorf("missing directive for question 1:\n%s", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("trailing newline not trimmed")
	}
	if got := len(strings.Split(out, "\n")); got != 2 {
		t.Errorf("expected 2 lines, got %d", got)
	}
}

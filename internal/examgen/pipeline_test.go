package examgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/fasahat78/startege/internal/catalog"
	"github.com/fasahat78/startege/internal/exam"
	"github.com/fasahat78/startege/internal/examplan"
	"github.com/fasahat78/startege/internal/llm"
	"github.com/fasahat78/startege/internal/policy"
)

func levelScope(n int) []catalog.Concept {
	out := make([]catalog.Concept, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, catalog.Concept{
			ID:         fmt.Sprintf("c%d", i),
			Name:       fmt.Sprintf("Concept %d", i),
			CategoryID: "cat-gdpr",
		})
	}
	return out
}

func levelInput(t *testing.T, n int) Input {
	t.Helper()
	scope := levelScope(n)
	plan, err := examplan.BuildPlan(scope, n)
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}
	return Input{
		Type:                 exam.TypeLevel,
		LevelNumber:          3,
		Title:                "GDPR Fundamentals",
		Policy:               policy.UnitPolicy(n, 70),
		Scope:                scope,
		Plan:                 plan,
		CanonicalCategoryIDs: map[string]bool{"cat-gdpr": true},
	}
}

// questionJSON renders one well-formed question testing the given concept.
func questionJSON(num int, conceptID string) string {
	return fmt.Sprintf(`{
		"id": "q%d",
		"stem": "A controller processes data for concept %s. What applies?",
		"options": [
			{"id": "A", "text": "Option one"},
			{"id": "B", "text": "Option two"},
			{"id": "C", "text": "Option three"},
			{"id": "D", "text": "Option four"}
		],
		"correctOptionId": "B",
		"conceptIds": ["%s"],
		"categoryIds": ["cat-gdpr"],
		"difficultyTag": "apply",
		"rationale": {"correct": "B is right.", "incorrect": {"A": "A misreads the scope."}}
	}`, num, conceptID, conceptID)
}

// setJSON renders a full response where question i tests concepts[i].
func setJSON(conceptIDs []string) json.RawMessage {
	qs := make([]string, 0, len(conceptIDs))
	for i, id := range conceptIDs {
		qs = append(qs, questionJSON(i+1, id))
	}
	return json.RawMessage(`{"questions": [` + strings.Join(qs, ",") + `]}`)
}

func TestRunAcceptsValidSet(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: setJSON([]string{"c1", "c2", "c3"}),
	})
	p := NewPipeline(NewLLMGenerator(mock, DefaultConfig()), DefaultConfig())

	out, err := p.Run(context.Background(), levelInput(t, 3))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", out.Attempts)
	}
	if len(out.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(out.Questions))
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}

	// Shuffling relabels options but must keep the correct text reachable.
	for _, q := range out.Questions {
		if !q.HasOption(q.CorrectOptionID) {
			t.Errorf("%s: correctOptionId %q not among options after shuffle", q.ID, q.CorrectOptionID)
		}
		found := false
		for _, o := range q.Options {
			if o.ID == q.CorrectOptionID && o.Text == "Option two" {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: correct option no longer points at the right text", q.ID)
		}
	}
}

func TestRunRetriesOnCompositionFailure(t *testing.T) {
	// First response repeats c1 and skips c3; second is valid.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: setJSON([]string{"c1", "c1", "c2"})},
		llm.MockResponse{Content: setJSON([]string{"c1", "c2", "c3"})},
	)
	p := NewPipeline(NewLLMGenerator(mock, DefaultConfig()), DefaultConfig())

	out, err := p.Run(context.Background(), levelInput(t, 3))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", out.Attempts)
	}

	// The second prompt must carry the first round's violations.
	if mock.CallCount() != 2 {
		t.Fatalf("provider calls = %d, want 2", mock.CallCount())
	}
	second := mock.Prompts[1].User
	if !strings.Contains(second, "previous attempt was rejected") {
		t.Error("expected rejection feedback in the retry prompt")
	}
	if !strings.Contains(second, "c3") {
		t.Error("expected the missing concept to be named in the retry prompt")
	}
}

func TestRunFailsAfterRetryBudget(t *testing.T) {
	bad := llm.MockResponse{Content: setJSON([]string{"c1", "c1", "c2"})}
	mock := llm.NewMockProvider(bad, bad, bad)
	p := NewPipeline(NewLLMGenerator(mock, DefaultConfig()), DefaultConfig())

	_, err := p.Run(context.Background(), levelInput(t, 3))
	if err == nil {
		t.Fatal("expected error after retry budget spent")
	}
	var cerr *CompositionError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %T, want *CompositionError", err)
	}
	if cerr.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", cerr.Attempts)
	}
	if mock.CallCount() != 3 {
		t.Errorf("provider calls = %d, want 3", mock.CallCount())
	}
}

func TestRunRetriesOnContractViolation(t *testing.T) {
	// Two questions where three were ordered, then a valid set.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: setJSON([]string{"c1", "c2"})},
		llm.MockResponse{Content: setJSON([]string{"c1", "c2", "c3"})},
	)
	p := NewPipeline(NewLLMGenerator(mock, DefaultConfig()), DefaultConfig())

	out, err := p.Run(context.Background(), levelInput(t, 3))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", out.Attempts)
	}
	second := mock.Prompts[1].User
	if !strings.Contains(second, "question count is 2, want 3") {
		t.Error("expected the count violation in the retry prompt")
	}
}

// threeOptionGenerator returns structurally broken questions and does
// no checking of its own.
type threeOptionGenerator struct{}

func (threeOptionGenerator) Generate(_ context.Context, input Input, _ []string) ([]exam.Question, error) {
	qs := make([]exam.Question, input.Policy.QuestionCount)
	for i := range qs {
		qs[i] = exam.Question{
			ID:   fmt.Sprintf("q%d", i+1),
			Stem: "Which lawful basis applies?",
			Options: []exam.Option{
				{ID: "A", Text: "Consent"},
				{ID: "B", Text: "Contract"},
				{ID: "C", Text: "Legal obligation"},
			},
			CorrectOptionID: "B",
			ConceptIDs:      []string{fmt.Sprintf("c%d", i+1)},
			CategoryIDs:     []string{"cat-gdpr"},
			DifficultyTag:   exam.TagApply,
			Rationale:       exam.Rationale{Correct: "B matches the scenario."},
		}
	}
	return qs, nil
}

func TestRunRejectsGeneratorSkippingOptionContract(t *testing.T) {
	// A generator that never self-checks must still be stopped before
	// its questions reach the shuffle.
	p := NewPipeline(threeOptionGenerator{}, DefaultConfig())

	_, err := p.Run(context.Background(), levelInput(t, 3))
	if err == nil {
		t.Fatal("expected malformed options to be rejected")
	}
	var cerr *ContractError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %T, want *ContractError", err)
	}
	found := false
	for _, v := range cerr.Violations {
		if strings.Contains(v, "3 options, want 4") {
			found = true
		}
	}
	if !found {
		t.Errorf("violations %v do not name the option count", cerr.Violations)
	}
}

func TestRunProviderErrorIsFatal(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrUnavailable{},
	})
	p := NewPipeline(NewLLMGenerator(mock, DefaultConfig()), DefaultConfig())

	_, err := p.Run(context.Background(), levelInput(t, 3))
	if err == nil {
		t.Fatal("expected provider error to surface")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1 (no retry on provider failure)", mock.CallCount())
	}
}

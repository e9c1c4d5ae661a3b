package exams

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/fasahat78/startege/internal/catalog"
	"github.com/fasahat78/startege/internal/exam"
	"github.com/fasahat78/startege/internal/examgen"
	"github.com/fasahat78/startege/internal/gate"
	"github.com/fasahat78/startege/internal/llm"
	"github.com/fasahat78/startege/internal/store"
)

// newTestService wires a full service over an in-memory store and a
// mock provider with the given canned responses.
func newTestService(t *testing.T, responses ...llm.MockResponse) (*Service, *store.Store, *llm.MockProvider) {
	t.Helper()

	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cats := []catalog.Category{
		{ID: "cat-gdpr", Name: "Data Protection", Domain: "regulation"},
		{ID: "cat-risk", Name: "Risk Management", Domain: "practice"},
	}
	concepts := []store.SeedConcept{
		{Concept: catalog.Concept{ID: "c1", Name: "Lawful basis", CategoryID: "cat-gdpr"}, LevelNumber: 1, Position: 0},
		{Concept: catalog.Concept{ID: "c2", Name: "Data minimisation", CategoryID: "cat-gdpr"}, LevelNumber: 1, Position: 1},
		{Concept: catalog.Concept{ID: "c3", Name: "Risk tiers", CategoryID: "cat-risk"}, LevelNumber: 2, Position: 0},
	}
	if err := st.CatalogRepo().Seed(context.Background(), cats, concepts); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	mock := llm.NewMockProvider(responses...)
	cfg := examgen.DefaultConfig()
	pipeline := examgen.NewPipeline(examgen.NewLLMGenerator(mock, cfg), cfg)
	svc := NewService(st, pipeline, Metadata{Provider: "mock", Model: "mock-model"})
	return svc, st, mock
}

// questionJSON renders one well-formed question testing conceptID
// within categoryID. Option B carries the correct answer text.
func questionJSON(num int, conceptID, categoryID string) string {
	return fmt.Sprintf(`{
		"id": "q%d",
		"stem": "A deployment raises an issue around %s. What applies?",
		"options": [
			{"id": "A", "text": "Wrong one"},
			{"id": "B", "text": "Right answer"},
			{"id": "C", "text": "Wrong three"},
			{"id": "D", "text": "Wrong four"}
		],
		"correctOptionId": "B",
		"conceptIds": ["%s"],
		"categoryIds": ["%s"],
		"difficultyTag": "apply",
		"rationale": {"correct": "This follows directly.", "incorrect": {"A": "Misreads the obligation."}}
	}`, num, conceptID, conceptID, categoryID)
}

func setJSON(categoryID string, conceptIDs ...string) llm.MockResponse {
	qs := make([]string, 0, len(conceptIDs))
	for i, id := range conceptIDs {
		qs = append(qs, questionJSON(i+1, id, categoryID))
	}
	return llm.MockResponse{Content: json.RawMessage(`{"questions": [` + strings.Join(qs, ",") + `]}`)}
}

// levelOneSet covers both level-1 concepts, one question each.
func levelOneSet() llm.MockResponse {
	return setJSON("cat-gdpr", "c1", "c2")
}

func correctAnswers(ex *store.ExamRecord) []exam.Answer {
	out := make([]exam.Answer, 0, len(ex.Questions))
	for _, q := range ex.Questions {
		out = append(out, exam.Answer{QuestionID: q.ID, SelectedOptionID: q.CorrectOptionID})
	}
	return out
}

func wrongAnswers(ex *store.ExamRecord) []exam.Answer {
	out := make([]exam.Answer, 0, len(ex.Questions))
	for _, q := range ex.Questions {
		for _, o := range q.Options {
			if o.ID != q.CorrectOptionID {
				out = append(out, exam.Answer{QuestionID: q.ID, SelectedOptionID: o.ID})
				break
			}
		}
	}
	return out
}

func TestGenerateLevelExamVersions(t *testing.T) {
	svc, st, _ := newTestService(t, levelOneSet(), levelOneSet())
	ctx := context.Background()

	v1, err := svc.GenerateLevelExam(ctx, 1)
	if err != nil {
		t.Fatalf("generate v1: %v", err)
	}
	if v1.Version != 1 {
		t.Errorf("version = %d, want 1", v1.Version)
	}
	if v1.Provider != "mock" || v1.Model != "mock-model" {
		t.Errorf("provenance = %s/%s, want mock/mock-model", v1.Provider, v1.Model)
	}
	if v1.GenerationAttempts != 1 {
		t.Errorf("generation attempts = %d, want 1", v1.GenerationAttempts)
	}
	if len(v1.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(v1.Questions))
	}

	v2, err := svc.GenerateLevelExam(ctx, 1)
	if err != nil {
		t.Fatalf("generate v2: %v", err)
	}
	if v2.Version != 2 {
		t.Errorf("version = %d, want 2", v2.Version)
	}

	latest, err := st.ExamRepo().Latest(ctx, exam.TypeLevel, 1, "")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.ExamID != v2.ExamID {
		t.Errorf("latest = %s, want %s", latest.ExamID, v2.ExamID)
	}
}

func TestGenerateLevelExamUnknownLevel(t *testing.T) {
	svc, _, _ := newTestService(t)
	if _, err := svc.GenerateLevelExam(context.Background(), 99); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestGenerateCategoryExamUnknownCategory(t *testing.T) {
	svc, _, _ := newTestService(t)
	if _, err := svc.GenerateCategoryExam(context.Background(), "cat-nope"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestGenerateCategoryExam(t *testing.T) {
	// Category exams are 20 questions; repetition within scope is allowed.
	ids := make([]string, 20)
	for i := range ids {
		if i%2 == 0 {
			ids[i] = "c1"
		} else {
			ids[i] = "c2"
		}
	}
	svc, _, _ := newTestService(t, setJSON("cat-gdpr", ids...))

	ex, err := svc.GenerateCategoryExam(context.Background(), "cat-gdpr")
	if err != nil {
		t.Fatalf("generate category exam: %v", err)
	}
	if ex.Type != exam.TypeCategory || ex.CategoryID != "cat-gdpr" {
		t.Errorf("slot = %s/%s, want CATEGORY/cat-gdpr", ex.Type, ex.CategoryID)
	}
	if len(ex.Questions) != 20 {
		t.Errorf("questions = %d, want 20", len(ex.Questions))
	}
}

func TestStartSubmitPassLifecycle(t *testing.T) {
	svc, st, _ := newTestService(t, levelOneSet())
	ctx := context.Background()

	ex, err := svc.GenerateLevelExam(ctx, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	start, err := svc.StartAttempt(ctx, "user-1", ex.ExamID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !start.Eligibility.Eligible {
		t.Fatalf("expected eligible, got %+v", start.Eligibility)
	}
	if start.Attempt == nil || start.Attempt.AttemptNumber != 1 {
		t.Fatalf("expected attempt #1, got %+v", start.Attempt)
	}

	out, err := svc.SubmitAttempt(ctx, start.Attempt.AttemptID, correctAnswers(ex))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Result.Pass {
		t.Errorf("expected pass, got %+v", out.Result)
	}
	if out.Result.Percentage != 100 {
		t.Errorf("percentage = %v, want 100", out.Result.Percentage)
	}
	if len(out.WeakConcepts) != 0 {
		t.Errorf("weak concepts = %v, want none", out.WeakConcepts)
	}

	passed, err := st.ProgressRepo().LevelPassed(ctx, "user-1", 1)
	if err != nil {
		t.Fatalf("level passed: %v", err)
	}
	if !passed {
		t.Error("expected level 1 recorded as passed")
	}
}

func TestSubmitFailRecordsWeakConceptsAndCooldown(t *testing.T) {
	svc, _, _ := newTestService(t, levelOneSet())
	ctx := context.Background()

	ex, err := svc.GenerateLevelExam(ctx, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	start, err := svc.StartAttempt(ctx, "user-1", ex.ExamID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	out, err := svc.SubmitAttempt(ctx, start.Attempt.AttemptID, wrongAnswers(ex))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Result.Pass {
		t.Fatalf("expected fail, got %+v", out.Result)
	}

	names := make(map[string]bool)
	for _, c := range out.WeakConcepts {
		names[c.Name] = true
	}
	if !names["Lawful basis"] || !names["Data minimisation"] {
		t.Errorf("weak concepts = %v, want both level-1 concepts", out.WeakConcepts)
	}

	// The failure starts a mandatory wait before the next attempt.
	again, err := svc.StartAttempt(ctx, "user-1", ex.ExamID)
	if err != nil {
		t.Fatalf("start again: %v", err)
	}
	if again.Attempt != nil {
		t.Fatal("expected no attempt during cooldown")
	}
	if again.Eligibility.State != gate.StateCooldown {
		t.Errorf("state = %s, want COOLDOWN", again.Eligibility.State)
	}
	if again.Eligibility.NextEligibleAt == nil {
		t.Error("expected nextEligibleAt to be set")
	}
}

func TestSubmitTwiceIsRejected(t *testing.T) {
	svc, _, _ := newTestService(t, levelOneSet())
	ctx := context.Background()

	ex, err := svc.GenerateLevelExam(ctx, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	start, err := svc.StartAttempt(ctx, "user-1", ex.ExamID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.SubmitAttempt(ctx, start.Attempt.AttemptID, correctAnswers(ex)); err != nil {
		t.Fatalf("submit: %v", err)
	}

	_, err = svc.SubmitAttempt(ctx, start.Attempt.AttemptID, correctAnswers(ex))
	if !errors.Is(err, store.ErrAlreadySubmitted) {
		t.Fatalf("err = %v, want ErrAlreadySubmitted", err)
	}
}

func TestStartRequiresPreviousLevelPassed(t *testing.T) {
	svc, _, _ := newTestService(t, setJSON("cat-risk", "c3"))
	ctx := context.Background()

	ex, err := svc.GenerateLevelExam(ctx, 2)
	if err != nil {
		t.Fatalf("generate level 2: %v", err)
	}

	start, err := svc.StartAttempt(ctx, "user-1", ex.ExamID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if start.Attempt != nil {
		t.Fatal("expected no attempt before level 1 is passed")
	}
	if start.Eligibility.State != gate.StateIneligible {
		t.Errorf("state = %s, want INELIGIBLE", start.Eligibility.State)
	}
}

func TestBossEligibilityRequiresDecade(t *testing.T) {
	svc, _, _ := newTestService(t)

	elig, err := svc.Eligibility(context.Background(), "user-1", 10)
	if err != nil {
		t.Fatalf("eligibility: %v", err)
	}
	if elig.Eligible {
		t.Fatal("expected ineligible with nothing passed")
	}
	if elig.State != gate.StateIneligible {
		t.Errorf("state = %s, want INELIGIBLE", elig.State)
	}
}

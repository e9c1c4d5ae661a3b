package store

import (
	"context"
	"testing"
	"time"

	"github.com/fasahat78/startege/internal/catalog"
	"github.com/fasahat78/startege/internal/exam"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedTestCatalog(t *testing.T, s *Store) {
	t.Helper()
	cats := []catalog.Category{
		{ID: "cat-gdpr", Name: "Data Protection", Domain: "regulation"},
		{ID: "cat-risk", Name: "Risk Management", Domain: "practice"},
	}
	concepts := []SeedConcept{
		{Concept: catalog.Concept{ID: "c1", Name: "Lawful basis", CategoryID: "cat-gdpr"}, LevelNumber: 1, Position: 0},
		{Concept: catalog.Concept{ID: "c2", Name: "Data minimisation", CategoryID: "cat-gdpr"}, LevelNumber: 1, Position: 1},
		{Concept: catalog.Concept{ID: "c3", Name: "Risk tiers", CategoryID: "cat-risk"}, LevelNumber: 2, Position: 0},
	}
	if err := s.CatalogRepo().Seed(context.Background(), cats, concepts); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
}

func testQuestions(n int) []exam.Question {
	qs := make([]exam.Question, 0, n)
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		qs = append(qs, exam.Question{
			ID:   "q-" + id,
			Stem: "stem " + id,
			Options: []exam.Option{
				{ID: "o1", Text: "one"}, {ID: "o2", Text: "two"},
				{ID: "o3", Text: "three"}, {ID: "o4", Text: "four"},
			},
			CorrectOptionID: "o1",
			ConceptIDs:      []string{"c1"},
			CategoryIDs:     []string{"cat-gdpr"},
			DifficultyTag:   exam.TagApply,
			Rationale:       exam.Rationale{Correct: "because"},
		})
	}
	return qs
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCatalogSeedAndRead(t *testing.T) {
	s := openTestStore(t)
	seedTestCatalog(t, s)
	ctx := context.Background()
	repo := s.CatalogRepo()

	// Re-seeding is rejected.
	if err := repo.Seed(ctx, []catalog.Category{{ID: "x", Name: "X"}}, nil); err == nil {
		t.Fatal("expected error on double seed")
	}

	concepts, err := repo.ConceptsForLevels(ctx, 1, 1)
	if err != nil {
		t.Fatalf("ConceptsForLevels: %v", err)
	}
	if len(concepts) != 2 {
		t.Fatalf("level 1 concepts = %d, want 2", len(concepts))
	}
	if concepts[0].ID != "c1" || concepts[1].ID != "c2" {
		t.Errorf("level 1 order = %s,%s, want c1,c2", concepts[0].ID, concepts[1].ID)
	}

	byCat, err := repo.ConceptsForCategory(ctx, "cat-risk")
	if err != nil {
		t.Fatalf("ConceptsForCategory: %v", err)
	}
	if len(byCat) != 1 || byCat[0].ID != "c3" {
		t.Errorf("cat-risk concepts = %v, want [c3]", byCat)
	}

	ids, err := repo.CategoriesForLevels(ctx, 1, 1)
	if err != nil {
		t.Fatalf("CategoriesForLevels: %v", err)
	}
	if len(ids) != 1 || ids[0] != "cat-gdpr" {
		t.Errorf("categories for level 1 = %v, want [cat-gdpr]", ids)
	}

	all, err := repo.AllCategories(ctx)
	if err != nil {
		t.Fatalf("AllCategories: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("AllCategories = %v, want 2 entries", all)
	}
}

func TestExamVersioning(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ExamRepo()

	first := &ExamRecord{
		Type:        exam.TypeLevel,
		LevelNumber: 3,
		Questions:   testQuestions(2),
		Provider:    "mock",
		Model:       "mock",
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if first.Version != 1 {
		t.Errorf("first version = %d, want 1", first.Version)
	}
	if first.ExamID == "" {
		t.Error("expected generated exam ID")
	}

	second := &ExamRecord{
		Type:        exam.TypeLevel,
		LevelNumber: 3,
		Questions:   testQuestions(2),
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}
	if second.Version != 2 {
		t.Errorf("second version = %d, want 2", second.Version)
	}

	// Latest returns the newer version; the older one stays readable.
	latest, err := repo.Latest(ctx, exam.TypeLevel, 3, "")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.ExamID != second.ExamID {
		t.Errorf("Latest = %s, want %s", latest.ExamID, second.ExamID)
	}
	old, err := repo.ByID(ctx, first.ExamID)
	if err != nil {
		t.Fatalf("ByID(first): %v", err)
	}
	if old.Version != 1 || len(old.Questions) != 2 {
		t.Errorf("old exam version=%d questions=%d, want 1 and 2", old.Version, len(old.Questions))
	}

	// Category exams version independently of level exams.
	catExam := &ExamRecord{
		Type:       exam.TypeCategory,
		CategoryID: "cat-gdpr",
		Questions:  testQuestions(1),
	}
	if err := repo.Save(ctx, catExam); err != nil {
		t.Fatalf("save category exam: %v", err)
	}
	if catExam.Version != 1 {
		t.Errorf("category exam version = %d, want 1", catExam.Version)
	}

	if _, err := repo.Latest(ctx, exam.TypeBoss, 10, ""); err != ErrNotFound {
		t.Errorf("Latest(missing slot) = %v, want ErrNotFound", err)
	}
}

func TestAttemptLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := &ExamRecord{Type: exam.TypeLevel, LevelNumber: 1, Questions: testQuestions(2)}
	if err := s.ExamRepo().Save(ctx, rec); err != nil {
		t.Fatalf("save exam: %v", err)
	}

	repo := s.AttemptRepo()
	a1, err := repo.Start(ctx, "user-1", rec.ExamID)
	if err != nil {
		t.Fatalf("start attempt: %v", err)
	}
	if a1.AttemptNumber != 1 {
		t.Errorf("attempt number = %d, want 1", a1.AttemptNumber)
	}
	if a1.Submitted() {
		t.Error("new attempt should not be submitted")
	}

	a2, err := repo.Start(ctx, "user-1", rec.ExamID)
	if err != nil {
		t.Fatalf("start second attempt: %v", err)
	}
	if a2.AttemptNumber != 2 {
		t.Errorf("second attempt number = %d, want 2", a2.AttemptNumber)
	}

	data := SubmitData{
		Answers:        []exam.Answer{{QuestionID: "q-a", SelectedOptionID: "o1"}},
		Score:          1,
		Percentage:     50,
		Pass:           false,
		WeakConceptIDs: []string{"c1"},
		SubmittedAt:    time.Now().UTC(),
	}
	sub, err := repo.Submit(ctx, a1.AttemptID, data)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !sub.Submitted() || sub.Percentage != 50 {
		t.Errorf("submitted attempt = %+v", sub)
	}

	// Double submission is rejected.
	if _, err := repo.Submit(ctx, a1.AttemptID, data); err != ErrAlreadySubmitted {
		t.Errorf("second submit = %v, want ErrAlreadySubmitted", err)
	}

	if _, err := repo.Get(ctx, "nope"); err != ErrNotFound {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}
}

func TestRecentAttemptsAcrossVersions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	v1 := &ExamRecord{Type: exam.TypeBoss, LevelNumber: 10, Questions: testQuestions(1)}
	if err := s.ExamRepo().Save(ctx, v1); err != nil {
		t.Fatalf("save v1: %v", err)
	}
	v2 := &ExamRecord{Type: exam.TypeBoss, LevelNumber: 10, Questions: testQuestions(1)}
	if err := s.ExamRepo().Save(ctx, v2); err != nil {
		t.Fatalf("save v2: %v", err)
	}

	repo := s.AttemptRepo()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, examID := range []string{v1.ExamID, v2.ExamID} {
		a, err := repo.Start(ctx, "user-1", examID)
		if err != nil {
			t.Fatalf("start: %v", err)
		}
		_, err = repo.Submit(ctx, a.AttemptID, SubmitData{
			Pass:        false,
			SubmittedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	// Attempts on both versions count toward the level's slot, newest first.
	recent, err := repo.RecentAttempts(ctx, "user-1", 10, 3)
	if err != nil {
		t.Fatalf("RecentAttempts: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d records, want 2", len(recent))
	}
	if !recent[0].SubmittedAt.After(recent[1].SubmittedAt) {
		t.Error("expected newest-first ordering")
	}
}

func TestProgressMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProgressRepo()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	if err := repo.RecordLevelResult(ctx, "user-1", 5, false, 60, at); err != nil {
		t.Fatalf("record fail: %v", err)
	}
	passed, err := repo.LevelPassed(ctx, "user-1", 5)
	if err != nil {
		t.Fatalf("LevelPassed: %v", err)
	}
	if passed {
		t.Error("failed attempt should not mark level passed")
	}

	if err := repo.RecordLevelResult(ctx, "user-1", 5, true, 80, at.Add(time.Hour)); err != nil {
		t.Fatalf("record pass: %v", err)
	}

	// A later failed retake never demotes the level.
	if err := repo.RecordLevelResult(ctx, "user-1", 5, false, 40, at.Add(2*time.Hour)); err != nil {
		t.Fatalf("record later fail: %v", err)
	}
	passed, err = repo.LevelPassed(ctx, "user-1", 5)
	if err != nil {
		t.Fatalf("LevelPassed: %v", err)
	}
	if !passed {
		t.Error("passed level demoted by later failure")
	}

	levels, err := repo.PassedLevels(ctx, "user-1")
	if err != nil {
		t.Fatalf("PassedLevels: %v", err)
	}
	if !levels[5] || len(levels) != 1 {
		t.Errorf("PassedLevels = %v, want {5}", levels)
	}

	if err := repo.RecordCategoryResult(ctx, "user-1", "cat-gdpr", true, 90, at); err != nil {
		t.Fatalf("record category pass: %v", err)
	}
	cats, err := repo.PassedCategories(ctx, "user-1")
	if err != nil {
		t.Fatalf("PassedCategories: %v", err)
	}
	if !cats["cat-gdpr"] {
		t.Errorf("PassedCategories = %v, want cat-gdpr", cats)
	}
}

func TestLLMEventAppend(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:  "mock",
		Model:     "mock",
		Purpose:   "exam-gen",
		Success:   true,
		LatencyMs: 12,
	})
	if err != nil {
		t.Fatalf("append LLM event: %v", err)
	}

	n, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count events: %v", err)
	}
	if n != 1 {
		t.Errorf("event count = %d, want 1", n)
	}
}

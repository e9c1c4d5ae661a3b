package examcheck

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fasahat78/startege/internal/catalog"
	"github.com/fasahat78/startege/internal/exam"
	"github.com/fasahat78/startege/internal/policy"
)

const catID = "11111111-1111-1111-1111-111111111111"

func canonical(ids ...string) map[string]bool {
	m := map[string]bool{catID: true}
	for _, id := range ids {
		m[id] = true
	}
	return m
}

func scope(n int) []catalog.Concept {
	out := make([]catalog.Concept, n)
	for i := range out {
		out[i] = catalog.Concept{
			ID:         fmt.Sprintf("concept-%d", i+1),
			Name:       fmt.Sprintf("Concept %d", i+1),
			CategoryID: catID,
		}
	}
	return out
}

func levelQuestion(n int, conceptID string) exam.Question {
	return exam.Question{
		ID:   fmt.Sprintf("q%d", n),
		Stem: fmt.Sprintf("Stem %d", n),
		Options: []exam.Option{
			{ID: "a", Text: "A"}, {ID: "b", Text: "B"},
			{ID: "c", Text: "C"}, {ID: "d", Text: "D"},
		},
		CorrectOptionID: "a",
		ConceptIDs:      []string{conceptID},
		CategoryIDs:     []string{catID},
		DifficultyTag:   exam.TagRecall,
	}
}

func levelSet(concepts []catalog.Concept) []exam.Question {
	qs := make([]exam.Question, len(concepts))
	for i, c := range concepts {
		qs[i] = levelQuestion(i+1, c.ID)
	}
	return qs
}

func TestValidateLevelExam_FullCoverage(t *testing.T) {
	cs := scope(7)
	res := ValidateLevelExam(levelSet(cs), cs, canonical())
	if !res.IsValid {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("expected no errors, got %v", res.Errors)
	}
}

func TestValidateLevelExam_MissingConcept(t *testing.T) {
	cs := scope(7)
	qs := levelSet(cs)[:6] // drop the question covering concept-7

	res := ValidateLevelExam(qs, cs, canonical())
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "concept-7") && strings.Contains(e, "missing concept coverage") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an error naming concept-7, got %v", res.Errors)
	}
}

func TestValidateLevelExam_DuplicateIsNotCoverage(t *testing.T) {
	cs := scope(3)
	qs := levelSet(cs)
	qs[2].ConceptIDs = []string{"concept-1"} // concept-3 dropped, concept-1 doubled

	res := ValidateLevelExam(qs, cs, canonical())
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	var sawMissing, sawDuplicate bool
	for _, e := range res.Errors {
		if strings.Contains(e, "missing concept coverage: concept-3") {
			sawMissing = true
		}
		if strings.Contains(e, "concept-1") && strings.Contains(e, "expected exactly 1") {
			sawDuplicate = true
		}
	}
	if !sawMissing || !sawDuplicate {
		t.Errorf("expected missing and duplicate errors, got %v", res.Errors)
	}
}

func TestValidateLevelExam_MultiConceptRejected(t *testing.T) {
	cs := scope(2)
	qs := levelSet(cs)
	qs[0].ConceptIDs = []string{"concept-1", "concept-2"}

	res := ValidateLevelExam(qs, cs, canonical())
	if res.IsValid {
		t.Fatal("expected invalid")
	}
}

func TestValidateLevelExam_NonCanonicalCategory(t *testing.T) {
	cs := scope(2)
	qs := levelSet(cs)
	qs[1].CategoryIDs = []string{"made-up-category"}

	res := ValidateLevelExam(qs, cs, canonical())
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "non-canonical") && strings.Contains(e, "made-up-category") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected non-canonical error, got %v", res.Errors)
	}
}

func TestValidateLevelExam_MissingCategoryIsWarning(t *testing.T) {
	cs := scope(2)
	qs := levelSet(cs)
	qs[0].CategoryIDs = nil

	res := ValidateLevelExam(qs, cs, canonical())
	if !res.IsValid {
		t.Fatalf("missing categoryIds should be a warning, got errors: %v", res.Errors)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected a warning for missing categoryIds")
	}
}

func TestValidateCategoryExam_ScopePurity(t *testing.T) {
	allowed := map[string]bool{"concept-1": true, "concept-2": true}

	qs := []exam.Question{
		levelQuestion(1, "concept-1"),
		levelQuestion(2, "concept-9"), // neighboring category's concept
	}
	res := ValidateCategoryExam(qs, allowed, catID)
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	if !strings.Contains(strings.Join(res.Errors, "\n"), "concept-9") {
		t.Errorf("expected error naming concept-9, got %v", res.Errors)
	}
}

func TestValidateCategoryExam_RepetitionAllowed(t *testing.T) {
	allowed := map[string]bool{"concept-1": true}
	qs := []exam.Question{
		levelQuestion(1, "concept-1"),
		levelQuestion(2, "concept-1"),
		levelQuestion(3, "concept-1"),
	}
	res := ValidateCategoryExam(qs, allowed, catID)
	if !res.IsValid {
		t.Fatalf("repetition should be allowed, got %v", res.Errors)
	}
}

func TestValidateCategoryExam_ForeignCategoryEvenAlongsideTarget(t *testing.T) {
	allowed := map[string]bool{"concept-1": true}
	q := levelQuestion(1, "concept-1")
	q.CategoryIDs = []string{catID, "22222222-2222-2222-2222-222222222222"}

	res := ValidateCategoryExam([]exam.Question{q}, allowed, catID)
	if res.IsValid {
		t.Fatal("expected invalid: foreign category alongside target")
	}
}

func TestValidateCategoryExam_MissingIDsAreWarnings(t *testing.T) {
	q := levelQuestion(1, "concept-1")
	q.ConceptIDs = nil
	q.CategoryIDs = nil

	res := ValidateCategoryExam([]exam.Question{q}, map[string]bool{"concept-1": true}, catID)
	if !res.IsValid {
		t.Fatalf("missing metadata should downgrade to warnings, got %v", res.Errors)
	}
	if len(res.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %v", res.Warnings)
	}
}

// bossSet builds a 20-question set meeting the level-10 policy:
// full category presence, multi-concept and scenario minimums satisfied.
func bossSet(t *testing.T, multiConcept int) []exam.Question {
	t.Helper()
	qs := make([]exam.Question, 20)
	for i := range qs {
		q := levelQuestion(i+1, fmt.Sprintf("concept-%d", (i%10)+1))
		q.DifficultyTag = exam.TagApply
		if i >= 12 && i < 16 {
			q.DifficultyTag = exam.TagJudgement
		}
		if i < multiConcept {
			q.ConceptIDs = []string{
				fmt.Sprintf("concept-%d", (i%10)+1),
				fmt.Sprintf("concept-%d", ((i+5)%10)+1),
			}
		}
		if i < 4 {
			q.CategoryIDs = []string{catID, "22222222-2222-2222-2222-222222222222"}
		}
		qs[i] = q
	}
	return qs
}

func bossFixtures() (policy.Policy, map[string]bool, map[string]bool, []string) {
	pol, _ := policy.BossPolicy(10)
	allowed := make(map[string]bool)
	for i := 1; i <= 10; i++ {
		allowed[fmt.Sprintf("concept-%d", i)] = true
	}
	canon := canonical("22222222-2222-2222-2222-222222222222")
	required := []string{catID, "22222222-2222-2222-2222-222222222222"}
	return pol, allowed, canon, required
}

func TestValidateBossExam_Valid(t *testing.T) {
	pol, allowed, canon, required := bossFixtures()
	res := ValidateBossExam(bossSet(t, 8), pol, allowed, canon, required)
	if !res.IsValid {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
	if res.Stats.MultiConceptCount != 8 {
		t.Errorf("expected 8 multi-concept, got %d", res.Stats.MultiConceptCount)
	}
}

func TestValidateBossExam_MultiConceptBelowMinimum(t *testing.T) {
	pol, allowed, canon, required := bossFixtures()
	res := ValidateBossExam(bossSet(t, 7), pol, allowed, canon, required)
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", res.Errors)
	}
	if !strings.Contains(res.Errors[0], "7") || !strings.Contains(res.Errors[0], "8") {
		t.Errorf("error should cite 7 < 8: %s", res.Errors[0])
	}
}

func TestValidateBossExam_FrequencyCap(t *testing.T) {
	pol, allowed, canon, required := bossFixtures()
	qs := bossSet(t, 8)
	// Push concept-1 into four questions; the foundation cap is 3.
	for i := 16; i < 20; i++ {
		qs[i].ConceptIDs = []string{"concept-1"}
	}
	res := ValidateBossExam(qs, pol, allowed, canon, required)
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "concept-1") && strings.Contains(e, "max: 3") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected frequency cap error, got %v", res.Errors)
	}
}

func TestValidateBossExam_OutOfDecadeConceptIsHardError(t *testing.T) {
	pol, allowed, canon, required := bossFixtures()
	qs := bossSet(t, 8)
	qs[0].ConceptIDs = []string{"concept-99"} // plausible but wrong decade
	res := ValidateBossExam(qs, pol, allowed, canon, required)
	if res.IsValid {
		t.Fatal("expected invalid")
	}
}

func TestValidateBossExam_MissingRequiredCategory(t *testing.T) {
	pol, allowed, canon, _ := bossFixtures()
	required := []string{catID, "33333333-3333-3333-3333-333333333333"}
	canon["33333333-3333-3333-3333-333333333333"] = true

	res := ValidateBossExam(bossSet(t, 8), pol, allowed, canon, required)
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	if !strings.Contains(strings.Join(res.Errors, "\n"), "33333333") {
		t.Errorf("expected missing-category error, got %v", res.Errors)
	}
}

func TestValidateBossExam_MixMissIsWarningOnly(t *testing.T) {
	pol, allowed, canon, required := bossFixtures()
	qs := bossSet(t, 8)
	// All scenario questions tagged apply: judgement share 0% vs 20% target.
	for i := range qs {
		qs[i].DifficultyTag = exam.TagApply
	}
	res := ValidateBossExam(qs, pol, allowed, canon, required)
	if !res.IsValid {
		t.Fatalf("mix miss must not be a hard failure, got %v", res.Errors)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected difficulty-mix warnings")
	}
}

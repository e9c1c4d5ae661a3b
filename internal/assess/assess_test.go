package assess

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/fasahat78/startege/internal/exam"
	"github.com/fasahat78/startege/internal/policy"
)

func question(n int, conceptIDs ...string) exam.Question {
	return exam.Question{
		ID:   fmt.Sprintf("q%d", n),
		Stem: fmt.Sprintf("Stem %d", n),
		Options: []exam.Option{
			{ID: "a", Text: "A"}, {ID: "b", Text: "B"},
			{ID: "c", Text: "C"}, {ID: "d", Text: "D"},
		},
		CorrectOptionID: "a",
		ConceptIDs:      conceptIDs,
		CategoryIDs:     []string{"cat-1"},
		DifficultyTag:   exam.TagApply,
		Rationale: exam.Rationale{
			Correct: "a is right",
			Incorrect: map[string]string{
				"b": "b confuses scope with purpose",
			},
		},
	}
}

func questions(n int) []exam.Question {
	qs := make([]exam.Question, n)
	for i := range qs {
		qs[i] = question(i+1, fmt.Sprintf("concept-%d", i+1))
	}
	return qs
}

func answerFirst(qs []exam.Question, correct int) []exam.Answer {
	var as []exam.Answer
	for i, q := range qs {
		sel := "b"
		if i < correct {
			sel = "a"
		}
		as = append(as, exam.Answer{QuestionID: q.ID, SelectedOptionID: sel})
	}
	return as
}

func TestAssess_BinaryPassAtBoundary(t *testing.T) {
	qs := questions(10)
	res := Assess(qs, answerFirst(qs, 6), Config{PassMark: 60})

	if res.Percentage != 60.0 {
		t.Errorf("expected 60.0, got %v", res.Percentage)
	}
	if !res.Pass {
		t.Error("score exactly at the pass mark must pass")
	}
	if res.CorrectCount != 6 || res.Score != 6 {
		t.Errorf("expected 6 correct, got %d/%d", res.CorrectCount, res.Score)
	}
	if res.TotalQuestions != 10 {
		t.Errorf("expected 10 total, got %d", res.TotalQuestions)
	}
}

func TestAssess_UnansweredCountsIncorrect(t *testing.T) {
	qs := questions(4)
	// Answer only two questions, both correctly.
	as := []exam.Answer{
		{QuestionID: "q1", SelectedOptionID: "a"},
		{QuestionID: "q2", SelectedOptionID: "a"},
	}
	res := Assess(qs, as, Config{PassMark: 60})
	if res.Percentage != 50.0 {
		t.Errorf("unanswered questions must stay in the denominator: got %v", res.Percentage)
	}
	if res.Pass {
		t.Error("expected fail")
	}
}

func TestAssess_UnknownQuestionIDIgnored(t *testing.T) {
	qs := questions(2)
	as := []exam.Answer{
		{QuestionID: "q1", SelectedOptionID: "a"},
		{QuestionID: "q2", SelectedOptionID: "a"},
		{QuestionID: "ghost", SelectedOptionID: "a"},
	}
	res := Assess(qs, as, Config{PassMark: 60})
	if res.TotalQuestions != 2 || res.Percentage != 100.0 {
		t.Errorf("unknown question ID must not affect scoring: %+v", res)
	}
}

func TestAssess_Deterministic(t *testing.T) {
	qs := questions(5)
	as := answerFirst(qs, 3)
	cfg := Config{PassMark: 70}

	first := Assess(qs, as, cfg)
	second := Assess(qs, as, cfg)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must yield identical output")
	}
}

func TestAssess_WeightedReducesToBinaryAtWeightOne(t *testing.T) {
	qs := questions(6)
	qs[0].ConceptIDs = []string{"c1", "c2"} // multi-concept
	as := answerFirst(qs, 4)

	binary := Assess(qs, as, Config{PassMark: 60})
	weighted := Assess(qs, as, Config{
		PassMark:  60,
		Weighting: []policy.WeightRule{{Kind: policy.WeightMultiConcept, Multiplier: 1.0}},
	})
	if binary.Percentage != weighted.Percentage || binary.Pass != weighted.Pass {
		t.Errorf("weights of 1.0 must reduce to binary: %v vs %v", binary.Percentage, weighted.Percentage)
	}
}

func TestAssess_MultiConceptWeighting(t *testing.T) {
	qs := questions(2)
	qs[0].ConceptIDs = []string{"c1", "c2"}
	// Correct on the weighted question only.
	as := []exam.Answer{
		{QuestionID: "q1", SelectedOptionID: "a"},
		{QuestionID: "q2", SelectedOptionID: "b"},
	}
	res := Assess(qs, as, Config{
		PassMark:  50,
		Weighting: []policy.WeightRule{{Kind: policy.WeightMultiConcept, Multiplier: 1.2}},
	})
	// 1.2 / 2.2 = 54.5454...%
	if res.Percentage != 54.55 {
		t.Errorf("expected 54.55, got %v", res.Percentage)
	}
	if !res.Pass {
		t.Error("expected pass: unrounded 54.54...% >= 50")
	}
}

func TestAssess_HighestMultiplierWinsNoStacking(t *testing.T) {
	qs := questions(2)
	qs[0].ConceptIDs = []string{"c1", "c2"}
	qs[0].DifficultyTag = exam.TagJudgement
	as := []exam.Answer{{QuestionID: "q1", SelectedOptionID: "a"}}

	rules := []policy.WeightRule{
		{Kind: policy.WeightJudgement, Multiplier: 1.5},
		{Kind: policy.WeightMultiConcept, Multiplier: 1.2},
	}
	res := Assess(qs, as, Config{PassMark: 50, Weighting: rules})

	// Weight must be 1.5, not 1.5*1.2. Earned 1.5 of total 2.5 = 60%.
	if res.Percentage != 60.0 {
		t.Errorf("multipliers must not stack: got %v", res.Percentage)
	}
}

func TestAssess_WeakConcepts(t *testing.T) {
	qs := questions(3)
	qs[2].ConceptIDs = []string{"concept-3", "concept-9"}
	as := answerFirst(qs, 1) // q2 and q3 wrong

	res := Assess(qs, as, Config{PassMark: 100})
	want := []string{"concept-2", "concept-3", "concept-9"}
	if !reflect.DeepEqual(res.WeakConceptIDs, want) {
		t.Errorf("expected weak concepts %v, got %v", want, res.WeakConceptIDs)
	}
}

func TestAssess_RationalePrefersIncorrectSpecific(t *testing.T) {
	qs := questions(2)
	as := []exam.Answer{
		{QuestionID: "q1", SelectedOptionID: "b"}, // has a b-specific rationale
		{QuestionID: "q2", SelectedOptionID: "c"}, // no c-specific rationale
	}
	res := Assess(qs, as, Config{PassMark: 50})

	if res.Feedback[0].Rationale != "b confuses scope with purpose" {
		t.Errorf("expected option-specific rationale, got %q", res.Feedback[0].Rationale)
	}
	if res.Feedback[1].Rationale != "a is right" {
		t.Errorf("expected fallback to correct rationale, got %q", res.Feedback[1].Rationale)
	}
}

func TestAssess_PercentageBounds(t *testing.T) {
	qs := questions(3)

	zero := Assess(qs, nil, Config{PassMark: 50})
	if zero.Percentage != 0 {
		t.Errorf("expected 0, got %v", zero.Percentage)
	}
	full := Assess(qs, answerFirst(qs, 3), Config{PassMark: 50})
	if full.Percentage != 100 {
		t.Errorf("expected 100, got %v", full.Percentage)
	}
}

func TestAssess_EmptyQuestionSet(t *testing.T) {
	res := Assess(nil, nil, Config{PassMark: 50})
	if res.Percentage != 0 || res.Pass {
		t.Errorf("empty exam must score 0 and fail: %+v", res)
	}
}

// Package assess scores submitted answers against the answer key.
// Scoring is deterministic and performs no I/O: generation produces
// content, scoring never regenerates or re-judges. That separation keeps
// grading auditable and reproducible.
package assess

import (
	"math"
	"sort"

	"github.com/fasahat78/startege/internal/exam"
	"github.com/fasahat78/startege/internal/policy"
)

// Config controls scoring for one assessment.
type Config struct {
	// PassMark is the minimum percentage (0-100) required to pass.
	// The unrounded percentage is compared; a score exactly at the
	// mark passes.
	PassMark float64

	// Weighting is the priority-ordered multiplier table. Empty means
	// binary scoring. When several rules match a question, the highest
	// multiplier wins; multipliers never stack.
	Weighting []policy.WeightRule
}

// Feedback is the per-question outcome returned to the caller.
type Feedback struct {
	QuestionID       string `json:"questionId"`
	SelectedOptionID string `json:"selectedOptionId"`
	CorrectOptionID  string `json:"correctOptionId"`
	IsCorrect        bool   `json:"isCorrect"`
	Rationale        string `json:"rationale,omitempty"`
}

// Result is the outcome of scoring one attempt.
type Result struct {
	// Score is the raw number of correct answers.
	Score int `json:"score"`

	// Percentage is rounded to 2 decimal places for display. Pass is
	// decided on the unrounded value.
	Percentage float64 `json:"percentage"`

	Pass           bool       `json:"pass"`
	TotalQuestions int        `json:"totalQuestions"`
	CorrectCount   int        `json:"correctCount"`
	WeakConceptIDs []string   `json:"weakConceptIds"`
	Feedback       []Feedback `json:"feedback"`
}

// Assess scores the submitted answers. An unanswered question counts as
// incorrect and stays in the denominator; an answer referencing an
// unknown question ID is ignored.
func Assess(questions []exam.Question, answers []exam.Answer, cfg Config) Result {
	byQuestion := make(map[string]exam.Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	res := Result{TotalQuestions: len(questions)}
	weakSet := make(map[string]bool)

	var totalWeight, earnedWeight float64

	for _, q := range questions {
		a, answered := byQuestion[q.ID]
		correct := answered && a.SelectedOptionID == q.CorrectOptionID
		if correct {
			res.CorrectCount++
		}

		w := questionWeight(q, cfg.Weighting)
		totalWeight += w
		if correct {
			earnedWeight += w
		}

		fb := Feedback{
			QuestionID:      q.ID,
			CorrectOptionID: q.CorrectOptionID,
			IsCorrect:       correct,
		}
		if answered {
			fb.SelectedOptionID = a.SelectedOptionID
		}
		fb.Rationale = rationaleFor(q, fb)
		res.Feedback = append(res.Feedback, fb)

		if !correct {
			for _, cid := range q.ConceptIDs {
				weakSet[cid] = true
			}
		}
	}

	var pct float64
	if totalWeight > 0 {
		pct = earnedWeight / totalWeight * 100
	}

	res.Score = res.CorrectCount
	res.Pass = pct >= cfg.PassMark
	res.Percentage = math.Round(pct*100) / 100

	res.WeakConceptIDs = make([]string, 0, len(weakSet))
	for cid := range weakSet {
		res.WeakConceptIDs = append(res.WeakConceptIDs, cid)
	}
	sort.Strings(res.WeakConceptIDs)

	return res
}

// questionWeight returns 1.0 or the highest multiplier among matching
// weighting rules.
func questionWeight(q exam.Question, rules []policy.WeightRule) float64 {
	w := 1.0
	for _, r := range rules {
		if r.Matches(q) && r.Multiplier > w {
			w = r.Multiplier
		}
	}
	return w
}

// rationaleFor prefers the explanation specific to the chosen incorrect
// option, falling back to the correct-option explanation.
func rationaleFor(q exam.Question, fb Feedback) string {
	if fb.IsCorrect {
		return q.Rationale.Correct
	}
	if fb.SelectedOptionID != "" {
		if r, ok := q.Rationale.Incorrect[fb.SelectedOptionID]; ok && r != "" {
			return r
		}
	}
	return q.Rationale.Correct
}

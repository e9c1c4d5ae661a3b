// Package examplan builds the deterministic question plan handed to the
// content generator. The backend controls coverage; the generator only
// fills content. Downstream composition validation enforces the plan, so
// coverage never depends on the generator's compliance.
package examplan

import (
	"fmt"
	"strings"

	"github.com/fasahat78/startege/internal/catalog"
)

// Slot pre-assigns concepts to one question before generation.
// Purely data, no behavior.
type Slot struct {
	QuestionNumber        int      `json:"questionNumber"`
	PrimaryConceptID      string   `json:"primaryConceptId"`
	AllowedConceptIDs     []string `json:"allowedConceptIds"`
	MaxConceptsInQuestion int      `json:"maxConceptsInQuestion"`
}

// BuildPlan assigns one concept to each question slot.
//
// questionCount == len(concepts): one slot per concept in concept order
// (the common case for unit levels). questionCount > len(concepts): one
// slot per concept, then round-robin for the remainder, still
// single-concept. questionCount < len(concepts) is a configuration error;
// levels are configured so it never happens for coverage-first levels.
func BuildPlan(concepts []catalog.Concept, questionCount int) ([]Slot, error) {
	if len(concepts) == 0 {
		return nil, fmt.Errorf("cannot plan an exam with no concepts")
	}
	if questionCount < len(concepts) {
		return nil, fmt.Errorf("question count (%d) below concept count (%d)", questionCount, len(concepts))
	}

	plan := make([]Slot, 0, questionCount)
	for i, c := range concepts {
		plan = append(plan, slotFor(c, i+1))
	}

	for i := 0; i < questionCount-len(concepts); i++ {
		c := concepts[i%len(concepts)]
		plan = append(plan, slotFor(c, len(concepts)+i+1))
	}

	return plan, nil
}

func slotFor(c catalog.Concept, number int) Slot {
	return Slot{
		QuestionNumber:        number,
		PrimaryConceptID:      c.ID,
		AllowedConceptIDs:     []string{c.ID},
		MaxConceptsInQuestion: 1,
	}
}

// FormatForPrompt renders the plan as one directive per line for the
// generation prompt.
func FormatForPrompt(plan []Slot) string {
	var b strings.Builder
	for _, s := range plan {
		fmt.Fprintf(&b, "Question %d: Test concept ID %q (exactly 1 concept, no multi-concept)\n", s.QuestionNumber, s.PrimaryConceptID)
	}
	return strings.TrimRight(b.String(), "\n")
}

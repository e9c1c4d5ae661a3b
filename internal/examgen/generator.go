package examgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/fasahat78/startege/internal/catalog"
	"github.com/fasahat78/startege/internal/exam"
	"github.com/fasahat78/startege/internal/examplan"
	"github.com/fasahat78/startege/internal/policy"
)

// Input describes the exam to generate: the slot, its concept scope,
// and the policy the question set must satisfy.
type Input struct {
	Type        exam.Type
	LevelNumber int    // zero for category exams
	CategoryID  string // empty for level and boss exams

	// Title and OutcomeStatement come from the level config and anchor
	// the prompt.
	Title            string
	OutcomeStatement string

	Policy policy.Policy

	// Scope is every concept the questions may reference.
	Scope []catalog.Concept

	// Plan is the per-question concept assignment. Level exams only.
	Plan []examplan.Slot

	// CanonicalCategoryIDs is the set of store-issued category IDs.
	CanonicalCategoryIDs map[string]bool

	// RequiredCategoryIDs must each appear in at least one question.
	// Boss exams only.
	RequiredCategoryIDs []string
}

// Output is an accepted, shuffled question set plus generation metadata.
type Output struct {
	Questions []exam.Question

	// Attempts is the number of generate-validate rounds it took.
	Attempts int

	// Warnings are non-blocking composition findings from the accepted
	// round, kept for observability.
	Warnings []string
}

// Generator produces one candidate question set per call.
// feedback carries the violations from the previous rejected round, to
// steer the next one; nil on the first round.
type Generator interface {
	Generate(ctx context.Context, input Input, feedback []string) ([]exam.Question, error)
}

// ContractError reports a response that broke the generation contract:
// wrong question count, malformed options, unknown tags. Always worth a
// regeneration.
type ContractError struct {
	Violations []string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("response violates generation contract: %s", strings.Join(e.Violations, "; "))
}

// CompositionError reports a question set that still failed composition
// validation after the retry budget was spent.
type CompositionError struct {
	Attempts int
	Errors   []string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("exam rejected after %d attempts: %s", e.Attempts, strings.Join(e.Errors, "; "))
}

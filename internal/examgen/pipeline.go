package examgen

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/fasahat78/startege/internal/catalog"
	"github.com/fasahat78/startege/internal/exam"
	"github.com/fasahat78/startege/internal/examcheck"
)

// phase is a step of the generation state machine.
type phase int

const (
	phaseGenerate phase = iota
	phaseValidate
	phaseAccept
	phaseFail
)

// Pipeline drives the bounded generate-validate loop:
//
//	Generate -> Validate -> Accept
//	                |-> Generate (retry, budget left, feedback attached)
//	                |-> Fail     (budget spent)
//
// Contract violations and composition errors both trigger a retry;
// composition warnings never block acceptance.
type Pipeline struct {
	gen Generator
	cfg Config
	rng *rand.Rand
}

// NewPipeline creates a pipeline over the given generator.
func NewPipeline(gen Generator, cfg Config) *Pipeline {
	return &Pipeline{
		gen: gen,
		cfg: cfg,
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Run executes the state machine until acceptance or failure.
func (p *Pipeline) Run(ctx context.Context, input Input) (*Output, error) {
	var (
		questions []exam.Question
		feedback  []string
		warnings  []string
		attempts  int
		lastErr   error
	)

	for ph := phaseGenerate; ; {
		switch ph {
		case phaseGenerate:
			attempts++
			qs, err := p.gen.Generate(ctx, input, feedback)
			if err != nil {
				// Provider failures are fatal; only rejected candidates
				// earn a retry.
				if attempts > 1 {
					return nil, fmt.Errorf("generation failed after %d attempts: %w", attempts, err)
				}
				return nil, err
			}
			questions = qs
			ph = phaseValidate

		case phaseValidate:
			// Structural contract first. Generators are not trusted to
			// have checked it; a malformed set must never reach the
			// shuffle or the composition validators.
			if v := contractViolations(questions, input.Policy.QuestionCount); len(v) > 0 {
				if attempts <= p.cfg.MaxRetries {
					feedback = v
					ph = phaseGenerate
					break
				}
				lastErr = &ContractError{Violations: v}
				ph = phaseFail
				break
			}

			res := validate(input, questions)
			if res.IsValid {
				warnings = res.Warnings
				ph = phaseAccept
				break
			}
			if attempts <= p.cfg.MaxRetries {
				feedback = res.Errors
				ph = phaseGenerate
				break
			}
			lastErr = &CompositionError{Attempts: attempts, Errors: res.Errors}
			ph = phaseFail

		case phaseAccept:
			return &Output{
				Questions: ShuffleOptions(questions, p.rng),
				Attempts:  attempts,
				Warnings:  warnings,
			}, nil

		case phaseFail:
			return nil, lastErr
		}
	}
}

// validate dispatches to the composition validator for the exam type.
func validate(input Input, questions []exam.Question) examcheck.Result {
	switch input.Type {
	case exam.TypeCategory:
		return examcheck.ValidateCategoryExam(questions, scopeSet(input.Scope), input.CategoryID)
	case exam.TypeBoss:
		return examcheck.ValidateBossExam(questions, input.Policy, scopeSet(input.Scope),
			input.CanonicalCategoryIDs, input.RequiredCategoryIDs)
	default:
		return examcheck.ValidateLevelExam(questions, input.Scope, input.CanonicalCategoryIDs)
	}
}

func scopeSet(concepts []catalog.Concept) map[string]bool {
	set := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		set[c.ID] = true
	}
	return set
}

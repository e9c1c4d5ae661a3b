package exams

import (
	"context"
	"fmt"
	"time"

	"github.com/fasahat78/startege/internal/assess"
	"github.com/fasahat78/startege/internal/catalog"
	"github.com/fasahat78/startege/internal/exam"
	"github.com/fasahat78/startege/internal/gate"
	"github.com/fasahat78/startege/internal/policy"
	"github.com/fasahat78/startege/internal/store"
)

// StartOutcome is the result of a start request. When the gate says no,
// Eligibility carries the reasons and Attempt stays nil; that is an
// ordinary negative result, not an error.
type StartOutcome struct {
	Eligibility gate.Eligibility
	Exam        *store.ExamRecord
	Attempt     *store.AttemptRecord
}

// SubmitOutcome is a scored, frozen attempt plus remediation advice.
type SubmitOutcome struct {
	Attempt *store.AttemptRecord
	Result  assess.Result

	// WeakConcepts resolves the weak concept IDs to authored concepts,
	// for targeted review.
	WeakConcepts []catalog.Concept
}

// StartAttempt checks eligibility for the exam's slot and, when
// eligible, opens a numbered attempt on the exam version.
func (s *Service) StartAttempt(ctx context.Context, userID, examID string) (*StartOutcome, error) {
	ex, err := s.exams.ByID(ctx, examID)
	if err != nil {
		return nil, err
	}

	elig, err := s.eligibilityForExam(ctx, userID, ex)
	if err != nil {
		return nil, err
	}
	if !elig.Eligible {
		return &StartOutcome{Eligibility: elig}, nil
	}

	att, err := s.attempts.Start(ctx, userID, examID)
	if err != nil {
		return nil, err
	}
	return &StartOutcome{Eligibility: elig, Exam: ex, Attempt: att}, nil
}

// SubmitAttempt scores the answers against the exact exam version the
// attempt was opened on, freezes the attempt, and folds the outcome
// into progress. Submitting twice returns store.ErrAlreadySubmitted.
func (s *Service) SubmitAttempt(ctx context.Context, attemptID string, answers []exam.Answer) (*SubmitOutcome, error) {
	att, err := s.attempts.Get(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	ex, err := s.exams.ByID(ctx, att.ExamID)
	if err != nil {
		return nil, err
	}

	pol, err := s.policyForExam(ex)
	if err != nil {
		return nil, err
	}

	res := assess.Assess(ex.Questions, answers, assess.Config{
		PassMark:  pol.PassMark,
		Weighting: pol.Weighting,
	})

	now := s.now()
	sub, err := s.attempts.Submit(ctx, attemptID, store.SubmitData{
		Answers:        answers,
		Score:          float64(res.Score),
		Percentage:     res.Percentage,
		Pass:           res.Pass,
		WeakConceptIDs: res.WeakConceptIDs,
		SubmittedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	if ex.Type == exam.TypeCategory {
		err = s.progress.RecordCategoryResult(ctx, att.UserID, ex.CategoryID, res.Pass, res.Percentage, now)
	} else {
		err = s.progress.RecordLevelResult(ctx, att.UserID, ex.LevelNumber, res.Pass, res.Percentage, now)
	}
	if err != nil {
		return nil, err
	}

	weak, err := s.catalogs.ConceptsByIDs(ctx, res.WeakConceptIDs)
	if err != nil {
		return nil, err
	}

	return &SubmitOutcome{Attempt: sub, Result: res, WeakConcepts: weak}, nil
}

// Eligibility evaluates the boss gate for a level without starting
// anything.
func (s *Service) Eligibility(ctx context.Context, userID string, level int) (gate.Eligibility, error) {
	return s.checker.Check(ctx, userID, level, s.now())
}

// Exam returns a stored exam version by ID.
func (s *Service) Exam(ctx context.Context, examID string) (*store.ExamRecord, error) {
	return s.exams.ByID(ctx, examID)
}

func (s *Service) eligibilityForExam(ctx context.Context, userID string, ex *store.ExamRecord) (gate.Eligibility, error) {
	switch ex.Type {
	case exam.TypeBoss:
		return s.checker.Check(ctx, userID, ex.LevelNumber, s.now())
	case exam.TypeCategory:
		pol := policy.CategoryPolicy(categoryQuestionCount, categoryPassMark)
		attempts, err := s.attempts.RecentAttemptsForCategory(ctx, userID, ex.CategoryID, attemptWindow)
		if err != nil {
			return gate.Eligibility{}, err
		}
		return cooldownEligibility(pol, attempts, s.now()), nil
	default:
		return s.unitEligibility(ctx, userID, ex.LevelNumber)
	}
}

// unitEligibility gates a unit level: the previous level must be passed
// and no cooldown may be active. Retaking a passed unit level is allowed.
func (s *Service) unitEligibility(ctx context.Context, userID string, level int) (gate.Eligibility, error) {
	if level > 1 {
		passed, err := s.progress.LevelPassed(ctx, userID, level-1)
		if err != nil {
			return gate.Eligibility{}, err
		}
		if !passed {
			return gate.Eligibility{
				Eligible: false,
				State:    gate.StateIneligible,
				Reasons:  []string{fmt.Sprintf("level %d must be passed first", level - 1)},
			}, nil
		}
	}

	pol, err := s.unitPolicy(ctx, level)
	if err != nil {
		return gate.Eligibility{}, err
	}
	attempts, err := s.attempts.RecentAttempts(ctx, userID, level, attemptWindow)
	if err != nil {
		return gate.Eligibility{}, err
	}
	return cooldownEligibility(pol, attempts, s.now()), nil
}

func (s *Service) unitPolicy(ctx context.Context, level int) (policy.Policy, error) {
	scope, err := s.resolver.LevelScope(ctx, level)
	if err != nil {
		return policy.Policy{}, err
	}
	return policy.ForLevel(level, len(scope))
}

func (s *Service) policyForExam(ex *store.ExamRecord) (policy.Policy, error) {
	switch ex.Type {
	case exam.TypeBoss:
		return policy.BossPolicy(ex.LevelNumber)
	case exam.TypeCategory:
		return policy.CategoryPolicy(categoryQuestionCount, categoryPassMark), nil
	default:
		cfg, ok := catalog.LevelConfigFor(ex.LevelNumber)
		if !ok {
			return policy.Policy{}, fmt.Errorf("unknown level %d", ex.LevelNumber)
		}
		return policy.UnitPolicy(len(ex.Questions), cfg.PassMark), nil
	}
}

func cooldownEligibility(pol policy.Policy, attempts []gate.AttemptRecord, now time.Time) gate.Eligibility {
	if end, ok := gate.CooldownEnd(pol, attempts); ok && now.Before(end) {
		return gate.Eligibility{
			Eligible:       false,
			State:          gate.StateCooldown,
			Reasons:        []string{fmt.Sprintf("cooldown active until %s", end.UTC().Format(time.RFC3339))},
			NextEligibleAt: &end,
		}
	}
	return gate.Eligibility{Eligible: true, State: gate.StateEligible, Reasons: []string{}}
}

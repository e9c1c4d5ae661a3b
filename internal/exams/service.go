// Package exams wires catalog, policy, generation, validation, scoring,
// and gating into the operations the API surface exposes.
package exams

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fasahat78/startege/internal/catalog"
	"github.com/fasahat78/startege/internal/exam"
	"github.com/fasahat78/startege/internal/examgen"
	"github.com/fasahat78/startege/internal/examplan"
	"github.com/fasahat78/startege/internal/gate"
	"github.com/fasahat78/startege/internal/policy"
	"github.com/fasahat78/startege/internal/store"
)

// Category exams share one blueprint platform-wide.
const (
	categoryQuestionCount = 20
	categoryPassMark      = 75
)

// attemptWindow mirrors the gate's failure-streak window.
const attemptWindow = 3

// Metadata records which provider produced generated exams.
type Metadata struct {
	Provider string
	Model    string
}

// Service implements the exam lifecycle: generate, start, submit, and
// eligibility.
type Service struct {
	resolver *catalog.Resolver
	catalogs *store.CatalogRepo
	exams    *store.ExamRepo
	attempts *store.AttemptRepo
	progress *store.ProgressRepo
	checker  *gate.Checker
	pipeline *examgen.Pipeline
	meta     Metadata
	now      func() time.Time
}

// NewService creates a Service over the given store and generation
// pipeline.
func NewService(st *store.Store, pipeline *examgen.Pipeline, meta Metadata) *Service {
	catalogs := st.CatalogRepo()
	return &Service{
		resolver: catalog.NewResolver(catalogs),
		catalogs: catalogs,
		exams:    st.ExamRepo(),
		attempts: st.AttemptRepo(),
		progress: st.ProgressRepo(),
		checker:  gate.NewChecker(st.GateStore()),
		pipeline: pipeline,
		meta:     meta,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// GenerateLevelExam generates, validates, and persists a new exam
// version for the level (unit or boss).
func (s *Service) GenerateLevelExam(ctx context.Context, levelNumber int) (*store.ExamRecord, error) {
	cfg, ok := catalog.LevelConfigFor(levelNumber)
	if !ok {
		return nil, fmt.Errorf("unknown level %d", levelNumber)
	}

	canonical, err := s.resolver.CanonicalCategoryIDs(ctx)
	if err != nil {
		return nil, err
	}

	var input examgen.Input
	if cfg.IsBoss {
		start, end := catalog.DecadeRange(levelNumber)
		scope, err := s.resolver.RangeScope(ctx, start, end)
		if err != nil {
			return nil, err
		}
		pol, err := policy.BossPolicy(levelNumber)
		if err != nil {
			return nil, err
		}
		required, err := s.catalogs.CategoriesForLevels(ctx, start, end)
		if err != nil {
			return nil, err
		}
		input = examgen.Input{
			Type:                 exam.TypeBoss,
			LevelNumber:          levelNumber,
			Title:                cfg.Title,
			OutcomeStatement:     cfg.OutcomeStatement,
			Policy:               pol,
			Scope:                scope,
			CanonicalCategoryIDs: canonical,
			RequiredCategoryIDs:  required,
		}
	} else {
		scope, err := s.resolver.LevelScope(ctx, levelNumber)
		if err != nil {
			return nil, err
		}
		pol, err := policy.ForLevel(levelNumber, len(scope))
		if err != nil {
			return nil, err
		}
		plan, err := examplan.BuildPlan(scope, pol.QuestionCount)
		if err != nil {
			return nil, err
		}
		input = examgen.Input{
			Type:                 exam.TypeLevel,
			LevelNumber:          levelNumber,
			Title:                cfg.Title,
			OutcomeStatement:     cfg.OutcomeStatement,
			Policy:               pol,
			Scope:                scope,
			Plan:                 plan,
			CanonicalCategoryIDs: canonical,
		}
	}

	return s.runAndSave(ctx, input)
}

// GenerateCategoryExam generates, validates, and persists a new exam
// version for a category.
func (s *Service) GenerateCategoryExam(ctx context.Context, categoryID string) (*store.ExamRecord, error) {
	scope, err := s.resolver.CategoryScope(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	canonical, err := s.resolver.CanonicalCategoryIDs(ctx)
	if err != nil {
		return nil, err
	}
	if !canonical[categoryID] {
		return nil, fmt.Errorf("unknown category %s", categoryID)
	}

	title := categoryID
	cats, err := s.catalogs.Categories(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range cats {
		if c.ID == categoryID {
			title = c.Name
		}
	}

	input := examgen.Input{
		Type:                 exam.TypeCategory,
		CategoryID:           categoryID,
		Title:                title,
		Policy:               policy.CategoryPolicy(categoryQuestionCount, categoryPassMark),
		Scope:                scope,
		CanonicalCategoryIDs: canonical,
	}
	return s.runAndSave(ctx, input)
}

func (s *Service) runAndSave(ctx context.Context, input examgen.Input) (*store.ExamRecord, error) {
	out, err := s.pipeline.Run(ctx, input)
	if err != nil {
		return nil, err
	}
	// Warnings never block; they flag soft targets (difficulty mix) the
	// accepted set missed.
	for _, w := range out.Warnings {
		log.Printf("composition warning: %s", w)
	}

	rec := &store.ExamRecord{
		Type:               input.Type,
		LevelNumber:        input.LevelNumber,
		CategoryID:         input.CategoryID,
		Questions:          out.Questions,
		Provider:           s.meta.Provider,
		Model:              s.meta.Model,
		GenerationAttempts: out.Attempts,
	}
	if err := s.exams.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Package policy defines exam blueprints: composition rules, scoring
// weights, pass marks, and cooldown schedules. One parameterized Policy
// value replaces the original per-tier constant modules; tiers differ
// only in data.
package policy

import (
	"fmt"
	"time"

	"github.com/fasahat78/startege/internal/catalog"
	"github.com/fasahat78/startege/internal/exam"
)

// WeightKind names a predicate a weighting rule matches against.
type WeightKind string

const (
	// WeightMultiConcept matches questions with 2+ concept IDs.
	WeightMultiConcept WeightKind = "multi-concept"

	// WeightJudgement matches questions tagged judgement.
	WeightJudgement WeightKind = "judgement"

	// WeightFourPlusDomains matches questions spanning 4+ category IDs.
	WeightFourPlusDomains WeightKind = "four-plus-domains"
)

// WeightRule assigns a multiplier to questions matching its kind.
// Rules never stack: scoring applies the highest applicable multiplier.
type WeightRule struct {
	Kind       WeightKind
	Multiplier float64
}

// Matches reports whether the rule applies to the question.
func (r WeightRule) Matches(q exam.Question) bool {
	switch r.Kind {
	case WeightMultiConcept:
		return q.MultiConcept()
	case WeightJudgement:
		return q.DifficultyTag == exam.TagJudgement
	case WeightFourPlusDomains:
		return len(q.CategoryIDs) >= 4
	}
	return false
}

// DifficultyMix is the target share of each difficulty tag across an exam.
// Checked with a tolerance band and reported as warnings only.
type DifficultyMix struct {
	Apply     float64
	Analyse   float64
	Judgement float64
}

// Policy is the full blueprint for one exam type and tier.
// Counts are the binding constraints; ratios are derived documentation.
type Policy struct {
	Type               exam.Type
	LevelNumber        int // boss level number; zero for category exams
	Group              catalog.SuperLevelGroup
	QuestionCount      int
	PassMark           float64
	OptionsPerQuestion int

	// Composition minimums (boss only; zero means unchecked).
	MinMultiConceptCount  int
	MinMultiConceptRatio  float64
	MinCrossCategoryCount int
	MinCrossCategoryRatio float64
	MinScenarioCount      int
	MinScenarioRatio      float64

	// MaxPerConcept caps how many questions any single concept may
	// appear in. Zero means uncapped.
	MaxPerConcept int

	// Mix is the soft difficulty-tag target, tolerance ±10pp.
	Mix DifficultyMix

	// Weighting is the priority-ordered multiplier table for scoring.
	// Empty means binary scoring.
	Weighting []WeightRule

	// Cooldown maps consecutive-failure count (1-based, capped at the
	// last entry) to the mandatory wait before the next attempt.
	Cooldown []time.Duration
}

// Weighted reports whether the policy uses weighted scoring.
func (p Policy) Weighted() bool { return len(p.Weighting) > 0 }

// CooldownFor returns the wait after n consecutive failures.
// Zero failures means no cooldown.
func (p Policy) CooldownFor(n int) time.Duration {
	if n <= 0 || len(p.Cooldown) == 0 {
		return 0
	}
	if n > len(p.Cooldown) {
		n = len(p.Cooldown)
	}
	return p.Cooldown[n-1]
}

// UnitPolicy is the coverage-first policy for non-boss level exams:
// question count equals concept count and every question tests exactly
// one concept. Binary scoring.
func UnitPolicy(conceptCount int, passMark float64) Policy {
	return Policy{
		Type:               exam.TypeLevel,
		QuestionCount:      conceptCount,
		PassMark:           passMark,
		OptionsPerQuestion: exam.OptionsPerQuestion,
		Cooldown:           []time.Duration{30 * time.Minute, 12 * time.Hour},
	}
}

// CategoryPolicy is the policy for category exams: repetition allowed,
// scope purity enforced, binary scoring.
func CategoryPolicy(questionCount int, passMark float64) Policy {
	return Policy{
		Type:               exam.TypeCategory,
		QuestionCount:      questionCount,
		PassMark:           passMark,
		OptionsPerQuestion: exam.OptionsPerQuestion,
		Cooldown:           []time.Duration{30 * time.Minute, 12 * time.Hour, 24 * time.Hour},
	}
}

// BossPolicy returns the blueprint for a boss tier (10, 20, 30, or 40).
func BossPolicy(levelNumber int) (Policy, error) {
	base := Policy{
		Type:               exam.TypeBoss,
		LevelNumber:        levelNumber,
		Group:              catalog.GroupForLevel(levelNumber),
		OptionsPerQuestion: exam.OptionsPerQuestion,
	}

	switch levelNumber {
	case 10:
		base.QuestionCount = 20
		base.PassMark = 75
		base.MinMultiConceptCount, base.MinMultiConceptRatio = 8, 0.4
		base.MinCrossCategoryCount, base.MinCrossCategoryRatio = 4, 0.2
		base.MinScenarioCount, base.MinScenarioRatio = 14, 0.7
		base.MaxPerConcept = 3
		base.Mix = DifficultyMix{Apply: 0.4, Analyse: 0.4, Judgement: 0.2}
		base.Weighting = []WeightRule{
			{Kind: WeightMultiConcept, Multiplier: 1.2},
		}
		base.Cooldown = []time.Duration{30 * time.Minute, 12 * time.Hour, 24 * time.Hour}

	case 20:
		base.QuestionCount = 20
		base.PassMark = 75
		base.MinMultiConceptCount, base.MinMultiConceptRatio = 14, 0.7
		base.MinCrossCategoryCount, base.MinCrossCategoryRatio = 14, 0.7
		base.MinScenarioCount, base.MinScenarioRatio = 14, 0.7
		base.MaxPerConcept = 4
		base.Mix = DifficultyMix{Apply: 0.35, Analyse: 0.35, Judgement: 0.3}
		base.Weighting = []WeightRule{
			{Kind: WeightJudgement, Multiplier: 1.3},
			{Kind: WeightMultiConcept, Multiplier: 1.2},
		}
		base.Cooldown = []time.Duration{24 * time.Hour, 48 * time.Hour, 48 * time.Hour}

	case 30:
		base.QuestionCount = 20
		base.PassMark = 80
		base.MinMultiConceptCount, base.MinMultiConceptRatio = 15, 0.75
		base.MinCrossCategoryCount, base.MinCrossCategoryRatio = 15, 0.75
		base.MinScenarioCount, base.MinScenarioRatio = 16, 0.8
		base.MaxPerConcept = 4
		base.Mix = DifficultyMix{Apply: 0.1, Analyse: 0.4, Judgement: 0.5}
		base.Weighting = []WeightRule{
			{Kind: WeightJudgement, Multiplier: 1.4},
			{Kind: WeightMultiConcept, Multiplier: 1.2},
		}
		base.Cooldown = []time.Duration{time.Hour}

	case 40:
		base.QuestionCount = 25
		base.PassMark = 85
		base.MinMultiConceptCount, base.MinMultiConceptRatio = 25, 1.0
		base.MinCrossCategoryCount, base.MinCrossCategoryRatio = 25, 1.0
		base.MinScenarioCount, base.MinScenarioRatio = 25, 1.0
		base.MaxPerConcept = 5
		base.Mix = DifficultyMix{Apply: 0.05, Analyse: 0.35, Judgement: 0.6}
		base.Weighting = []WeightRule{
			{Kind: WeightJudgement, Multiplier: 1.5},
			{Kind: WeightFourPlusDomains, Multiplier: 1.4},
			{Kind: WeightMultiConcept, Multiplier: 1.2},
		}
		base.Cooldown = []time.Duration{72 * time.Hour}

	default:
		return Policy{}, fmt.Errorf("no boss policy for level %d", levelNumber)
	}

	return base, nil
}

// ForLevel returns the policy for any level number, looking up the
// authored level config for unit levels.
func ForLevel(levelNumber, conceptCount int) (Policy, error) {
	cfg, ok := catalog.LevelConfigFor(levelNumber)
	if !ok {
		return Policy{}, fmt.Errorf("unknown level %d", levelNumber)
	}
	if cfg.IsBoss {
		return BossPolicy(levelNumber)
	}
	if conceptCount <= 0 {
		return Policy{}, fmt.Errorf("level %d has no concepts", levelNumber)
	}
	return UnitPolicy(conceptCount, cfg.PassMark), nil
}

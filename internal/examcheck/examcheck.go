// Package examcheck validates generated question sets against the
// exam-type composition rules. Coverage, scope, and frequency are hard
// invariants: they are cheap to check and expensive to get wrong, since a
// learner could otherwise be certified without ever being tested on a
// concept. Difficulty mix is a soft target, because it is a statistical
// property of free-text generation; failing hard on it would create an
// unresolvable retry loop.
package examcheck

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/fasahat78/startege/internal/catalog"
	"github.com/fasahat78/startege/internal/exam"
	"github.com/fasahat78/startege/internal/policy"
)

// Stats summarizes composition properties of a question set.
// Counts are authoritative; ratios are derived from them for display.
type Stats struct {
	TotalQuestions     int
	MultiConceptCount  int
	CrossCategoryCount int
	ScenarioCount      int
	ConceptFrequency   map[string]int
	CategoriesPresent  map[string]bool
	DifficultyCounts   map[exam.DifficultyTag]int
}

// Result is the outcome of a composition check.
type Result struct {
	IsValid  bool
	Errors   []string
	Warnings []string
	Stats    Stats
}

func newStats(questions []exam.Question) Stats {
	s := Stats{
		TotalQuestions:    len(questions),
		ConceptFrequency:  make(map[string]int),
		CategoriesPresent: make(map[string]bool),
		DifficultyCounts:  make(map[exam.DifficultyTag]int),
	}
	for _, q := range questions {
		if q.MultiConcept() {
			s.MultiConceptCount++
		}
		if q.CrossCategory() {
			s.CrossCategoryCount++
		}
		if exam.Scenario(q.DifficultyTag) {
			s.ScenarioCount++
		}
		for _, cid := range q.ConceptIDs {
			s.ConceptFrequency[cid]++
		}
		for _, catID := range q.CategoryIDs {
			s.CategoriesPresent[catID] = true
		}
		s.DifficultyCounts[q.DifficultyTag]++
	}
	return s
}

func finish(errs, warns []string, stats Stats) Result {
	return Result{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
		Stats:    stats,
	}
}

// ValidateLevelExam checks a coverage-first unit level exam: question
// count equals concept count, every question references exactly one
// in-scope concept, and the referenced concepts are a bijection onto the
// scope. Category IDs must be store-issued.
func ValidateLevelExam(questions []exam.Question, scope []catalog.Concept, canonicalCategoryIDs map[string]bool) Result {
	var errs, warns []string
	stats := newStats(questions)

	if len(questions) != len(scope) {
		errs = append(errs, fmt.Sprintf("question count (%d) must equal concept count (%d)", len(questions), len(scope)))
	}

	inScope := make(map[string]bool, len(scope))
	for _, c := range scope {
		inScope[c.ID] = true
	}

	for _, q := range questions {
		if len(q.ConceptIDs) == 0 {
			errs = append(errs, fmt.Sprintf("question %s: missing conceptIds", q.ID))
			continue
		}
		if len(q.ConceptIDs) != 1 {
			errs = append(errs, fmt.Sprintf("question %s: level exam questions must reference exactly one concept (found %d)", q.ID, len(q.ConceptIDs)))
		}
		for _, cid := range q.ConceptIDs {
			if !inScope[cid] {
				errs = append(errs, fmt.Sprintf("question %s: conceptId %q is outside allowed scope", q.ID, cid))
			}
		}
	}

	// Coverage is exact: each concept in exactly one question. A concept
	// appearing twice is not coverage, it is a gap somewhere else.
	for _, c := range scope {
		switch n := stats.ConceptFrequency[c.ID]; {
		case n == 0:
			errs = append(errs, fmt.Sprintf("missing concept coverage: %s (%s)", c.ID, c.Name))
		case n > 1:
			errs = append(errs, fmt.Sprintf("concept %s (%s) covered by %d questions, expected exactly 1", c.ID, c.Name, n))
		}
	}

	for _, q := range questions {
		if len(q.CategoryIDs) == 0 {
			warns = append(warns, fmt.Sprintf("question %s: missing categoryIds", q.ID))
			continue
		}
		var bad []string
		for _, catID := range q.CategoryIDs {
			if !canonicalCategoryIDs[catID] {
				bad = append(bad, catID)
			}
		}
		if len(bad) > 0 {
			errs = append(errs, fmt.Sprintf("question %s: non-canonical categoryIds: %s", q.ID, strings.Join(bad, ", ")))
		}
	}

	return finish(errs, warns, stats)
}

// ValidateCategoryExam checks scope purity for a category exam: every
// concept referenced must belong to the category, and the only category
// ID allowed is the target itself. Repetition is allowed and there is no
// coverage requirement. Missing IDs downgrade to warnings to tolerate
// partial upstream metadata.
func ValidateCategoryExam(questions []exam.Question, allowedConceptIDs map[string]bool, requiredCategoryID string) Result {
	var errs, warns []string
	stats := newStats(questions)

	for _, q := range questions {
		if len(q.ConceptIDs) == 0 {
			warns = append(warns, fmt.Sprintf("question %s: missing conceptIds", q.ID))
		} else {
			var outOfScope []string
			for _, cid := range q.ConceptIDs {
				if !allowedConceptIDs[cid] {
					outOfScope = append(outOfScope, cid)
				}
			}
			if len(outOfScope) > 0 {
				errs = append(errs, fmt.Sprintf("question %s: conceptIds outside category scope: %s", q.ID, strings.Join(outOfScope, ", ")))
			}
		}

		if len(q.CategoryIDs) == 0 {
			warns = append(warns, fmt.Sprintf("question %s: missing categoryIds", q.ID))
			continue
		}
		// Any foreign category ID is a violation, even alongside the
		// correct one.
		var invalid []string
		for _, catID := range q.CategoryIDs {
			if catID != requiredCategoryID {
				invalid = append(invalid, catID)
			}
		}
		if len(invalid) > 0 {
			errs = append(errs, fmt.Sprintf("question %s: categoryIds must be only %q, found: %s", q.ID, requiredCategoryID, strings.Join(q.CategoryIDs, ", ")))
		}
	}

	return finish(errs, warns, stats)
}

// ValidateBossExam checks an integration exam against its tier policy:
// strict decade scope, canonical category IDs, per-concept frequency cap,
// required-category presence, and the multi-concept / cross-category /
// scenario minimum counts. Difficulty-mix misses are warnings only.
func ValidateBossExam(questions []exam.Question, pol policy.Policy, allowedConceptIDs, canonicalCategoryIDs map[string]bool, requiredCategoryIDs []string) Result {
	var errs, warns []string
	stats := newStats(questions)

	if len(questions) != pol.QuestionCount {
		errs = append(errs, fmt.Sprintf("question count (%d) must equal %d", len(questions), pol.QuestionCount))
	}

	for _, q := range questions {
		for _, cid := range q.ConceptIDs {
			if !allowedConceptIDs[cid] {
				errs = append(errs, fmt.Sprintf("question %s: conceptId %q is outside allowed scope", q.ID, cid))
			}
		}
		for _, catID := range q.CategoryIDs {
			if !canonicalCategoryIDs[catID] {
				errs = append(errs, fmt.Sprintf("question %s: categoryId %q is not canonical", q.ID, catID))
			}
		}
	}

	if pol.MaxPerConcept > 0 {
		// Deterministic error order regardless of map iteration.
		ids := make([]string, 0, len(stats.ConceptFrequency))
		for cid := range stats.ConceptFrequency {
			ids = append(ids, cid)
		}
		sort.Strings(ids)
		for _, cid := range ids {
			if n := stats.ConceptFrequency[cid]; n > pol.MaxPerConcept {
				errs = append(errs, fmt.Sprintf("concept %s appears in %d questions (max: %d)", cid, n, pol.MaxPerConcept))
			}
		}
	}

	var missing []string
	for _, catID := range requiredCategoryIDs {
		if !stats.CategoriesPresent[catID] {
			missing = append(missing, catID)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Sprintf("missing required categories: %s", strings.Join(missing, ", ")))
	}

	// Counts are the binding constraints. The ratios in the policy are
	// documentation derived from them, never re-derived here.
	if stats.MultiConceptCount < pol.MinMultiConceptCount {
		errs = append(errs, fmt.Sprintf("multi-concept questions: %d (required: %d)", stats.MultiConceptCount, pol.MinMultiConceptCount))
	}
	if stats.CrossCategoryCount < pol.MinCrossCategoryCount {
		errs = append(errs, fmt.Sprintf("cross-category questions: %d (required: %d)", stats.CrossCategoryCount, pol.MinCrossCategoryCount))
	}
	if stats.ScenarioCount < pol.MinScenarioCount {
		errs = append(errs, fmt.Sprintf("scenario-based questions: %d (required: %d)", stats.ScenarioCount, pol.MinScenarioCount))
	}

	warns = append(warns, mixWarnings(stats, pol.Mix)...)

	return finish(errs, warns, stats)
}

// mixTolerance is the band around each difficulty-mix target, in
// percentage points, within which no warning is raised.
const mixTolerance = 0.10

func mixWarnings(stats Stats, mix policy.DifficultyMix) []string {
	total := stats.DifficultyCounts[exam.TagApply] +
		stats.DifficultyCounts[exam.TagAnalyse] +
		stats.DifficultyCounts[exam.TagJudgement]
	if total == 0 {
		return nil
	}

	var warns []string
	check := func(tag exam.DifficultyTag, target float64) {
		if target == 0 {
			return
		}
		ratio := float64(stats.DifficultyCounts[tag]) / float64(total)
		if math.Abs(ratio-target) > mixTolerance {
			warns = append(warns, fmt.Sprintf("%s difficulty: %.1f%% (target: %.1f%%)", tag, ratio*100, target*100))
		}
	}
	check(exam.TagApply, mix.Apply)
	check(exam.TagAnalyse, mix.Analyse)
	check(exam.TagJudgement, mix.Judgement)
	return warns
}

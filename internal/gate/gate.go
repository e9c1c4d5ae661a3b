// Package gate decides whether a user may start a boss exam: prerequisite
// levels and category exams must be passed, and an escalating cooldown
// applies after failed attempts. Eligibility is recomputed from attempt
// history on every check; no expiry is ever stored, so clock changes and
// late queries resolve correctly.
package gate

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fasahat78/startege/internal/catalog"
	"github.com/fasahat78/startege/internal/policy"
)

// State is a user's standing toward one boss exam.
type State string

const (
	// StateIneligible means prerequisites are not yet met.
	StateIneligible State = "INELIGIBLE"

	// StateEligible means the exam may be started now.
	StateEligible State = "ELIGIBLE"

	// StateCooldown means a mandatory wait after failure is active.
	StateCooldown State = "COOLDOWN"

	// StatePassed is terminal; a pass is permanent and never revoked.
	StatePassed State = "PASSED"
)

// AttemptRecord is the slice of a submitted attempt the gate needs.
type AttemptRecord struct {
	Pass        bool
	SubmittedAt time.Time
}

// Store is the progress/attempt access the gate requires. Cooldown reads
// need read-your-own-writes consistency for the same user, or a user
// could pass a stale check immediately after failing.
type Store interface {
	// LevelPassed reports whether the user has passed the level.
	LevelPassed(ctx context.Context, userID string, level int) (bool, error)

	// PassedLevels returns the set of level numbers the user has passed.
	PassedLevels(ctx context.Context, userID string) (map[int]bool, error)

	// PassedCategories returns the category IDs whose exams the user
	// has passed.
	PassedCategories(ctx context.Context, userID string) (map[string]bool, error)

	// RecentAttempts returns the user's submitted attempts for the
	// level's exam, newest first, at most limit records.
	RecentAttempts(ctx context.Context, userID string, level int, limit int) ([]AttemptRecord, error)

	// CategoriesForLevels returns the IDs of categories introduced in
	// the level range [start, end].
	CategoriesForLevels(ctx context.Context, start, end int) ([]string, error)

	// AllCategories returns every authored category ID.
	AllCategories(ctx context.Context) ([]string, error)
}

// Eligibility is the outcome of a gate check. Ineligibility is an
// ordinary negative result, not an error.
type Eligibility struct {
	Eligible       bool       `json:"eligible"`
	State          State      `json:"state"`
	Reasons        []string   `json:"reasons"`
	NextEligibleAt *time.Time `json:"nextEligibleAt,omitempty"`
}

// attemptWindow caps how far back the failure streak is inspected.
const attemptWindow = 3

// ConsecutiveFailures counts failed attempts from the most recent
// backwards, stopping at the first pass, inspecting at most the last
// three submitted attempts.
func ConsecutiveFailures(attempts []AttemptRecord) int {
	n := 0
	for i, a := range attempts {
		if i >= attemptWindow || a.Pass {
			break
		}
		n++
	}
	return n
}

// CooldownEnd returns when the active cooldown expires, if one exists.
// The end is always lastFailure.SubmittedAt + schedule duration; whether
// it has already elapsed is for the caller to decide against its own now.
func CooldownEnd(pol policy.Policy, attempts []AttemptRecord) (time.Time, bool) {
	failures := ConsecutiveFailures(attempts)
	if failures == 0 {
		return time.Time{}, false
	}
	wait := pol.CooldownFor(failures)
	if wait == 0 {
		return time.Time{}, false
	}
	return attempts[0].SubmittedAt.Add(wait), true
}

// Checker evaluates boss-exam eligibility against persisted progress.
type Checker struct {
	store Store
}

// NewChecker creates a Checker over the given store.
func NewChecker(s Store) *Checker {
	return &Checker{store: s}
}

// Check evaluates eligibility for the boss exam at the given level.
// The terminal level applies the absolute gate: every level below it and
// every category exam platform-wide must be passed.
func (c *Checker) Check(ctx context.Context, userID string, level int, now time.Time) (Eligibility, error) {
	if !catalog.BossLevel(level) {
		return Eligibility{}, fmt.Errorf("level %d is not a boss level", level)
	}

	passed, err := c.store.LevelPassed(ctx, userID, level)
	if err != nil {
		return Eligibility{}, fmt.Errorf("check level %d progress: %w", level, err)
	}
	if passed {
		return Eligibility{Eligible: false, State: StatePassed, Reasons: []string{fmt.Sprintf("level %d is already passed", level)}}, nil
	}

	var reasons []string
	if level == catalog.TerminalLevel {
		reasons, err = c.terminalPrerequisites(ctx, userID)
	} else {
		reasons, err = c.decadePrerequisites(ctx, userID, level)
	}
	if err != nil {
		return Eligibility{}, err
	}
	if len(reasons) > 0 {
		return Eligibility{Eligible: false, State: StateIneligible, Reasons: reasons}, nil
	}

	pol, err := policy.BossPolicy(level)
	if err != nil {
		return Eligibility{}, err
	}
	attempts, err := c.store.RecentAttempts(ctx, userID, level, attemptWindow)
	if err != nil {
		return Eligibility{}, fmt.Errorf("load attempts for level %d: %w", level, err)
	}
	if end, ok := CooldownEnd(pol, attempts); ok && now.Before(end) {
		return Eligibility{
			Eligible:       false,
			State:          StateCooldown,
			Reasons:        []string{fmt.Sprintf("cooldown active until %s", end.UTC().Format(time.RFC3339))},
			NextEligibleAt: &end,
		}, nil
	}

	return Eligibility{Eligible: true, State: StateEligible, Reasons: []string{}}, nil
}

// decadePrerequisites checks that all unit levels in the decade and all
// category exams for categories introduced in it are passed.
func (c *Checker) decadePrerequisites(ctx context.Context, userID string, level int) ([]string, error) {
	start, end := catalog.DecadeRange(level)

	passedLevels, err := c.store.PassedLevels(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load passed levels: %w", err)
	}

	var reasons []string
	var missingLevels []int
	for n := start; n <= end; n++ {
		if !passedLevels[n] {
			missingLevels = append(missingLevels, n)
		}
	}
	if len(missingLevels) > 0 {
		reasons = append(reasons, fmt.Sprintf("levels not passed: %s", formatLevels(missingLevels)))
	}

	required, err := c.store.CategoriesForLevels(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load decade categories: %w", err)
	}
	missing, err := c.missingCategories(ctx, userID, required)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		reasons = append(reasons, fmt.Sprintf("category exams not passed: %s", joinIDs(missing)))
	}

	return reasons, nil
}

// terminalPrerequisites applies the absolute gate: no partial-credit path.
func (c *Checker) terminalPrerequisites(ctx context.Context, userID string) ([]string, error) {
	passedLevels, err := c.store.PassedLevels(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load passed levels: %w", err)
	}

	var reasons []string
	var missingLevels []int
	for n := 1; n < catalog.TerminalLevel; n++ {
		if !passedLevels[n] {
			missingLevels = append(missingLevels, n)
		}
	}
	if len(missingLevels) > 0 {
		reasons = append(reasons, fmt.Sprintf("levels not passed: %s", formatLevels(missingLevels)))
	}

	all, err := c.store.AllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	missing, err := c.missingCategories(ctx, userID, all)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		reasons = append(reasons, fmt.Sprintf("category exams not passed: %s", joinIDs(missing)))
	}

	return reasons, nil
}

func (c *Checker) missingCategories(ctx context.Context, userID string, required []string) ([]string, error) {
	passed, err := c.store.PassedCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load passed categories: %w", err)
	}
	var missing []string
	for _, id := range required {
		if !passed[id] {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)
	return missing, nil
}

// formatLevels renders at most five level numbers, then an ellipsis.
func formatLevels(levels []int) string {
	const max = 5
	s := ""
	for i, n := range levels {
		if i == max {
			return s + ", ..."
		}
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d", n)
	}
	return s
}

func joinIDs(ids []string) string {
	const max = 5
	s := ""
	for i, id := range ids {
		if i == max {
			return s + ", ..."
		}
		if i > 0 {
			s += ", "
		}
		s += id
	}
	return s
}

package gate

import (
	"context"
	"testing"
	"time"

	"github.com/fasahat78/startege/internal/policy"
)

// mockStore implements Store for testing.
type mockStore struct {
	passedLevels     map[int]bool
	passedCategories map[string]bool
	attempts         []AttemptRecord
	decadeCategories []string
	allCategories    []string
}

func (m *mockStore) LevelPassed(_ context.Context, _ string, level int) (bool, error) {
	return m.passedLevels[level], nil
}
func (m *mockStore) PassedLevels(_ context.Context, _ string) (map[int]bool, error) {
	return m.passedLevels, nil
}
func (m *mockStore) PassedCategories(_ context.Context, _ string) (map[string]bool, error) {
	return m.passedCategories, nil
}
func (m *mockStore) RecentAttempts(_ context.Context, _ string, _ int, limit int) ([]AttemptRecord, error) {
	if len(m.attempts) > limit {
		return m.attempts[:limit], nil
	}
	return m.attempts, nil
}
func (m *mockStore) CategoriesForLevels(_ context.Context, _, _ int) ([]string, error) {
	return m.decadeCategories, nil
}
func (m *mockStore) AllCategories(_ context.Context) ([]string, error) {
	return m.allCategories, nil
}

func readyStore() *mockStore {
	passed := make(map[int]bool)
	for n := 1; n <= 9; n++ {
		passed[n] = true
	}
	return &mockStore{
		passedLevels:     passed,
		passedCategories: map[string]bool{"cat-1": true, "cat-2": true},
		decadeCategories: []string{"cat-1", "cat-2"},
	}
}

func TestConsecutiveFailures(t *testing.T) {
	now := time.Now()
	fail := AttemptRecord{Pass: false, SubmittedAt: now}
	pass := AttemptRecord{Pass: true, SubmittedAt: now}

	cases := []struct {
		name     string
		attempts []AttemptRecord
		want     int
	}{
		{"none", nil, 0},
		{"single failure", []AttemptRecord{fail}, 1},
		{"two failures", []AttemptRecord{fail, fail}, 2},
		{"pass resets streak", []AttemptRecord{fail, pass, fail}, 1},
		{"pass on top", []AttemptRecord{pass, fail, fail}, 0},
		{"capped at window", []AttemptRecord{fail, fail, fail, fail, fail}, 3},
	}
	for _, tc := range cases {
		if got := ConsecutiveFailures(tc.attempts); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestCooldownMonotonicity(t *testing.T) {
	for _, level := range []int{10, 20, 30, 40} {
		pol, err := policy.BossPolicy(level)
		if err != nil {
			t.Fatalf("level %d: %v", level, err)
		}
		prev := time.Duration(0)
		for n := 1; n <= 5; n++ {
			d := pol.CooldownFor(n)
			if d < prev {
				t.Errorf("level %d: cooldown(%d)=%v < cooldown(%d)=%v", level, n, d, n-1, prev)
			}
			prev = d
		}
	}
}

func TestCheck_EligibleWhenPrerequisitesMet(t *testing.T) {
	c := NewChecker(readyStore())
	el, err := c.Check(context.Background(), "user-1", 10, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !el.Eligible || el.State != StateEligible {
		t.Errorf("expected eligible, got %+v", el)
	}
}

func TestCheck_MissingUnitLevel(t *testing.T) {
	st := readyStore()
	delete(st.passedLevels, 7)

	el, err := NewChecker(st).Check(context.Background(), "user-1", 10, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el.Eligible || el.State != StateIneligible {
		t.Errorf("expected ineligible, got %+v", el)
	}
	if len(el.Reasons) == 0 {
		t.Error("expected a reason naming the missing level")
	}
}

func TestCheck_MissingCategoryExam(t *testing.T) {
	st := readyStore()
	delete(st.passedCategories, "cat-2")

	el, err := NewChecker(st).Check(context.Background(), "user-1", 10, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el.Eligible {
		t.Errorf("expected ineligible, got %+v", el)
	}
}

func TestCheck_PassedIsTerminal(t *testing.T) {
	st := readyStore()
	st.passedLevels[10] = true
	// Even with recent failures on file, a pass is permanent.
	st.attempts = []AttemptRecord{{Pass: false, SubmittedAt: time.Now()}}

	el, err := NewChecker(st).Check(context.Background(), "user-1", 10, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el.State != StatePassed {
		t.Errorf("expected PASSED, got %+v", el)
	}
}

func TestCheck_CooldownEscalation(t *testing.T) {
	// Tier schedule 30m / 12h / 24h; after the 2nd consecutive failure
	// the gate must report nextEligibleAt = secondFailure + 12h.
	secondFailure := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	st := readyStore()
	st.attempts = []AttemptRecord{
		{Pass: false, SubmittedAt: secondFailure},
		{Pass: false, SubmittedAt: secondFailure.Add(-2 * time.Hour)},
	}

	now := secondFailure.Add(time.Minute)
	el, err := NewChecker(st).Check(context.Background(), "user-1", 10, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el.Eligible || el.State != StateCooldown {
		t.Fatalf("expected cooldown, got %+v", el)
	}
	want := secondFailure.Add(12 * time.Hour)
	if el.NextEligibleAt == nil || !el.NextEligibleAt.Equal(want) {
		t.Errorf("expected nextEligibleAt %v, got %v", want, el.NextEligibleAt)
	}
}

func TestCheck_CooldownElapsed(t *testing.T) {
	failAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	st := readyStore()
	st.attempts = []AttemptRecord{{Pass: false, SubmittedAt: failAt}}

	// First failure cooldown is 30 minutes; check 31 minutes later.
	el, err := NewChecker(st).Check(context.Background(), "user-1", 10, failAt.Add(31*time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !el.Eligible {
		t.Errorf("cooldown elapsed, expected eligible: %+v", el)
	}
}

func TestCheck_PassBetweenFailuresResetsStreak(t *testing.T) {
	failAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	st := readyStore()
	st.attempts = []AttemptRecord{
		{Pass: false, SubmittedAt: failAt},
		{Pass: true, SubmittedAt: failAt.Add(-time.Hour)},
		{Pass: false, SubmittedAt: failAt.Add(-2 * time.Hour)},
	}

	// One consecutive failure: 30m cooldown, not 12h.
	el, err := NewChecker(st).Check(context.Background(), "user-1", 10, failAt.Add(31*time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !el.Eligible {
		t.Errorf("expected eligible after short cooldown, got %+v", el)
	}
}

func TestCheck_TerminalAbsoluteGate(t *testing.T) {
	passed := make(map[int]bool)
	for n := 1; n < 40; n++ {
		passed[n] = true
	}
	st := &mockStore{
		passedLevels:     passed,
		passedCategories: map[string]bool{"cat-1": true, "cat-2": true, "cat-3": true},
		allCategories:    []string{"cat-1", "cat-2", "cat-3"},
	}

	el, err := NewChecker(st).Check(context.Background(), "user-1", 40, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !el.Eligible {
		t.Fatalf("expected eligible, got %+v", el)
	}

	// Any single gap anywhere blocks the terminal gate.
	delete(st.passedLevels, 17)
	el, err = NewChecker(st).Check(context.Background(), "user-1", 40, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el.Eligible {
		t.Errorf("expected ineligible with level 17 missing, got %+v", el)
	}

	st.passedLevels[17] = true
	delete(st.passedCategories, "cat-3")
	el, err = NewChecker(st).Check(context.Background(), "user-1", 40, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el.Eligible {
		t.Errorf("expected ineligible with cat-3 exam missing, got %+v", el)
	}
}

func TestCheck_NonBossLevelRejected(t *testing.T) {
	_, err := NewChecker(readyStore()).Check(context.Background(), "user-1", 7, time.Now())
	if err == nil {
		t.Fatal("expected error for non-boss level")
	}
}

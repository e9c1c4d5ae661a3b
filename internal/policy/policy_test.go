package policy

import (
	"testing"
	"time"

	"github.com/fasahat78/startege/internal/exam"
)

func TestUnitPolicy(t *testing.T) {
	p := UnitPolicy(12, 70)
	if p.Type != exam.TypeLevel {
		t.Errorf("type = %s, want LEVEL", p.Type)
	}
	if p.QuestionCount != 12 {
		t.Errorf("question count = %d, want 12", p.QuestionCount)
	}
	if p.PassMark != 70 {
		t.Errorf("pass mark = %v, want 70", p.PassMark)
	}
	if p.Weighted() {
		t.Error("unit exams score binary, not weighted")
	}
	if got := p.CooldownFor(1); got != 30*time.Minute {
		t.Errorf("cooldown after 1 failure = %v, want 30m", got)
	}
	if got := p.CooldownFor(2); got != 12*time.Hour {
		t.Errorf("cooldown after 2 failures = %v, want 12h", got)
	}
}

func TestCooldownForCapsAtSchedule(t *testing.T) {
	p := CategoryPolicy(20, 75)
	if got := p.CooldownFor(0); got != 0 {
		t.Errorf("cooldown with no failures = %v, want 0", got)
	}
	// Beyond the schedule the last entry repeats.
	if got := p.CooldownFor(7); got != 24*time.Hour {
		t.Errorf("cooldown after 7 failures = %v, want 24h", got)
	}
}

func TestBossPolicyTiers(t *testing.T) {
	tests := []struct {
		level     int
		questions int
		passMark  float64
		weighted  bool
	}{
		{10, 20, 75, true},
		{20, 20, 75, true},
		{30, 20, 80, true},
		{40, 25, 85, true},
	}
	for _, tt := range tests {
		p, err := BossPolicy(tt.level)
		if err != nil {
			t.Fatalf("BossPolicy(%d): %v", tt.level, err)
		}
		if p.QuestionCount != tt.questions {
			t.Errorf("level %d question count = %d, want %d", tt.level, p.QuestionCount, tt.questions)
		}
		if p.PassMark != tt.passMark {
			t.Errorf("level %d pass mark = %v, want %v", tt.level, p.PassMark, tt.passMark)
		}
		if p.Weighted() != tt.weighted {
			t.Errorf("level %d weighted = %v, want %v", tt.level, p.Weighted(), tt.weighted)
		}
		if p.MinScenarioCount == 0 {
			t.Errorf("level %d has no scenario minimum", tt.level)
		}
	}
}

func TestBossPolicyUnknownLevel(t *testing.T) {
	if _, err := BossPolicy(15); err == nil {
		t.Fatal("expected error for non-boss level")
	}
}

func TestTerminalBossRequiresFullIntegration(t *testing.T) {
	p, err := BossPolicy(40)
	if err != nil {
		t.Fatalf("BossPolicy(40): %v", err)
	}
	if p.MinMultiConceptRatio != 1.0 || p.MinCrossCategoryRatio != 1.0 || p.MinScenarioRatio != 1.0 {
		t.Errorf("terminal boss must require every question to integrate: %+v", p)
	}
}

func TestForLevelDispatch(t *testing.T) {
	unit, err := ForLevel(3, 10)
	if err != nil {
		t.Fatalf("ForLevel(3): %v", err)
	}
	if unit.Type != exam.TypeLevel || unit.QuestionCount != 10 {
		t.Errorf("unexpected unit policy: %+v", unit)
	}

	boss, err := ForLevel(10, 0)
	if err != nil {
		t.Fatalf("ForLevel(10): %v", err)
	}
	if boss.Type != exam.TypeBoss {
		t.Errorf("type = %s, want BOSS", boss.Type)
	}

	if _, err := ForLevel(41, 5); err == nil {
		t.Error("expected error for level out of range")
	}
	if _, err := ForLevel(3, 0); err == nil {
		t.Error("expected error for unit level with no concepts")
	}
}

func TestWeightRuleMatches(t *testing.T) {
	multi := exam.Question{ConceptIDs: []string{"c1", "c2"}}
	judge := exam.Question{ConceptIDs: []string{"c1"}, DifficultyTag: exam.TagJudgement}
	wide := exam.Question{CategoryIDs: []string{"a", "b", "c", "d"}}

	if !(WeightRule{Kind: WeightMultiConcept}).Matches(multi) {
		t.Error("multi-concept rule should match a 2-concept question")
	}
	if (WeightRule{Kind: WeightMultiConcept}).Matches(judge) {
		t.Error("multi-concept rule should not match a 1-concept question")
	}
	if !(WeightRule{Kind: WeightJudgement}).Matches(judge) {
		t.Error("judgement rule should match a judgement question")
	}
	if !(WeightRule{Kind: WeightFourPlusDomains}).Matches(wide) {
		t.Error("four-plus-domains rule should match a 4-category question")
	}
}

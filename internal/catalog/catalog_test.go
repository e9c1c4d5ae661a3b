package catalog

import (
	"context"
	"testing"
)

func TestLevelConfigsCurriculumShape(t *testing.T) {
	if len(LevelConfigs) != TerminalLevel {
		t.Fatalf("curriculum has %d levels, want %d", len(LevelConfigs), TerminalLevel)
	}
	for i, cfg := range LevelConfigs {
		if cfg.Number != i+1 {
			t.Errorf("level at index %d numbered %d", i, cfg.Number)
		}
		if cfg.IsBoss != BossLevel(cfg.Number) {
			t.Errorf("level %d boss flag = %v, want %v", cfg.Number, cfg.IsBoss, BossLevel(cfg.Number))
		}
		if cfg.PassMark < 70 || cfg.PassMark > 85 {
			t.Errorf("level %d pass mark %v outside 70-85", cfg.Number, cfg.PassMark)
		}
	}
}

func TestLevelConfigForBounds(t *testing.T) {
	if _, ok := LevelConfigFor(0); ok {
		t.Error("level 0 should not resolve")
	}
	if _, ok := LevelConfigFor(41); ok {
		t.Error("level 41 should not resolve")
	}
	cfg, ok := LevelConfigFor(10)
	if !ok || !cfg.IsBoss {
		t.Errorf("level 10 = %+v, want boss", cfg)
	}
}

func TestDecadeRange(t *testing.T) {
	tests := []struct {
		boss, start, end int
	}{
		{10, 1, 9},
		{20, 11, 19},
		{30, 21, 29},
		{40, 1, 39}, // terminal boss integrates everything
	}
	for _, tt := range tests {
		start, end := DecadeRange(tt.boss)
		if start != tt.start || end != tt.end {
			t.Errorf("DecadeRange(%d) = %d-%d, want %d-%d", tt.boss, start, end, tt.start, tt.end)
		}
	}
}

func TestGroupForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  SuperLevelGroup
	}{
		{1, GroupFoundation},
		{10, GroupFoundation},
		{11, GroupBuilding},
		{25, GroupAdvanced},
		{40, GroupMastery},
	}
	for _, tt := range tests {
		if got := GroupForLevel(tt.level); got != tt.want {
			t.Errorf("GroupForLevel(%d) = %s, want %s", tt.level, got, tt.want)
		}
	}
}

// fakeReader is an in-memory Reader for resolver tests.
type fakeReader struct {
	byLevel    map[int][]Concept
	byCategory map[string][]Concept
	categories []Category
}

func (f *fakeReader) ConceptsForLevels(_ context.Context, start, end int) ([]Concept, error) {
	var out []Concept
	for n := start; n <= end; n++ {
		out = append(out, f.byLevel[n]...)
	}
	return out, nil
}

func (f *fakeReader) ConceptsForCategory(_ context.Context, categoryID string) ([]Concept, error) {
	return f.byCategory[categoryID], nil
}

func (f *fakeReader) Categories(_ context.Context) ([]Category, error) {
	return f.categories, nil
}

func testReader() *fakeReader {
	c1 := Concept{ID: "c1", Name: "Lawful basis", CategoryID: "cat-gdpr"}
	c2 := Concept{ID: "c2", Name: "Data minimisation", CategoryID: "cat-gdpr"}
	c3 := Concept{ID: "c3", Name: "Risk tiers", CategoryID: "cat-risk"}
	return &fakeReader{
		byLevel: map[int][]Concept{
			1: {c1, c2},
			2: {c3, c1}, // c1 revisited on level 2
		},
		byCategory: map[string][]Concept{
			"cat-gdpr": {c1, c2},
			"cat-risk": {c3},
		},
		categories: []Category{
			{ID: "cat-gdpr", Name: "Data Protection", Domain: "regulation"},
			{ID: "cat-risk", Name: "Risk Management", Domain: "practice"},
		},
	}
}

func TestLevelScope(t *testing.T) {
	r := NewResolver(testReader())
	scope, err := r.LevelScope(context.Background(), 1)
	if err != nil {
		t.Fatalf("LevelScope: %v", err)
	}
	if len(scope) != 2 {
		t.Fatalf("scope = %d concepts, want 2", len(scope))
	}
	if _, err := r.LevelScope(context.Background(), 7); err == nil {
		t.Error("expected error for level with no concepts")
	}
}

func TestRangeScopeDeduplicates(t *testing.T) {
	r := NewResolver(testReader())
	scope, err := r.RangeScope(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("RangeScope: %v", err)
	}
	if len(scope) != 3 {
		t.Fatalf("scope = %d concepts, want 3 after dedup", len(scope))
	}
	seen := make(map[string]bool)
	for _, c := range scope {
		if seen[c.ID] {
			t.Errorf("concept %s appears twice", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestCanonicalCategoryIDs(t *testing.T) {
	r := NewResolver(testReader())
	ids, err := r.CanonicalCategoryIDs(context.Background())
	if err != nil {
		t.Fatalf("CanonicalCategoryIDs: %v", err)
	}
	if !ids["cat-gdpr"] || !ids["cat-risk"] || len(ids) != 2 {
		t.Errorf("ids = %v, want exactly the two authored categories", ids)
	}
}

func TestCategoriesInScope(t *testing.T) {
	concepts := []Concept{
		{ID: "c1", CategoryID: "cat-risk"},
		{ID: "c2", CategoryID: "cat-gdpr"},
		{ID: "c3", CategoryID: "cat-gdpr"},
		{ID: "c4"}, // unassigned concepts carry no category
	}
	got := CategoriesInScope(concepts)
	if len(got) != 2 || got[0] != "cat-gdpr" || got[1] != "cat-risk" {
		t.Errorf("CategoriesInScope = %v, want sorted [cat-gdpr cat-risk]", got)
	}
}

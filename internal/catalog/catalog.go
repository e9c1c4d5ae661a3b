// Package catalog provides the typed read models for authored content:
// concepts, categories, and levels. The validator and scorer depend only
// on these shapes, never on the persistence client.
package catalog

// Concept is the smallest testable unit of knowledge.
// Immutable once referenced by an exam.
type Concept struct {
	ID         string
	Name       string
	CategoryID string
}

// Category is a named grouping of concepts within a governance domain.
// Every concept belongs to exactly one category.
type Category struct {
	ID     string
	Name   string
	Domain string
}

// Level is an ordered stage gating progression. Unit levels carry the
// concepts they test; boss levels compute their scope from a level range.
type Level struct {
	Number     int
	Title      string
	ConceptIDs []string
	IsBoss     bool
	Group      SuperLevelGroup
}

// SuperLevelGroup selects the difficulty policy for a decade of levels.
type SuperLevelGroup string

const (
	GroupFoundation SuperLevelGroup = "FOUNDATION" // levels 1-10
	GroupBuilding   SuperLevelGroup = "BUILDING"   // levels 11-20
	GroupAdvanced   SuperLevelGroup = "ADVANCED"   // levels 21-30
	GroupMastery    SuperLevelGroup = "MASTERY"    // levels 31-40
)

// GroupForLevel returns the super-level group a level number belongs to.
func GroupForLevel(n int) SuperLevelGroup {
	switch {
	case n <= 10:
		return GroupFoundation
	case n <= 20:
		return GroupBuilding
	case n <= 30:
		return GroupAdvanced
	default:
		return GroupMastery
	}
}

// BossLevel reports whether n is a boss level (every 10th).
func BossLevel(n int) bool {
	return n > 0 && n%10 == 0
}

// DecadeRange returns the unit-level range a boss level integrates over.
// For the terminal level the range spans every level below it.
func DecadeRange(bossLevel int) (start, end int) {
	if bossLevel == TerminalLevel {
		return 1, TerminalLevel - 1
	}
	return bossLevel - 9, bossLevel - 1
}

// TerminalLevel is the final level, whose scope is the whole concept universe.
const TerminalLevel = 40

package catalog

import (
	"context"
	"fmt"
	"sort"
)

// Reader is the slice of the store the resolver needs. The store package
// implements it; tests supply an in-memory fake.
type Reader interface {
	// ConceptsForLevels returns the concepts assigned to levels in
	// [start, end], in level order then assignment order.
	ConceptsForLevels(ctx context.Context, start, end int) ([]Concept, error)

	// ConceptsForCategory returns the concepts owned by a category.
	ConceptsForCategory(ctx context.Context, categoryID string) ([]Concept, error)

	// Categories returns every authored category.
	Categories(ctx context.Context) ([]Category, error)
}

// Resolver answers "which concepts are in scope" for a level range or a
// category, and derives the category structures the composition rules need.
type Resolver struct {
	reader Reader
}

// NewResolver creates a Resolver over the given reader.
func NewResolver(r Reader) *Resolver {
	return &Resolver{reader: r}
}

// LevelScope returns the concept scope for a single unit level.
// A level with zero assigned concepts is a configuration error.
func (r *Resolver) LevelScope(ctx context.Context, level int) ([]Concept, error) {
	concepts, err := r.reader.ConceptsForLevels(ctx, level, level)
	if err != nil {
		return nil, fmt.Errorf("resolve level %d scope: %w", level, err)
	}
	if len(concepts) == 0 {
		return nil, fmt.Errorf("level %d has no concepts assigned", level)
	}
	return concepts, nil
}

// RangeScope returns the deduplicated concept scope across [start, end].
// Used for boss exams, whose scope is a whole decade (or everything, for
// the terminal level).
func (r *Resolver) RangeScope(ctx context.Context, start, end int) ([]Concept, error) {
	concepts, err := r.reader.ConceptsForLevels(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("resolve levels %d-%d scope: %w", start, end, err)
	}
	seen := make(map[string]bool, len(concepts))
	var out []Concept
	for _, c := range concepts {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("levels %d-%d have no concepts assigned", start, end)
	}
	return out, nil
}

// CategoryScope returns the concepts owned by a category.
func (r *Resolver) CategoryScope(ctx context.Context, categoryID string) ([]Concept, error) {
	concepts, err := r.reader.ConceptsForCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("resolve category %s scope: %w", categoryID, err)
	}
	if len(concepts) == 0 {
		return nil, fmt.Errorf("category %s has no concepts assigned", categoryID)
	}
	return concepts, nil
}

// CanonicalCategoryIDs returns the set of store-issued category IDs.
// Composition validation rejects any category ID outside this set.
func (r *Resolver) CanonicalCategoryIDs(ctx context.Context) (map[string]bool, error) {
	cats, err := r.reader.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	ids := make(map[string]bool, len(cats))
	for _, c := range cats {
		ids[c.ID] = true
	}
	return ids, nil
}

// CategoriesInScope returns the sorted category IDs represented by the
// given concepts. Boss validation requires each to appear at least once.
func CategoriesInScope(concepts []Concept) []string {
	seen := make(map[string]bool)
	for _, c := range concepts {
		if c.CategoryID != "" {
			seen[c.CategoryID] = true
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CategoryMap groups concept names by their owning category ID.
// Handed to the generator so it can label questions with real IDs.
func CategoryMap(concepts []Concept) map[string][]string {
	m := make(map[string][]string)
	for _, c := range concepts {
		if c.CategoryID == "" {
			continue
		}
		m[c.CategoryID] = append(m[c.CategoryID], c.Name)
	}
	return m
}

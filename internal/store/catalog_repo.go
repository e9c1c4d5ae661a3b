package store

import (
	"context"
	"fmt"

	"github.com/fasahat78/startege/ent"
	"github.com/fasahat78/startege/ent/category"
	"github.com/fasahat78/startege/ent/concept"
	"github.com/fasahat78/startege/internal/catalog"
)

// CatalogRepo provides read access to the authored concept and category
// catalog. It satisfies catalog.Reader.
type CatalogRepo struct {
	client *ent.Client
}

// SeedConcept is a concept plus its level assignment, used when loading
// the authored catalog.
type SeedConcept struct {
	catalog.Concept
	LevelNumber int
	Position    int
}

// Seed loads authored categories and concepts into an empty catalog.
// Seeding twice is an error; the catalog is replaced by migration, not
// by re-seeding.
func (r *CatalogRepo) Seed(ctx context.Context, cats []catalog.Category, concepts []SeedConcept) error {
	n, err := r.client.Category.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("catalog already seeded (%d categories present)", n)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}

	for _, c := range cats {
		_, err := tx.Category.Create().
			SetCategoryID(c.ID).
			SetName(c.Name).
			SetDomain(c.Domain).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("seed category %s: %w", c.ID, err)
		}
	}

	for _, c := range concepts {
		_, err := tx.Concept.Create().
			SetConceptID(c.ID).
			SetName(c.Name).
			SetCategoryID(c.CategoryID).
			SetLevelNumber(c.LevelNumber).
			SetPosition(c.Position).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("seed concept %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

// ConceptsForLevels returns the concepts assigned to levels in
// [start, end], in level order then assignment order.
func (r *CatalogRepo) ConceptsForLevels(ctx context.Context, start, end int) ([]catalog.Concept, error) {
	rows, err := r.client.Concept.Query().
		Where(concept.LevelNumberGTE(start), concept.LevelNumberLTE(end)).
		Order(ent.Asc(concept.FieldLevelNumber), ent.Asc(concept.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concepts for levels %d-%d: %w", start, end, err)
	}
	return toConcepts(rows), nil
}

// ConceptsForCategory returns the concepts owned by a category, in
// level order.
func (r *CatalogRepo) ConceptsForCategory(ctx context.Context, categoryID string) ([]catalog.Concept, error) {
	rows, err := r.client.Concept.Query().
		Where(concept.CategoryIDEQ(categoryID)).
		Order(ent.Asc(concept.FieldLevelNumber), ent.Asc(concept.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concepts for category %s: %w", categoryID, err)
	}
	return toConcepts(rows), nil
}

// ConceptsByIDs returns the concepts with the given IDs, in ID order.
// Unknown IDs are skipped.
func (r *CatalogRepo) ConceptsByIDs(ctx context.Context, ids []string) ([]catalog.Concept, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.client.Concept.Query().
		Where(concept.ConceptIDIn(ids...)).
		Order(ent.Asc(concept.FieldConceptID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concepts by IDs: %w", err)
	}
	return toConcepts(rows), nil
}

// Categories returns every authored category.
func (r *CatalogRepo) Categories(ctx context.Context) ([]catalog.Category, error) {
	rows, err := r.client.Category.Query().
		Order(ent.Asc(category.FieldCategoryID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	out := make([]catalog.Category, 0, len(rows))
	for _, c := range rows {
		out = append(out, catalog.Category{
			ID:     c.CategoryID,
			Name:   c.Name,
			Domain: c.Domain,
		})
	}
	return out, nil
}

// CategoriesForLevels returns the IDs of categories introduced in the
// level range [start, end], i.e. owning at least one concept there.
func (r *CatalogRepo) CategoriesForLevels(ctx context.Context, start, end int) ([]string, error) {
	concepts, err := r.ConceptsForLevels(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return catalog.CategoriesInScope(concepts), nil
}

// AllCategories returns every authored category ID.
func (r *CatalogRepo) AllCategories(ctx context.Context) ([]string, error) {
	cats, err := r.Categories(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func toConcepts(rows []*ent.Concept) []catalog.Concept {
	out := make([]catalog.Concept, 0, len(rows))
	for _, c := range rows {
		out = append(out, catalog.Concept{
			ID:         c.ConceptID,
			Name:       c.Name,
			CategoryID: c.CategoryID,
		})
	}
	return out
}

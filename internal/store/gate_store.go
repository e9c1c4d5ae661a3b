package store

import (
	"context"

	"github.com/fasahat78/startege/internal/gate"
)

// gateStore bundles the read methods the eligibility gate needs.
// Reads go through the same ent client that writes submissions, so a
// submitted attempt is visible to the next eligibility check.
type gateStore struct {
	progress *ProgressRepo
	attempts *AttemptRepo
	catalog  *CatalogRepo
}

// GateStore returns a gate.Store view over this store.
func (s *Store) GateStore() gate.Store {
	return &gateStore{
		progress: s.ProgressRepo(),
		attempts: s.AttemptRepo(),
		catalog:  s.CatalogRepo(),
	}
}

func (g *gateStore) LevelPassed(ctx context.Context, userID string, level int) (bool, error) {
	return g.progress.LevelPassed(ctx, userID, level)
}

func (g *gateStore) PassedLevels(ctx context.Context, userID string) (map[int]bool, error) {
	return g.progress.PassedLevels(ctx, userID)
}

func (g *gateStore) PassedCategories(ctx context.Context, userID string) (map[string]bool, error) {
	return g.progress.PassedCategories(ctx, userID)
}

func (g *gateStore) RecentAttempts(ctx context.Context, userID string, level int, limit int) ([]gate.AttemptRecord, error) {
	return g.attempts.RecentAttempts(ctx, userID, level, limit)
}

func (g *gateStore) CategoriesForLevels(ctx context.Context, start, end int) ([]string, error) {
	return g.catalog.CategoriesForLevels(ctx, start, end)
}

func (g *gateStore) AllCategories(ctx context.Context) ([]string, error) {
	return g.catalog.AllCategories(ctx)
}

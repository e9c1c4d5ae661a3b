package store

import (
	"context"
	"fmt"
	"time"

	"github.com/fasahat78/startege/ent"
	entcatprog "github.com/fasahat78/startege/ent/categoryprogress"
	entlvlprog "github.com/fasahat78/startege/ent/levelprogress"
	"github.com/fasahat78/startege/internal/exam"
)

// ProgressRepo tracks per-user level and category standing. Progress is
// monotonic: PASSED is terminal, passed_at is written once, and a later
// failed retake never demotes a passed record.
type ProgressRepo struct {
	client *ent.Client
}

// RecordLevelResult folds one submitted attempt into the user's level
// progress.
func (r *ProgressRepo) RecordLevelResult(ctx context.Context, userID string, level int, pass bool, percentage float64, at time.Time) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin progress tx: %w", err)
	}

	row, err := tx.LevelProgress.Query().
		Where(entlvlprog.UserIDEQ(userID), entlvlprog.LevelNumberEQ(level)).
		Only(ctx)
	switch {
	case err == nil:
		upd := tx.LevelProgress.UpdateOne(row).AddAttemptsCount(1)
		if percentage > row.BestPercentage {
			upd.SetBestPercentage(percentage)
		}
		if pass && row.Status != string(exam.StatusPassed) {
			upd.SetStatus(string(exam.StatusPassed)).SetPassedAt(at)
		}
		if _, err := upd.Save(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("update level progress: %w", err)
		}
	case ent.IsNotFound(err):
		create := tx.LevelProgress.Create().
			SetUserID(userID).
			SetLevelNumber(level).
			SetStatus(string(exam.StatusInProgress)).
			SetAttemptsCount(1).
			SetBestPercentage(percentage)
		if pass {
			create.SetStatus(string(exam.StatusPassed)).SetPassedAt(at)
		}
		if _, err := create.Save(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("create level progress: %w", err)
		}
	default:
		tx.Rollback()
		return fmt.Errorf("query level progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit progress tx: %w", err)
	}
	return nil
}

// RecordCategoryResult folds one submitted attempt into the user's
// category progress.
func (r *ProgressRepo) RecordCategoryResult(ctx context.Context, userID, categoryID string, pass bool, percentage float64, at time.Time) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin progress tx: %w", err)
	}

	row, err := tx.CategoryProgress.Query().
		Where(entcatprog.UserIDEQ(userID), entcatprog.CategoryIDEQ(categoryID)).
		Only(ctx)
	switch {
	case err == nil:
		upd := tx.CategoryProgress.UpdateOne(row).AddAttemptsCount(1)
		if percentage > row.BestPercentage {
			upd.SetBestPercentage(percentage)
		}
		if pass && row.Status != string(exam.StatusPassed) {
			upd.SetStatus(string(exam.StatusPassed)).SetPassedAt(at)
		}
		if _, err := upd.Save(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("update category progress: %w", err)
		}
	case ent.IsNotFound(err):
		create := tx.CategoryProgress.Create().
			SetUserID(userID).
			SetCategoryID(categoryID).
			SetStatus(string(exam.StatusInProgress)).
			SetAttemptsCount(1).
			SetBestPercentage(percentage)
		if pass {
			create.SetStatus(string(exam.StatusPassed)).SetPassedAt(at)
		}
		if _, err := create.Save(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("create category progress: %w", err)
		}
	default:
		tx.Rollback()
		return fmt.Errorf("query category progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit progress tx: %w", err)
	}
	return nil
}

// LevelPassed reports whether the user has passed the level.
func (r *ProgressRepo) LevelPassed(ctx context.Context, userID string, level int) (bool, error) {
	n, err := r.client.LevelProgress.Query().
		Where(
			entlvlprog.UserIDEQ(userID),
			entlvlprog.LevelNumberEQ(level),
			entlvlprog.StatusEQ(string(exam.StatusPassed)),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("query level passed: %w", err)
	}
	return n > 0, nil
}

// PassedLevels returns the set of level numbers the user has passed.
func (r *ProgressRepo) PassedLevels(ctx context.Context, userID string) (map[int]bool, error) {
	levels, err := r.client.LevelProgress.Query().
		Where(
			entlvlprog.UserIDEQ(userID),
			entlvlprog.StatusEQ(string(exam.StatusPassed)),
		).
		Select(entlvlprog.FieldLevelNumber).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("query passed levels: %w", err)
	}
	out := make(map[int]bool, len(levels))
	for _, l := range levels {
		out[l] = true
	}
	return out, nil
}

// PassedCategories returns the category IDs whose exams the user has
// passed.
func (r *ProgressRepo) PassedCategories(ctx context.Context, userID string) (map[string]bool, error) {
	ids, err := r.client.CategoryProgress.Query().
		Where(
			entcatprog.UserIDEQ(userID),
			entcatprog.StatusEQ(string(exam.StatusPassed)),
		).
		Select(entcatprog.FieldCategoryID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query passed categories: %w", err)
	}
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fasahat78/startege/ent"
	entattempt "github.com/fasahat78/startege/ent/examattempt"
	entexam "github.com/fasahat78/startege/ent/exam"
	"github.com/fasahat78/startege/ent/schema"
	"github.com/fasahat78/startege/internal/exam"
	"github.com/fasahat78/startege/internal/gate"
)

// AttemptRepo persists exam attempts. Attempt numbers are assigned in a
// transaction so two concurrent starts for the same user and exam never
// share a number.
type AttemptRepo struct {
	client *ent.Client
}

// Start opens a new attempt for the user on the given exam version and
// assigns the next attempt number.
func (r *AttemptRepo) Start(ctx context.Context, userID, examID string) (*AttemptRecord, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin attempt tx: %w", err)
	}

	n, err := tx.ExamAttempt.Query().
		Where(entattempt.UserIDEQ(userID), entattempt.ExamIDEQ(examID)).
		Count(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("count attempts: %w", err)
	}

	row, err := tx.ExamAttempt.Create().
		SetAttemptID(uuid.NewString()).
		SetUserID(userID).
		SetExamID(examID).
		SetAttemptNumber(n + 1).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create attempt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit attempt tx: %w", err)
	}
	return fromEntAttempt(row), nil
}

// Get returns the attempt with the given ID, or ErrNotFound.
func (r *AttemptRepo) Get(ctx context.Context, attemptID string) (*AttemptRecord, error) {
	row, err := r.client.ExamAttempt.Query().
		Where(entattempt.AttemptIDEQ(attemptID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query attempt %s: %w", attemptID, err)
	}
	return fromEntAttempt(row), nil
}

// Submit closes an open attempt with its assessment outcome. A second
// submission of the same attempt returns ErrAlreadySubmitted.
func (r *AttemptRepo) Submit(ctx context.Context, attemptID string, data SubmitData) (*AttemptRecord, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin submit tx: %w", err)
	}

	row, err := tx.ExamAttempt.Query().
		Where(entattempt.AttemptIDEQ(attemptID)).
		Only(ctx)
	if err != nil {
		tx.Rollback()
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query attempt %s: %w", attemptID, err)
	}
	if row.SubmittedAt != nil {
		tx.Rollback()
		return nil, ErrAlreadySubmitted
	}

	row, err = tx.ExamAttempt.UpdateOne(row).
		SetAnswers(toAnswerRecords(data.Answers)).
		SetScore(data.Score).
		SetPercentage(data.Percentage).
		SetPass(data.Pass).
		SetWeakConceptIds(data.WeakConceptIDs).
		SetSubmittedAt(data.SubmittedAt).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("submit attempt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit submit tx: %w", err)
	}
	return fromEntAttempt(row), nil
}

// RecentAttempts returns the user's submitted attempts for the level's
// exam slot, across all versions, newest first, at most limit records.
// It feeds gate.ConsecutiveFailures.
func (r *AttemptRepo) RecentAttempts(ctx context.Context, userID string, level int, limit int) ([]gate.AttemptRecord, error) {
	examIDs, err := r.client.Exam.Query().
		Where(entexam.LevelNumberEQ(level)).
		Select(entexam.FieldExamID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exam IDs for level %d: %w", level, err)
	}
	if len(examIDs) == 0 {
		return nil, nil
	}

	rows, err := r.client.ExamAttempt.Query().
		Where(
			entattempt.UserIDEQ(userID),
			entattempt.ExamIDIn(examIDs...),
			entattempt.SubmittedAtNotNil(),
		).
		Order(ent.Desc(entattempt.FieldSubmittedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}

	out := make([]gate.AttemptRecord, 0, len(rows))
	for _, a := range rows {
		out = append(out, gate.AttemptRecord{
			Pass:        a.Pass,
			SubmittedAt: *a.SubmittedAt,
		})
	}
	return out, nil
}

// RecentAttemptsForCategory is RecentAttempts for a category exam slot.
func (r *AttemptRepo) RecentAttemptsForCategory(ctx context.Context, userID, categoryID string, limit int) ([]gate.AttemptRecord, error) {
	examIDs, err := r.client.Exam.Query().
		Where(entexam.CategoryIDEQ(categoryID)).
		Select(entexam.FieldExamID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exam IDs for category %s: %w", categoryID, err)
	}
	if len(examIDs) == 0 {
		return nil, nil
	}

	rows, err := r.client.ExamAttempt.Query().
		Where(
			entattempt.UserIDEQ(userID),
			entattempt.ExamIDIn(examIDs...),
			entattempt.SubmittedAtNotNil(),
		).
		Order(ent.Desc(entattempt.FieldSubmittedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent category attempts: %w", err)
	}

	out := make([]gate.AttemptRecord, 0, len(rows))
	for _, a := range rows {
		out = append(out, gate.AttemptRecord{
			Pass:        a.Pass,
			SubmittedAt: *a.SubmittedAt,
		})
	}
	return out, nil
}

func fromEntAttempt(row *ent.ExamAttempt) *AttemptRecord {
	return &AttemptRecord{
		AttemptID:      row.AttemptID,
		UserID:         row.UserID,
		ExamID:         row.ExamID,
		AttemptNumber:  row.AttemptNumber,
		Answers:        fromAnswerRecords(row.Answers),
		Score:          row.Score,
		Percentage:     row.Percentage,
		Pass:           row.Pass,
		WeakConceptIDs: row.WeakConceptIds,
		StartedAt:      row.StartedAt,
		SubmittedAt:    row.SubmittedAt,
	}
}

func toAnswerRecords(answers []exam.Answer) []schema.AnswerRecord {
	out := make([]schema.AnswerRecord, 0, len(answers))
	for _, a := range answers {
		out = append(out, schema.AnswerRecord{
			QuestionID:       a.QuestionID,
			SelectedOptionID: a.SelectedOptionID,
			TimeSpentSecs:    a.TimeSpent,
		})
	}
	return out
}

func fromAnswerRecords(recs []schema.AnswerRecord) []exam.Answer {
	out := make([]exam.Answer, 0, len(recs))
	for _, r := range recs {
		out = append(out, exam.Answer{
			QuestionID:       r.QuestionID,
			SelectedOptionID: r.SelectedOptionID,
			TimeSpent:        r.TimeSpentSecs,
		})
	}
	return out
}

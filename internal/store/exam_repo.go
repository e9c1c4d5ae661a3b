package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fasahat78/startege/ent"
	entexam "github.com/fasahat78/startege/ent/exam"
	"github.com/fasahat78/startege/ent/predicate"
	"github.com/fasahat78/startege/ent/schema"
	"github.com/fasahat78/startege/internal/exam"
)

// ExamRepo persists generated exams. Exams are append-only: saving a new
// set for a slot that already has one writes a higher version instead of
// overwriting.
type ExamRepo struct {
	client *ent.Client
}

// Save stores rec as the next version of its slot and fills in ExamID,
// Version, and GeneratedAt.
func (r *ExamRepo) Save(ctx context.Context, rec *ExamRecord) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin exam tx: %w", err)
	}

	prev, err := tx.Exam.Query().
		Where(slotPredicates(rec.Type, rec.LevelNumber, rec.CategoryID)...).
		Order(ent.Desc(entexam.FieldVersion)).
		First(ctx)
	switch {
	case err == nil:
		rec.Version = prev.Version + 1
	case ent.IsNotFound(err):
		rec.Version = 1
	default:
		tx.Rollback()
		return fmt.Errorf("query latest exam version: %w", err)
	}

	if rec.ExamID == "" {
		rec.ExamID = uuid.NewString()
	}
	rec.GeneratedAt = time.Now().UTC()

	_, err = tx.Exam.Create().
		SetExamID(rec.ExamID).
		SetExamType(string(rec.Type)).
		SetLevelNumber(rec.LevelNumber).
		SetCategoryID(rec.CategoryID).
		SetVersion(rec.Version).
		SetQuestions(toQuestionRecords(rec.Questions)).
		SetProvider(rec.Provider).
		SetModel(rec.Model).
		SetGenerationAttempts(rec.GenerationAttempts).
		SetGeneratedAt(rec.GeneratedAt).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save exam: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit exam tx: %w", err)
	}
	return nil
}

// Latest returns the newest version for a slot, or ErrNotFound.
func (r *ExamRepo) Latest(ctx context.Context, typ exam.Type, levelNumber int, categoryID string) (*ExamRecord, error) {
	row, err := r.client.Exam.Query().
		Where(slotPredicates(typ, levelNumber, categoryID)...).
		Order(ent.Desc(entexam.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query latest exam: %w", err)
	}
	return fromEntExam(row), nil
}

// ByID returns the exam with the given ID, or ErrNotFound.
func (r *ExamRepo) ByID(ctx context.Context, examID string) (*ExamRecord, error) {
	row, err := r.client.Exam.Query().
		Where(entexam.ExamIDEQ(examID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query exam %s: %w", examID, err)
	}
	return fromEntExam(row), nil
}

// IDsForLevel returns the exam IDs of every version in a level's slot.
func (r *ExamRepo) IDsForLevel(ctx context.Context, levelNumber int) ([]string, error) {
	ids, err := r.client.Exam.Query().
		Where(entexam.LevelNumberEQ(levelNumber)).
		Select(entexam.FieldExamID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exam IDs for level %d: %w", levelNumber, err)
	}
	return ids, nil
}

func slotPredicates(typ exam.Type, levelNumber int, categoryID string) []predicate.Exam {
	if typ == exam.TypeCategory {
		return []predicate.Exam{
			entexam.ExamTypeEQ(string(typ)),
			entexam.CategoryIDEQ(categoryID),
		}
	}
	return []predicate.Exam{
		entexam.ExamTypeEQ(string(typ)),
		entexam.LevelNumberEQ(levelNumber),
	}
}

func fromEntExam(row *ent.Exam) *ExamRecord {
	return &ExamRecord{
		ExamID:             row.ExamID,
		Type:               exam.Type(row.ExamType),
		LevelNumber:        row.LevelNumber,
		CategoryID:         row.CategoryID,
		Version:            row.Version,
		Questions:          fromQuestionRecords(row.Questions),
		Provider:           row.Provider,
		Model:              row.Model,
		GenerationAttempts: row.GenerationAttempts,
		GeneratedAt:        row.GeneratedAt,
	}
}

func toQuestionRecords(qs []exam.Question) []schema.QuestionRecord {
	out := make([]schema.QuestionRecord, 0, len(qs))
	for _, q := range qs {
		opts := make([]schema.OptionRecord, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, schema.OptionRecord{OptionID: o.ID, Text: o.Text})
		}
		out = append(out, schema.QuestionRecord{
			QuestionID:      q.ID,
			Stem:            q.Stem,
			Options:         opts,
			CorrectOptionID: q.CorrectOptionID,
			ConceptIDs:      q.ConceptIDs,
			CategoryIDs:     q.CategoryIDs,
			DifficultyTag:   string(q.DifficultyTag),
			RationaleOK:     q.Rationale.Correct,
			RationaleBad:    q.Rationale.Incorrect,
		})
	}
	return out
}

func fromQuestionRecords(recs []schema.QuestionRecord) []exam.Question {
	out := make([]exam.Question, 0, len(recs))
	for _, r := range recs {
		opts := make([]exam.Option, 0, len(r.Options))
		for _, o := range r.Options {
			opts = append(opts, exam.Option{ID: o.OptionID, Text: o.Text})
		}
		out = append(out, exam.Question{
			ID:              r.QuestionID,
			Stem:            r.Stem,
			Options:         opts,
			CorrectOptionID: r.CorrectOptionID,
			ConceptIDs:      r.ConceptIDs,
			CategoryIDs:     r.CategoryIDs,
			DifficultyTag:   exam.DifficultyTag(r.DifficultyTag),
			Rationale: exam.Rationale{
				Correct:   r.RationaleOK,
				Incorrect: r.RationaleBad,
			},
		})
	}
	return out
}

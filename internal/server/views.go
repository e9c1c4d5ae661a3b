package server

import (
	"time"

	"github.com/fasahat78/startege/internal/catalog"
	"github.com/fasahat78/startege/internal/exam"
	"github.com/fasahat78/startege/internal/store"
)

// deliveredOption mirrors exam.Option; redeclared so the delivered
// question type is closed over safe fields only.
type deliveredOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// deliveredQuestion is a question as shown to a test taker: no correct
// option, no rationale, no difficulty tag.
type deliveredQuestion struct {
	ID      string            `json:"id"`
	Stem    string            `json:"stem"`
	Options []deliveredOption `json:"options"`
}

type deliveredExam struct {
	ExamID           string    `json:"examId"`
	Type             exam.Type `json:"type"`
	LevelNumber      int       `json:"levelNumber,omitempty"`
	CategoryID       string    `json:"categoryId,omitempty"`
	Version          int       `json:"version"`
	QuestionCount    int       `json:"questionCount"`
	TimeLimitMinutes int       `json:"timeLimitMinutes"`
	GeneratedAt      time.Time `json:"generatedAt"`

	Questions []deliveredQuestion `json:"questions"`
}

// categoryTimeLimitMinutes is the sitting time for category exams,
// which have no level config to draw a limit from.
const categoryTimeLimitMinutes = 40

// timeLimitFor resolves the sitting time from the level table, or the
// category default for exams outside the level ladder.
func timeLimitFor(ex *store.ExamRecord) int {
	if cfg, ok := catalog.LevelConfigFor(ex.LevelNumber); ok {
		return cfg.TimeLimitMinutes
	}
	return categoryTimeLimitMinutes
}

func examView(ex *store.ExamRecord) deliveredExam {
	qs := make([]deliveredQuestion, 0, len(ex.Questions))
	for _, q := range ex.Questions {
		opts := make([]deliveredOption, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, deliveredOption{ID: o.ID, Text: o.Text})
		}
		qs = append(qs, deliveredQuestion{ID: q.ID, Stem: q.Stem, Options: opts})
	}
	return deliveredExam{
		ExamID:           ex.ExamID,
		Type:             ex.Type,
		LevelNumber:      ex.LevelNumber,
		CategoryID:       ex.CategoryID,
		Version:          ex.Version,
		QuestionCount:    len(ex.Questions),
		TimeLimitMinutes: timeLimitFor(ex),
		GeneratedAt:      ex.GeneratedAt,
		Questions:        qs,
	}
}

// generatedView is the authoring response for a freshly generated exam.
// It reports provenance but, like the delivery view, never the keys.
type generatedExam struct {
	deliveredExam
	Provider           string `json:"provider"`
	Model              string `json:"model"`
	GenerationAttempts int    `json:"generationAttempts"`
}

func generatedView(ex *store.ExamRecord) generatedExam {
	return generatedExam{
		deliveredExam:      examView(ex),
		Provider:           ex.Provider,
		Model:              ex.Model,
		GenerationAttempts: ex.GenerationAttempts,
	}
}

type attemptSummary struct {
	AttemptID     string     `json:"attemptId"`
	ExamID        string     `json:"examId"`
	AttemptNumber int        `json:"attemptNumber"`
	StartedAt     time.Time  `json:"startedAt"`
	SubmittedAt   *time.Time `json:"submittedAt,omitempty"`
}

func attemptView(a *store.AttemptRecord) attemptSummary {
	return attemptSummary{
		AttemptID:     a.AttemptID,
		ExamID:        a.ExamID,
		AttemptNumber: a.AttemptNumber,
		StartedAt:     a.StartedAt,
		SubmittedAt:   a.SubmittedAt,
	}
}

type weakConceptView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`
}

func weakConceptViews(concepts []catalog.Concept) []weakConceptView {
	out := make([]weakConceptView, 0, len(concepts))
	for _, c := range concepts {
		out = append(out, weakConceptView{ID: c.ID, Name: c.Name, CategoryID: c.CategoryID})
	}
	return out
}

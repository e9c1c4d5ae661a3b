package exam

// Type identifies which validation and scoring rules apply to an exam.
type Type string

const (
	// TypeLevel is a coverage-first unit level exam (levels 1-9, 11-19, ...).
	TypeLevel Type = "LEVEL"

	// TypeCategory tests a single category with repetition allowed.
	TypeCategory Type = "CATEGORY"

	// TypeBoss is an integration exam gating a decade (levels 10, 20, 30, 40).
	TypeBoss Type = "BOSS"
)

// DifficultyTag classifies the cognitive demand of a question.
type DifficultyTag string

const (
	TagRecall    DifficultyTag = "recall"
	TagApply     DifficultyTag = "apply"
	TagAnalyse   DifficultyTag = "analyse"
	TagJudgement DifficultyTag = "judgement"
)

// ValidTag reports whether t is one of the closed set of difficulty tags.
func ValidTag(t DifficultyTag) bool {
	switch t {
	case TagRecall, TagApply, TagAnalyse, TagJudgement:
		return true
	}
	return false
}

// Scenario reports whether t counts as scenario-based for composition
// minimums (anything above plain recall).
func Scenario(t DifficultyTag) bool {
	return t == TagApply || t == TagAnalyse || t == TagJudgement
}

// OptionsPerQuestion is fixed across all exam types.
const OptionsPerQuestion = 4

// Option is one answer choice on a multiple-choice question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Rationale explains the correct option and, optionally, each incorrect one.
type Rationale struct {
	Correct string `json:"correct"`
	// Incorrect maps an option ID to the explanation shown when that
	// option was selected.
	Incorrect map[string]string `json:"incorrect,omitempty"`
}

// Question is a fully generated multiple-choice question.
// CorrectOptionID must be one of the four option IDs.
type Question struct {
	ID              string        `json:"id"`
	Stem            string        `json:"stem"`
	Options         []Option      `json:"options"`
	CorrectOptionID string        `json:"correctOptionId"`
	ConceptIDs      []string      `json:"conceptIds"`
	CategoryIDs     []string      `json:"categoryIds"`
	DifficultyTag   DifficultyTag `json:"difficultyTag"`
	Rationale       Rationale     `json:"rationale"`
}

// MultiConcept reports whether the question references two or more concepts.
func (q Question) MultiConcept() bool { return len(q.ConceptIDs) >= 2 }

// CrossCategory reports whether the question spans two or more categories.
func (q Question) CrossCategory() bool { return len(q.CategoryIDs) >= 2 }

// HasOption reports whether id is one of the question's option IDs.
func (q Question) HasOption(id string) bool {
	for _, o := range q.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Answer is one submitted answer within an attempt.
type Answer struct {
	QuestionID       string `json:"questionId"`
	SelectedOptionID string `json:"selectedOptionId"`
	// TimeSpent is seconds spent on the question. Zero when not reported.
	TimeSpent int `json:"timeSpent,omitempty"`
}

// ProgressStatus tracks a user's standing on a level or category exam.
type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "NOT_STARTED"
	StatusInProgress ProgressStatus = "IN_PROGRESS"
	StatusPassed     ProgressStatus = "PASSED"
)

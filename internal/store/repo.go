package store

import (
	"context"
	"errors"
	"time"

	"github.com/fasahat78/startege/internal/exam"
)

// ErrAlreadySubmitted is returned when an attempt is submitted twice.
var ErrAlreadySubmitted = errors.New("attempt already submitted")

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ExamRecord is one immutable version of a generated exam. The slot
// (type + level or category) plus the version identify it uniquely.
type ExamRecord struct {
	ExamID             string
	Type               exam.Type
	LevelNumber        int    // 0 for category exams
	CategoryID         string // empty for level and boss exams
	Version            int
	Questions          []exam.Question
	Provider           string
	Model              string
	GenerationAttempts int
	GeneratedAt        time.Time
}

// AttemptRecord is one user sitting of one exam version.
type AttemptRecord struct {
	AttemptID      string
	UserID         string
	ExamID         string
	AttemptNumber  int
	Answers        []exam.Answer
	Score          float64
	Percentage     float64
	Pass           bool
	WeakConceptIDs []string
	StartedAt      time.Time
	SubmittedAt    *time.Time
}

// Submitted reports whether the attempt has been scored and closed.
func (a *AttemptRecord) Submitted() bool {
	return a.SubmittedAt != nil
}

// SubmitData carries the assessment outcome written on submission.
type SubmitData struct {
	Answers        []exam.Answer
	Score          float64
	Percentage     float64
	Pass           bool
	WeakConceptIDs []string
	SubmittedAt    time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMEventRecord is one logged LLM API call.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStat aggregates token usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns logged LLM calls, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// CategoryProgress is the predicate function for categoryprogress builders.
type CategoryProgress func(*sql.Selector)

// Concept is the predicate function for concept builders.
type Concept func(*sql.Selector)

// Exam is the predicate function for exam builders.
type Exam func(*sql.Selector)

// ExamAttempt is the predicate function for examattempt builders.
type ExamAttempt func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LevelProgress is the predicate function for levelprogress builders.
type LevelProgress func(*sql.Selector)

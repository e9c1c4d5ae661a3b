// Code generated by ent, DO NOT EDIT.

package levelprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the levelprogress type in the database.
	Label = "level_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldLevelNumber holds the string denoting the level_number field in the database.
	FieldLevelNumber = "level_number"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldBestPercentage holds the string denoting the best_percentage field in the database.
	FieldBestPercentage = "best_percentage"
	// FieldAttemptsCount holds the string denoting the attempts_count field in the database.
	FieldAttemptsCount = "attempts_count"
	// FieldPassedAt holds the string denoting the passed_at field in the database.
	FieldPassedAt = "passed_at"
	// Table holds the table name of the levelprogress in the database.
	Table = "level_progresses"
)

// Columns holds all SQL columns for levelprogress fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldLevelNumber,
	FieldStatus,
	FieldBestPercentage,
	FieldAttemptsCount,
	FieldPassedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// LevelNumberValidator is a validator for the "level_number" field. It is called by the builders before save.
	LevelNumberValidator func(int) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultBestPercentage holds the default value on creation for the "best_percentage" field.
	DefaultBestPercentage float64
	// DefaultAttemptsCount holds the default value on creation for the "attempts_count" field.
	DefaultAttemptsCount int
)

// OrderOption defines the ordering options for the LevelProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByLevelNumber orders the results by the level_number field.
func ByLevelNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevelNumber, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByBestPercentage orders the results by the best_percentage field.
func ByBestPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestPercentage, opts...).ToFunc()
}

// ByAttemptsCount orders the results by the attempts_count field.
func ByAttemptsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptsCount, opts...).ToFunc()
}

// ByPassedAt orders the results by the passed_at field.
func ByPassedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassedAt, opts...).ToFunc()
}

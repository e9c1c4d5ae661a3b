// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fasahat78/startege/ent/categoryprogress"
)

// CategoryProgress is the model entity for the CategoryProgress schema.
type CategoryProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// CategoryID holds the value of the "category_id" field.
	CategoryID string `json:"category_id,omitempty"`
	// NOT_STARTED, IN_PROGRESS, or PASSED
	Status string `json:"status,omitempty"`
	// BestPercentage holds the value of the "best_percentage" field.
	BestPercentage float64 `json:"best_percentage,omitempty"`
	// AttemptsCount holds the value of the "attempts_count" field.
	AttemptsCount int `json:"attempts_count,omitempty"`
	// Set once, on the first passing attempt
	PassedAt     *time.Time `json:"passed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CategoryProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case categoryprogress.FieldBestPercentage:
			values[i] = new(sql.NullFloat64)
		case categoryprogress.FieldID, categoryprogress.FieldAttemptsCount:
			values[i] = new(sql.NullInt64)
		case categoryprogress.FieldUserID, categoryprogress.FieldCategoryID, categoryprogress.FieldStatus:
			values[i] = new(sql.NullString)
		case categoryprogress.FieldPassedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CategoryProgress fields.
func (_m *CategoryProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case categoryprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case categoryprogress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case categoryprogress.FieldCategoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value.Valid {
				_m.CategoryID = value.String
			}
		case categoryprogress.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case categoryprogress.FieldBestPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field best_percentage", values[i])
			} else if value.Valid {
				_m.BestPercentage = value.Float64
			}
		case categoryprogress.FieldAttemptsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts_count", values[i])
			} else if value.Valid {
				_m.AttemptsCount = int(value.Int64)
			}
		case categoryprogress.FieldPassedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field passed_at", values[i])
			} else if value.Valid {
				_m.PassedAt = new(time.Time)
				*_m.PassedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CategoryProgress.
// This includes values selected through modifiers, order, etc.
func (_m *CategoryProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CategoryProgress.
// Note that you need to call CategoryProgress.Unwrap() before calling this method if this CategoryProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CategoryProgress) Update() *CategoryProgressUpdateOne {
	return NewCategoryProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CategoryProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CategoryProgress) Unwrap() *CategoryProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CategoryProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CategoryProgress) String() string {
	var builder strings.Builder
	builder.WriteString("CategoryProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("category_id=")
	builder.WriteString(_m.CategoryID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("best_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.BestPercentage))
	builder.WriteString(", ")
	builder.WriteString("attempts_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptsCount))
	builder.WriteString(", ")
	if v := _m.PassedAt; v != nil {
		builder.WriteString("passed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CategoryProgresses is a parsable slice of CategoryProgress.
type CategoryProgresses []*CategoryProgress

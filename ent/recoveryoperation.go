// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/halfmoonlabs/chatloop/ent/recoveryoperation"
)

// RecoveryOperation is the model entity for the RecoveryOperation schema.
type RecoveryOperation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// UsersScanned holds the value of the "users_scanned" field.
	UsersScanned int `json:"users_scanned,omitempty"`
	// MessagesRecovered holds the value of the "messages_recovered" field.
	MessagesRecovered int `json:"messages_recovered,omitempty"`
	// Errors holds the value of the "errors" field.
	Errors int `json:"errors,omitempty"`
	// Status holds the value of the "status" field.
	Status recoveryoperation.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecoveryOperation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recoveryoperation.FieldUsersScanned, recoveryoperation.FieldMessagesRecovered, recoveryoperation.FieldErrors:
			values[i] = new(sql.NullInt64)
		case recoveryoperation.FieldID, recoveryoperation.FieldStatus, recoveryoperation.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case recoveryoperation.FieldStartedAt, recoveryoperation.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecoveryOperation fields.
func (_m *RecoveryOperation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recoveryoperation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case recoveryoperation.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case recoveryoperation.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case recoveryoperation.FieldUsersScanned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field users_scanned", values[i])
			} else if value.Valid {
				_m.UsersScanned = int(value.Int64)
			}
		case recoveryoperation.FieldMessagesRecovered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field messages_recovered", values[i])
			} else if value.Valid {
				_m.MessagesRecovered = int(value.Int64)
			}
		case recoveryoperation.FieldErrors:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field errors", values[i])
			} else if value.Valid {
				_m.Errors = int(value.Int64)
			}
		case recoveryoperation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = recoveryoperation.Status(value.String)
			}
		case recoveryoperation.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RecoveryOperation.
// This includes values selected through modifiers, order, etc.
func (_m *RecoveryOperation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RecoveryOperation.
// Note that you need to call RecoveryOperation.Unwrap() before calling this method if this RecoveryOperation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RecoveryOperation) Update() *RecoveryOperationUpdateOne {
	return NewRecoveryOperationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RecoveryOperation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RecoveryOperation) Unwrap() *RecoveryOperation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RecoveryOperation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RecoveryOperation) String() string {
	var builder strings.Builder
	builder.WriteString("RecoveryOperation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("users_scanned=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsersScanned))
	builder.WriteString(", ")
	builder.WriteString("messages_recovered=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessagesRecovered))
	builder.WriteString(", ")
	builder.WriteString("errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Errors))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// RecoveryOperations is a parsable slice of RecoveryOperation.
type RecoveryOperations []*RecoveryOperation

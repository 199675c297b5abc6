// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/halfmoonlabs/chatloop/ent/protocolstatus"
)

// ProtocolStatus is the model entity for the ProtocolStatus schema.
type ProtocolStatus struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// Since holds the value of the "since" field.
	Since *time.Time `json:"since,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason *string `json:"reason,omitempty"`
	// Performer holds the value of the "performer" field.
	Performer *string `json:"performer,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProtocolStatus) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case protocolstatus.FieldActive:
			values[i] = new(sql.NullBool)
		case protocolstatus.FieldID:
			values[i] = new(sql.NullInt64)
		case protocolstatus.FieldReason, protocolstatus.FieldPerformer:
			values[i] = new(sql.NullString)
		case protocolstatus.FieldSince, protocolstatus.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProtocolStatus fields.
func (_m *ProtocolStatus) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case protocolstatus.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case protocolstatus.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case protocolstatus.FieldSince:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field since", values[i])
			} else if value.Valid {
				_m.Since = new(time.Time)
				*_m.Since = value.Time
			}
		case protocolstatus.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = new(string)
				*_m.Reason = value.String
			}
		case protocolstatus.FieldPerformer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field performer", values[i])
			} else if value.Valid {
				_m.Performer = new(string)
				*_m.Performer = value.String
			}
		case protocolstatus.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProtocolStatus.
// This includes values selected through modifiers, order, etc.
func (_m *ProtocolStatus) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProtocolStatus.
// Note that you need to call ProtocolStatus.Unwrap() before calling this method if this ProtocolStatus
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProtocolStatus) Update() *ProtocolStatusUpdateOne {
	return NewProtocolStatusClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProtocolStatus entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProtocolStatus) Unwrap() *ProtocolStatus {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProtocolStatus is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProtocolStatus) String() string {
	var builder strings.Builder
	builder.WriteString("ProtocolStatus(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	if v := _m.Since; v != nil {
		builder.WriteString("since=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Reason; v != nil {
		builder.WriteString("reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Performer; v != nil {
		builder.WriteString("performer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProtocolStatusSlice is a parsable slice of ProtocolStatus.
type ProtocolStatusSlice []*ProtocolStatus

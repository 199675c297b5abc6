// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/halfmoonlabs/chatloop/ent/usercurrentstatus"
)

// UserCurrentStatus is the model entity for the UserCurrentStatus schema.
type UserCurrentStatus struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// CustomerStatus holds the value of the "customer_status" field.
	CustomerStatus usercurrentstatus.CustomerStatus `json:"customer_status,omitempty"`
	// LtvTotalUsd holds the value of the "ltv_total_usd" field.
	LtvTotalUsd float64 `json:"ltv_total_usd,omitempty"`
	// Nickname holds the value of the "nickname" field.
	Nickname *string `json:"nickname,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserCurrentStatus) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usercurrentstatus.FieldLtvTotalUsd:
			values[i] = new(sql.NullFloat64)
		case usercurrentstatus.FieldID:
			values[i] = new(sql.NullInt64)
		case usercurrentstatus.FieldCustomerStatus, usercurrentstatus.FieldNickname:
			values[i] = new(sql.NullString)
		case usercurrentstatus.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserCurrentStatus fields.
func (_m *UserCurrentStatus) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usercurrentstatus.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case usercurrentstatus.FieldCustomerStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_status", values[i])
			} else if value.Valid {
				_m.CustomerStatus = usercurrentstatus.CustomerStatus(value.String)
			}
		case usercurrentstatus.FieldLtvTotalUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ltv_total_usd", values[i])
			} else if value.Valid {
				_m.LtvTotalUsd = value.Float64
			}
		case usercurrentstatus.FieldNickname:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nickname", values[i])
			} else if value.Valid {
				_m.Nickname = new(string)
				*_m.Nickname = value.String
			}
		case usercurrentstatus.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the UserCurrentStatus.
// This includes values selected through modifiers, order, etc.
func (_m *UserCurrentStatus) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserCurrentStatus.
// Note that you need to call UserCurrentStatus.Unwrap() before calling this method if this UserCurrentStatus
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserCurrentStatus) Update() *UserCurrentStatusUpdateOne {
	return NewUserCurrentStatusClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserCurrentStatus entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserCurrentStatus) Unwrap() *UserCurrentStatus {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserCurrentStatus is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserCurrentStatus) String() string {
	var builder strings.Builder
	builder.WriteString("UserCurrentStatus(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("customer_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.CustomerStatus))
	builder.WriteString(", ")
	builder.WriteString("ltv_total_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.LtvTotalUsd))
	builder.WriteString(", ")
	if v := _m.Nickname; v != nil {
		builder.WriteString("nickname=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserCurrentStatusSlice is a parsable slice of UserCurrentStatus.
type UserCurrentStatusSlice []*UserCurrentStatus

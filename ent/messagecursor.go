// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/halfmoonlabs/chatloop/ent/messagecursor"
)

// MessageCursor is the model entity for the MessageCursor schema.
type MessageCursor struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// ChatID holds the value of the "chat_id" field.
	ChatID int64 `json:"chat_id,omitempty"`
	// LastProcessedMessageID holds the value of the "last_processed_message_id" field.
	LastProcessedMessageID int64 `json:"last_processed_message_id,omitempty"`
	// LastProcessedAt holds the value of the "last_processed_at" field.
	LastProcessedAt time.Time `json:"last_processed_at,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MessageCursor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case messagecursor.FieldID, messagecursor.FieldChatID, messagecursor.FieldLastProcessedMessageID:
			values[i] = new(sql.NullInt64)
		case messagecursor.FieldLastProcessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MessageCursor fields.
func (_m *MessageCursor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case messagecursor.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case messagecursor.FieldChatID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = value.Int64
			}
		case messagecursor.FieldLastProcessedMessageID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_processed_message_id", values[i])
			} else if value.Valid {
				_m.LastProcessedMessageID = value.Int64
			}
		case messagecursor.FieldLastProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_processed_at", values[i])
			} else if value.Valid {
				_m.LastProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MessageCursor.
// This includes values selected through modifiers, order, etc.
func (_m *MessageCursor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MessageCursor.
// Note that you need to call MessageCursor.Unwrap() before calling this method if this MessageCursor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MessageCursor) Update() *MessageCursorUpdateOne {
	return NewMessageCursorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MessageCursor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MessageCursor) Unwrap() *MessageCursor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MessageCursor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MessageCursor) String() string {
	var builder strings.Builder
	builder.WriteString("MessageCursor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chat_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChatID))
	builder.WriteString(", ")
	builder.WriteString("last_processed_message_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastProcessedMessageID))
	builder.WriteString(", ")
	builder.WriteString("last_processed_at=")
	builder.WriteString(_m.LastProcessedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MessageCursors is a parsable slice of MessageCursor.
type MessageCursors []*MessageCursor

// Code generated by ent, DO NOT EDIT.

package messagecursor

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the messagecursor type in the database.
	Label = "message_cursor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldLastProcessedMessageID holds the string denoting the last_processed_message_id field in the database.
	FieldLastProcessedMessageID = "last_processed_message_id"
	// FieldLastProcessedAt holds the string denoting the last_processed_at field in the database.
	FieldLastProcessedAt = "last_processed_at"
	// Table holds the table name of the messagecursor in the database.
	Table = "message_cursors"
)

// Columns holds all SQL columns for messagecursor fields.
var Columns = []string{
	FieldID,
	FieldChatID,
	FieldLastProcessedMessageID,
	FieldLastProcessedAt,
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

// OrderOption defines the ordering options for the MessageCursor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// ByLastProcessedMessageID orders the results by the last_processed_message_id field.
func ByLastProcessedMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProcessedMessageID, opts...).ToFunc()
}

// ByLastProcessedAt orders the results by the last_processed_at field.
func ByLastProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProcessedAt, opts...).ToFunc()
}

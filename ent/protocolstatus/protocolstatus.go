// Code generated by ent, DO NOT EDIT.

package protocolstatus

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the protocolstatus type in the database.
	Label = "protocol_status"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldSince holds the string denoting the since field in the database.
	FieldSince = "since"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldPerformer holds the string denoting the performer field in the database.
	FieldPerformer = "performer"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the protocolstatus in the database.
	Table = "protocol_status"
)

// Columns holds all SQL columns for protocolstatus fields.
var Columns = []string{
	FieldID,
	FieldActive,
	FieldSince,
	FieldReason,
	FieldPerformer,
	FieldUpdatedAt,
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
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ProtocolStatus queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// BySince orders the results by the since field.
func BySince(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSince, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByPerformer orders the results by the performer field.
func ByPerformer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerformer, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

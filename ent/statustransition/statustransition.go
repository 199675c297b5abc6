// Code generated by ent, DO NOT EDIT.

package statustransition

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the statustransition type in the database.
	Label = "status_transition"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldFromStatus holds the string denoting the from_status field in the database.
	FieldFromStatus = "from_status"
	// FieldToStatus holds the string denoting the to_status field in the database.
	FieldToStatus = "to_status"
	// FieldDeltaLtvUsd holds the string denoting the delta_ltv_usd field in the database.
	FieldDeltaLtvUsd = "delta_ltv_usd"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldPerformer holds the string denoting the performer field in the database.
	FieldPerformer = "performer"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the statustransition in the database.
	Table = "status_transitions"
)

// Columns holds all SQL columns for statustransition fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldFromStatus,
	FieldToStatus,
	FieldDeltaLtvUsd,
	FieldReason,
	FieldPerformer,
	FieldCreatedAt,
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
	// DefaultDeltaLtvUsd holds the default value on creation for the "delta_ltv_usd" field.
	DefaultDeltaLtvUsd float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the StatusTransition queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByFromStatus orders the results by the from_status field.
func ByFromStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromStatus, opts...).ToFunc()
}

// ByToStatus orders the results by the to_status field.
func ByToStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToStatus, opts...).ToFunc()
}

// ByDeltaLtvUsd orders the results by the delta_ltv_usd field.
func ByDeltaLtvUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeltaLtvUsd, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByPerformer orders the results by the performer field.
func ByPerformer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerformer, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package recoveryoperation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the recoveryoperation type in the database.
	Label = "recovery_operation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "op_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldUsersScanned holds the string denoting the users_scanned field in the database.
	FieldUsersScanned = "users_scanned"
	// FieldMessagesRecovered holds the string denoting the messages_recovered field in the database.
	FieldMessagesRecovered = "messages_recovered"
	// FieldErrors holds the string denoting the errors field in the database.
	FieldErrors = "errors"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// Table holds the table name of the recoveryoperation in the database.
	Table = "recovery_operations"
)

// Columns holds all SQL columns for recoveryoperation fields.
var Columns = []string{
	FieldID,
	FieldStartedAt,
	FieldFinishedAt,
	FieldUsersScanned,
	FieldMessagesRecovered,
	FieldErrors,
	FieldStatus,
	FieldErrorMessage,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultUsersScanned holds the default value on creation for the "users_scanned" field.
	DefaultUsersScanned int
	// DefaultMessagesRecovered holds the default value on creation for the "messages_recovered" field.
	DefaultMessagesRecovered int
	// DefaultErrors holds the default value on creation for the "errors" field.
	DefaultErrors int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusHalted    Status = "halted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusHalted:
		return nil
	default:
		return fmt.Errorf("recoveryoperation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the RecoveryOperation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByUsersScanned orders the results by the users_scanned field.
func ByUsersScanned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsersScanned, opts...).ToFunc()
}

// ByMessagesRecovered orders the results by the messages_recovered field.
func ByMessagesRecovered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessagesRecovered, opts...).ToFunc()
}

// ByErrors orders the results by the errors field.
func ByErrors(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrors, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

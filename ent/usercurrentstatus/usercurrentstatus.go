// Code generated by ent, DO NOT EDIT.

package usercurrentstatus

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the usercurrentstatus type in the database.
	Label = "user_current_status"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldCustomerStatus holds the string denoting the customer_status field in the database.
	FieldCustomerStatus = "customer_status"
	// FieldLtvTotalUsd holds the string denoting the ltv_total_usd field in the database.
	FieldLtvTotalUsd = "ltv_total_usd"
	// FieldNickname holds the string denoting the nickname field in the database.
	FieldNickname = "nickname"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the usercurrentstatus in the database.
	Table = "user_current_status"
)

// Columns holds all SQL columns for usercurrentstatus fields.
var Columns = []string{
	FieldID,
	FieldCustomerStatus,
	FieldLtvTotalUsd,
	FieldNickname,
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
	// DefaultLtvTotalUsd holds the default value on creation for the "ltv_total_usd" field.
	DefaultLtvTotalUsd float64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// CustomerStatus defines the type for the "customer_status" enum field.
type CustomerStatus string

// CustomerStatusPROSPECT is the default value of the CustomerStatus enum.
const DefaultCustomerStatus = CustomerStatusPROSPECT

// CustomerStatus values.
const (
	CustomerStatusPROSPECT       CustomerStatus = "PROSPECT"
	CustomerStatusLEAD_QUALIFIED CustomerStatus = "LEAD_QUALIFIED"
	CustomerStatusCUSTOMER       CustomerStatus = "CUSTOMER"
	CustomerStatusCHURNED        CustomerStatus = "CHURNED"
	CustomerStatusLEAD_EXHAUSTED CustomerStatus = "LEAD_EXHAUSTED"
)

func (cs CustomerStatus) String() string {
	return string(cs)
}

// CustomerStatusValidator is a validator for the "customer_status" field enum values. It is called by the builders before save.
func CustomerStatusValidator(cs CustomerStatus) error {
	switch cs {
	case CustomerStatusPROSPECT, CustomerStatusLEAD_QUALIFIED, CustomerStatusCUSTOMER, CustomerStatusCHURNED, CustomerStatusLEAD_EXHAUSTED:
		return nil
	default:
		return fmt.Errorf("usercurrentstatus: invalid enum value for customer_status field: %q", cs)
	}
}

// OrderOption defines the ordering options for the UserCurrentStatus queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCustomerStatus orders the results by the customer_status field.
func ByCustomerStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerStatus, opts...).ToFunc()
}

// ByLtvTotalUsd orders the results by the ltv_total_usd field.
func ByLtvTotalUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLtvTotalUsd, opts...).ToFunc()
}

// ByNickname orders the results by the nickname field.
func ByNickname(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNickname, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

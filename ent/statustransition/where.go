// Code generated by ent, DO NOT EDIT.

package statustransition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/halfmoonlabs/chatloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEQ(FieldUserID, v))
}

// FromStatus applies equality check predicate on the "from_status" field. It's identical to FromStatusEQ.
func FromStatus(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEQ(FieldFromStatus, v))
}

// ToStatus applies equality check predicate on the "to_status" field. It's identical to ToStatusEQ.
func ToStatus(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEQ(FieldToStatus, v))
}

// DeltaLtvUsd applies equality check predicate on the "delta_ltv_usd" field. It's identical to DeltaLtvUsdEQ.
func DeltaLtvUsd(v float64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEQ(FieldDeltaLtvUsd, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEQ(FieldReason, v))
}

// Performer applies equality check predicate on the "performer" field. It's identical to PerformerEQ.
func Performer(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEQ(FieldPerformer, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldLTE(FieldUserID, v))
}

// FromStatusEQ applies the EQ predicate on the "from_status" field.
func FromStatusEQ(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEQ(FieldFromStatus, v))
}

// FromStatusNEQ applies the NEQ predicate on the "from_status" field.
func FromStatusNEQ(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNEQ(FieldFromStatus, v))
}

// FromStatusIn applies the In predicate on the "from_status" field.
func FromStatusIn(vs ...string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldIn(FieldFromStatus, vs...))
}

// FromStatusNotIn applies the NotIn predicate on the "from_status" field.
func FromStatusNotIn(vs ...string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNotIn(FieldFromStatus, vs...))
}

// FromStatusGT applies the GT predicate on the "from_status" field.
func FromStatusGT(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldGT(FieldFromStatus, v))
}

// FromStatusGTE applies the GTE predicate on the "from_status" field.
func FromStatusGTE(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldGTE(FieldFromStatus, v))
}

// FromStatusLT applies the LT predicate on the "from_status" field.
func FromStatusLT(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldLT(FieldFromStatus, v))
}

// FromStatusLTE applies the LTE predicate on the "from_status" field.
func FromStatusLTE(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldLTE(FieldFromStatus, v))
}

// FromStatusContains applies the Contains predicate on the "from_status" field.
func FromStatusContains(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldContains(FieldFromStatus, v))
}

// FromStatusHasPrefix applies the HasPrefix predicate on the "from_status" field.
func FromStatusHasPrefix(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldHasPrefix(FieldFromStatus, v))
}

// FromStatusHasSuffix applies the HasSuffix predicate on the "from_status" field.
func FromStatusHasSuffix(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldHasSuffix(FieldFromStatus, v))
}

// FromStatusEqualFold applies the EqualFold predicate on the "from_status" field.
func FromStatusEqualFold(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEqualFold(FieldFromStatus, v))
}

// FromStatusContainsFold applies the ContainsFold predicate on the "from_status" field.
func FromStatusContainsFold(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldContainsFold(FieldFromStatus, v))
}

// ToStatusEQ applies the EQ predicate on the "to_status" field.
func ToStatusEQ(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEQ(FieldToStatus, v))
}

// ToStatusNEQ applies the NEQ predicate on the "to_status" field.
func ToStatusNEQ(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNEQ(FieldToStatus, v))
}

// ToStatusIn applies the In predicate on the "to_status" field.
func ToStatusIn(vs ...string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldIn(FieldToStatus, vs...))
}

// ToStatusNotIn applies the NotIn predicate on the "to_status" field.
func ToStatusNotIn(vs ...string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNotIn(FieldToStatus, vs...))
}

// ToStatusGT applies the GT predicate on the "to_status" field.
func ToStatusGT(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldGT(FieldToStatus, v))
}

// ToStatusGTE applies the GTE predicate on the "to_status" field.
func ToStatusGTE(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldGTE(FieldToStatus, v))
}

// ToStatusLT applies the LT predicate on the "to_status" field.
func ToStatusLT(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldLT(FieldToStatus, v))
}

// ToStatusLTE applies the LTE predicate on the "to_status" field.
func ToStatusLTE(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldLTE(FieldToStatus, v))
}

// ToStatusContains applies the Contains predicate on the "to_status" field.
func ToStatusContains(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldContains(FieldToStatus, v))
}

// ToStatusHasPrefix applies the HasPrefix predicate on the "to_status" field.
func ToStatusHasPrefix(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldHasPrefix(FieldToStatus, v))
}

// ToStatusHasSuffix applies the HasSuffix predicate on the "to_status" field.
func ToStatusHasSuffix(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldHasSuffix(FieldToStatus, v))
}

// ToStatusEqualFold applies the EqualFold predicate on the "to_status" field.
func ToStatusEqualFold(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEqualFold(FieldToStatus, v))
}

// ToStatusContainsFold applies the ContainsFold predicate on the "to_status" field.
func ToStatusContainsFold(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldContainsFold(FieldToStatus, v))
}

// DeltaLtvUsdEQ applies the EQ predicate on the "delta_ltv_usd" field.
func DeltaLtvUsdEQ(v float64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEQ(FieldDeltaLtvUsd, v))
}

// DeltaLtvUsdNEQ applies the NEQ predicate on the "delta_ltv_usd" field.
func DeltaLtvUsdNEQ(v float64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNEQ(FieldDeltaLtvUsd, v))
}

// DeltaLtvUsdIn applies the In predicate on the "delta_ltv_usd" field.
func DeltaLtvUsdIn(vs ...float64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldIn(FieldDeltaLtvUsd, vs...))
}

// DeltaLtvUsdNotIn applies the NotIn predicate on the "delta_ltv_usd" field.
func DeltaLtvUsdNotIn(vs ...float64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNotIn(FieldDeltaLtvUsd, vs...))
}

// DeltaLtvUsdGT applies the GT predicate on the "delta_ltv_usd" field.
func DeltaLtvUsdGT(v float64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldGT(FieldDeltaLtvUsd, v))
}

// DeltaLtvUsdGTE applies the GTE predicate on the "delta_ltv_usd" field.
func DeltaLtvUsdGTE(v float64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldGTE(FieldDeltaLtvUsd, v))
}

// DeltaLtvUsdLT applies the LT predicate on the "delta_ltv_usd" field.
func DeltaLtvUsdLT(v float64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldLT(FieldDeltaLtvUsd, v))
}

// DeltaLtvUsdLTE applies the LTE predicate on the "delta_ltv_usd" field.
func DeltaLtvUsdLTE(v float64) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldLTE(FieldDeltaLtvUsd, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldContainsFold(FieldReason, v))
}

// PerformerEQ applies the EQ predicate on the "performer" field.
func PerformerEQ(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEQ(FieldPerformer, v))
}

// PerformerNEQ applies the NEQ predicate on the "performer" field.
func PerformerNEQ(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNEQ(FieldPerformer, v))
}

// PerformerIn applies the In predicate on the "performer" field.
func PerformerIn(vs ...string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldIn(FieldPerformer, vs...))
}

// PerformerNotIn applies the NotIn predicate on the "performer" field.
func PerformerNotIn(vs ...string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNotIn(FieldPerformer, vs...))
}

// PerformerGT applies the GT predicate on the "performer" field.
func PerformerGT(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldGT(FieldPerformer, v))
}

// PerformerGTE applies the GTE predicate on the "performer" field.
func PerformerGTE(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldGTE(FieldPerformer, v))
}

// PerformerLT applies the LT predicate on the "performer" field.
func PerformerLT(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldLT(FieldPerformer, v))
}

// PerformerLTE applies the LTE predicate on the "performer" field.
func PerformerLTE(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldLTE(FieldPerformer, v))
}

// PerformerContains applies the Contains predicate on the "performer" field.
func PerformerContains(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldContains(FieldPerformer, v))
}

// PerformerHasPrefix applies the HasPrefix predicate on the "performer" field.
func PerformerHasPrefix(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldHasPrefix(FieldPerformer, v))
}

// PerformerHasSuffix applies the HasSuffix predicate on the "performer" field.
func PerformerHasSuffix(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldHasSuffix(FieldPerformer, v))
}

// PerformerEqualFold applies the EqualFold predicate on the "performer" field.
func PerformerEqualFold(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEqualFold(FieldPerformer, v))
}

// PerformerContainsFold applies the ContainsFold predicate on the "performer" field.
func PerformerContainsFold(v string) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldContainsFold(FieldPerformer, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StatusTransition {
	return predicate.StatusTransition(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StatusTransition) predicate.StatusTransition {
	return predicate.StatusTransition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StatusTransition) predicate.StatusTransition {
	return predicate.StatusTransition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StatusTransition) predicate.StatusTransition {
	return predicate.StatusTransition(sql.NotPredicates(p))
}

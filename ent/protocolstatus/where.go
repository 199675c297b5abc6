// Code generated by ent, DO NOT EDIT.

package protocolstatus

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/halfmoonlabs/chatloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldLTE(FieldID, id))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldEQ(FieldActive, v))
}

// Since applies equality check predicate on the "since" field. It's identical to SinceEQ.
func Since(v time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldEQ(FieldSince, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldEQ(FieldReason, v))
}

// Performer applies equality check predicate on the "performer" field. It's identical to PerformerEQ.
func Performer(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldEQ(FieldPerformer, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldEQ(FieldUpdatedAt, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldNEQ(FieldActive, v))
}

// SinceEQ applies the EQ predicate on the "since" field.
func SinceEQ(v time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldEQ(FieldSince, v))
}

// SinceNEQ applies the NEQ predicate on the "since" field.
func SinceNEQ(v time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldNEQ(FieldSince, v))
}

// SinceIn applies the In predicate on the "since" field.
func SinceIn(vs ...time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldIn(FieldSince, vs...))
}

// SinceNotIn applies the NotIn predicate on the "since" field.
func SinceNotIn(vs ...time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldNotIn(FieldSince, vs...))
}

// SinceGT applies the GT predicate on the "since" field.
func SinceGT(v time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldGT(FieldSince, v))
}

// SinceGTE applies the GTE predicate on the "since" field.
func SinceGTE(v time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldGTE(FieldSince, v))
}

// SinceLT applies the LT predicate on the "since" field.
func SinceLT(v time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldLT(FieldSince, v))
}

// SinceLTE applies the LTE predicate on the "since" field.
func SinceLTE(v time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldLTE(FieldSince, v))
}

// SinceIsNil applies the IsNil predicate on the "since" field.
func SinceIsNil() predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldIsNull(FieldSince))
}

// SinceNotNil applies the NotNil predicate on the "since" field.
func SinceNotNil() predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldNotNull(FieldSince))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldContainsFold(FieldReason, v))
}

// PerformerEQ applies the EQ predicate on the "performer" field.
func PerformerEQ(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldEQ(FieldPerformer, v))
}

// PerformerNEQ applies the NEQ predicate on the "performer" field.
func PerformerNEQ(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldNEQ(FieldPerformer, v))
}

// PerformerIn applies the In predicate on the "performer" field.
func PerformerIn(vs ...string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldIn(FieldPerformer, vs...))
}

// PerformerNotIn applies the NotIn predicate on the "performer" field.
func PerformerNotIn(vs ...string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldNotIn(FieldPerformer, vs...))
}

// PerformerGT applies the GT predicate on the "performer" field.
func PerformerGT(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldGT(FieldPerformer, v))
}

// PerformerGTE applies the GTE predicate on the "performer" field.
func PerformerGTE(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldGTE(FieldPerformer, v))
}

// PerformerLT applies the LT predicate on the "performer" field.
func PerformerLT(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldLT(FieldPerformer, v))
}

// PerformerLTE applies the LTE predicate on the "performer" field.
func PerformerLTE(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldLTE(FieldPerformer, v))
}

// PerformerContains applies the Contains predicate on the "performer" field.
func PerformerContains(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldContains(FieldPerformer, v))
}

// PerformerHasPrefix applies the HasPrefix predicate on the "performer" field.
func PerformerHasPrefix(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldHasPrefix(FieldPerformer, v))
}

// PerformerHasSuffix applies the HasSuffix predicate on the "performer" field.
func PerformerHasSuffix(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldHasSuffix(FieldPerformer, v))
}

// PerformerIsNil applies the IsNil predicate on the "performer" field.
func PerformerIsNil() predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldIsNull(FieldPerformer))
}

// PerformerNotNil applies the NotNil predicate on the "performer" field.
func PerformerNotNil() predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldNotNull(FieldPerformer))
}

// PerformerEqualFold applies the EqualFold predicate on the "performer" field.
func PerformerEqualFold(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldEqualFold(FieldPerformer, v))
}

// PerformerContainsFold applies the ContainsFold predicate on the "performer" field.
func PerformerContainsFold(v string) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldContainsFold(FieldPerformer, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProtocolStatus) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProtocolStatus) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProtocolStatus) predicate.ProtocolStatus {
	return predicate.ProtocolStatus(sql.NotPredicates(p))
}

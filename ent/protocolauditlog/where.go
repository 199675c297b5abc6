// Code generated by ent, DO NOT EDIT.

package protocolauditlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/halfmoonlabs/chatloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldEQ(FieldUserID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldEQ(FieldAction, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldEQ(FieldReason, v))
}

// Performer applies equality check predicate on the "performer" field. It's identical to PerformerEQ.
func Performer(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldEQ(FieldPerformer, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldLTE(FieldUserID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldContainsFold(FieldAction, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldContainsFold(FieldReason, v))
}

// PerformerEQ applies the EQ predicate on the "performer" field.
func PerformerEQ(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldEQ(FieldPerformer, v))
}

// PerformerNEQ applies the NEQ predicate on the "performer" field.
func PerformerNEQ(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldNEQ(FieldPerformer, v))
}

// PerformerIn applies the In predicate on the "performer" field.
func PerformerIn(vs ...string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldIn(FieldPerformer, vs...))
}

// PerformerNotIn applies the NotIn predicate on the "performer" field.
func PerformerNotIn(vs ...string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldNotIn(FieldPerformer, vs...))
}

// PerformerGT applies the GT predicate on the "performer" field.
func PerformerGT(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldGT(FieldPerformer, v))
}

// PerformerGTE applies the GTE predicate on the "performer" field.
func PerformerGTE(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldGTE(FieldPerformer, v))
}

// PerformerLT applies the LT predicate on the "performer" field.
func PerformerLT(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldLT(FieldPerformer, v))
}

// PerformerLTE applies the LTE predicate on the "performer" field.
func PerformerLTE(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldLTE(FieldPerformer, v))
}

// PerformerContains applies the Contains predicate on the "performer" field.
func PerformerContains(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldContains(FieldPerformer, v))
}

// PerformerHasPrefix applies the HasPrefix predicate on the "performer" field.
func PerformerHasPrefix(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldHasPrefix(FieldPerformer, v))
}

// PerformerHasSuffix applies the HasSuffix predicate on the "performer" field.
func PerformerHasSuffix(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldHasSuffix(FieldPerformer, v))
}

// PerformerEqualFold applies the EqualFold predicate on the "performer" field.
func PerformerEqualFold(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldEqualFold(FieldPerformer, v))
}

// PerformerContainsFold applies the ContainsFold predicate on the "performer" field.
func PerformerContainsFold(v string) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldContainsFold(FieldPerformer, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProtocolAuditLog) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProtocolAuditLog) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProtocolAuditLog) predicate.ProtocolAuditLog {
	return predicate.ProtocolAuditLog(sql.NotPredicates(p))
}

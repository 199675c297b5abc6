// Code generated by ent, DO NOT EDIT.

package recoveryoperation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/halfmoonlabs/chatloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldContainsFold(FieldID, id))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEQ(FieldFinishedAt, v))
}

// UsersScanned applies equality check predicate on the "users_scanned" field. It's identical to UsersScannedEQ.
func UsersScanned(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEQ(FieldUsersScanned, v))
}

// MessagesRecovered applies equality check predicate on the "messages_recovered" field. It's identical to MessagesRecoveredEQ.
func MessagesRecovered(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEQ(FieldMessagesRecovered, v))
}

// Errors applies equality check predicate on the "errors" field. It's identical to ErrorsEQ.
func Errors(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEQ(FieldErrors, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNotNull(FieldFinishedAt))
}

// UsersScannedEQ applies the EQ predicate on the "users_scanned" field.
func UsersScannedEQ(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEQ(FieldUsersScanned, v))
}

// UsersScannedNEQ applies the NEQ predicate on the "users_scanned" field.
func UsersScannedNEQ(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNEQ(FieldUsersScanned, v))
}

// UsersScannedIn applies the In predicate on the "users_scanned" field.
func UsersScannedIn(vs ...int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldIn(FieldUsersScanned, vs...))
}

// UsersScannedNotIn applies the NotIn predicate on the "users_scanned" field.
func UsersScannedNotIn(vs ...int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNotIn(FieldUsersScanned, vs...))
}

// UsersScannedGT applies the GT predicate on the "users_scanned" field.
func UsersScannedGT(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldGT(FieldUsersScanned, v))
}

// UsersScannedGTE applies the GTE predicate on the "users_scanned" field.
func UsersScannedGTE(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldGTE(FieldUsersScanned, v))
}

// UsersScannedLT applies the LT predicate on the "users_scanned" field.
func UsersScannedLT(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldLT(FieldUsersScanned, v))
}

// UsersScannedLTE applies the LTE predicate on the "users_scanned" field.
func UsersScannedLTE(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldLTE(FieldUsersScanned, v))
}

// MessagesRecoveredEQ applies the EQ predicate on the "messages_recovered" field.
func MessagesRecoveredEQ(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEQ(FieldMessagesRecovered, v))
}

// MessagesRecoveredNEQ applies the NEQ predicate on the "messages_recovered" field.
func MessagesRecoveredNEQ(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNEQ(FieldMessagesRecovered, v))
}

// MessagesRecoveredIn applies the In predicate on the "messages_recovered" field.
func MessagesRecoveredIn(vs ...int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldIn(FieldMessagesRecovered, vs...))
}

// MessagesRecoveredNotIn applies the NotIn predicate on the "messages_recovered" field.
func MessagesRecoveredNotIn(vs ...int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNotIn(FieldMessagesRecovered, vs...))
}

// MessagesRecoveredGT applies the GT predicate on the "messages_recovered" field.
func MessagesRecoveredGT(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldGT(FieldMessagesRecovered, v))
}

// MessagesRecoveredGTE applies the GTE predicate on the "messages_recovered" field.
func MessagesRecoveredGTE(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldGTE(FieldMessagesRecovered, v))
}

// MessagesRecoveredLT applies the LT predicate on the "messages_recovered" field.
func MessagesRecoveredLT(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldLT(FieldMessagesRecovered, v))
}

// MessagesRecoveredLTE applies the LTE predicate on the "messages_recovered" field.
func MessagesRecoveredLTE(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldLTE(FieldMessagesRecovered, v))
}

// ErrorsEQ applies the EQ predicate on the "errors" field.
func ErrorsEQ(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEQ(FieldErrors, v))
}

// ErrorsNEQ applies the NEQ predicate on the "errors" field.
func ErrorsNEQ(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNEQ(FieldErrors, v))
}

// ErrorsIn applies the In predicate on the "errors" field.
func ErrorsIn(vs ...int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldIn(FieldErrors, vs...))
}

// ErrorsNotIn applies the NotIn predicate on the "errors" field.
func ErrorsNotIn(vs ...int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNotIn(FieldErrors, vs...))
}

// ErrorsGT applies the GT predicate on the "errors" field.
func ErrorsGT(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldGT(FieldErrors, v))
}

// ErrorsGTE applies the GTE predicate on the "errors" field.
func ErrorsGTE(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldGTE(FieldErrors, v))
}

// ErrorsLT applies the LT predicate on the "errors" field.
func ErrorsLT(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldLT(FieldErrors, v))
}

// ErrorsLTE applies the LTE predicate on the "errors" field.
func ErrorsLTE(v int) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldLTE(FieldErrors, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecoveryOperation) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecoveryOperation) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecoveryOperation) predicate.RecoveryOperation {
	return predicate.RecoveryOperation(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package messagecursor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/halfmoonlabs/chatloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldLTE(FieldID, id))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldEQ(FieldChatID, v))
}

// LastProcessedMessageID applies equality check predicate on the "last_processed_message_id" field. It's identical to LastProcessedMessageIDEQ.
func LastProcessedMessageID(v int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldEQ(FieldLastProcessedMessageID, v))
}

// LastProcessedAt applies equality check predicate on the "last_processed_at" field. It's identical to LastProcessedAtEQ.
func LastProcessedAt(v time.Time) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldEQ(FieldLastProcessedAt, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldLTE(FieldChatID, v))
}

// LastProcessedMessageIDEQ applies the EQ predicate on the "last_processed_message_id" field.
func LastProcessedMessageIDEQ(v int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldEQ(FieldLastProcessedMessageID, v))
}

// LastProcessedMessageIDNEQ applies the NEQ predicate on the "last_processed_message_id" field.
func LastProcessedMessageIDNEQ(v int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldNEQ(FieldLastProcessedMessageID, v))
}

// LastProcessedMessageIDIn applies the In predicate on the "last_processed_message_id" field.
func LastProcessedMessageIDIn(vs ...int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldIn(FieldLastProcessedMessageID, vs...))
}

// LastProcessedMessageIDNotIn applies the NotIn predicate on the "last_processed_message_id" field.
func LastProcessedMessageIDNotIn(vs ...int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldNotIn(FieldLastProcessedMessageID, vs...))
}

// LastProcessedMessageIDGT applies the GT predicate on the "last_processed_message_id" field.
func LastProcessedMessageIDGT(v int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldGT(FieldLastProcessedMessageID, v))
}

// LastProcessedMessageIDGTE applies the GTE predicate on the "last_processed_message_id" field.
func LastProcessedMessageIDGTE(v int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldGTE(FieldLastProcessedMessageID, v))
}

// LastProcessedMessageIDLT applies the LT predicate on the "last_processed_message_id" field.
func LastProcessedMessageIDLT(v int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldLT(FieldLastProcessedMessageID, v))
}

// LastProcessedMessageIDLTE applies the LTE predicate on the "last_processed_message_id" field.
func LastProcessedMessageIDLTE(v int64) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldLTE(FieldLastProcessedMessageID, v))
}

// LastProcessedAtEQ applies the EQ predicate on the "last_processed_at" field.
func LastProcessedAtEQ(v time.Time) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldEQ(FieldLastProcessedAt, v))
}

// LastProcessedAtNEQ applies the NEQ predicate on the "last_processed_at" field.
func LastProcessedAtNEQ(v time.Time) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldNEQ(FieldLastProcessedAt, v))
}

// LastProcessedAtIn applies the In predicate on the "last_processed_at" field.
func LastProcessedAtIn(vs ...time.Time) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldIn(FieldLastProcessedAt, vs...))
}

// LastProcessedAtNotIn applies the NotIn predicate on the "last_processed_at" field.
func LastProcessedAtNotIn(vs ...time.Time) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldNotIn(FieldLastProcessedAt, vs...))
}

// LastProcessedAtGT applies the GT predicate on the "last_processed_at" field.
func LastProcessedAtGT(v time.Time) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldGT(FieldLastProcessedAt, v))
}

// LastProcessedAtGTE applies the GTE predicate on the "last_processed_at" field.
func LastProcessedAtGTE(v time.Time) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldGTE(FieldLastProcessedAt, v))
}

// LastProcessedAtLT applies the LT predicate on the "last_processed_at" field.
func LastProcessedAtLT(v time.Time) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldLT(FieldLastProcessedAt, v))
}

// LastProcessedAtLTE applies the LTE predicate on the "last_processed_at" field.
func LastProcessedAtLTE(v time.Time) predicate.MessageCursor {
	return predicate.MessageCursor(sql.FieldLTE(FieldLastProcessedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MessageCursor) predicate.MessageCursor {
	return predicate.MessageCursor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MessageCursor) predicate.MessageCursor {
	return predicate.MessageCursor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MessageCursor) predicate.MessageCursor {
	return predicate.MessageCursor(sql.NotPredicates(p))
}

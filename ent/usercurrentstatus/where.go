// Code generated by ent, DO NOT EDIT.

package usercurrentstatus

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/halfmoonlabs/chatloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldLTE(FieldID, id))
}

// LtvTotalUsd applies equality check predicate on the "ltv_total_usd" field. It's identical to LtvTotalUsdEQ.
func LtvTotalUsd(v float64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldEQ(FieldLtvTotalUsd, v))
}

// Nickname applies equality check predicate on the "nickname" field. It's identical to NicknameEQ.
func Nickname(v string) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldEQ(FieldNickname, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldEQ(FieldUpdatedAt, v))
}

// CustomerStatusEQ applies the EQ predicate on the "customer_status" field.
func CustomerStatusEQ(v CustomerStatus) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldEQ(FieldCustomerStatus, v))
}

// CustomerStatusNEQ applies the NEQ predicate on the "customer_status" field.
func CustomerStatusNEQ(v CustomerStatus) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldNEQ(FieldCustomerStatus, v))
}

// CustomerStatusIn applies the In predicate on the "customer_status" field.
func CustomerStatusIn(vs ...CustomerStatus) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldIn(FieldCustomerStatus, vs...))
}

// CustomerStatusNotIn applies the NotIn predicate on the "customer_status" field.
func CustomerStatusNotIn(vs ...CustomerStatus) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldNotIn(FieldCustomerStatus, vs...))
}

// LtvTotalUsdEQ applies the EQ predicate on the "ltv_total_usd" field.
func LtvTotalUsdEQ(v float64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldEQ(FieldLtvTotalUsd, v))
}

// LtvTotalUsdNEQ applies the NEQ predicate on the "ltv_total_usd" field.
func LtvTotalUsdNEQ(v float64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldNEQ(FieldLtvTotalUsd, v))
}

// LtvTotalUsdIn applies the In predicate on the "ltv_total_usd" field.
func LtvTotalUsdIn(vs ...float64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldIn(FieldLtvTotalUsd, vs...))
}

// LtvTotalUsdNotIn applies the NotIn predicate on the "ltv_total_usd" field.
func LtvTotalUsdNotIn(vs ...float64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldNotIn(FieldLtvTotalUsd, vs...))
}

// LtvTotalUsdGT applies the GT predicate on the "ltv_total_usd" field.
func LtvTotalUsdGT(v float64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldGT(FieldLtvTotalUsd, v))
}

// LtvTotalUsdGTE applies the GTE predicate on the "ltv_total_usd" field.
func LtvTotalUsdGTE(v float64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldGTE(FieldLtvTotalUsd, v))
}

// LtvTotalUsdLT applies the LT predicate on the "ltv_total_usd" field.
func LtvTotalUsdLT(v float64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldLT(FieldLtvTotalUsd, v))
}

// LtvTotalUsdLTE applies the LTE predicate on the "ltv_total_usd" field.
func LtvTotalUsdLTE(v float64) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldLTE(FieldLtvTotalUsd, v))
}

// NicknameEQ applies the EQ predicate on the "nickname" field.
func NicknameEQ(v string) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldEQ(FieldNickname, v))
}

// NicknameNEQ applies the NEQ predicate on the "nickname" field.
func NicknameNEQ(v string) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldNEQ(FieldNickname, v))
}

// NicknameIn applies the In predicate on the "nickname" field.
func NicknameIn(vs ...string) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldIn(FieldNickname, vs...))
}

// NicknameNotIn applies the NotIn predicate on the "nickname" field.
func NicknameNotIn(vs ...string) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldNotIn(FieldNickname, vs...))
}

// NicknameGT applies the GT predicate on the "nickname" field.
func NicknameGT(v string) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldGT(FieldNickname, v))
}

// NicknameGTE applies the GTE predicate on the "nickname" field.
func NicknameGTE(v string) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldGTE(FieldNickname, v))
}

// NicknameLT applies the LT predicate on the "nickname" field.
func NicknameLT(v string) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldLT(FieldNickname, v))
}

// NicknameLTE applies the LTE predicate on the "nickname" field.
func NicknameLTE(v string) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldLTE(FieldNickname, v))
}

// NicknameContains applies the Contains predicate on the "nickname" field.
func NicknameContains(v string) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldContains(FieldNickname, v))
}

// NicknameHasPrefix applies the HasPrefix predicate on the "nickname" field.
func NicknameHasPrefix(v string) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldHasPrefix(FieldNickname, v))
}

// NicknameHasSuffix applies the HasSuffix predicate on the "nickname" field.
func NicknameHasSuffix(v string) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldHasSuffix(FieldNickname, v))
}

// NicknameIsNil applies the IsNil predicate on the "nickname" field.
func NicknameIsNil() predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldIsNull(FieldNickname))
}

// NicknameNotNil applies the NotNil predicate on the "nickname" field.
func NicknameNotNil() predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldNotNull(FieldNickname))
}

// NicknameEqualFold applies the EqualFold predicate on the "nickname" field.
func NicknameEqualFold(v string) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldEqualFold(FieldNickname, v))
}

// NicknameContainsFold applies the ContainsFold predicate on the "nickname" field.
func NicknameContainsFold(v string) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldContainsFold(FieldNickname, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserCurrentStatus) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserCurrentStatus) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserCurrentStatus) predicate.UserCurrentStatus {
	return predicate.UserCurrentStatus(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package developmentplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/acampos/giftwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldLTE(FieldID, id))
}

// DocKey applies equality check predicate on the "doc_key" field. It's identical to DocKeyEQ.
func DocKey(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldEQ(FieldDocKey, v))
}

// OwnerName applies equality check predicate on the "owner_name" field. It's identical to OwnerNameEQ.
func OwnerName(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldEQ(FieldOwnerName, v))
}

// OwnerEmail applies equality check predicate on the "owner_email" field. It's identical to OwnerEmailEQ.
func OwnerEmail(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldEQ(FieldOwnerEmail, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldEQ(FieldLastUpdated, v))
}

// DocKeyEQ applies the EQ predicate on the "doc_key" field.
func DocKeyEQ(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldEQ(FieldDocKey, v))
}

// DocKeyNEQ applies the NEQ predicate on the "doc_key" field.
func DocKeyNEQ(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldNEQ(FieldDocKey, v))
}

// DocKeyIn applies the In predicate on the "doc_key" field.
func DocKeyIn(vs ...string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldIn(FieldDocKey, vs...))
}

// DocKeyNotIn applies the NotIn predicate on the "doc_key" field.
func DocKeyNotIn(vs ...string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldNotIn(FieldDocKey, vs...))
}

// DocKeyGT applies the GT predicate on the "doc_key" field.
func DocKeyGT(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldGT(FieldDocKey, v))
}

// DocKeyGTE applies the GTE predicate on the "doc_key" field.
func DocKeyGTE(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldGTE(FieldDocKey, v))
}

// DocKeyLT applies the LT predicate on the "doc_key" field.
func DocKeyLT(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldLT(FieldDocKey, v))
}

// DocKeyLTE applies the LTE predicate on the "doc_key" field.
func DocKeyLTE(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldLTE(FieldDocKey, v))
}

// DocKeyContains applies the Contains predicate on the "doc_key" field.
func DocKeyContains(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldContains(FieldDocKey, v))
}

// DocKeyHasPrefix applies the HasPrefix predicate on the "doc_key" field.
func DocKeyHasPrefix(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldHasPrefix(FieldDocKey, v))
}

// DocKeyHasSuffix applies the HasSuffix predicate on the "doc_key" field.
func DocKeyHasSuffix(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldHasSuffix(FieldDocKey, v))
}

// DocKeyEqualFold applies the EqualFold predicate on the "doc_key" field.
func DocKeyEqualFold(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldEqualFold(FieldDocKey, v))
}

// DocKeyContainsFold applies the ContainsFold predicate on the "doc_key" field.
func DocKeyContainsFold(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldContainsFold(FieldDocKey, v))
}

// OwnerNameEQ applies the EQ predicate on the "owner_name" field.
func OwnerNameEQ(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldEQ(FieldOwnerName, v))
}

// OwnerNameNEQ applies the NEQ predicate on the "owner_name" field.
func OwnerNameNEQ(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldNEQ(FieldOwnerName, v))
}

// OwnerNameIn applies the In predicate on the "owner_name" field.
func OwnerNameIn(vs ...string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldIn(FieldOwnerName, vs...))
}

// OwnerNameNotIn applies the NotIn predicate on the "owner_name" field.
func OwnerNameNotIn(vs ...string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldNotIn(FieldOwnerName, vs...))
}

// OwnerNameGT applies the GT predicate on the "owner_name" field.
func OwnerNameGT(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldGT(FieldOwnerName, v))
}

// OwnerNameGTE applies the GTE predicate on the "owner_name" field.
func OwnerNameGTE(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldGTE(FieldOwnerName, v))
}

// OwnerNameLT applies the LT predicate on the "owner_name" field.
func OwnerNameLT(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldLT(FieldOwnerName, v))
}

// OwnerNameLTE applies the LTE predicate on the "owner_name" field.
func OwnerNameLTE(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldLTE(FieldOwnerName, v))
}

// OwnerNameContains applies the Contains predicate on the "owner_name" field.
func OwnerNameContains(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldContains(FieldOwnerName, v))
}

// OwnerNameHasPrefix applies the HasPrefix predicate on the "owner_name" field.
func OwnerNameHasPrefix(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldHasPrefix(FieldOwnerName, v))
}

// OwnerNameHasSuffix applies the HasSuffix predicate on the "owner_name" field.
func OwnerNameHasSuffix(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldHasSuffix(FieldOwnerName, v))
}

// OwnerNameEqualFold applies the EqualFold predicate on the "owner_name" field.
func OwnerNameEqualFold(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldEqualFold(FieldOwnerName, v))
}

// OwnerNameContainsFold applies the ContainsFold predicate on the "owner_name" field.
func OwnerNameContainsFold(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldContainsFold(FieldOwnerName, v))
}

// OwnerEmailEQ applies the EQ predicate on the "owner_email" field.
func OwnerEmailEQ(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldEQ(FieldOwnerEmail, v))
}

// OwnerEmailNEQ applies the NEQ predicate on the "owner_email" field.
func OwnerEmailNEQ(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldNEQ(FieldOwnerEmail, v))
}

// OwnerEmailIn applies the In predicate on the "owner_email" field.
func OwnerEmailIn(vs ...string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldIn(FieldOwnerEmail, vs...))
}

// OwnerEmailNotIn applies the NotIn predicate on the "owner_email" field.
func OwnerEmailNotIn(vs ...string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldNotIn(FieldOwnerEmail, vs...))
}

// OwnerEmailGT applies the GT predicate on the "owner_email" field.
func OwnerEmailGT(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldGT(FieldOwnerEmail, v))
}

// OwnerEmailGTE applies the GTE predicate on the "owner_email" field.
func OwnerEmailGTE(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldGTE(FieldOwnerEmail, v))
}

// OwnerEmailLT applies the LT predicate on the "owner_email" field.
func OwnerEmailLT(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldLT(FieldOwnerEmail, v))
}

// OwnerEmailLTE applies the LTE predicate on the "owner_email" field.
func OwnerEmailLTE(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldLTE(FieldOwnerEmail, v))
}

// OwnerEmailContains applies the Contains predicate on the "owner_email" field.
func OwnerEmailContains(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldContains(FieldOwnerEmail, v))
}

// OwnerEmailHasPrefix applies the HasPrefix predicate on the "owner_email" field.
func OwnerEmailHasPrefix(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldHasPrefix(FieldOwnerEmail, v))
}

// OwnerEmailHasSuffix applies the HasSuffix predicate on the "owner_email" field.
func OwnerEmailHasSuffix(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldHasSuffix(FieldOwnerEmail, v))
}

// OwnerEmailEqualFold applies the EqualFold predicate on the "owner_email" field.
func OwnerEmailEqualFold(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldEqualFold(FieldOwnerEmail, v))
}

// OwnerEmailContainsFold applies the ContainsFold predicate on the "owner_email" field.
func OwnerEmailContainsFold(v string) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldContainsFold(FieldOwnerEmail, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DevelopmentPlan) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DevelopmentPlan) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DevelopmentPlan) predicate.DevelopmentPlan {
	return predicate.DevelopmentPlan(sql.NotPredicates(p))
}

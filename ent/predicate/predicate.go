// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DevelopmentPlan is the predicate function for developmentplan builders.
type DevelopmentPlan func(*sql.Selector)

// GiftResult is the predicate function for giftresult builders.
type GiftResult func(*sql.Selector)

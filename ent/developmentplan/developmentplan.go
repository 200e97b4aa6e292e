// Code generated by ent, DO NOT EDIT.

package developmentplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the developmentplan type in the database.
	Label = "development_plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocKey holds the string denoting the doc_key field in the database.
	FieldDocKey = "doc_key"
	// FieldOwnerName holds the string denoting the owner_name field in the database.
	FieldOwnerName = "owner_name"
	// FieldOwnerEmail holds the string denoting the owner_email field in the database.
	FieldOwnerEmail = "owner_email"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// Table holds the table name of the developmentplan in the database.
	Table = "development_plans"
)

// Columns holds all SQL columns for developmentplan fields.
var Columns = []string{
	FieldID,
	FieldDocKey,
	FieldOwnerName,
	FieldOwnerEmail,
	FieldData,
	FieldLastUpdated,
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
	// DocKeyValidator is a validator for the "doc_key" field. It is called by the builders before save.
	DocKeyValidator func(string) error
	// DefaultOwnerName holds the default value on creation for the "owner_name" field.
	DefaultOwnerName string
	// DefaultOwnerEmail holds the default value on creation for the "owner_email" field.
	DefaultOwnerEmail string
	// DefaultLastUpdated holds the default value on creation for the "last_updated" field.
	DefaultLastUpdated func() time.Time
	// UpdateDefaultLastUpdated holds the default value on update for the "last_updated" field.
	UpdateDefaultLastUpdated func() time.Time
)

// OrderOption defines the ordering options for the DevelopmentPlan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocKey orders the results by the doc_key field.
func ByDocKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocKey, opts...).ToFunc()
}

// ByOwnerName orders the results by the owner_name field.
func ByOwnerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerName, opts...).ToFunc()
}

// ByOwnerEmail orders the results by the owner_email field.
func ByOwnerEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerEmail, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}

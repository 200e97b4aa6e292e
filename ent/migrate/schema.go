// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DevelopmentPlansColumns holds the columns for the "development_plans" table.
	DevelopmentPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "doc_key", Type: field.TypeString, Unique: true},
		{Name: "owner_name", Type: field.TypeString, Default: ""},
		{Name: "owner_email", Type: field.TypeString, Default: ""},
		{Name: "data", Type: field.TypeJSON},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// DevelopmentPlansTable holds the schema information for the "development_plans" table.
	DevelopmentPlansTable = &schema.Table{
		Name:       "development_plans",
		Columns:    DevelopmentPlansColumns,
		PrimaryKey: []*schema.Column{DevelopmentPlansColumns[0]},
	}
	// GiftResultsColumns holds the columns for the "gift_results" table.
	GiftResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "submission_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "user_email", Type: field.TypeString},
		{Name: "top_gifts", Type: field.TypeJSON},
		{Name: "all_scores", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GiftResultsTable holds the schema information for the "gift_results" table.
	GiftResultsTable = &schema.Table{
		Name:       "gift_results",
		Columns:    GiftResultsColumns,
		PrimaryKey: []*schema.Column{GiftResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "giftresult_user_email",
				Unique:  false,
				Columns: []*schema.Column{GiftResultsColumns[3]},
			},
			{
				Name:    "giftresult_user_email_created_at",
				Unique:  false,
				Columns: []*schema.Column{GiftResultsColumns[3], GiftResultsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DevelopmentPlansTable,
		GiftResultsTable,
	}
)

func init() {
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/acampos/giftwise/ent/developmentplan"
	"github.com/acampos/giftwise/ent/giftresult"
	"github.com/acampos/giftwise/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	developmentplanFields := schema.DevelopmentPlan{}.Fields()
	_ = developmentplanFields
	// developmentplanDescDocKey is the schema descriptor for doc_key field.
	developmentplanDescDocKey := developmentplanFields[0].Descriptor()
	// developmentplan.DocKeyValidator is a validator for the "doc_key" field. It is called by the builders before save.
	developmentplan.DocKeyValidator = developmentplanDescDocKey.Validators[0].(func(string) error)
	// developmentplanDescOwnerName is the schema descriptor for owner_name field.
	developmentplanDescOwnerName := developmentplanFields[1].Descriptor()
	// developmentplan.DefaultOwnerName holds the default value on creation for the owner_name field.
	developmentplan.DefaultOwnerName = developmentplanDescOwnerName.Default.(string)
	// developmentplanDescOwnerEmail is the schema descriptor for owner_email field.
	developmentplanDescOwnerEmail := developmentplanFields[2].Descriptor()
	// developmentplan.DefaultOwnerEmail holds the default value on creation for the owner_email field.
	developmentplan.DefaultOwnerEmail = developmentplanDescOwnerEmail.Default.(string)
	// developmentplanDescLastUpdated is the schema descriptor for last_updated field.
	developmentplanDescLastUpdated := developmentplanFields[4].Descriptor()
	// developmentplan.DefaultLastUpdated holds the default value on creation for the last_updated field.
	developmentplan.DefaultLastUpdated = developmentplanDescLastUpdated.Default.(func() time.Time)
	// developmentplan.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	developmentplan.UpdateDefaultLastUpdated = developmentplanDescLastUpdated.UpdateDefault.(func() time.Time)
	giftresultFields := schema.GiftResult{}.Fields()
	_ = giftresultFields
	// giftresultDescSubmissionID is the schema descriptor for submission_id field.
	giftresultDescSubmissionID := giftresultFields[0].Descriptor()
	// giftresult.SubmissionIDValidator is a validator for the "submission_id" field. It is called by the builders before save.
	giftresult.SubmissionIDValidator = giftresultDescSubmissionID.Validators[0].(func(string) error)
	// giftresultDescName is the schema descriptor for name field.
	giftresultDescName := giftresultFields[1].Descriptor()
	// giftresult.NameValidator is a validator for the "name" field. It is called by the builders before save.
	giftresult.NameValidator = giftresultDescName.Validators[0].(func(string) error)
	// giftresultDescUserEmail is the schema descriptor for user_email field.
	giftresultDescUserEmail := giftresultFields[2].Descriptor()
	// giftresult.UserEmailValidator is a validator for the "user_email" field. It is called by the builders before save.
	giftresult.UserEmailValidator = giftresultDescUserEmail.Validators[0].(func(string) error)
	// giftresultDescCreatedAt is the schema descriptor for created_at field.
	giftresultDescCreatedAt := giftresultFields[5].Descriptor()
	// giftresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	giftresult.DefaultCreatedAt = giftresultDescCreatedAt.Default.(func() time.Time)
}

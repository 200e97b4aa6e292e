package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// DevelopmentPlan is a mutable per-user plan document keyed by the
// sanitized respondent email. Writes are merge-upserts: fields present
// in the payload overwrite, absent fields keep their stored values.
type DevelopmentPlan struct {
	ent.Schema
}

func (DevelopmentPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("doc_key").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Sanitized email, the document key"),
		field.String("owner_name").
			Default("").
			Comment("Display name of the plan owner"),
		field.String("owner_email").
			Default("").
			Comment("Raw (unsanitized) owner email"),
		field.JSON("data", map[string]any{}).
			Comment("Full plan document as JSON"),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Store-assigned last update time"),
	}
}

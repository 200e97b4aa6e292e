package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GiftScoreDoc is the stored shape of one gift score. Only the gift id
// is persisted; names and descriptions are rehydrated from the catalog
// on read, so stored documents survive catalog wording changes.
type GiftScoreDoc struct {
	GiftID string `json:"giftId"`
	Score  int    `json:"score"`
}

// GiftResult is an append-only questionnaire result record. Rows are
// written once with a store-assigned creation timestamp and never
// updated.
type GiftResult struct {
	ent.Schema
}

func (GiftResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("submission_id").
			NotEmpty().
			Immutable().
			Comment("Client-generated uuid for the submission"),
		field.String("name").
			NotEmpty().
			Immutable().
			Comment("Respondent display name"),
		field.String("user_email").
			NotEmpty().
			Immutable().
			Comment("Respondent email, the query key for recall"),
		field.JSON("top_gifts", []GiftScoreDoc{}).
			Immutable().
			Comment("Primary gifts in rank order"),
		field.JSON("all_scores", []GiftScoreDoc{}).
			Immutable().
			Comment("Every gift's score in catalog order"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Store-assigned creation time"),
	}
}

func (GiftResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_email"),
		index.Fields("user_email", "created_at"),
	}
}

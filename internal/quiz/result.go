package quiz

import (
	"time"

	"github.com/acampos/giftwise/internal/catalog"
	"github.com/acampos/giftwise/internal/i18n"
)

// GiftScore is one gift's computed score for a respondent.
type GiftScore struct {
	Gift  catalog.GiftDefinition
	Score int
}

// UserResult is a completed questionnaire outcome. Immutable after
// creation except for SaveError, which is a session-local annotation set
// when persisting the record failed; it is never written to the store.
type UserResult struct {
	// ID is the store-assigned row id, zero until persisted.
	ID int

	// SubmissionID is a client-generated uuid identifying this submission.
	SubmissionID string

	Name  string
	Email string

	// TopGifts holds the highest-scoring gifts in rank order.
	TopGifts []GiftScore

	// AllScores holds every gift's score in catalog order.
	AllScores []GiftScore

	CreatedAt time.Time

	// SaveError is set when the append to the store failed. Viewing
	// results is never blocked by it.
	SaveError *i18n.Text
}

// PrimaryGiftsText renders the top gifts as a comma-separated list of
// localized names, the value auto-filled into a new development plan.
func PrimaryGiftsText(top []GiftScore, lang i18n.Lang) string {
	if len(top) == 0 {
		return i18n.MsgPrimaryGiftsUnavailable.In(lang)
	}
	s := ""
	for i, g := range top {
		if i > 0 {
			s += ", "
		}
		s += g.Gift.Name.In(lang)
	}
	return s
}

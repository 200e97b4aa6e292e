package identify

import (
	"github.com/acampos/giftwise/internal/i18n"
	"github.com/acampos/giftwise/internal/plan"
	"github.com/acampos/giftwise/internal/quiz"
)

// planLoadedMsg is sent when the combined result+plan load for an email
// finishes. Gen tags the session generation the load was started under.
type planLoadedMsg struct {
	Gen    int
	Result *quiz.UserResult
	Plan   *plan.Data
	Err    *i18n.Text
}

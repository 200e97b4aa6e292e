package guide

import (
	"github.com/acampos/giftwise/internal/i18n"
	"github.com/acampos/giftwise/internal/plan"
)

// planLoadedMsg is sent when the plan document load finishes. Gen tags
// the session generation the load was started under.
type planLoadedMsg struct {
	Gen  int
	Plan *plan.Data
	Err  *i18n.Text
}

// planSavedMsg is sent when the plan upsert finishes.
type planSavedMsg struct {
	Gen int
	Err *i18n.Text
}

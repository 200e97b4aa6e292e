package questionnaire

import "github.com/acampos/giftwise/internal/i18n"

// calcDoneMsg ends the short calculating phase and starts the save.
type calcDoneMsg struct {
	Gen int
}

// resultSavedMsg is sent when the result append finishes. Gen tags the
// session generation the save was started under.
type resultSavedMsg struct {
	Gen int
	ID  int
	Err *i18n.Text
}

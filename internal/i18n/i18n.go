// Package i18n carries bilingual text values through the application.
// The core logic only ever passes Text values around; resolution to a
// plain string happens at the presentation boundary.
package i18n

// Lang identifies a display language.
type Lang string

const (
	EN Lang = "en"
	ES Lang = "es"
)

// Text is a bilingual string value.
type Text struct {
	EN string
	ES string
}

// T returns the text resolved for lang, falling back to English.
func (t Text) In(lang Lang) string {
	if lang == ES && t.ES != "" {
		return t.ES
	}
	return t.EN
}

// Toggle returns the other language.
func Toggle(lang Lang) Lang {
	if lang == EN {
		return ES
	}
	return EN
}

// Package results presents a completed questionnaire outcome: the
// primary gifts with descriptions, the full ranked score list, and the
// jump-off points to the development guide or a fresh start.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/acampos/giftwise/internal/catalog"
	"github.com/acampos/giftwise/internal/i18n"
	"github.com/acampos/giftwise/internal/quiz"
	"github.com/acampos/giftwise/internal/router"
	"github.com/acampos/giftwise/internal/screen"
	"github.com/acampos/giftwise/internal/ui/components"
	"github.com/acampos/giftwise/internal/ui/layout"
	"github.com/acampos/giftwise/internal/ui/theme"
)

var (
	resultsTitle = i18n.Text{
		EN: "Your Spiritual Gifts",
		ES: "Sus Dones Espirituales",
	}
	primaryHeading = i18n.Text{
		EN: "Primary gifts",
		ES: "Dones principales",
	}
	allScoresHeading = i18n.Text{
		EN: "All scores",
		ES: "Todas las puntuaciones",
	}
	greetingText = i18n.Text{
		EN: "Here is what your answers reveal,",
		ES: "Esto es lo que revelan sus respuestas,",
	}
)

// ResultsScreen renders the active result from the shared session.
type ResultsScreen struct {
	sess        *quiz.Session
	guide       func() screen.Screen
	identifyDev func() screen.Screen
	restart     func() screen.Screen
}

var _ screen.Screen = (*ResultsScreen)(nil)

// New creates the results screen. guide opens the development guide,
// identifyDev is the redirect target when the guide cannot open
// directly, and restart rebuilds the welcome root after a reset.
func New(sess *quiz.Session, guide, identifyDev, restart func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		sess:        sess,
		guide:       guide,
		identifyDev: identifyDev,
		restart:     restart,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "d":
		st := r.sess.State.GoToGuide()
		r.sess.State = st
		if st.Step == quiz.StepDevelopmentGuide {
			return r, func() tea.Msg {
				return router.PushScreenMsg{Screen: r.guide()}
			}
		}
		// Redirected: identity is missing, collect it first.
		return r, func() tea.Msg {
			return router.PushScreenMsg{Screen: r.identifyDev()}
		}

	case "r":
		r.sess.Reset()
		return r, func() tea.Msg {
			return router.ResetScreenMsg{Root: r.restart()}
		}
	}

	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	result := r.sess.State.Result
	if result == nil {
		notice := i18n.MsgNoResultsToDisplay
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render(r.sess.T(notice)))
	}

	var sections []string

	sections = append(sections, theme.Title.Render(r.sess.T(resultsTitle)))
	sections = append(sections,
		theme.Subtitle.Render(fmt.Sprintf("%s %s", r.sess.T(greetingText), result.Name)),
		"")

	if result.SaveError != nil {
		sections = append(sections, theme.Negative.Render(r.sess.T(*result.SaveError)), "")
	}

	var primary []string
	primary = append(primary, theme.Selected.Render(r.sess.T(primaryHeading)))
	for i, gs := range result.TopGifts {
		primary = append(primary, theme.Positive.Render(
			fmt.Sprintf("%d. %s — %d", i+1, r.sess.T(gs.Gift.Name), gs.Score)))
		if desc := r.sess.T(gs.Gift.Description); desc != "" {
			primary = append(primary, theme.Hint.Render("   "+desc))
		}
	}
	sections = append(sections, theme.Card.Render(strings.Join(primary, "\n")), "")

	if len(result.AllScores) > 0 {
		var all []string
		all = append(all, theme.Selected.Render(r.sess.T(allScoresHeading)))
		maxRating := catalog.RatingScale[len(catalog.RatingScale)-1].Value
		maxScore := maxRating * len(result.AllScores[0].Gift.Questions)
		for _, gs := range result.AllScores {
			bar := components.NewProgressBar("", float64(gs.Score)/float64(maxScore), false, 20)
			all = append(all, theme.Body.Render(
				fmt.Sprintf("%-18s %2d / %d  ", r.sess.T(gs.Gift.Name), gs.Score, maxScore))+bar.View())
		}
		sections = append(sections, strings.Join(all, "\n"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (r *ResultsScreen) Title() string {
	return r.sess.T(resultsTitle)
}

// KeyHints implements screen.KeyHintProvider.
func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "D", Description: "Development plan"},
		{Key: "R", Description: "Start over"},
		{Key: "Ctrl+L", Description: "EN/ES"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Package identify asks the respondent who they are: name and email
// before the questionnaire, or just the email to open a stored
// development plan.
package identify

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/acampos/giftwise/internal/i18n"
	"github.com/acampos/giftwise/internal/quiz"
	"github.com/acampos/giftwise/internal/router"
	"github.com/acampos/giftwise/internal/screen"
	"github.com/acampos/giftwise/internal/store"
	"github.com/acampos/giftwise/internal/ui/components"
	"github.com/acampos/giftwise/internal/ui/layout"
	"github.com/acampos/giftwise/internal/ui/theme"
)

// Mode selects what the identity is collected for.
type Mode int

const (
	// ModeQuiz collects name and email before the questionnaire.
	ModeQuiz Mode = iota

	// ModeDevelopment collects only the email to load a stored plan.
	ModeDevelopment
)

var (
	quizHeading = i18n.Text{
		EN: "Before you begin",
		ES: "Antes de comenzar",
	}
	devHeading = i18n.Text{
		EN: "Open your development plan",
		ES: "Abra su plan de desarrollo",
	}
	nameLabel = i18n.Text{
		EN: "Your name",
		ES: "Su nombre",
	}
	emailLabel = i18n.Text{
		EN: "Your email",
		ES: "Su correo electrónico",
	}
	loadingText = i18n.Text{
		EN: "Loading your plan...",
		ES: "Cargando su plan...",
	}
)

// IdentifyScreen collects the respondent identity for one of the two
// modes and kicks off the follow-up flow.
type IdentifyScreen struct {
	mode    Mode
	sess    *quiz.Session
	results store.ResultRepo
	plans   store.PlanRepo
	next    func() screen.Screen

	name    components.TextInput
	email   components.TextInput
	focus   int
	errText *i18n.Text
}

var _ screen.Screen = (*IdentifyScreen)(nil)
var _ screen.EscHandler = (*IdentifyScreen)(nil)

// New creates an identify screen. next produces the screen pushed after
// a successful submit: the questionnaire in ModeQuiz, the guide in
// ModeDevelopment.
func New(mode Mode, sess *quiz.Session, results store.ResultRepo, plans store.PlanRepo, next func() screen.Screen) *IdentifyScreen {
	s := &IdentifyScreen{
		mode:    mode,
		sess:    sess,
		results: results,
		plans:   plans,
		next:    next,
		name:    components.NewTextInput("", 120),
		email:   components.NewTextInput("name@example.com", 254),
	}
	if mode == ModeDevelopment {
		s.focus = 1
	}
	if sess.State.Name != "" {
		s.name.SetValue(sess.State.Name)
	}
	if sess.State.Email != "" {
		s.email.SetValue(sess.State.Email)
	}
	return s
}

func (s *IdentifyScreen) Init() tea.Cmd {
	if s.focus == 1 {
		return s.email.Focus()
	}
	return s.name.Focus()
}

func (s *IdentifyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.LangChangedMsg:
		return s, nil

	case planLoadedMsg:
		if s.sess.Stale(msg.Gen) {
			return s, nil
		}
		s.sess.State = s.sess.State.FinishPlanLoad(msg.Result, msg.Plan, msg.Err)
		if msg.Err != nil {
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: s.next()}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			if s.mode == ModeQuiz {
				s.setFocus((s.focus + 1) % 2)
			}
			return s, nil
		case "shift+tab", "up":
			if s.mode == ModeQuiz {
				s.setFocus((s.focus + 1) % 2)
			}
			return s, nil
		case "enter":
			if s.mode == ModeQuiz && s.focus == 0 {
				s.setFocus(1)
				return s, nil
			}
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	if s.focus == 0 {
		s.name, cmd = s.name.Update(msg)
	} else {
		s.email, cmd = s.email.Update(msg)
	}
	return s, cmd
}

func (s *IdentifyScreen) setFocus(focus int) {
	s.focus = focus
	if focus == 0 {
		s.email.Blur()
		s.name.Focus()
	} else {
		s.name.Blur()
		s.email.Focus()
	}
}

func (s *IdentifyScreen) submit() tea.Cmd {
	if s.mode == ModeQuiz {
		st, errText := s.sess.State.StartQuiz(s.name.Value(), s.email.Value())
		if errText != nil {
			s.errText = errText
			s.name.Submit(quiz.ValidName(s.name.Value()))
			s.email.Submit(quiz.ValidEmail(s.email.Value()))
			return nil
		}
		s.errText = nil
		s.sess.State = st
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: s.next()}
		}
	}

	st, errText := s.sess.State.BeginPlanLoadByEmail(s.email.Value())
	if errText != nil {
		s.errText = errText
		s.email.Submit(false)
		return nil
	}
	if st.PlanLoading && s.sess.State.PlanLoading {
		// A load is already in flight.
		return nil
	}
	s.errText = nil
	s.sess.State = st
	return s.loadPlanCmd(s.sess.Generation(), st.Email)
}

// loadPlanCmd loads the most recent result for the email and then the
// plan document, off the update loop.
func (s *IdentifyScreen) loadPlanCmd(gen int, email string) tea.Cmd {
	results, plans, lang := s.results, s.plans, s.sess.Lang
	return func() tea.Msg {
		ctx := context.Background()

		res, err := results.MostRecentByEmail(ctx, email)
		if err != nil {
			return planLoadedMsg{Gen: gen, Err: &i18n.MsgErrorLoadingData}
		}
		if res == nil {
			return planLoadedMsg{Gen: gen, Err: &i18n.MsgNoResultsForEmail}
		}

		fallback := quiz.PrimaryGiftsText(res.TopGifts, lang)
		data, err := plans.LoadOrDefault(ctx, store.SanitizeKey(email), fallback)
		if err != nil {
			return planLoadedMsg{Gen: gen, Err: &i18n.MsgErrorLoadingData}
		}
		return planLoadedMsg{Gen: gen, Result: res, Plan: &data}
	}
}

func (s *IdentifyScreen) View(width, height int) string {
	var lines []string

	heading := quizHeading
	if s.mode == ModeDevelopment {
		heading = devHeading
	}
	lines = append(lines, theme.Title.Render(s.sess.T(heading)), "")

	if s.sess.State.Notice != nil {
		lines = append(lines, theme.Hint.Render(s.sess.T(*s.sess.State.Notice)), "")
	}

	if s.mode == ModeQuiz {
		lines = append(lines,
			theme.Body.Render(s.sess.T(nameLabel)),
			s.name.View(),
			"")
	}
	lines = append(lines,
		theme.Body.Render(s.sess.T(emailLabel)),
		s.email.View())

	if s.errText != nil {
		lines = append(lines, "", theme.Negative.Render(s.sess.T(*s.errText)))
	}
	if s.sess.State.PlanLoadError != nil {
		lines = append(lines, "", theme.Negative.Render(s.sess.T(*s.sess.State.PlanLoadError)))
	}
	if s.sess.State.PlanLoading {
		lines = append(lines, "", theme.Hint.Render(s.sess.T(loadingText)))
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// HandleEsc abandons an in-flight plan load before the screen is
// popped, so the next visit can start a fresh one.
func (s *IdentifyScreen) HandleEsc() (bool, tea.Cmd) {
	s.sess.AbandonPlanLoad()
	return false, nil
}

func (s *IdentifyScreen) Title() string {
	if s.mode == ModeDevelopment {
		return s.sess.T(devHeading)
	}
	return s.sess.T(quizHeading)
}

// KeyHints implements screen.KeyHintProvider.
func (s *IdentifyScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
	if s.mode == ModeQuiz {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Next field"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+L", Description: "EN/ES"},
	)
	return hints
}

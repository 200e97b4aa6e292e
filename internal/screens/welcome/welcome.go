// Package welcome is the entry screen: banner, mode menu, and the
// starting point every reset returns to.
package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/acampos/giftwise/internal/i18n"
	"github.com/acampos/giftwise/internal/quiz"
	"github.com/acampos/giftwise/internal/router"
	"github.com/acampos/giftwise/internal/screen"
	"github.com/acampos/giftwise/internal/ui/components"
	"github.com/acampos/giftwise/internal/ui/layout"
	"github.com/acampos/giftwise/internal/ui/theme"
)

var (
	titleText = i18n.Text{
		EN: "Spiritual Gifts Discovery",
		ES: "Descubrimiento de Dones Espirituales",
	}
	taglineText = i18n.Text{
		EN: "Discover how you are gifted to serve.",
		ES: "Descubra cómo está dotado para servir.",
	}
	menuTakeQuiz = i18n.Text{
		EN: "Take the Questionnaire",
		ES: "Realizar el Cuestionario",
	}
	menuDevelopment = i18n.Text{
		EN: "My Development Plan",
		ES: "Mi Plan de Desarrollo",
	}
	menuExit = i18n.Text{
		EN: "Exit",
		ES: "Salir",
	}
)

// WelcomeScreen is the root screen with the mode menu.
type WelcomeScreen struct {
	sess *quiz.Session
	menu components.Menu
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the welcome screen. quizFlow and devFlow produce the
// identify screens for the two modes.
func New(sess *quiz.Session, quizFlow, devFlow func() screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{sess: sess}

	items := []components.MenuItem{
		{Label: sess.T(menuTakeQuiz), Action: func() tea.Cmd {
			sess.State = sess.State.BeginQuiz()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizFlow()}
			}
		}},
		{Label: sess.T(menuDevelopment), Action: func() tea.Cmd {
			sess.State = sess.State.BeginDevelopment()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: devFlow()}
			}
		}},
		{Label: sess.T(menuExit), Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	w.menu = components.NewMenu(items)
	return w
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.LangChangedMsg); ok {
		w.menu.SetLabels([]string{
			w.sess.T(menuTakeQuiz),
			w.sess.T(menuDevelopment),
			w.sess.T(menuExit),
		})
		return w, nil
	}

	var cmd tea.Cmd
	w.menu, cmd = w.menu.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, theme.Subtitle.Render(w.sess.T(titleText)))
	sections = append(sections, "")
	sections = append(sections, w.menu.View())

	if w.sess.State.Notice != nil {
		sections = append(sections, theme.Hint.Render(w.sess.T(*w.sess.State.Notice)))
	} else {
		sections = append(sections, theme.Hint.Render(w.sess.T(taglineText)))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) Title() string {
	return w.sess.T(titleText)
}

// KeyHints implements screen.KeyHintProvider.
func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+L", Description: "EN/ES"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

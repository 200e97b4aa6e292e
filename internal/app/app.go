// Package app is the Bubble Tea root: it owns the screen router, the
// shared session, and the global key handling (quit, back, language).
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/acampos/giftwise/internal/quiz"
	"github.com/acampos/giftwise/internal/router"
	"github.com/acampos/giftwise/internal/screen"
	"github.com/acampos/giftwise/internal/screens/guide"
	"github.com/acampos/giftwise/internal/screens/identify"
	"github.com/acampos/giftwise/internal/screens/questionnaire"
	resultsscreen "github.com/acampos/giftwise/internal/screens/results"
	"github.com/acampos/giftwise/internal/screens/welcome"
	"github.com/acampos/giftwise/internal/store"
	"github.com/acampos/giftwise/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	sess   *quiz.Session
	router *router.Router
	width  int
	height int
}

// newAppModel wires the screen graph over the shared session and repos.
// Screens reference each other through factories, so the graph stays
// acyclic at the package level.
func newAppModel(sess *quiz.Session, results store.ResultRepo, plans store.PlanRepo) AppModel {
	var welcomeF, identifyQuizF, identifyDevF, questionnaireF, resultsF, guideF func() screen.Screen

	welcomeF = func() screen.Screen {
		return welcome.New(sess, func() screen.Screen { return identifyQuizF() },
			func() screen.Screen { return identifyDevF() })
	}
	identifyQuizF = func() screen.Screen {
		return identify.New(identify.ModeQuiz, sess, results, plans,
			func() screen.Screen { return questionnaireF() })
	}
	identifyDevF = func() screen.Screen {
		return identify.New(identify.ModeDevelopment, sess, results, plans,
			func() screen.Screen { return guideF() })
	}
	questionnaireF = func() screen.Screen {
		return questionnaire.New(sess, results, func() screen.Screen { return resultsF() })
	}
	resultsF = func() screen.Screen {
		return resultsscreen.New(sess,
			func() screen.Screen { return guideF() },
			func() screen.Screen { return identifyDevF() },
			func() screen.Screen { return welcomeF() })
	}
	guideF = func() screen.Screen {
		return guide.New(sess, plans,
			func() screen.Screen { return resultsF() },
			func() screen.Screen { return identifyQuizF() },
			func() screen.Screen { return welcomeF() })
	}

	return AppModel{
		sess:   sess,
		router: router.New(welcomeF()),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+l":
			m.sess.ToggleLang()
			cmd := m.router.Update(screen.LangChangedMsg{})
			return m, cmd
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok {
				if handled, cmd := h.HandleEsc(); handled {
					return m, cmd
				}
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, string(m.sess.Lang), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program over the given session and repos.
func Run(sess *quiz.Session, results store.ResultRepo, plans store.PlanRepo) error {
	p := tea.NewProgram(newAppModel(sess, results, plans))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

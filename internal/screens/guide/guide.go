// Package guide is the development plan editor: the twelve-step form
// keyed to the respondent's email, loaded from and merge-saved to the
// plan store.
package guide

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/acampos/giftwise/internal/i18n"
	"github.com/acampos/giftwise/internal/quiz"
	"github.com/acampos/giftwise/internal/router"
	"github.com/acampos/giftwise/internal/screen"
	"github.com/acampos/giftwise/internal/store"
	"github.com/acampos/giftwise/internal/ui/layout"
	"github.com/acampos/giftwise/internal/ui/theme"
)

var (
	guideTitle = i18n.Text{
		EN: "Development Plan",
		ES: "Plan de Desarrollo",
	}
	loadingText = i18n.Text{
		EN: "Loading your plan...",
		ES: "Cargando su plan...",
	}
	savingText = i18n.Text{
		EN: "Saving...",
		ES: "Guardando...",
	}
	savedText = i18n.Text{
		EN: "Plan saved.",
		ES: "Plan guardado.",
	}
	emptyFieldText = i18n.Text{
		EN: "(empty, press Enter to write)",
		ES: "(vacío, presione Enter para escribir)",
	}
	editingHint = i18n.Text{
		EN: "Esc finishes editing",
		ES: "Esc termina la edición",
	}
)

// GuideScreen edits the development plan held in the shared session.
type GuideScreen struct {
	sess         *quiz.Session
	plans        store.PlanRepo
	showResults  func() screen.Screen
	identifyQuiz func() screen.Screen
	restart      func() screen.Screen

	entries []entry
	cursor  int
	scroll  int

	editing bool
	editor  textarea.Model

	saved   bool
	warning *i18n.Text
}

var _ screen.Screen = (*GuideScreen)(nil)
var _ screen.EscHandler = (*GuideScreen)(nil)

// New creates the guide screen. showResults opens the results view,
// identifyQuiz is the redirect target when no result is active, and
// restart rebuilds the welcome root after a full reset.
func New(sess *quiz.Session, plans store.PlanRepo, showResults, identifyQuiz, restart func() screen.Screen) *GuideScreen {
	return &GuideScreen{
		sess:         sess,
		plans:        plans,
		showResults:  showResults,
		identifyQuiz: identifyQuiz,
		restart:      restart,
		entries:      buildEntries(),
	}
}

// Init starts the plan load when the screen was entered with a load
// pending (the results screen path); the identify path arrives with the
// plan already in the session.
func (g *GuideScreen) Init() tea.Cmd {
	if g.sess.State.PlanLoading && g.sess.State.Plan == nil {
		return g.loadCmd(g.sess.Generation())
	}
	return nil
}

// loadCmd loads the plan document for the known identity off the update
// loop.
func (g *GuideScreen) loadCmd(gen int) tea.Cmd {
	repo := g.plans
	email := g.sess.State.Email
	fallback := ""
	if r := g.sess.State.Result; r != nil {
		fallback = quiz.PrimaryGiftsText(r.TopGifts, g.sess.Lang)
	}
	return func() tea.Msg {
		data, err := repo.LoadOrDefault(context.Background(), store.SanitizeKey(email), fallback)
		if err != nil {
			return planLoadedMsg{Gen: gen, Err: &i18n.MsgErrorLoadingData}
		}
		return planLoadedMsg{Gen: gen, Plan: &data}
	}
}

func (g *GuideScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planLoadedMsg:
		if g.sess.Stale(msg.Gen) {
			return g, nil
		}
		g.sess.State = g.sess.State.FinishPlanLoad(nil, msg.Plan, msg.Err)
		return g, nil

	case planSavedMsg:
		if g.sess.Stale(msg.Gen) {
			return g, nil
		}
		g.sess.State = g.sess.State.FinishPlanSave(msg.Err)
		g.saved = msg.Err == nil
		return g, nil

	case tea.KeyMsg:
		if g.editing {
			var cmd tea.Cmd
			g.editor, cmd = g.editor.Update(msg)
			return g, cmd
		}
		return g, g.handleKey(msg)
	}

	if g.editing {
		var cmd tea.Cmd
		g.editor, cmd = g.editor.Update(msg)
		return g, cmd
	}
	return g, nil
}

func (g *GuideScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if g.cursor > 0 {
			g.cursor--
		}
		return nil
	case "down", "j":
		if g.cursor < len(g.entries)-1 {
			g.cursor++
		}
		return nil
	case "enter":
		return g.activate()
	case "space":
		if e := g.entries[g.cursor]; e.kind == entryCategory {
			g.sess.State = g.sess.State.TogglePlanCategory(e.cat)
			g.saved = false
		}
		return nil
	case "ctrl+s":
		return g.save()
	case "r":
		g.sess.Reset()
		return func() tea.Msg {
			return router.ResetScreenMsg{Root: g.restart()}
		}
	case "v":
		st := g.sess.State.GoToResults()
		g.sess.State = st
		if st.Step == quiz.StepResults {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: g.showResults()}
			}
		}
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: g.identifyQuiz()}
		}
	}
	return nil
}

// activate begins editing the focused entry, or toggles a category.
func (g *GuideScreen) activate() tea.Cmd {
	if g.sess.State.Plan == nil {
		return nil
	}
	e := g.entries[g.cursor]
	switch e.kind {
	case entryCategory:
		g.sess.State = g.sess.State.TogglePlanCategory(e.cat)
		g.saved = false
		return nil
	case entryField:
		g.editor = textarea.New()
		g.editor.CharLimit = 2000
		g.editor.SetHeight(4)
		g.editor.SetValue(g.sess.State.Plan.Get(e.field))
		g.editing = true
		g.saved = false
		return g.editor.Focus()
	}
	return nil
}

// HandleEsc commits an in-progress edit instead of popping the screen.
// Outside editing the pop proceeds, abandoning any in-flight load so a
// later visit can start a fresh one.
func (g *GuideScreen) HandleEsc() (bool, tea.Cmd) {
	if !g.editing {
		g.sess.AbandonPlanLoad()
		return false, nil
	}
	e := g.entries[g.cursor]
	if e.kind == entryField {
		g.sess.State = g.sess.State.UpdatePlanField(e.field, g.editor.Value())
	}
	g.editing = false
	g.editor.Blur()
	return true, nil
}

// save runs the guarded explicit save.
func (g *GuideScreen) save() tea.Cmd {
	st, errText := g.sess.State.BeginPlanSave()
	if errText != nil {
		g.warning = errText
		return nil
	}
	if g.sess.State.PlanSaving {
		return nil
	}
	g.warning = nil
	g.sess.State = st

	gen := g.sess.Generation()
	repo := g.plans
	data := *st.Plan
	key := store.SanitizeKey(st.Email)
	name, email := st.Name, st.Email
	return func() tea.Msg {
		if err := repo.Upsert(context.Background(), key, data, name, email); err != nil {
			return planSavedMsg{Gen: gen, Err: &i18n.MsgErrorSavingPlan}
		}
		return planSavedMsg{Gen: gen}
	}
}

func (g *GuideScreen) View(width, height int) string {
	st := g.sess.State

	if st.PlanLoading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render(g.sess.T(loadingText)))
	}
	if st.Plan == nil {
		text := i18n.MsgErrorLoadingData
		if st.PlanLoadError != nil {
			text = *st.PlanLoadError
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Negative.Render(g.sess.T(text)))
	}

	var lines []string

	header := g.sess.T(guideTitle)
	if st.Name != "" {
		header += "  ·  " + st.Name
	}
	lines = append(lines, theme.Title.Render(header))

	switch {
	case st.PlanSaving:
		lines = append(lines, theme.Hint.Render(g.sess.T(savingText)))
	case st.PlanSaveError != nil:
		lines = append(lines, theme.Negative.Render(g.sess.T(*st.PlanSaveError)))
	case g.warning != nil:
		lines = append(lines, theme.Negative.Render(g.sess.T(*g.warning)))
	case g.saved:
		lines = append(lines, theme.Positive.Render(g.sess.T(savedText)))
	default:
		lines = append(lines, "")
	}
	lines = append(lines, "")

	visible := g.visibleEntries(height - 4)
	for i := g.scroll; i < g.scroll+visible && i < len(g.entries); i++ {
		lines = append(lines, g.renderEntry(i, width)...)
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(lines, "\n"))
}

// visibleEntries fits the entry window to the available height, keeping
// the cursor inside it.
func (g *GuideScreen) visibleEntries(contentHeight int) int {
	const linesPerEntry = 3
	visible := contentHeight / linesPerEntry
	if visible < 1 {
		visible = 1
	}
	if g.cursor < g.scroll {
		g.scroll = g.cursor
	}
	if g.cursor >= g.scroll+visible {
		g.scroll = g.cursor - visible + 1
	}
	return visible
}

// renderEntry renders one guide row as label plus value lines.
func (g *GuideScreen) renderEntry(i, width int) []string {
	e := g.entries[i]
	focused := i == g.cursor

	prefix := "  "
	labelStyle := theme.Body
	if focused {
		prefix = "▸ "
		labelStyle = theme.Selected
	}

	switch e.kind {
	case entryCategory:
		mark := "[ ]"
		if g.sess.State.Plan.Category(e.cat) {
			mark = "[x]"
		}
		return []string{
			labelStyle.Render(fmt.Sprintf("%s%s %s", prefix, mark, g.sess.T(e.label))),
			"",
		}

	case entryPrimary:
		return []string{
			labelStyle.Render(prefix + g.sess.T(e.label)),
			theme.Positive.Render("    " + g.sess.State.Plan.PrimaryGifts),
			"",
		}

	default:
		lines := []string{labelStyle.Render(prefix + g.sess.T(e.label))}
		if focused && g.editing {
			lines = append(lines, g.editor.View())
			lines = append(lines, theme.Hint.Render("    "+g.sess.T(editingHint)))
		} else if value := g.sess.State.Plan.Get(e.field); value != "" {
			lines = append(lines, theme.Body.Render("    "+firstLine(value, width-8)))
		} else {
			lines = append(lines, theme.Hint.Render("    "+g.sess.T(emptyFieldText)))
		}
		lines = append(lines, "")
		return lines
	}
}

// firstLine collapses a multi-line value to a single truncated preview.
func firstLine(s string, max int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + " …"
	}
	if runes := []rune(s); max > 4 && len(runes) > max {
		s = string(runes[:max-2]) + "…"
	}
	return s
}

func (g *GuideScreen) Title() string {
	return g.sess.T(guideTitle)
}

// KeyHints implements screen.KeyHintProvider.
func (g *GuideScreen) KeyHints() []layout.KeyHint {
	if g.editing {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Done editing"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "Enter", Description: "Edit/Toggle"},
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "V", Description: "Results"},
		{Key: "R", Description: "Start over"},
		{Key: "Esc", Description: "Back"},
	}
}

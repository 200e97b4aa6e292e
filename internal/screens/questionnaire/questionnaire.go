// Package questionnaire is the paged rating form: six questions per
// page, a 1–5 scale per question, and the submit flow that scores the
// answers and appends the result to the store.
package questionnaire

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/acampos/giftwise/internal/catalog"
	"github.com/acampos/giftwise/internal/i18n"
	"github.com/acampos/giftwise/internal/quiz"
	"github.com/acampos/giftwise/internal/router"
	"github.com/acampos/giftwise/internal/screen"
	"github.com/acampos/giftwise/internal/store"
	"github.com/acampos/giftwise/internal/ui/components"
	"github.com/acampos/giftwise/internal/ui/layout"
	"github.com/acampos/giftwise/internal/ui/theme"
)

// calcDelay keeps the calculating phase visible for a beat before the
// save starts.
const calcDelay = 700 * time.Millisecond

var (
	formTitle = i18n.Text{
		EN: "Questionnaire",
		ES: "Cuestionario",
	}
	pageLabel = i18n.Text{
		EN: "Page",
		ES: "Página",
	}
	calculatingText = i18n.Text{
		EN: "Calculating your gifts...",
		ES: "Calculando sus dones...",
	}
	savingText = i18n.Text{
		EN: "Saving your results...",
		ES: "Guardando sus resultados...",
	}
)

// QuestionnaireScreen drives the paged form and the submit flow.
type QuestionnaireScreen struct {
	sess        *quiz.Session
	results     store.ResultRepo
	showResults func() screen.Screen

	cursor  int
	warning *i18n.Text
}

var _ screen.Screen = (*QuestionnaireScreen)(nil)
var _ screen.EscHandler = (*QuestionnaireScreen)(nil)

// New creates the questionnaire screen. showResults produces the screen
// pushed once the submit flow completes.
func New(sess *quiz.Session, results store.ResultRepo, showResults func() screen.Screen) *QuestionnaireScreen {
	return &QuestionnaireScreen{
		sess:        sess,
		results:     results,
		showResults: showResults,
	}
}

func (q *QuestionnaireScreen) Init() tea.Cmd {
	return nil
}

func (q *QuestionnaireScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case calcDoneMsg:
		if q.sess.Stale(msg.Gen) {
			return q, nil
		}
		q.sess.State = q.sess.State.BeginSaving()
		return q, q.saveCmd(msg.Gen, q.sess.State.Result)

	case resultSavedMsg:
		if q.sess.Stale(msg.Gen) {
			return q, nil
		}
		q.sess.State = q.sess.State.FinishSave(msg.ID, msg.Err)
		return q, func() tea.Msg {
			return router.PushScreenMsg{Screen: q.showResults()}
		}

	case tea.KeyMsg:
		if q.busy() {
			return q, nil
		}
		return q, q.handleKey(msg)
	}

	return q, nil
}

// busy reports whether the submit flow is in flight; the form ignores
// input while it is.
func (q *QuestionnaireScreen) busy() bool {
	step := q.sess.State.Step
	return step == quiz.StepCalculating || step == quiz.StepSaving
}

// HandleEsc refuses to leave while the submit flow is in flight; the
// completion message must land on this screen.
func (q *QuestionnaireScreen) HandleEsc() (bool, tea.Cmd) {
	return q.busy(), nil
}

func (q *QuestionnaireScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	questions := q.sess.State.PageQuestions()

	switch msg.String() {
	case "up", "k":
		if q.cursor > 0 {
			q.cursor--
		}
		return nil
	case "down", "j":
		if q.cursor < len(questions)-1 {
			q.cursor++
		}
		return nil
	case "pgup", "b":
		q.sess.State = q.sess.State.PrevPage()
		q.cursor = 0
		q.warning = nil
		return nil
	case "pgdown", "enter":
		return q.advance()
	}

	// Rating keys for the focused question.
	if q.cursor < len(questions) {
		question := questions[q.cursor]
		rating := components.Rating{
			Labels: ratingLabels(q.sess.Lang),
			Value:  q.sess.State.Answers[question.ID],
		}
		rating, _ = rating.Update(msg)
		if rating.Answered() {
			q.sess.State = q.sess.State.SetAnswer(question.ID, rating.Value)
			q.warning = nil
		}
	}
	return nil
}

// advance moves to the next page, or submits on the last one.
func (q *QuestionnaireScreen) advance() tea.Cmd {
	if !q.sess.State.LastPage() {
		st, warn := q.sess.State.NextPage()
		if warn != nil {
			q.warning = warn
			return nil
		}
		q.sess.State = st
		q.cursor = 0
		q.warning = nil
		return nil
	}

	st, warn := q.sess.State.Calculate(uuid.NewString(), time.Now())
	if warn != nil {
		q.warning = warn
		return nil
	}
	q.sess.State = st
	q.warning = nil

	gen := q.sess.Generation()
	return tea.Tick(calcDelay, func(time.Time) tea.Msg {
		return calcDoneMsg{Gen: gen}
	})
}

// saveCmd appends the result off the update loop. A store failure maps
// to the user-facing save warning; the results stay viewable either way.
func (q *QuestionnaireScreen) saveCmd(gen int, result *quiz.UserResult) tea.Cmd {
	repo := q.results
	return func() tea.Msg {
		id, err := repo.Append(context.Background(), result)
		if err != nil {
			return resultSavedMsg{Gen: gen, Err: &i18n.MsgSavingErrorDB}
		}
		return resultSavedMsg{Gen: gen, ID: id}
	}
}

func ratingLabels(lang i18n.Lang) []string {
	labels := make([]string, 0, len(catalog.RatingScale))
	for _, r := range catalog.RatingScale {
		labels = append(labels, r.Description.In(lang))
	}
	return labels
}

func (q *QuestionnaireScreen) View(width, height int) string {
	if q.busy() {
		text := calculatingText
		if q.sess.State.Step == quiz.StepSaving {
			text = savingText
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Title.Render(q.sess.T(text)))
	}

	var sections []string

	page := q.sess.State.Page
	total := catalog.TotalPages()
	header := fmt.Sprintf("%s  ·  %s %d/%d",
		q.sess.T(formTitle), q.sess.T(pageLabel), page+1, total)
	sections = append(sections, theme.Title.Render(header))

	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	progress := components.NewProgressBar("", float64(page+1)/float64(total), true, barWidth)
	sections = append(sections, progress.View(), "")

	labels := ratingLabels(q.sess.Lang)
	for i, question := range q.sess.State.PageQuestions() {
		focused := i == q.cursor
		prefix := "  "
		style := theme.Body
		if focused {
			prefix = "▸ "
			style = theme.Selected
		}
		sections = append(sections,
			style.Render(fmt.Sprintf("%s%d. %s", prefix, question.ID, q.sess.T(question.Text))))

		rating := components.Rating{Labels: labels, Value: q.sess.State.Answers[question.ID]}
		sections = append(sections, "    "+rating.View(focused), "")
	}

	if q.warning != nil {
		sections = append(sections, theme.Negative.Render(q.sess.T(*q.warning)))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QuestionnaireScreen) Title() string {
	return q.sess.T(formTitle)
}

// KeyHints implements screen.KeyHintProvider.
func (q *QuestionnaireScreen) KeyHints() []layout.KeyHint {
	next := "Next page"
	if q.sess.State.LastPage() {
		next = "See my gifts"
	}
	return []layout.KeyHint{
		{Key: "1-5", Description: "Rate"},
		{Key: "↑↓", Description: "Question"},
		{Key: "Enter", Description: next},
		{Key: "B", Description: "Prev page"},
		{Key: "Esc", Description: "Back"},
	}
}

package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/acampos/giftwise/internal/ui/theme"
)

// Rating is a single-row rating selector over a fixed ordinal scale.
// Value is 1-based; 0 means unanswered.
type Rating struct {
	Labels []string
	Value  int
}

// NewRating creates a rating selector over the given scale labels.
func NewRating(labels []string) Rating {
	return Rating{Labels: labels}
}

// Update handles digit keys and left/right adjustment.
func (r Rating) Update(msg tea.Msg) (Rating, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if r.Value > 1 {
			r.Value--
		} else if r.Value == 0 {
			r.Value = 1
		}
	case "right", "l":
		if r.Value == 0 {
			r.Value = 1
		} else if r.Value < len(r.Labels) {
			r.Value++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			n := int(key[0] - '0')
			if n <= len(r.Labels) {
				r.Value = n
			}
		}
	}

	return r, nil
}

// Answered reports whether a value has been chosen.
func (r Rating) Answered() bool {
	return r.Value > 0
}

// View renders the scale on one row. The focused flag highlights the
// row cursor.
func (r Rating) View(focused bool) string {
	var s string
	for i, label := range r.Labels {
		n := i + 1
		cell := fmt.Sprintf("%d %s", n, label)
		switch {
		case n == r.Value:
			s += theme.Selected.Render("[" + cell + "]")
		case focused:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(" " + cell + " ")
		default:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + cell + " ")
		}
		if i < len(r.Labels)-1 {
			s += " "
		}
	}
	return s
}

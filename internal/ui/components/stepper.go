package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// StepStatus is the state of a single step in a Stepper.
type StepStatus int

const (
	StepPending StepStatus = iota
	StepActive
	StepDone
)

// Stepper renders a multi-step flow: numbered markers, step labels, and a
// progress rail. The current step only moves through Advance, Back, and
// Reset.
type Stepper struct {
	BaseComponent
	labels  []string
	current int
	rail    progress.Model
}

// NewStepper creates a stepper over the given step labels. The first step
// starts active.
func NewStepper(labels ...string) *Stepper {
	rail := progress.New(progress.WithDefaultGradient())
	rail.Width = 30
	return &Stepper{
		BaseComponent: NewBaseComponent(),
		labels:        labels,
		rail:          rail,
	}
}

// Advance moves to the next step. Advancing past the last step marks every
// step done and is then a no-op.
func (s *Stepper) Advance() *Stepper {
	if s.current < len(s.labels) {
		s.current++
	}
	return s
}

// Back moves to the previous step. A no-op at the first step.
func (s *Stepper) Back() *Stepper {
	if s.current > 0 {
		s.current--
	}
	return s
}

// Reset returns to the first step.
func (s *Stepper) Reset() *Stepper {
	s.current = 0
	return s
}

// Current returns the index of the active step. Equal to Count when every
// step is done.
func (s *Stepper) Current() int {
	return s.current
}

// Count returns the number of steps.
func (s *Stepper) Count() int {
	return len(s.labels)
}

// Status returns the status of the step at index i.
func (s *Stepper) Status(i int) StepStatus {
	switch {
	case i < s.current:
		return StepDone
	case i == s.current:
		return StepActive
	default:
		return StepPending
	}
}

// WithRailWidth sets the progress rail width in cells.
func (s *Stepper) WithRailWidth(width int) *Stepper {
	s.rail.Width = width
	return s
}

// View renders with the default theme.
func (s *Stepper) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the step list and progress rail.
func (s *Stepper) ViewWithContext(ctx RenderContext) string {
	if len(s.labels) == 0 {
		return ""
	}
	theme := ctx.Theme

	doneStyle := lipgloss.NewStyle().Foreground(theme.Palette.Success.Base)
	activeStyle := lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base).Bold(true)
	pendingStyle := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Base).Faint(true)

	lines := make([]string, 0, len(s.labels)+1)
	for i, label := range s.labels {
		var line string
		switch s.Status(i) {
		case StepDone:
			line = doneStyle.Render(fmt.Sprintf("✓ %s", label))
		case StepActive:
			line = activeStyle.Render(fmt.Sprintf("%d %s", i+1, label))
		default:
			line = pendingStyle.Render(fmt.Sprintf("%d %s", i+1, label))
		}
		lines = append(lines, line)
	}

	ratio := math.Min(1.0, float64(s.current)/float64(len(s.labels)))
	lines = append(lines, s.rail.ViewAs(ratio))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return s.ComputeStyle(theme).Render(content)
}

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/ui"
)

// Stack arranges children along one axis with optional gaps.
type Stack struct {
	BaseComponent
	children    []ui.Renderable
	direction   Direction
	gap         int
	crossAlign  CrossAxisAlignment
	constraints Constraints
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		constraints:   Unconstrained(),
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack, propagating constraints to children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	if len(s.children) == 0 {
		return s.ComputeStyle(ctx.Theme).Render("")
	}

	effective := s.mergeConstraints(ctx.Constraints)
	childCtx := ctx.WithConstraints(s.childConstraints(effective))

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		var view string
		if contextual, ok := child.(ContextualRenderable); ok {
			view = contextual.ViewWithContext(childCtx)
		} else {
			view = child.View()
		}
		if view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return s.ComputeStyle(ctx.Theme).Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.joinHorizontal(views)
	} else {
		content = s.joinVertical(views)
	}

	style := s.ComputeStyle(ctx.Theme)
	if effective.MaxWidth > 0 {
		style = style.MaxWidth(effective.MaxWidth)
	}
	if effective.MaxHeight > 0 {
		style = style.MaxHeight(effective.MaxHeight)
	}
	return style.Render(content)
}

func (s *Stack) mergeConstraints(parent Constraints) Constraints {
	out := parent
	if s.constraints.MaxWidth > 0 && (out.MaxWidth <= 0 || s.constraints.MaxWidth < out.MaxWidth) {
		out.MaxWidth = s.constraints.MaxWidth
	}
	if s.constraints.MaxHeight > 0 && (out.MaxHeight <= 0 || s.constraints.MaxHeight < out.MaxHeight) {
		out.MaxHeight = s.constraints.MaxHeight
	}
	if s.constraints.MinWidth > out.MinWidth {
		out.MinWidth = s.constraints.MinWidth
	}
	if s.constraints.MinHeight > out.MinHeight {
		out.MinHeight = s.constraints.MinHeight
	}
	return out
}

func (s *Stack) childConstraints(parent Constraints) Constraints {
	child := parent
	// Horizontal stacks share the available width among children.
	if s.direction == DirectionHorizontal && parent.MaxWidth > 0 && len(s.children) > 0 {
		available := parent.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			child.MaxWidth = available / len(s.children)
		}
	}
	return child
}

func (s *Stack) joinVertical(views []string) string {
	if s.gap > 0 {
		// A spacer of n-1 newlines spans n blank lines once joined.
		spacer := strings.Repeat("\n", s.gap-1)
		padded := make([]string, 0, len(views)*2-1)
		for i, view := range views {
			if i > 0 {
				padded = append(padded, spacer)
			}
			padded = append(padded, view)
		}
		views = padded
	}
	return lipgloss.JoinVertical(s.crossAlign.toPosition(), views...)
}

func (s *Stack) joinHorizontal(views []string) string {
	if s.gap > 0 {
		spacer := strings.Repeat(" ", s.gap)
		padded := make([]string, 0, len(views)*2-1)
		for i, view := range views {
			if i > 0 {
				padded = append(padded, spacer)
			}
			padded = append(padded, view)
		}
		views = padded
	}
	return lipgloss.JoinHorizontal(s.crossAlign.toPosition(), views...)
}

func (c CrossAxisAlignment) toPosition() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// WithDirection sets the layout axis.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithCrossAlign sets cross-axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithConstraints sets sizing constraints.
func (s *Stack) WithConstraints(constraints Constraints) *Stack {
	s.constraints = constraints
	return s
}

// WithAppliers adds theme-aware style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the current children.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// SetChildren replaces all children.
func (s *Stack) SetChildren(children []ui.Renderable) *Stack {
	s.children = children
	return s
}

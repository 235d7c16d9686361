package truncate

import tea "charm.land/bubbletea/v2"

// FocusMsg moves keyboard focus onto the label with the given id.
type FocusMsg struct{ ID string }

// BlurMsg removes keyboard focus from the label with the given id.
type BlurMsg struct{ ID string }

// Update feeds pointer and focus events into the label's transitions.
// Pointer motion is hit-tested against the geometry of the last frame.
func (l *Label) Update(msg tea.Msg) (*Label, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMotionMsg:
		m := msg.Mouse()
		l.Hover(m.X, m.Y)
	case FocusMsg:
		if msg.ID == l.id {
			l.Focus()
		}
	case BlurMsg:
		if msg.ID == l.id {
			l.Blur()
		}
	}
	return l, nil
}

// Hover handles a pointer at cell (x, y): entering the label opens it and
// leaving it closes it.
func (l *Label) Hover(x, y int) bool {
	inside := false
	if l.measurer != nil {
		if rect, _, err := l.measurer.Measure(l.id); err == nil {
			inside = rect.Contains(x, y)
		}
	}
	switch {
	case inside && !l.state.Open:
		return l.Enter(l.measurer)
	case !inside && l.state.Open:
		l.Leave()
	}
	return l.state.Open
}

// Focus is keyboard focus landing on the label.
func (l *Label) Focus() bool {
	return l.Enter(l.measurer)
}

// Blur is keyboard focus leaving the label.
func (l *Label) Blur() {
	l.Leave()
}

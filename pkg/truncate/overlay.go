package truncate

import (
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/dispval/pkg/surface"
)

// Overlay anchor adjustments applied on top of the caller offsets so the
// panel border lines up with the label text. Offsets and shifts are pixels.
const (
	anchorShiftX = -4
	anchorShiftY = -2

	// PixelsPerCell converts pixel offsets into terminal cells.
	PixelsPerCell = 8
)

// Overlay describes the floating panel of an open label. It is positioned in
// fixed viewport coordinates and never receives pointer input.
type Overlay struct {
	X         int
	Y         int
	Width     int // 0 means sized to content
	Text      string
	TextStyle *TextStyle
}

// Interactive reports whether the overlay accepts pointer input. It never
// does; hovering it must not steal the hover from the label underneath.
func (Overlay) Interactive() bool { return false }

// Render draws the panel with bubble as the frame style.
func (o Overlay) Render(bubble lipgloss.Style) string {
	text := o.Text
	if o.TextStyle != nil {
		text = o.TextStyle.Style().Render(text)
	}
	if o.Width > 0 {
		bubble = bubble.Width(o.Width)
	}
	return bubble.Render(text)
}

// Overlay returns the panel to draw while the label is open.
func (l *Label) Overlay() (Overlay, bool) {
	if !l.state.Open || l.state.Rect == nil {
		return Overlay{}, false
	}
	rect := *l.state.Rect
	o := Overlay{
		X:         rect.X + l.offsetX + anchorShiftX,
		Y:         rect.Y + l.offsetY + anchorShiftY,
		Text:      l.text,
		TextStyle: l.state.TextStyle,
	}
	if l.matchTriggerWidth {
		o.Width = rect.Width
	}
	return o, true
}

// Layer returns the open overlay as a layer for the root attachment point.
// The pixel distance from the trigger is converted to cells, so the default
// nudge leaves the panel over the label itself.
func (l *Label) Layer() (surface.Layer, bool) {
	o, ok := l.Overlay()
	if !ok {
		return surface.Layer{}, false
	}
	rect := *l.state.Rect
	return surface.Layer{
		ID:      l.id + "/overlay",
		X:       rect.X + pxToCells(o.X-rect.X),
		Y:       rect.Y + pxToCells(o.Y-rect.Y),
		Content: o.Render(l.bubbleStyle),
	}, true
}

// pxToCells rounds px up to whole cells.
func pxToCells(px int) int {
	if px > 0 {
		return (px + PixelsPerCell - 1) / PixelsPerCell
	}
	// Integer division truncates toward zero, which is the ceiling here.
	return px / PixelsPerCell
}

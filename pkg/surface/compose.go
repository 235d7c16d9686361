package surface

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const sgrReset = "\x1b[m"

// Layer is floating content anchored at a viewport cell. Layers never take
// part in layout; they are painted over whatever the frame already holds.
type Layer struct {
	ID      string
	X       int
	Y       int
	Content string
}

// Width returns the widest line of the layer in cells.
func (l Layer) Width() int {
	w := 0
	for _, line := range strings.Split(l.Content, "\n") {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

// Height returns the number of lines of the layer.
func (l Layer) Height() int {
	if l.Content == "" {
		return 0
	}
	return strings.Count(l.Content, "\n") + 1
}

// Compose paints layers over base in order, so later layers sit on top.
// Layers are clamped into the frame: negative coordinates snap to zero and a
// layer that would run past the right or bottom edge is shifted back inside.
// The frame never grows or reflows.
func Compose(base string, layers ...Layer) string {
	if len(layers) == 0 {
		return base
	}
	lines := strings.Split(base, "\n")
	frameWidth := 0
	for _, line := range lines {
		frameWidth = max(frameWidth, ansi.StringWidth(line))
	}

	for _, layer := range layers {
		if layer.Content == "" {
			continue
		}
		rows := strings.Split(layer.Content, "\n")
		x, y := clampOrigin(layer.X, layer.Width(), frameWidth), clampOrigin(layer.Y, len(rows), len(lines))
		for i, row := range rows {
			ly := y + i
			if ly >= len(lines) {
				break
			}
			lines[ly] = splice(lines[ly], x, row)
		}
	}
	return strings.Join(lines, "\n")
}

func clampOrigin(pos, size, limit int) int {
	if limit > 0 && pos+size > limit {
		pos = limit - size
	}
	return max(pos, 0)
}

// splice replaces the cells [x, x+width(overlay)) of line with overlay,
// keeping the escape sequences on both sides intact.
func splice(line string, x int, overlay string) string {
	w := ansi.StringWidth(overlay)
	left := ansi.Truncate(line, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ""
	if ansi.StringWidth(line) > x+w {
		right = ansi.TruncateLeft(line, x+w, "")
	}

	var b strings.Builder
	b.WriteString(left)
	if strings.Contains(left, "\x1b") {
		b.WriteString(sgrReset)
	}
	b.WriteString(overlay)
	if strings.Contains(overlay, "\x1b") && right != "" {
		b.WriteString(sgrReset)
	}
	b.WriteString(right)
	return b.String()
}

// Package surface records where rendered elements landed in a terminal frame
// and composites detached layers on top of that frame.
//
// A Surface is written during a render pass (Mount) and read during the
// interaction events that follow it (Measure). Compose is the root
// attachment point for floating content: layers are spliced onto the final
// frame so they escape any width clamp or border applied by the element
// that produced them.
package surface

// Rect is a cell rectangle in viewport coordinates. X and Y are zero-based
// column and row offsets from the top-left corner of the frame.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

package surface

import (
	"errors"

	"charm.land/lipgloss/v2"
)

// ErrNotMounted is returned by Measure when no element with the requested id
// was placed by the most recent render pass.
var ErrNotMounted = errors.New("element is not mounted on the surface")

type element struct {
	rect  Rect
	style lipgloss.Style
}

// Surface is the per-frame geometry registry for one root model. It is not
// safe for concurrent use; bubbletea drives it from a single goroutine.
type Surface struct {
	elements map[string]element
	width    int
	height   int
}

// New creates an empty surface for a frame of the given size. A zero size
// means unbounded.
func New(width, height int) *Surface {
	return &Surface{
		elements: make(map[string]element),
		width:    width,
		height:   height,
	}
}

// Resize updates the frame size used to clip mounted rectangles.
func (s *Surface) Resize(width, height int) {
	s.width = width
	s.height = height
}

// Size returns the frame size.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Reset forgets every mounted element. Root models call it at the start of
// each render pass so stale geometry never outlives its frame.
func (s *Surface) Reset() {
	clear(s.elements)
}

// Mount records the rectangle and resolved style of the element id for the
// current frame. Mounting an id twice keeps the last placement. Elements that
// fall entirely outside the frame are not recorded.
func (s *Surface) Mount(id string, rect Rect, style lipgloss.Style) {
	if id == "" || rect.Empty() {
		return
	}
	if s.width > 0 && rect.X >= s.width {
		return
	}
	if s.height > 0 && rect.Y >= s.height {
		return
	}
	if s.elements == nil {
		s.elements = make(map[string]element)
	}
	s.elements[id] = element{rect: rect, style: style}
}

// Unmount removes the element id.
func (s *Surface) Unmount(id string) {
	delete(s.elements, id)
}

// Measure returns the on-frame rectangle and resolved style of the element
// id as recorded by the last render pass.
func (s *Surface) Measure(id string) (Rect, lipgloss.Style, error) {
	if s == nil {
		return Rect{}, lipgloss.Style{}, ErrNotMounted
	}
	el, ok := s.elements[id]
	if !ok {
		return Rect{}, lipgloss.Style{}, ErrNotMounted
	}
	return el.rect, el.style, nil
}

// HitTest returns the id of the element under the cell (x, y), if any.
// When elements overlap the lexically smallest id wins so results are stable.
func (s *Surface) HitTest(x, y int) (string, bool) {
	found := ""
	for id, el := range s.elements {
		if !el.rect.Contains(x, y) {
			continue
		}
		if found == "" || id < found {
			found = id
		}
	}
	return found, found != ""
}

// Len returns the number of mounted elements.
func (s *Surface) Len() int {
	return len(s.elements)
}

package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/oakwood-commons/dispval/pkg/surface"
)

// ChildModel is a model owned and routed to by the RootModel.
type ChildModel interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (ChildModel, tea.Cmd)
	View() string
}

// ModelWithID is an optional interface that child models can implement
// to provide an identifier for debugging and logging.
type ModelWithID interface {
	ID() string
}

// ModelWithSize is an optional interface that child models can implement
// to respond to resize events.
type ModelWithSize interface {
	SetSize(width, height int)
}

// SurfaceUser is implemented by children that record element geometry on
// the root's surface while they render.
type SurfaceUser interface {
	SetSurface(s *surface.Surface)
}

// OverlayProvider is implemented by children that float layers above the
// frame. The root composites them after every child has rendered, so no
// child's bounds can clip them.
type OverlayProvider interface {
	Overlays() []surface.Layer
}

package display

import "charm.land/lipgloss/v2"

// ChunkKind identifies one visual segment.
type ChunkKind int

const (
	ChunkErrorIcon ChunkKind = iota
	ChunkPrefix
	ChunkSign
	ChunkIndicator
	ChunkSymbol
	ChunkValue
	ChunkSkeleton
	ChunkSpinner
	ChunkEmptyCell
)

var chunkKindNames = map[ChunkKind]string{
	ChunkErrorIcon: "error",
	ChunkPrefix:    "prefix",
	ChunkSign:      "sign",
	ChunkIndicator: "indicator",
	ChunkSymbol:    "symbol",
	ChunkValue:     "value",
	ChunkSkeleton:  "skeleton",
	ChunkSpinner:   "spinner",
	ChunkEmptyCell: "empty",
}

func (k ChunkKind) String() string {
	if name, ok := chunkKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Chunk is one rendered segment of a presented value.
type Chunk struct {
	Kind ChunkKind
	// Text is the rendered, styled segment.
	Text string
	// Source is the unstyled text the segment was built from, when there is one.
	Source string
	// Style is the resolved style the segment was rendered with.
	Style lipgloss.Style
	// Tooltip is the resolved error message on error chunks.
	Tooltip string
	// Truncated is set on symbol chunks rendered through the truncate slot.
	Truncated bool
	// MaxChars is the truncation budget of a truncated symbol.
	MaxChars int
}

// Plan is the ordered chunk sequence for one request.
type Plan struct {
	Mode   Mode
	Chunks []Chunk
	// Contained reports whether the chunks are wrapped in the container style.
	// A bare empty cell is not.
	Contained bool
}

// Kinds lists the chunk kinds in order.
func (p Plan) Kinds() []ChunkKind {
	kinds := make([]ChunkKind, len(p.Chunks))
	for i, c := range p.Chunks {
		kinds[i] = c.Kind
	}
	return kinds
}

// Sources lists the unstyled chunk sources in order.
func (p Plan) Sources() []string {
	out := make([]string, len(p.Chunks))
	for i, c := range p.Chunks {
		out[i] = c.Source
	}
	return out
}

// Find returns the first chunk of kind k.
func (p Plan) Find(k ChunkKind) (Chunk, bool) {
	for _, c := range p.Chunks {
		if c.Kind == k {
			return c, true
		}
	}
	return Chunk{}, false
}

package surface

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func blankFrame(width, height int) string {
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat(".", width)
	}
	return strings.Join(rows, "\n")
}

func TestComposeWithoutLayers(t *testing.T) {
	base := blankFrame(4, 2)
	assert.Equal(t, base, Compose(base))
}

func TestComposePlacesLayer(t *testing.T) {
	got := Compose(blankFrame(10, 3), Layer{X: 2, Y: 1, Content: "ab"})
	assert.Equal(t, "..........\n..ab......\n..........", got)
}

func TestComposeMultiLineLayer(t *testing.T) {
	got := Compose(blankFrame(6, 3), Layer{X: 1, Y: 1, Content: "xy\nzw"})
	assert.Equal(t, "......\n.xy...\n.zw...", got)
}

func TestComposeClampsIntoFrame(t *testing.T) {
	tests := []struct {
		name  string
		layer Layer
		want  string
	}{
		{
			name:  "negative origin snaps to zero",
			layer: Layer{X: -5, Y: -3, Content: "ab"},
			want:  "ab....\n......",
		},
		{
			name:  "right edge shifts left",
			layer: Layer{X: 5, Y: 0, Content: "abc"},
			want:  "...abc\n......",
		},
		{
			name:  "bottom edge shifts up",
			layer: Layer{X: 0, Y: 1, Content: "a\nb"},
			want:  "a.....\nb.....",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(blankFrame(6, 2), tt.layer))
		})
	}
}

func TestComposeLaterLayersOnTop(t *testing.T) {
	got := Compose(blankFrame(6, 1),
		Layer{X: 0, Y: 0, Content: "aaaa"},
		Layer{X: 2, Y: 0, Content: "bb"},
	)
	assert.Equal(t, "aabb..", got)
}

func TestComposePadsShortLines(t *testing.T) {
	got := Compose("......\n..", Layer{X: 4, Y: 1, Content: "ab"})
	assert.Equal(t, "......\n..  ab", got)
}

func TestComposeKeepsStyledBaseIntact(t *testing.T) {
	base := "\x1b[31mred text here\x1b[m"
	got := Compose(base, Layer{X: 4, Y: 0, Content: "XX"})
	assert.Equal(t, "red XXxt here", ansi.Strip(got))
}

func TestLayerDimensions(t *testing.T) {
	l := Layer{Content: "abc\nde"}
	assert.Equal(t, 3, l.Width())
	assert.Equal(t, 2, l.Height())
	assert.Equal(t, 0, Layer{}.Height())
}

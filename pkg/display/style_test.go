package display

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestMergeStyles(t *testing.T) {
	base := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")).MarginLeft(2)
	override := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("4"))

	got := MergeStyles(base, override)
	assert.True(t, got.GetBold())
	assert.True(t, got.GetItalic())
	assert.Equal(t, lipgloss.Color("4"), got.GetForeground())
	assert.Equal(t, 2, got.GetMarginLeft())

	later := MergeStyles(base, override, lipgloss.NewStyle().Foreground(lipgloss.Color("2")).PaddingLeft(1))
	assert.Equal(t, lipgloss.Color("2"), later.GetForeground())
	assert.Equal(t, 1, later.GetPaddingLeft())
	assert.Equal(t, 2, later.GetMarginLeft())
}

func TestMergeStylesWithoutOverrides(t *testing.T) {
	base := lipgloss.NewStyle().Underline(true)
	assert.True(t, MergeStyles(base).GetUnderline())
}

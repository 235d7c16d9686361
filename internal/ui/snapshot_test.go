package ui

import (
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotConfig(t *testing.T, keys ...string) SnapshotConfig {
	t.Helper()
	return SnapshotConfig{PreviewOptions: PreviewOptions{
		Config:    defaultConfig(t),
		Theme:     fallbackTheme(),
		NoColor:   true,
		Width:     50,
		Height:    10,
		StartKeys: keys,
		Logger:    logr.Discard(),
	}}
}

func TestRenderSnapshot(t *testing.T) {
	s := loadSheet(t, previewSheet)

	out := RenderSnapshot(s, snapshotConfig(t))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6, "trailing padding is dropped")
	assert.Contains(t, lines[0], "5.00%")
	assert.Contains(t, lines[5], statusHint)
}

func TestRenderSnapshotStartKeys(t *testing.T) {
	s := loadSheet(t, previewSheet)

	out := RenderSnapshot(s, snapshotConfig(t, "<Tab>"))
	assert.Contains(t, out, "SUPERLONGTOKEN")

	out = RenderSnapshot(s, snapshotConfig(t, "<Tab><Tab>"))
	assert.Contains(t, out, "boom")

	cfg := snapshotConfig(t)
	cfg.HelpVisible = true
	assert.Contains(t, RenderSnapshot(s, cfg), "toggle help")
}

func TestParseTokenSegments(t *testing.T) {
	tests := []struct {
		token string
		want  []tokenSegment
	}{
		{"abc", []tokenSegment{{text: "abc"}}},
		{"<Tab>", []tokenSegment{{text: "<Tab>", isVimKey: true}}},
		{"<Tab>?x", []tokenSegment{{text: "<Tab>", isVimKey: true}, {text: "?x"}}},
		{"a<Esc", []tokenSegment{{text: "a"}, {text: "<Esc"}}},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTokenSegments(tt.token))
		})
	}
}

func TestKeyMsgFromToken(t *testing.T) {
	tests := map[string]string{
		"<Tab>":   "tab",
		"<S-Tab>": "shift+tab",
		"<Esc>":   "esc",
		"<C-c>":   "ctrl+c",
		"<CR>":    "enter",
	}
	for token, want := range tests {
		msg, ok := keyMsgFromToken(token)
		require.True(t, ok, token)
		assert.Equal(t, want, msg.String(), token)
	}
	_, ok := keyMsgFromToken("<F13>")
	assert.False(t, ok)
}

func TestApplyStartupKeysLiteral(t *testing.T) {
	child := &mockChild{}
	root := NewRootModel(child)

	ApplyStartupKeys(root, []string{`\<Tab>`})
	assert.Equal(t, 5, child.updateCalls, "each rune of a literal token is a keypress")

	ApplyStartupKeys(nil, []string{"<Tab>"})
}

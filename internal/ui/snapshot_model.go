package ui

import (
	"strings"

	"github.com/oakwood-commons/dispval/pkg/sheet"
)

// SnapshotConfig configures a non-interactive render of the preview.
type SnapshotConfig struct {
	PreviewOptions
	HelpVisible bool
}

// RenderSnapshot renders one frame of the preview of s after replaying the
// configured start keys. Trailing blank lines are dropped.
func RenderSnapshot(s *sheet.Sheet, cfg SnapshotConfig) string {
	opts := cfg.PreviewOptions
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	root := NewPreview(s, opts)

	// The first frame mounts every anchor so focus keys can measure them.
	root.Frame()
	ApplyStartupKeys(root, opts.StartKeys)
	if cfg.HelpVisible && !root.HelpVisible() {
		ApplyStartupKeys(root, []string{"?"})
	}

	lines := strings.Split(root.Frame(), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

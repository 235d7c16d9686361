package formatter

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// TreeOptions controls tree output formatting.
type TreeOptions struct {
	// NoSources hides chunk sources (kinds only).
	NoSources bool
	// MaxStringLen is max chars before truncating sources and tooltips.
	// 0 or negative = no truncation.
	MaxStringLen int
}

// FormatAsTree renders a sheet plan as a tree: one branch per row, one leaf
// per chunk.
func FormatAsTree(sp SheetPlan, opts TreeOptions) string {
	tree := treeprint.New()
	if sp.Title != "" {
		tree.SetValue(sp.Title)
	}
	for _, row := range sp.Rows {
		branch := tree.AddBranch(rowHeading(row))
		if row.Error != "" {
			branch.AddMetaNode("error", clip(row.Error, opts.MaxStringLen))
		}
		for _, c := range row.Chunks {
			addChunk(branch, c, opts)
		}
	}
	return tree.String()
}

func rowHeading(row PlanRow) string {
	name := row.Label
	if name == "" {
		name = row.ID
	}
	return fmt.Sprintf("%s (%s)", name, row.Mode)
}

func addChunk(branch treeprint.Tree, c PlanChunk, opts TreeOptions) {
	var parts []string
	if !opts.NoSources && c.Source != "" {
		parts = append(parts, fmt.Sprintf("%q", clip(c.Source, opts.MaxStringLen)))
	}
	if c.Truncated {
		parts = append(parts, fmt.Sprintf("truncated to %d", c.MaxChars))
	}
	if c.Tooltip != "" {
		parts = append(parts, "tooltip: "+clip(c.Tooltip, opts.MaxStringLen))
	}
	if len(parts) == 0 {
		branch.AddNode(c.Kind)
		return
	}
	branch.AddMetaNode(c.Kind, strings.Join(parts, ", "))
}

func clip(s string, maxLen int) string {
	r := []rune(s)
	if maxLen <= 0 || len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "…"
}

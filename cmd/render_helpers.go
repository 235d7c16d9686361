package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/go-logr/logr"
	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/dispval/pkg/display"
	"github.com/oakwood-commons/dispval/pkg/logger"
	"github.com/oakwood-commons/dispval/pkg/sheet"
)

const labelGap = "  "

// renderSheet prints the title and one line per row: the label padded to the
// widest label, then the presented value. Lines are cut to width cells.
func renderSheet(w io.Writer, s *sheet.Sheet, p *display.Presenter, d sheet.Defaults, width int, lgr logr.Logger) {
	if s.Title != "" {
		fmt.Fprintln(w, s.Title)
	}
	labelWidth := 0
	for _, row := range s.Rows {
		labelWidth = max(labelWidth, runewidth.StringWidth(row.Label))
	}

	for _, row := range s.Rows {
		req, err := row.Request(d)
		if err != nil {
			lgr.V(1).Info("row request failed", logger.RowKey, row.ID, "error", err.Error())
			req = display.Request{ID: row.ID, IsError: display.Bool(true), Err: err}
		}
		var b strings.Builder
		if labelWidth > 0 {
			b.WriteString(runewidth.FillRight(row.Label, labelWidth))
			b.WriteString(labelGap)
		}
		b.WriteString(p.Present(req))
		line := b.String()
		if width > 0 {
			line = ansi.Truncate(line, width, "…")
		}
		fmt.Fprintln(w, line)
	}
}

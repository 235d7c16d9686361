package formatter

import (
	"github.com/oakwood-commons/dispval/pkg/display"
	"github.com/oakwood-commons/dispval/pkg/sheet"
)

// PlanChunk is the unstyled description of one rendered segment.
type PlanChunk struct {
	Kind      string `yaml:"kind" json:"kind"`
	Source    string `yaml:"source,omitempty" json:"source,omitempty"`
	Truncated bool   `yaml:"truncated,omitempty" json:"truncated,omitempty"`
	MaxChars  int    `yaml:"max_chars,omitempty" json:"max_chars,omitempty"`
	Tooltip   string `yaml:"tooltip,omitempty" json:"tooltip,omitempty"`
}

// PlanRow is the resolved presentation of one sheet row.
type PlanRow struct {
	ID        string      `yaml:"id" json:"id"`
	Label     string      `yaml:"label,omitempty" json:"label,omitempty"`
	Mode      string      `yaml:"mode" json:"mode"`
	Contained bool        `yaml:"contained" json:"contained"`
	Chunks    []PlanChunk `yaml:"chunks" json:"chunks"`
	Error     string      `yaml:"error,omitempty" json:"error,omitempty"`
}

// SheetPlan is the plan of every row of a sheet.
type SheetPlan struct {
	Title string    `yaml:"title,omitempty" json:"title,omitempty"`
	Rows  []PlanRow `yaml:"rows" json:"rows"`
}

// BuildPlan resolves every row of s through p. Rows that fail to build a
// request are planned as errors and carry the failure in Error.
func BuildPlan(s *sheet.Sheet, p *display.Presenter, d sheet.Defaults) SheetPlan {
	out := SheetPlan{Title: s.Title, Rows: make([]PlanRow, 0, len(s.Rows))}
	for _, row := range s.Rows {
		req, err := row.Request(d)
		pr := PlanRow{ID: row.ID, Label: row.Label}
		if err != nil {
			req = display.Request{ID: row.ID, IsError: display.Bool(true), Err: err}
			pr.Error = err.Error()
		}
		plan := p.Plan(req)
		pr.Mode = plan.Mode.String()
		pr.Contained = plan.Contained
		pr.Chunks = make([]PlanChunk, len(plan.Chunks))
		for i, c := range plan.Chunks {
			pr.Chunks[i] = PlanChunk{
				Kind:      c.Kind.String(),
				Source:    c.Source,
				Truncated: c.Truncated,
				MaxChars:  c.MaxChars,
				Tooltip:   c.Tooltip,
			}
		}
		out.Rows = append(out.Rows, pr)
	}
	return out
}

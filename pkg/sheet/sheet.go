// Package sheet reads value sheets: lists of values to present, each row
// describing one display request. Sheets may be YAML, JSON, NDJSON, or TOML.
package sheet

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sheet is a titled list of rows.
type Sheet struct {
	Title  string `yaml:"title"`
	Rows   []Row  `yaml:"rows"`
	Format Format `yaml:"-"`
}

// Load parses a sheet, detecting its format. A document may be a mapping
// with a rows list, a bare list of rows, or a single row; multi-document
// YAML and NDJSON append their documents in order.
func Load(data []byte) (*Sheet, error) {
	input := strings.TrimSpace(string(data))
	if input == "" {
		return nil, errors.New("empty input")
	}

	format := Detect(input)
	nodes, err := documents(input, format)
	if err != nil {
		return nil, err
	}

	s := &Sheet{Format: format}
	for i, n := range nodes {
		if err := s.add(n); err != nil {
			return nil, fmt.Errorf("document %d: %w", i+1, err)
		}
	}
	if len(s.Rows) == 0 {
		return nil, errors.New("no rows found")
	}
	for i := range s.Rows {
		if s.Rows[i].ID == "" {
			s.Rows[i].ID = fmt.Sprintf("row-%d", i+1)
		}
		if err := s.Rows[i].Validate(); err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", i+1, s.Rows[i].name(), err)
		}
	}
	return s, nil
}

// LoadFile reads and parses a sheet file. A path of "-" reads stdin.
func LoadFile(path string) (*Sheet, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = readAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	s, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("load sheet %s: %w", path, err)
	}
	return s, nil
}

func (s *Sheet) add(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var rows []Row
		if err := n.Decode(&rows); err != nil {
			return err
		}
		s.Rows = append(s.Rows, rows...)
	case yaml.MappingNode:
		if !hasKey(n, "rows") {
			var row Row
			if err := n.Decode(&row); err != nil {
				return err
			}
			s.Rows = append(s.Rows, row)
			return nil
		}
		var doc Sheet
		if err := n.Decode(&doc); err != nil {
			return err
		}
		if s.Title == "" {
			s.Title = doc.Title
		}
		s.Rows = append(s.Rows, doc.Rows...)
	default:
		return fmt.Errorf("line %d: expected a list or mapping of rows", n.Line)
	}
	return nil
}

func hasKey(n *yaml.Node, key string) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}

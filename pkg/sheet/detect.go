package sheet

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the serialization a sheet was read from.
type Format string

const (
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
	FormatTOML   Format = "toml"
)

var (
	// [rows], [[rows]], ["quoted"], [a.b]; not JSON arrays like [1, 2].
	tomlSection = regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)
	// key = value, as opposed to YAML's key: value.
	tomlKeyValue = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)
)

// Detect guesses the format of input. Multi-document YAML is checked
// first, then NDJSON, then TOML (whose section headers look like JSON
// arrays), then JSON. Anything else is YAML.
func Detect(input string) Format {
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "---") || strings.Contains(input, "\n---") {
		return FormatYAML
	}
	lines := strings.Split(input, "\n")
	if isLikelyNDJSON(lines) {
		return FormatNDJSON
	}
	if isLikelyTOML(lines) {
		return FormatTOML
	}
	if strings.HasPrefix(input, "{") || strings.HasPrefix(input, "[") {
		return FormatJSON
	}
	return FormatYAML
}

// isLikelyNDJSON requires several lines, most of them starting like a JSON
// object or array, so YAML lists are not mistaken for it.
func isLikelyNDJSON(lines []string) bool {
	jsonCount, nonEmpty := 0, 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmpty++
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			jsonCount++
		}
	}
	return nonEmpty > 1 && jsonCount > nonEmpty/2
}

func isLikelyTOML(lines []string) bool {
	sections, keyValues, nonEmpty := 0, 0, 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmpty++
		if tomlSection.MatchString(line) {
			sections++
		}
		if tomlKeyValue.MatchString(line) {
			keyValues++
		}
	}
	return sections > 0 || (nonEmpty > 0 && keyValues > nonEmpty/2)
}

// documents decodes input into YAML nodes, one per document. Every format
// goes through yaml.Node so rows decode the same way regardless of source.
func documents(input string, format Format) ([]*yaml.Node, error) {
	switch format {
	case FormatJSON:
		var v any
		if err := json.Unmarshal([]byte(input), &v); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return encodeNodes(v)
	case FormatNDJSON:
		var values []any
		for i, line := range strings.Split(input, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			var v any
			if err := json.Unmarshal([]byte(line), &v); err != nil {
				return nil, fmt.Errorf("invalid JSON on line %d: %w", i+1, err)
			}
			values = append(values, v)
		}
		return encodeNodes(values...)
	case FormatTOML:
		var v map[string]any
		if err := toml.Unmarshal([]byte(input), &v); err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}
		return encodeNodes(v)
	default:
		return decodeYAML(input)
	}
}

func decodeYAML(input string) ([]*yaml.Node, error) {
	var nodes []*yaml.Node
	dec := yaml.NewDecoder(strings.NewReader(input))
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		if n := unwrap(&doc); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

func encodeNodes(values ...any) ([]*yaml.Node, error) {
	nodes := make([]*yaml.Node, 0, len(values))
	for _, v := range values {
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return nil, fmt.Errorf("encode document: %w", err)
		}
		if u := unwrap(&n); u != nil {
			nodes = append(nodes, u)
		}
	}
	return nodes, nil
}

func unwrap(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil
		}
		n = n.Content[0]
	}
	if n != nil && n.ShortTag() == "!!null" {
		return nil
	}
	return n
}

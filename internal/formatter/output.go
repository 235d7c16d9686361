package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Outputs lists the structured plan outputs.
var Outputs = []string{"tree", "yaml", "json"}

// ValidateOutput returns an error if output is not one of Outputs.
func ValidateOutput(output string) error {
	for _, o := range Outputs {
		if output == o {
			return nil
		}
	}
	return fmt.Errorf("invalid output %q: valid values are %s", output, strings.Join(Outputs, ", "))
}

// Format renders sp in the named output.
func Format(sp SheetPlan, output string, tree TreeOptions) (string, error) {
	switch output {
	case "tree":
		return FormatAsTree(sp, tree), nil
	case "yaml":
		return FormatYAML(sp, 2)
	case "json":
		data, err := json.MarshalIndent(sp, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode plan: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", ValidateOutput(output)
	}
}

// FormatYAML renders v as YAML. Multi-line strings, such as wrapped error
// messages, are emitted as literal blocks.
func FormatYAML(v any, indent int) (string, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return "", fmt.Errorf("encode plan: %w", err)
	}
	applyLiteralStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if indent <= 0 {
		indent = 2
	}
	enc.SetIndent(indent)
	if err := enc.Encode(&node); err != nil {
		return "", fmt.Errorf("encode plan: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode plan: %w", err)
	}
	return buf.String(), nil
}

func applyLiteralStyle(n *yaml.Node) {
	if n == nil {
		return
	}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" && strings.Contains(n.Value, "\n") {
		n.Style = yaml.LiteralStyle
	}
	for _, c := range n.Content {
		applyLiteralStyle(c)
	}
}

package formatter

import (
	"strings"
	"testing"

	"github.com/oakwood-commons/dispval/pkg/display"
	"github.com/oakwood-commons/dispval/pkg/sheet"
)

const planSheet = `
title: Balances
rows:
  - label: Token
    variant: token_amount
    value: 12
    symbol: SUPERLONGTOKEN
    symbol_max_chars: 4
  - label: Broken
    error: true
    error_message: boom
`

func testPlan(t *testing.T) SheetPlan {
	t.Helper()
	s, err := sheet.Load([]byte(planSheet))
	if err != nil {
		t.Fatalf("load sheet: %v", err)
	}
	s.Rows = append(s.Rows, sheet.Row{ID: "bad", Value: sheet.Num("abc")})
	return BuildPlan(s, display.NewPresenter(), sheet.Defaults{})
}

func TestBuildPlan(t *testing.T) {
	sp := testPlan(t)
	if sp.Title != "Balances" {
		t.Errorf("expected title Balances, got %q", sp.Title)
	}
	if len(sp.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(sp.Rows))
	}

	token := sp.Rows[0]
	if token.Mode != "populated" {
		t.Errorf("expected populated mode, got %q", token.Mode)
	}
	var symbol *PlanChunk
	for i := range token.Chunks {
		if token.Chunks[i].Kind == "symbol" {
			symbol = &token.Chunks[i]
		}
	}
	if symbol == nil {
		t.Fatalf("expected a symbol chunk in %+v", token.Chunks)
	}
	if symbol.Source != "SUPERLONGTOKEN" || !symbol.Truncated || symbol.MaxChars != 4 {
		t.Errorf("unexpected symbol chunk %+v", *symbol)
	}

	broken := sp.Rows[1]
	if broken.Mode != "error-only" {
		t.Errorf("expected error-only mode, got %q", broken.Mode)
	}
	if len(broken.Chunks) != 1 || broken.Chunks[0].Tooltip != "boom" {
		t.Errorf("expected a single error chunk with tooltip boom, got %+v", broken.Chunks)
	}

	bad := sp.Rows[2]
	if bad.Mode != "error-only" || !strings.Contains(bad.Error, "parse number") {
		t.Errorf("expected planned row failure, got %+v", bad)
	}
}

func TestFormatAsTree(t *testing.T) {
	result := FormatAsTree(testPlan(t), TreeOptions{})

	if !strings.HasPrefix(result, "Balances") {
		t.Errorf("expected tree to start with the title, got:\n%s", result)
	}
	for _, want := range []string{
		"Token (populated)",
		`"SUPERLONGTOKEN", truncated to 4`,
		"Broken (error-only)",
		"tooltip: boom",
		"bad (error-only)",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("expected %q in output, got:\n%s", want, result)
		}
	}
}

func TestFormatAsTree_Options(t *testing.T) {
	result := FormatAsTree(testPlan(t), TreeOptions{NoSources: true, MaxStringLen: 2})

	if strings.Contains(result, "SUPERLONGTOKEN") {
		t.Errorf("expected sources hidden, got:\n%s", result)
	}
	if !strings.Contains(result, "tooltip: bo…") {
		t.Errorf("expected clipped tooltip, got:\n%s", result)
	}
}

func TestFormat(t *testing.T) {
	sp := testPlan(t)
	tests := []struct {
		output string
		want   string
	}{
		{"yaml", "title: Balances\nrows:\n  - id: row-1\n"},
		{"json", "{\n  \"title\": \"Balances\",\n"},
		{"tree", "Balances\n"},
	}
	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			out, err := Format(sp, tt.output, TreeOptions{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(out, tt.want) {
				t.Errorf("expected prefix %q, got:\n%s", tt.want, out)
			}
		})
	}

	if _, err := Format(sp, "xml", TreeOptions{}); err == nil || !strings.Contains(err.Error(), "tree, yaml, json") {
		t.Errorf("expected invalid output error, got %v", err)
	}
}

func TestFormatYAML_LiteralBlocks(t *testing.T) {
	out, err := FormatYAML(map[string]string{"error": "line one\nline two"}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "error: |-\n  line one\n  line two") {
		t.Errorf("expected literal block, got:\n%s", out)
	}
}

package sheet

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/dispval/internal/cel"
	"github.com/oakwood-commons/dispval/pkg/display"
	"github.com/oakwood-commons/dispval/pkg/format"
)

// Variant names accepted in sheets.
const (
	VariantValue       = "value"
	VariantPercentage  = "percentage"
	VariantTokenValue  = "token_value"
	VariantTokenAmount = "token_amount"
)

var evaluator = sync.OnceValues(cel.NewEvaluator)

// Scalar is a YAML scalar that remembers whether it was written as a number.
type Scalar struct {
	Raw     string
	Numeric bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scalar) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", n.Line)
	}
	s.Raw = n.Value
	tag := n.ShortTag()
	s.Numeric = tag == "!!int" || tag == "!!float"
	return nil
}

// Num is a scalar written as a number.
func Num(v string) *Scalar { return &Scalar{Raw: v, Numeric: true} }

// Str is a scalar written as text.
func Str(v string) *Scalar { return &Scalar{Raw: v} }

// Row describes one value to present.
type Row struct {
	ID      string  `yaml:"id"`
	Label   string  `yaml:"label"`
	Variant string  `yaml:"variant"`
	Value   *Scalar `yaml:"value"`
	// Decimals is the number of places numeric values are formatted with.
	Decimals *int32  `yaml:"decimals"`
	Fallback *string `yaml:"fallback"`
	Symbol   *string `yaml:"symbol"`

	SymbolPosition string `yaml:"symbol_position"`
	Sign           string `yaml:"sign"`
	Indicator      string `yaml:"indicator"`
	Prefix         string `yaml:"prefix"`

	BelowMin bool    `yaml:"below_min"`
	AboveMax bool    `yaml:"above_max"`
	Min      *Scalar `yaml:"min"`
	Max      *Scalar `yaml:"max"`

	Loading              bool   `yaml:"loading"`
	Pending              bool   `yaml:"pending"`
	Error                bool   `yaml:"error"`
	ErrorMessage         string `yaml:"error_message"`
	DisplayErrorAndValue bool   `yaml:"display_error_and_value"`
	ErrorPosition        string `yaml:"error_position"`

	Skeleton       *bool   `yaml:"skeleton"`
	SkeletonWidth  *Scalar `yaml:"skeleton_width"`
	SymbolMaxChars *int    `yaml:"symbol_max_chars"`

	// CEL predicates over the numeric value, bound to "_".
	BelowMinExpr string `yaml:"below_min_expr"`
	AboveMaxExpr string `yaml:"above_max_expr"`
	ErrorWhen    string `yaml:"error_when"`
}

// Defaults fill in row fields a sheet leaves out.
type Defaults struct {
	Variant  string
	Decimals *int32
}

func (r Row) name() string {
	if r.Label != "" {
		return r.Label
	}
	return r.ID
}

func normalizeVariant(v string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), "-", "_")
}

// Validate checks enumerations, numeric fields, and CEL expressions.
func (r Row) Validate() error {
	switch normalizeVariant(r.Variant) {
	case "", VariantValue, VariantPercentage, VariantTokenValue, VariantTokenAmount:
	default:
		return fmt.Errorf("unknown variant %q", r.Variant)
	}
	switch r.SymbolPosition {
	case "", string(display.SymbolBefore), string(display.SymbolAfter):
	default:
		return fmt.Errorf("symbol_position must be before or after, got %q", r.SymbolPosition)
	}
	switch r.ErrorPosition {
	case "", string(display.ErrorBefore), string(display.ErrorAfter):
	default:
		return fmt.Errorf("error_position must be before or after, got %q", r.ErrorPosition)
	}
	for name, s := range map[string]*Scalar{"min": r.Min, "max": r.Max} {
		if s == nil {
			continue
		}
		if _, err := format.Parse(s.Raw); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	exprs := r.expressions()
	if len(exprs) == 0 {
		return nil
	}
	eval, err := evaluator()
	if err != nil {
		return err
	}
	for _, e := range exprs {
		if _, err := eval.Compile(e.expr); err != nil {
			return fmt.Errorf("%s: %w", e.field, err)
		}
	}
	return nil
}

type namedExpr struct {
	field string
	expr  string
	set   func(*display.Request)
}

func (r Row) expressions() []namedExpr {
	var out []namedExpr
	if r.BelowMinExpr != "" {
		out = append(out, namedExpr{"below_min_expr", r.BelowMinExpr, func(q *display.Request) { q.BelowMin = true }})
	}
	if r.AboveMaxExpr != "" {
		out = append(out, namedExpr{"above_max_expr", r.AboveMaxExpr, func(q *display.Request) { q.AboveMax = true }})
	}
	if r.ErrorWhen != "" {
		out = append(out, namedExpr{"error_when", r.ErrorWhen, func(q *display.Request) { q.IsError = display.Bool(true) }})
	}
	return out
}

// Request builds the display request for the row.
func (r Row) Request(d Defaults) (display.Request, error) {
	variant := normalizeVariant(r.Variant)
	if variant == "" {
		variant = normalizeVariant(d.Variant)
	}
	decimals := r.Decimals
	if decimals == nil {
		decimals = d.Decimals
	}

	q := display.Request{
		ID:                   r.ID,
		Fallback:             r.Fallback,
		Symbol:               r.Symbol,
		SymbolPosition:       display.SymbolPosition(r.SymbolPosition),
		Sign:                 r.Sign,
		BelowMin:             r.BelowMin,
		AboveMax:             r.AboveMax,
		DisplayErrorAndValue: r.DisplayErrorAndValue,
		ErrorPosition:        display.ErrorPosition(r.ErrorPosition),
		ErrorMessage:         r.ErrorMessage,
		LoaderSkeleton:       r.Skeleton,
		SymbolMaxChars:       r.SymbolMaxChars,
	}
	if r.Indicator != "" {
		q.Indicator = display.Text(r.Indicator)
	}
	if r.Prefix != "" {
		q.Prefix = display.Text(r.Prefix)
	}
	if r.Loading {
		q.IsLoading = display.Bool(true)
	}
	if r.Pending {
		q.IsPending = display.Bool(true)
	}
	if r.Error {
		q.IsError = display.Bool(true)
	}
	if r.SkeletonWidth != nil {
		q.SkeletonWidth = skeletonWidth(*r.SkeletonWidth)
	}

	if r.Value != nil {
		if err := r.applyValue(&q, variant, decimals); err != nil {
			return display.Request{}, fmt.Errorf("row %s: %w", r.name(), err)
		}
	}

	if apply, ok := display.Variants[variant]; ok {
		q = apply(q)
	}
	return q, nil
}

func (r Row) applyValue(q *display.Request, variant string, decimals *int32) error {
	if !r.Value.Numeric {
		q.Value = display.Str(r.Value.Raw)
		return nil
	}
	v, err := format.Parse(r.Value.Raw)
	if err != nil {
		return err
	}

	f := formatter(variant, decimals)
	var res format.Result
	if r.Min != nil || r.Max != nil {
		res = format.Bounded(v, bound(r.Min), bound(r.Max), f)
	} else {
		res = f(v)
	}
	q.Value = display.Str(res.Text)
	if q.Sign == "" {
		q.Sign = res.Sign
	}
	q.BelowMin = q.BelowMin || res.BelowMin
	q.AboveMax = q.AboveMax || res.AboveMax

	exprs := r.expressions()
	if len(exprs) == 0 {
		return nil
	}
	eval, err := evaluator()
	if err != nil {
		return err
	}
	for _, e := range exprs {
		ok, err := eval.Test(e.expr, v.InexactFloat64())
		if err != nil {
			return fmt.Errorf("%s: %w", e.field, err)
		}
		if ok {
			e.set(q)
		}
	}
	return nil
}

func formatter(variant string, decimals *int32) format.Formatter {
	places := func(def int32) int32 {
		if decimals != nil {
			return *decimals
		}
		return def
	}
	switch variant {
	case VariantPercentage:
		return func(d decimal.Decimal) format.Result { return format.Percentage(d, places(2)) }
	case VariantTokenAmount:
		return func(d decimal.Decimal) format.Result { return format.TokenAmount(d, places(4)) }
	case VariantTokenValue:
		return format.TokenValue
	default:
		if decimals != nil {
			return func(d decimal.Decimal) format.Result { return format.Plain(d, *decimals) }
		}
		return func(d decimal.Decimal) format.Result {
			res := format.Result{Text: d.Abs().String()}
			if d.IsNegative() {
				res.Sign = "-"
			}
			return res
		}
	}
}

func bound(s *Scalar) decimal.Decimal {
	if s == nil {
		return decimal.Zero
	}
	d, err := format.Parse(s.Raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func skeletonWidth(s Scalar) display.Width {
	if n, err := strconv.Atoi(s.Raw); err == nil && s.Numeric {
		return display.Px(n)
	}
	return display.RawWidth(s.Raw)
}

// Package format turns numbers into the display strings a value presenter
// shows, keeping the sign and range flags apart from the text.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// GroupSeparator separates thousands in grouped output.
const GroupSeparator = ","

// Result is a formatted number split the way a presenter consumes it.
type Result struct {
	// Text is the magnitude, without sign.
	Text string
	// Sign is "-" for negative values and empty otherwise.
	Sign string
	// BelowMin is set when Text was clamped up to a display minimum.
	BelowMin bool
	// AboveMax is set when Text was clamped down to a display maximum.
	AboveMax bool
}

// Formatter renders a number.
type Formatter func(decimal.Decimal) Result

// Parse reads a decimal from s.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse number %q: %w", s, err)
	}
	return d, nil
}

// Plain renders v with a fixed number of places and no grouping.
func Plain(v decimal.Decimal, places int32) Result {
	return Result{Text: v.Abs().StringFixed(places), Sign: sign(v)}
}

// Percentage renders v with a fixed number of places. The caller adds the
// "%" symbol.
func Percentage(v decimal.Decimal, places int32) Result {
	return Plain(v, places)
}

// TokenAmount renders v with thousands grouping, truncated (not rounded)
// to places and with trailing zeros dropped.
func TokenAmount(v decimal.Decimal, places int32) Result {
	abs := v.Abs().Truncate(places)
	return Result{Text: group(abs.String()), Sign: sign(v)}
}

// TokenValue renders a fiat value with two places and thousands grouping.
func TokenValue(v decimal.Decimal) Result {
	return Result{Text: group(v.Abs().StringFixed(2)), Sign: sign(v)}
}

// Bounded formats v with f, replacing the text with the formatted bound
// when |v| is a non-zero amount under min or over max. A zero bound is
// disabled.
func Bounded(v, min, max decimal.Decimal, f Formatter) Result {
	abs := v.Abs()
	switch {
	case !min.IsZero() && !abs.IsZero() && abs.LessThan(min.Abs()):
		r := f(min.Abs())
		r.Sign = sign(v)
		r.BelowMin = true
		return r
	case !max.IsZero() && abs.GreaterThan(max.Abs()):
		r := f(max.Abs())
		r.Sign = sign(v)
		r.AboveMax = true
		return r
	}
	return f(v)
}

func sign(v decimal.Decimal) string {
	if v.IsNegative() {
		return "-"
	}
	return ""
}

func group(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) > 3 {
		var b strings.Builder
		head := len(intPart) % 3
		if head > 0 {
			b.WriteString(intPart[:head])
		}
		for i := head; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteString(GroupSeparator)
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	if hasFrac {
		return intPart + "." + frac
	}
	return intPart
}

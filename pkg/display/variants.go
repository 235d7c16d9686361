package display

import "charm.land/lipgloss/v2"

// Variant pre-binds defaults onto a request. Fields the caller already set
// are left alone.
type Variant func(Request) Request

// Variants by name, as referenced from sheets and config.
var Variants = map[string]Variant{
	"percentage":   Percentage,
	"token_value":  TokenValue,
	"token_amount": TokenAmount,
}

// Percentage shows a trailing "%".
func Percentage(r Request) Request {
	if r.Symbol == nil {
		r.Symbol = Str("%")
	}
	if r.SymbolPosition == "" {
		r.SymbolPosition = SymbolAfter
	}
	return withSkeleton(r)
}

// TokenValue shows a leading "$".
func TokenValue(r Request) Request {
	if r.Symbol == nil {
		r.Symbol = Str("$")
	}
	if r.SymbolPosition == "" {
		r.SymbolPosition = SymbolBefore
	}
	return withSkeleton(r)
}

// TokenAmount shows the token ticker after the amount, one cell apart.
func TokenAmount(r Request) Request {
	if r.SymbolPosition == "" {
		r.SymbolPosition = SymbolAfter
	}
	r.Classes.Symbol = MergeStyles(lipgloss.NewStyle().MarginLeft(1), r.Classes.Symbol)
	return withSkeleton(r)
}

func withSkeleton(r Request) Request {
	if r.LoaderSkeleton == nil {
		r.LoaderSkeleton = Bool(true)
	}
	return r
}

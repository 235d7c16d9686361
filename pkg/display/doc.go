// Package display renders a single formatted value (a number, token amount,
// currency, or percentage) as a row of styled terminal chunks.
//
// A Request carries the already formatted strings plus the state flags of
// the query that produced them. Resolve picks exactly one presentation
// mode for it, in fixed priority order:
//
//	error-only > loading/pending > empty > populated
//
// and Plan assembles the ordered chunks for that mode. In the populated
// mode the chunk order is
//
//	[error before] prefix sign [indicator symbol | indicator] value [symbol] [error after]
//
// where the symbol sits before or after the value according to
// SymbolPosition and the indicator always precedes it.
//
// Every visual primitive (tooltip, truncating label, skeleton, spinner,
// error icon, empty cell) is a replaceable Slots function. Nothing in this
// package returns an error or panics on odd input: any combination of flags
// renders something.
package display

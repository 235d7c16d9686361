package display

import (
	"errors"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainPresenter(opts ...Option) *Presenter {
	return NewPresenter(append([]Option{WithStyles(NoColorStyles())}, opts...)...)
}

func plain(p *Presenter, r Request) string {
	return ansi.Strip(p.Present(r))
}

func TestPresentPopulated(t *testing.T) {
	p := plainPresenter()
	tests := []struct {
		name  string
		req   Request
		want  string
		kinds []ChunkKind
	}{
		{
			name:  "symbol after",
			req:   Request{Value: Str("5"), Symbol: Str("%"), SymbolPosition: SymbolAfter},
			want:  "5%",
			kinds: []ChunkKind{ChunkValue, ChunkSymbol},
		},
		{
			name:  "symbol before by default",
			req:   Request{Value: Str("5"), Symbol: Str("%")},
			want:  "%5",
			kinds: []ChunkKind{ChunkSymbol, ChunkValue},
		},
		{
			name:  "full order with symbol before",
			req:   Request{Value: Str("5"), Symbol: Str("$"), Sign: "-", Prefix: Text("~"), BelowMin: true},
			want:  "~-<$5",
			kinds: []ChunkKind{ChunkPrefix, ChunkSign, ChunkIndicator, ChunkSymbol, ChunkValue},
		},
		{
			name:  "indicator stays in front with symbol after",
			req:   Request{Value: Str("5"), Symbol: Str("%"), SymbolPosition: SymbolAfter, AboveMax: true},
			want:  ">5%",
			kinds: []ChunkKind{ChunkIndicator, ChunkValue, ChunkSymbol},
		},
		{
			name:  "below min wins over above max",
			req:   Request{Value: Str("5"), BelowMin: true, AboveMax: true},
			want:  "<5",
			kinds: []ChunkKind{ChunkIndicator, ChunkValue},
		},
		{
			name:  "explicit indicator overrides derived one",
			req:   Request{Value: Str("5"), BelowMin: true, Indicator: Text("≈")},
			want:  "≈5",
			kinds: []ChunkKind{ChunkIndicator, ChunkValue},
		},
		{
			name:  "fallback is shown when value is nil",
			req:   Request{Fallback: Str("n/a")},
			want:  "n/a",
			kinds: []ChunkKind{ChunkValue},
		},
		{
			name:  "empty symbol is absent",
			req:   Request{Value: Str("5"), Symbol: Str("")},
			want:  "5",
			kinds: []ChunkKind{ChunkValue},
		},
		{
			name:  "node prefix",
			req:   Request{Value: Str("5"), Prefix: Node(func() string { return "≥" })},
			want:  "≥5",
			kinds: []ChunkKind{ChunkPrefix, ChunkValue},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := p.Plan(tt.req)
			assert.Equal(t, ModePopulated, plan.Mode)
			assert.Equal(t, tt.kinds, plan.Kinds())
			assert.Equal(t, tt.want, plain(p, tt.req))
		})
	}
}

func TestPresentErrorOnly(t *testing.T) {
	p := plainPresenter()
	reqs := []Request{
		{IsError: Bool(true)},
		{IsError: Bool(true), Value: Str("5"), Symbol: Str("%")},
		{IsError: Bool(true), IsLoading: Bool(true), IsPending: Bool(true)},
		{IsError: Bool(true), Value: Str("5"), ErrorPosition: ErrorBefore, BelowMin: true},
	}
	for _, r := range reqs {
		plan := p.Plan(r)
		assert.Equal(t, []ChunkKind{ChunkErrorIcon}, plan.Kinds())
		assert.Equal(t, DefaultErrorIcon(), plain(p, r))
	}
}

func TestPresentErrorAndValue(t *testing.T) {
	p := plainPresenter()

	after := Request{Value: Str("5"), IsError: Bool(true), DisplayErrorAndValue: true}
	assert.Equal(t, "5⚠", plain(p, after))

	before := after
	before.ErrorPosition = ErrorBefore
	before.Symbol = Str("%")
	before.SymbolPosition = SymbolAfter
	assert.Equal(t, []ChunkKind{ChunkErrorIcon, ChunkValue, ChunkSymbol}, p.Plan(before).Kinds())
	assert.Equal(t, "⚠5%", plain(p, before))

	noError := Request{Value: Str("5"), DisplayErrorAndValue: true}
	assert.Equal(t, "5", plain(p, noError))
}

func TestPresentLoading(t *testing.T) {
	p := plainPresenter()

	t.Run("skeleton by default", func(t *testing.T) {
		r := Request{IsLoading: Bool(true), Value: Str("5")}
		plan := p.Plan(r)
		require.Equal(t, []ChunkKind{ChunkSkeleton}, plan.Kinds())
		assert.Equal(t, "60px", plan.Chunks[0].Source)
		assert.Equal(t, strings.Repeat("░", 8), plain(p, r))
	})

	t.Run("skeleton width", func(t *testing.T) {
		r := Request{IsPending: Bool(true), SkeletonWidth: RawWidth("3ch")}
		plan := p.Plan(r)
		assert.Equal(t, "3ch", plan.Chunks[0].Source)
		assert.Equal(t, "░░░", plain(p, r))
	})

	t.Run("spinner when skeleton is off", func(t *testing.T) {
		r := Request{IsLoading: Bool(true), LoaderSkeleton: Bool(false), Symbol: Str("%")}
		assert.Equal(t, []ChunkKind{ChunkSpinner}, p.Plan(r).Kinds())
		assert.Equal(t, DefaultSpinner(), plain(p, r))
	})

	t.Run("presenter skeleton width", func(t *testing.T) {
		d := BuiltinDefaults()
		d.SkeletonWidth = Px(16)
		wide := plainPresenter(WithDefaults(d))
		assert.Equal(t, "░░", plain(wide, Request{IsLoading: Bool(true)}))
	})
}

func TestPresentEmpty(t *testing.T) {
	p := plainPresenter()

	t.Run("default marker without container", func(t *testing.T) {
		r := Request{Symbol: Str("%"), Classes: Classes{Container: lipgloss.NewStyle().PaddingLeft(2)}}
		plan := p.Plan(r)
		assert.Equal(t, ModeEmpty, plan.Mode)
		assert.False(t, plan.Contained)
		assert.Equal(t, "──", plain(p, r))
	})

	t.Run("custom empty cell", func(t *testing.T) {
		assert.Equal(t, "n/a", plain(p, Request{EmptyCell: Text("n/a")}))
	})

	t.Run("error is shown only with error and value display", func(t *testing.T) {
		r := Request{IsError: Bool(true), DisplayErrorAndValue: true}
		assert.Equal(t, "──⚠", plain(p, r))
		r.ErrorPosition = ErrorBefore
		assert.Equal(t, []ChunkKind{ChunkErrorIcon, ChunkEmptyCell}, p.Plan(r).Kinds())
		assert.True(t, p.Plan(r).Contained)
	})
}

func TestErrorTooltip(t *testing.T) {
	var got []string
	p := plainPresenter(WithSlots(Slots{Tooltip: func(trigger, msg string) string {
		got = append(got, msg)
		return trigger
	}}))

	p.Present(Request{IsError: Bool(true), Err: messageErr{msg: "A"}, ErrorMessage: "C"})
	p.Present(Request{IsError: Bool(true), Err: messageErr{short: "B"}, ErrorMessage: "C"})
	p.Present(Request{IsError: Bool(true), ErrorMessage: "C"})
	p.Present(Request{IsError: Bool(true)})
	assert.Equal(t, []string{"A", "B", "C", DefaultErrorMessage}, got)

	chunk, ok := p.Plan(Request{IsError: Bool(true), Err: errors.New("timeout")}).Find(ChunkErrorIcon)
	require.True(t, ok)
	assert.Equal(t, "timeout", chunk.Tooltip)
}

func TestSymbolTruncation(t *testing.T) {
	p := plainPresenter()

	t.Run("long symbol goes through the truncate slot", func(t *testing.T) {
		r := Request{Value: Str("5"), Symbol: Str("ABCDEFGHIJKL"), SymbolPosition: SymbolAfter}
		chunk, ok := p.Plan(r).Find(ChunkSymbol)
		require.True(t, ok)
		assert.True(t, chunk.Truncated)
		assert.Equal(t, DefaultSymbolMaxChars, chunk.MaxChars)
		assert.Equal(t, "5ABCDEFGHIJ…", plain(p, r))
	})

	t.Run("symbol within budget is raw", func(t *testing.T) {
		r := Request{Value: Str("5"), Symbol: Str("ABC"), SymbolMaxChars: Int(3)}
		chunk, _ := p.Plan(r).Find(ChunkSymbol)
		assert.False(t, chunk.Truncated)
		assert.Equal(t, "ABC5", plain(p, r))
	})

	t.Run("negative budget always truncates", func(t *testing.T) {
		r := Request{Value: Str("5"), Symbol: Str("$"), SymbolMaxChars: Int(-1)}
		assert.Equal(t, "…5", plain(p, r))
	})

	t.Run("custom truncate slot", func(t *testing.T) {
		r := Request{
			Value:          Str("5"),
			Symbol:         Str("LONGTICKER"),
			SymbolMaxChars: Int(4),
			Slots: Slots{Truncate: func(text string, n int, _ lipgloss.Style) string {
				return text[:n] + "~"
			}},
		}
		assert.Equal(t, "LONG~5", plain(p, r))
	})
}

func TestLayoutAnchors(t *testing.T) {
	p := plainPresenter()
	r := TokenAmount(Request{
		ID:      "row-1",
		Value:   Str("12"),
		Symbol:  Str("SUPERLONGTOKEN"),
		Classes: Classes{Container: lipgloss.NewStyle().PaddingLeft(1)},
	})
	layout := p.Layout(r)
	assert.Equal(t, " 12 SUPERLONGT…", ansi.Strip(layout.Text))
	require.Len(t, layout.Anchors, 1)
	a := layout.Anchors[0]
	assert.Equal(t, "row-1/symbol", a.ID)
	assert.Equal(t, 4, a.Col)
	assert.Equal(t, 11, a.Width)
	assert.Equal(t, "SUPERLONGTOKEN", a.Text)
	assert.Equal(t, DefaultSymbolMaxChars, a.MaxChars)

	assert.Empty(t, p.Layout(Request{Value: Str("1"), Symbol: Str("$")}).Anchors)
}

func TestPresentIsIdempotent(t *testing.T) {
	p := NewPresenter()
	reqs := []Request{
		{Value: Str("5"), Symbol: Str("%"), SymbolPosition: SymbolAfter, BelowMin: true},
		{IsError: Bool(true), Err: errors.New("x")},
		{IsLoading: Bool(true)},
		{},
		{Value: Str("1"), Symbol: Str("VERYLONGSYMBOL"), IsError: Bool(true), DisplayErrorAndValue: true},
	}
	for _, r := range reqs {
		first := p.Present(r)
		assert.Equal(t, first, p.Present(r))
		assert.Equal(t, p.Plan(r), p.Plan(r))
	}
}

func TestPackageLevelHelpers(t *testing.T) {
	r := Request{Value: Str("5"), Symbol: Str("%"), SymbolPosition: SymbolAfter}
	assert.Equal(t, "5%", ansi.Strip(Present(r)))
	assert.Equal(t, ModePopulated, PlanOf(r).Mode)
}

func TestElementID(t *testing.T) {
	assert.Equal(t, "symbol", ElementID("", "symbol"))
	assert.Equal(t, "a/symbol", ElementID("a", "symbol"))
}

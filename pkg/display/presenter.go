package display

import (
	"unicode/utf8"

	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"
)

// Defaults are the presenter-wide fallbacks for unset request fields.
type Defaults struct {
	SymbolMaxChars int
	SkeletonWidth  Width
	ErrorMessage   string
}

// BuiltinDefaults returns the stock fallbacks.
func BuiltinDefaults() Defaults {
	return Defaults{
		SymbolMaxChars: DefaultSymbolMaxChars,
		SkeletonWidth:  Px(DefaultSkeletonWidth),
		ErrorMessage:   DefaultErrorMessage,
	}
}

// Presenter turns requests into chunk plans and rendered text. A Presenter
// holds no per-request state; the same request always yields the same output.
type Presenter struct {
	styles   Styles
	slots    Slots
	defaults Defaults
	log      logr.Logger
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithStyles sets the base chunk styles.
func WithStyles(s Styles) Option {
	return func(p *Presenter) { p.styles = s }
}

// WithSlots sets presenter-wide primitives. Nil slots keep the defaults.
func WithSlots(s Slots) Option {
	return func(p *Presenter) { p.slots = s.Or(p.slots) }
}

// WithDefaults sets the fallbacks for unset request fields.
func WithDefaults(d Defaults) Option {
	return func(p *Presenter) { p.defaults = d }
}

// WithLogger sets the logger.
func WithLogger(log logr.Logger) Option {
	return func(p *Presenter) { p.log = log }
}

// NewPresenter creates a presenter.
func NewPresenter(opts ...Option) *Presenter {
	p := &Presenter{
		styles:   DefaultStyles(),
		slots:    DefaultSlots(),
		defaults: BuiltinDefaults(),
		log:      logr.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var std = NewPresenter()

// PlanOf builds the chunk plan for r with the default presenter.
func PlanOf(r Request) Plan { return std.Plan(r) }

// Present renders r with the default presenter.
func Present(r Request) string { return std.Present(r) }

// Styles returns the presenter's base styles.
func (p *Presenter) Styles() Styles { return p.styles }

// Plan resolves the mode of r and assembles its chunks.
func (p *Presenter) Plan(r Request) Plan {
	b := builder{
		p:     p,
		r:     r,
		slots: r.Slots.Or(p.slots).Or(DefaultSlots()),
	}
	mode := Resolve(r)
	plan := Plan{Mode: mode, Contained: true}

	switch mode {
	case ModeErrorOnly:
		plan.Chunks = []Chunk{b.errorChunk()}
	case ModeLoading:
		plan.Chunks = []Chunk{b.loaderChunk()}
	case ModeEmpty:
		if flag(r.IsError) && r.DisplayErrorAndValue {
			plan.Chunks = b.withError([]Chunk{b.emptyChunk()})
		} else {
			plan.Chunks = []Chunk{b.emptyChunk()}
			plan.Contained = false
		}
	default:
		plan.Chunks = b.populated()
	}

	if p.log.V(2).Enabled() {
		p.log.V(2).Info("display: planned", "id", r.ID, "mode", mode.String(), "chunks", len(plan.Chunks))
	}
	return plan
}

// Present renders r to a single styled string.
func (p *Presenter) Present(r Request) string {
	return p.Layout(r).Text
}

// Anchor locates a measurable element inside a rendered value. Col is the
// zero-based cell column relative to the start of the rendered text.
type Anchor struct {
	ID       string
	Col      int
	Width    int
	Text     string
	MaxChars int
	Style    lipgloss.Style
}

// Layout is a rendered value together with its measurable anchors.
type Layout struct {
	Text    string
	Plan    Plan
	Anchors []Anchor
}

// Layout renders r and reports where its truncated symbol landed so a host
// can mount it for measurement.
func (p *Presenter) Layout(r Request) Layout {
	plan := p.Plan(r)
	container := MergeStyles(p.styles.Container, r.Classes.Container)

	texts := make([]string, len(plan.Chunks))
	for i, c := range plan.Chunks {
		texts[i] = c.Text
	}
	text := lipgloss.JoinHorizontal(lipgloss.Center, texts...)

	col := 0
	if plan.Contained {
		text = container.Render(text)
		col = container.GetMarginLeft() + container.GetPaddingLeft() + container.GetBorderLeftSize()
	}

	var anchors []Anchor
	for _, c := range plan.Chunks {
		w := lipgloss.Width(c.Text)
		if c.Truncated {
			inset := c.Style.GetMarginLeft() + c.Style.GetPaddingLeft()
			anchors = append(anchors, Anchor{
				ID:       ElementID(r.ID, "symbol"),
				Col:      col + inset,
				Width:    max(w-inset-c.Style.GetMarginRight()-c.Style.GetPaddingRight(), 0),
				Text:     c.Source,
				MaxChars: c.MaxChars,
				Style:    c.Style,
			})
		}
		col += w
	}
	return Layout{Text: text, Plan: plan, Anchors: anchors}
}

// ElementID joins a request id and an element name.
func ElementID(requestID, element string) string {
	if requestID == "" {
		return element
	}
	return requestID + "/" + element
}

type builder struct {
	p     *Presenter
	r     Request
	slots Slots
}

func (b builder) errorChunk() Chunk {
	fallback := b.r.ErrorMessage
	if fallback == "" {
		fallback = b.p.defaults.ErrorMessage
	}
	msg := ResolveErrorMessage(b.r.Err, fallback)
	style := b.p.styles.ErrorIcon
	trigger := style.Render(b.slots.ErrorIcon())
	return Chunk{
		Kind:    ChunkErrorIcon,
		Text:    b.slots.Tooltip(trigger, msg),
		Style:   style,
		Tooltip: msg,
	}
}

func (b builder) withError(chunks []Chunk) []Chunk {
	if !flag(b.r.IsError) {
		return chunks
	}
	errChunk := b.errorChunk()
	if b.r.errorPosition() == ErrorBefore {
		return append([]Chunk{errChunk}, chunks...)
	}
	return append(chunks, errChunk)
}

func (b builder) loaderChunk() Chunk {
	if b.r.loaderSkeleton() {
		width := b.r.SkeletonWidth
		if width.IsZero() {
			width = b.p.defaults.SkeletonWidth
		}
		wrapper := MergeStyles(b.p.styles.SkeletonWrapper, b.r.Classes.SkeletonWrapper)
		bar := MergeStyles(b.p.styles.Skeleton, b.r.Classes.Skeleton)
		return Chunk{
			Kind:   ChunkSkeleton,
			Text:   b.slots.Skeleton(width, wrapper, bar),
			Source: width.String(),
			Style:  bar,
		}
	}
	style := b.p.styles.Spinner
	return Chunk{
		Kind:  ChunkSpinner,
		Text:  style.Render(b.slots.Spinner()),
		Style: style,
	}
}

func (b builder) emptyChunk() Chunk {
	style := MergeStyles(b.p.styles.EmptyCell, b.r.Classes.EmptyCell)
	if !b.r.EmptyCell.IsZero() {
		return Chunk{Kind: ChunkEmptyCell, Text: b.r.EmptyCell.Render(), Style: style}
	}
	return Chunk{Kind: ChunkEmptyCell, Text: b.slots.EmptyCell(style), Style: style}
}

func (b builder) populated() []Chunk {
	r := b.r
	var chunks []Chunk
	add := func(c Chunk, ok bool) {
		if ok {
			chunks = append(chunks, c)
		}
	}

	if flag(r.IsError) && r.errorPosition() == ErrorBefore {
		chunks = append(chunks, b.errorChunk())
	}
	add(b.contentChunk(ChunkPrefix, r.Prefix, MergeStyles(b.p.styles.Prefix, r.Classes.Prefix)))
	if r.Sign != "" {
		chunks = append(chunks, Chunk{Kind: ChunkSign, Text: b.p.styles.Sign.Render(r.Sign), Source: r.Sign, Style: b.p.styles.Sign})
	}

	indicator, hasIndicator := b.contentChunk(ChunkIndicator, r.EffectiveIndicator(), MergeStyles(b.p.styles.Indicator, r.Classes.Indicator))
	symbol, hasSymbol := b.symbolChunk()
	if r.symbolPosition() == SymbolBefore {
		add(indicator, hasIndicator)
		add(symbol, hasSymbol)
	} else {
		add(indicator, hasIndicator)
	}

	value, _ := r.ViewValue()
	valueStyle := MergeStyles(b.p.styles.Value, r.Classes.Value)
	chunks = append(chunks, Chunk{Kind: ChunkValue, Text: valueStyle.Render(value), Source: value, Style: valueStyle})

	if r.symbolPosition() == SymbolAfter {
		add(symbol, hasSymbol)
	}
	if flag(r.IsError) && r.errorPosition() == ErrorAfter {
		chunks = append(chunks, b.errorChunk())
	}
	return chunks
}

func (b builder) contentChunk(kind ChunkKind, c Content, style lipgloss.Style) (Chunk, bool) {
	if c.IsZero() {
		return Chunk{}, false
	}
	src := c.Render()
	return Chunk{Kind: kind, Text: style.Render(src), Source: src, Style: style}, true
}

func (b builder) symbolChunk() (Chunk, bool) {
	r := b.r
	if r.Symbol == nil || *r.Symbol == "" {
		return Chunk{}, false
	}
	symbol := *r.Symbol
	maxChars := b.p.defaults.SymbolMaxChars
	if r.SymbolMaxChars != nil {
		maxChars = *r.SymbolMaxChars
	}
	style := MergeStyles(b.p.styles.Symbol, r.Classes.Symbol)

	if utf8.RuneCountInString(symbol) <= maxChars {
		return Chunk{Kind: ChunkSymbol, Text: style.Render(symbol), Source: symbol, Style: style}, true
	}
	labelStyle := MergeStyles(b.p.styles.Truncate, r.Classes.Truncate)
	label := b.slots.Truncate(symbol, maxChars, labelStyle)
	return Chunk{
		Kind:      ChunkSymbol,
		Text:      style.Render(label),
		Source:    symbol,
		Style:     MergeStyles(style, labelStyle),
		Truncated: true,
		MaxChars:  maxChars,
	}, true
}

package display

// Mode is one of the four mutually exclusive presentations.
type Mode int

const (
	// ModeErrorOnly shows only the error indicator.
	ModeErrorOnly Mode = iota
	// ModeLoading shows a skeleton or spinner.
	ModeLoading
	// ModeEmpty shows the empty-cell marker, optionally with the error indicator.
	ModeEmpty
	// ModePopulated shows the value and its decorations.
	ModePopulated
)

func (m Mode) String() string {
	switch m {
	case ModeErrorOnly:
		return "error-only"
	case ModeLoading:
		return "loading"
	case ModeEmpty:
		return "empty"
	case ModePopulated:
		return "populated"
	default:
		return "unknown"
	}
}

// ModeRule pairs a mode with the condition that selects it.
type ModeRule struct {
	Mode    Mode
	Matches func(Request) bool
}

// ModeRules returns the resolution rules in priority order. The first rule
// that matches wins; the last rule always matches.
func ModeRules() []ModeRule {
	return []ModeRule{
		{Mode: ModeErrorOnly, Matches: func(r Request) bool {
			return flag(r.IsError) && !r.DisplayErrorAndValue
		}},
		{Mode: ModeLoading, Matches: func(r Request) bool {
			return !flag(r.IsError) && (flag(r.IsLoading) || flag(r.IsPending))
		}},
		{Mode: ModeEmpty, Matches: func(r Request) bool {
			return r.Value == nil && r.Fallback == nil
		}},
		{Mode: ModePopulated, Matches: func(Request) bool { return true }},
	}
}

// Resolve returns the presentation mode for r.
func Resolve(r Request) Mode {
	for _, rule := range ModeRules() {
		if rule.Matches(r) {
			return rule.Mode
		}
	}
	return ModePopulated
}

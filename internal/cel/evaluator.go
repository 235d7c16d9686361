package cel

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	celext "github.com/google/cel-go/ext"
)

// Evaluator compiles predicates over a single number bound to "_".
// Compiled programs are cached by expression.
type Evaluator struct {
	env *cel.Env

	mu    sync.Mutex
	cache map[string]*Predicate
}

// Predicate is a compiled boolean expression.
type Predicate struct {
	expr string
	prg  cel.Program
}

// NewEvaluator creates a new CEL evaluator with standard library functions.
func NewEvaluator() (*Evaluator, error) {
	env, err := newStandardCELEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Evaluator{env: env, cache: make(map[string]*Predicate)}, nil
}

// GetEnvironment returns the CEL environment for introspection
func (e *Evaluator) GetEnvironment() *cel.Env {
	return e.env
}

// newStandardCELEnv creates a standard CEL environment with common extensions.
func newStandardCELEnv(opts ...cel.EnvOption) (*cel.Env, error) {
	allOpts := make([]cel.EnvOption, 0, 4+len(opts))
	allOpts = append(allOpts,
		cel.Variable("_", cel.DynType),
		cel.CrossTypeNumericComparisons(true),
		celext.Strings(),
		celext.Math(),
	)
	allOpts = append(allOpts, opts...)
	return cel.NewEnv(allOpts...)
}

// Compile parses and checks expr.
func (e *Evaluator) Compile(expr string) (*Predicate, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if p, ok := e.cache[expr]; ok {
		return p, nil
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	p := &Predicate{expr: expr, prg: prg}
	e.cache[expr] = p
	return p, nil
}

// Test compiles expr and evaluates it against v.
func (e *Evaluator) Test(expr string, v float64) (bool, error) {
	p, err := e.Compile(expr)
	if err != nil {
		return false, err
	}
	return p.Eval(v)
}

// String returns the source expression.
func (p *Predicate) String() string { return p.expr }

// Eval evaluates the predicate with v bound to "_". Non-boolean results are
// an error.
func (p *Predicate) Eval(v float64) (bool, error) {
	result, _, err := p.prg.Eval(map[string]interface{}{"_": v})
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}
	b, ok := ToGo(result).(bool)
	if !ok {
		return false, fmt.Errorf("expression %q returned %s, want bool", p.expr, result.Type().TypeName())
	}
	return b, nil
}

// ToGo converts CEL primitive values to Go native types.
func ToGo(val ref.Val) interface{} {
	if val == nil {
		return nil
	}
	switch v := val.(type) {
	case types.Bool:
		return bool(v)
	case types.Int:
		return int64(v)
	case types.Uint:
		return uint64(v)
	case types.Double:
		return float64(v)
	case types.String:
		return string(v)
	case types.Bytes:
		return []byte(v)
	}
	return val.Value()
}

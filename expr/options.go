package expr

import "fmt"

// DefaultVariable is the free variable name when WithVariable is not given.
const DefaultVariable = "x"

const (
	panicVariableInvalid  = "expr: WithVariable: name must be a non-empty identifier"
	panicVariableReserved = "expr: WithVariable: name collides with a built-in function"
)

// Option configures Parse and Compile. Constructors panic only on
// programmer errors, never on user-supplied formula text.
type Option func(*options)

type options struct {
	variable string
}

// WithVariable sets the name of the free variable (default "x").
// A name equal to a constant (e, E, pi) shadows that constant.
//
// Panics when name is not an identifier or is a built-in function name;
// check user-supplied names with ValidateVariable first.
func WithVariable(name string) Option {
	if !isIdentifier(name) {
		panic(panicVariableInvalid)
	}
	if _, ok := builtins[name]; ok {
		panic(panicVariableReserved)
	}

	return func(o *options) { o.variable = name }
}

// ValidateVariable reports whether WithVariable(name) would accept name.
// Returns an error wrapping ErrBadVariable otherwise.
func ValidateVariable(name string) error {
	if !isIdentifier(name) {
		return fmt.Errorf("ValidateVariable: %q is not an identifier: %w", name, ErrBadVariable)
	}
	if _, ok := builtins[name]; ok {
		return fmt.Errorf("ValidateVariable: %q is a built-in function: %w", name, ErrBadVariable)
	}

	return nil
}

// gatherOptions applies opts over the defaults; last writer wins.
func gatherOptions(opts ...Option) options {
	o := options{variable: DefaultVariable}
	for _, set := range opts {
		set(&o)
	}

	return o
}

func isIdentifier(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return false
		}
	}

	return true
}

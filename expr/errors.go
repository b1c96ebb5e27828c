// SPDX-License-Identifier: MIT
// Package: expr
//
// errors.go — sentinel errors for parsing and evaluation.
//
// Error policy:
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Every syntax sentinel wraps ErrParse, so errors.Is(err, ErrParse)
//     holds for all of them.
//   - Context (method, byte offset, offending text) is attached with %w.

package expr

import (
	"errors"
	"fmt"
)

// ErrParse is the umbrella kind for malformed or unsupported formula text.
var ErrParse = errors.New("expr: parse error")

var (
	// ErrEmptyExpression indicates the input held no tokens at all.
	ErrEmptyExpression = fmt.Errorf("%w: empty expression", ErrParse)

	// ErrInvalidToken indicates a character sequence the lexer cannot classify.
	ErrInvalidToken = fmt.Errorf("%w: invalid token", ErrParse)

	// ErrUnbalancedParens indicates a missing or surplus parenthesis.
	ErrUnbalancedParens = fmt.Errorf("%w: unbalanced parentheses", ErrParse)

	// ErrUnexpectedToken indicates a valid token in an invalid position (e.g. "2 x", "x +* 1").
	ErrUnexpectedToken = fmt.Errorf("%w: unexpected token", ErrParse)

	// ErrUnexpectedEnd indicates the input stopped where an operand was required.
	ErrUnexpectedEnd = fmt.Errorf("%w: unexpected end of input", ErrParse)

	// ErrUnknownIdentifier indicates a name that is neither the variable nor a constant.
	ErrUnknownIdentifier = fmt.Errorf("%w: unknown identifier", ErrParse)

	// ErrUnknownFunction indicates a call to a name missing from the built-in table.
	ErrUnknownFunction = fmt.Errorf("%w: unknown function", ErrParse)

	// ErrArity indicates a built-in called with the wrong number of arguments.
	ErrArity = fmt.Errorf("%w: wrong number of arguments", ErrParse)
)

// ErrEvaluation indicates a scalar evaluation produced NaN or ±Inf.
// Map never returns it; undefined points stay in the output as sentinels.
var ErrEvaluation = errors.New("expr: expression undefined at point")

// ErrBadVariable indicates a variable name that is not an identifier or
// collides with a built-in function.
var ErrBadVariable = errors.New("expr: invalid variable name")

// Method names used as error prefixes.
const (
	methodParse = "Parse"
	methodAt    = "At"
)

// syntaxErrorf attaches the byte offset and a short detail to a syntax sentinel.
// The result reads "Parse: offset 4: \"y\": expr: parse error: unknown identifier".
func syntaxErrorf(kind error, pos int, format string, args ...interface{}) error {
	return fmt.Errorf("%s: offset %d: %s: %w", methodParse, pos, fmt.Sprintf(format, args...), kind)
}

// Package perr defines the two error categories used across the
// toolkit: recoverable parse errors carrying a source position, and
// internal invariant violations that mark a bug in the pipeline
// rather than bad user input.
package perr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError reports a malformed formula source string. Pos is the
// rune offset of the failure. Expected and Found describe what the
// parser wanted and what it saw there; Found is empty at end of
// input.
type ParseError struct {
	Pos      int
	Expected string
	Found    string
	Context  string
}

func (e *ParseError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("parse error at position %d: expected %s, found end of input%s", e.Pos, e.Expected, ctxSuffix(e.Context))
	}
	return fmt.Sprintf("parse error at position %d: expected %s, found %q%s", e.Pos, e.Expected, e.Found, ctxSuffix(e.Context))
}

func ctxSuffix(ctx string) string {
	if ctx == "" {
		return ""
	}
	return " (" + ctx + ")"
}

// NewParseError constructs a ParseError at the given position.
func NewParseError(pos int, expected, found string) *ParseError {
	return &ParseError{Pos: pos, Expected: expected, Found: found}
}

// WithContext attaches a short human-readable note (e.g. "mixed
// operators in group") to a ParseError and returns it for chaining.
func (e *ParseError) WithContext(ctx string) *ParseError {
	e.Context = ctx
	return e
}

// Internal wraps a detected invariant violation with a stack trace.
// These mark bugs in the pipeline ordering or a projection that was
// handed a shape it did not expect; they are never reachable from
// well-formed CLI usage and are recovered only at the CLI's
// outermost boundary.
func Internal(op, reason string) error {
	return errors.WithStack(fmt.Errorf("internal invariant violation in %s: %s", op, reason))
}

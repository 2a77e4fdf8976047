// Package ffserr is the single error family the evaluation core
// raises. Every failure class (parse, type, arity, unknown function,
// domain, and math errors) is a Kind on the same Error type, and
// every Kind satisfies errors.Is against ErrInvalidArgument so callers
// that only care about the language-neutral distinction never need to
// branch on Kind.
package ffserr

import (
	"errors"
	"fmt"

	"github.com/samber/oops"
)

// Kind identifies which failure class produced an Error.
type Kind string

const (
	KindParse           Kind = "parse_error"
	KindType            Kind = "type_error"
	KindArity           Kind = "arity_error"
	KindUnknownFunction Kind = "unknown_function"
	KindDomain          Kind = "domain_error"
	KindMath            Kind = "math_error"
)

// ErrInvalidArgument is the sentinel every Error unwraps to via Is,
// mirroring the single public InvalidArgument error kind exposed
// across language bindings.
var ErrInvalidArgument = errors.New("ffs: invalid argument")

// Error wraps an oops-contextualized cause with the rule-language's
// own failure taxonomy.
type Error struct {
	Kind    Kind
	Formula string
	Offset  int
	cause   error
}

func newError(kind Kind, formula string, offset int, format string, args ...any) *Error {
	cause := oops.
		Code(string(kind)).
		In("ffs").
		With("formula", formula).
		With("offset", offset).
		Errorf(format, args...)
	return &Error{Kind: kind, Formula: formula, Offset: offset, cause: cause}
}

// Parse reports a lexing or grammar failure, including trailing input
// after a complete expression.
func Parse(formula string, offset int, format string, args ...any) *Error {
	return newError(KindParse, formula, offset, format, args...)
}

// Type reports an argument with the wrong value kind for an operation.
func Type(formula string, format string, args ...any) *Error {
	return newError(KindType, formula, -1, format, args...)
}

// Arity reports a wrong number of arguments to a builtin call.
func Arity(formula string, format string, args ...any) *Error {
	return newError(KindArity, formula, -1, format, args...)
}

// UnknownFunction reports a call to a name the registry does not
// recognize.
func UnknownFunction(formula, name string) *Error {
	return newError(KindUnknownFunction, formula, -1, "unknown function %q", name)
}

// Domain reports an inverted range, invalid IPv4 literal, invalid
// datetime string, out-of-range prefix width, and similar.
func Domain(formula string, format string, args ...any) *Error {
	return newError(KindDomain, formula, -1, format, args...)
}

// Math reports divide/modulo by zero, log of a non-positive value, and
// similar.
func Math(formula string, format string, args ...any) *Error {
	return newError(KindMath, formula, -1, format, args...)
}

func (e *Error) Error() string {
	return e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is lets errors.Is(err, ErrInvalidArgument) succeed regardless of
// which Kind produced err.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidArgument
}

// As exposes the underlying oops error for callers that want the full
// structured context (formula, offset, code) via oops.AsOops.
func As(err error) (oops.OopsError, bool) {
	return oops.AsOops(err)
}

var _ fmt.Stringer = Kind("")

func (k Kind) String() string { return string(k) }

// Package tserr defines the two fatal error kinds the core algebra can
// signal (spec section 7): malformed parse input, and a precondition
// violation at the product construction. Both carry a short opaque
// diagnosis id rather than any internal state id, so that two errors
// raised for the same logical mistake can be told apart in logs without
// leaking the compiler's internal numbering.
package tserr

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind distinguishes the error kinds a caller may want to switch on via
// errors.As.
type Kind int

const (
	// KindMalformed is an unknown parse-tree node tag, or a node with
	// the wrong arity.
	KindMalformed Kind = iota

	// KindPrecondition is an operation invoked on an input that does
	// not meet its stated precondition (e.g. the product construction
	// given an ε-bearing operand).
	KindPrecondition
)

func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed input"
	case KindPrecondition:
		return "precondition violation"
	default:
		panic(fmt.Sprintf("unknown tserr.Kind: %d", k))
	}
}

// Error is the error type returned by the core algebra. It should not be
// constructed directly; use Malformed, Malformedf, Precondition, or
// Preconditionf.
type Error struct {
	kind      Kind
	fragment  string
	detail    string
	diagnosis string
	wrap      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s [%s]: %s", e.kind, e.diagnosis, e.detail)
	if e.fragment != "" {
		msg += fmt.Sprintf(" (in: %s)", e.fragment)
	}
	if e.wrap != nil {
		msg += ": " + e.wrap.Error()
	}
	return msg
}

// Unwrap returns the error that e wraps, if any.
func (e *Error) Unwrap() error {
	return e.wrap
}

// Kind returns the error's kind.
func (e *Error) Kind() Kind {
	return e.kind
}

// Diagnosis returns the opaque id stamped on this error at the moment it
// was raised. It carries no information about internal state ids.
func (e *Error) Diagnosis() string {
	return e.diagnosis
}

func newError(kind Kind, fragment, detail string, wrap error) error {
	return &Error{
		kind:      kind,
		fragment:  fragment,
		detail:    detail,
		diagnosis: uuid.New().String(),
		wrap:      wrap,
	}
}

// Malformed returns a new Error of kind KindMalformed. fragment should be
// a rendering of the offending parse-tree node or FST for diagnosis
// purposes (spec section 7); it must not be an internal state id.
func Malformed(fragment, detail string) error {
	return newError(KindMalformed, fragment, detail, nil)
}

// Malformedf is Malformed with a formatted detail message.
func Malformedf(fragment, format string, a ...interface{}) error {
	return Malformed(fragment, fmt.Sprintf(format, a...))
}

// Precondition returns a new Error of kind KindPrecondition.
func Precondition(detail string) error {
	return newError(KindPrecondition, "", detail, nil)
}

// Preconditionf is Precondition with a formatted detail message.
func Preconditionf(format string, a ...interface{}) error {
	return Precondition(fmt.Sprintf(format, a...))
}

// Wrap returns a copy of err (which must have been produced by this
// package) with cause attached as its Unwrap() target.
func Wrap(err error, cause error) error {
	tsErr, ok := err.(*Error)
	if !ok {
		panic("tserr.Wrap: err was not produced by this package")
	}
	wrapped := *tsErr
	wrapped.wrap = cause
	return &wrapped
}

// Package symbol defines the alphabet of tokens that label FST arcs: the
// three reserved symbols (epsilon, unknown, identity) and ordinary opaque
// tokens drawn from source text.
package symbol

import (
	"fmt"

	"golang.org/x/text/width"
)

// Kind distinguishes the reserved symbols from ordinary ones.
type Kind int

const (
	// Ordinary is a concrete, user-declared token.
	Ordinary Kind = iota

	// ReservedEpsilon is the empty string: no symbol consumed/produced.
	ReservedEpsilon

	// ReservedUnknown is "some symbol not in the currently declared
	// alphabet" on the tape it appears on.
	ReservedUnknown

	// ReservedIdentity is the diagonal of ReservedUnknown: the same
	// unknown symbol on both tapes.
	ReservedIdentity
)

func (k Kind) String() string {
	switch k {
	case Ordinary:
		return "ORDINARY"
	case ReservedEpsilon:
		return "EPSILON"
	case ReservedUnknown:
		return "UNKNOWN"
	case ReservedIdentity:
		return "IDENTITY"
	default:
		panic(fmt.Sprintf("unknown symbol.Kind: %d", k))
	}
}

// Symbol is a single token appearing on an FST arc. The zero value is not
// a valid Symbol; use Epsilon, Unknown, Identity, or Of to obtain one.
// Symbol is comparable and intended to be compared with ==.
type Symbol struct {
	kind  Kind
	token string
}

// Epsilon is the reserved ε symbol.
var Epsilon = Symbol{kind: ReservedEpsilon}

// Unknown is the reserved ? symbol.
var Unknown = Symbol{kind: ReservedUnknown}

// Identity is the reserved @ symbol.
var Identity = Symbol{kind: ReservedIdentity}

// Of returns the ordinary Symbol for the given token. The token must be
// non-empty. Symbols compare equal only when their folded tokens are
// identical, so that a halfwidth and fullwidth rendering of the same
// character are treated as one symbol, as they would typically have been
// intended by an author typing a relation over a mixed-width alphabet.
func Of(token string) Symbol {
	if token == "" {
		panic("symbol: ordinary token must not be empty")
	}
	return Symbol{kind: Ordinary, token: width.Fold.String(token)}
}

// IsReserved returns whether s is one of epsilon, unknown, or identity.
func (s Symbol) IsReserved() bool {
	return s.kind != Ordinary
}

// Kind returns the symbol's kind.
func (s Symbol) Kind() Kind {
	return s.kind
}

// Token returns the underlying token text for an ordinary symbol. It
// panics if s is reserved.
func (s Symbol) Token() string {
	if s.kind != Ordinary {
		panic("symbol: Token() called on a reserved symbol")
	}
	return s.token
}

// String returns a human-readable rendering suitable for diagnostics:
// "ε", "?", "@" for the reserved symbols, or the bare token otherwise.
func (s Symbol) String() string {
	switch s.kind {
	case ReservedEpsilon:
		return "ε"
	case ReservedUnknown:
		return "?"
	case ReservedIdentity:
		return "@"
	default:
		return s.token
	}
}

// Package fst defines the FST value type shared by every construction in
// this module: the 5-tuple (Σ, Q, s0, F, Δ) of spec section 3, plus the
// state-renumbering utilities that the Thompson, product, and cleanup
// passes all build on.
//
// FSTs are immutable values. Every constructor in the construct package
// returns a new FST; none of them mutate an input FST in place.
package fst

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/fstrel/symbol"
	"github.com/dekarrin/fstrel/tserr"
)

// Arc is a single transition (p, a, q, b): from p, consume a, produce b,
// go to q.
type Arc struct {
	From State
	In   symbol.Symbol
	To   State
	Out  symbol.Symbol
}

// FST is an immutable finite-state transducer value: the 5-tuple
// (Alphabet, States, Start, Final, Arcs) of spec section 3.
type FST struct {
	// Alphabet is the declared alphabet Σ. It may include the reserved
	// symbols.
	Alphabet map[symbol.Symbol]struct{}

	// States is Q.
	States StateSet

	// Start is s0. It must be a member of States.
	Start State

	// Final is F, a subset of States.
	Final StateSet

	// Arcs is Δ.
	Arcs []Arc
}

// New returns an FST with empty Alphabet, States, Final, and Arcs fields
// ready to be populated, and Start set to start. Callers building an FST
// by hand (as opposed to through a construct.* function) are responsible
// for adding start to States before calling Validate.
func New(start State) FST {
	return FST{
		Alphabet: map[symbol.Symbol]struct{}{},
		States:   StateSet{},
		Start:    start,
		Final:    StateSet{},
	}
}

// HasSymbol returns whether sym is in the declared alphabet.
func (f FST) HasSymbol(sym symbol.Symbol) bool {
	_, ok := f.Alphabet[sym]
	return ok
}

// AddSymbol adds sym to the declared alphabet. No-op if already present.
func (f FST) AddSymbol(sym symbol.Symbol) {
	f.Alphabet[sym] = struct{}{}
}

// IsFinal returns whether st is an accepting state.
func (f FST) IsFinal(st State) bool {
	return f.Final.Has(st)
}

// HasEpsilonArcs returns whether any arc in the FST consumes or produces
// the empty string. The product construction requires both of its
// operands to answer false here (spec section 4.8's precondition).
func (f FST) HasEpsilonArcs() bool {
	for _, a := range f.Arcs {
		if a.In == symbol.Epsilon || a.Out == symbol.Epsilon {
			return true
		}
	}
	return false
}

// Validate checks the invariants of spec section 3: the start state and
// every arc endpoint must lie in States, every final state must lie in
// States, and every non-reserved symbol appearing on an arc must lie in
// the declared Alphabet.
func (f FST) Validate() error {
	if !f.States.Has(f.Start) {
		return tserr.Malformed(f.summary(), "start state is not a member of the state set")
	}
	for st := range f.Final {
		if !f.States.Has(st) {
			return tserr.Malformed(f.summary(), "final state is not a member of the state set")
		}
	}
	for _, a := range f.Arcs {
		if !f.States.Has(a.From) {
			return tserr.Malformed(f.summary(), "arc source is not a member of the state set")
		}
		if !f.States.Has(a.To) {
			return tserr.Malformed(f.summary(), "arc target is not a member of the state set")
		}
		if !a.In.IsReserved() && !f.HasSymbol(a.In) {
			return tserr.Malformed(f.summary(), "arc input symbol is not in the declared alphabet")
		}
		if !a.Out.IsReserved() && !f.HasSymbol(a.Out) {
			return tserr.Malformed(f.summary(), "arc output symbol is not in the declared alphabet")
		}
	}
	return nil
}

// summary renders a fragment for diagnosis purposes that carries shape
// (state/arc counts, declared alphabet) but no internal state ids, per
// spec section 7's "must not leak internal state ids."
func (f FST) summary() string {
	syms := make([]string, 0, len(f.Alphabet))
	for s := range f.Alphabet {
		syms = append(syms, s.String())
	}
	sort.Strings(syms)
	return fmt.Sprintf("FST{%d states, %d arcs, alphabet {%s}}", len(f.States), len(f.Arcs), strings.Join(syms, ", "))
}

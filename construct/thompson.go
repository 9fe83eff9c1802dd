// Package construct implements the FST construction algebra: the
// Thompson-style constructions for single symbols, concatenation, and
// Kleene closure; alphabet harmonization; the lazy product construction
// for union/intersection/subtraction; and the cleanup passes that keep
// intermediate automata small enough to compose further.
//
// Every function here returns a new fst.FST; none mutates an input.
package construct

import (
	"github.com/dekarrin/fstrel/fst"
	"github.com/dekarrin/fstrel/symbol"
)

// Map builds the two-state FST recognizing the single mapping in:out,
// per spec section 4.2. If exactly one side is the unknown symbol, an
// auxiliary identity arc is added on the concrete side so that
// Harmonize can later expand the wildcard correctly; if either side is
// unknown, the identity symbol is added to the declared alphabet.
func Map(in, out symbol.Symbol) fst.FST {
	f := fst.New(0)
	f.States.Add(0)
	f.States.Add(1)
	f.Final.Add(1)

	addDeclared(f, in)
	addDeclared(f, out)

	f.Arcs = append(f.Arcs, fst.Arc{From: 0, In: in, To: 1, Out: out})

	inUnknown := in == symbol.Unknown
	outUnknown := out == symbol.Unknown

	if inUnknown != outUnknown {
		// exactly one side is unknown
		f.Arcs = append(f.Arcs, fst.Arc{From: 0, In: symbol.Unknown, To: 1, Out: symbol.Unknown})
		if inUnknown {
			f.Arcs = append(f.Arcs, fst.Arc{From: 0, In: out, To: 1, Out: out})
		} else {
			f.Arcs = append(f.Arcs, fst.Arc{From: 0, In: in, To: 1, Out: in})
		}
	}

	if inUnknown || outUnknown {
		f.AddSymbol(symbol.Identity)
	}

	return f
}

// Identity returns the FST recognizing the mapping sym:sym, the common
// "recognizer" special case of a mapping (spec_full.md section 5 — not a
// new operation, just a named entry point onto Map).
func Identity(sym symbol.Symbol) fst.FST {
	return Map(sym, sym)
}

func addDeclared(f fst.FST, sym symbol.Symbol) {
	if !sym.IsReserved() {
		f.AddSymbol(sym)
	}
}

// Concat builds the concatenation L1 . L2, per spec section 4.3: rename
// L2's states to avoid L1's, bridge every final state of L1 to L2's
// start state with an ε-arc, and clear L1's final states (they become
// intermediate).
func Concat(l, r fst.FST) fst.FST {
	rRenamed := disjoint(l, r)

	out := fst.FST{
		Alphabet: unionAlphabet(l, rRenamed),
		States:   l.States.Union(rRenamed.States),
		Start:    l.Start,
		Final:    rRenamed.Final.Copy(),
		Arcs:     append(append([]fst.Arc{}, l.Arcs...), rRenamed.Arcs...),
	}

	for st := range l.Final {
		out.Arcs = append(out.Arcs, fst.Arc{From: st, In: symbol.Epsilon, To: rRenamed.Start, Out: symbol.Epsilon})
	}

	return out
}

// UnionEpsilon builds the ε-based union of L1 and L2, per spec section
// 4.4. This is the reference construction kept for algebraic-law
// testing; the evaluator wires "union" to the product-construction
// union in the product.go file instead (spec section 9's first open
// question).
func UnionEpsilon(l, r fst.FST) fst.FST {
	rRenamed := disjoint(l, r)

	freeID := fst.MaxState(l.States.Union(rRenamed.States)) + 1
	newStart := freeID

	out := fst.FST{
		Alphabet: unionAlphabet(l, rRenamed),
		States:   l.States.Union(rRenamed.States),
		Start:    newStart,
		Final:    l.Final.Union(rRenamed.Final),
		Arcs:     append(append([]fst.Arc{}, l.Arcs...), rRenamed.Arcs...),
	}
	out.States.Add(newStart)
	out.Arcs = append(out.Arcs,
		fst.Arc{From: newStart, In: symbol.Epsilon, To: l.Start, Out: symbol.Epsilon},
		fst.Arc{From: newStart, In: symbol.Epsilon, To: rRenamed.Start, Out: symbol.Epsilon},
	)

	return out
}

// Star builds the Kleene closure L*, per spec section 4.5: a new sole
// initial/final state with an ε-arc into L's old start, an ε-arc from
// every old final state back to the new start, ε added to Σ, and the
// result passed through Determinize so downstream product constructions
// see an ε-free, deterministic automaton.
func Star(l fst.FST) fst.FST {
	// Shift l so that state id 0 is free, per spec section 4.5 step 1.
	shiftedL := fst.ShiftBy(l, 1)

	newStart := fst.State(0)

	out := fst.FST{
		Alphabet: copyAlphabetFST(shiftedL),
		States:   shiftedL.States.Union(fst.NewStateSet(newStart)),
		Start:    newStart,
		Final:    fst.NewStateSet(newStart),
		Arcs:     append([]fst.Arc{}, shiftedL.Arcs...),
	}
	out.AddSymbol(symbol.Epsilon)

	out.Arcs = append(out.Arcs, fst.Arc{From: newStart, In: symbol.Epsilon, To: shiftedL.Start, Out: symbol.Epsilon})
	for st := range shiftedL.Final {
		out.Arcs = append(out.Arcs, fst.Arc{From: st, In: symbol.Epsilon, To: newStart, Out: symbol.Epsilon})
	}

	return Determinize(out)
}

// disjoint renames r's states to avoid any conflict with l's, per the
// "conflict-free merging of two state sets" utility of spec section 4.1.
func disjoint(l, r fst.FST) fst.FST {
	renaming := fst.FreshRename(r.States, l.States)
	return fst.Rename(r, renaming)
}

func unionAlphabet(l, r fst.FST) map[symbol.Symbol]struct{} {
	out := make(map[symbol.Symbol]struct{}, len(l.Alphabet)+len(r.Alphabet))
	for s := range l.Alphabet {
		out[s] = struct{}{}
	}
	for s := range r.Alphabet {
		out[s] = struct{}{}
	}
	return out
}

func copyAlphabetFST(f fst.FST) map[symbol.Symbol]struct{} {
	out := make(map[symbol.Symbol]struct{}, len(f.Alphabet))
	for s := range f.Alphabet {
		out[s] = struct{}{}
	}
	return out
}

package construct

import (
	"github.com/dekarrin/fstrel/fst"
	"github.com/dekarrin/fstrel/symbol"
)

// Harmonize rewrites l so that its wildcard arcs are expanded against
// the ordinary alphabet of o, per the table in spec section 4.7. This
// must be run on both operands (each harmonized against the other)
// before the product construction, so that "unknown" means the same
// thing — "any symbol not otherwise accounted for by this automaton,
// from the combined alphabet" — on both sides of a binary operation.
//
// Original wildcard arcs are retained alongside their expansions; the
// declared alphabet of l is not changed by this pass.
func Harmonize(l, o fst.FST) fst.FST {
	novel := make([]symbol.Symbol, 0, len(o.Alphabet))
	for s := range o.Alphabet {
		if !s.IsReserved() && !l.HasSymbol(s) {
			novel = append(novel, s)
		}
	}

	if len(novel) == 0 {
		return l
	}

	out := fst.FST{
		Alphabet: copyAlphabetFST(l),
		States:   l.States.Copy(),
		Start:    l.Start,
		Final:    l.Final.Copy(),
		Arcs:     append([]fst.Arc{}, l.Arcs...),
	}

	for _, a := range l.Arcs {
		inUnknown := a.In == symbol.Unknown
		outUnknown := a.Out == symbol.Unknown
		isIdentity := a.In == symbol.Identity && a.Out == symbol.Identity

		switch {
		case isIdentity:
			for _, n := range novel {
				out.Arcs = append(out.Arcs, fst.Arc{From: a.From, In: n, To: a.To, Out: n})
			}
		case inUnknown && outUnknown:
			// ?:? is the non-identity relation on unknowns (spec section
			// 3 reserves @:@ for the diagonal), so the n:n case must be
			// excluded from the cross product here.
			for _, n := range novel {
				out.Arcs = append(out.Arcs, fst.Arc{From: a.From, In: n, To: a.To, Out: symbol.Unknown})
				out.Arcs = append(out.Arcs, fst.Arc{From: a.From, In: symbol.Unknown, To: a.To, Out: n})
				for _, m := range novel {
					if n == m {
						continue
					}
					out.Arcs = append(out.Arcs, fst.Arc{From: a.From, In: n, To: a.To, Out: m})
				}
			}
		case outUnknown && !inUnknown:
			for _, n := range novel {
				out.Arcs = append(out.Arcs, fst.Arc{From: a.From, In: a.In, To: a.To, Out: n})
			}
		case inUnknown && !outUnknown:
			for _, n := range novel {
				out.Arcs = append(out.Arcs, fst.Arc{From: a.From, In: n, To: a.To, Out: a.Out})
			}
		}
	}

	return out
}

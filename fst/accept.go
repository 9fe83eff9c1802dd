package fst

import (
	"context"

	"github.com/dekarrin/fstrel/symbol"
)

// Accepts reports whether f maps the sequence of input symbols in to
// the sequence of output symbols out along some path, by breadth-first
// simulation over the (possibly nondeterministic) automaton. in and out
// are walked position by position in lockstep: ε:ε arcs are followed
// without consuming a position, while an arc with ε on one side only is
// matched like any other label, against in[i] and out[i] at the same
// position. This is a test/demo convenience
// (spec_full.md section 5), not part of the construction algebra
// itself; ctx is checked between input positions so a caller driving
// this from a REPL can cancel a runaway walk.
func (f FST) Accepts(ctx context.Context, in, out []symbol.Symbol) (bool, error) {
	cur := epsilonClose(f, NewStateSet(f.Start))

	for i := range in {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		next := NewStateSet()
		for st := range cur {
			for _, a := range f.Arcs {
				if a.From == st && a.In == in[i] && a.Out == out[i] {
					next.Add(a.To)
				}
			}
		}
		cur = epsilonClose(f, next)
		if len(cur) == 0 {
			return false, nil
		}
	}

	for st := range cur {
		if f.Final.Has(st) {
			return true, nil
		}
	}
	return false, nil
}

func epsilonClose(f FST, from StateSet) StateSet {
	closure := from.Copy()
	stack := from.Sorted()
	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range f.Arcs {
			if a.From == st && a.In == symbol.Epsilon && a.Out == symbol.Epsilon && !closure.Has(a.To) {
				closure.Add(a.To)
				stack = append(stack, a.To)
			}
		}
	}
	return closure
}

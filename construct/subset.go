package construct

import (
	"github.com/dekarrin/fstrel/fst"
	"github.com/dekarrin/fstrel/symbol"
)

// label is the (input, output) pair a determinized arc is keyed on. Arcs
// that are ε on both sides are absorbed into closures and never become a
// label here; an arc with ε on one side only (ε:a or a:ε) is a label like
// any other.
type label struct {
	in  symbol.Symbol
	out symbol.Symbol
}

// Determinize eliminates ε:ε arcs and subset-constructs a deterministic
// equivalent of l, per spec section 4.6. Arcs with ε on one side only
// are kept as labeled arcs in the result. Every state of the result is
// the ε-closure of some reachable set of states of l; it is keyed for
// memoization by fst.StateSet.Key() so that two paths reaching the same
// closure collapse onto the same result state (grounded on the
// closure-id memoization idiom of subset construction).
func Determinize(l fst.FST) fst.FST {
	startClosure := epsilonClosure(l, fst.NewStateSet(l.Start))

	ids := map[string]fst.State{}
	closures := map[fst.State]fst.StateSet{}

	nextID := fst.State(0)
	startID := internClosure(startClosure, ids, closures, &nextID)

	out := fst.New(startID)
	out.States.Add(startID)
	for s := range l.Alphabet {
		out.AddSymbol(s)
	}

	queue := []fst.State{startID}
	seen := map[fst.State]bool{startID: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		closure := closures[cur]
		if closureHasFinal(closure, l.Final) {
			out.Final.Add(cur)
		}

		succ := map[label]fst.StateSet{}
		for st := range closure {
			for _, a := range l.Arcs {
				if a.From != st || (a.In == symbol.Epsilon && a.Out == symbol.Epsilon) {
					continue
				}
				lbl := label{in: a.In, out: a.Out}
				set, ok := succ[lbl]
				if !ok {
					set = fst.NewStateSet()
				}
				set.Add(a.To)
				succ[lbl] = set
			}
		}

		for lbl, rawTargets := range succ {
			targetClosure := epsilonClosure(l, rawTargets)
			targetID := internClosure(targetClosure, ids, closures, &nextID)
			out.States.Add(targetID)
			out.Arcs = append(out.Arcs, fst.Arc{From: cur, In: lbl.in, To: targetID, Out: lbl.out})
			if !seen[targetID] {
				seen[targetID] = true
				queue = append(queue, targetID)
			}
		}
	}

	return out
}

func internClosure(closure fst.StateSet, ids map[string]fst.State, closures map[fst.State]fst.StateSet, nextID *fst.State) fst.State {
	key := closure.Key()
	if id, ok := ids[key]; ok {
		return id
	}
	id := *nextID
	*nextID++
	ids[key] = id
	closures[id] = closure
	return id
}

func epsilonClosure(l fst.FST, from fst.StateSet) fst.StateSet {
	closure := from.Copy()
	stack := from.Sorted()
	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range l.Arcs {
			if a.From == st && a.In == symbol.Epsilon && a.Out == symbol.Epsilon && !closure.Has(a.To) {
				closure.Add(a.To)
				stack = append(stack, a.To)
			}
		}
	}
	return closure
}

func closureHasFinal(closure fst.StateSet, final fst.StateSet) bool {
	for st := range closure {
		if final.Has(st) {
			return true
		}
	}
	return false
}

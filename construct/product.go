package construct

import (
	"github.com/dekarrin/fstrel/fst"
	"github.com/dekarrin/fstrel/tserr"
)

// pairState is a joint state of the product construction: a state of
// the left operand paired with a state of the right, or either side
// paired with the sink (leftOK/rightOK false marks a sunk side — the
// sink itself is never final and has no outgoing arcs, since a sunk
// side by construction has no component state to look up arcs from).
type pairState struct {
	left    fst.State
	right   fst.State
	leftOK  bool
	rightOK bool
}

// finalityRule decides, given membership of the joint state's left and
// right components in their respective final sets, whether the joint
// state is final in the result.
type finalityRule func(leftFinal, rightFinal bool) bool

// Union builds the product-construction union of l and r, per spec
// section 4.8: a joint state is final if either component is final.
func Union(l, r fst.FST) (fst.FST, error) {
	return product(l, r, func(lf, rf bool) bool { return lf || rf })
}

// Intersect builds the product-construction intersection of l and r: a
// joint state is final only if both components are final.
func Intersect(l, r fst.FST) (fst.FST, error) {
	return product(l, r, func(lf, rf bool) bool { return lf && rf })
}

// Subtract builds the product-construction difference l - r: a joint
// state is final if the left component is final and the right is not
// (or is the sink).
func Subtract(l, r fst.FST) (fst.FST, error) {
	return product(l, r, func(lf, rf bool) bool { return lf && !rf })
}

// product implements the shared lazy joint-state walk behind Union,
// Intersect, and Subtract, per spec section 4.8. Both operands are
// harmonized against each other first so that wildcard arcs agree on
// what "unknown" means; both must already be ε-free, since the product
// walk does not compute closures.
func product(l, r fst.FST, final finalityRule) (fst.FST, error) {
	if l.HasEpsilonArcs() {
		return fst.FST{}, tserr.Precondition("left operand of product construction has epsilon arcs; determinize it first")
	}
	if r.HasEpsilonArcs() {
		return fst.FST{}, tserr.Precondition("right operand of product construction has epsilon arcs; determinize it first")
	}

	hl := Harmonize(l, r)
	hr := Harmonize(r, l)

	ids := map[pairState]fst.State{}
	var nextID fst.State

	internPair := func(p pairState) fst.State {
		if id, ok := ids[p]; ok {
			return id
		}
		id := nextID
		nextID++
		ids[p] = id
		return id
	}

	startPair := pairState{left: hl.Start, leftOK: true, right: hr.Start, rightOK: true}
	startID := internPair(startPair)

	out := fst.New(startID)
	out.States.Add(startID)
	for s := range hl.Alphabet {
		out.AddSymbol(s)
	}
	for s := range hr.Alphabet {
		out.AddSymbol(s)
	}

	queue := []pairState{startPair}
	seen := map[pairState]bool{startPair: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := ids[cur]

		leftFinal := cur.leftOK && hl.Final.Has(cur.left)
		rightFinal := cur.rightOK && hr.Final.Has(cur.right)
		if final(leftFinal, rightFinal) {
			out.Final.Add(curID)
		}

		leftArcs := arcsFrom(hl, cur.left, cur.leftOK)
		rightArcs := arcsFrom(hr, cur.right, cur.rightOK)

		matched := map[label]bool{}

		for _, la := range leftArcs {
			lbl := label{in: la.In, out: la.Out}
			if ra, ok := findArc(rightArcs, lbl); ok {
				matched[lbl] = true
				next := pairState{left: la.To, leftOK: true, right: ra.To, rightOK: true}
				queueNext(&out, curID, lbl, next, internPair, &queue, seen)
				continue
			}
			next := pairState{left: la.To, leftOK: true, rightOK: false}
			queueNext(&out, curID, lbl, next, internPair, &queue, seen)
		}

		for _, ra := range rightArcs {
			lbl := label{in: ra.In, out: ra.Out}
			if matched[lbl] {
				continue
			}
			next := pairState{leftOK: false, right: ra.To, rightOK: true}
			queueNext(&out, curID, lbl, next, internPair, &queue, seen)
		}
	}

	return out, nil
}

func arcsFrom(f fst.FST, st fst.State, ok bool) []fst.Arc {
	if !ok {
		return nil
	}
	var out []fst.Arc
	for _, a := range f.Arcs {
		if a.From == st {
			out = append(out, a)
		}
	}
	return out
}

func findArc(arcs []fst.Arc, lbl label) (fst.Arc, bool) {
	for _, a := range arcs {
		if a.In == lbl.in && a.Out == lbl.out {
			return a, true
		}
	}
	return fst.Arc{}, false
}

func queueNext(out *fst.FST, fromID fst.State, lbl label, next pairState, internPair func(pairState) fst.State, queue *[]pairState, seen map[pairState]bool) {
	nextID := internPair(next)
	out.States.Add(nextID)
	out.Arcs = append(out.Arcs, fst.Arc{From: fromID, In: lbl.in, To: nextID, Out: lbl.out})
	if !seen[next] {
		seen[next] = true
		*queue = append(*queue, next)
	}
}

package construct

import "github.com/dekarrin/fstrel/fst"

// Flatten renames the (possibly sparse, possibly pair-derived) state ids
// of f to a dense range starting at 0, in first-seen breadth-first
// order from the start state. The allocator is a local variable scoped
// to this call, never a package-level counter, per spec section 9's
// note on explicit short-lived allocators replacing global mutable
// state.
func Flatten(f fst.FST) fst.FST {
	renaming := make(map[fst.State]fst.State, len(f.States))
	var next fst.State

	assign := func(st fst.State) fst.State {
		if id, ok := renaming[st]; ok {
			return id
		}
		id := next
		next++
		renaming[st] = id
		return id
	}

	assign(f.Start)

	queue := []fst.State{f.Start}
	visited := map[fst.State]bool{f.Start: true}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, a := range f.Arcs {
			if a.From == cur && !visited[a.To] {
				visited[a.To] = true
				assign(a.To)
				queue = append(queue, a.To)
			}
		}
	}

	// Any state unreachable from the start (dead weight Prune would
	// remove anyway) still needs a slot so Rename has a total mapping.
	for st := range f.States {
		assign(st)
	}

	return fst.Rename(f, renaming)
}

// Prune removes states that cannot possibly contribute to an accepted
// path, per spec section 4.10: a state must be ingressible (the start
// state, or reachable via some incoming arc from a different state) and
// egressible (a final state, or able to reach a different state via
// some outgoing arc). Arcs touching a removed state are dropped, and
// Final is intersected with the surviving states.
func Prune(f fst.FST) fst.FST {
	ingressible := map[fst.State]bool{f.Start: true}
	egressible := map[fst.State]bool{}
	for st := range f.Final {
		egressible[st] = true
	}

	for _, a := range f.Arcs {
		if a.From != a.To {
			ingressible[a.To] = true
			egressible[a.From] = true
		}
	}

	live := fst.NewStateSet()
	for st := range f.States {
		if ingressible[st] && egressible[st] {
			live.Add(st)
		}
	}

	// s0 must remain in Q even when the construction leaves it with no
	// outgoing arcs and not final (spec section 3's s0 ∈ Q), so force it
	// live the same way it is forced ingressible above.
	live.Add(f.Start)

	out := fst.FST{
		Alphabet: copyAlphabetFST(f),
		States:   live,
		Start:    f.Start,
		Final:    fst.NewStateSet(),
		Arcs:     nil,
	}
	for st := range f.Final {
		if live.Has(st) {
			out.Final.Add(st)
		}
	}
	for _, a := range f.Arcs {
		if live.Has(a.From) && live.Has(a.To) {
			out.Arcs = append(out.Arcs, a)
		}
	}

	return out
}

package fst

import "github.com/dekarrin/fstrel/symbol"

// FreshRename computes a bijection from states to a disjoint copy of
// themselves that avoids every state in conflict, per spec section 4.1:
// start from states itself; if anything in the candidate overlaps
// conflict, shift every state in states by +1 simultaneously and retry.
// This terminates because after finitely many shifts the maximum of the
// candidate exceeds the maximum of conflict.
func FreshRename(states StateSet, conflict StateSet) map[State]State {
	shift := State(0)
	for {
		renaming := make(map[State]State, len(states))
		clash := false
		for st := range states {
			candidate := st + shift
			if conflict.Has(candidate) {
				clash = true
				break
			}
			renaming[st] = candidate
		}
		if !clash {
			return renaming
		}
		shift++
	}
}

// Rename returns a copy of f with every state (Start, Final, States, and
// both endpoints of every arc) mapped through renaming. renaming must be
// defined for every state in f.States.
func Rename(f FST, renaming map[State]State) FST {
	out := FST{
		Alphabet: copyAlphabet(f.Alphabet),
		States:   NewStateSet(),
		Start:    renaming[f.Start],
		Final:    NewStateSet(),
		Arcs:     make([]Arc, len(f.Arcs)),
	}
	for st := range f.States {
		out.States.Add(renaming[st])
	}
	for st := range f.Final {
		out.Final.Add(renaming[st])
	}
	for i, a := range f.Arcs {
		out.Arcs[i] = Arc{
			From: renaming[a.From],
			In:   a.In,
			To:   renaming[a.To],
			Out:  a.Out,
		}
	}
	return out
}

// ShiftBy returns a copy of f with every state uniformly incremented by
// delta. This is the "uniform increment" operation of spec section 4.1,
// used before adding a new state whose chosen name must not clash with
// any state already in f.
func ShiftBy(f FST, delta State) FST {
	renaming := make(map[State]State, len(f.States))
	for st := range f.States {
		renaming[st] = st + delta
	}
	return Rename(f, renaming)
}

// MaxState returns the largest state id in states, or -1 if states is
// empty.
func MaxState(states StateSet) State {
	max := State(-1)
	for st := range states {
		if st > max {
			max = st
		}
	}
	return max
}

func copyAlphabet(a map[symbol.Symbol]struct{}) map[symbol.Symbol]struct{} {
	out := make(map[symbol.Symbol]struct{}, len(a))
	for k := range a {
		out[k] = struct{}{}
	}
	return out
}

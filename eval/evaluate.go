package eval

import (
	"github.com/dekarrin/fstrel/construct"
	"github.com/dekarrin/fstrel/fst"
	"github.com/dekarrin/fstrel/tserr"
)

// Evaluate walks n and returns the FST it denotes, per spec section
// 4.11. Union, intersection, and subtraction pass their operands
// through construct.Determinize before combining them, which removes
// ε:ε arcs; an operand that still has an arc with ε on one side only
// (ε:a or a:ε) is rejected by the product construction's precondition
// check and the error is returned. Concatenation operands are not
// determinized. TagUnion is wired to the product-construction Union rather
// than the ε-based reference construction, and the result of every
// node is flattened and pruned before being returned to the caller, so
// that composing Evaluate results stays cheap.
//
// Unlike the teacher's execNode, which trusts an AST produced by a
// generated parser and panics on an internal mistake, Evaluate is a
// library entry point and must not panic on caller-supplied input: an
// unknown tag or a node with the wrong number of children is reported
// as a tserr.Malformed error instead.
func Evaluate(n Node) (fst.FST, error) {
	switch n.Tag {
	case TagSymbol:
		return cleanup(construct.Map(n.In, n.Out)), nil

	case TagConcat:
		l, r, err := binaryOperands(n)
		if err != nil {
			return fst.FST{}, err
		}
		return cleanup(construct.Concat(l, r)), nil

	case TagUnion:
		l, r, err := binaryOperands(n)
		if err != nil {
			return fst.FST{}, err
		}
		result, err := construct.Union(construct.Determinize(l), construct.Determinize(r))
		if err != nil {
			return fst.FST{}, tserr.Wrap(tserr.Malformed(n.Tag.String(), "union failed"), err)
		}
		return cleanup(result), nil

	case TagIntersect:
		l, r, err := binaryOperands(n)
		if err != nil {
			return fst.FST{}, err
		}
		result, err := construct.Intersect(construct.Determinize(l), construct.Determinize(r))
		if err != nil {
			return fst.FST{}, tserr.Wrap(tserr.Malformed(n.Tag.String(), "intersect failed"), err)
		}
		return cleanup(result), nil

	case TagSubtract:
		l, r, err := binaryOperands(n)
		if err != nil {
			return fst.FST{}, err
		}
		result, err := construct.Subtract(construct.Determinize(l), construct.Determinize(r))
		if err != nil {
			return fst.FST{}, tserr.Wrap(tserr.Malformed(n.Tag.String(), "subtract failed"), err)
		}
		return cleanup(result), nil

	case TagStar:
		if len(n.Children) != 1 {
			return fst.FST{}, tserr.Malformedf(n.Tag.String(), "star node has %d children, want 1", len(n.Children))
		}
		child, err := Evaluate(n.Children[0])
		if err != nil {
			return fst.FST{}, err
		}
		return cleanup(construct.Star(child)), nil

	default:
		return fst.FST{}, tserr.Malformedf("", "unknown node tag %d", n.Tag)
	}
}

// EvaluateAll evaluates every node in nodes, in order, stopping at the
// first error (spec_full.md section 5 — a batch convenience, not a new
// operation).
func EvaluateAll(nodes []Node) ([]fst.FST, error) {
	out := make([]fst.FST, 0, len(nodes))
	for _, n := range nodes {
		f, err := Evaluate(n)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func binaryOperands(n Node) (fst.FST, fst.FST, error) {
	if len(n.Children) != 2 {
		return fst.FST{}, fst.FST{}, tserr.Malformedf(n.Tag.String(), "%s node has %d children, want 2", n.Tag, len(n.Children))
	}
	l, err := Evaluate(n.Children[0])
	if err != nil {
		return fst.FST{}, fst.FST{}, err
	}
	r, err := Evaluate(n.Children[1])
	if err != nil {
		return fst.FST{}, fst.FST{}, err
	}
	return l, r, nil
}

func cleanup(f fst.FST) fst.FST {
	return construct.Prune(construct.Flatten(f))
}

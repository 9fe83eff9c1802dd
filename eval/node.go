// Package eval turns a parsed expression tree into the FST it denotes,
// per spec section 4.11. The tree shape is a small tagged-variant
// structure deliberately independent of any concrete surface syntax, so
// that internal/miniexpr (or any other front end) can build one without
// this package knowing anything about lexing or grammar.
package eval

import "github.com/dekarrin/fstrel/symbol"

// Tag identifies the operation a Node represents.
type Tag int

const (
	// TagSymbol is a leaf: the single-symbol mapping In:Out.
	TagSymbol Tag = iota

	// TagConcat concatenates Children[0] and Children[1].
	TagConcat

	// TagUnion unions Children[0] and Children[1], via the
	// product-construction Union rather than the ε-based reference one
	// (DESIGN.md, Open Question decision 1).
	TagUnion

	// TagIntersect intersects Children[0] and Children[1].
	TagIntersect

	// TagSubtract subtracts Children[1]'s language from Children[0]'s.
	TagSubtract

	// TagStar applies Kleene closure to Children[0].
	TagStar
)

func (t Tag) String() string {
	switch t {
	case TagSymbol:
		return "symbol"
	case TagConcat:
		return "concat"
	case TagUnion:
		return "union"
	case TagIntersect:
		return "intersect"
	case TagSubtract:
		return "subtract"
	case TagStar:
		return "star"
	default:
		return "unknown"
	}
}

// Node is one node of a parsed expression tree. Leaf nodes (TagSymbol)
// set In/Out and leave Children empty; interior nodes set Children and
// leave In/Out at their zero value.
type Node struct {
	Tag      Tag
	In       symbol.Symbol
	Out      symbol.Symbol
	Children []Node
}

// Symbol returns a TagSymbol leaf node for the mapping in:out.
func Symbol(in, out symbol.Symbol) Node {
	return Node{Tag: TagSymbol, In: in, Out: out}
}

// Concat returns a TagConcat interior node over l and r.
func Concat(l, r Node) Node {
	return Node{Tag: TagConcat, Children: []Node{l, r}}
}

// Union returns a TagUnion interior node over l and r.
func Union(l, r Node) Node {
	return Node{Tag: TagUnion, Children: []Node{l, r}}
}

// Intersect returns a TagIntersect interior node over l and r.
func Intersect(l, r Node) Node {
	return Node{Tag: TagIntersect, Children: []Node{l, r}}
}

// Subtract returns a TagSubtract interior node over l and r.
func Subtract(l, r Node) Node {
	return Node{Tag: TagSubtract, Children: []Node{l, r}}
}

// Star returns a TagStar interior node over l.
func Star(l Node) Node {
	return Node{Tag: TagStar, Children: []Node{l}}
}

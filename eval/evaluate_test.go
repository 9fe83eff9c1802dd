package eval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/fstrel/symbol"
)

func Test_Evaluate_Symbol(t *testing.T) {
	a, b := symbol.Of("a"), symbol.Of("b")
	f, err := Evaluate(Symbol(a, b))
	require.NoError(t, err)

	ok, err := f.Accepts(context.Background(), []symbol.Symbol{a}, []symbol.Symbol{b})
	require.NoError(t, err)
	assert.True(t, ok)
}

func Test_Evaluate_ConcatAndStar(t *testing.T) {
	a, b := symbol.Of("a"), symbol.Of("b")
	tree := Star(Concat(Symbol(a, b), Symbol(a, b)))

	f, err := Evaluate(tree)
	require.NoError(t, err)

	ok, err := f.Accepts(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.Accepts(context.Background(), []symbol.Symbol{a, a}, []symbol.Symbol{b, b})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.Accepts(context.Background(), []symbol.Symbol{a}, []symbol.Symbol{b})
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_Evaluate_Union(t *testing.T) {
	a, b, c, d := symbol.Of("a"), symbol.Of("b"), symbol.Of("c"), symbol.Of("d")
	tree := Union(Symbol(a, b), Symbol(c, d))

	f, err := Evaluate(tree)
	require.NoError(t, err)

	ok, err := f.Accepts(context.Background(), []symbol.Symbol{a}, []symbol.Symbol{b})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.Accepts(context.Background(), []symbol.Symbol{c}, []symbol.Symbol{d})
	require.NoError(t, err)
	assert.True(t, ok)
}

func Test_Evaluate_IntersectAndSubtract(t *testing.T) {
	a := symbol.Of("a")
	identity := Symbol(a, a)
	mapsToSelf := Symbol(a, a)

	inter, err := Evaluate(Intersect(identity, mapsToSelf))
	require.NoError(t, err)
	ok, err := inter.Accepts(context.Background(), []symbol.Symbol{a}, []symbol.Symbol{a})
	require.NoError(t, err)
	assert.True(t, ok)

	sub, err := Evaluate(Subtract(identity, mapsToSelf))
	require.NoError(t, err)
	ok, err = sub.Accepts(context.Background(), []symbol.Symbol{a}, []symbol.Symbol{a})
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_Evaluate_MalformedArityIsReportedNotPaniced(t *testing.T) {
	bad := Node{Tag: TagConcat, Children: []Node{Symbol(symbol.Of("a"), symbol.Of("b"))}}
	_, err := Evaluate(bad)
	assert.Error(t, err)
}

func Test_EvaluateAll_StopsAtFirstError(t *testing.T) {
	a, b := symbol.Of("a"), symbol.Of("b")
	good := Symbol(a, b)
	bad := Node{Tag: TagStar, Children: nil}

	_, err := EvaluateAll([]Node{good, bad})
	assert.Error(t, err)
}

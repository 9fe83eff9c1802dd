package miniexpr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/fstrel/eval"
	"github.com/dekarrin/fstrel/symbol"
)

func Test_Parse_BareSymbolIsIdentity(t *testing.T) {
	n, err := Parse("a")
	require.NoError(t, err)

	f, err := eval.Evaluate(n)
	require.NoError(t, err)

	a := symbol.Of("a")
	ok, err := f.Accepts(context.Background(), []symbol.Symbol{a}, []symbol.Symbol{a})
	require.NoError(t, err)
	assert.True(t, ok)
}

func Test_Parse_MappingWithColon(t *testing.T) {
	n, err := Parse("a:b")
	require.NoError(t, err)

	f, err := eval.Evaluate(n)
	require.NoError(t, err)

	a, b := symbol.Of("a"), symbol.Of("b")
	ok, err := f.Accepts(context.Background(), []symbol.Symbol{a}, []symbol.Symbol{b})
	require.NoError(t, err)
	assert.True(t, ok)
}

func Test_Parse_ConcatenationByJuxtaposition(t *testing.T) {
	n, err := Parse("a b")
	require.NoError(t, err)

	f, err := eval.Evaluate(n)
	require.NoError(t, err)

	a, b := symbol.Of("a"), symbol.Of("b")
	ok, err := f.Accepts(context.Background(), []symbol.Symbol{a, b}, []symbol.Symbol{a, b})
	require.NoError(t, err)
	assert.True(t, ok)
}

func Test_Parse_UnionAndGrouping(t *testing.T) {
	n, err := Parse("(a|b)*")
	require.NoError(t, err)

	f, err := eval.Evaluate(n)
	require.NoError(t, err)

	a, b := symbol.Of("a"), symbol.Of("b")
	ok, err := f.Accepts(context.Background(), []symbol.Symbol{a, b, a}, []symbol.Symbol{a, b, a})
	require.NoError(t, err)
	assert.True(t, ok)
}

func Test_Parse_ReservedLiterals(t *testing.T) {
	n, err := Parse("a : ?")
	require.NoError(t, err)

	f, err := eval.Evaluate(n)
	require.NoError(t, err)
	assert.True(t, f.HasSymbol(symbol.Identity))
}

func Test_Parse_RejectsUnbalancedParens(t *testing.T) {
	_, err := Parse("(a")
	assert.Error(t, err)
}

func Test_Parse_SubtractOperator(t *testing.T) {
	n, err := Parse("a - a")
	require.NoError(t, err)

	f, err := eval.Evaluate(n)
	require.NoError(t, err)

	a := symbol.Of("a")
	ok, err := f.Accepts(context.Background(), []symbol.Symbol{a}, []symbol.Symbol{a})
	require.NoError(t, err)
	assert.False(t, ok)
}

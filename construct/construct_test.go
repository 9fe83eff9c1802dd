package construct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/fstrel/fst"
	"github.com/dekarrin/fstrel/symbol"
)

func accepts(t *testing.T, f fst.FST, in, out []symbol.Symbol) bool {
	t.Helper()
	cur := fst.NewStateSet(f.Start)
	for i := range in {
		next := fst.NewStateSet()
		for st := range cur {
			for _, a := range f.Arcs {
				if a.From == st && a.In == in[i] && a.Out == out[i] {
					next.Add(a.To)
				}
			}
		}
		cur = next
		if len(cur) == 0 {
			return false
		}
	}
	for st := range cur {
		if f.Final.Has(st) {
			return true
		}
	}
	return false
}

func Test_Map_SingleSymbol(t *testing.T) {
	a := symbol.Of("a")
	b := symbol.Of("b")
	f := Map(a, b)

	require.NoError(t, f.Validate())
	assert.True(t, accepts(t, f, []symbol.Symbol{a}, []symbol.Symbol{b}))
	assert.False(t, accepts(t, f, []symbol.Symbol{a}, []symbol.Symbol{a}))
}

func Test_Map_WildcardSideAddsIdentityAndAuxArc(t *testing.T) {
	a := symbol.Of("a")
	f := Map(a, symbol.Unknown)

	require.NoError(t, f.Validate())
	assert.True(t, f.HasSymbol(symbol.Identity))
	assert.True(t, accepts(t, f, []symbol.Symbol{a}, []symbol.Symbol{a}))
}

func Test_Map_BothWildcard(t *testing.T) {
	f := Map(symbol.Unknown, symbol.Unknown)

	require.NoError(t, f.Validate())
	assert.True(t, f.HasSymbol(symbol.Identity))
	assert.Len(t, f.Arcs, 1)
}

func Test_Identity_IsMapToSelf(t *testing.T) {
	a := symbol.Of("a")
	f := Identity(a)
	assert.True(t, accepts(t, f, []symbol.Symbol{a}, []symbol.Symbol{a}))
}

func Test_Concat_AcceptsBothInSequence(t *testing.T) {
	a, b, c, d := symbol.Of("a"), symbol.Of("b"), symbol.Of("c"), symbol.Of("d")
	f := Concat(Map(a, b), Map(c, d))

	require.NoError(t, f.Validate())
	assert.True(t, accepts(t, f, []symbol.Symbol{a, c}, []symbol.Symbol{b, d}))
	assert.False(t, accepts(t, f, []symbol.Symbol{a}, []symbol.Symbol{b}))
}

func Test_UnionEpsilon_AcceptsEither(t *testing.T) {
	a, b, c, d := symbol.Of("a"), symbol.Of("b"), symbol.Of("c"), symbol.Of("d")
	f := UnionEpsilon(Map(a, b), Map(c, d))

	require.NoError(t, f.Validate())
	assert.True(t, accepts(t, f, []symbol.Symbol{a}, []symbol.Symbol{b}))
	assert.True(t, accepts(t, f, []symbol.Symbol{c}, []symbol.Symbol{d}))
}

func Test_Star_AcceptsEmptyAndRepeats(t *testing.T) {
	a, b := symbol.Of("a"), symbol.Of("b")
	f := Star(Map(a, b))

	require.NoError(t, f.Validate())
	assert.True(t, accepts(t, f, nil, nil))
	assert.True(t, accepts(t, f, []symbol.Symbol{a}, []symbol.Symbol{b}))
	assert.True(t, accepts(t, f, []symbol.Symbol{a, a, a}, []symbol.Symbol{b, b, b}))
	assert.False(t, f.HasEpsilonArcs())
}

func Test_Determinize_IsEpsilonFree(t *testing.T) {
	a, b, c, d := symbol.Of("a"), symbol.Of("b"), symbol.Of("c"), symbol.Of("d")
	f := Determinize(Concat(Map(a, b), Map(c, d)))

	assert.False(t, f.HasEpsilonArcs())
	assert.True(t, accepts(t, f, []symbol.Symbol{a, c}, []symbol.Symbol{b, d}))
}

func Test_Harmonize_ExpandsWildcardAgainstNovelSymbols(t *testing.T) {
	a, z := symbol.Of("a"), symbol.Of("z")
	wildcard := Map(a, symbol.Unknown)
	other := Map(z, z)

	harmonized := Harmonize(wildcard, other)

	assert.True(t, accepts(t, harmonized, []symbol.Symbol{a}, []symbol.Symbol{z}))
}

func Test_Intersect_RequiresBothOperandsToAccept(t *testing.T) {
	a, b := symbol.Of("a"), symbol.Of("b")
	left := Determinize(Identity(a))
	right := Determinize(Map(a, b))

	result, err := Intersect(left, right)
	require.NoError(t, err)

	assert.False(t, accepts(t, result, []symbol.Symbol{a}, []symbol.Symbol{a}))
}

func Test_Union_AcceptsFromEitherOperand(t *testing.T) {
	a, b, c, d := symbol.Of("a"), symbol.Of("b"), symbol.Of("c"), symbol.Of("d")
	left := Determinize(Map(a, b))
	right := Determinize(Map(c, d))

	result, err := Union(left, right)
	require.NoError(t, err)

	assert.True(t, accepts(t, result, []symbol.Symbol{a}, []symbol.Symbol{b}))
	assert.True(t, accepts(t, result, []symbol.Symbol{c}, []symbol.Symbol{d}))
}

func Test_Subtract_RemovesRightOperandsLanguage(t *testing.T) {
	a, b := symbol.Of("a"), symbol.Of("b")
	left := Determinize(UnionEpsilon(Identity(a), Map(a, b)))
	right := Determinize(Map(a, b))

	result, err := Subtract(left, right)
	require.NoError(t, err)

	assert.True(t, accepts(t, result, []symbol.Symbol{a}, []symbol.Symbol{a}))
	assert.False(t, accepts(t, result, []symbol.Symbol{a}, []symbol.Symbol{b}))
}

func Test_Product_RejectsEpsilonBearingOperand(t *testing.T) {
	a, b := symbol.Of("a"), symbol.Of("b")
	withEpsilon := UnionEpsilon(Map(a, b), Map(a, b))
	clean := Determinize(Map(a, b))

	_, err := Union(withEpsilon, clean)
	assert.Error(t, err)
}

func Test_Flatten_ProducesDenseStateIDsFromZero(t *testing.T) {
	a, b, c, d := symbol.Of("a"), symbol.Of("b"), symbol.Of("c"), symbol.Of("d")
	f := Flatten(Concat(Map(a, b), Map(c, d)))

	for st := range f.States {
		assert.True(t, st >= 0 && int(st) < len(f.States))
	}
	assert.True(t, accepts(t, f, []symbol.Symbol{a, c}, []symbol.Symbol{b, d}))
}

func Test_Prune_RemovesDeadStates(t *testing.T) {
	a, b := symbol.Of("a"), symbol.Of("b")
	base := Map(a, b)

	unreachable := fst.State(99)
	base.States.Add(unreachable)

	pruned := Prune(base)

	assert.False(t, pruned.States.Has(unreachable))
	require.NoError(t, pruned.Validate())
}

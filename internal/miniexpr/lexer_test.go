package miniexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParenDepth_BalancedIsZero(t *testing.T) {
	assert.Equal(t, 0, ParenDepth(Lex("(a|b)*")))
}

func Test_ParenDepth_UnclosedIsPositive(t *testing.T) {
	assert.Equal(t, 1, ParenDepth(Lex("(a|b")))
}

func Test_ParenDepth_UnopenedIsNegative(t *testing.T) {
	assert.Equal(t, -1, ParenDepth(Lex("a|b)")))
}

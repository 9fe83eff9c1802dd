package input

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DirectExprReader_ReadsSingleLine(t *testing.T) {
	r := NewDirectReader(strings.NewReader("a:b\n"))
	defer r.Close()

	expr, err := r.ReadExpr()
	require.NoError(t, err)
	assert.Equal(t, "a:b", expr)
}

func Test_DirectExprReader_SkipsCommentLines(t *testing.T) {
	r := NewDirectReader(strings.NewReader("# just a note\na:b\n"))
	defer r.Close()

	expr, err := r.ReadExpr()
	require.NoError(t, err)
	assert.Equal(t, "a:b", expr)
}

func Test_DirectExprReader_StitchesUnbalancedParens(t *testing.T) {
	r := NewDirectReader(strings.NewReader("(a|b\n|c)*\n"))
	defer r.Close()

	expr, err := r.ReadExpr()
	require.NoError(t, err)
	assert.Equal(t, "(a|b\n|c)*", expr)
}

func Test_DirectExprReader_EOFAtEndOfStream(t *testing.T) {
	r := NewDirectReader(strings.NewReader(""))
	defer r.Close()

	_, err := r.ReadExpr()
	assert.ErrorIs(t, err, io.EOF)
}

func Test_DirectExprReader_AllowBlank(t *testing.T) {
	r := NewDirectReader(strings.NewReader("\na:b\n"))
	r.AllowBlank(true)
	defer r.Close()

	expr, err := r.ReadExpr()
	require.NoError(t, err)
	assert.Equal(t, "", expr)
}

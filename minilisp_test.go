package minilisp

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/minilisp/ast"
	"github.com/xiam/minilisp/parser"
)

func TestParse(t *testing.T) {
	script, err := ParseString(`(+ 1 2.5 true)`)
	require.NoError(t, err)

	expected := ast.NewScript(ast.List{ast.Symbol("+"), ast.Integer(1), ast.Float(2.5), ast.Bool(true)})
	assert.Equal(t, expected, script)

	script, err = Parse([]byte(`()`))
	require.NoError(t, err)
	assert.Equal(t, ast.NewScript(ast.List{}), script)
}

func TestReader(t *testing.T) {
	in := "(def pi 3.14)\n(def ok true)\n"

	script, err := NewReader(iotest.OneByteReader(strings.NewReader(in))).Parse()
	require.NoError(t, err)
	assert.Equal(t, "(def pi 3.14) (def ok true)", script.String())
}

func TestReaderErrors(t *testing.T) {
	readErr := errors.New("broken pipe")

	_, err := NewReader(iotest.ErrReader(readErr)).Parse()
	assert.True(t, errors.Is(err, readErr))

	_, err = NewReader(strings.NewReader("(a b")).Parse()
	assert.True(t, errors.Is(err, parser.ErrUnexpectedEOF))
}

package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner(t *testing.T) {
	testCases := []string{
		`1`,

		`+ 1 1 1 1`,

		`(+ 1 2 3)`,

		`(- 1 2.5 true)`,

		`(foo a b c-d-e-f)`,

		`(foo
			a b
			c-d-e-f
			*special*
			foo->bar
		)`,

		`(def sum (fn (a b) (+ a b)))`,

		"\t\r\n () (  )",

		`(fn1 😊)`,
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i]))
		t.Logf("tokens: %v", tokens)

		assert.NotNil(t, tokens)
		assert.NoError(t, err)
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			``,
			[]TokenType{
				TokenEOF,
			},
		},
		{
			`1`,
			[]TokenType{
				TokenInteger,
				TokenEOF,
			},
		},
		{
			`3.14`,
			[]TokenType{
				TokenFloat,
				TokenEOF,
			},
		},
		{
			`+
			1`,
			[]TokenType{
				TokenSymbol,
				TokenWhitespace,
				TokenInteger,
				TokenEOF,
			},
		},
		{
			`true truex false falsey`,
			[]TokenType{
				TokenBool,
				TokenWhitespace,
				TokenSymbol,
				TokenWhitespace,
				TokenBool,
				TokenWhitespace,
				TokenSymbol,
				TokenEOF,
			},
		},
		{
			`(+ 1 2.5 true)`,
			[]TokenType{
				TokenOpenList,
				TokenSymbol,
				TokenWhitespace,
				TokenInteger,
				TokenWhitespace,
				TokenFloat,
				TokenWhitespace,
				TokenBool,
				TokenCloseList,
				TokenEOF,
			},
		},
		{
			`(a(b)c)`,
			[]TokenType{
				TokenOpenList,
				TokenSymbol,
				TokenOpenList,
				TokenSymbol,
				TokenCloseList,
				TokenSymbol,
				TokenCloseList,
				TokenEOF,
			},
		},
		{
			`1(2)3.5)`,
			[]TokenType{
				TokenInteger,
				TokenOpenList,
				TokenInteger,
				TokenCloseList,
				TokenFloat,
				TokenCloseList,
				TokenEOF,
			},
		},
		{
			`-1 x1 x٣ truefalse`,
			[]TokenType{
				TokenSymbol,
				TokenWhitespace,
				TokenSymbol,
				TokenWhitespace,
				TokenSymbol,
				TokenWhitespace,
				TokenSymbol,
				TokenEOF,
			},
		},
	}

	getTokenTypes := func(tokens []Token) []TokenType {
		tt := make([]TokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].tt)
		}
		return tt
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens), "input: %q", testCases[i].In)
	}
}

func TestTokenText(t *testing.T) {
	tokens, err := Tokenize([]byte("(foo->bar 12 0.25 false)"))
	require.NoError(t, err)

	texts := []string{}
	for _, tok := range tokens {
		texts = append(texts, tok.Text())
	}
	assert.Equal(t, []string{"(", "foo->bar", " ", "12", " ", "0.25", " ", "false", ")", ""}, texts)
}

func TestTokenizeErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [2]int
	}{
		{`3.`, [2]int{1, 2}},
		{`12x`, [2]int{1, 3}},
		{`3.14.5`, [2]int{1, 5}},
		{`#`, [2]int{1, 1}},
		{`(a #b)`, [2]int{1, 4}},
		{`a.b`, [2]int{1, 2}},
		{`.5`, [2]int{1, 1}},
		{"(1\n  2\n  7up)", [2]int{3, 4}},
		{"ab\xffcd", [2]int{1, 3}},
		{`٣`, [2]int{1, 1}},
		{`(a ٣x)`, [2]int{1, 4}},
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))
		assert.Nil(t, tokens)
		require.Error(t, err, "input: %q", testCases[i].In)

		var lexErr *Error
		require.True(t, errors.As(err, &lexErr))
		assert.Equal(t, testCases[i].Pos, [2]int{lexErr.Line, lexErr.Col}, "input: %q", testCases[i].In)
	}
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"",
			[][2]int{
				{1, 1},
			},
		},
		{
			"1",
			[][2]int{
				{1, 1}, {1, 2},
			},
		},
		{
			"\n\n\n\n",
			[][2]int{
				{1, 1},
				{5, 1},
			},
		},
		{
			"\n\n\nABCDF efgh\n",
			[][2]int{
				{1, 1},
				{4, 1}, {4, 6}, {4, 7}, {4, 11},
				{5, 1},
			},
		},
		{
			"1\n\n\t\t23456",
			[][2]int{
				{1, 1}, {1, 2},
				{3, 3}, {3, 8},
			},
		},
		{
			"(😊 1)",
			[][2]int{
				{1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6},
			},
		},
	}

	getTokenPositions := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			ret = append(ret, [2]int{tokens[i].line, tokens[i].col})
		}
		return ret
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens), "input: %q", testCases[i].In)
	}
}

func TestTokenOffset(t *testing.T) {
	tokens, err := Tokenize([]byte("(😊 1)"))
	require.NoError(t, err)

	offsets := []int{}
	for _, tok := range tokens {
		offsets = append(offsets, tok.Offset())
	}
	assert.Equal(t, []int{0, 1, 5, 6, 7, 8}, offsets)
}

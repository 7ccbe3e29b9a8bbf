package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenList             // Open parenthesis: "("
	TokenCloseList            // Close parenthesis: ")"
	TokenWhitespace           // Any run of unicode whitespace
	TokenSymbol               // [^\d\s().#][^\s().#]*
	TokenInteger              // [0-9]+
	TokenFloat                // [0-9]+\.[0-9]+
	TokenBool                 // "true" or "false"
	TokenEOF                  // End of file
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenOpenList:   "open_list",
	TokenCloseList:  "close_list",
	TokenWhitespace: "whitespace",
	TokenSymbol:     "symbol",
	TokenInteger:    "integer",
	TokenFloat:      "float",
	TokenBool:       "bool",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

const (
	runeOpenList  = '('
	runeCloseList = ')'
	runeDot       = '.'
	runeHash      = '#'
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// isDelimiter reports whether r may follow a numeric token.
func isDelimiter(r rune) bool {
	return r == eof || r == runeOpenList || r == runeCloseList || isWhitespace(r)
}

func isSymbolBody(r rune) bool {
	if r < 0 {
		return false
	}
	switch r {
	case runeOpenList, runeCloseList, runeDot, runeHash:
		return false
	}
	return !isWhitespace(r)
}

// isSymbolStart rejects every unicode decimal digit, not only 0-9, so "٣"
// starts no token at all.
func isSymbolStart(r rune) bool {
	return isSymbolBody(r) && !unicode.IsDigit(r)
}

var keywords = map[string]TokenType{
	"true":  TokenBool,
	"false": TokenBool,
}

package lexer

import (
	"fmt"
	"unicode/utf8"
)

const (
	eof     rune = -1
	invalid rune = -2
)

type lexState func(*Lexer) lexState

// Error describes a sequence of characters that does not start any token.
type Error struct {
	Line   int
	Col    int
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

// New initializes a Lexer object
func New(in []byte) *Lexer {
	return &Lexer{
		in:        in,
		line:      1,
		col:       1,
		startLine: 1,
		startCol:  1,
	}
}

// Lexer represents a lexical analyzer. Tokens are produced synchronously by
// Scan, a Lexer must not be shared between goroutines.
type Lexer struct {
	in []byte

	tokens  []Token
	lastErr error

	start  int
	offset int

	line int
	col  int

	startLine int
	startCol  int
}

// Tokens returns the tokens collected so far.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan reads the whole input. On success the last token is of type TokenEOF.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: string(lx.in[lx.start:lx.offset]),
		line:   lx.startLine,
		col:    lx.startCol,
		offset: lx.start,
	})

	lx.start = lx.offset
	lx.startLine, lx.startCol = lx.line, lx.col
}

func (lx *Lexer) decode(offset int) (rune, int) {
	if offset >= len(lx.in) {
		return eof, 0
	}
	r, size := utf8.DecodeRune(lx.in[offset:])
	if r == utf8.RuneError && size == 1 {
		return invalid, 1
	}
	return r, size
}

func (lx *Lexer) peek() rune {
	r, _ := lx.decode(lx.offset)
	return r
}

// peekSecond looks one rune past the next one.
func (lx *Lexer) peekSecond() rune {
	_, size := lx.decode(lx.offset)
	if size == 0 {
		return eof
	}
	r, _ := lx.decode(lx.offset + size)
	return r
}

func (lx *Lexer) next() rune {
	r, size := lx.decode(lx.offset)
	if size == 0 {
		return eof
	}
	lx.offset += size

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r
}

func (lx *Lexer) errorf(format string, args ...interface{}) lexState {
	lx.lastErr = &Error{
		Line:   lx.line,
		Col:    lx.col,
		Offset: lx.offset,
		Msg:    fmt.Sprintf(format, args...),
	}
	return nil
}

func lexDefaultState(lx *Lexer) lexState {
	r := lx.peek()

	switch {
	case r == eof:
		lx.emit(TokenEOF)
		return nil
	case r == runeOpenList:
		lx.next()
		return lexEmit(TokenOpenList)
	case r == runeCloseList:
		lx.next()
		return lexEmit(TokenCloseList)
	case isWhitespace(r):
		return lexWhitespace
	case isDigit(r):
		return lexNumber
	case isSymbolStart(r):
		return lexSymbol
	case r == invalid:
		return lx.errorf("invalid UTF-8 encoding")
	}

	return lx.errorf("unexpected character %q", r)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexWhitespace(lx *Lexer) lexState {
	for isWhitespace(lx.peek()) {
		lx.next()
	}
	return lexEmit(TokenWhitespace)
}

func lexDigits(lx *Lexer) {
	for isDigit(lx.peek()) {
		lx.next()
	}
}

// lexNumber munches an integer or a float and then requires a delimiter, so
// "12x" and "3." are rejected instead of being split into two tokens.
func lexNumber(lx *Lexer) lexState {
	tt := TokenInteger

	lexDigits(lx)
	if lx.peek() == runeDot && isDigit(lx.peekSecond()) {
		lx.next()
		lexDigits(lx)
		tt = TokenFloat
	}

	if r := lx.peek(); !isDelimiter(r) {
		if r == invalid {
			return lx.errorf("invalid UTF-8 encoding")
		}
		return lx.errorf("unexpected character %q after %s %q", r, tt, lx.in[lx.start:lx.offset])
	}

	return lexEmit(tt)
}

func lexSymbol(lx *Lexer) lexState {
	for isSymbolBody(lx.peek()) {
		lx.next()
	}

	if tt, ok := keywords[string(lx.in[lx.start:lx.offset])]; ok {
		return lexEmit(tt)
	}
	return lexEmit(TokenSymbol)
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	lx := New(in)
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}

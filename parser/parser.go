package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/xiam/minilisp/ast"
	"github.com/xiam/minilisp/lexer"
)

// MaxDepth is the deepest list nesting Parse accepts.
const MaxDepth = 10000

// Parser builds a Script out of the tokens of a single input. A Parser is
// not safe for concurrent use, but independent parsers share no state.
type Parser struct {
	in []byte

	tokens []lexer.Token
	offset int
	depth  int
}

// New creates a parser for the given input
func New(in []byte) *Parser {
	return &Parser{in: in}
}

// Parse parses a whole script, which must hold at least one expression.
func Parse(in []byte) (*ast.Script, error) {
	return New(in).Parse()
}

// ParseString is like Parse but takes a string
func ParseString(in string) (*ast.Script, error) {
	return Parse([]byte(in))
}

// Parse tokenizes the input and builds the AST. No partial result is
// returned on failure.
func (p *Parser) Parse() (*ast.Script, error) {
	lx := lexer.New(p.in)
	if err := lx.Scan(); err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			return nil, &Error{
				Kind:   KindSyntax,
				Line:   lexErr.Line,
				Col:    lexErr.Col,
				Offset: lexErr.Offset,
				Msg:    lexErr.Msg,
				Err:    ErrInvalidToken,
			}
		}
		return nil, err
	}

	p.tokens = p.tokens[:0]
	for _, tok := range lx.Tokens() {
		if tok.Is(lexer.TokenWhitespace) {
			continue
		}
		p.tokens = append(p.tokens, tok)
	}
	p.offset, p.depth = 0, 0

	return p.parseScript()
}

func (p *Parser) peek() *lexer.Token {
	return &p.tokens[p.offset]
}

func (p *Parser) next() *lexer.Token {
	tok := &p.tokens[p.offset]
	if !tok.Is(lexer.TokenEOF) {
		p.offset++
	}
	return tok
}

func errorAt(tok *lexer.Token, kind Kind, err error, format string, args ...interface{}) *Error {
	line, col := tok.Pos()
	return &Error{
		Kind:   kind,
		Line:   line,
		Col:    col,
		Offset: tok.Offset(),
		Msg:    fmt.Sprintf(format, args...),
		Err:    err,
	}
}

func (p *Parser) parseScript() (*ast.Script, error) {
	if tok := p.peek(); tok.Is(lexer.TokenEOF) {
		return nil, errorAt(tok, KindSyntax, ErrEmptyInput, "%v", ErrEmptyInput)
	}

	script := &ast.Script{}
	for !p.peek().Is(lexer.TokenEOF) {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		script.Exprs = append(script.Exprs, expr)
	}

	return script, nil
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenOpenList:
		return p.parseList(tok)

	case lexer.TokenSymbol:
		return ast.Symbol(tok.Text()), nil

	case lexer.TokenBool:
		return ast.Bool(tok.Text() == "true"), nil

	case lexer.TokenFloat:
		return parseFloat(tok)

	case lexer.TokenInteger:
		return parseInteger(tok)

	case lexer.TokenCloseList:
		return nil, errorAt(tok, KindSyntax, ErrUnexpectedToken, "unexpected %q", tok.Text())

	case lexer.TokenEOF:
		return nil, errorAt(tok, KindSyntax, ErrUnexpectedEOF, "%v", ErrUnexpectedEOF)
	}

	return nil, errorAt(tok, KindInternal, ErrInternal, "unknown token %v", tok)
}

func (p *Parser) parseList(open *lexer.Token) (ast.Expr, error) {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxDepth {
		return nil, errorAt(open, KindSyntax, ErrTooDeep, "more than %d nested lists", MaxDepth)
	}

	list := ast.List{}
	for {
		tok := p.peek()
		switch tok.Type() {
		case lexer.TokenCloseList:
			p.next()
			return list, nil

		case lexer.TokenEOF:
			line, col := open.Pos()
			return nil, errorAt(tok, KindSyntax, ErrUnexpectedEOF, "unclosed list opened at %d:%d", line, col)
		}

		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
	}
}

func parseInteger(tok *lexer.Token) (ast.Expr, error) {
	i64, err := strconv.ParseInt(tok.Text(), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, errorAt(tok, KindNumericOverflow, ErrNumericOverflow, "integer %s does not fit in 64 bits", tok.Text())
		}
		return nil, errorAt(tok, KindInternal, ErrInternal, "could not convert integer %q: %v", tok.Text(), err)
	}
	return ast.Integer(i64), nil
}

// parseFloat saturates to +Inf on overflow, every other conversion failure
// means the lexer accepted text it should not have.
func parseFloat(tok *lexer.Token) (ast.Expr, error) {
	f64, err := strconv.ParseFloat(tok.Text(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, errorAt(tok, KindInternal, ErrInternal, "could not convert float %q: %v", tok.Text(), err)
	}
	return ast.Float(f64), nil
}

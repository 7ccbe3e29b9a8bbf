// Package minilisp reads scripts written in a small Lisp-like language made
// of parenthesized lists, symbols, floats, integers and booleans.
package minilisp

import (
	"fmt"
	"io"

	"github.com/xiam/minilisp/ast"
	"github.com/xiam/minilisp/parser"
)

// Reader parses scripts from an io.Reader
type Reader struct {
	r io.Reader
}

// Parse parses a whole script held in memory
func Parse(in []byte) (*ast.Script, error) {
	return parser.Parse(in)
}

// ParseString is like Parse but takes a string
func ParseString(in string) (*ast.Script, error) {
	return parser.ParseString(in)
}

// NewReader creates a Reader
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Parse consumes the underlying reader until EOF and parses its content as
// a single script.
func (r *Reader) Parse() (*ast.Script, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return parser.Parse(in)
}

package ast

import (
	"strings"
)

// Expr is a node of the AST. It is implemented only by List, Symbol, Float,
// Integer and Bool, use a type switch to tell them apart.
type Expr interface {
	Type() NodeType
	String() string

	expr()
}

// List is a parenthesized sequence of expressions, possibly empty.
type List []Expr

// Symbol is a run of non-delimiter characters that does not start with a
// digit.
type Symbol string

// Float is a literal like 3.14
type Float float64

// Integer is a literal like 42
type Integer int64

// Bool is either true or false
type Bool bool

// Type returns NodeTypeList
func (List) Type() NodeType { return NodeTypeList }

// Type returns NodeTypeSymbol
func (Symbol) Type() NodeType { return NodeTypeSymbol }

// Type returns NodeTypeFloat
func (Float) Type() NodeType { return NodeTypeFloat }

// Type returns NodeTypeInteger
func (Integer) Type() NodeType { return NodeTypeInteger }

// Type returns NodeTypeBool
func (Bool) Type() NodeType { return NodeTypeBool }

func (l List) String() string    { return Encode(l) }
func (s Symbol) String() string  { return Encode(s) }
func (f Float) String() string   { return Encode(f) }
func (i Integer) String() string { return Encode(i) }
func (b Bool) String() string    { return Encode(b) }

func (List) expr()    {}
func (Symbol) expr()  {}
func (Float) expr()   {}
func (Integer) expr() {}
func (Bool) expr()    {}

// Script is the root of the AST: the top-level expressions in source order.
type Script struct {
	Exprs []Expr
}

// NewScript creates a script holding the given expressions
func NewScript(exprs ...Expr) *Script {
	return &Script{Exprs: exprs}
}

// Len returns the number of top-level expressions
func (s *Script) Len() int {
	return len(s.Exprs)
}

// String returns the top-level expressions encoded and separated by spaces
func (s *Script) String() string {
	parts := make([]string, 0, len(s.Exprs))
	for i := range s.Exprs {
		parts = append(parts, Encode(s.Exprs[i]))
	}
	return strings.Join(parts, " ")
}

// Equal reports whether two expressions have the same structure and values.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x == y
	case Float:
		y, ok := b.(Float)
		return ok && x == y
	case Integer:
		y, ok := b.(Integer)
		return ok && x == y
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case nil:
		return b == nil
	}
	panic("unknown node type")
}

// Equal reports whether both scripts hold equal top-level expressions.
func (s *Script) Equal(o *Script) bool {
	if s == nil || o == nil {
		return s == o
	}
	if len(s.Exprs) != len(o.Exprs) {
		return false
	}
	for i := range s.Exprs {
		if !Equal(s.Exprs[i], o.Exprs[i]) {
			return false
		}
	}
	return true
}

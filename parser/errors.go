package parser

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput      = errors.New("expected at least one expression")
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTooDeep         = errors.New("lists nested too deep")
	ErrNumericOverflow = errors.New("numeric overflow")
	ErrInternal        = errors.New("internal error")
)

// Kind classifies a parse failure
type Kind uint8

// Failure kinds
const (
	KindSyntax Kind = iota
	KindNumericOverflow
	KindInternal
)

var kindNames = map[Kind]string{
	KindSyntax:          "syntax error",
	KindNumericOverflow: "numeric overflow",
	KindInternal:        "internal error",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Error is returned by Parse for any input that is not a valid script.
type Error struct {
	Kind Kind

	Line   int
	Col    int
	Offset int

	Msg string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Col, e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNumericOverflow reports whether err was caused by an integer literal
// outside of the int64 range.
func IsNumericOverflow(err error) bool {
	return errors.Is(err, ErrNumericOverflow)
}

package ast

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Print writes a human-readable representation of a node, one node per line
// and children indented below their list.
func Print(w io.Writer, e Expr) error {
	var err error
	Walk(e, func(n Expr, level int) bool {
		if err != nil {
			return false
		}
		indent := strings.Repeat("    ", level)
		switch v := n.(type) {
		case List:
			_, err = fmt.Fprintf(w, "%s(%s)[%d]\n", indent, v.Type(), len(v))
		default:
			_, err = fmt.Fprintf(w, "%s(%s): %s\n", indent, v.Type(), Encode(v))
		}
		return true
	})
	return err
}

// PrintScript writes every top-level expression of the script using Print
func PrintScript(w io.Writer, s *Script) error {
	for i := range s.Exprs {
		if err := Print(w, s.Exprs[i]); err != nil {
			return err
		}
	}
	return nil
}

// Encode transforms a node into its text representation
func Encode(e Expr) string {
	var sb strings.Builder
	encodeNode(&sb, e)
	return sb.String()
}

func encodeNode(sb *strings.Builder, e Expr) {
	switch v := e.(type) {
	case List:
		sb.WriteByte('(')
		for i := range v {
			if i > 0 {
				sb.WriteByte(' ')
			}
			encodeNode(sb, v[i])
		}
		sb.WriteByte(')')

	case Symbol:
		sb.WriteString(string(v))

	case Integer:
		sb.WriteString(strconv.FormatInt(int64(v), 10))

	case Float:
		sb.WriteString(encodeFloat(float64(v)))

	case Bool:
		sb.WriteString(strconv.FormatBool(bool(v)))

	case nil:
		sb.WriteString(":nil")

	default:
		panic("unknown node type")
	}
}

// encodeFloat always keeps a fractional part so the output reads back as a
// float and not as an integer.
func encodeFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Walk visits e and its descendants depth-first, in source order. Children
// of a list are skipped when fn returns false for the list.
func Walk(e Expr, fn func(e Expr, level int) bool) {
	walkLevel(e, 0, fn)
}

func walkLevel(e Expr, level int, fn func(Expr, int) bool) {
	if !fn(e, level) {
		return
	}
	if l, ok := e.(List); ok {
		for i := range l {
			walkLevel(l[i], level+1, fn)
		}
	}
}

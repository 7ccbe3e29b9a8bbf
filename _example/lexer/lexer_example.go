package main

import (
	"fmt"
	"log"

	"github.com/xiam/minilisp/lexer"
)

func main() {
	input := `
		(fn_a
			(fn_b (89 a b (67 3.27)))
			(fn_c 66 3 53 false)
		)
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		if tok.Is(lexer.TokenWhitespace) {
			continue
		}
		line, col := tok.Pos()
		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tok.Type(), line, col, tok.Text())
	}
}

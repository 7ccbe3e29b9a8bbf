package main

import (
	"log"
	"os"

	"github.com/xiam/minilisp/ast"
	"github.com/xiam/minilisp/parser"
)

func main() {
	input := `(def area (fn (r) (* 3.14159 r r))) (area 2) (if true 1 0)`

	script, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	if err := ast.PrintScript(os.Stdout, script); err != nil {
		log.Fatal("ast.PrintScript:", err)
	}
}

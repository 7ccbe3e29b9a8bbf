// Package dump renders parsed scripts in the formats offered by the ast
// command.
package dump

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/xiam/minilisp/ast"
	"github.com/xiam/minilisp/internal/config"
	"gopkg.in/yaml.v3"
)

// Write renders script to w using the given format
func Write(w io.Writer, script *ast.Script, format string) error {
	switch format {
	case config.FormatText:
		return ast.PrintScript(w, script)

	case config.FormatEncode:
		_, err := fmt.Fprintln(w, script.String())
		return err

	case config.FormatYAML:
		buf, err := YAML(script)
		if err != nil {
			return err
		}
		_, err = w.Write(buf)
		return err

	case config.FormatJSON:
		buf, err := JSON(script)
		if err != nil {
			return err
		}
		_, err = w.Write(append(buf, '\n'))
		return err
	}

	return fmt.Errorf("unknown output format %q", format)
}

// YAML encodes a script as a sequence. Lists become nested sequences and
// every value keeps its explicit tag, so symbols that look like numbers stay
// strings.
func YAML(script *ast.Script) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.SequenceNode}
	for i := range script.Exprs {
		root.Content = append(root.Content, yamlNode(script.Exprs[i]))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yamlNode(e ast.Expr) *yaml.Node {
	switch v := e.(type) {
	case ast.List:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for i := range v {
			node.Content = append(node.Content, yamlNode(v[i]))
		}
		return node
	case ast.Symbol:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(v)}
	case ast.Integer:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: v.String()}
	case ast.Float:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: v.String()}
	case ast.Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v.String()}
	}
	panic("unknown node type")
}

// FromYAML reverses YAML
func FromYAML(in []byte) (*ast.Script, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(in, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expecting a sequence of expressions")
	}

	script := &ast.Script{}
	for _, node := range doc.Content[0].Content {
		e, err := exprFromYAML(node)
		if err != nil {
			return nil, err
		}
		script.Exprs = append(script.Exprs, e)
	}
	return script, nil
}

func exprFromYAML(node *yaml.Node) (ast.Expr, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		list := ast.List{}
		for _, child := range node.Content {
			e, err := exprFromYAML(child)
			if err != nil {
				return nil, err
			}
			list = append(list, e)
		}
		return list, nil

	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!str":
			return ast.Symbol(node.Value), nil
		case "!!int":
			i64, err := strconv.ParseInt(node.Value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", node.Line, err)
			}
			return ast.Integer(i64), nil
		case "!!float":
			f64, err := strconv.ParseFloat(node.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", node.Line, err)
			}
			return ast.Float(f64), nil
		case "!!bool":
			return ast.Bool(node.Value == "true"), nil
		}
	}

	return nil, fmt.Errorf("line %d: unexpected node %q", node.Line, node.Value)
}

type jsonExpr struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value,omitempty"`
	Elems []jsonExpr  `json:"elems,omitempty"`
}

// JSON encodes a script as an array of {"type", "value"} objects, lists
// carry their children under "elems".
func JSON(script *ast.Script) ([]byte, error) {
	out := make([]jsonExpr, 0, len(script.Exprs))
	for i := range script.Exprs {
		out = append(out, jsonNode(script.Exprs[i]))
	}
	return json.MarshalIndent(out, "", "  ")
}

func jsonNode(e ast.Expr) jsonExpr {
	node := jsonExpr{Type: e.Type().String()}
	switch v := e.(type) {
	case ast.List:
		node.Elems = make([]jsonExpr, 0, len(v))
		for i := range v {
			node.Elems = append(node.Elems, jsonNode(v[i]))
		}
	case ast.Symbol:
		node.Value = string(v)
	case ast.Integer:
		node.Value = int64(v)
	case ast.Float:
		node.Value = float64(v)
	case ast.Bool:
		node.Value = bool(v)
	}
	return node
}

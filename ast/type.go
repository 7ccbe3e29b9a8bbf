package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeInteger = nodeTypeValue | 1
	NodeTypeFloat   = nodeTypeValue | 2
	NodeTypeSymbol  = nodeTypeValue | 4
	NodeTypeBool    = nodeTypeValue | 8

	NodeTypeList = nodeTypeVector | 1
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

// IsValue returns true for the atomic node types
func (nt NodeType) IsValue() bool {
	return nt&nodeTypeValue > 0
}

// IsVector returns true for node types that hold children
func (nt NodeType) IsVector() bool {
	return nt&nodeTypeVector > 0
}

var nodeTypeName = map[NodeType]string{
	NodeTypeInteger: "integer",
	NodeTypeFloat:   "float",
	NodeTypeSymbol:  "symbol",
	NodeTypeBool:    "bool",
	NodeTypeList:    "list",
}

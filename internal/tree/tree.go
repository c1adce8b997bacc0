// Package tree defines the concrete parse tree the parse driver builds,
// along with XML and YAML renderers.
package tree

import (
	"fmt"
	"strings"

	"github.com/corvidae/redfish/internal/lex"
)

// Node is one node of a concrete parse tree: either a terminal leaf
// (holding the source token it came from) or an internal node for a
// reduced production (holding its children in left-to-right order).
type Node struct {
	Terminal bool
	Symbol   string // terminal class ID, or non-terminal name
	Lexeme   string // set only when Terminal
	Source   lex.Token
	Children []*Node
}

// Leaf constructs a terminal node from a lexed token.
func Leaf(tok lex.Token) *Node {
	return &Node{Terminal: true, Symbol: tok.Class().ID(), Lexeme: tok.Lexeme(), Source: tok}
}

// Internal constructs a non-terminal node reducing to symbol over the
// given children, in original left-to-right order.
func Internal(symbol string, children []*Node) *Node {
	return &Node{Terminal: false, Symbol: symbol, Children: children}
}

// String renders the tree in an indented ASCII-art form, e.g.:
//
//	( E )
//	  |---: ( T )
//	  |---: ( + )
func (n *Node) String() string {
	var sb strings.Builder
	n.writeLevel(&sb, 0)
	return sb.String()
}

func (n *Node) writeLevel(sb *strings.Builder, depth int) {
	if n.Terminal {
		fmt.Fprintf(sb, "( %s )\n", n.Lexeme)
		return
	}
	fmt.Fprintf(sb, "( %s )\n", n.Symbol)
	indent := strings.Repeat("  ", depth+1)
	for _, c := range n.Children {
		sb.WriteString(indent)
		sb.WriteString("|---: ")
		c.writeLevel(sb, depth+1)
	}
}

// Equal performs a structural comparison, ignoring the original Source
// token, useful for tests that only care about tree shape.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Terminal != o.Terminal || n.Symbol != o.Symbol || n.Lexeme != o.Lexeme {
		return false
	}
	if len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

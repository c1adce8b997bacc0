package tree

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ToXML renders the tree as indented XML, hand-rolled rather than built on
// encoding/xml: the tree's shape is recursive and variant (a node is
// either a leaf or has children), which doesn't map onto encoding/xml's
// static struct-tag model any more naturally than writing the indentation
// by hand, which is also how Node.String's own ASCII-art renderer works.
func (n *Node) ToXML() string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	n.writeXML(&sb, 0)
	return sb.String()
}

func (n *Node) writeXML(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.Terminal {
		fmt.Fprintf(sb, "%s<%s>%s</%s>\n", indent, n.Symbol, xmlEscape(n.Lexeme), n.Symbol)
		return
	}
	fmt.Fprintf(sb, "%s<%s>\n", indent, n.Symbol)
	for _, c := range n.Children {
		c.writeXML(sb, depth+1)
	}
	fmt.Fprintf(sb, "%s</%s>\n", indent, n.Symbol)
}

func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}

// yamlNode is the shape yaml.v3 marshals, a plain data mirror of Node
// since Node itself carries an interface field (Source) that isn't
// meaningfully serializable.
type yamlNode struct {
	Symbol   string     `yaml:"symbol"`
	Terminal bool       `yaml:"terminal,omitempty"`
	Lexeme   string     `yaml:"lexeme,omitempty"`
	Children []yamlNode `yaml:"children,omitempty"`
}

func (n *Node) toYAMLNode() yamlNode {
	yn := yamlNode{Symbol: n.Symbol, Terminal: n.Terminal, Lexeme: n.Lexeme}
	for _, c := range n.Children {
		yn.Children = append(yn.Children, c.toYAMLNode())
	}
	return yn
}

// ToYAML renders the tree as YAML via yaml.v3, for the "--format=yaml"
// CLI option.
func (n *Node) ToYAML() (string, error) {
	out, err := yaml.Marshal(n.toYAMLNode())
	if err != nil {
		return "", err
	}
	return string(out), nil
}

package syntree

import "strings"

// NodeKind enumerates the node vocabulary of the concrete syntax tree.
type NodeKind int

// The fixed node-kind vocabulary. Terminal nodes carry their lexeme in
// Node.Text; Terminal distinguishes string literals from token
// references by the lexeme itself (a string literal keeps its quote
// delimiters).
const (
	GrammarSpec NodeKind = iota
	RuleSpec
	ParserRuleSpec
	LexerRuleSpec
	RuleAltList
	LabeledAlt
	AltList
	Alternative
	Element
	Ebnf
	Block
	Atom
	Terminal
	Ruleref
	EbnfSuffix
)

var kindNames = [...]string{
	"GrammarSpec", "RuleSpec", "ParserRuleSpec", "LexerRuleSpec",
	"RuleAltList", "LabeledAlt", "AltList", "Alternative", "Element",
	"Ebnf", "Block", "Atom", "Terminal", "Ruleref", "EbnfSuffix",
}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Node is one node of the concrete syntax tree. Text is the payload for
// named or terminal nodes (rule names, lexemes, suffix operators) and
// empty elsewhere.
type Node struct {
	Kind     NodeKind
	Text     string
	Children []*Node
}

// NewNode creates a node without children.
func NewNode(kind NodeKind, text string) *Node {
	return &Node{Kind: kind, Text: text}
}

// Append adds children in order and returns the node for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Child returns the first child of the given kind, or nil.
func (n *Node) Child(kind NodeKind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// String renders the subtree in a compact one-line form, for tracing.
func (n *Node) String() string {
	var b strings.Builder
	n.dump(&b)
	return b.String()
}

func (n *Node) dump(b *strings.Builder) {
	b.WriteString(n.Kind.String())
	if n.Text != "" {
		b.WriteByte('<')
		b.WriteString(n.Text)
		b.WriteByte('>')
	}
	if len(n.Children) > 0 {
		b.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(' ')
			}
			c.dump(b)
		}
		b.WriteByte(')')
	}
}

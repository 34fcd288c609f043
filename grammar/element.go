package grammar

import (
	"fmt"
	"strings"
)

// Element is the closed sum type over the six shapes a grammar production
// may be composed of. The marker method seals the interface against
// implementations outside this package.
type Element interface {
	element()
}

// Atom is a terminal literal. Text holds the bare literal, with the quote
// delimiters of the source notation already stripped.
type Atom struct {
	Text string
}

// RuleRef references another rule (or a lexer token, which is treated as an
// atomic reference). Name is not checked against the rule list; a
// well-formed grammar has a matching rule for it.
type RuleRef struct {
	Name string
}

// Optional wraps an element occurring zero or one time.
type Optional struct {
	Inner Element
}

// Plus wraps an element occurring one or more times.
type Plus struct {
	Inner Element
}

// Star wraps an element occurring zero or more times.
type Star struct {
	Inner Element
}

// Choice is an alternation over two or more elements, in source order.
// Always construct it through NewChoice.
type Choice struct {
	Alternatives []Element
}

// Seq is a concatenation of two or more elements, in source order.
// Always construct it through NewSeq.
type Seq struct {
	Elements []Element
}

func (Atom) element()     {}
func (RuleRef) element()  {}
func (Optional) element() {}
func (Plus) element()     {}
func (Star) element()     {}
func (Choice) element()   {}
func (Seq) element()      {}

// NewChoice wraps elements in a Choice. A single-element argument list is
// collapsed: the element itself is returned unwrapped, keeping Choice
// free of degenerate singletons. Calling NewChoice with no elements is a
// precondition violation and panics.
func NewChoice(elements []Element) Element {
	if len(elements) == 0 {
		panic("grammar: choice over zero elements")
	}
	if len(elements) == 1 {
		return elements[0]
	}
	return Choice{Alternatives: elements}
}

// NewSeq wraps elements in a Seq, with the same collapsing contract as
// NewChoice.
func NewSeq(elements []Element) Element {
	if len(elements) == 0 {
		panic("grammar: sequence over zero elements")
	}
	if len(elements) == 1 {
		return elements[0]
	}
	return Seq{Elements: elements}
}

// Rule is a named grammar production.
type Rule struct {
	Name string  // left-hand side, used as a stable anchor key by renderers
	Body Element // right-hand side
}

// --- Stringers, for debugging ----------------------------------------------

func (a Atom) String() string     { return "'" + a.Text + "'" }
func (r RuleRef) String() string  { return r.Name }
func (o Optional) String() string { return fmt.Sprintf("opt(%v)", o.Inner) }
func (p Plus) String() string     { return fmt.Sprintf("plus(%v)", p.Inner) }
func (s Star) String() string     { return fmt.Sprintf("star(%v)", s.Inner) }

func (c Choice) String() string { return list("alt", c.Alternatives) }
func (s Seq) String() string    { return list("seq", s.Elements) }

func list(tag string, elements []Element) string {
	var b strings.Builder
	b.WriteString(tag)
	b.WriteByte('(')
	for i, e := range elements {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte(')')
	return b.String()
}

func (r Rule) String() string {
	return fmt.Sprintf("%s = %v", r.Name, r.Body)
}

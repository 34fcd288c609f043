package render

import (
	"strings"

	"github.com/npillmayer/ebnfdoc/grammar"
)

// EBNF renders a rule list as canonical EBNF text, one line per rule of
// the form "name ::= body", with a trailing newline. Sequences and
// alternations nested under a repetition suffix or inside another list
// combinator are always parenthesized, so the output re-parses without
// ambiguity.
func EBNF(rules []grammar.Rule, opts ...Option) string {
	cfg := configure(opts)
	T().Debugf("rendering %d rules as EBNF", len(rules))
	lines := renderAll(rules, ebnfLine, cfg.parallel)
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func ebnfLine(r grammar.Rule) string {
	b := borrowBuilder()
	defer releaseBuilder(b)
	b.WriteString(r.Name)
	b.WriteString(" ::= ")
	ebnfExpr(b, r.Body)
	return b.String()
}

func ebnfExpr(b *strings.Builder, e grammar.Element) {
	switch e := e.(type) {
	case grammar.Atom:
		b.WriteByte('\'')
		b.WriteString(e.Text)
		b.WriteByte('\'')
	case grammar.RuleRef:
		b.WriteString(e.Name)
	case grammar.Optional:
		ebnfGrouped(b, e.Inner)
		b.WriteByte('?')
	case grammar.Plus:
		ebnfGrouped(b, e.Inner)
		b.WriteByte('+')
	case grammar.Star:
		ebnfGrouped(b, e.Inner)
		b.WriteByte('*')
	case grammar.Choice:
		for i, alt := range e.Alternatives {
			if i > 0 {
				b.WriteString(" | ")
			}
			ebnfGrouped(b, alt)
		}
	case grammar.Seq:
		for i, el := range e.Elements {
			if i > 0 {
				b.WriteByte(' ')
			}
			ebnfGrouped(b, el)
		}
	}
}

// ebnfGrouped parenthesizes list combinators. A nested Choice inside a
// Choice keeps its parentheses even where associativity would allow
// dropping them.
func ebnfGrouped(b *strings.Builder, e grammar.Element) {
	switch e.(type) {
	case grammar.Seq, grammar.Choice:
		b.WriteByte('(')
		ebnfExpr(b, e)
		b.WriteByte(')')
	default:
		ebnfExpr(b, e)
	}
}

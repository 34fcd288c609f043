package render

import (
	"strings"

	"github.com/npillmayer/ebnfdoc/grammar"
)

// lineBreak is the hard line-break marker within a rule block.
const lineBreak = "<br>\n"

// Seq lines longer than this break onto one line per element.
const seqBreakLimit = 4

// Markdown renders a rule list as a Markdown document. Every rule
// becomes a two-line block: a bold-italic heading with the rule name,
// then the indented right-hand side. Rule references render as links to
// the anchor of the referenced rule's block; with option RuleContainers
// each block is fenced in a pandoc-style div carrying that anchor id.
// Blocks are separated by a blank line; the document ends with a
// newline.
func Markdown(rules []grammar.Rule, opts ...Option) string {
	cfg := configure(opts)
	T().Debugf("rendering %d rules as Markdown", len(rules))
	blocks := renderAll(rules, func(r grammar.Rule) string {
		return markdownBlock(r, cfg.containers)
	}, cfg.parallel)
	return strings.Join(blocks, "\n\n") + "\n"
}

func markdownBlock(r grammar.Rule, wrap bool) string {
	b := borrowBuilder()
	defer releaseBuilder(b)
	if wrap {
		b.WriteString("::: {#")
		b.WriteString(anchor(r.Name))
		b.WriteString("}\n")
	}
	b.WriteString("***")
	b.WriteString(r.Name)
	b.WriteString("***")
	b.WriteString(lineBreak)
	b.WriteString("  ")
	mdExpr(b, r.Body, true)
	if wrap {
		b.WriteString("\n:::")
	}
	return b.String()
}

func anchor(name string) string {
	return "grammar-rule-" + name
}

// mdExpr renders one element. topLevel steers the line-breaking of the
// two list combinators; everything below the first nesting level stays
// on one line.
func mdExpr(b *strings.Builder, e grammar.Element, topLevel bool) {
	switch e := e.(type) {
	case grammar.Atom:
		b.WriteString("`'")
		b.WriteString(e.Text)
		b.WriteString("'`")
	case grammar.RuleRef:
		b.WriteString("_[")
		b.WriteString(e.Name)
		b.WriteString("](#")
		b.WriteString(anchor(e.Name))
		b.WriteString(")_")
	case grammar.Optional:
		b.WriteByte('[')
		mdExpr(b, e.Inner, false)
		b.WriteByte(']')
	case grammar.Star:
		b.WriteByte('{')
		mdExpr(b, e.Inner, false)
		b.WriteByte('}')
	case grammar.Plus:
		// one-or-more spelled out as "one, then zero-or-more"
		mdExpr(b, e.Inner, false)
		b.WriteString(" {")
		mdExpr(b, e.Inner, false)
		b.WriteByte('}')
	case grammar.Choice:
		sep := " | "
		if topLevel {
			sep = lineBreak + " | "
		}
		for i, alt := range e.Alternatives {
			if i > 0 {
				b.WriteString(sep)
			}
			mdGrouped(b, alt)
		}
	case grammar.Seq:
		sep := " "
		if topLevel && len(e.Elements) > seqBreakLimit {
			sep = lineBreak + "   "
		}
		for i, el := range e.Elements {
			if i > 0 {
				b.WriteString(sep)
			}
			mdGrouped(b, el)
		}
	}
}

// mdGrouped parenthesizes elements which would otherwise blur the
// boundaries of the enclosing list: sequences, alternations and the
// two-part Plus expansion. Atoms, references, brackets and braces are
// self-delimiting.
func mdGrouped(b *strings.Builder, e grammar.Element) {
	switch e.(type) {
	case grammar.Seq, grammar.Plus, grammar.Choice:
		b.WriteByte('(')
		mdExpr(b, e, false)
		b.WriteByte(')')
	default:
		mdExpr(b, e, false)
	}
}

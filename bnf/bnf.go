package bnf

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/ebnfdoc/grammar"
	"github.com/npillmayer/gorgo/lr"
)

// Token values for terminals start above the Unicode range, leaving
// room for clients which feed single runes as token values.
const tokenBase = 0x110000

// A symbol is one right-hand side entry of a lowered production.
type symbol struct {
	name     string
	tokval   int
	terminal bool
}

// Build lowers a rule list to plain BNF productions and assembles them
// into a GoRGO grammar, returning its LR analysis. Helper nonterminals
// are synthesized for every repetition operator and for every nested
// alternation or sequence; terminals get stable token values in
// first-seen order.
func Build(name string, rules []grammar.Rule) (*lr.LRAnalysis, error) {
	b := lr.NewGrammarBuilder(name)
	tokvals := make(map[string]int)
	auxcnt := 0

	tokenFor := func(lexeme string) int {
		if v, ok := tokvals[lexeme]; ok {
			return v
		}
		v := tokenBase + len(tokvals)
		tokvals[lexeme] = v
		return v
	}
	aux := func(base string) string {
		auxcnt++
		return fmt.Sprintf("%s_%d", base, auxcnt)
	}
	emit := func(lhs string, syms []symbol) {
		p := b.LHS(lhs)
		if len(syms) == 0 {
			p.Epsilon()
			return
		}
		for _, s := range syms {
			if s.terminal {
				p = p.T(s.name, s.tokval)
			} else {
				p = p.N(s.name)
			}
		}
		p.End()
	}

	var seqSyms func(e grammar.Element) []symbol
	var sym func(e grammar.Element) symbol

	// sym maps one element to a single grammar symbol, synthesizing a
	// helper nonterminal where the element is not atomic.
	sym = func(e grammar.Element) symbol {
		switch e := e.(type) {
		case grammar.Atom:
			lexeme := "'" + e.Text + "'"
			return symbol{name: ":" + lexeme, tokval: tokenFor(lexeme), terminal: true}
		case grammar.RuleRef:
			if isTokenName(e.Name) {
				return symbol{name: ":" + e.Name, tokval: tokenFor(e.Name), terminal: true}
			}
			return symbol{name: e.Name}
		case grammar.Optional:
			a := aux("opt")
			emit(a, seqSyms(e.Inner))
			emit(a, nil)
			return symbol{name: a}
		case grammar.Star:
			a := aux("rep0")
			emit(a, append([]symbol{{name: a}}, seqSyms(e.Inner)...))
			emit(a, nil)
			return symbol{name: a}
		case grammar.Plus:
			a := aux("rep1")
			emit(a, append([]symbol{{name: a}}, seqSyms(e.Inner)...))
			emit(a, seqSyms(e.Inner))
			return symbol{name: a}
		case grammar.Choice:
			a := aux("alt")
			for _, alternative := range e.Alternatives {
				emit(a, seqSyms(alternative))
			}
			return symbol{name: a}
		case grammar.Seq:
			a := aux("grp")
			emit(a, seqSyms(e))
			return symbol{name: a}
		}
		panic(fmt.Sprintf("bnf: unknown element type %T", e))
	}

	// seqSyms flattens a sequence into its per-element symbols.
	seqSyms = func(e grammar.Element) []symbol {
		if seq, ok := e.(grammar.Seq); ok {
			syms := make([]symbol, 0, len(seq.Elements))
			for _, el := range seq.Elements {
				syms = append(syms, sym(el))
			}
			return syms
		}
		return []symbol{sym(e)}
	}

	for _, rule := range rules {
		if choice, ok := rule.Body.(grammar.Choice); ok {
			for _, alternative := range choice.Alternatives {
				emit(rule.Name, seqSyms(alternative))
			}
			continue
		}
		emit(rule.Name, seqSyms(rule.Body))
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	T().Debugf("lowered %d rules, %d terminals, %d helper nonterminals",
		len(rules), len(tokvals), auxcnt)
	return lr.Analysis(g), nil
}

func isTokenName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

package extract

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/ebnfdoc/grammar"
	"github.com/npillmayer/ebnfdoc/syntree"
)

// ErrUnrecognizedAtom flags an atom node that is neither a quoted string
// literal, a token reference nor a rule reference. Extraction aborts on
// it; a tree containing such an atom does not conform to the expected
// grammar shape.
var ErrUnrecognizedAtom = errors.New("unrecognized atom")

// Grammar extracts the parser rules of a grammar-spec tree, in
// declaration order. Lexer rules are skipped silently. The returned
// slice is fully materialized; the input tree is not retained.
func Grammar(root *syntree.Node) ([]grammar.Rule, error) {
	if root == nil || root.Kind != syntree.GrammarSpec {
		return nil, fmt.Errorf("extract: expected a grammar spec, have %v", root)
	}
	rules := arraylist.New()
	for _, rspec := range root.Children {
		if rspec.Kind != syntree.RuleSpec {
			continue
		}
		prule := rspec.Child(syntree.ParserRuleSpec)
		if prule == nil {
			if lrule := rspec.Child(syntree.LexerRuleSpec); lrule != nil {
				T().Debugf("skipping lexer rule %s", lrule.Text)
			}
			continue
		}
		body, err := elements(prule)
		if err != nil {
			return nil, err
		}
		if len(body) == 0 {
			// cannot happen for a conforming tree; fail fast instead of
			// inventing a default body
			return nil, fmt.Errorf("extract: rule %s has no alternatives", prule.Text)
		}
		T().Debugf("extracted rule %s = %v", prule.Text, body[0])
		rules.Add(grammar.Rule{Name: prule.Text, Body: body[0]})
	}
	out := make([]grammar.Rule, 0, rules.Size())
	for _, r := range rules.Values() {
		out = append(out, r.(grammar.Rule))
	}
	return out, nil
}

// elements is the recursive fold over the syntax tree. Each call yields
// an ordered element list; sibling results concatenate, unhandled node
// kinds pass their children through unchanged.
func elements(n *syntree.Node) ([]grammar.Element, error) {
	switch n.Kind {
	case syntree.RuleAltList, syntree.AltList:
		alts, err := concatChildren(n)
		if err != nil {
			return nil, err
		}
		if len(alts) == 0 {
			return nil, fmt.Errorf("extract: %v without alternatives", n.Kind)
		}
		return []grammar.Element{grammar.NewChoice(alts)}, nil
	case syntree.Alternative:
		seq, err := concatChildren(n)
		if err != nil {
			return nil, err
		}
		if len(seq) == 0 {
			return nil, errors.New("extract: empty alternative")
		}
		return []grammar.Element{grammar.NewSeq(seq)}, nil
	case syntree.Element, syntree.Ebnf:
		return suffixed(n)
	case syntree.Block:
		if alts := n.Child(syntree.AltList); alts != nil {
			return elements(alts)
		}
		return concatChildren(n)
	case syntree.Atom:
		return atom(n)
	}
	return concatChildren(n)
}

func concatChildren(n *syntree.Node) ([]grammar.Element, error) {
	var all []grammar.Element
	for _, c := range n.Children {
		sub, err := elements(c)
		if err != nil {
			return nil, err
		}
		all = append(all, sub...)
	}
	return all, nil
}

// suffixed visits the sub-construct of an element or EBNF block and wraps
// the result according to a trailing repetition suffix, if present.
func suffixed(n *syntree.Node) ([]grammar.Element, error) {
	var result []grammar.Element
	var suffix *syntree.Node
	for _, c := range n.Children {
		if c.Kind == syntree.EbnfSuffix {
			suffix = c
			continue
		}
		sub, err := elements(c)
		if err != nil {
			return nil, err
		}
		result = append(result, sub...)
	}
	if suffix != nil {
		for i, e := range result {
			result[i] = wrap(suffix.Text, e)
		}
	}
	return result, nil
}

// wrap applies a repetition suffix lexeme. The check order PLUS, STAR,
// QUESTION makes the non-greedy suffixes "+?" and "*?" resolve to their
// repetition operator rather than to Optional.
func wrap(suffix string, e grammar.Element) grammar.Element {
	switch {
	case strings.ContainsRune(suffix, '+'):
		return grammar.Plus{Inner: e}
	case strings.ContainsRune(suffix, '*'):
		return grammar.Star{Inner: e}
	case strings.ContainsRune(suffix, '?'):
		return grammar.Optional{Inner: e}
	}
	return e
}

// atom resolves a terminal construct. Exactly one of three forms must
// match: a quoted string literal, a token reference, or a rule
// reference. Anything else aborts the extraction.
func atom(n *syntree.Node) ([]grammar.Element, error) {
	if len(n.Children) == 1 {
		c := n.Children[0]
		switch {
		case c.Kind == syntree.Terminal && isStringLiteral(c.Text):
			return []grammar.Element{grammar.Atom{Text: strings.Trim(c.Text, "'")}}, nil
		case c.Kind == syntree.Terminal && isTokenRef(c.Text):
			return []grammar.Element{grammar.RuleRef{Name: c.Text}}, nil
		case c.Kind == syntree.Ruleref:
			return []grammar.Element{grammar.RuleRef{Name: c.Text}}, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrUnrecognizedAtom, n)
}

func isStringLiteral(lexeme string) bool {
	return len(lexeme) >= 2 && lexeme[0] == '\'' && lexeme[len(lexeme)-1] == '\''
}

func isTokenRef(lexeme string) bool {
	r, _ := utf8.DecodeRuneInString(lexeme)
	return unicode.IsUpper(r)
}

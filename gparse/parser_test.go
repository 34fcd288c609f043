package gparse

import (
	"strings"
	"testing"

	"github.com/npillmayer/ebnfdoc/extract"
	"github.com/npillmayer/ebnfdoc/render"
	"github.com/npillmayer/ebnfdoc/syntree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseHeader(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tree, err := Parse(strings.NewReader("grammar Expr;"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if tree.Kind != syntree.GrammarSpec || tree.Text != "Expr" {
		t.Errorf("expected empty grammar spec named Expr, have %v", tree)
	}
}

func TestParseTreeShape(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := `
grammar Test;
expr : term ('+' term)* ;
NUMBER : [0-9]+ ;
`
	tree, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	t.Logf("tree = %v", tree)
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 rule specs, have %d", len(tree.Children))
	}
	prule := tree.Children[0].Child(syntree.ParserRuleSpec)
	if prule == nil || prule.Text != "expr" {
		t.Fatalf("expected first rule to be parser rule expr, have %v", tree.Children[0])
	}
	if alts := prule.Child(syntree.RuleAltList); alts == nil {
		t.Error("parser rule has no alternatives list")
	}
	lrule := tree.Children[1].Child(syntree.LexerRuleSpec)
	if lrule == nil || lrule.Text != "NUMBER" {
		t.Errorf("expected second rule to be lexer rule NUMBER, have %v", tree.Children[1])
	}
}

func TestParseAndRenderEBNF(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := `
grammar Test;

// a tiny expression language
expr : term ('+' term)* ;
term : NUMBER
     | '(' expr ')'
     ;

NUMBER : [0-9]+ ;
WS     : [ \t;\r\n]+ -> skip ;
`
	tree, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	rules, err := extract.Grammar(tree)
	if err != nil {
		t.Fatalf("extraction failed: %v", err)
	}
	out := render.EBNF(rules)
	want := "expr ::= term ('+' term)*\nterm ::= NUMBER | ('(' expr ')')\n"
	if out != want {
		t.Errorf("expected %q, have %q", want, out)
	}
}

func TestParseLabeledAlternatives(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := `a : 'x' # First | 'y' # Second ;`
	tree, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	prule := tree.Children[0].Child(syntree.ParserRuleSpec)
	alts := prule.Child(syntree.RuleAltList)
	if len(alts.Children) != 2 {
		t.Fatalf("expected 2 labeled alternatives, have %d", len(alts.Children))
	}
	for i, label := range []string{"First", "Second"} {
		la := alts.Children[i]
		if la.Kind != syntree.LabeledAlt || la.Text != label {
			t.Errorf("expected LabeledAlt %s, have %v", label, la)
		}
	}
}

func TestParseSuffixes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := `a : b? c+ d* e+? ;`
	tree, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	rules, err := extract.Grammar(tree)
	if err != nil {
		t.Fatalf("extraction failed: %v", err)
	}
	out := render.EBNF(rules)
	want := "a ::= b? c+ d* e+\n"
	if out != want {
		t.Errorf("expected %q, have %q", want, out)
	}
}

func TestParseErrorMissingSemi(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Parse(strings.NewReader("a : 'x'"))
	if err == nil {
		t.Error("expected a parse error for missing ';'")
	} else {
		t.Logf("err = %v", err)
	}
}

func TestParseErrorIllegalInput(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Parse(strings.NewReader("a : 'x' @ 'y' ;"))
	if err == nil {
		t.Error("expected a parse error for illegal input")
	} else {
		t.Logf("err = %v", err)
	}
}

func TestScannerTokens(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := newScanner(strings.NewReader(`name : 'lit' TOKEN | ( x )+ ;`))
	want := []tokenType{
		tokIdent, tokColon, tokString, tokTokenRef, tokPipe,
		tokLParen, tokIdent, tokRParen, tokPlus, tokSemi, tokEOF,
	}
	for i, typ := range want {
		tok := sc.NextToken()
		if tok.typ != typ {
			t.Errorf("token %d: expected %s, have %s", i, typ, tok)
		}
	}
}

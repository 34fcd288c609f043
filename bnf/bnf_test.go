package bnf

import (
	"strings"
	"testing"

	"github.com/npillmayer/ebnfdoc/extract"
	"github.com/npillmayer/ebnfdoc/gparse"
	"github.com/npillmayer/ebnfdoc/grammar"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuildPlainRules(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	rules := []grammar.Rule{
		{Name: "greeting", Body: grammar.Seq{Elements: []grammar.Element{
			grammar.Atom{Text: "hello"},
			grammar.RuleRef{Name: "name"},
		}}},
		{Name: "name", Body: grammar.RuleRef{Name: "WORD"}},
	}
	ana, err := Build("Greeting", rules)
	if err != nil {
		t.Fatalf("lowering failed: %v", err)
	}
	if ana == nil || ana.Grammar() == nil {
		t.Fatal("expected a grammar analysis")
	}
	ana.Grammar().Dump()
}

func TestBuildLowersRepetition(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	rules := []grammar.Rule{
		{Name: "list", Body: grammar.Seq{Elements: []grammar.Element{
			grammar.Atom{Text: "["},
			grammar.Optional{Inner: grammar.Seq{Elements: []grammar.Element{
				grammar.RuleRef{Name: "item"},
				grammar.Star{Inner: grammar.Seq{Elements: []grammar.Element{
					grammar.Atom{Text: ","},
					grammar.RuleRef{Name: "item"},
				}}},
			}}},
			grammar.Atom{Text: "]"},
		}}},
		{Name: "item", Body: grammar.RuleRef{Name: "NUMBER"}},
	}
	ana, err := Build("List", rules)
	if err != nil {
		t.Fatalf("lowering failed: %v", err)
	}
	if ana == nil {
		t.Fatal("expected a grammar analysis")
	}
}

func TestBuildFromGrammarSource(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := `
grammar Expr;
expr : term ('+' term)* ;
term : NUMBER | '(' expr ')' ;
NUMBER : [0-9]+ ;
`
	tree, err := gparse.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	rules, err := extract.Grammar(tree)
	if err != nil {
		t.Fatalf("extraction failed: %v", err)
	}
	ana, err := Build(tree.Text, rules)
	if err != nil {
		t.Fatalf("lowering failed: %v", err)
	}
	if ana == nil || ana.Grammar() == nil {
		t.Fatal("expected a grammar analysis")
	}
}

func TestTokenValuesStable(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rules := []grammar.Rule{
		{Name: "a", Body: grammar.Seq{Elements: []grammar.Element{
			grammar.Atom{Text: "x"},
			grammar.Atom{Text: "x"},
			grammar.Atom{Text: "y"},
		}}},
	}
	if _, err := Build("Toks", rules); err != nil {
		t.Fatalf("lowering failed: %v", err)
	}
}

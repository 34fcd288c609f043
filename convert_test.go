package ebnfdoc

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const testGrammar = `
grammar Greeting;

greeting : salutation name '!' ;
salutation : 'hello' | 'hi' ;
name : WORD+ ;

WORD : [a-zA-Z]+ ;
WS   : [ \t\r\n]+ -> skip ;
`

func TestConvertToEBNF(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var out strings.Builder
	err := Convert(strings.NewReader(testGrammar), &out, WithMode(ModeEBNF))
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	want := "greeting ::= salutation name '!'\n" +
		"salutation ::= 'hello' | 'hi'\n" +
		"name ::= WORD+\n"
	if out.String() != want {
		t.Errorf("expected %q, have %q", want, out.String())
	}
}

func TestConvertToMarkdown(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var out strings.Builder
	err := Convert(strings.NewReader(testGrammar), &out)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	text := out.String()
	t.Logf("markdown:\n%s", text)
	for _, snippet := range []string{
		"***greeting***",
		"_[salutation](#grammar-rule-salutation)_",
		"`'hello'`<br>\n | `'hi'`",
		"_[WORD](#grammar-rule-WORD)_ {_[WORD](#grammar-rule-WORD)_}",
	} {
		if !strings.Contains(text, snippet) {
			t.Errorf("expected output to contain %q", snippet)
		}
	}
	if strings.Contains(text, ":::") {
		t.Error("containers must be off by default")
	}
}

func TestConvertWithContainers(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var out strings.Builder
	err := Convert(strings.NewReader(testGrammar), &out, WithRuleContainers(true))
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if !strings.Contains(out.String(), "::: {#grammar-rule-greeting}") {
		t.Errorf("expected a named container per rule, have:\n%s", out.String())
	}
}

func TestConvertIdempotent(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var first, second strings.Builder
	if err := Convert(strings.NewReader(testGrammar), &first, WithParallelRendering(true)); err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if err := Convert(strings.NewReader(testGrammar), &second); err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if first.String() != second.String() {
		t.Error("conversion is not idempotent")
	}
}

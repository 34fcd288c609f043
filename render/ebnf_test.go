package render

import (
	"testing"

	"github.com/npillmayer/ebnfdoc/grammar"
)

func TestEBNFLineFormat(t *testing.T) {
	rules := []grammar.Rule{
		{Name: "greeting", Body: grammar.Seq{Elements: []grammar.Element{
			grammar.Atom{Text: "hello"},
			grammar.RuleRef{Name: "name"},
		}}},
		{Name: "name", Body: grammar.RuleRef{Name: "WORD"}},
	}
	out := EBNF(rules)
	want := "greeting ::= 'hello' name\nname ::= WORD\n"
	if out != want {
		t.Errorf("expected %q, have %q", want, out)
	}
}

func TestEBNFChoiceInChoice(t *testing.T) {
	rules := []grammar.Rule{
		{Name: "a", Body: grammar.Choice{Alternatives: []grammar.Element{
			grammar.Choice{Alternatives: []grammar.Element{
				grammar.Atom{Text: "a"},
				grammar.Atom{Text: "b"},
			}},
			grammar.Atom{Text: "c"},
		}}},
	}
	out := EBNF(rules)
	want := "a ::= ('a' | 'b') | 'c'\n"
	if out != want {
		t.Errorf("nested choice must keep its parentheses: %q", out)
	}
}

func TestEBNFSuffixGrouping(t *testing.T) {
	rules := []grammar.Rule{
		{Name: "a", Body: grammar.Star{Inner: grammar.Seq{Elements: []grammar.Element{
			grammar.Atom{Text: "x"},
			grammar.RuleRef{Name: "y"},
		}}}},
		{Name: "b", Body: grammar.Optional{Inner: grammar.RuleRef{Name: "y"}}},
		{Name: "c", Body: grammar.Plus{Inner: grammar.Optional{Inner: grammar.Atom{Text: "z"}}}},
	}
	out := EBNF(rules)
	want := "a ::= ('x' y)*\nb ::= y?\nc ::= 'z'?+\n"
	if out != want {
		t.Errorf("expected %q, have %q", want, out)
	}
}

func TestEBNFIdempotent(t *testing.T) {
	rules := []grammar.Rule{
		{Name: "a", Body: grammar.Choice{Alternatives: []grammar.Element{
			grammar.Atom{Text: "x"},
			grammar.Seq{Elements: []grammar.Element{
				grammar.RuleRef{Name: "b"},
				grammar.Star{Inner: grammar.Atom{Text: "y"}},
			}},
		}}},
	}
	first := EBNF(rules)
	second := EBNF(rules)
	if first != second {
		t.Errorf("rendering is not idempotent: %q vs %q", first, second)
	}
}

func TestEBNFParallelMatchesSequential(t *testing.T) {
	var rules []grammar.Rule
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		rules = append(rules, grammar.Rule{Name: name, Body: grammar.Seq{
			Elements: []grammar.Element{
				grammar.Atom{Text: name},
				grammar.Plus{Inner: grammar.RuleRef{Name: "x"}},
			}}})
	}
	sequential := EBNF(rules)
	parallel := EBNF(rules, Parallel(true))
	if sequential != parallel {
		t.Errorf("parallel rendering differs:\n%s\nvs\n%s", parallel, sequential)
	}
}

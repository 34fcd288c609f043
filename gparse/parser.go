package gparse

import (
	"fmt"
	"io"

	"github.com/npillmayer/ebnfdoc/syntree"
)

// Parse reads grammar source text and returns its concrete syntax tree.
// The root node is a GrammarSpec whose text is the declared grammar
// name, if a header is present.
func Parse(r io.Reader) (*syntree.Node, error) {
	p := &parser{sc: newScanner(r)}
	p.next()
	return p.grammarSpec()
}

// parser is a recursive-descent parser with a single token of
// lookahead, held in tok.
type parser struct {
	sc  *scanner
	tok token
}

func (p *parser) next() {
	p.tok = p.sc.NextToken()
}

func (p *parser) expect(typ tokenType) error {
	if p.tok.typ != typ {
		return p.unexpected(typ.String())
	}
	p.next()
	return nil
}

func (p *parser) unexpected(wanted string) error {
	if p.sc.LastError != nil {
		return fmt.Errorf("gparse: line %d: %v", p.tok.line, p.sc.LastError)
	}
	return fmt.Errorf("gparse: line %d: expected %s, have %s", p.tok.line, wanted, p.tok)
}

func (p *parser) grammarSpec() (*syntree.Node, error) {
	root := syntree.NewNode(syntree.GrammarSpec, "")
	if err := p.header(root); err != nil {
		return nil, err
	}
	for p.tok.typ != tokEOF {
		rule, err := p.ruleSpec()
		if err != nil {
			return nil, err
		}
		root.Append(rule)
	}
	T().Debugf("parsed grammar %s with %d rules", root.Text, len(root.Children))
	return root, nil
}

// header parses the optional declaration "grammar Name;", including the
// "parser grammar" and "lexer grammar" variants.
func (p *parser) header(root *syntree.Node) error {
	if p.tok.typ != tokIdent {
		return nil
	}
	switch p.tok.lexeme {
	case "parser", "lexer":
		p.next()
		if p.tok.typ != tokIdent || p.tok.lexeme != "grammar" {
			return p.unexpected("'grammar'")
		}
		fallthrough
	case "grammar":
		p.next()
		if p.tok.typ != tokIdent && p.tok.typ != tokTokenRef {
			return p.unexpected("grammar name")
		}
		root.Text = p.tok.lexeme
		p.next()
		return p.expect(tokSemi)
	}
	return nil
}

// ruleSpec parses one rule declaration. Parser rules get a full body
// tree; lexer rule bodies are skipped at the scanner level and leave
// only a LexerRuleSpec marker behind.
func (p *parser) ruleSpec() (*syntree.Node, error) {
	rule := syntree.NewNode(syntree.RuleSpec, "")
	switch p.tok.typ {
	case tokIdent:
		if p.tok.lexeme == "fragment" {
			p.next()
			return p.lexerRule(rule)
		}
		name := p.tok.lexeme
		p.next()
		if err := p.expect(tokColon); err != nil {
			return nil, err
		}
		alts, err := p.altList(syntree.RuleAltList, true)
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokSemi); err != nil {
			return nil, err
		}
		prule := syntree.NewNode(syntree.ParserRuleSpec, name).Append(alts)
		return rule.Append(prule), nil
	case tokTokenRef:
		return p.lexerRule(rule)
	}
	return nil, p.unexpected("rule declaration")
}

func (p *parser) lexerRule(rule *syntree.Node) (*syntree.Node, error) {
	if p.tok.typ != tokTokenRef {
		return nil, p.unexpected("lexer token name")
	}
	name := p.tok.lexeme
	p.next()
	if p.tok.typ != tokColon {
		return nil, p.unexpected("':'")
	}
	// skip the body without tokenizing it; lexer notation (sets, ranges,
	// commands) is far richer than what the parser-side token set covers
	if err := p.sc.SkipToSemi(); err != nil {
		return nil, fmt.Errorf("gparse: lexer rule %s: %v", name, err)
	}
	p.next()
	return rule.Append(syntree.NewNode(syntree.LexerRuleSpec, name)), nil
}

// altList parses alternatives separated by '|'. At rule top level
// (kind RuleAltList) each alternative may carry a '# Label' and is
// wrapped in a LabeledAlt node; inside blocks (kind AltList) the
// alternatives stay bare.
func (p *parser) altList(kind syntree.NodeKind, labeled bool) (*syntree.Node, error) {
	list := syntree.NewNode(kind, "")
	for {
		alt, err := p.alternative()
		if err != nil {
			return nil, err
		}
		if labeled {
			label := ""
			if p.tok.typ == tokHash {
				p.next()
				if p.tok.typ != tokIdent && p.tok.typ != tokTokenRef {
					return nil, p.unexpected("alternative label")
				}
				label = p.tok.lexeme
				p.next()
			}
			alt = syntree.NewNode(syntree.LabeledAlt, label).Append(alt)
		}
		list.Append(alt)
		if p.tok.typ != tokPipe {
			return list, nil
		}
		p.next()
	}
}

func (p *parser) alternative() (*syntree.Node, error) {
	alt := syntree.NewNode(syntree.Alternative, "")
	for startsElement(p.tok.typ) {
		el, err := p.element()
		if err != nil {
			return nil, err
		}
		alt.Append(el)
	}
	return alt, nil
}

func startsElement(typ tokenType) bool {
	switch typ {
	case tokIdent, tokTokenRef, tokString, tokLParen:
		return true
	}
	return false
}

// element parses one atom or parenthesized block, with an optional
// repetition suffix.
func (p *parser) element() (*syntree.Node, error) {
	el := syntree.NewNode(syntree.Element, "")
	if p.tok.typ == tokLParen {
		p.next()
		inner, err := p.altList(syntree.AltList, false)
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		block := syntree.NewNode(syntree.Block, "").Append(inner)
		ebnf := syntree.NewNode(syntree.Ebnf, "").Append(block)
		if sfx := p.suffix(); sfx != nil {
			ebnf.Append(sfx)
		}
		return el.Append(ebnf), nil
	}
	atom := syntree.NewNode(syntree.Atom, "")
	switch p.tok.typ {
	case tokString, tokTokenRef:
		atom.Append(syntree.NewNode(syntree.Terminal, p.tok.lexeme))
	case tokIdent:
		atom.Append(syntree.NewNode(syntree.Ruleref, p.tok.lexeme))
	default:
		return nil, p.unexpected("atom")
	}
	p.next()
	el.Append(atom)
	if sfx := p.suffix(); sfx != nil {
		el.Append(sfx)
	}
	return el, nil
}

// suffix parses a repetition suffix '?', '+' or '*', each optionally
// followed by a non-greedy '?'. Returns nil if the current token starts
// no suffix.
func (p *parser) suffix() *syntree.Node {
	var lexeme string
	switch p.tok.typ {
	case tokQuestion:
		lexeme = "?"
	case tokPlus:
		lexeme = "+"
	case tokStar:
		lexeme = "*"
	default:
		return nil
	}
	p.next()
	if p.tok.typ == tokQuestion {
		lexeme += "?"
		p.next()
	}
	return syntree.NewNode(syntree.EbnfSuffix, lexeme)
}

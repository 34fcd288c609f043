package gparse

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// --- Token-level scanner ----------------------------------------------------

type tokenType int8

const (
	tokEOF tokenType = iota
	tokIdent          // lower-case identifier: rule reference or keyword
	tokTokenRef       // upper-case identifier: lexer token reference
	tokString         // quoted literal; lexeme keeps the quote delimiters
	tokColon
	tokSemi
	tokPipe
	tokLParen
	tokRParen
	tokQuestion
	tokStar
	tokPlus
	tokHash
	tokIllegal
)

var tokenNames = [...]string{
	"EOF", "identifier", "token reference", "string literal", "':'",
	"';'", "'|'", "'('", "')'", "'?'", "'*'", "'+'", "'#'", "illegal input",
}

func (t tokenType) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "unknown"
	}
	return tokenNames[t]
}

type token struct {
	typ    tokenType
	lexeme string
	line   int
}

func (t token) String() string {
	if t.lexeme == "" {
		return t.typ.String()
	}
	return t.typ.String() + " " + t.lexeme
}

// scanner reads grammar source rune by rune, with a single-rune
// lookahead, and hands out tokens. Lexer rule bodies are not tokenized
// at all; the parser jumps over them with SkipToSemi.
type scanner struct {
	input     *bufio.Reader
	lookahead rune
	eof       bool
	line      int
	LastError error // last error, if any
}

func newScanner(r io.Reader) *scanner {
	sc := &scanner{input: bufio.NewReader(r), line: 1}
	sc.advance()
	return sc
}

func (sc *scanner) advance() {
	if sc.lookahead == '\n' {
		sc.line++
	}
	r, _, err := sc.input.ReadRune()
	if err != nil {
		sc.eof = true
		sc.lookahead = 0
		return
	}
	sc.lookahead = r
}

// NextToken scans the next token, skipping whitespace and comments.
func (sc *scanner) NextToken() token {
	sc.skipWhitespace()
	t := token{line: sc.line}
	if sc.eof {
		t.typ = tokEOF
		return t
	}
	r := sc.lookahead
	if r == '\'' {
		return sc.scanString()
	}
	if isNameStart(r) {
		return sc.scanName()
	}
	sc.advance()
	t.lexeme = string(r)
	switch r {
	case ':':
		t.typ = tokColon
	case ';':
		t.typ = tokSemi
	case '|':
		t.typ = tokPipe
	case '(':
		t.typ = tokLParen
	case ')':
		t.typ = tokRParen
	case '?':
		t.typ = tokQuestion
	case '*':
		t.typ = tokStar
	case '+':
		t.typ = tokPlus
	case '#':
		t.typ = tokHash
	case '/':
		if sc.skipComment() {
			return sc.NextToken()
		}
		t.typ = tokIllegal
	default:
		t.typ = tokIllegal
	}
	return t
}

func (sc *scanner) skipWhitespace() {
	for !sc.eof && unicode.IsSpace(sc.lookahead) {
		sc.advance()
	}
}

// skipComment is called with a '/' already consumed. It skips a line or
// block comment and reports whether there was one.
func (sc *scanner) skipComment() bool {
	switch sc.lookahead {
	case '/':
		for !sc.eof && sc.lookahead != '\n' {
			sc.advance()
		}
		return true
	case '*':
		sc.advance()
		var last rune
		for !sc.eof {
			if last == '*' && sc.lookahead == '/' {
				sc.advance()
				return true
			}
			last = sc.lookahead
			sc.advance()
		}
		sc.LastError = errors.New("unterminated block comment")
		return true
	}
	return false
}

func (sc *scanner) scanString() token {
	t := token{typ: tokString, line: sc.line}
	var b strings.Builder
	b.WriteByte('\'')
	sc.advance() // opening quote
	for !sc.eof {
		r := sc.lookahead
		sc.advance()
		if r == '\\' {
			b.WriteByte('\\')
			if !sc.eof {
				b.WriteRune(sc.lookahead)
				sc.advance()
			}
			continue
		}
		b.WriteRune(r)
		if r == '\'' {
			t.lexeme = b.String()
			return t
		}
	}
	sc.LastError = errors.New("unterminated string literal")
	t.typ = tokIllegal
	t.lexeme = b.String()
	return t
}

func (sc *scanner) scanName() token {
	t := token{line: sc.line}
	var b strings.Builder
	first := sc.lookahead
	for !sc.eof && isNameChar(sc.lookahead) {
		b.WriteRune(sc.lookahead)
		sc.advance()
	}
	t.lexeme = b.String()
	if unicode.IsUpper(first) {
		t.typ = tokTokenRef
	} else {
		t.typ = tokIdent
	}
	return t
}

func isNameStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isNameChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// SkipToSemi consumes raw input up to and including the next top-level
// semicolon. Strings, character sets and comments may contain
// semicolons and are skipped as units. Used to jump over lexer rule
// bodies, which are never tokenized.
func (sc *scanner) SkipToSemi() error {
	for !sc.eof {
		r := sc.lookahead
		sc.advance()
		switch r {
		case ';':
			return nil
		case '\'':
			sc.skipDelimited('\'')
		case '[':
			sc.skipDelimited(']')
		case '/':
			sc.skipComment()
		}
	}
	sc.LastError = errors.New("unterminated lexer rule")
	return sc.LastError
}

// skipDelimited consumes input up to and including the closing
// delimiter, honoring backslash escapes.
func (sc *scanner) skipDelimited(closing rune) {
	for !sc.eof {
		r := sc.lookahead
		sc.advance()
		if r == '\\' {
			if !sc.eof {
				sc.advance()
			}
			continue
		}
		if r == closing {
			return
		}
	}
}

package ebnfdoc

import (
	"io"

	"github.com/npillmayer/ebnfdoc/extract"
	"github.com/npillmayer/ebnfdoc/gparse"
	"github.com/npillmayer/ebnfdoc/render"
)

// Mode selects the output backend.
type Mode int

// Output modes. Markdown is the default.
const (
	ModeMarkdown Mode = iota
	ModeEBNF
)

// Option configures a call to Convert.
type Option func(*settings)

type settings struct {
	mode       Mode
	containers bool
	parallel   bool
}

// WithMode selects the output backend.
func WithMode(m Mode) Option {
	return func(s *settings) { s.mode = m }
}

// WithRuleContainers fences every Markdown rule block in a named
// container carrying the rule's anchor id. Ignored in EBNF mode.
func WithRuleContainers(on bool) Option {
	return func(s *settings) { s.containers = on }
}

// WithParallelRendering renders rules concurrently. Output is identical
// to sequential rendering.
func WithParallelRendering(on bool) Option {
	return func(s *settings) { s.parallel = on }
}

// Convert reads grammar source from r, extracts its parser rules and
// writes the rendered documentation to w. The conversion is stateless;
// converting the same input twice yields byte-identical output.
func Convert(r io.Reader, w io.Writer, opts ...Option) error {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	tree, err := gparse.Parse(r)
	if err != nil {
		return err
	}
	rules, err := extract.Grammar(tree)
	if err != nil {
		return err
	}
	T().Infof("converting %d grammar rules", len(rules))
	var out string
	switch s.mode {
	case ModeEBNF:
		out = render.EBNF(rules, render.Parallel(s.parallel))
	default:
		out = render.Markdown(rules, render.RuleContainers(s.containers),
			render.Parallel(s.parallel))
	}
	_, err = io.WriteString(w, out)
	return err
}

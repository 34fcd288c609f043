/*
Package ebnfdoc converts grammars into documentation.

Description

Grammar files for parser generators are a great source of truth about a
language, but they are awkward to read for anyone who is not fluent in the
particular generator's notation. Package ebnfdoc reads a grammar (in an
ANTLR-style notation), builds an internal model of its productions, and
renders the model either as a lightly structured Markdown document with
cross-linked rule references, or as canonical EBNF text.

The pipeline has four stages, each living in its own sub-package:

■ gparse: Package gparse scans and parses grammar source text into a
concrete syntax tree. Any other parser producing the same tree shape is a
valid replacement.

■ syntree: Package syntree declares the node-kind vocabulary and the tree
type which connects the frontend to the extractor.

■ extract: Package extract folds a syntax tree into a flat, ordered list
of named rules over a small algebraic element model (package grammar).

■ render: Package render holds the two output backends, one for Markdown
and one for EBNF.

Package bnf additionally lowers the extracted rule list to plain BNF
productions and hands them to the GoRGO grammar builder, so that a
documented grammar may directly seed an executable parser.

Clients who do not care about the individual stages call Convert, which
wires them together:

  f, _ := os.Open("expr.g4")
  err := ebnfdoc.Convert(f, os.Stdout, ebnfdoc.WithMode(ebnfdoc.ModeMarkdown))

The conversion is stateless and idempotent; converting the same input
twice yields byte-identical output.

Caveats

ebnfdoc does not validate grammars. Duplicate rule names, references to
undefined rules and left recursion all pass through silently; the input is
assumed to be well-formed and responsibility for checking it lies with an
upstream tool.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package ebnfdoc

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

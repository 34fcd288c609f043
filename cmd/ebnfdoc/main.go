package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/ebnfdoc"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func main() {
	mode := flag.String("mode", "markdown", "output mode [markdown|ebnf]")
	wrap := flag.Bool("containers", false, "fence each rule in a named container (markdown mode)")
	outname := flag.String("o", "", "output file (default: stdout)")
	parallel := flag.Bool("parallel", false, "render rules concurrently")
	tlevel := flag.String("trace", "Error", "trace level [Debug|Info|Error]")
	flag.Parse()

	// set up logging
	gtrace.CoreTracer = gologadapter.New()
	switch *tlevel {
	case "Debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "Info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ebnfdoc [flags] <grammar file>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	in, err := os.Open(flag.Arg(0))
	if err != nil {
		gtrace.CoreTracer.Errorf(err.Error())
		os.Exit(2)
	}
	defer in.Close()
	// grammar files saved by Windows editors may carry a BOM
	input := transform.NewReader(in, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	var out io.Writer = os.Stdout
	if *outname != "" {
		f, err := os.Create(*outname)
		if err != nil {
			gtrace.CoreTracer.Errorf(err.Error())
			os.Exit(2)
		}
		defer f.Close()
		out = f
	}

	opts := []ebnfdoc.Option{
		ebnfdoc.WithRuleContainers(*wrap),
		ebnfdoc.WithParallelRendering(*parallel),
	}
	if *mode == "ebnf" {
		opts = append(opts, ebnfdoc.WithMode(ebnfdoc.ModeEBNF))
	}
	if err := ebnfdoc.Convert(input, out, opts...); err != nil {
		gtrace.CoreTracer.Errorf(err.Error())
		os.Exit(3)
	}
}

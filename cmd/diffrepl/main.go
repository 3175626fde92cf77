/*
diffrepl is an interactive differentiating calculator over the grammar
implemented in package diff. Each line assigns a variable and evaluates a
second expression together with its derivative with respect to that
variable, e.g. "x = 5, x^2".

	diffrepl tables.json

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 The lalr1 Authors

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/go-lalr1/lalr1/examples/diff"
	"github.com/go-lalr1/lalr1/lr"
	"github.com/go-lalr1/lalr1/lr/lalr"
)

func tracer() tracing.Trace {
	return tracing.Select("diffrepl")
}

func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo)

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Please give a json parsing table file.")
		os.Exit(1)
	}
	tables, err := lr.LoadFile(flag.Arg(0))
	if err != nil {
		pterm.Error.Println(fmt.Sprintf("Could not load %q: %v", flag.Arg(0), err))
		os.Exit(1)
	}
	switch strings.ToLower(*tlevel) {
	case "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "error":
		tracer().SetTraceLevel(tracing.LevelError)
	}

	ev := diff.NewEvaluator()
	parser := lalr.New(tables, ev.Semantics())

	repl, err := readline.New("diff> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	pterm.Info.Println("Enter var = value, expr to differentiate, e.g. x = 5, x^2. Quit with <ctrl>D.")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		toks, err := diff.Tokenize(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		result, err := parser.Parse(toks)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if result == nil {
			pterm.Error.Println("no result")
			continue
		}
		d := result.Value.(diff.Dual)
		fmt.Printf("f(%s) = %v\n", ev.DiffVar, d.Val)
		fmt.Printf("∂f(%s)/∂%s = %v\n", ev.DiffVar, ev.DiffVar, d.Deriv)
	}
	println("Good bye!")
}

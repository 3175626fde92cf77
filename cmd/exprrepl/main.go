/*
exprrepl is an interactive calculator over the arithmetic expression
grammar implemented in package expr. It loads a pre-built parsing-table
artifact and evaluates one expression per line.

	exprrepl tables.json

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

	"github.com/go-lalr1/lalr1/examples/expr"
	"github.com/go-lalr1/lalr1/lr"
	"github.com/go-lalr1/lalr1/lr/lalr"
)

func tracer() tracing.Trace {
	return tracing.Select("exprrepl")
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

	ev := expr.NewEvaluator()
	parser := lalr.New(tables, ev.Semantics())

	repl, err := readline.New("expr> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	pterm.Info.Println("Enter an expression, e.g. 2*pi + sqrt(2). Quit with <ctrl>D.")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		toks, err := expr.Tokenize(line)
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
		fmt.Printf("= %v\n", result.Value)
	}
	println("Good bye!")
}

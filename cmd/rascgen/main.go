/*
rascgen reads an LALR(1) parsing-table artifact and writes the source of a
recursive-ascent parser for it, next to the input file.

	rascgen tables.json
	  -> writes tables_parser.go in the same directory

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
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"github.com/go-lalr1/lalr1/lr"
	"github.com/go-lalr1/lalr1/lr/rasc"
)

func main() {
	pkgName := flag.String("package", "", "package name for the generated parser (default: the output file's basename without .go)")
	outPath := flag.String("out", "", "output file path (default: <stem>_parser.go next to the input)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Please give a json parsing table file.")
		os.Exit(1)
	}
	tablesFileName := flag.Arg(0)

	outFileName := *outPath
	if outFileName == "" {
		outFileName = strings.TrimSuffix(tablesFileName, filepath.Ext(tablesFileName)) + "_parser.go"
	}
	pkg := *pkgName
	if pkg == "" {
		pkg = strings.TrimSuffix(filepath.Base(outFileName), ".go")
	}

	pterm.Info.Println(fmt.Sprintf("Creating parser %q -> %q.", tablesFileName, outFileName))

	tables, err := lr.LoadFile(tablesFileName)
	if err != nil {
		pterm.Error.Println(fmt.Sprintf("Could not load %q: %v", tablesFileName, err))
		os.Exit(1)
	}
	if tables.Infos != "" {
		pterm.Info.Println(tables.Infos)
	}

	out, err := os.Create(outFileName)
	if err != nil {
		pterm.Error.Println(fmt.Sprintf("Could not create %q: %v", outFileName, err))
		os.Exit(1)
	}
	defer out.Close()

	g := rasc.New(tables, pkg)
	if err := g.Generate(out); err != nil {
		pterm.Error.Println(fmt.Sprintf("Failed generating parser: %v", err))
		os.Exit(1)
	}
}

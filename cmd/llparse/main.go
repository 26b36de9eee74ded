package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/ll1"
	"github.com/npillmayer/predict/ll/loader"
	"github.com/npillmayer/predict/ll/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
)

// tracer traces with key 'predict.cli'.
func tracer() tracing.Trace {
	return tracing.Select("predict.cli")
}

var (
	flagTrace   = pflag.StringP("trace", "t", "Error", "Trace level [Debug|Info|Error]")
	flagGrammar = pflag.StringP("grammar", "g", "", "Read the grammar from a TOML or EBNF file instead of prompting for it")
	flagStart   = pflag.String("start", "", "Start symbol of an EBNF grammar (default: first production)")
	flagHTML    = pflag.String("html", "", "Export the parse table as HTML to the given file")
	flagDirect  = pflag.BoolP("direct", "d", false, "Read directly from stdin instead of going through readline")
)

// main() starts an interactive CLI, where users enter a grammar in character
// notation (or load one from a file). The CLI prints the corrected grammar,
// FIRST and FOLLOW sets and the LL(1) parse table. Afterwards users may enter
// strings to be parsed, until end of input (<ctrl>D).
func main() {
	pflag.Parse()
	initDisplay()
	level := tracing.TraceLevelFromString(*flagTrace)
	for _, key := range []string{"predict.cli", "predict.ll", "predict.ll1", "predict.scanner", "predict.loader"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	pterm.Info.Println("Welcome to the LL(1) predictive parser")
	//
	var in lineReader
	if *flagDirect {
		in = newDirectReader(os.Stdin, os.Stdout)
	} else {
		rl, err := newInteractiveReader()
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
		in = rl
	}
	defer in.Close()
	//
	ga, err := acquireAnalysis(in)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	printAnalysis(ga)
	if *flagHTML != "" {
		if err := exportHTML(ga, *flagHTML); err != nil {
			pterm.Error.Println(err.Error())
		} else {
			pterm.Info.Printfln("parse table written to %s", *flagHTML)
		}
	}
	if err := parseLoop(in, ga); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	fmt.Println("Good bye!")
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func acquireAnalysis(in lineReader) (*ll.Analysis, error) {
	if *flagGrammar != "" {
		g, err := loader.LoadFile(*flagGrammar, *flagStart)
		if err != nil {
			return nil, err
		}
		return ll.Analyse(g)
	}
	raw, err := promptGrammar(in)
	if err != nil {
		return nil, err
	}
	return ll.BuildAnalysis(raw)
}

// promptGrammar asks for the number of rules, then for every rule its
// non-terminal and right-hand side.
func promptGrammar(in lineReader) (*ll.RawGrammar, error) {
	var n int
	for {
		line, err := in.ReadLine("Enter number of rules : ")
		if err != nil {
			return nil, err
		}
		if n, err = strconv.Atoi(line); err == nil && n > 0 {
			break
		}
		pterm.Error.Printfln("not a positive number: %q", line)
	}
	raw := ll.NewRawGrammar("G")
	for i := 1; i <= n; i++ {
		lhs, err := in.ReadLine(fmt.Sprintf("Enter non-terminal %d : ", i))
		if err != nil {
			return nil, err
		}
		if lhs == "" {
			i--
			continue
		}
		rhs, err := in.ReadLine(fmt.Sprintf("%s --> ", lhs))
		if err != nil {
			return nil, err
		}
		raw.Rule(lhs, rhs)
	}
	tracer().Debugf("entered %d rules", raw.Size())
	return raw, nil
}

func exportHTML(ga *ll.Analysis, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	ll.TableAsHTML(ga.Table(), f)
	return f.Close()
}

// parseLoop reads strings to parse until end of input.
func parseLoop(in lineReader, ga *ll.Analysis) error {
	lm, err := lexmach.ForGrammar(ga.Terminals())
	if err != nil {
		return err
	}
	parser := ll1.NewParser(ga)
	for {
		line, err := in.ReadLine("Enter string for parsing : ")
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		scan, err := lm.Scanner(line)
		if err != nil {
			return err
		}
		scan.SetErrorHandler(func(e error) { tracer().Debugf("%v", e) })
		accepted, err := parser.Parse(scan)
		if err != nil {
			return err
		}
		if accepted {
			pterm.Success.Println("Successful parse")
		} else {
			pterm.Error.Println("String not accepted")
		}
	}
}

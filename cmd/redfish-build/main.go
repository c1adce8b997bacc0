/*
Redfish-build assembles an LR(1) or LALR(1) ACTION/GOTO table from a
grammar and writes it to disk as a binary blob the redfish-parse companion
tool can load.

Usage:

	redfish-build [flags] [grammar-file]

The flags are:

	-o, --out FILE
		Where to write the assembled table. Defaults to "table.bin".

	-m, --mode lalr|clr
		Which automaton construction to use. Defaults to "lalr".

	--strict-conflicts
		Fail the build instead of silently applying the default
		prefer-the-challenger resolution when a conflict matches no
		precedence chain.

	--chains FILE
		Load additional precedence chains from a TOML file, appended
		after the built-in C11 chains.

If grammar-file is omitted, the embedded C11-subset grammar is used.
*/
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/corvidae/redfish/internal/automaton"
	"github.com/corvidae/redfish/internal/cerrors"
	"github.com/corvidae/redfish/internal/cgrammar"
	"github.com/corvidae/redfish/internal/conflict"
	"github.com/corvidae/redfish/internal/grammar"
	"github.com/corvidae/redfish/internal/report"
	"github.com/corvidae/redfish/internal/table"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = 0
)

var (
	returnCode int = ExitSuccess

	outFile    *string = pflag.StringP("out", "o", "table.bin", "File to write the assembled table to")
	mode       *string = pflag.StringP("mode", "m", "lalr", "Automaton construction to use: \"lalr\" or \"clr\"")
	strict     *bool   = pflag.Bool("strict-conflicts", false, "Fail instead of defaulting unresolved conflicts to the challenger")
	chainsFile *string = pflag.String("chains", "", "TOML file of additional precedence chains")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	g, err := loadGrammar(pflag.Arg(0))
	if err != nil {
		fail(err)
		return
	}

	gPrime := g.Augmented()
	fs := grammar.ComputeFirstSets(gPrime)

	arb := conflict.NewDefault()
	arb.Strict = *strict
	if *chainsFile != "" {
		arb, err = arb.WithFileChains(*chainsFile)
		if err != nil {
			fail(err)
			return
		}
	}

	var dfa *automaton.DFA[grammar.ItemSet]
	modeLabel := "LALR(1)"
	switch *mode {
	case "lalr":
		dfa, err = automaton.NewLALR1ViablePrefixDFA(gPrime, fs)
	case "clr":
		dfa = automaton.NewLR1ViablePrefixDFA(gPrime, fs)
		modeLabel = "CLR(1)"
	default:
		fail(cerrors.GrammarMalformed("unknown mode %q, expected \"lalr\" or \"clr\"", *mode))
		return
	}
	if err != nil {
		fail(err)
		return
	}

	pt, stats, assembleErr := table.Assemble(gPrime, dfa, arb, modeLabel)

	rpt := report.NewBuildReport(pflag.Arg(0), g.Digest(), pt, stats, time.Now())
	fmt.Println(rpt.String())

	if assembleErr != nil {
		fail(assembleErr)
		return
	}

	persisted := pt.ToPersisted(g)
	if err := os.WriteFile(*outFile, table.Encode(persisted), 0644); err != nil {
		fail(err)
		return
	}

	fmt.Printf("wrote %s (%d states)\n", *outFile, stats.States)
}

func loadGrammar(path string) (*grammar.Grammar, error) {
	if path == "" {
		return cgrammar.Load(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return grammar.Parse(string(data))
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
	returnCode = cerrors.KindOf(err).ExitCode()
}

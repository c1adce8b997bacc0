/*
Redfish-parse drives a table built by redfish-build over C11-subset source,
printing the resulting parse tree.

Usage:

	redfish-parse [flags] -t TABLE [source-file]

The flags are:

	-t, --table FILE
		The binary table produced by redfish-build. Required.

	-f, --format xml|yaml|tree
		How to render the parse tree. Defaults to "tree", the indented
		ASCII-art form.

	--trace
		Print one line per parser step (shift/reduce/goto) before the
		final tree.

	-i, --interactive
		Start an interactive REPL: each line of input is parsed as a
		standalone fragment and its tree (and, with --trace, its trace)
		is printed immediately, using GNU-readline-style editing when
		connected to a terminal.

If source-file is omitted and -i is not given, source is read from stdin.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/corvidae/redfish/internal/cerrors"
	"github.com/corvidae/redfish/internal/lex"
	"github.com/corvidae/redfish/internal/parse"
	"github.com/corvidae/redfish/internal/report"
	"github.com/corvidae/redfish/internal/table"
	"github.com/corvidae/redfish/internal/tree"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = 0

	// ExitParseError indicates the requested parse did not accept its
	// input; used only in non-interactive mode, where a syntax error in
	// the lone input fragment is a CLI failure.
	ExitParseError = 5
)

var (
	returnCode int = ExitSuccess

	tableFile    *string = pflag.StringP("table", "t", "", "Binary table produced by redfish-build (required)")
	format       *string = pflag.StringP("format", "f", "tree", "Output format: \"tree\", \"xml\", or \"yaml\"")
	traceEnabled *bool   = pflag.Bool("trace", false, "Print each parser step before the resulting tree")
	interactive  *bool   = pflag.BoolP("interactive", "i", false, "Start an interactive parse REPL")
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

	if *tableFile == "" {
		fail(cerrors.TableMismatch("--table is required"))
		return
	}

	pt, err := loadTable(*tableFile)
	if err != nil {
		fail(err)
		return
	}

	lx := lex.NewC11Lexer()

	if *interactive {
		runInteractive(pt, lx)
		return
	}

	var src string
	if pflag.NArg() > 0 {
		data, err := os.ReadFile(pflag.Arg(0))
		if err != nil {
			fail(err)
			return
		}
		src = string(data)
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fail(err)
			return
		}
		src = string(data)
	}

	var listener func(string)
	if *traceEnabled {
		listener = func(msg string) { fmt.Println(msg) }
	}

	node, err := runOnce(pt, lx, src, listener)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitParseError
		return
	}
	printTree(node)
}

func loadTable(path string) (table.LRParseTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	persisted, err := table.Decode(data)
	if err != nil {
		return nil, err
	}
	return table.LoadedTable(persisted), nil
}

// runOnce lexes and parses a single fragment of source, routing parser
// trace events to listener if one is given.
func runOnce(pt table.LRParseTable, lx *lex.C11Lexer, src string, listener func(string)) (*tree.Node, error) {
	scanForTerminals, err := lx.Lex(src)
	if err != nil {
		return nil, err
	}
	terminals := collectTerminalNames(scanForTerminals)

	stream, err := lx.Lex(src)
	if err != nil {
		return nil, err
	}
	driver := parse.New(pt, terminals)
	if listener != nil {
		driver.RegisterTraceListener(listener)
	}

	return driver.Parse(stream)
}

// collectTerminalNames has no reliable way to recover the original
// grammar's terminal set from a loaded table alone, so it derives a
// sufficient set from the token classes the lexer actually produced for
// this input. Driver uses the set to decide which stack-machine buffer
// (tokens vs subtrees) a symbol's value came from during a reduce, where
// every symbol a lexer emits is by definition a terminal, and to list the
// expected tokens in a syntax error, which therefore names only token
// classes that occur in this input.
func collectTerminalNames(stream lex.TokenStream) []string {
	seen := map[string]bool{}
	var names []string
	for stream.HasNext() {
		tok, err := stream.Next()
		if err != nil {
			break
		}
		id := tok.Class().ID()
		if !seen[id] {
			seen[id] = true
			names = append(names, id)
		}
	}
	return names
}

func printTree(node *tree.Node) {
	switch *format {
	case "xml":
		fmt.Println(node.ToXML())
	case "yaml":
		out, err := node.ToYAML()
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			return
		}
		fmt.Println(out)
	default:
		fmt.Println(node.String())
	}
}

// runInteractive reads one fragment per line (using readline when stdin
// is a terminal, a raw byte reader otherwise) and immediately parses and
// prints each one, so a user can explore how the table handles different
// inputs without restarting.
func runInteractive(pt table.LRParseTable, lx *lex.C11Lexer) {
	useReadline := isatty.IsTerminal(os.Stdin.Fd())

	var rl *readline.Instance
	var err error
	if useReadline {
		rl, err = readline.NewEx(&readline.Config{Prompt: "redfish> "})
		if err != nil {
			fail(err)
			return
		}
		defer rl.Close()
	}

	for {
		var line string
		if useReadline {
			line, err = rl.Readline()
		} else {
			fmt.Print("redfish> ")
			line, err = readStdinLine()
		}
		if err != nil {
			return // EOF or interrupt ends the session
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}

		reportLog := report.NewParseReport(*tableFile, line)
		var listener func(string)
		if *traceEnabled {
			listener = reportLog.Collector()
		}

		node, parseErr := runOnce(pt, lx, line, listener)
		reportLog.Finish(parseErr)
		if *traceEnabled {
			fmt.Print(reportLog.String())
		} else if parseErr != nil {
			fmt.Printf("ERROR: %s\n", parseErr.Error())
		}
		if parseErr != nil {
			continue
		}
		printTree(node)
	}
}

func readStdinLine() (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return sb.String(), nil
			}
			sb.WriteByte(buf[0])
		}
		if err != nil {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
	returnCode = cerrors.KindOf(err).ExitCode()
}

// Package parse implements the stack-machine parse driver: given an
// assembled or reloaded LRParseTable and a token stream, it runs the
// classic shift-reduce loop and builds a concrete parse tree.
package parse

import (
	"fmt"

	"github.com/corvidae/redfish/internal/cerrors"
	"github.com/corvidae/redfish/internal/lex"
	"github.com/corvidae/redfish/internal/table"
	"github.com/corvidae/redfish/internal/tree"
	"github.com/corvidae/redfish/internal/util"
)

// TraceListener receives one message per significant step of the parse
// loop, when registered; used by the CLI's -trace flag and interactive
// REPL.
type TraceListener func(event string)

// Driver runs the LR parse algorithm over a fixed table and terminal set.
type Driver struct {
	Table     table.LRParseTable
	Terminals util.StringSet // which symbols are terminals, for distinguishing stack pops during reduce
	trace     TraceListener
}

// New returns a Driver bound to tbl. terminals must list every terminal
// name appearing in the grammar the table was built from (Grammar.Terminals()).
func New(tbl table.LRParseTable, terminals []string) *Driver {
	return &Driver{Table: tbl, Terminals: util.StringSetOf(terminals)}
}

// RegisterTraceListener installs a listener that receives one line per
// parser step. Passing nil disables tracing.
func (d *Driver) RegisterTraceListener(listener TraceListener) {
	d.trace = listener
}

func (d *Driver) notify(format string, args ...interface{}) {
	if d.trace != nil {
		d.trace(fmt.Sprintf(format, args...))
	}
}

// Parse runs Algorithm 4.44 ("LR-parsing algorithm") from the purple
// dragon book: a state stack starts at the table's initial state; at each
// step, ACTION[top-of-stack, lookahead] determines whether to shift the
// lookahead, reduce by a production (building one parse-tree node per
// reduction), accept, or report a syntax error.
func (d *Driver) Parse(stream lex.TokenStream) (*tree.Node, error) {
	stateStack := []string{d.Table.Initial()}
	var tokenBuffer []lex.Token
	var subtreeRoots []*tree.Node

	a, err := stream.Next()
	if err != nil {
		return nil, cerrors.SyntaxError("could not read first token: %v", err)
	}
	d.notify("next token: %s %q", a.Class().ID(), a.Lexeme())

	for {
		s := stateStack[len(stateStack)-1]
		d.notify("state peek: %s", s)

		act := d.Table.Action(s, a.Class().ID())
		d.notify("action: %s", act.String())

		switch act.Type {
		case table.Shift:
			tokenBuffer = append(tokenBuffer, a)
			stateStack = append(stateStack, act.State)
			d.notify("state push: %s", act.State)

			a, err = stream.Next()
			if err != nil {
				return nil, cerrors.SyntaxError("could not read next token: %v", err)
			}
			d.notify("next token: %s %q", a.Class().ID(), a.Lexeme())

		case table.Reduce:
			beta := act.Production
			children := make([]*tree.Node, len(beta))

			for i := len(beta) - 1; i >= 0; i-- {
				sym := beta[i]
				if d.Terminals.Has(sym) {
					tok := tokenBuffer[len(tokenBuffer)-1]
					tokenBuffer = tokenBuffer[:len(tokenBuffer)-1]
					children[i] = tree.Leaf(tok)
				} else {
					children[i] = subtreeRoots[len(subtreeRoots)-1]
					subtreeRoots = subtreeRoots[:len(subtreeRoots)-1]
				}
			}
			node := tree.Internal(act.Symbol, children)
			subtreeRoots = append(subtreeRoots, node)

			stateStack = stateStack[:len(stateStack)-len(beta)]

			t := stateStack[len(stateStack)-1]
			d.notify("state peek: %s", t)

			toPush, err := d.Table.Goto(t, act.Symbol)
			if err != nil {
				return nil, cerrors.InternalGoto(
					"LR parsing error: DFA has no valid transition from state %s on %q", t, act.Symbol)
			}
			stateStack = append(stateStack, toPush)
			d.notify("state push: %s", toPush)

		case table.Accept:
			return subtreeRoots[len(subtreeRoots)-1], nil

		case table.Error:
			expected := d.findExpectedTokens(s)
			return nil, cerrors.SyntaxError(
				"line %d: unexpected %s; %s", a.Line(), a.Class().Human(), expectedString(expected))
		}
	}
}

func (d *Driver) findExpectedTokens(state string) []string {
	var expected []string
	for _, term := range d.Terminals.Ordered() {
		if d.Table.Action(state, term).Type != table.Error {
			expected = append(expected, term)
		}
	}
	return expected
}

func expectedString(expected []string) string {
	if len(expected) == 0 {
		return "no further input is valid here"
	}
	return "expected " + util.MakeTextList(expected, "or")
}

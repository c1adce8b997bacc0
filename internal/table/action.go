// Package table builds and persists the ACTION/GOTO tables a parse
// driver consumes: it walks the viable-prefix automaton, proposes an
// action for every (state, terminal) cell, and calls into the conflict
// arbiter whenever two proposals land on the same cell.
package table

import (
	"fmt"

	"github.com/corvidae/redfish/internal/grammar"
)

// ActionType distinguishes the four kinds of ACTION-table entry.
type ActionType int

const (
	Error ActionType = iota
	Shift
	Reduce
	Accept
)

// Action is one ACTION-table cell's contents.
type Action struct {
	Type ActionType

	// Production and Symbol are set when Type is Reduce: reduce to Symbol
	// using Production (the β of Symbol -> β).
	Production grammar.Production
	Symbol     string

	// State is set when Type is Shift: the state to shift to.
	State string
}

func (a Action) String() string {
	switch a.Type {
	case Accept:
		return "accept"
	case Reduce:
		return fmt.Sprintf("reduce %s -> %s", a.Symbol, a.Production.String())
	case Shift:
		return fmt.Sprintf("shift %s", a.State)
	default:
		return "error"
	}
}

func (a Action) Equal(o Action) bool {
	return a.Type == o.Type && a.Production.Equal(o.Production) && a.Symbol == o.Symbol && a.State == o.State
}

package table

import (
	"fmt"

	"github.com/corvidae/redfish/internal/grammar"
	"github.com/dekarrin/rosed"
)

// String renders the ACTION/GOTO table as a fixed-width grid, one row per
// state and one column per terminal/non-terminal.
func (pt *ParseTable) String() string {
	stateNames := pt.automaton.OrderedStates()
	stateRefs := map[string]string{}
	for i, name := range stateNames {
		stateRefs[name] = fmt.Sprintf("%d", i)
	}

	allTerms := append(append([]string{}, pt.terms...), grammar.EndOfInput)

	headers := []string{"S", "|"}
	for _, t := range allTerms {
		headers = append(headers, fmt.Sprintf("A:%s", t))
	}
	headers = append(headers, "|")
	for _, nt := range pt.nonTerms {
		headers = append(headers, fmt.Sprintf("G:%s", nt))
	}

	data := [][]string{headers}

	for _, state := range stateNames {
		row := []string{stateRefs[state], "|"}

		for _, t := range allTerms {
			act := pt.Action(state, t)
			cell := ""
			switch act.Type {
			case Accept:
				cell = "acc"
			case Reduce:
				cell = fmt.Sprintf("r%s -> %s", act.Symbol, act.Production.String())
			case Shift:
				cell = fmt.Sprintf("s%s", stateRefs[act.State])
			case Error:
				// blank
			}
			row = append(row, cell)
		}

		row = append(row, "|")

		for _, nt := range pt.nonTerms {
			cell := ""
			if next, err := pt.Goto(state, nt); err == nil {
				cell = stateRefs[next]
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

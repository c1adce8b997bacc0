package conflict

import (
	"testing"

	"github.com/corvidae/redfish/internal/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_Arbiter_Resolve_BuiltinChain(t *testing.T) {
	assert := assert.New(t)

	a := NewDefault()

	declSpec := Candidate{
		Item:  grammar.LR0Item{NonTerminal: "declarationSpecifiers", Left: []string{"Identifier"}},
		Label: "shift (continue declaration)",
	}
	typedefName := Candidate{
		Item:  grammar.LR0Item{NonTerminal: "typedefName", Right: []string{"Identifier"}},
		Label: "reduce typedefName -> Identifier",
	}

	winner, err := a.Resolve(typedefName, declSpec)
	assert.NoError(err)
	assert.Equal("shift (continue declaration)", winner.Label)

	// order shouldn't matter: declSpec should win regardless of which side
	// is the incumbent.
	winner2, err := a.Resolve(declSpec, typedefName)
	assert.NoError(err)
	assert.Equal("shift (continue declaration)", winner2.Label)
}

func Test_Arbiter_Resolve_DanglingElse(t *testing.T) {
	assert := assert.New(t)

	a := NewDefault()

	// The real shift item's dot sits right after the shared "statement",
	// not after "Else" — Else is still unconsumed, in Right, not Left.
	shiftElse := Candidate{
		Item: grammar.LR0Item{
			NonTerminal: "selectionStatement",
			Left:        []string{"If", "LeftParen", "expression", "RightParen", "statement"},
			Right:       []string{"Else", "statement"},
		},
		Label: "shift Else",
	}
	reduceIf := Candidate{
		Item: grammar.LR0Item{
			NonTerminal: "selectionStatement",
			Left:        []string{"If", "LeftParen", "expression", "RightParen", "statement"},
		},
		Label: "reduce shorter if",
	}

	winner, err := a.Resolve(reduceIf, shiftElse)
	assert.NoError(err)
	assert.Equal("shift Else", winner.Label)
}

func Test_Arbiter_Resolve_NoChain_DefaultsToChallenger(t *testing.T) {
	assert := assert.New(t)

	a := NewDefault()

	x := Candidate{Item: grammar.LR0Item{NonTerminal: "X"}, Label: "x"}
	y := Candidate{Item: grammar.LR0Item{NonTerminal: "Y"}, Label: "y"}

	winner, err := a.Resolve(x, y)
	assert.NoError(err)
	assert.Equal("y", winner.Label)
}

func Test_Arbiter_Resolve_Strict_NoChainErrors(t *testing.T) {
	assert := assert.New(t)

	a := NewDefault()
	a.Strict = true

	x := Candidate{Item: grammar.LR0Item{NonTerminal: "X"}, Label: "x"}
	y := Candidate{Item: grammar.LR0Item{NonTerminal: "Y"}, Label: "y"}

	_, err := a.Resolve(x, y)
	assert.Error(err)
}

package parse

import (
	"testing"

	"github.com/corvidae/redfish/internal/automaton"
	"github.com/corvidae/redfish/internal/conflict"
	"github.com/corvidae/redfish/internal/grammar"
	"github.com/corvidae/redfish/internal/lex"
	"github.com/corvidae/redfish/internal/table"
	"github.com/stretchr/testify/assert"
)

// tokensFor lets a test drive the parser with hand-built terminal-class
// tokens instead of running the full C11 lexer, by feeding bare class
// names through a TokenStream built directly from a slice.
func tokensFor(classes []string) lex.TokenStream {
	var toks []lex.Token
	for _, c := range classes {
		toks = append(toks, lex.NewToken(lex.NewClass(c, c), c, 1))
	}
	toks = append(toks, lex.NewToken(lex.EndOfText, "", 1))
	return lex.NewSliceStream(toks)
}

func Test_Driver_Parse_ExpressionGrammar(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse("E -> E + T | T ;\nT -> T * F | F ;\nF -> ( E ) | id ;")
	gPrime := g.Augmented()
	fs := grammar.ComputeFirstSets(gPrime)
	dfa, err := automaton.NewLALR1ViablePrefixDFA(gPrime, fs)
	assert.NoError(err)

	pt, _, err := table.Assemble(gPrime, dfa, conflict.NewDefault(), "LALR(1)")
	assert.NoError(err)

	driver := New(pt, gPrime.Terminals())

	stream := tokensFor([]string{"id", "+", "id", "*", "id"})
	result, err := driver.Parse(stream)
	assert.NoError(err)
	assert.Equal("E", result.Symbol)
	assert.False(result.Terminal)
}

func Test_Driver_Parse_SyntaxError(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse("E -> E + T | T ;\nT -> T * F | F ;\nF -> ( E ) | id ;")
	gPrime := g.Augmented()
	fs := grammar.ComputeFirstSets(gPrime)
	dfa, err := automaton.NewLALR1ViablePrefixDFA(gPrime, fs)
	assert.NoError(err)

	pt, _, err := table.Assemble(gPrime, dfa, conflict.NewDefault(), "LALR(1)")
	assert.NoError(err)

	driver := New(pt, gPrime.Terminals())

	stream := tokensFor([]string{"+", "id"})
	_, err = driver.Parse(stream)
	assert.Error(err)
}

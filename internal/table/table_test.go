package table

import (
	"testing"

	"github.com/corvidae/redfish/internal/automaton"
	"github.com/corvidae/redfish/internal/conflict"
	"github.com/corvidae/redfish/internal/grammar"
	"github.com/stretchr/testify/assert"
)

func buildExpressionTable(t *testing.T) *ParseTable {
	t.Helper()
	g := grammar.MustParse("E -> E + T | T ;\nT -> T * F | F ;\nF -> ( E ) | id ;").Augmented()
	fs := grammar.ComputeFirstSets(g)
	dfa, err := automaton.NewLALR1ViablePrefixDFA(g, fs)
	if err != nil {
		t.Fatalf("unexpected LALR build error: %v", err)
	}
	pt, _, err := Assemble(g, dfa, conflict.NewDefault(), "LALR(1)")
	if err != nil {
		t.Fatalf("unexpected assemble error: %v", err)
	}
	return pt
}

func Test_Assemble_AcceptsInputIdPlusIdTimesId(t *testing.T) {
	assert := assert.New(t)

	pt := buildExpressionTable(t)

	start := pt.Initial()
	act := pt.Action(start, "id")
	assert.Equal(Shift, act.Type)
}

func Test_Assemble_String_RendersTable(t *testing.T) {
	assert := assert.New(t)

	pt := buildExpressionTable(t)
	out := pt.String()

	assert.Contains(out, "A:id")
	assert.Contains(out, "G:E")
}

func Test_Persist_RoundTrips(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse("E -> E + T | T ;\nT -> T * F | F ;\nF -> ( E ) | id ;")
	gPrime := g.Augmented()
	pt := buildExpressionTableFor(t, gPrime)

	persisted := pt.ToPersisted(gPrime)
	assert.NoError(persisted.VerifyDigest(gPrime))

	blob := Encode(persisted)
	decoded, err := Decode(blob)
	assert.NoError(err)
	assert.Equal(persisted.GrammarDigest, decoded.GrammarDigest)

	loaded := LoadedTable(decoded)
	assert.NotEmpty(loaded.Initial())
}

func Test_Assemble_StrictRejection_StillBuildsFullTable(t *testing.T) {
	assert := assert.New(t)

	// "dangling else" grammar: ambiguous without a chain covering it.
	g := grammar.MustParse(
		"S -> If E S | If E S Else S | Other ;\n" +
			"E -> e ;\n",
	)
	gPrime := g.Augmented()
	fs := grammar.ComputeFirstSets(gPrime)
	dfa, err := automaton.NewLALR1ViablePrefixDFA(gPrime, fs)
	assert.NoError(err)

	arb := &conflict.Arbiter{Strict: true} // no chains at all
	pt, stats, err := Assemble(gPrime, dfa, arb, "LALR(1)")

	assert.Error(err)
	assert.NotNil(pt)
	assert.Greater(stats.ConflictsSeen, 0)
	assert.Greater(stats.ConflictsRejected, 0)
	// every other state's entries are still populated despite the rejection
	assert.NotEmpty(pt.automaton.OrderedStates())
	for _, s := range pt.automaton.OrderedStates() {
		assert.NotEmpty(pt.action[s], "state %s has no ACTION entries", s)
	}
}

func buildExpressionTableFor(t *testing.T, gPrime *grammar.Grammar) *ParseTable {
	t.Helper()
	fs := grammar.ComputeFirstSets(gPrime)
	dfa, err := automaton.NewLALR1ViablePrefixDFA(gPrime, fs)
	if err != nil {
		t.Fatalf("unexpected LALR build error: %v", err)
	}
	pt, _, err := Assemble(gPrime, dfa, conflict.NewDefault(), "LALR(1)")
	if err != nil {
		t.Fatalf("unexpected assemble error: %v", err)
	}
	return pt
}

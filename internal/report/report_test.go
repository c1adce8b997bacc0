package report

import (
	"errors"
	"testing"
	"time"

	"github.com/corvidae/redfish/internal/automaton"
	"github.com/corvidae/redfish/internal/conflict"
	"github.com/corvidae/redfish/internal/grammar"
	"github.com/corvidae/redfish/internal/table"
	"github.com/stretchr/testify/assert"
)

func buildSmallTable(t *testing.T) (*table.ParseTable, *table.Stats, *grammar.Grammar) {
	t.Helper()
	g := grammar.MustParse("S -> a | ε ;")
	gPrime := g.Augmented()
	fs := grammar.ComputeFirstSets(gPrime)
	dfa := automaton.NewLR1ViablePrefixDFA(gPrime, fs)
	pt, stats, err := table.Assemble(gPrime, dfa, conflict.NewDefault(), "CLR(1)")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	return pt, stats, g
}

func Test_NewBuildReport_String(t *testing.T) {
	assert := assert.New(t)

	pt, stats, g := buildSmallTable(t)
	rpt := NewBuildReport("S-grammar", g.Digest(), pt, stats, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.NotEmpty(rpt.ID)
	assert.Equal("CLR(1)", rpt.Mode)
	assert.Equal(stats.States, rpt.States)
	assert.Contains(rpt.String(), "grammar digest")
	assert.Contains(rpt.String(), "S-grammar")
}

func Test_ParseReport_Collector_RecordsTraceInOrder(t *testing.T) {
	assert := assert.New(t)

	r := NewParseReport("build-1", "a")
	collect := r.Collector()
	collect("first")
	collect("second")

	assert.Len(r.Trace, 2)
	assert.Equal(1, r.Trace[0].Seq)
	assert.Equal("first", r.Trace[0].Message)
	assert.Equal(2, r.Trace[1].Seq)
	assert.Equal("second", r.Trace[1].Message)
}

func Test_ParseReport_Finish_Accepted(t *testing.T) {
	assert := assert.New(t)

	r := NewParseReport("build-1", "a")
	r.Finish(nil)

	assert.True(r.Accepted)
	assert.Empty(r.Error)
	assert.Contains(r.String(), "ACCEPT")
}

func Test_ParseReport_Finish_Error(t *testing.T) {
	assert := assert.New(t)

	r := NewParseReport("build-1", "a")
	r.Finish(errors.New("unexpected token"))

	assert.False(r.Accepted)
	assert.Equal("unexpected token", r.Error)
	assert.Contains(r.String(), "ERROR: unexpected token")
}

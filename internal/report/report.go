// Package report builds the structured build/parse reports the CLI prints
// alongside a table build or a parse run: a summary of the states and
// conflicts seen while assembling a table, or the sequence of trace
// events emitted while driving a parse.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/corvidae/redfish/internal/table"
	"github.com/dekarrin/rosed"
	"github.com/google/uuid"
)

// TraceEvent is one step of a parse run, as emitted by parse.Driver's
// TraceListener, captured for later rendering.
type TraceEvent struct {
	Seq     int
	Message string
}

// BuildReport summarizes one invocation of table.Assemble: how many states
// the automaton has, how many conflicts the arbiter saw and resolved, and
// a randomly generated identifier for the build. The identifier appears
// only in the report; the persisted table does not record it.
type BuildReport struct {
	ID                string
	Grammar           string
	Mode              string
	GrammarDigest     uint64
	States            int
	ConflictsSeen     int
	ConflictsResolved int
	ConflictsRejected int
	GeneratedAt       string
}

// NewBuildReport assembles a BuildReport from the result of table.Assemble.
// generatedAt is passed in rather than read from the clock here so callers
// (and tests) control the timestamp.
func NewBuildReport(grammarName string, digest uint64, pt *table.ParseTable, stats *table.Stats, generatedAt time.Time) *BuildReport {
	return &BuildReport{
		ID:                uuid.NewString(),
		Grammar:           grammarName,
		Mode:              pt.Mode,
		GrammarDigest:     digest,
		States:            stats.States,
		ConflictsSeen:     stats.ConflictsSeen,
		ConflictsResolved: stats.ConflictsResolved,
		ConflictsRejected: stats.ConflictsRejected,
		GeneratedAt:       generatedAt.UTC().Format(time.RFC3339),
	}
}

// String renders the report as an aligned two-column table, in the same
// rosed.InsertTableOpts style the table package uses to render ACTION/GOTO
// tables.
func (r *BuildReport) String() string {
	rows := [][]string{
		{"build id", r.ID},
		{"grammar", r.Grammar},
		{"mode", r.Mode},
		{"grammar digest", fmt.Sprintf("%016x", r.GrammarDigest)},
		{"states", fmt.Sprintf("%d", r.States)},
		{"conflicts seen", fmt.Sprintf("%d", r.ConflictsSeen)},
		{"conflicts resolved", fmt.Sprintf("%d", r.ConflictsResolved)},
		{"conflicts rejected", fmt.Sprintf("%d", r.ConflictsRejected)},
		{"generated at", r.GeneratedAt},
	}
	return rosed.Edit("").
		InsertTableOpts(0, rows, 10, rosed.Options{NoTrailingLineSeparators: true}).
		String()
}

// ParseReport summarizes one parse run: the build it was parsed against,
// whether it succeeded, and the full trace if one was captured.
type ParseReport struct {
	ID       string
	BuildID  string
	Input    string
	Accepted bool
	Error    string
	Trace    []TraceEvent
}

// NewParseReport starts a ParseReport for a parse of input against the
// table identified by buildID.
func NewParseReport(buildID, input string) *ParseReport {
	return &ParseReport{ID: uuid.NewString(), BuildID: buildID, Input: input}
}

// Collector returns a parse.TraceListener-compatible function that appends
// each message it receives to the report, numbering events as they arrive.
func (r *ParseReport) Collector() func(string) {
	return func(msg string) {
		r.Trace = append(r.Trace, TraceEvent{Seq: len(r.Trace) + 1, Message: msg})
	}
}

// Finish records the outcome of the parse this report was tracking.
func (r *ParseReport) Finish(err error) {
	if err == nil {
		r.Accepted = true
		return
	}
	r.Accepted = false
	r.Error = err.Error()
}

// String renders the trace as a numbered list followed by a one-line
// outcome summary.
func (r *ParseReport) String() string {
	var sb strings.Builder
	for _, ev := range r.Trace {
		fmt.Fprintf(&sb, "%4d  %s\n", ev.Seq, ev.Message)
	}
	if r.Accepted {
		sb.WriteString("ACCEPT\n")
	} else {
		fmt.Fprintf(&sb, "ERROR: %s\n", r.Error)
	}
	return sb.String()
}

package table

import (
	"fmt"

	"github.com/corvidae/redfish/internal/cerrors"
	"github.com/corvidae/redfish/internal/grammar"
	"github.com/corvidae/redfish/internal/util"
	"github.com/dekarrin/rezi"
)

// FormatVersion is bumped whenever the persisted shape changes
// incompatibly. Persisted.VerifyDigest rejects a blob whose version
// differs from this one; Decode and LoadedTable do not check it.
const FormatVersion = 1

// actionRecord and gotoRecord are the wire shapes rezi serializes; they
// avoid persisting by state *name* (which is an internal, order-dependent
// detail of how the automaton was built) and instead key everything by the
// automaton's stable numeric state index.
type actionRecord struct {
	State      uint64
	Terminal   string
	Type       int
	Symbol     string
	Production []string
	TargetState uint64
}

type gotoRecord struct {
	State       uint64
	NonTerminal string
	TargetState uint64
}

// Persisted is the on-disk shape of a built table: format/grammar version
// info plus the ACTION/GOTO tables in index-keyed form.
type Persisted struct {
	FormatVersion  int
	GrammarDigest  uint64
	Mode           string
	StateCount     int
	Terminals      []string
	NonTerminals   []string
	StartState     uint64
	Actions        []actionRecord
	Gotos          []gotoRecord
}

// ToPersisted converts an assembled ParseTable into its wire form, tagging
// it with g's digest so a later Load can detect a stale table.
func (pt *ParseTable) ToPersisted(g *grammar.Grammar) *Persisted {
	p := &Persisted{
		FormatVersion: FormatVersion,
		GrammarDigest: g.Digest(),
		Mode:          pt.Mode,
		StateCount:    len(pt.automaton.States()),
		Terminals:     pt.terms,
		NonTerminals:  pt.nonTerms,
		StartState:    pt.automaton.StateIndex(pt.automaton.Start),
	}

	indexOf := func(state string) uint64 { return pt.automaton.StateIndex(state) }

	for _, state := range pt.automaton.OrderedStates() {
		si := indexOf(state)
		for _, term := range util.OrderedKeys(pt.action[state]) {
			act := pt.action[state][term]
			rec :=actionRecord{State: si, Terminal: term, Type: int(act.Type), Symbol: act.Symbol, Production: []string(act.Production)}
			if act.Type == Shift {
				rec.TargetState = indexOf(act.State)
			}
			p.Actions = append(p.Actions, rec)
		}
		for _, nt := range util.OrderedKeys(pt.goTo[state]) {
			target := pt.goTo[state][nt]
			p.Gotos = append(p.Gotos, gotoRecord{State: si, NonTerminal: nt, TargetState: indexOf(target)})
		}
	}

	return p
}

// Encode serializes p to a binary blob via rezi's reflection-based binary
// encoding.
func Encode(p *Persisted) []byte {
	return rezi.EncBinary(p)
}

// Decode deserializes a binary blob produced by Encode.
func Decode(data []byte) (*Persisted, error) {
	p := &Persisted{}
	if _, err := rezi.DecBinary(data, p); err != nil {
		return nil, cerrors.Wrap(cerrors.KindTableMismatch, err, "could not decode persisted table: %v", err)
	}
	return p, nil
}

// VerifyDigest checks that a persisted table was built from the grammar g,
// returning a TableMismatch error otherwise.
func (p *Persisted) VerifyDigest(g *grammar.Grammar) error {
	if p.FormatVersion != FormatVersion {
		return cerrors.TableMismatch("persisted table format version %d, expected %d", p.FormatVersion, FormatVersion)
	}
	if p.GrammarDigest != g.Digest() {
		return cerrors.TableMismatch("persisted table was built from a different grammar (digest mismatch)")
	}
	return nil
}

// indexedTable adapts a Persisted blob back into something the parse
// driver can call Action/Goto/Initial on, without needing the original
// automaton or grammar in memory.
type indexedTable struct {
	p          *Persisted
	stateNames []string // index -> synthetic name "s<N>"
	action     map[string]map[string]Action
	goTo       map[string]map[string]string
}

// ToLoadedTable rebuilds a queryable table from a decoded Persisted blob.
func ToLoadedTable(p *Persisted) *indexedTable {
	lt := &indexedTable{
		p:      p,
		action: map[string]map[string]Action{},
		goTo:   map[string]map[string]string{},
	}
	name := func(i uint64) string {
		return stateIndexName(i)
	}
	for i := 0; i < p.StateCount; i++ {
		lt.stateNames = append(lt.stateNames, name(uint64(i)))
	}
	for _, rec := range p.Actions {
		s := name(rec.State)
		if lt.action[s] == nil {
			lt.action[s] = map[string]Action{}
		}
		act := Action{Type: ActionType(rec.Type), Symbol: rec.Symbol, Production: grammar.Production(rec.Production)}
		if act.Type == Shift {
			act.State = name(rec.TargetState)
		}
		lt.action[s][rec.Terminal] = act
	}
	for _, rec := range p.Gotos {
		s := name(rec.State)
		if lt.goTo[s] == nil {
			lt.goTo[s] = map[string]string{}
		}
		lt.goTo[s][rec.NonTerminal] = name(rec.TargetState)
	}
	return lt
}

func stateIndexName(i uint64) string {
	return "s" + itoa(i)
}

func itoa(i uint64) string {
	if i == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[pos:])
}

func (lt *indexedTable) Initial() string { return stateIndexName(lt.p.StartState) }

func (lt *indexedTable) String() string {
	return fmt.Sprintf("<loaded %s table: %d states, %d actions, %d gotos>",
		lt.p.Mode, lt.p.StateCount, len(lt.p.Actions), len(lt.p.Gotos))
}

func (lt *indexedTable) Action(state, terminal string) Action {
	row, ok := lt.action[state]
	if !ok {
		return Action{Type: Error}
	}
	act, ok := row[terminal]
	if !ok {
		return Action{Type: Error}
	}
	return act
}

func (lt *indexedTable) Goto(state, nonTerminal string) (string, error) {
	row, ok := lt.goTo[state]
	if !ok {
		return "", cerrors.InternalGoto("no GOTO row for state %q", state)
	}
	next, ok := row[nonTerminal]
	if !ok {
		return "", cerrors.InternalGoto("GOTO[%q, %q] is undefined", state, nonTerminal)
	}
	return next, nil
}

// Package automaton builds the viable-prefix DFA that the table package
// turns into ACTION/GOTO entries: either the canonical LR(1) collection of
// item sets, or its LALR(1) core-merged reduction.
package automaton

import (
	"fmt"
	"sort"

	"github.com/corvidae/redfish/internal/util"
)

// DFA is a generic deterministic finite automaton whose states carry an
// arbitrary value of type E (an item set, for the automata this package
// builds). States are identified by string name; Start names the initial
// state. Each state also records an ordering index, assigned by
// NumberStates, so that rendering and persistence can iterate states in a
// reproducible order regardless of Go map iteration order.
type DFA[E any] struct {
	states      map[string]*dfaState[E]
	Start       string
	nextOrder   uint64
}

type dfaState[E any] struct {
	value       E
	accepting   bool
	transitions map[string]string // input symbol -> next state name
	order       uint64
}

// NewDFA returns an empty DFA.
func NewDFA[E any]() *DFA[E] {
	return &DFA[E]{states: map[string]*dfaState[E]{}}
}

// AddState inserts a new state named name holding value, if it does not
// already exist. Calling it again on an existing state is a no-op for the
// state's identity (its order is preserved) but does not update the
// stored value; use SetValue for that.
func (d *DFA[E]) AddState(name string, value E) {
	if _, ok := d.states[name]; ok {
		return
	}
	d.states[name] = &dfaState[E]{
		value:       value,
		transitions: map[string]string{},
		order:       d.nextOrder,
	}
	d.nextOrder++
}

// HasState reports whether name is a known state.
func (d *DFA[E]) HasState(name string) bool {
	_, ok := d.states[name]
	return ok
}

// SetValue overwrites the value stored at state name.
func (d *DFA[E]) SetValue(name string, value E) {
	if st, ok := d.states[name]; ok {
		st.value = value
	}
}

// GetValue returns the value stored at state name.
func (d *DFA[E]) GetValue(name string) E {
	return d.states[name].value
}

// SetAccepting marks state name as an accepting state.
func (d *DFA[E]) SetAccepting(name string, accepting bool) {
	if st, ok := d.states[name]; ok {
		st.accepting = accepting
	}
}

// IsAccepting reports whether state name is an accepting state.
func (d *DFA[E]) IsAccepting(name string) bool {
	st, ok := d.states[name]
	return ok && st.accepting
}

// AddTransition records that reading input in state from moves to state
// to. Both states must already exist.
func (d *DFA[E]) AddTransition(from, input, to string) {
	d.states[from].transitions[input] = to
}

// RemoveTransition deletes the transition on input out of from, if any.
func (d *DFA[E]) RemoveTransition(from, input string) {
	delete(d.states[from].transitions, input)
}

// Next returns the state reached from state on input, or "" if no such
// transition exists.
func (d *DFA[E]) Next(state, input string) string {
	st, ok := d.states[state]
	if !ok {
		return ""
	}
	return st.transitions[input]
}

// Transitions returns a copy of the outbound transition map of state.
func (d *DFA[E]) Transitions(state string) map[string]string {
	out := map[string]string{}
	for k, v := range d.states[state].transitions {
		out[k] = v
	}
	return out
}

// RemoveState deletes state name and any transitions pointing to it.
func (d *DFA[E]) RemoveState(name string) {
	delete(d.states, name)
	for _, st := range d.states {
		for input, target := range st.transitions {
			if target == name {
				delete(st.transitions, input)
			}
		}
	}
}

// AllTransitionsTo returns, for every state with a transition into target,
// the pair of (fromState, inputSymbol).
func (d *DFA[E]) AllTransitionsTo(target string) [][2]string {
	var out [][2]string
	for _, from := range util.OrderedKeys(d.states) {
		st := d.states[from]
		for _, input := range util.OrderedKeys(st.transitions) {
			if st.transitions[input] == target {
				out = append(out, [2]string{from, input})
			}
		}
	}
	return out
}

// States returns all state names, in no particular order; use
// OrderedStates for a deterministic listing.
func (d *DFA[E]) States() []string {
	out := make([]string, 0, len(d.states))
	for k := range d.states {
		out = append(out, k)
	}
	return out
}

// OrderedStates returns state names ordered by their assignment order
// (NumberStates / AddState insertion order), with Start always first.
func (d *DFA[E]) OrderedStates() []string {
	names := make([]string, 0, len(d.states))
	for k := range d.states {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == d.Start {
			return true
		}
		if names[j] == d.Start {
			return false
		}
		return d.states[names[i]].order < d.states[names[j]].order
	})
	return names
}

// NumberStates reassigns each state's ordering index based on a
// breadth-first walk from Start, so that two DFAs built from the same
// grammar always number their states identically regardless of the
// nondeterministic order map iteration produced them in, so two builds of
// the same grammar always number states identically.
func (d *DFA[E]) NumberStates() {
	if d.Start == "" {
		return
	}
	visited := map[string]bool{d.Start: true}
	queue := []string{d.Start}
	var order uint64
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d.states[cur].order = order
		order++
		for _, input := range util.OrderedKeys(d.states[cur].transitions) {
			next := d.states[cur].transitions[input]
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	d.nextOrder = order
}

// StateIndex returns the ordering index assigned to state, for use as a
// compact integer key by the table package.
func (d *DFA[E]) StateIndex(state string) uint64 {
	return d.states[state].order
}

func (d *DFA[E]) String() string {
	var out string
	for _, name := range d.OrderedStates() {
		out += fmt.Sprintf("%d: %v\n", d.states[name].order, d.states[name].value)
	}
	return out
}

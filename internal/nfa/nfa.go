// Package nfa implements C2 (Thompson's construction from postfix) and C3
// (combining per-token NFAs under a shared start), plus the optional C8
// direct NFA simulator. States are owned exclusively by the Automaton that
// contains them (spec §3 lifecycles) — once a combinator consumes two
// sub-automata their original State slices are discarded, never reused.
package nfa

import "github.com/dogmalang/lexgen/internal/lexerr"

// epsilonRune is the regex-level operand that matches the empty string when
// written literally in a pattern (distinct from the epsilon *transition*
// marker, which has no rune at all — see Transition.Epsilon).
const epsilonRune = 'ε'

// Transition is a single outgoing edge: either labeled by a character, or
// an ε-transition (taken without consuming input).
type Transition struct {
	Epsilon bool
	Symbol  rune
	To      int
}

// State is a single NFA state. Identity is by ID only — spec §9 explicitly
// rejects by-value equality on states, since the automaton graph is cyclic.
type State struct {
	ID          int
	Transitions []Transition
	Final       bool
	TokenID     string
	HasToken    bool
	// Priority is the token's position in the assembler's input ordering;
	// lower wins scanning ties (spec §4.3, §4.6). Meaningless unless
	// HasToken is set.
	Priority int
}

// Automaton is an arena of States plus a distinguished Start and End state.
// The id counter is owned by the Automaton instance, never a package
// global, so independent builders never collide (spec §5, §9).
type Automaton struct {
	States []*State
	Start  int
	End    int
}

// New returns an empty automaton with no states yet allocated.
func New() *Automaton {
	return &Automaton{}
}

func (a *Automaton) newState() *State {
	s := &State{ID: len(a.States)}
	a.States = append(a.States, s)
	return s
}

// AddTransition adds a character transition from -> to.
func (a *Automaton) AddTransition(from int, symbol rune, to int) {
	a.States[from].Transitions = append(a.States[from].Transitions, Transition{Symbol: symbol, To: to})
}

// AddEpsilonTransition adds an ε-transition from -> to.
func (a *Automaton) AddEpsilonTransition(from, to int) {
	a.States[from].Transitions = append(a.States[from].Transitions, Transition{Epsilon: true, To: to})
}

// fragment is a partially-built NFA piece on the construction stack: a
// start state id and an end (currently-final) state id.
type fragment struct {
	start int
	end   int
}

// BuildFromPostfix runs Thompson's construction over a postfix regular
// expression (spec §4.2). On success the returned automaton's Start/End are
// set to the sole fragment left on the stack. An operator applied with too
// few operands on the stack is a MalformedRegexError, and so is any other
// stack depth at end-of-input — zero (an empty expression) or more than one
// (operands never joined by an operator).
func BuildFromPostfix(postfix string) (*Automaton, error) {
	a := New()
	var stack []fragment

	pop2 := func() (left, right fragment, ok bool) {
		if len(stack) < 2 {
			return fragment{}, fragment{}, false
		}
		right = stack[len(stack)-1]
		left = stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		return left, right, true
	}
	pop1 := func() (top fragment, ok bool) {
		if len(stack) < 1 {
			return fragment{}, false
		}
		top = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top, true
	}

	for _, c := range postfix {
		switch c {
		case '.':
			left, right, ok := pop2()
			if !ok {
				return nil, &lexerr.MalformedRegexError{Regex: postfix, Reason: "concatenation operator with fewer than two operands"}
			}
			a.States[left.end].Final = false
			a.AddEpsilonTransition(left.end, right.start)
			stack = append(stack, fragment{left.start, right.end})

		case '|':
			left, right, ok := pop2()
			if !ok {
				return nil, &lexerr.MalformedRegexError{Regex: postfix, Reason: "union operator with fewer than two operands"}
			}
			ns, ne := a.newState(), a.newState()
			a.AddEpsilonTransition(ns.ID, left.start)
			a.AddEpsilonTransition(ns.ID, right.start)
			a.AddEpsilonTransition(left.end, ne.ID)
			a.AddEpsilonTransition(right.end, ne.ID)
			a.States[left.end].Final = false
			a.States[right.end].Final = false
			ne.Final = true
			stack = append(stack, fragment{ns.ID, ne.ID})

		case '*':
			top, ok := pop1()
			if !ok {
				return nil, &lexerr.MalformedRegexError{Regex: postfix, Reason: "'*' applied with no operand"}
			}
			ns, ne := a.newState(), a.newState()
			a.AddEpsilonTransition(top.end, top.start)
			a.AddEpsilonTransition(top.end, ne.ID)
			a.AddEpsilonTransition(ns.ID, ne.ID)
			a.AddEpsilonTransition(ns.ID, top.start)
			a.States[top.end].Final = false
			ne.Final = true
			stack = append(stack, fragment{ns.ID, ne.ID})

		case '+':
			top, ok := pop1()
			if !ok {
				return nil, &lexerr.MalformedRegexError{Regex: postfix, Reason: "'+' applied with no operand"}
			}
			ns, ne := a.newState(), a.newState()
			a.AddEpsilonTransition(ns.ID, top.start)
			a.AddEpsilonTransition(top.end, top.start)
			a.AddEpsilonTransition(top.end, ne.ID)
			a.States[top.end].Final = false
			ne.Final = true
			stack = append(stack, fragment{ns.ID, ne.ID})

		case '?':
			top, ok := pop1()
			if !ok {
				return nil, &lexerr.MalformedRegexError{Regex: postfix, Reason: "'?' applied with no operand"}
			}
			ns, ne := a.newState(), a.newState()
			a.AddEpsilonTransition(ns.ID, top.start)
			a.AddEpsilonTransition(top.end, ne.ID)
			a.AddEpsilonTransition(ns.ID, ne.ID)
			a.States[top.end].Final = false
			ne.Final = true
			stack = append(stack, fragment{ns.ID, ne.ID})

		case epsilonRune:
			s, e := a.newState(), a.newState()
			a.AddEpsilonTransition(s.ID, e.ID)
			e.Final = true
			stack = append(stack, fragment{s.ID, e.ID})

		default:
			s, e := a.newState(), a.newState()
			a.AddTransition(s.ID, c, e.ID)
			e.Final = true
			stack = append(stack, fragment{s.ID, e.ID})
		}
	}

	if len(stack) != 1 {
		return nil, &lexerr.MalformedRegexError{Regex: postfix, Reason: "postfix expression does not reduce to a single automaton"}
	}

	a.Start = stack[0].start
	a.End = stack[0].end
	return a, nil
}

package nfa

// EpsilonClosure returns the smallest superset of states closed under
// ε-transitions, computed via a DFS stack that adds a state only the first
// time it is seen (spec §4.4).
func EpsilonClosure(a *Automaton, states map[int]struct{}) map[int]struct{} {
	closure := make(map[int]struct{}, len(states))
	stack := make([]int, 0, len(states))
	for id := range states {
		closure[id] = struct{}{}
		stack = append(stack, id)
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range a.States[id].Transitions {
			if !t.Epsilon {
				continue
			}
			if _, seen := closure[t.To]; !seen {
				closure[t.To] = struct{}{}
				stack = append(stack, t.To)
			}
		}
	}
	return closure
}

// Move returns the set of states reachable from any state in `states` by a
// single transition on c (ε-transitions are not followed).
func Move(a *Automaton, states map[int]struct{}, c rune) map[int]struct{} {
	out := make(map[int]struct{})
	for id := range states {
		for _, t := range a.States[id].Transitions {
			if t.Epsilon || t.Symbol != c {
				continue
			}
			out[t.To] = struct{}{}
		}
	}
	return out
}

// Accepts is the C8 direct NFA acceptance check: it simulates the NFA by
// repeated ε-closure + move over each input character, without ever
// constructing a DFA. Used by tests to validate NFA/DFA equivalence (spec
// §8).
func Accepts(a *Automaton, input string) bool {
	current := EpsilonClosure(a, map[int]struct{}{a.Start: {}})
	for _, c := range input {
		moved := Move(a, current, c)
		if len(moved) == 0 {
			return false
		}
		current = EpsilonClosure(a, moved)
	}
	for id := range current {
		if a.States[id].Final {
			return true
		}
	}
	return false
}

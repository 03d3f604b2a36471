package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dogmalang/lexgen/internal/nfa"
)

// setKey canonicalizes a set of NFA state ids into a string so previously
// seen DFA states can be recognized by the NFA-state set they represent,
// independent of discovery order.
func setKey(set map[int]struct{}) string {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// resolveAccepting inspects the NFA states a DFA state represents and
// returns whether it is final and, if so, the token id and priority of the
// highest-priority (lowest Priority value) tagged accept state it contains
// (spec §4.4 final-state propagation). The priority is carried on the
// resulting dfa.State so that minimization can re-resolve ties correctly
// when it later merges DFA states together (spec §4.5 step 4).
func resolveAccepting(a *nfa.Automaton, set map[int]struct{}) (final bool, tokenID string, hasToken bool, priority int) {
	bestPriority := -1
	for id := range set {
		s := a.States[id]
		if s.Final {
			final = true
		}
		if s.HasToken {
			if !hasToken || s.Priority < bestPriority {
				hasToken = true
				bestPriority = s.Priority
				tokenID = s.TokenID
			}
		}
	}
	return final, tokenID, hasToken, bestPriority
}

// SubsetConstruct converts an NFA into a DFA via ε-closure and move (spec
// §4.4). Transitions are only materialized for characters in alphabet;
// inputs outside it are a scan-time failure, not a construction-time one.
func SubsetConstruct(n *nfa.Automaton, alphabet map[rune]struct{}) *Automaton {
	startSet := nfa.EpsilonClosure(n, map[int]struct{}{n.Start: {}})

	dfaStates := []*State{}
	keyToID := make(map[string]int)

	makeState := func(set map[int]struct{}) int {
		key := setKey(set)
		if id, ok := keyToID[key]; ok {
			return id
		}
		id := len(dfaStates)
		final, tokenID, hasToken, priority := resolveAccepting(n, set)
		dfaStates = append(dfaStates, &State{
			ID:          id,
			NFAStates:   set,
			Transitions: make(map[rune]int),
			Final:       final,
			TokenID:     tokenID,
			HasToken:    hasToken,
			Priority:    priority,
		})
		keyToID[key] = id
		return id
	}

	startID := makeState(startSet)

	worklist := []int{startID}
	processed := make(map[int]bool)

	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]
		if processed[id] {
			continue
		}
		processed[id] = true

		current := dfaStates[id]
		for c := range alphabet {
			moved := nfa.Move(n, current.NFAStates, c)
			if len(moved) == 0 {
				continue
			}
			closure := nfa.EpsilonClosure(n, moved)
			targetID := makeState(closure)
			current.Transitions[c] = targetID
			if !processed[targetID] {
				worklist = append(worklist, targetID)
			}
		}
	}

	return &Automaton{Start: startID, States: dfaStates}
}

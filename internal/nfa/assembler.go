package nfa

import "github.com/dogmalang/lexgen/internal/shuntingyard"

// TokenDefinition names a token and its regular expression. Priority is
// implicit in its position within the slice passed to BuildCombined (spec
// §4.3, §4.6): earlier entries win scanning ties.
type TokenDefinition struct {
	TokenID string
	Regex   string
}

// renumbered returns a copy of src with every state id shifted by offset,
// ready to be merged into a larger arena. Grounded on the offset-merge
// technique used to combine per-pattern NFAs before subset construction —
// each sub-automaton is renumbered once, then its states are appended
// wholesale into the combined arena.
func renumbered(src *Automaton, offset int) *Automaton {
	out := &Automaton{
		States: make([]*State, len(src.States)),
		Start:  src.Start + offset,
		End:    src.End + offset,
	}
	for i, s := range src.States {
		ns := &State{
			ID:       s.ID + offset,
			Final:    s.Final,
			TokenID:  s.TokenID,
			HasToken: s.HasToken,
			Priority: s.Priority,
		}
		ns.Transitions = make([]Transition, len(s.Transitions))
		for j, t := range s.Transitions {
			nt := t
			nt.To += offset
			ns.Transitions[j] = nt
		}
		out.States[i] = ns
	}
	return out
}

// BuildCombined implements C3: it compiles each token's regex through
// ShuntingYard + Thompson's construction (C1 + C2), tags its accepting end
// state with the token's id, and joins every per-token automaton under one
// fresh shared start state via ε-transitions. The combined automaton's
// accepting set is the union of every per-token end state — there is no
// single accepting state (spec §4.3).
func BuildCombined(tokens []TokenDefinition) (*Automaton, error) {
	combined := New()
	start := combined.newState()
	combined.Start = start.ID

	for priority, tok := range tokens {
		postfix, err := shuntingyard.ToPostfix(tok.Regex)
		if err != nil {
			return nil, err
		}
		sub, err := BuildFromPostfix(postfix)
		if err != nil {
			return nil, err
		}
		sub.States[sub.End].TokenID = tok.TokenID
		sub.States[sub.End].HasToken = true
		sub.States[sub.End].Priority = priority

		offset := len(combined.States)
		renumberedSub := renumbered(sub, offset)
		combined.States = append(combined.States, renumberedSub.States...)
		combined.AddEpsilonTransition(combined.Start, renumberedSub.Start)
	}

	// The combined automaton has no single End; scanning/subset
	// construction consult per-state Final/TokenID instead.
	combined.End = -1
	return combined, nil
}

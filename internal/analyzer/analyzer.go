// Package analyzer implements C7: FIRST and FOLLOW set computation over a
// context-free grammar to a fixed point (spec §4.7). Both sets are computed
// once per Analyzer and cached (spec §3 lifecycles).
package analyzer

import "github.com/dogmalang/lexgen/internal/grammar"

// stringSet is a set of terminal names (FIRST/FOLLOW hold terminal names,
// plus possibly ε or $).
type stringSet map[string]struct{}

func (s stringSet) add(name string) bool {
	if _, ok := s[name]; ok {
		return false
	}
	s[name] = struct{}{}
	return true
}

func (s stringSet) addAll(other stringSet) bool {
	changed := false
	for name := range other {
		if s.add(name) {
			changed = true
		}
	}
	return changed
}

func (s stringSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

func newStringSet(names ...string) stringSet {
	s := make(stringSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Analyzer computes and caches FIRST/FOLLOW for one grammar instance.
type Analyzer struct {
	g      *grammar.Grammar
	first  map[string]stringSet // keyed by symbol name
	follow map[string]stringSet // keyed by non-terminal name

	firstComputed  bool
	followComputed bool
}

// New creates an Analyzer over g. Nothing is computed until First/Follow
// (or ComputeFirst/ComputeFollow) is called.
func New(g *grammar.Grammar) *Analyzer {
	return &Analyzer{g: g}
}

// ComputeFirst computes FIRST for every terminal and non-terminal in the
// grammar, to a fixed point (spec §4.7). Safe to call more than once; the
// result is cached after the first call.
func (a *Analyzer) ComputeFirst() {
	if a.firstComputed {
		return
	}
	a.first = make(map[string]stringSet)

	for name := range a.g.Terminals {
		a.first[name] = newStringSet(name)
	}
	a.first[grammar.Epsilon] = newStringSet(grammar.Epsilon)
	for name := range a.g.NonTerminals {
		a.first[name] = newStringSet()
	}

	changed := true
	for changed {
		changed = false
		for _, p := range a.g.Productions {
			// Explicit ε-production: A -> ε.
			if p.IsEpsilonProduction() {
				if a.first[p.Left.Name].add(grammar.Epsilon) {
					changed = true
				}
				continue
			}

			allNullable := true
			for _, x := range p.Right {
				xFirst := a.firstSetOf(x)
				for t := range xFirst {
					if t == grammar.Epsilon {
						continue
					}
					if a.first[p.Left.Name].add(t) {
						changed = true
					}
				}
				if !xFirst.has(grammar.Epsilon) {
					allNullable = false
					break
				}
			}
			if allNullable {
				if a.first[p.Left.Name].add(grammar.Epsilon) {
					changed = true
				}
			}
		}
	}

	a.firstComputed = true
}

func (a *Analyzer) firstSetOf(sym grammar.Symbol) stringSet {
	if set, ok := a.first[sym.Name]; ok {
		return set
	}
	return stringSet{}
}

// firstOfSequence computes FIRST(X1 X2 ... Xn) for an arbitrary symbol
// sequence, the way the inner loop of ComputeFirst does for a production's
// right-hand side. An empty sequence is nullable (its FIRST is {ε}).
func (a *Analyzer) firstOfSequence(seq []grammar.Symbol) stringSet {
	result := newStringSet()
	if len(seq) == 0 {
		result.add(grammar.Epsilon)
		return result
	}
	allNullable := true
	for _, x := range seq {
		xFirst := a.firstSetOf(x)
		for t := range xFirst {
			if t != grammar.Epsilon {
				result.add(t)
			}
		}
		if !xFirst.has(grammar.Epsilon) {
			allNullable = false
			break
		}
	}
	if allNullable {
		result.add(grammar.Epsilon)
	}
	return result
}

// ComputeFollow computes FOLLOW for every non-terminal in the grammar to a
// fixed point (spec §4.7). It ensures FIRST is computed first.
//
// The fixed-point loop OR-accumulates the "changed" flag across every
// insertion made during a pass — spec §9 calls out a known bug where
// overwriting (rather than OR-ing) this flag from a single call loses
// updates made earlier in the same pass, causing early termination. Every
// insertion below feeds the same accumulator.
func (a *Analyzer) ComputeFollow() {
	if a.followComputed {
		return
	}
	a.ComputeFirst()

	a.follow = make(map[string]stringSet)
	for name := range a.g.NonTerminals {
		a.follow[name] = newStringSet()
	}
	a.follow[a.g.Start.Name].add(grammar.EndOfInput)

	changed := true
	for changed {
		changed = false
		for _, p := range a.g.Productions {
			for i, sym := range p.Right {
				if sym.Kind != grammar.NonTerminal {
					continue
				}
				if sym.IsEpsilon() {
					continue
				}
				trailer := a.firstOfSequence(p.Right[i+1:])
				for t := range trailer {
					if t == grammar.Epsilon {
						continue
					}
					if a.follow[sym.Name].add(t) {
						changed = true
					}
				}
				if trailer.has(grammar.Epsilon) || i == len(p.Right)-1 {
					if a.follow[sym.Name].addAll(a.follow[p.Left.Name]) {
						changed = true
					}
				}
			}
		}
	}

	a.followComputed = true
}

// First returns the FIRST set of a single symbol as a plain string slice
// (spec §6 output shape). FIRST may contain ε.
func (a *Analyzer) First(sym grammar.Symbol) []string {
	a.ComputeFirst()
	return toSlice(a.firstSetOf(sym))
}

// Follow returns the FOLLOW set of a non-terminal as a plain string slice.
// FOLLOW may contain $.
func (a *Analyzer) Follow(nt grammar.Symbol) []string {
	a.ComputeFollow()
	set, ok := a.follow[nt.Name]
	if !ok {
		return nil
	}
	return toSlice(set)
}

func toSlice(s stringSet) []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	return out
}

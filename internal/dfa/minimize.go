package dfa

import "sort"

// pair canonicalizes an unordered pair of state ids so the smaller id is
// always first — lookup into the distinguishability table is then
// symmetric by construction (spec §4.5 "Canonical pair ordering").
type pair struct{ a, b int }

func makePair(x, y int) pair {
	if x > y {
		x, y = y, x
	}
	return pair{x, y}
}

// unionFind implements the partitioning step of minimization: path
// compression on find, and union without rank — acceptable given the small
// state counts typical of classroom grammars (spec §4.5).
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(x, y int) {
	rx, ry := uf.find(x), uf.find(y)
	if rx != ry {
		uf.parent[rx] = ry
	}
}

// Minimize applies table-filling distinguishability with union-find
// partitioning (spec §4.5). It returns a fresh Automaton; the input
// Automaton should be considered consumed afterward (spec §5 resource
// ownership).
func Minimize(d *Automaton, alphabet map[rune]struct{}) *Automaton {
	n := len(d.States)
	ids := make([]int, n)
	for i, s := range d.States {
		ids[i] = s.ID
	}
	sort.Ints(ids)

	distinguishable := make(map[pair]bool)

	// Step 1: a pair is distinguishable iff exactly one of the two states
	// is final, or both are final but recognize different tokens (so the
	// scanner never reports one token kind's lexeme as another's).
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p, q := d.States[ids[i]], d.States[ids[j]]
			if p.Final != q.Final || p.TokenID != q.TokenID {
				distinguishable[makePair(ids[i], ids[j])] = true
			}
		}
	}

	// Step 2: iterate to a fixed point.
	changed := true
	for changed {
		changed = false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				key := makePair(ids[i], ids[j])
				if distinguishable[key] {
					continue
				}
				p, q := d.States[ids[i]], d.States[ids[j]]
				for c := range alphabet {
					pt, pOK := p.Transitions[c]
					qt, qOK := q.Transitions[c]
					if pOK != qOK {
						distinguishable[key] = true
						changed = true
						break
					}
					if pOK && qOK && pt != qt {
						if distinguishable[makePair(pt, qt)] {
							distinguishable[key] = true
							changed = true
							break
						}
					}
				}
			}
		}
	}

	// Step 3: union every pair that remains undistinguished.
	maxID := 0
	for _, id := range ids {
		if id > maxID {
			maxID = id
		}
	}
	uf := newUnionFind(maxID + 1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			key := makePair(ids[i], ids[j])
			if !distinguishable[key] {
				uf.union(ids[i], ids[j])
			}
		}
	}

	// Group states by root representative, in deterministic order: sort
	// partitions by their smallest member id (spec §5 ordering guarantee).
	members := make(map[int][]int)
	for _, id := range ids {
		root := uf.find(id)
		members[root] = append(members[root], id)
	}
	roots := make([]int, 0, len(members))
	for root := range members {
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool {
		return minOf(members[roots[i]]) < minOf(members[roots[j]])
	})

	newOf := make(map[int]int, n)
	newStates := make([]*State, 0, len(roots))
	for newID, root := range roots {
		group := members[root]
		sort.Ints(group)

		merged := &State{
			ID:          newID,
			NFAStates:   map[int]struct{}{},
			Transitions: make(map[rune]int),
		}
		// Spec §4.5 step 4: the merged state's token is the highest-priority
		// (lowest Priority value) token among its members, not simply the
		// first one seen — members always share a TokenID (step 1), but a
		// token id listed more than once in the input carries a different
		// priority per listing, and the lower-id member isn't necessarily the
		// higher-priority one.
		bestPriority := -1
		for _, oldID := range group {
			old := d.States[oldID]
			newOf[oldID] = newID
			for nfaID := range old.NFAStates {
				merged.NFAStates[nfaID] = struct{}{}
			}
			if old.Final {
				merged.Final = true
			}
			if old.HasToken && (!merged.HasToken || old.Priority < bestPriority) {
				merged.TokenID = old.TokenID
				merged.HasToken = true
				merged.Priority = old.Priority
				bestPriority = old.Priority
			}
		}
		newStates = append(newStates, merged)
	}

	// Step 5: rebuild transitions over the new state ids. Duplicate
	// insertions (two old states collapsing to the same new transition)
	// are idempotent since they target the same map key.
	for _, root := range roots {
		group := members[root]
		newID := newOf[group[0]]
		target := newStates[newID]
		for _, oldID := range group {
			old := d.States[oldID]
			for c, oldTarget := range old.Transitions {
				target.Transitions[c] = newOf[oldTarget]
			}
		}
	}

	return &Automaton{Start: newOf[d.Start], States: newStates}
}

func minOf(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

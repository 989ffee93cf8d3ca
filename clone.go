package dsu

// Clone returns a deep copy of the structure: same partition, same merge
// strategy, same group count, fully independent storage. Mutating either
// instance afterwards never affects the other.
//
// Useful for comparing the effect of alternative merge sequences from an
// identical starting state, or for handing a snapshot to diagnostics
// while the original keeps mutating.
//
// Complexity: O(n) time and memory.
func (d *DisjointSet) Clone() *DisjointSet {
	clone := &DisjointSet{
		parent:   make([]int, len(d.parent)),
		aux:      make([]int, len(d.aux)),
		groups:   d.groups,
		strategy: d.strategy,
	}
	copy(clone.parent, d.parent)
	copy(clone.aux, d.aux)

	return clone
}

package dsu

// White-box bridge for dsu_test: snapshot accessors over the internal
// slices, so tests can verify compression mechanics and mutation-freedom
// without widening the production API. Test builds only.

// ParentSnapshot returns a copy of the internal parent slice.
func (d *DisjointSet) ParentSnapshot() []int {
	out := make([]int, len(d.parent))
	copy(out, d.parent)

	return out
}

// AuxSnapshot returns a copy of the internal auxiliary slice
// (rank bounds under ByRank, group sizes under BySize).
func (d *DisjointSet) AuxSnapshot() []int {
	out := make([]int, len(d.aux))
	copy(out, d.aux)

	return out
}

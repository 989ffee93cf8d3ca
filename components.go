package dsu

import "sort"

// MembersOf returns every index whose canonical root is exactly the given
// root, in ascending index order. When root is in range but not currently
// a canonical root, the result is empty: a non-root labels no group.
//
// This is debugging/testing introspection, not a hot-path operation: it
// linearly scans the whole universe, calling the compressing find on
// every index (which is permitted — compression never changes membership,
// only internal path lengths).
//
// Error Conditions:
//   - ErrOutOfRange : root outside [0, Size()).
//
// Complexity: O(n·α(n)) time, O(k) memory for the k members returned.
func (d *DisjointSet) MembersOf(root int) ([]int, error) {
	if err := d.checkIndex(root); err != nil {
		return nil, err
	}

	var members []int
	for i := 0; i < len(d.parent); i++ {
		if d.find(i) == root {
			members = append(members, i)
		}
	}

	return members, nil
}

// Groups returns the current partition as one slice per group: groups are
// ordered by their root index, members inside each group ascend. The
// concatenation of all groups is exactly [0, Size()) — groups are
// pairwise disjoint and jointly exhaustive.
//
// Like MembersOf, this is introspection over a full scan; the scan's
// finds compress paths as a side effect.
//
// Complexity: O(n·α(n) + g·log g) time for g groups, O(n) memory.
func (d *DisjointSet) Groups() [][]int {
	// Bucket every element under its root; ascending index order of the
	// scan keeps each bucket sorted without a per-group sort pass.
	byRoot := make(map[int][]int, d.groups)
	roots := make([]int, 0, d.groups)
	for i := 0; i < len(d.parent); i++ {
		r := d.find(i)
		if _, seen := byRoot[r]; !seen {
			roots = append(roots, r)
		}
		byRoot[r] = append(byRoot[r], i)
	}

	// Emit groups in ascending root order for deterministic output.
	sort.Ints(roots)
	out := make([][]int, 0, len(roots))
	for _, r := range roots {
		out = append(out, byRoot[r])
	}

	return out
}

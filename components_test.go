// File: components_test.go
package dsu_test

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/dsu"
)

// buildPartition constructs a DisjointSet of size n and applies the given
// union pairs, failing the test on any error.
func buildPartition(t *testing.T, n int, pairs [][2]int) *dsu.DisjointSet {
	t.Helper()
	d, err := dsu.New(n)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", n, err)
	}
	for _, p := range pairs {
		if _, err := d.Union(p[0], p[1]); err != nil {
			t.Fatalf("Union(%d, %d) failed: %v", p[0], p[1], err)
		}
	}

	return d
}

// TestMembersOf_Groups checks MembersOf against hand-computed partitions.
//
// Partition of [0, 7): {0,1,2}, {3,4}, {5}, {6}.
func TestMembersOf_Groups(t *testing.T) {
	d := buildPartition(t, 7, [][2]int{{0, 1}, {1, 2}, {3, 4}})

	cases := []struct {
		name   string
		member int // any element of the target group
		want   []int
	}{
		{"triple", 0, []int{0, 1, 2}},
		{"pair", 4, []int{3, 4}},
		{"singleton", 5, []int{5}},
		{"lastSingleton", 6, []int{6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := d.Find(tc.member)
			if err != nil {
				t.Fatalf("Find(%d) failed: %v", tc.member, err)
			}
			got, err := d.MembersOf(root)
			if err != nil {
				t.Fatalf("MembersOf(%d) failed: %v", root, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("MembersOf(%d) = %v; want %v", root, got, tc.want)
			}
		})
	}
}

// TestMembersOf_NonRoot verifies that an in-range index that is not
// currently a root labels no group: empty result, nil error.
func TestMembersOf_NonRoot(t *testing.T) {
	d := buildPartition(t, 4, [][2]int{{0, 1}, {1, 2}})

	root, err := d.Find(0)
	if err != nil {
		t.Fatalf("Find(0) failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if i == root {
			continue
		}
		members, err := d.MembersOf(i)
		if err != nil {
			t.Fatalf("MembersOf(%d) on a non-root failed: %v", i, err)
		}
		if len(members) != 0 {
			t.Errorf("MembersOf(%d) = %v; a non-root labels no group", i, members)
		}
	}
}

// TestMembersOf_OutOfRange verifies the error contract on bad indices.
func TestMembersOf_OutOfRange(t *testing.T) {
	d := buildPartition(t, 3, nil)

	for _, bad := range []int{-1, 3, 100} {
		if _, err := d.MembersOf(bad); !errors.Is(err, dsu.ErrOutOfRange) {
			t.Errorf("MembersOf(%d) error = %v; want ErrOutOfRange", bad, err)
		}
	}
}

// TestGroups_Partition verifies that Groups emits the whole partition:
// groups ordered by root index, members ascending, pairwise disjoint,
// and jointly covering [0, n).
func TestGroups_Partition(t *testing.T) {
	const n = 9
	d := buildPartition(t, n, [][2]int{{0, 3}, {3, 6}, {1, 4}, {2, 8}})

	groups := d.Groups()
	if len(groups) != d.GroupCount() {
		t.Fatalf("len(Groups()) = %d; want GroupCount() = %d", len(groups), d.GroupCount())
	}

	seen := make([]bool, n)
	prevRoot := -1
	for _, g := range groups {
		if len(g) == 0 {
			t.Fatal("empty group emitted")
		}
		if !sort.IntsAreSorted(g) {
			t.Errorf("group %v not in ascending order", g)
		}
		root, err := d.Find(g[0])
		if err != nil {
			t.Fatalf("Find(%d) failed: %v", g[0], err)
		}
		if root <= prevRoot {
			t.Errorf("group roots out of order: %d after %d", root, prevRoot)
		}
		prevRoot = root
		for _, i := range g {
			if seen[i] {
				t.Errorf("element %d appears in two groups", i)
			}
			seen[i] = true
			if r, _ := d.Find(i); r != root {
				t.Errorf("group %v mixes roots: Find(%d) = %d, want %d", g, i, r, root)
			}
		}
	}
	for i, ok := range seen {
		if !ok {
			t.Errorf("element %d missing from the partition", i)
		}
	}
}

// TestGroups_MatchesMembersOf verifies the two introspection views agree:
// every emitted group equals MembersOf of its own root.
func TestGroups_MatchesMembersOf(t *testing.T) {
	d := buildPartition(t, 12, [][2]int{{0, 1}, {2, 3}, {1, 3}, {10, 11}})

	for _, g := range d.Groups() {
		root, err := d.Find(g[0])
		if err != nil {
			t.Fatalf("Find(%d) failed: %v", g[0], err)
		}
		members, err := d.MembersOf(root)
		if err != nil {
			t.Fatalf("MembersOf(%d) failed: %v", root, err)
		}
		if !reflect.DeepEqual(g, members) {
			t.Errorf("Groups() entry %v != MembersOf(%d) = %v", g, root, members)
		}
	}
}

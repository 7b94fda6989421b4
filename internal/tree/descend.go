package tree

import (
	"sort"

	"github.com/gedsite-dev/gedsite/internal/gedcom"
)

// Descendants returns the IDs of everyone descended from root: its
// children, then the children of every family those people appear in as
// a spouse, and so on. Spouses who married into the line are never part
// of the set. Child IDs that do not resolve stay in the set as dead
// ends, and the visited check keeps traversal finite even on cyclic
// input. The result is sorted.
func (t *Tree) Descendants(root *gedcom.Family) []string {
	visited := make(map[string]bool)
	stack := append([]string(nil), root.Children...)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true

		person, ok := t.Individual(id)
		if !ok {
			continue
		}
		for _, famID := range person.FamS {
			fam, ok := t.Family(famID)
			if !ok {
				continue
			}
			for _, child := range fam.Children {
				if !visited[child] {
					stack = append(stack, child)
				}
			}
		}
	}

	out := make([]string, 0, len(visited))
	for id := range visited {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

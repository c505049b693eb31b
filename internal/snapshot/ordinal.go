package snapshot

import "github.com/alldritt/UIBrowser4-sub001/internal/ax"

// assignOrdinals computes the AppleScript ordinal for every element of a
// sibling set, in native enumeration order. Elements whose role has a
// human-readable class mapping are counted per role; elements with the
// generic unknown role, a missing role, or no class mapping get their
// one-based position among all siblings instead. A single pass with an
// accumulator map keeps this O(n) for large sibling sets.
//
// Ordinals must match the order the accessibility API reports and stay
// stable for the lifetime of the snapshot; terminology changes re-derive
// display strings from the cached ordinal, never the other way around.
func assignOrdinals(siblings []ax.Element) []int {
	ordinals := make([]int, len(siblings))
	seen := make(map[string]int, len(siblings))

	for i, el := range siblings {
		role, ok := el.Role()
		if !ok || !scriptClasses.hasClassName(role) {
			ordinals[i] = i + 1
			continue
		}
		seen[role]++
		ordinals[i] = seen[role]
	}
	return ordinals
}

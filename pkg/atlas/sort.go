package atlas

import "slices"

// SortKeys orders region keys in place using the canonical ordering:
// any key of entity-key length (3) sorts before any other key regardless of
// lexical value; within each group keys sort ascending by byte order.
//
// The ordering is a pure function of the keys themselves. Entity keys and
// synthetic IDs are unique, so no tie-breaking is needed and the order is
// stable across runs.
func SortKeys(keys []string) {
	slices.SortFunc(keys, CompareKeys)
}

// CompareKeys compares two region keys under the canonical ordering,
// returning a negative value when a sorts before b.
func CompareKeys(a, b string) int {
	ra, rb := keyRank(a), keyRank(b)
	if ra != rb {
		return ra - rb
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// keyRank buckets keys: entity keys first, everything else after.
func keyRank(key string) int {
	if IsEntityKey(key) {
		return 0
	}
	return 1
}

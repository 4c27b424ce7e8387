package common

import "sort"

// Exists reports whether the map contains the key.
func Exists[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// SortedKeys returns the keys of a string-keyed map in ascending order,
// for stable iteration in logs and summaries.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

package ui

import "github.com/sahilm/fuzzy"

// ApplyFuzzyFilter returns the items matching query, best match first.
// An empty query returns all items in their original order.
func ApplyFuzzyFilter(query string, items []string) []string {
	if query == "" {
		return items
	}

	matches := fuzzy.Find(query, items)

	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.Str
	}

	return result
}

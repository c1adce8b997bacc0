package util

import "strings"

// MakeTextList joins items into a natural-language list with an Oxford
// comma, using conj ("and", "or", ...) before the final item.
func MakeTextList(items []string, conj string) string {
	if len(items) < 1 {
		return ""
	}

	if len(items) == 1 {
		return items[0]
	}
	if len(items) == 2 {
		return items[0] + " " + conj + " " + items[1]
	}

	listed := make([]string, len(items))
	copy(listed, items)
	listed[len(listed)-1] = conj + " " + listed[len(listed)-1]
	return strings.Join(listed, ", ")
}

package utils

import "strings"

// SplitList splits a separated list such as an env var value, trimming each item
// and dropping empty ones. It returns nil when nothing is left.
func SplitList(s, sep string) []string {
	var result []string
	for _, item := range strings.Split(s, sep) {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}

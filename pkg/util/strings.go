package util

import "strings"

// SplitKV splits s at the first occurrence of sep and returns the key and
// value. ok is false when sep does not occur in s.
func SplitKV(s, sep string) (key, value string, ok bool) {
	i := strings.Index(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}

// SplitList splits a separated list, trimming blanks and dropping empty items.
func SplitList(s, sep string) []string {
	var out []string
	for _, item := range strings.Split(s, sep) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

package utils

import (
	"strings"
	"unicode/utf8"
)

// Normalize lowercases and trims user text before matching.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// RuneLen counts characters, not bytes, so "sí" is length 2.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

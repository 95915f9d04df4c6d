package domain

import (
	"strings"
	"unicode/utf8"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// length counts characters, not bytes.
func length(s string) int {
	return utf8.RuneCountInString(s)
}

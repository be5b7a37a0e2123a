// Package util holds small helpers shared by the command builders.
package util

import (
	"regexp"
	"strings"
)

// safeWord matches arguments a POSIX shell reads back unchanged.
var safeWord = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./~-]+$`)

// ShellQuote wraps a string in single quotes, escaping any existing single quotes.
func ShellQuote(s string) string {
	// Replace ' with '\'' (end quote, escaped quote, start quote)
	escaped := strings.ReplaceAll(s, "'", "'\\''")
	return "'" + escaped + "'"
}

// QuoteIfNeeded returns s as-is when the shell would read it literally,
// otherwise single-quoted.
func QuoteIfNeeded(s string) string {
	if safeWord.MatchString(s) {
		return s
	}
	return ShellQuote(s)
}

// ShellJoin renders words as a command line a user can paste into a shell.
func ShellJoin(words ...string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = QuoteIfNeeded(w)
	}
	return strings.Join(quoted, " ")
}

/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package utils

import "strings"

// ShellQuote wraps s in POSIX single quotes, escaping any embedded single
// quote, so it is safe to interpolate into a remote shell command.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// HasUnsafeShellChars reports whether s contains a quote or whitespace,
// making it unsafe to pack into a single batched shell invocation
// (e.g. `stat a b c`). Such paths are dropped from the batch rather than
// quoted individually.
func HasUnsafeShellChars(s string) bool {
	return strings.ContainsAny(s, "'\" \t\n")
}

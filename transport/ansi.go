/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package transport

import (
	"regexp"
	"strings"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape sequences trailing (or embedded in) a line
// of terminal output.
func stripANSI(line string) string {
	return ansiEscape.ReplaceAllString(line, "")
}

// splitLines splits raw output into lines, dropping every trailing newline
// (so no trailing blank lines remain), and strips ANSI from each line.
func splitLines(raw string) []string {
	raw = strings.TrimRight(raw, "\n")
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	for i, l := range lines {
		lines[i] = stripANSI(strings.TrimRight(l, "\r"))
	}
	return lines
}

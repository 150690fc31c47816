/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package extractor

import "github.com/nixrecon/micronix/utils"

// chunk splits paths into groups of at most size.
func chunk(paths []string, size int) [][]string {
	if size <= 0 {
		size = len(paths)
		if size == 0 {
			size = 1
		}
	}
	var out [][]string
	for size < len(paths) {
		paths, out = paths[size:], append(out, paths[:size])
	}
	return append(out, paths)
}

// safeBatch quotes each path for shell interpolation, dropping any path
// that contains a quote or whitespace (the shell-quoting rule: such paths
// are silently excluded from the batched command, matching the source
// tool's documented behavior). Returns the quoted args plus the subset of
// input paths actually included, in the same order.
func safeBatch(paths []string) (args []string, kept []string) {
	for _, p := range paths {
		if utils.HasUnsafeShellChars(p) {
			continue
		}
		args = append(args, utils.ShellQuote(p))
		kept = append(kept, p)
	}
	return args, kept
}

/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */

// Package encoder walks a model.FactsContainer and a catalog.Catalog and
// produces the typed objects, ground predicates, and planning problems the
// rest of the pipeline hands off to a PDDL writer.
package encoder

import "strings"

// normalizeReplacer rewrites every character PDDL symbols cannot carry into
// an underscore. Order does not matter: none of the replaced characters
// overlap.
var normalizeReplacer = strings.NewReplacer(
	".", "_",
	"/", "_",
	"[", "_",
	"]", "_",
	"+", "_",
	"*", "_",
	"'", "_",
	" ", "_",
	"(", "_",
	")", "_",
	"{", "_",
	"}", "_",
	"@", "_",
	"~", "_",
)

// normalize converts an arbitrary path or name into a valid PDDL symbol:
// disallowed characters become underscores, a leading underscore is
// dropped, and the result is lowercased. Two distinct inputs that collapse
// to the same symbol are intentionally treated as the same object.
func normalize(s string) string {
	s = normalizeReplacer.Replace(s)
	s = strings.TrimPrefix(s, "_")
	return strings.ToLower(s)
}

// userSymbol and groupSymbol are the fixed suffix convention applied to
// every normalized username/groupname before it becomes a PDDL object.
func userSymbol(user string) string  { return normalize(user) + "_u" }
func groupSymbol(group string) string { return normalize(group) + "_g" }

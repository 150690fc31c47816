/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package catalog

// BinariesForPredicate returns the names of every binary whose capability
// entry lists predicate.
func (c *Catalog) BinariesForPredicate(predicate string) []string {
	var names []string
	for _, entry := range c.Capabilities {
		if !containsString(entry.Predicates, predicate) {
			continue
		}
		for _, b := range entry.Binaries {
			names = append(names, b.Name)
		}
	}
	return names
}

// CapabilitiesForBinary returns, for a binary's basename, a map of
// capability name to the full list of predicates that capability
// contributes for that binary.
func (c *Catalog) CapabilitiesForBinary(basename string) map[string][]string {
	out := make(map[string][]string)
	for capName, entry := range c.Capabilities {
		for _, b := range entry.Binaries {
			if b.Name == basename {
				out[capName] = entry.Predicates
			}
		}
	}
	return out
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

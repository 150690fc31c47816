/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package encoder

import "github.com/nixrecon/micronix/catalog"

// capabilityPredicates collects every predicate from every capability entry
// whose binaries list contains a name that normalizes to the same symbol as
// basename. Multiple entries, and multiple predicates within one entry, may
// all match; all are returned.
func capabilityPredicates(cat *catalog.Catalog, basename string) []string {
	if cat == nil {
		return nil
	}
	want := normalize(basename)

	var out []string
	for _, entry := range cat.Capabilities {
		for _, spec := range entry.Binaries {
			if normalize(spec.Name) == want {
				out = append(out, entry.Predicates...)
				break
			}
		}
	}
	return out
}

/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package cli

import (
	"path/filepath"
	"strings"
)

// withSuffix inserts "_<name>" before a base path's extension (if any),
// otherwise appends it directly: "extractor_data.pkl" + "prod" becomes
// "extractor_data_prod.pkl"; "generated_problems" + "prod" becomes
// "generated_problems_prod".
func withSuffix(base, name string) string {
	ext := filepath.Ext(base)
	trimmed := strings.TrimSuffix(base, ext)
	return trimmed + "_" + name + ext
}

/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempTOML(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleCapabilities = `
[capabilities.cap_exec_arbitrary]
predicates = ["find_exec"]
binaries = [{ name = "find" }]

[capabilities.cap_other]
predicates = ["other_pred"]
binaries = [{ name = "other" }]
`

const sampleCVEs = `
[capabilities.cve_example]
predicates = ["cve_pred"]
binaries = [
  { name = "sudo", version_command = "-V", version = ["1.8.*"],
    dependencies = { files = [], executables = [], conditions = [
      { type = "not_empty", op1 = "which sudo" },
    ] } },
]
`

func TestLoadDecodesCapabilitiesAndCVEs(t *testing.T) {
	capPath := writeTempTOML(t, sampleCapabilities)
	cvePath := writeTempTOML(t, sampleCVEs)

	cat, err := Load(capPath, cvePath)
	require.NoError(t, err)

	require.Contains(t, cat.Capabilities, "cap_exec_arbitrary")
	entry := cat.Capabilities["cap_exec_arbitrary"]
	require.Equal(t, []string{"find_exec"}, entry.Predicates)
	require.Equal(t, "find", entry.Binaries[0].Name)

	require.Contains(t, cat.CVEs, "cve_example")
	cveEntry := cat.CVEs["cve_example"]
	require.Equal(t, "sudo", cveEntry.Binaries[0].Name)
	require.Equal(t, []string{"1.8.*"}, cveEntry.Binaries[0].VersionGlobs)
	require.Len(t, cveEntry.Binaries[0].Dependencies.Conditions, 1)
	require.Equal(t, "not_empty", cveEntry.Binaries[0].Dependencies.Conditions[0].Type)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	capPath := writeTempTOML(t, `
[capabilities.cap_x]
predicates = ["x"]
binaries = [{ name = "x", bogus_field = "oops" }]
`)
	cvePath := writeTempTOML(t, sampleCVEs)

	_, err := Load(capPath, cvePath)
	require.Error(t, err)
}

func TestLoadMissingFileIsFatal(t *testing.T) {
	_, err := Load("/nonexistent/capabilities.toml", "/nonexistent/cve.toml")
	require.Error(t, err)
}

// BinariesForPredicate filters by predicate membership, not just returning
// every binary from every entry (the corrected semantics for the known
// source bug).
func TestBinariesForPredicateFiltersByPredicate(t *testing.T) {
	capPath := writeTempTOML(t, sampleCapabilities)
	cvePath := writeTempTOML(t, sampleCVEs)
	cat, err := Load(capPath, cvePath)
	require.NoError(t, err)

	names := cat.BinariesForPredicate("find_exec")
	require.Equal(t, []string{"find"}, names)

	require.Empty(t, cat.BinariesForPredicate("nonexistent_predicate"))
}

func TestCapabilitiesForBinaryReturnsAllPredicates(t *testing.T) {
	capPath := writeTempTOML(t, `
[capabilities.cap_multi]
predicates = ["pred_a", "pred_b"]
binaries = [{ name = "multi" }]
`)
	cvePath := writeTempTOML(t, sampleCVEs)
	cat, err := Load(capPath, cvePath)
	require.NoError(t, err)

	caps := cat.CapabilitiesForBinary("multi")
	require.Equal(t, []string{"pred_a", "pred_b"}, caps["cap_multi"])
}

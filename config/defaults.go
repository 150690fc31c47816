/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package config

import "time"

// Default values for extraction behavior. These are fixed constants;
// ConfigManager does not read or override them.
const (
	DefaultCapabilitiesPath = "resources/capabilities.toml"
	DefaultCVEPath          = "resources/cve_capabilities.toml"
	DefaultDomainPath       = "resources/domain.pddl"
	DefaultOutDir           = "generated_problems"
	DefaultExtractorBlob    = "extractor_data.pkl"
	DefaultStatsDB          = "stats.sqlite"

	DefaultStatBatchSize = 100
	DefaultFileBatchSize = 100
	DefaultLddBatchSize  = 1000

	DefaultMaxRetries     = 3
	DefaultInitialBackoff = 2 * time.Second
	CVEProbeTimeout       = 2 * time.Second

	// EchoStripRatio is the minimum Levenshtein similarity ratio at which a
	// line read back from a line-oriented tube is considered an echo of the
	// command just sent, and is stripped before parsing.
	EchoStripRatio = 0.87
)

// PoIDirs are the Points-of-Interest directories the extractor walks for
// candidate executables.
var PoIDirs = []string{
	"/bin", "/sbin", "/usr/bin", "/usr/sbin",
	"/usr/local/sbin", "/usr/local/bin", "/opt", "/home",
}

// RCFileShells maps an rc-filename (basename) to the shells that load it on
// session start. Fixed table, matching common shell conventions.
var RCFileShells = map[string][]string{
	".bashrc":         {"bash"},
	".bash_profile":   {"bash"},
	".bash_login":     {"bash"},
	".profile":        {"bash", "sh", "dash"},
	".zshrc":          {"zsh"},
	".zprofile":       {"zsh"},
	".zlogin":         {"zsh"},
	".zlogout":        {"zsh"},
	".cshrc":          {"csh", "tcsh"},
	".login":          {"csh", "tcsh"},
	".kshrc":          {"ksh"},
	"config.fish":     {"fish"},
}

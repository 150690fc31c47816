/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */

// Package model holds the typed object graph produced by the extractor and
// consumed by the encoder: FactsContainer and everything that hangs off it.
package model

// Kind discriminates a Node. An Executable is classified as SharedObject iff
// `file` output contains "shared object"; else UserExecutable iff its path
// starts with /home or /opt; else SystemExecutable.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindSystemExecutable
	KindUserExecutable
	KindSharedObject
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "FILE"
	case KindDirectory:
		return "DIRECTORY"
	case KindSystemExecutable:
		return "SYSTEM_EXECUTABLE"
	case KindUserExecutable:
		return "USER_EXECUTABLE"
	case KindSharedObject:
		return "SHARED_OBJECT"
	default:
		return "UNKNOWN"
	}
}

// Node is the common attribute record shared by File, Directory and
// Executable. Path is always absolute, readlink-f canonicalized, and
// lowercased before it is stored.
type Node struct {
	Path  string
	Perms uint16 // octal permission bits, in [0, 0o7777]
	Owner string
	Group string
	Type  string // raw `file` utility output
	Kind  Kind
}

// File is a plain Node of Kind FILE (or, in the writable/setugid listings,
// any non-directory Node).
type File struct {
	Node
}

// Directory is a Node of Kind DIRECTORY.
type Directory struct {
	Node
}

// Executable is a Node of Kind SystemExecutable, UserExecutable or
// SharedObject, plus CVE capability matches and resolved shared-object
// dependencies. SoDeps is closed under membership in FactsContainer.Executables
// (every entry it points to also appears there).
type Executable struct {
	Node
	CVECapabilities []string
	SoDeps          []*Executable
}

// CronJob is one parsed line from /etc/crontab.
type CronJob struct {
	User      string
	Cmd       string
	Minute    string
	Hour      string
	DayMonth  string
	Month     string
	DayWeek   string
}

// ServiceUnit is a systemd unit file plus the first token of each of its
// Exec* directives.
type ServiceUnit struct {
	File File
	Cmds []string
}

// RCFile is a shell-initialization file under a user's home directory plus
// the shells that load it, per the fixed rc-filename table.
type RCFile struct {
	File   File
	Shells []string
}

// BinarySpec names a binary a CapabilityEntry or CVE entry matches against.
// Plain capability specs only set Name; CVE specs additionally set
// VersionCommand/VersionGlobs/Dependencies.
type BinarySpec struct {
	Name           string
	VersionCommand string
	VersionGlobs   []string
	Dependencies   Dependencies
}

// Dependencies gates a CVE match on runtime preconditions.
type Dependencies struct {
	Files       []string
	Executables []string
	Conditions  []Condition
}

// Condition is a single runtime precondition evaluated against the target.
type Condition struct {
	Type string // "not_empty" | "user_can_create_file"
	Op1  string
}

// CapabilityEntry maps a named capability to the PDDL predicates it implies
// and the binaries that carry it.
type CapabilityEntry struct {
	Name       string
	Predicates []string
	Binaries   []BinarySpec
}

// FactsContainer is the aggregate root produced once by the extractor and
// consumed once by the encoder.
type FactsContainer struct {
	CurrentUser  string
	CurrentGroup string

	SystemUsers []string
	UsersShell  map[string]string   // user -> login shell path
	SystemGroups map[string][]string // group -> member usernames

	Executables []*Executable

	WritableFiles       []File
	WritableDirectories []Directory
	SetugidFiles        []File

	CronJobs        []CronJob
	SystemdServices []ServiceUnit

	// RCFiles holds one entry per discovered shell-initialization file.
	RCFiles []RCFile

	// BinariesWithCVE mirrors, for convenience, the subset of Executables
	// that ended up with at least one CVE capability attached.
	BinariesWithCVE []*Executable
}

// NewFactsContainer returns a zero-valued, ready-to-populate container.
func NewFactsContainer() *FactsContainer {
	return &FactsContainer{
		UsersShell:   make(map[string]string),
		SystemGroups: make(map[string][]string),
	}
}

// ExecutableByPath returns the Executable already present in fc.Executables
// for the given canonical path, if any.
func (fc *FactsContainer) ExecutableByPath(path string) (*Executable, bool) {
	for _, e := range fc.Executables {
		if e.Path == path {
			return e, true
		}
	}
	return nil, false
}

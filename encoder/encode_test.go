/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nixrecon/micronix/catalog"
	"github.com/nixrecon/micronix/model"
)

func hasPredicate(preds []Predicate, name string, args ...string) bool {
	for _, p := range preds {
		if p.Name != name || len(p.Args) != len(args) {
			continue
		}
		match := true
		for i := range args {
			if p.Args[i] != args[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func findCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Capabilities: map[string]model.CapabilityEntry{
			"cap_exec_arbitrary": {
				Name:       "cap_exec_arbitrary",
				Predicates: []string{"find_exec"},
				Binaries:   []model.BinarySpec{{Name: "find"}},
			},
		},
	}
}

// S1 — minimal fixture.
func TestEncodeMinimalFixture(t *testing.T) {
	fc := model.NewFactsContainer()
	fc.SystemUsers = []string{"root", "alice"}
	fc.CurrentUser = "alice"
	fc.Executables = []*model.Executable{
		{Node: model.Node{Path: "/usr/bin/find", Perms: 0o755, Owner: "root", Group: "root", Kind: model.KindSystemExecutable}},
	}

	enc := New(findCatalog())
	f, _ := enc.Encode(fc)
	preds := f.Predicates()

	assert.True(t, hasPredicate(preds, "user_group", "root_u", "root_g"))
	assert.True(t, hasPredicate(preds, "user_is_admin", "root_u"))
	assert.True(t, hasPredicate(preds, "group_is_admin", "root_g"))
	assert.True(t, hasPredicate(preds, "user_group", "alice_u", "alice_g"))
	assert.True(t, hasPredicate(preds, "controlled_user", "alice_u"))
	assert.True(t, hasPredicate(preds, "file_present_at_location", "usr_bin_find", "local"))
	assert.True(t, hasPredicate(preds, "file_owner", "usr_bin_find", "root_u", "root_g"))
	assert.True(t, hasPredicate(preds, "system_executable", "usr_bin_find"))
	assert.True(t, hasPredicate(preds, "find_exec", "usr_bin_find"))
	assert.True(t, hasPredicate(preds, "default_file_permission", "usr_bin_find", fsRead))
	assert.True(t, hasPredicate(preds, "default_file_permission", "usr_bin_find", fsExec))
}

// S2 — SUID binary.
func TestEncodeSUIDBinary(t *testing.T) {
	fc := model.NewFactsContainer()
	fc.SystemUsers = []string{"root"}
	fc.CurrentUser = "root"
	fc.Executables = []*model.Executable{
		{Node: model.Node{Path: "/usr/bin/passwd", Perms: 0o4755, Owner: "root", Group: "root", Kind: model.KindSystemExecutable}},
	}

	enc := New(findCatalog())
	f, _ := enc.Encode(fc)
	preds := f.Predicates()

	assert.True(t, hasPredicate(preds, "suid_executable", "usr_bin_passwd"))
	assert.True(t, hasPredicate(preds, "default_file_permission", "usr_bin_passwd", fsRead))
	assert.True(t, hasPredicate(preds, "default_file_permission", "usr_bin_passwd", fsExec))
	assert.False(t, hasPredicate(preds, "default_file_permission", "usr_bin_passwd", fsWrite))
}

// S3 — writable /etc/passwd.
func TestEncodeWritableEtcPasswd(t *testing.T) {
	fc := model.NewFactsContainer()
	fc.SystemUsers = []string{"root"}
	fc.CurrentUser = "root"
	fc.WritableFiles = []model.File{
		{Node: model.Node{Path: "/etc/passwd", Perms: 0o666, Owner: "root", Group: "root", Kind: model.KindFile}},
	}

	enc := New(nil)
	f, _ := enc.Encode(fc)
	preds := f.Predicates()

	assert.True(t, hasPredicate(preds, "file_contents", "etc_passwd", sysfilePasswd))
	assert.True(t, hasPredicate(preds, "default_file_permission", "etc_passwd", fsRead))
	assert.True(t, hasPredicate(preds, "default_file_permission", "etc_passwd", fsWrite))
	assert.True(t, hasPredicate(preds, "group_file_permission", "root_g", "etc_passwd", fsWrite))
}

// S4 — cron with arguments must not fullmatch.
func TestEncodeCronWithArgumentsDropped(t *testing.T) {
	fc := model.NewFactsContainer()
	fc.SystemUsers = []string{"root"}
	fc.CurrentUser = "root"
	fc.CronJobs = []model.CronJob{
		{User: "root", Cmd: "/bin/bash /opt/x.sh", Minute: "*", Hour: "*", DayMonth: "*", Month: "*", DayWeek: "*"},
	}

	enc := New(nil)
	f, _ := enc.Encode(fc)
	preds := f.Predicates()

	assert.False(t, hasPredicate(preds, "executable_systematically_called_by", "bin_bash_opt_x_sh", "root_u"))
	for _, p := range preds {
		assert.NotEqual(t, "executable_systematically_called_by", p.Name)
	}
}

// S5 — RC file.
func TestEncodeRCFile(t *testing.T) {
	fc := model.NewFactsContainer()
	fc.SystemUsers = []string{"alice"}
	fc.CurrentUser = "alice"
	fc.Executables = []*model.Executable{
		{Node: model.Node{Path: "/bin/bash", Perms: 0o755, Owner: "root", Group: "root", Kind: model.KindSystemExecutable}},
	}
	fc.RCFiles = []model.RCFile{
		{
			File:   model.File{Node: model.Node{Path: "/home/alice/.bashrc", Perms: 0o644, Owner: "alice", Group: "alice", Kind: model.KindFile}},
			Shells: []string{"bash"},
		},
	}

	enc := New(nil)
	f, _ := enc.Encode(fc)
	preds := f.Predicates()

	assert.True(t, hasPredicate(preds, "executable_loads_user_specific_file", "bin_bash", "alice_u", "home_alice__bashrc"))
}

// S6 — any-user goal.
func TestEncodeAnyUserGoal(t *testing.T) {
	fc := model.NewFactsContainer()
	fc.SystemUsers = []string{"root", "alice", "bob"}
	fc.CurrentUser = "bob"

	enc := New(nil)
	_, problems := enc.Encode(fc)

	require.Contains(t, problems, "micronix-problem-root")
	require.Contains(t, problems, "micronix-problem-alice")
	require.Contains(t, problems, anyUserProblemName)
	require.NotContains(t, problems, "micronix-problem-bob")

	any := problems[anyUserProblemName]
	assert.True(t, any.Goal.Disjunctive)
	assert.True(t, hasPredicate(any.Goal.Atoms, "controlled_user", "root_u"))
	assert.True(t, hasPredicate(any.Goal.Atoms, "controlled_user", "alice_u"))
	assert.Len(t, any.Goal.Atoms, 2)
}

// Boundary: empty system_groups does not panic and contributes no
// membership predicates beyond the per-user bootstrap ones.
func TestEncodeEmptySystemGroups(t *testing.T) {
	fc := model.NewFactsContainer()
	fc.SystemUsers = []string{"root"}
	fc.CurrentUser = "root"

	enc := New(nil)
	f, _ := enc.Encode(fc)
	assert.True(t, hasPredicate(f.Predicates(), "user_group", "root_u", "root_g"))
}

// Boundary: an executable with zero so_deps emits zero
// executable_always_loads_file predicates.
func TestEncodeZeroSoDepsEmitsNoLoadPredicate(t *testing.T) {
	fc := model.NewFactsContainer()
	fc.SystemUsers = []string{"root"}
	fc.CurrentUser = "root"
	fc.Executables = []*model.Executable{
		{Node: model.Node{Path: "/usr/bin/find", Perms: 0o755, Owner: "root", Group: "root", Kind: model.KindSystemExecutable}},
	}

	enc := New(findCatalog())
	f, _ := enc.Encode(fc)
	for _, p := range f.Predicates() {
		assert.NotEqual(t, "executable_always_loads_file", p.Name)
	}
}

// Gating rule: a SYSTEM_EXECUTABLE with no capability mapping and no CVE
// predicate is not referenced by any predicate at all.
func TestEncodeGatingRuleDropsUnmappedSystemExecutable(t *testing.T) {
	fc := model.NewFactsContainer()
	fc.SystemUsers = []string{"root"}
	fc.CurrentUser = "root"
	fc.Executables = []*model.Executable{
		{Node: model.Node{Path: "/usr/bin/mystery", Perms: 0o755, Owner: "root", Group: "root", Kind: model.KindSystemExecutable}},
	}

	enc := New(findCatalog())
	f, _ := enc.Encode(fc)
	for _, p := range f.Predicates() {
		for _, a := range p.Args {
			assert.NotEqual(t, "usr_bin_mystery", a)
		}
	}
}

// Invariant 2: every predicate argument naming a generated object (not one
// of the fixed domain-constant flag symbols) has a declared Object entry.
func TestEncodeArgsAreDeclaredObjects(t *testing.T) {
	fc := model.NewFactsContainer()
	fc.SystemUsers = []string{"root", "alice"}
	fc.CurrentUser = "alice"
	fc.Executables = []*model.Executable{
		{Node: model.Node{Path: "/usr/bin/find", Perms: 0o755, Owner: "root", Group: "root", Kind: model.KindSystemExecutable}},
	}

	enc := New(findCatalog())
	f, _ := enc.Encode(fc)

	assertArgsDeclared(t, f)
}

// Invariant 2, extended: a login shell gated out of processFile (no
// capability, no CVE), a cron command, a systemd Exec* target, and an rc
// file's loading user must still be declared objects, not just referenced
// in a predicate's argument list.
func TestEncodeCrossReferenceArgsAreDeclaredObjects(t *testing.T) {
	fc := model.NewFactsContainer()
	fc.SystemUsers = []string{"root", "alice"}
	fc.CurrentUser = "alice"
	fc.UsersShell = map[string]string{"alice": "/usr/sbin/nologin"}
	fc.CronJobs = []model.CronJob{
		{User: "root", Cmd: "/usr/local/bin/backup.sh", Minute: "0", Hour: "2", DayMonth: "*", Month: "*", DayWeek: "*"},
	}
	fc.Executables = []*model.Executable{
		{Node: model.Node{Path: "/bin/bash", Perms: 0o755, Owner: "root", Group: "root", Kind: model.KindSystemExecutable}},
	}
	fc.SystemdServices = []model.ServiceUnit{
		{
			File: model.File{Node: model.Node{Path: "/etc/systemd/system/backup.service", Perms: 0o644, Owner: "root", Group: "root", Kind: model.KindFile}},
			Cmds: []string{"/usr/bin/backup-agent"},
		},
	}
	fc.RCFiles = []model.RCFile{
		{
			File:   model.File{Node: model.Node{Path: "/home/alice/.bashrc", Perms: 0o644, Owner: "alice", Group: "alice", Kind: model.KindFile}},
			Shells: []string{"bash"},
		},
	}

	enc := New(nil)
	f, _ := enc.Encode(fc)

	preds := f.Predicates()
	assert.True(t, hasPredicate(preds, "executable_systematically_called_by", "usr_sbin_nologin", "alice_u"))
	assert.True(t, hasPredicate(preds, "executable_systematically_called_by", "usr_local_bin_backup_sh", "root_u"))
	assert.True(t, hasPredicate(preds, "daemon_file", "etc_systemd_system_backup_service"))
	assert.True(t, hasPredicate(preds, "executable_systematically_called_by", "usr_bin_backup-agent", "root_u"))
	assert.True(t, hasPredicate(preds, "executable_loads_user_specific_file", "bin_bash", "alice_u", "home_alice__bashrc"))

	assertArgsDeclared(t, f)
}

func assertArgsDeclared(t *testing.T, f *Fact) {
	t.Helper()
	declared := make(map[string]struct{})
	for _, o := range f.Objects() {
		declared[o.Name] = struct{}{}
	}
	flagConstants := map[string]struct{}{fsRead: {}, fsWrite: {}, fsExec: {}, sysfilePasswd: {}}

	for _, p := range f.Predicates() {
		for _, a := range p.Args {
			if _, isFlag := flagConstants[a]; isFlag {
				continue
			}
			assert.Contains(t, declared, a, "predicate %s references undeclared object %s", p.Name, a)
		}
	}
}

/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package encoder

import (
	"path/filepath"
	"regexp"

	"github.com/nixrecon/micronix/model"
)

var pureAbsolutePathCmd = regexp.MustCompile(`^(/[\w.]+)+$`)
var homeUserRe = regexp.MustCompile(`^/home/(\w+)`)

// crossReferences emits the predicates that link executables to the
// users/services/files that systematically invoke or load them. Every
// argument that processFile may not have declared is declared as an object
// here (a login shell, a cron command, a service's Exec* target, an
// executable gated out of processFile that loads an rc file); service unit
// files and rc files themselves are always walked by processFile in Encode.
// An emitted predicate must never name an undeclared object.
func (f *Fact) crossReferences(fc *model.FactsContainer) {
	for user, shell := range fc.UsersShell {
		shellSym := normalize(shell)
		userSym := userSymbol(user)
		f.addObject(shellSym, TypeExecutable)
		f.addObject(userSym, TypeUser)
		f.emit("executable_systematically_called_by", shellSym, userSym)
	}

	for _, job := range fc.CronJobs {
		if !pureAbsolutePathCmd.MatchString(job.Cmd) {
			continue
		}
		cmdSym := normalize(job.Cmd)
		userSym := userSymbol(job.User)
		f.addObject(cmdSym, TypeExecutable)
		f.addObject(userSym, TypeUser)
		f.emit("executable_systematically_called_by", cmdSym, userSym)
	}

	for _, svc := range fc.SystemdServices {
		fileSym := normalize(svc.File.Path)
		f.emit("daemon_file", fileSym)
		rootSym := userSymbol("root")
		f.addObject(rootSym, TypeUser)
		for _, cmd := range svc.Cmds {
			cmdSym := normalize(cmd)
			f.addObject(cmdSym, TypeExecutable)
			f.emit("executable_systematically_called_by", cmdSym, rootSym)
		}
	}

	for _, rc := range fc.RCFiles {
		m := homeUserRe.FindStringSubmatch(rc.File.Path)
		if m == nil {
			continue
		}
		username := m[1]
		userSym := userSymbol(username)
		rcSym := normalize(rc.File.Path)
		f.addObject(userSym, TypeUser)
		for _, exe := range fc.Executables {
			base := filepath.Base(exe.Path)
			if containsShell(rc.Shells, base) {
				exeSym := normalize(exe.Path)
				f.addObject(exeSym, TypeExecutable)
				f.emit("executable_loads_user_specific_file", exeSym, userSym, rcSym)
			}
		}
	}
}

func containsShell(shells []string, base string) bool {
	for _, s := range shells {
		if s == base {
			return true
		}
	}
	return false
}

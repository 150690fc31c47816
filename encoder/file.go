/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package encoder

import (
	"path/filepath"

	"github.com/nixrecon/micronix/catalog"
	"github.com/nixrecon/micronix/model"
)

// Fixed permission-flag and special-content symbols. These are domain
// constants declared by the external domain file, not generated objects.
const (
	fsRead  = "FS_READ"
	fsWrite = "FS_WRITE"
	fsExec  = "FS_EXEC"

	sysfilePasswd = "SYSFILE_PASSWD"
)

// processFile is process_micronix_file: the single emission routine called
// for every File, Directory and Executable. cveCaps and soDeps are only
// meaningful for Executables; callers pass nil for plain files/directories.
func (f *Fact) processFile(n model.Node, cat *catalog.Catalog, cveCaps []string, soDeps []*model.Executable) {
	fileSym := normalize(n.Path)
	ownerSym := userSymbol(n.Owner)
	groupSym := groupSymbol(n.Group)
	f.addObject(ownerSym, TypeUser)
	f.addObject(groupSym, TypeGroup)

	if n.Kind == model.KindDirectory {
		f.addObject(fileSym, TypeDirectory)
		f.emit("directory_owner", fileSym, ownerSym, groupSym)
		return
	}

	isExecutable := n.Kind == model.KindSystemExecutable || n.Kind == model.KindUserExecutable || n.Kind == model.KindSharedObject

	var capPreds []string
	if n.Kind == model.KindSystemExecutable || n.Kind == model.KindSharedObject {
		capPreds = capabilityPredicates(cat, filepath.Base(n.Path))
	}

	if n.Kind == model.KindSystemExecutable && len(capPreds) == 0 && len(cveCaps) == 0 {
		return
	}

	objType := TypeFile
	if isExecutable {
		objType = TypeExecutable
	}
	f.addObject(fileSym, objType)

	f.emit("file_present_at_location", fileSym, "local")
	f.emit("file_owner", fileSym, ownerSym, groupSym)

	if isExecutable {
		for _, p := range capPreds {
			f.emit(p, fileSym)
		}
		switch n.Kind {
		case model.KindSystemExecutable:
			f.emit("system_executable", fileSym)
		case model.KindUserExecutable:
			f.emit("user_executable", fileSym)
		}
		if n.Perms&0o4000 != 0 {
			f.emit("suid_executable", fileSym)
		}
		for _, dep := range soDeps {
			f.emit("executable_always_loads_file", fileSym, normalize(dep.Path))
		}
	}

	if n.Perms&0o040 != 0 {
		f.emit("group_file_permission", groupSym, fileSym, fsRead)
	}
	if n.Perms&0o020 != 0 {
		f.emit("group_file_permission", groupSym, fileSym, fsWrite)
	}
	if n.Perms&0o010 != 0 {
		f.emit("group_file_permission", groupSym, fileSym, fsExec)
	}
	if n.Perms&0o004 != 0 {
		f.emit("default_file_permission", fileSym, fsRead)
	}
	if n.Perms&0o002 != 0 {
		f.emit("default_file_permission", fileSym, fsWrite)
	}
	if n.Perms&0o001 != 0 {
		f.emit("default_file_permission", fileSym, fsExec)
	}

	if n.Path == "/etc/passwd" {
		f.emit("file_contents", fileSym, sysfilePasswd)
	}

	if isExecutable {
		for _, p := range cveCaps {
			f.emit(p, fileSym)
		}
	}
}

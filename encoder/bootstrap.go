/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package encoder

import "github.com/nixrecon/micronix/model"

// bootstrap seeds the singleton objects and the user/group membership
// predicates that exist independent of any File/Directory/Executable walk.
func (f *Fact) bootstrap(fc *model.FactsContainer) {
	f.addObject("process", TypeProcess)
	f.addObject("data", TypeData)
	f.addObject("local", TypeLocal)

	for _, u := range fc.SystemUsers {
		uSym := userSymbol(u)
		gSym := groupSymbol(u)
		f.addObject(uSym, TypeUser)
		f.addObject(gSym, TypeGroup)
		f.emit("user_group", uSym, gSym)
		if u == "root" {
			f.emit("user_is_admin", uSym)
			f.emit("group_is_admin", gSym)
		}
	}

	f.emit("controlled_user", userSymbol(fc.CurrentUser))

	for group, members := range fc.SystemGroups {
		gSym := groupSymbol(group)
		f.addObject(gSym, TypeGroup)
		for _, member := range members {
			uSym := userSymbol(member)
			f.addObject(uSym, TypeUser)
			f.emit("user_group", uSym, gSym)
		}
	}
}

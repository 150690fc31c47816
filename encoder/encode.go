/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package encoder

import (
	"github.com/nixrecon/micronix/catalog"
	"github.com/nixrecon/micronix/model"
)

// Encoder walks a FactsContainer once and produces the deduplicated object
// and predicate sets plus the generated problems.
type Encoder struct {
	cat *catalog.Catalog
}

// New builds an Encoder against the given catalog. cat may be nil; in that
// case no capability predicates are ever generated.
func New(cat *catalog.Catalog) *Encoder {
	return &Encoder{cat: cat}
}

// Encode produces the full object/predicate set and the problem map for fc.
func (e *Encoder) Encode(fc *model.FactsContainer) (*Fact, map[string]Problem) {
	f := newFact()
	f.bootstrap(fc)

	for _, exe := range fc.Executables {
		f.processFile(exe.Node, e.cat, exe.CVECapabilities, exe.SoDeps)
	}
	for _, wf := range fc.WritableFiles {
		f.processFile(wf.Node, e.cat, nil, nil)
	}
	for _, wd := range fc.WritableDirectories {
		f.processFile(wd.Node, e.cat, nil, nil)
	}
	for _, sg := range fc.SetugidFiles {
		f.processFile(sg.Node, e.cat, nil, nil)
	}
	for _, svc := range fc.SystemdServices {
		f.processFile(svc.File.Node, e.cat, nil, nil)
	}
	for _, rc := range fc.RCFiles {
		f.processFile(rc.File.Node, e.cat, nil, nil)
	}

	f.crossReferences(fc)

	problems := buildProblems(fc.CurrentUser, fc.SystemUsers, f.Objects(), f.Predicates())
	return f, problems
}

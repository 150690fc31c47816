/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package encoder

// ObjectType is one of the eight PDDL object types the encoder ever emits.
type ObjectType string

const (
	TypeUser       ObjectType = "user"
	TypeGroup      ObjectType = "group"
	TypeFile       ObjectType = "file"
	TypeDirectory  ObjectType = "directory"
	TypeExecutable ObjectType = "executable"
	TypeProcess    ObjectType = "process"
	TypeData       ObjectType = "data"
	TypeLocal      ObjectType = "local"
)

// Object is one typed PDDL symbol.
type Object struct {
	Name string
	Type ObjectType
}

// Predicate is one ground atom: a predicate name applied to zero or more
// object-name arguments.
type Predicate struct {
	Name string
	Args []string
}

// Fact is the accumulating, deduplicated state built while walking a
// FactsContainer: the set of Objects and the set of Predicates. Both are
// keyed by value so repeated emission of the same fact is a no-op. Args is a
// slice, so Predicate is not map-key comparable; predicates are deduplicated
// under a separate string key instead.
type Fact struct {
	objects    map[Object]struct{}
	predicates map[string]Predicate
}

func newFact() *Fact {
	return &Fact{
		objects:    make(map[Object]struct{}),
		predicates: make(map[string]Predicate),
	}
}

func (f *Fact) addObject(name string, typ ObjectType) {
	f.objects[Object{Name: name, Type: typ}] = struct{}{}
}

func (f *Fact) emit(name string, args ...string) {
	p := Predicate{Name: name, Args: append([]string(nil), args...)}
	f.predicates[predicateStringKey(p)] = p
}

func predicateStringKey(p Predicate) string {
	key := p.Name
	for _, a := range p.Args {
		key += "\x00" + a
	}
	return key
}

// Objects returns the deduplicated object set.
func (f *Fact) Objects() []Object {
	out := make([]Object, 0, len(f.objects))
	for o := range f.objects {
		out = append(out, o)
	}
	return out
}

// Predicates returns the deduplicated ground-atom set.
func (f *Fact) Predicates() []Predicate {
	out := make([]Predicate, 0, len(f.predicates))
	for _, p := range f.predicates {
		out = append(out, p)
	}
	return out
}

/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package encoder

// Goal is either a single ground atom (Disjunctive == false, len(Atoms) ==
// 1) or an OR over several atoms.
type Goal struct {
	Atoms       []Predicate
	Disjunctive bool
}

// Problem is one planning problem: a snapshot of the init state shared by
// every problem generated from the same FactsContainer, plus a goal.
type Problem struct {
	Name    string
	Objects []Object
	Init    []Predicate
	Goal    Goal
}

const anyUserProblemName = "micronix-problem-any_user"

// buildProblems generates one problem per non-current system user plus the
// disjunctive any-user problem, sharing the same init/objects snapshot.
// The any-user problem is built after every per-user problem, since its goal
// collects their goal atoms. The returned map carries no order: iterating it
// yields the problems, the any-user one included, in unspecified order.
func buildProblems(currentUser string, systemUsers []string, objects []Object, init []Predicate) map[string]Problem {
	problems := make(map[string]Problem)
	var anyUserAtoms []Predicate

	for _, u := range systemUsers {
		if u == currentUser {
			continue
		}
		goalAtom := Predicate{Name: "controlled_user", Args: []string{userSymbol(u)}}
		name := "micronix-problem-" + normalize(u)
		problems[name] = Problem{
			Name:    name,
			Objects: objects,
			Init:    init,
			Goal:    Goal{Atoms: []Predicate{goalAtom}},
		}
		anyUserAtoms = append(anyUserAtoms, goalAtom)
	}

	problems[anyUserProblemName] = Problem{
		Name:    anyUserProblemName,
		Objects: objects,
		Init:    init,
		Goal:    Goal{Atoms: anyUserAtoms, Disjunctive: true},
	}

	return problems
}

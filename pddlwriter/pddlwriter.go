/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */

// Package pddlwriter renders an encoder.Problem as standard PDDL 1.2
// problem text.
package pddlwriter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nixrecon/micronix/encoder"
)

// Render serializes one Problem against the named domain into a PDDL 1.2
// problem definition. Object and predicate ordering is sorted so repeated
// runs over identical input agree with each other, regardless of map
// iteration order upstream.
func Render(domainName string, p encoder.Problem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "(define (problem %s)\n", p.Name)
	fmt.Fprintf(&b, "  (:domain %s)\n", domainName)

	b.WriteString("  (:objects\n")
	for _, line := range objectLines(p.Objects) {
		b.WriteString("    " + line + "\n")
	}
	b.WriteString("  )\n")

	b.WriteString("  (:init\n")
	for _, atom := range sortedAtoms(p.Init) {
		b.WriteString("    " + atomText(atom) + "\n")
	}
	b.WriteString("  )\n")

	b.WriteString("  (:goal\n")
	b.WriteString("    " + goalText(p.Goal) + "\n")
	b.WriteString("  )\n")
	b.WriteString(")\n")

	return b.String()
}

// objectLines groups objects by type, sorted, one `name... - type` line per
// type, matching the conventional PDDL typed-object block layout.
func objectLines(objects []encoder.Object) []string {
	byType := make(map[encoder.ObjectType][]string)
	for _, o := range objects {
		byType[o.Type] = append(byType[o.Type], o.Name)
	}

	var types []string
	for t := range byType {
		types = append(types, string(t))
	}
	sort.Strings(types)

	var lines []string
	for _, t := range types {
		names := byType[encoder.ObjectType(t)]
		sort.Strings(names)
		lines = append(lines, fmt.Sprintf("%s - %s", strings.Join(names, " "), t))
	}
	return lines
}

func sortedAtoms(atoms []encoder.Predicate) []encoder.Predicate {
	out := append([]encoder.Predicate(nil), atoms...)
	sort.Slice(out, func(i, j int) bool {
		return atomText(out[i]) < atomText(out[j])
	})
	return out
}

func atomText(p encoder.Predicate) string {
	if len(p.Args) == 0 {
		return fmt.Sprintf("(%s)", p.Name)
	}
	return fmt.Sprintf("(%s %s)", p.Name, strings.Join(p.Args, " "))
}

func goalText(g encoder.Goal) string {
	atoms := sortedAtoms(g.Atoms)
	if !g.Disjunctive {
		if len(atoms) == 0 {
			return "(and)"
		}
		return atomText(atoms[0])
	}

	parts := make([]string, 0, len(atoms))
	for _, a := range atoms {
		parts = append(parts, atomText(a))
	}
	return fmt.Sprintf("(or %s)", strings.Join(parts, " "))
}

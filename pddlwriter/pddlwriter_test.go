/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package pddlwriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nixrecon/micronix/encoder"
)

func TestRenderSingleAtomGoal(t *testing.T) {
	p := encoder.Problem{
		Name:    "micronix-problem-root",
		Objects: []encoder.Object{{Name: "root_u", Type: encoder.TypeUser}},
		Init:    []encoder.Predicate{{Name: "controlled_user", Args: []string{"alice_u"}}},
		Goal:    encoder.Goal{Atoms: []encoder.Predicate{{Name: "controlled_user", Args: []string{"root_u"}}}},
	}

	text := Render("micronix", p)
	assert.True(t, strings.Contains(text, "(define (problem micronix-problem-root)"))
	assert.True(t, strings.Contains(text, "(:domain micronix)"))
	assert.True(t, strings.Contains(text, "root_u - user"))
	assert.True(t, strings.Contains(text, "(controlled_user alice_u)"))
	assert.True(t, strings.Contains(text, "(:goal\n    (controlled_user root_u)"))
	assert.False(t, strings.Contains(text, "(or "))
}

func TestRenderDisjunctiveGoal(t *testing.T) {
	p := encoder.Problem{
		Name: "micronix-problem-any_user",
		Goal: encoder.Goal{
			Disjunctive: true,
			Atoms: []encoder.Predicate{
				{Name: "controlled_user", Args: []string{"root_u"}},
				{Name: "controlled_user", Args: []string{"alice_u"}},
			},
		},
	}

	text := Render("micronix", p)
	assert.True(t, strings.Contains(text, "(or (controlled_user alice_u) (controlled_user root_u))"))
}

func TestRenderEmptyObjectsAndInit(t *testing.T) {
	p := encoder.Problem{Name: "p", Goal: encoder.Goal{Atoms: []encoder.Predicate{{Name: "foo"}}}}
	text := Render("micronix", p)
	assert.True(t, strings.Contains(text, "(:objects\n  )"))
	assert.True(t, strings.Contains(text, "(foo)"))
}

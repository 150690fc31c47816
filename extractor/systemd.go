/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package extractor

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/nixrecon/micronix/model"
	"github.com/nixrecon/micronix/utils"
)

// execDirectiveRe matches a systemd `Exec*=` directive, stripping the
// optional `-`/`!`/`@` prefix modifiers and capturing only the first token
// (the command itself, no arguments).
var execDirectiveRe = regexp.MustCompile(`^Exec\w*=[-!@]*(\S+)`)

// extractSystemd finds every *.service unit under /etc/systemd, reads each,
// and extracts the first token of every Exec* directive. Optional step.
func (e *Extractor) extractSystemd(ctx context.Context, fc *model.FactsContainer) error {
	res, err := e.send(ctx, `find /etc/systemd -iname "*.service" -exec readlink -f {} \;`)
	if err != nil {
		return err
	}

	nodes, err := e.statAndFile(ctx, res.Stdout)
	if err != nil {
		return err
	}
	byPath := make(map[string]model.Node, len(nodes))
	for _, n := range nodes {
		byPath[n.Path] = n
	}

	for _, path := range res.Stdout {
		lowered := strings.ToLower(path)
		node, ok := byPath[lowered]
		if !ok {
			continue
		}

		catRes, err := e.send(ctx, fmt.Sprintf("cat %s", utils.ShellQuote(path)))
		if err != nil {
			continue
		}

		unit := model.ServiceUnit{File: model.File{Node: withKind(node, model.KindFile)}}
		for _, line := range catRes.Stdout {
			if m := execDirectiveRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
				unit.Cmds = append(unit.Cmds, m[1])
			}
		}
		fc.SystemdServices = append(fc.SystemdServices, unit)
	}

	return nil
}

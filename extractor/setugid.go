/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package extractor

import (
	"context"

	"github.com/nixrecon/micronix/model"
)

// extractSetugid finds every file with the SUID or SGID bit set. Optional
// step.
func (e *Extractor) extractSetugid(ctx context.Context, fc *model.FactsContainer) error {
	res, err := e.send(ctx, `find / -xdev \( -perm -4000 -o -perm -2000 \) -exec readlink -f {} \;`)
	if err != nil {
		return err
	}

	nodes, err := e.statAndFile(ctx, res.Stdout)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		fc.SetugidFiles = append(fc.SetugidFiles, model.File{Node: withKind(n, model.KindFile)})
	}
	return nil
}

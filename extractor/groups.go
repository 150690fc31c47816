/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package extractor

import (
	"context"
	"strings"

	"github.com/nixrecon/micronix/model"
)

// extractGroups runs `cat /etc/group` and parses `name:x:gid:members`.
// Required step.
func (e *Extractor) extractGroups(ctx context.Context, fc *model.FactsContainer) error {
	res, err := e.send(ctx, "cat /etc/group")
	if err != nil {
		return err
	}

	for _, line := range res.Stdout {
		fields := strings.SplitN(line, ":", 4)
		if len(fields) < 4 {
			continue
		}
		name := fields[0]
		members := strings.FieldsFunc(fields[3], func(r rune) bool { return r == ',' })
		fc.SystemGroups[name] = members
	}

	return nil
}

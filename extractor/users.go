/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/nixrecon/micronix/model"
)

// extractUsers runs `cat /etc/passwd | cut -d : -f1` for the username list
// and `cat /etc/passwd` again for the per-user login shell (last colon
// field). Required step.
func (e *Extractor) extractUsers(ctx context.Context, fc *model.FactsContainer) error {
	usersRes, err := e.send(ctx, "cat /etc/passwd | cut -d : -f1")
	if err != nil {
		return err
	}
	if len(usersRes.Stdout) == 0 {
		return fmt.Errorf("%w: `cat /etc/passwd | cut -d : -f1` returned no users", ErrRequiredParseFailed)
	}
	fc.SystemUsers = append(fc.SystemUsers, usersRes.Stdout...)

	passwdRes, err := e.send(ctx, "cat /etc/passwd")
	if err != nil {
		return err
	}
	for _, line := range passwdRes.Stdout {
		fields := strings.Split(line, ":")
		if len(fields) == 0 {
			continue
		}
		user := fields[0]
		shell := fields[len(fields)-1]
		fc.UsersShell[user] = shell
	}

	return nil
}

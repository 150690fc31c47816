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
)

var (
	uidRegexp = regexp.MustCompile(`uid=\d+\((\w+)\)`)
	gidRegexp = regexp.MustCompile(`gid=\d+\((\w+)\)`)
)

// extractIdentity runs `id` and fills CurrentUser/CurrentGroup. Required
// step: a parse failure is fatal.
func (e *Extractor) extractIdentity(ctx context.Context, fc *model.FactsContainer) error {
	res, err := e.send(ctx, "id")
	if err != nil {
		return err
	}

	line := strings.Join(res.Stdout, " ")
	um := uidRegexp.FindStringSubmatch(line)
	gm := gidRegexp.FindStringSubmatch(line)
	if um == nil || gm == nil {
		return fmt.Errorf("%w: could not parse `id` output: %q", ErrRequiredParseFailed, line)
	}

	fc.CurrentUser = um[1]
	fc.CurrentGroup = gm[1]
	return nil
}

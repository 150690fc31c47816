/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package extractor

import (
	"context"
	"regexp"

	"github.com/nixrecon/micronix/model"
)

// cronLineRe matches a crontab(5)-style line; non-matching lines are
// skipped silently.
var cronLineRe = regexp.MustCompile(`^\s*(?P<m>[*0-9/]+)\s+(?P<h>[*0-9]+)\s+(?P<dm>[*0-9]+)\s+(?P<mo>[*0-9\w]+)\s+(?P<dw>[*0-9\w]+)\s+(?P<user>[\w0-9_-]+)\s+(?P<cmd>.*)$`)

// extractCron parses /etc/crontab. Optional step.
func (e *Extractor) extractCron(ctx context.Context, fc *model.FactsContainer) error {
	res, err := e.send(ctx, "cat /etc/crontab")
	if err != nil {
		return err
	}

	names := cronLineRe.SubexpNames()
	for _, line := range res.Stdout {
		m := cronLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		job := model.CronJob{}
		for i, name := range names {
			switch name {
			case "m":
				job.Minute = m[i]
			case "h":
				job.Hour = m[i]
			case "dm":
				job.DayMonth = m[i]
			case "mo":
				job.Month = m[i]
			case "dw":
				job.DayWeek = m[i]
			case "user":
				job.User = m[i]
			case "cmd":
				job.Cmd = m[i]
			}
		}
		fc.CronJobs = append(fc.CronJobs, job)
	}

	return nil
}

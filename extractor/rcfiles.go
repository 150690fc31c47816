/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package extractor

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nixrecon/micronix/config"
	"github.com/nixrecon/micronix/model"
)

// extractRCFiles finds shell-initialization files under /home and records
// each one, with the shells that load it, per the fixed RCFileShells table.
// Optional step.
func (e *Extractor) extractRCFiles(ctx context.Context, fc *model.FactsContainer) error {
	res, err := e.send(ctx, rcFindCommand())
	if err != nil {
		return err
	}

	var matched []string
	shellsByPath := make(map[string][]string, len(res.Stdout))
	for _, path := range res.Stdout {
		lowered := strings.ToLower(path)
		base := filepath.Base(lowered)
		shells, ok := config.RCFileShells[base]
		if !ok {
			continue
		}
		matched = append(matched, lowered)
		shellsByPath[lowered] = shells
	}
	if len(matched) == 0 {
		return nil
	}

	nodes, err := e.statAndFile(ctx, matched)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		fc.RCFiles = append(fc.RCFiles, model.RCFile{
			File:   model.File{Node: withKind(n, model.KindFile)},
			Shells: shellsByPath[n.Path],
		})
	}

	return nil
}

// rcFindCommand builds `find /home -iname .bashrc -or -iname .bash_profile
// ...` from the fixed rc-filename table, in stable (sorted) order so the
// emitted command is deterministic across runs.
func rcFindCommand() string {
	names := make([]string, 0, len(config.RCFileShells))
	for name := range config.RCFileShells {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("find /home")
	for i, name := range names {
		if i == 0 {
			b.WriteString(" -iname ")
		} else {
			b.WriteString(" -or -iname ")
		}
		b.WriteString("\"" + name + "\"")
	}
	return b.String()
}

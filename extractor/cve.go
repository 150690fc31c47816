/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package extractor

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nixrecon/micronix/catalog"
	"github.com/nixrecon/micronix/config"
	"github.com/nixrecon/micronix/model"
)

var versionRe = regexp.MustCompile(`\d+(\.\d+)+`)

// matchCVEs walks every Executable whose basename matches a binary_spec.name
// in the CVE catalog and, for each spec whose version glob and runtime
// dependencies all pass, appends its CVE predicate to the executable's
// CVECapabilities. Failures are per-binary and non-fatal: a probe timeout or
// a failed precondition just skips that spec.
func (e *Extractor) matchCVEs(ctx context.Context, fc *model.FactsContainer, cat *catalog.Catalog) {
	specsByName := make(map[string][]specWithPredicate)
	for _, entry := range cat.CVEs {
		pred := ""
		if len(entry.Predicates) > 0 {
			pred = entry.Predicates[0]
		}
		for _, spec := range entry.Binaries {
			specsByName[spec.Name] = append(specsByName[spec.Name], specWithPredicate{spec: spec, predicate: pred})
		}
	}
	if len(specsByName) == 0 {
		return
	}

	for _, exe := range fc.Executables {
		base := filepath.Base(exe.Path)
		specs, ok := specsByName[base]
		if !ok {
			continue
		}
		for _, sp := range specs {
			matched, err := e.matchesBinarySpec(ctx, fc, exe, sp.spec)
			if err != nil {
				e.logger.Sugar().Debugw("cve probe skipped", "binary", exe.Path, "err", err)
				continue
			}
			if matched {
				exe.CVECapabilities = append(exe.CVECapabilities, sp.predicate)
			}
		}
		if len(exe.CVECapabilities) > 0 {
			fc.BinariesWithCVE = append(fc.BinariesWithCVE, exe)
		}
	}
}

type specWithPredicate struct {
	spec      model.BinarySpec
	predicate string
}

func (e *Extractor) matchesBinarySpec(ctx context.Context, fc *model.FactsContainer, exe *model.Executable, spec model.BinarySpec) (bool, error) {
	version, err := e.probeVersion(ctx, exe.Path, spec.VersionCommand)
	if err != nil {
		return false, err
	}

	matched := false
	for _, glob := range spec.VersionGlobs {
		ok, err := path.Match(glob, version)
		if err == nil && ok {
			matched = true
			break
		}
	}
	if !matched {
		return false, nil
	}

	for _, pattern := range spec.Dependencies.Files {
		res, err := e.send(ctx, fmt.Sprintf(`find / -xdev -type f %s -exec readlink -f {} \;`, pattern))
		if err != nil || len(res.Stdout) == 0 {
			return false, nil
		}
	}

	for _, needle := range spec.Dependencies.Executables {
		if !anyExecutablePathContains(fc, needle) {
			return false, nil
		}
	}

	for _, cond := range spec.Dependencies.Conditions {
		ok, err := e.evaluateCondition(ctx, cond)
		if err != nil || !ok {
			return false, nil
		}
	}

	return true, nil
}

// probeVersion runs `<path> <versionCommand>` under the fixed CVE probe
// timeout and extracts the first semantic-version-shaped substring.
func (e *Extractor) probeVersion(ctx context.Context, exePath, versionCommand string) (string, error) {
	probeCtx, cancel := context.WithTimeout(ctx, config.CVEProbeTimeout)
	defer cancel()

	res, err := e.tp.Send(probeCtx, fmt.Sprintf("%s %s", exePath, versionCommand))
	if err != nil {
		return "", fmt.Errorf("version probe: %w", err)
	}

	for _, line := range append(res.Stdout, res.Stderr...) {
		if m := versionRe.FindString(line); m != "" {
			return m, nil
		}
	}
	return "", fmt.Errorf("version probe: no version found in output")
}

// evaluateCondition runs the single op1 command for a dependency condition.
// user_can_create_file's pass/fail sense is inverted relative to its name:
// it is satisfied when `touch` produces non-empty output, which in practice
// means the touch failed and printed a permission error. This is a known,
// intentionally preserved deviation from the natural reading of the name.
func (e *Extractor) evaluateCondition(ctx context.Context, cond model.Condition) (bool, error) {
	switch cond.Type {
	case "not_empty":
		res, err := e.send(ctx, cond.Op1)
		if err != nil {
			return false, err
		}
		return len(res.Stdout) > 0, nil
	case "user_can_create_file":
		res, err := e.send(ctx, "touch NLZEnKsM2k.txt")
		if err != nil {
			return false, err
		}
		return len(res.Stdout) > 0, nil
	default:
		return false, fmt.Errorf("unknown condition type %q", cond.Type)
	}
}

func anyExecutablePathContains(fc *model.FactsContainer, needle string) bool {
	for _, exe := range fc.Executables {
		if strings.Contains(exe.Path, needle) {
			return true
		}
	}
	return false
}

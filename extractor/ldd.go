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
	lddHeaderRe   = regexp.MustCompile(`^(\S.*):$`)
	lddNotFoundRe = regexp.MustCompile(`^\s+.*=> not found$`)
	lddNotDynRe   = regexp.MustCompile(`^\s+not a dynamic executable$`)
	lddVDSORe     = regexp.MustCompile(`^\s+(linux-vdso\.so|linux-gate\.so).*$`)
	lddArrowRe    = regexp.MustCompile(`^\s+.*? => (\S+).*$`)
	lddPlainRe    = regexp.MustCompile(`^\s+(\S+).*$`)
)

// resolveSharedObjects runs `ldd` over every known executable, resolves the
// reported dependency paths with `readlink -m`, synthesizes Executable
// entries for any dependency not already present, and links each
// Executable.SoDeps to its (now resolved) dependencies by reference.
func (e *Extractor) resolveSharedObjects(ctx context.Context, fc *model.FactsContainer) error {
	paths := make([]string, 0, len(fc.Executables))
	for _, exe := range fc.Executables {
		paths = append(paths, exe.Path)
	}
	if len(paths) == 0 {
		return nil
	}

	depsByExe, allDeps, err := e.runLdd(ctx, paths)
	if err != nil {
		return err
	}
	if len(allDeps) == 0 {
		return nil
	}

	resolved, err := e.resolvePaths(ctx, allDeps)
	if err != nil {
		return err
	}

	for _, exe := range fc.Executables {
		for _, relDep := range depsByExe[exe.Path] {
			resolvedPath, ok := resolved[relDep]
			if !ok {
				continue
			}
			dep, exists := fc.ExecutableByPath(resolvedPath)
			if !exists {
				dep, err = e.synthesizeExecutable(ctx, fc, resolvedPath)
				if err != nil {
					continue
				}
			}
			exe.SoDeps = append(exe.SoDeps, dep)
		}
	}

	return nil
}

// runLdd batches `ldd` over paths and parses each per-executable section.
func (e *Extractor) runLdd(ctx context.Context, paths []string) (map[string][]string, []string, error) {
	depsByExe := make(map[string][]string)
	seenDeps := make(map[string]struct{})
	var allDeps []string

	for _, batch := range chunk(paths, e.opts.LddBatchSize) {
		args, kept := safeBatch(batch)
		if len(args) == 0 {
			continue
		}
		cmd := fmt.Sprintf("ldd %s", strings.Join(args, " "))
		res, err := e.send(ctx, cmd)
		if err != nil {
			return nil, nil, err
		}

		var current string
		for _, line := range res.Stdout {
			if m := lddHeaderRe.FindStringSubmatch(line); m != nil {
				current = strings.TrimSuffix(m[1], ":")
				continue
			}
			if current == "" {
				continue
			}
			if lddNotFoundRe.MatchString(line) || lddNotDynRe.MatchString(line) || lddVDSORe.MatchString(line) {
				continue
			}

			var dep string
			if m := lddArrowRe.FindStringSubmatch(line); m != nil {
				dep = m[1]
			} else if m := lddPlainRe.FindStringSubmatch(line); m != nil {
				dep = m[1]
			} else {
				continue
			}

			depsByExe[current] = append(depsByExe[current], dep)
			if _, ok := seenDeps[dep]; !ok {
				seenDeps[dep] = struct{}{}
				allDeps = append(allDeps, dep)
			}
		}
		_ = kept
	}

	return depsByExe, allDeps, nil
}

// resolvePaths runs `readlink -m` over paths and zips input order against
// output order (the transport guarantees line-order preservation).
func (e *Extractor) resolvePaths(ctx context.Context, paths []string) (map[string]string, error) {
	out := make(map[string]string, len(paths))

	for _, batch := range chunk(paths, e.opts.FileBatchSize) {
		args, kept := safeBatch(batch)
		if len(args) == 0 {
			continue
		}
		cmd := fmt.Sprintf("readlink -m %s", strings.Join(args, " "))
		res, err := e.send(ctx, cmd)
		if err != nil {
			return nil, err
		}
		for i, resolved := range res.Stdout {
			if i >= len(kept) {
				break
			}
			out[kept[i]] = strings.ToLower(resolved)
		}
	}

	return out, nil
}

// synthesizeExecutable builds and appends a new Executable for a resolved
// shared-object path not already present in fc.Executables, preserving
// discovery order (appended at the point of first reference).
func (e *Extractor) synthesizeExecutable(ctx context.Context, fc *model.FactsContainer, path string) (*model.Executable, error) {
	nodes, err := e.statAndFile(ctx, []string{path})
	if err != nil || len(nodes) == 0 {
		return nil, fmt.Errorf("synthesize executable %s: %w", path, err)
	}
	exe := &model.Executable{Node: nodes[0]}
	exe.Kind = classifyExecutable(exe.Node)
	fc.Executables = append(fc.Executables, exe)
	return exe, nil
}

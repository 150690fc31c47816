/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package extractor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nixrecon/micronix/model"
	"github.com/nixrecon/micronix/utils"
)

// extractExecutables walks every configured PoI directory for executable
// files, then stats and file(1)s them in batches to build model.Executable
// entries. Discovery order is preserved: PoI-directory order, then
// `find`'s own output order within each directory. Required step.
func (e *Extractor) extractExecutables(ctx context.Context, fc *model.FactsContainer) error {
	var paths []string
	for _, dir := range e.opts.PoIDirs {
		cmd := fmt.Sprintf("find %s -xdev -type f -executable -exec readlink -f {} \\;", utils.ShellQuote(dir))
		res, err := e.send(ctx, cmd)
		if err != nil {
			return err
		}
		paths = append(paths, res.Stdout...)
	}

	if len(paths) == 0 {
		return fmt.Errorf("%w: no executables discovered under any PoI directory", ErrRequiredParseFailed)
	}

	nodes, err := e.statAndFile(ctx, paths)
	if err != nil {
		return err
	}

	for _, n := range nodes {
		exe := &model.Executable{Node: n}
		exe.Kind = classifyExecutable(n)
		fc.Executables = append(fc.Executables, exe)
	}

	return nil
}

// classifyExecutable applies the discriminant rule: SHARED_OBJECT iff the
// `file` type string mentions "shared object"; else USER_EXECUTABLE iff the
// path starts with /home or /opt; else SYSTEM_EXECUTABLE.
func classifyExecutable(n model.Node) model.Kind {
	if strings.Contains(n.Type, "shared object") {
		return model.KindSharedObject
	}
	if strings.HasPrefix(n.Path, "/home") || strings.HasPrefix(n.Path, "/opt") {
		return model.KindUserExecutable
	}
	return model.KindSystemExecutable
}

// statAndFile batches `stat` and `file` over paths (dropping any path with
// an unsafe shell character from both batches) and merges the results into
// Nodes, preserving input order.
func (e *Extractor) statAndFile(ctx context.Context, paths []string) ([]model.Node, error) {
	perms := make(map[string]uint16)
	owners := make(map[string]string)
	groups := make(map[string]string)
	types := make(map[string]string)

	for _, batch := range chunk(paths, e.opts.StatBatchSize) {
		args, kept := safeBatch(batch)
		if len(args) == 0 {
			continue
		}
		cmd := fmt.Sprintf("stat %s -c '%%F:%%n:%%a:%%U:%%G'", strings.Join(args, " "))
		res, err := e.send(ctx, cmd)
		if err != nil {
			return nil, err
		}
		for _, line := range res.Stdout {
			parseStatLine(line, perms, owners, groups)
		}
		_ = kept
	}

	for _, batch := range chunk(paths, e.opts.FileBatchSize) {
		args, kept := safeBatch(batch)
		if len(args) == 0 {
			continue
		}
		cmd := fmt.Sprintf("file %s", strings.Join(args, " "))
		res, err := e.send(ctx, cmd)
		if err != nil {
			return nil, err
		}
		for _, line := range res.Stdout {
			parseFileLine(line, types)
		}
		_ = kept
	}

	nodes := make([]model.Node, 0, len(paths))
	for _, p := range paths {
		if utils.HasUnsafeShellChars(p) {
			continue // dropped from batch, per shell-quoting rule
		}
		nodes = append(nodes, model.Node{
			Path:  strings.ToLower(p),
			Perms: perms[p],
			Owner: owners[p],
			Group: groups[p],
			Type:  types[p],
		})
	}
	return nodes, nil
}

// parseStatLine parses one `stat -c '%F:%n:%a:%U:%G'` output line:
// filetype:path:octalperm:owner:group.
func parseStatLine(line string, perms map[string]uint16, owners, groups map[string]string) {
	fields := strings.SplitN(line, ":", 5)
	if len(fields) != 5 {
		return
	}
	_, path, octal, owner, group := fields[0], fields[1], fields[2], fields[3], fields[4]
	n, err := strconv.ParseUint(octal, 8, 16)
	if err != nil {
		return
	}
	perms[path] = uint16(n)
	owners[path] = owner
	groups[path] = group
}

// parseFileLine parses one `file <path>` output line: "path: type string".
func parseFileLine(line string, types map[string]string) {
	path, typ, ok := strings.Cut(line, ": ")
	if !ok {
		return
	}
	types[path] = typ
}

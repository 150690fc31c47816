/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package extractor

import (
	"context"
	"fmt"
	"os/user"
	"strings"

	"github.com/nixrecon/micronix/model"
)

// extractWritable finds files and directories the current user can write
// but does not own. Optional step: an error leaves the fields not yet
// filled empty (files are filled before directories).
func (e *Extractor) extractWritable(ctx context.Context, fc *model.FactsContainer) error {
	whoami := currentUsername(fc)

	fileRes, err := e.send(ctx, fmt.Sprintf(`find / -xdev -type f -writable -not -user %s -exec readlink -f {} \;`, whoami))
	if err != nil {
		return err
	}
	nodes, err := e.statAndFile(ctx, fileRes.Stdout)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		fc.WritableFiles = append(fc.WritableFiles, model.File{Node: withKind(n, model.KindFile)})
	}

	dirRes, err := e.send(ctx, fmt.Sprintf(`find / -xdev -type d -writable -not -user %s -exec readlink -f {} \;`, whoami))
	if err != nil {
		return err
	}
	dirNodes, err := e.statAndFile(ctx, dirRes.Stdout)
	if err != nil {
		return err
	}
	for _, n := range dirNodes {
		fc.WritableDirectories = append(fc.WritableDirectories, model.Directory{Node: withKind(n, model.KindDirectory)})
	}

	return nil
}

func withKind(n model.Node, k model.Kind) model.Node {
	n.Kind = k
	return n
}

// currentUsername resolves the local whoami equivalent for the `-not -user`
// predicate; falls back to the OS user running the extractor process if
// FactsContainer has not been populated yet (should not normally happen,
// since identity extraction always runs first).
func currentUsername(fc *model.FactsContainer) string {
	if fc.CurrentUser != "" {
		return fc.CurrentUser
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return strings.TrimSpace("")
}

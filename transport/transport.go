/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */

// Package transport abstracts the command channel into the target host: a
// bound listener, a connect-back shell, or a real SSH session. The
// extractor only ever talks to the Transport interface.
package transport

import "context"

// CommandResult is the parsed outcome of a single Transport.Send.
type CommandResult struct {
	Stdout   []string
	Stderr   []string
	ExitCode int
}

// Transport is the abstract command channel the extractor drives.
type Transport interface {
	// Send issues cmd on the remote host and returns its line-split,
	// ANSI-stripped output.
	Send(ctx context.Context, cmd string) (CommandResult, error)

	// Upload copies a local file to the remote host.
	Upload(ctx context.Context, local, remote string) error

	// Download copies a remote file to the local host.
	Download(ctx context.Context, remote, local string) error

	// Close releases any underlying connection.
	Close() error
}

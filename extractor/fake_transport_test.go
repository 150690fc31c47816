/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package extractor

import (
	"context"
	"strings"

	"github.com/nixrecon/micronix/transport"
)

// fakeTransport answers Send with a canned CommandResult looked up by exact
// command string, so extractor steps can be tested without a real shell.
type fakeTransport struct {
	responses map[string]transport.CommandResult
	calls     []string
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{responses: make(map[string]transport.CommandResult)}
}

func (f *fakeTransport) on(cmd string, stdout ...string) *fakeTransport {
	f.responses[cmd] = transport.CommandResult{Stdout: stdout}
	return f
}

func (f *fakeTransport) Send(ctx context.Context, cmd string) (transport.CommandResult, error) {
	f.calls = append(f.calls, cmd)
	if res, ok := f.responses[cmd]; ok {
		return res, nil
	}
	for pattern, res := range f.responses {
		if strings.Contains(cmd, pattern) {
			return res, nil
		}
	}
	return transport.CommandResult{}, nil
}

func (f *fakeTransport) Upload(ctx context.Context, local, remote string) error   { return nil }
func (f *fakeTransport) Download(ctx context.Context, remote, local string) error { return nil }
func (f *fakeTransport) Close() error                                            { return nil }

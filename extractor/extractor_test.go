/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package extractor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func baseTransport() *fakeTransport {
	return newFakeTransport().
		on("id", "uid=0(root) gid=0(root) groups=0(root)").
		on("cat /etc/passwd | cut -d : -f1", "root").
		on("cat /etc/passwd", "root:x:0:0:root:/root:/bin/bash").
		on("cat /etc/group", "root:x:0:").
		on("find '/bin'", "/bin/find").
		on("stat", "regular file:/bin/find:755:root:root").
		on("file ", "/bin/find: ELF 64-bit LSB executable")
}

func TestRunSucceedsThroughOptionalStepFailures(t *testing.T) {
	tp := baseTransport()
	opts := DefaultOptions()
	opts.PoIDirs = []string{"/bin"}
	e := New(tp, zap.NewNop(), opts)

	fc, err := e.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "root", fc.CurrentUser)
	require.Len(t, fc.Executables, 1)
}

func TestRunAbortsOnFatalIdentityFailure(t *testing.T) {
	tp := newFakeTransport().on("id", "not parseable")
	opts := DefaultOptions()
	opts.PoIDirs = []string{"/bin"}
	e := New(tp, zap.NewNop(), opts)

	_, err := e.Run(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, IsFatal(err))
}

func TestRunAbortsOnFatalExecutablesFailure(t *testing.T) {
	tp := newFakeTransport().
		on("id", "uid=0(root) gid=0(root) groups=0(root)").
		on("cat /etc/passwd | cut -d : -f1", "root").
		on("cat /etc/passwd", "root:x:0:0:root:/root:/bin/bash").
		on("cat /etc/group", "root:x:0:")
	opts := DefaultOptions()
	opts.PoIDirs = []string{"/bin"}
	e := New(tp, zap.NewNop(), opts)

	_, err := e.Run(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, IsFatal(err))
}

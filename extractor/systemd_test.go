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

	"github.com/nixrecon/micronix/model"
)

func TestExtractSystemdParsesExecDirectives(t *testing.T) {
	tp := newFakeTransport().
		on("find /etc/systemd", "/etc/systemd/system/backup.service").
		on("stat", "regular file:/etc/systemd/system/backup.service:644:root:root").
		on("file ", "/etc/systemd/system/backup.service: ASCII text").
		on("cat '/etc/systemd/system/backup.service'",
			"[Service]",
			"ExecStart=/usr/bin/backup.sh --daily",
			"ExecStartPre=-/usr/bin/true",
			"Type=oneshot")

	e := New(tp, zap.NewNop(), DefaultOptions())
	fc := model.NewFactsContainer()

	require.NoError(t, e.extractSystemd(context.Background(), fc))
	require.Len(t, fc.SystemdServices, 1)
	unit := fc.SystemdServices[0]
	assert.Equal(t, "/etc/systemd/system/backup.service", unit.File.Path)
	assert.Equal(t, []string{"/usr/bin/backup.sh", "/usr/bin/true"}, unit.Cmds)
}

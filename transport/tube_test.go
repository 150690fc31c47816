/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEchoRatioIdenticalStringsIsOne(t *testing.T) {
	assert.Equal(t, 1.0, echoRatio("cat /etc/passwd", "cat /etc/passwd"))
}

func TestEchoRatioBothEmptyIsOne(t *testing.T) {
	assert.Equal(t, 1.0, echoRatio("", ""))
}

func TestEchoRatioUnrelatedStringsIsLow(t *testing.T) {
	assert.Less(t, echoRatio("root:x:0:0", "cat /etc/passwd"), 0.5)
}

func TestStripEchoRemovesEchoedCommandLine(t *testing.T) {
	stripped, ok := stripEcho("cat /etc/passwd", "cat /etc/passwd")
	assert.True(t, ok)
	assert.Empty(t, stripped)
}

func TestStripEchoRemovesPromptPrefixedEcho(t *testing.T) {
	stripped, ok := stripEcho("user@host:~$ cat /etc/passwd", "cat /etc/passwd")
	assert.True(t, ok)
	assert.Empty(t, stripped)
}

func TestStripEchoLeavesUnrelatedOutputIntact(t *testing.T) {
	line := "root:x:0:0::/root:/bin/bash"
	stripped, ok := stripEcho(line, "cat /etc/passwd")
	assert.False(t, ok)
	assert.Equal(t, line, stripped)
}

/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSIRemovesEscapeSequences(t *testing.T) {
	in := "\x1b[0;32mroot\x1b[0m:x:0:0::/root:/bin/bash"
	assert.Equal(t, "root:x:0:0::/root:/bin/bash", stripANSI(in))
}

func TestStripANSINoOpOnPlainText(t *testing.T) {
	assert.Equal(t, "plain text", stripANSI("plain text"))
}

func TestSplitLinesDropsTrailingBlankAndStripsANSI(t *testing.T) {
	raw := "\x1b[0malice\r\nbob\r\n"
	lines := splitLines(raw)
	assert.Equal(t, []string{"alice", "bob"}, lines)
}

func TestSplitLinesEmptyInput(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Nil(t, splitLines("\n"))
}

/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkSplitsIntoFixedSizeGroups(t *testing.T) {
	paths := []string{"a", "b", "c", "d", "e"}
	chunks := chunk(paths, 2)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, chunks)
}

func TestChunkSingleGroupWhenSizeExceedsLength(t *testing.T) {
	paths := []string{"a", "b"}
	chunks := chunk(paths, 10)
	assert.Equal(t, [][]string{{"a", "b"}}, chunks)
}

func TestSafeBatchDropsUnsafePaths(t *testing.T) {
	paths := []string{"/usr/bin/find", "/tmp/with space", "/tmp/with'quote"}
	args, kept := safeBatch(paths)

	assert.Equal(t, []string{"/usr/bin/find"}, kept)
	assert.Equal(t, []string{"'/usr/bin/find'"}, args)
}

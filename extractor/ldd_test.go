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

func TestResolveSharedObjectsLinksAndSynthesizes(t *testing.T) {
	tp := newFakeTransport().
		on("ldd", "/bin/find:",
			"	linux-vdso.so.1 (0x00007ffd)",
			"	libc.so.6 => /lib/x86_64-linux-gnu/libc.so.6 (0x00007f)",
			"	/lib64/ld-linux-x86-64.so.2 (0x00007f)").
		on("readlink -m", "/lib/x86_64-linux-gnu/libc.so.6", "/lib64/ld-linux-x86-64.so.2").
		on("stat", "regular file:/lib/x86_64-linux-gnu/libc.so.6:755:root:root").
		on("file ", "/lib/x86_64-linux-gnu/libc.so.6: ELF 64-bit LSB shared object")

	e := New(tp, zap.NewNop(), DefaultOptions())
	fc := model.NewFactsContainer()
	fc.Executables = append(fc.Executables, &model.Executable{
		Node: model.Node{Path: "/bin/find", Kind: model.KindSystemExecutable},
	})

	require.NoError(t, e.resolveSharedObjects(context.Background(), fc))

	find := fc.Executables[0]
	require.Len(t, find.SoDeps, 2)

	paths := []string{find.SoDeps[0].Path, find.SoDeps[1].Path}
	assert.Contains(t, paths, "/lib/x86_64-linux-gnu/libc.so.6")
	assert.Contains(t, paths, "/lib64/ld-linux-x86-64.so.2")

	libc, ok := fc.ExecutableByPath("/lib/x86_64-linux-gnu/libc.so.6")
	require.True(t, ok)
	assert.Equal(t, model.KindSharedObject, libc.Kind)
}

func TestResolveSharedObjectsSkipsNotFoundAndVDSOEntries(t *testing.T) {
	tp := newFakeTransport().
		on("ldd", "/bin/static:",
			"	not a dynamic executable",
			"/bin/dyn:",
			"	libmissing.so.1 => not found",
			"	linux-vdso.so.1 (0x00007ffd)")

	e := New(tp, zap.NewNop(), DefaultOptions())
	fc := model.NewFactsContainer()
	fc.Executables = append(fc.Executables,
		&model.Executable{Node: model.Node{Path: "/bin/static", Kind: model.KindSystemExecutable}},
		&model.Executable{Node: model.Node{Path: "/bin/dyn", Kind: model.KindSystemExecutable}},
	)

	require.NoError(t, e.resolveSharedObjects(context.Background(), fc))
	assert.Empty(t, fc.Executables[0].SoDeps)
	assert.Empty(t, fc.Executables[1].SoDeps)
}

func TestResolveSharedObjectsNoopWhenNoExecutables(t *testing.T) {
	e := New(newFakeTransport(), zap.NewNop(), DefaultOptions())
	fc := model.NewFactsContainer()
	require.NoError(t, e.resolveSharedObjects(context.Background(), fc))
}

package resolve

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStdlibInclude(t *testing.T) {
	assert.True(t, IsStdlibInclude("std/io.zed"))
	assert.True(t, IsStdlibInclude("std/nested/mod.zed"))
	assert.False(t, IsStdlibInclude("helper.zed"))
	assert.False(t, IsStdlibInclude("./std-ish/io.zed"))
}

func TestResolveStdlibRebasesAgainstStdlibRoot(t *testing.T) {
	got, err := Resolve("std/io.zed", "/src", "/opt/zed-std")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/opt/zed-std", "io.zed"), got)
}

func TestResolveRelativeRebasesAgainstCurrentDir(t *testing.T) {
	got, err := Resolve("helper.zed", "/src/project", "/opt/zed-std")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/src/project", "helper.zed"), got)
}

func TestResolveCanonicalizesDotSegments(t *testing.T) {
	got, err := Resolve("./sub/../helper.zed", "/src/project", "/opt/zed-std")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/src/project", "helper.zed"), got)
}

func TestDefaultStdlibRootUsesHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	got := DefaultStdlibRoot()
	assert.Equal(t, filepath.Join("/home/tester", ".zed-lang", "std", "version", "1.0.0"), got)
}

package compiler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileHelloIncludesStdlibAndLinksPrint(t *testing.T) {
	asm, err := Compile(Options{
		InputPath:  filepath.Join("..", "..", "testdata", "programs", "hello.zed"),
		StdlibPath: filepath.Join("..", "..", "testdata", "stdlib"),
	})
	require.NoError(t, err)

	assert.Contains(t, asm, "main:")
	assert.Contains(t, asm, "print:")
	assert.Contains(t, asm, "println:")
	assert.Contains(t, asm, "call println")
	assert.Contains(t, asm, "__zed_strlen:")
	assert.Contains(t, asm, "__zed_itoa:")
	assert.Contains(t, asm, ".global _start")

	// the entry file's own top-level "main();" call must run after
	// the included file's init routine (std/io.zed declares no
	// non-function top-level code, so no __init_0 is expected here).
	assert.NotContains(t, asm, "__init_0")
}

func TestCompileMissingFileIsAnError(t *testing.T) {
	_, err := Compile(Options{InputPath: "does-not-exist.zed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error:")
}

func TestCompileSyntaxErrorRendersDiagnostic(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.zed")

	require.NoError(t, os.WriteFile(bad, []byte("fn main( { return; }\n"), 0o644))

	_, err := Compile(Options{InputPath: bad})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "error:"))
}

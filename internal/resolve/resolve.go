// Package resolve implements @include path resolution: turning the string
// literal in an @include directive into a canonical filesystem path, either
// rebased against the configured stdlib root (for "std/..." includes) or
// against the including file's directory.
package resolve

import (
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// stdlibPattern is matched with doublestar rather than strings.HasPrefix so
// that include literals are matched as slash-separated glob paths
// regardless of the host's filepath separator; the literal in zed source is
// always forward-slash.
const stdlibPattern = "std/**"

// DefaultStdlibRoot computes $HOME/.zed-lang/std/version/1.0.0, falling back
// to $USERPROFILE on systems without $HOME (i.e. Windows).
func DefaultStdlibRoot() string {
	home := os.Getenv("HOME")
	if home == "" {
		home = os.Getenv("USERPROFILE")
	}

	return filepath.Join(home, ".zed-lang", "std", "version", "1.0.0")
}

// IsStdlibInclude reports whether raw (the string literal from an @include
// directive, always "/"-separated) names a standard-library path.
func IsStdlibInclude(raw string) bool {
	ok, _ := doublestar.Match(stdlibPattern, raw)

	return ok
}

// Resolve turns the raw @include string literal into a canonical,
// absolute path. currentDir is the directory of the file containing the
// directive; stdlibRoot is the configured (or default) stdlib root.
func Resolve(raw, currentDir, stdlibRoot string) (string, error) {
	var target string

	if IsStdlibInclude(raw) {
		rest := raw[len("std/"):]
		target = filepath.Join(stdlibRoot, filepath.FromSlash(rest))
	} else if path.IsAbs(raw) {
		target = filepath.FromSlash(raw)
	} else {
		target = filepath.Join(currentDir, filepath.FromSlash(raw))
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

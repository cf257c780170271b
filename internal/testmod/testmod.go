// Package testmod writes throwaway Go modules for tests that load packages
// through the go command.
package testmod

import (
	"os"
	"path/filepath"
	"testing"
)

// ModulePath is the module path of every module written by Write.
const ModulePath = "example.com/enums"

// Write creates a module in a temporary directory holding files (relative
// path to content) and returns its root.
func Write(tb testing.TB, files map[string]string) string {
	tb.Helper()

	root := tb.TempDir()

	all := map[string]string{"go.mod": "module " + ModulePath + "\n\ngo 1.24\n"}
	for name, content := range files {
		all[name] = content
	}

	for name, content := range all {
		path := filepath.Join(root, filepath.FromSlash(name))

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			tb.Fatalf("creating %s: %v", filepath.Dir(path), err)
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			tb.Fatalf("writing %s: %v", path, err)
		}
	}

	return root
}

// Env is the go command environment for modules written by Write: no
// workspace, no network.
func Env() []string {
	return append(os.Environ(), "GOWORK=off", "GOFLAGS=-mod=mod", "GOPROXY=off")
}

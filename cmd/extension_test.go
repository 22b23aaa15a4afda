package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// withFlags sets the global flags for the duration of a test.
func withFlags(t *testing.T, lang, catalog string, verbose bool) {
	t.Helper()
	oldLang, oldCatalog, oldVerbose := *langFlag, *catalogDir, *Verbose
	*langFlag, *catalogDir, *Verbose = lang, catalog, verbose
	t.Cleanup(func() { *langFlag, *catalogDir, *Verbose = oldLang, oldCatalog, oldVerbose })
}

// captureOutput redirects command output to a builder for the duration of a test.
func captureOutput(t *testing.T) *strings.Builder {
	t.Helper()
	var b strings.Builder
	oldOut, oldPlain := out, *plain
	out, *plain = &b, true
	t.Cleanup(func() { out, *plain = oldOut, oldPlain })
	return &b
}

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension script needs a posix shell")
	}
	tempDir := t.TempDir()
	script := `#!/bin/sh
echo "args=$*"
echo "` + EnvLang + `=$` + EnvLang + `"
echo "` + EnvCatalog + `=$` + EnvCatalog + `"
echo "` + EnvVerbose + `=$` + EnvVerbose + `"
exit 3
`
	if err := os.WriteFile(filepath.Join(tempDir, ExtensionPrefix+"hello"), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write extension: %v", err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	withFlags(t, "it", "/some/content", true)
	output := captureOutput(t)

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found {
		t.Fatal("RunExtension() did not find the extension")
	}
	if code != 3 {
		t.Errorf("RunExtension() exit code = %d, want 3", code)
	}

	for _, want := range []string{
		"args=a b",
		EnvLang + "=it",
		EnvCatalog + "=/some/content",
		EnvVerbose + "=true",
	} {
		if !strings.Contains(output.String(), want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output.String())
		}
	}
}

func TestExtensionNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, _ := RunExtension("missing", nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}

package main

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"testing"
)

// newTestEnv returns an environment writing to buffers, with no
// MDSITE_CONFIG set.
func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(string) string { return "" },
		Listen: net.Listen,
	}
	return env, &stdout, &stderr
}

// writeSite creates an assets directory holding files, keyed by
// slash-separated path, and returns its path.
func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "assets")
	for _, sub := range []string{"md", "static"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o750); err != nil {
			t.Fatalf("creating %s: %v", sub, err)
		}
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("creating parent of %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

// basicSite is an index page, an about page with its own script, a
// stylesheet, and a favicon.
func basicSite() map[string]string {
	return map[string]string{
		"md/index.md":        "# Home\n\nWelcome.\n",
		"md/about.md":        "# About\n",
		"static/main.css":    "body { margin: 0; }\n",
		"static/about.js":    "console.log(1)\n",
		"static/favicon.ico": "ico",
	}
}

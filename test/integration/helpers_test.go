//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupWorkTree creates a synthetic extensions repository: a registry index
// plus one directory per extension, covering every manifest and theme shape
// the surveys care about. Returns the work tree root.
func setupWorkTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	writeFile(t, filepath.Join(root, "extensions.toml"), `[alpha]
submodule = "extensions/alpha"
version = "1.0.0"

[html]
submodule = "extensions/zed"
path = "extensions/html"
version = "0.2.0"

[legacy]
submodule = "extensions/legacy"
version = "0.0.3"

[rusty]
submodule = "extensions/rusty"
version = "0.5.0"

[themeless]
submodule = "extensions/themeless"
version = "0.1.0"
`)

	// --- alpha: themes, one of them broken ---
	writeFile(t, filepath.Join(root, "extensions/alpha/extension.toml"), `id = "alpha"
name = "Alpha Themes"
version = "1.0.0"
schema_version = 1
repository = "https://github.com/example/alpha"
themes = ["themes/alpha.json"]
`)
	writeFile(t, filepath.Join(root, "extensions/alpha/themes/alpha.json"), `{
  // comments are allowed in theme files
  "name": "Alpha",
  "author": "Example",
  "themes": [
    {"name": "Alpha Dark", "appearance": "dark", "style": {"scrollbar_thumb.background": "#111111"}},
    {"name": "Alpha Light", "appearance": "light", "style": {"scrollbar": {"thumb": {"background": "#eeeeee"}}}},
  ],
}`)
	writeFile(t, filepath.Join(root, "extensions/alpha/themes/broken.json"), `{"name": "Broken", "themes": [`)

	// --- html: lives in a sub-path of a monorepo submodule ---
	writeFile(t, filepath.Join(root, "extensions/zed/extensions/html/extension.toml"), `id = "html"
name = "HTML"
version = "0.2.0"
schema_version = 1
repository = "https://github.com/example/zed"

[grammars.html]
repository = "https://github.com/tree-sitter/tree-sitter-html.git"
rev = "abc123"
`)

	// --- legacy: extension.json with a mismatched version ---
	writeFile(t, filepath.Join(root, "extensions/legacy/extension.json"), `{
  "id": "legacy",
  "name": "Legacy",
  "version": "0.0.2",
  "repository": "https://github.com/example/legacy",
}`)

	// --- rusty: declares the same html grammar as html ---
	writeFile(t, filepath.Join(root, "extensions/rusty/extension.toml"), `id = "rusty"
name = "Rusty"
version = "0.5.0"
schema_version = 1

[grammars.rust]
repository = "https://github.com/tree-sitter/tree-sitter-rust"
commit = "def456"

[grammars.html]
repository = "https://github.com/tree-sitter/tree-sitter-html"
rev = "fff000"
`)

	// --- themeless: manifest only ---
	writeFile(t, filepath.Join(root, "extensions/themeless/extension.toml"), `id = "themeless"
name = "Themeless"
version = "0.1.0"
schema_version = 1
`)

	return root
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertContains fails if out does not contain every one of substrs.
func assertContains(t *testing.T, out string, substrs ...string) {
	t.Helper()
	for _, s := range substrs {
		if !strings.Contains(out, s) {
			t.Errorf("output does not contain %q.\nOutput:\n%s", s, out)
		}
	}
}

// assertNotContains fails if out contains any of substrs.
func assertNotContains(t *testing.T, out string, substrs ...string) {
	t.Helper()
	for _, s := range substrs {
		if strings.Contains(out, s) {
			t.Errorf("output unexpectedly contains %q.\nOutput:\n%s", s, out)
		}
	}
}

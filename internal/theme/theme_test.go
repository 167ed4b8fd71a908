package theme

import (
	"os"
	"path/filepath"
	"testing"
)

const goodFamily = `{
  // Comments and trailing commas are fine.
  "name": "Good",
  "author": "someone",
  "themes": [
    {"name": "Good Dark", "appearance": "dark", "style": {"scrollbar_thumb.background": "#000"}},
    {"name": "Good Light", "appearance": "light", "style": {"editor.background": "#fff",},},
  ],
}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestParse(t *testing.T) {
	family, err := Parse([]byte(goodFamily))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if family.Name != "Good" {
		t.Errorf("Name = %q, want %q", family.Name, "Good")
	}
	if len(family.Themes) != 2 {
		t.Fatalf("Themes len = %d, want 2", len(family.Themes))
	}
	if !family.Themes[0].Style.Has("scrollbar_thumb.background") {
		t.Error("expected first theme to have scrollbar_thumb.background")
	}
	if family.Themes[1].Appearance != "light" {
		t.Errorf("Appearance = %q, want %q", family.Themes[1].Appearance, "light")
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := map[string]string{
		"truncated":       `{"themes": [`,
		"wrong type":      `{"themes": {"name": "x"}}`,
		"style not map":   `{"themes": [{"name": "x", "style": [1]}]}`,
		"not json at all": `themes = []`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(content)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoadDir_MissingDir(t *testing.T) {
	res, err := LoadDir(filepath.Join(t.TempDir(), "themes"))
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if res.Found {
		t.Error("Found = true, want false")
	}
	if len(res.Themes) != 0 || len(res.Failures) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestLoadDir_IsolatesFailures(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "themes")
	writeFile(t, filepath.Join(dir, "good.json"), goodFamily)
	writeFile(t, filepath.Join(dir, "bad.json"), `{"themes": [ {"name": `)
	writeFile(t, filepath.Join(dir, "README.md"), "# not a theme")
	if err := os.MkdirAll(filepath.Join(dir, "nested.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	res, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if !res.Found {
		t.Fatal("Found = false, want true")
	}

	if len(res.Failures) != 1 {
		t.Fatalf("Failures len = %d, want 1", len(res.Failures))
	}
	if got := filepath.Base(res.Failures[0].Path); got != "bad.json" {
		t.Errorf("failure path = %q, want bad.json", got)
	}

	if len(res.Themes) != 2 {
		t.Fatalf("Themes len = %d, want 2", len(res.Themes))
	}
	for _, th := range res.Themes {
		if filepath.Base(th.File) != "good.json" {
			t.Errorf("theme %q File = %q, want good.json", th.Name, th.File)
		}
	}
}

func TestLoadDir_FileOrder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "themes")
	writeFile(t, filepath.Join(dir, "b.json"), `{"themes": [{"name": "B1"}, {"name": "B2"}]}`)
	writeFile(t, filepath.Join(dir, "a.json"), `{"themes": [{"name": "A1"}]}`)

	res, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}

	want := []string{"A1", "B1", "B2"}
	if len(res.Themes) != len(want) {
		t.Fatalf("Themes len = %d, want %d", len(res.Themes), len(want))
	}
	for i, th := range res.Themes {
		if th.Name != want[i] {
			t.Errorf("Themes[%d] = %q, want %q", i, th.Name, want[i])
		}
	}
}

func TestFileError(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}

	fe := &FileError{Path: "themes/bad.json", Err: err}
	if fe.Unwrap() != err {
		t.Error("Unwrap() did not return the wrapped error")
	}
	if fe.Error() == "" {
		t.Error("Error() is empty")
	}
}

package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validTOML = `id = "gleam"
name = "Gleam"
version = "0.2.1"
schema_version = 1
description = "Gleam support"
repository = "https://github.com/gleam-lang/zed-gleam"
authors = ["Someone <someone@example.com>"]

[lib]
kind = "Rust"
version = "0.1.0"

[grammars.gleam]
repository = "https://github.com/gleam-lang/tree-sitter-gleam.git"
commit = "426e67087fd62be5f4533581b5916b2cf010fb5b"

[grammars.gleam_test]
repository = "https://github.com/gleam-lang/tree-sitter-gleam"
rev = "abc123"
path = "test"

[language_servers.gleam]
language = "Gleam"
languages = ["Gleam"]

[slash_commands.gleam-docs]
description = "Look up docs"
requires_argument = true

[[capabilities]]
kind = "process:exec"
command = "gleam"
args = ["lsp"]
`

const validJSON = `{
  // Legacy manifests tolerate comments.
  "id": "old-theme",
  "name": "Old Theme",
  "version": "1.0.0",
  "repository": "https://github.com/someone/old-theme",
  "themes": {"Old Theme": "themes/old.json"},
}`

func writeManifest(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestParse_TOML(t *testing.T) {
	m, err := Parse([]byte(validTOML), FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if m.ID != "gleam" {
		t.Errorf("ID = %q, want %q", m.ID, "gleam")
	}
	if m.SchemaVersion != 1 {
		t.Errorf("SchemaVersion = %d, want 1", m.SchemaVersion)
	}
	if m.Repository != "https://github.com/gleam-lang/zed-gleam" {
		t.Errorf("Repository = %q", m.Repository)
	}
	if m.Lib.Kind != "Rust" {
		t.Errorf("Lib.Kind = %q, want %q", m.Lib.Kind, "Rust")
	}
	if len(m.Grammars) != 2 {
		t.Fatalf("Grammars len = %d, want 2", len(m.Grammars))
	}
	if got := m.Grammars["gleam"].Revision(); got != "426e67087fd62be5f4533581b5916b2cf010fb5b" {
		t.Errorf("gleam Revision() = %q", got)
	}
	if got := m.Grammars["gleam_test"].Revision(); got != "abc123" {
		t.Errorf("gleam_test Revision() = %q, want %q", got, "abc123")
	}
	if m.Grammars["gleam_test"].Path != "test" {
		t.Errorf("gleam_test Path = %q, want %q", m.Grammars["gleam_test"].Path, "test")
	}
	if !m.SlashCommands["gleam-docs"].RequiresArgument {
		t.Error("expected gleam-docs to require an argument")
	}
	if len(m.Capabilities) != 1 || m.Capabilities[0].Command != "gleam" {
		t.Errorf("Capabilities = %+v", m.Capabilities)
	}
}

func TestParse_LegacyJSON(t *testing.T) {
	m, err := Parse([]byte(validJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m.ID != "old-theme" {
		t.Errorf("ID = %q, want %q", m.ID, "old-theme")
	}
	if m.SchemaVersion != 0 {
		t.Errorf("SchemaVersion = %d, want 0", m.SchemaVersion)
	}
	if m.Repository != "https://github.com/someone/old-theme" {
		t.Errorf("Repository = %q", m.Repository)
	}
}

func TestParse_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		want   string
	}{
		{"toml without schema_version", "id = \"x\"\nname = \"X\"\nversion = \"1.0.0\"\n", FormatTOML, "schema_version"},
		{"toml without id", "name = \"X\"\nversion = \"1.0.0\"\nschema_version = 1\n", FormatTOML, "id"},
		{"json without version", `{"id": "x", "name": "X"}`, FormatJSON, "version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParse_TypeMismatch(t *testing.T) {
	data := "id = \"x\"\nname = \"X\"\nversion = \"1.0.0\"\nschema_version = \"one\"\n"
	if _, err := Parse([]byte(data), FormatTOML); err == nil {
		t.Fatal("expected error for string schema_version, got nil")
	}
}

func TestParse_GrammarWithoutRevision(t *testing.T) {
	data := "id = \"x\"\nname = \"X\"\nversion = \"1.0.0\"\nschema_version = 1\n\n[grammars.x]\nrepository = \"https://github.com/x/tree-sitter-x\"\n"
	if _, err := Parse([]byte(data), FormatTOML); err == nil {
		t.Fatal("expected error for grammar without rev or commit, got nil")
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("id = "), FormatTOML); err == nil {
		t.Error("expected error for malformed TOML, got nil")
	}
	if _, err := Parse([]byte(`{"id": `), FormatJSON); err == nil {
		t.Error("expected error for malformed JSON, got nil")
	}
}

func TestLoad_PrefersTOML(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, TOMLFileName, validTOML)
	writeManifest(t, dir, JSONFileName, validJSON)

	m, format, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if format != FormatTOML {
		t.Errorf("format = %s, want toml", format)
	}
	if m.ID != "gleam" {
		t.Errorf("ID = %q, want %q", m.ID, "gleam")
	}
}

func TestLoad_FallsBackToJSON(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, JSONFileName, validJSON)

	m, format, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if format != FormatJSON || !format.Legacy() {
		t.Errorf("format = %s, want json", format)
	}
	if m.ID != "old-theme" {
		t.Errorf("ID = %q, want %q", m.ID, "old-theme")
	}
}

func TestLoad_NoFallbackOnBrokenTOML(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, TOMLFileName, "id = ")
	writeManifest(t, dir, JSONFileName, validJSON)

	_, format, err := Load(dir)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if format != FormatTOML || pe.Format != FormatTOML {
		t.Errorf("format = %s, ParseError.Format = %s, want toml", format, pe.Format)
	}
	if filepath.Base(pe.Path) != TOMLFileName {
		t.Errorf("ParseError.Path = %q", pe.Path)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, _, err := Load(t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

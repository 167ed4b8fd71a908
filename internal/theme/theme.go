// Package theme loads the theme families shipped in an extension's themes
// directory. Each file is parsed on its own: a broken file is reported back
// to the caller and the remaining files are still loaded.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/extsurvey/internal/document"
	"github.com/tailscale/hujson"
)

// DirName is the directory, relative to an extension root, holding themes.
const DirName = "themes"

// FileExt is the extension of files recognized as theme families.
const FileExt = ".json"

// Family is the top-level structure of a theme file.
type Family struct {
	Name   string  `json:"name"`
	Author string  `json:"author"`
	Themes []Theme `json:"themes"`
}

// Theme is a single named theme definition.
type Theme struct {
	Name       string       `json:"name"`
	Appearance string       `json:"appearance,omitempty"`
	Style      document.Map `json:"style"`
	// File is the path the theme was read from. Not part of the file format.
	File string `json:"-"`
}

// FileError records a theme file that could not be read or parsed.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to parse theme file at %q: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Result is the outcome of loading a themes directory.
type Result struct {
	// Found is false when the directory does not exist.
	Found bool
	// Themes holds every successfully parsed definition, file by file.
	Themes []Theme
	// Failures holds one entry per file that could not be parsed.
	Failures []*FileError
}

// LoadDir parses every theme file in dir. A missing dir is not an error; it
// yields a Result with Found set to false. The returned error is reserved
// for a directory that exists but cannot be listed.
func LoadDir(dir string) (Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("reading themes directory %s: %w", dir, err)
	}

	res := Result{Found: true}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), FileExt) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		family, err := ParseFile(path)
		if err != nil {
			res.Failures = append(res.Failures, &FileError{Path: path, Err: err})
			continue
		}

		for _, t := range family.Themes {
			t.File = path
			res.Themes = append(res.Themes, t)
		}
	}

	return res, nil
}

// ParseFile reads and parses a single theme family file. Comments and
// trailing commas are accepted.
func ParseFile(path string) (*Family, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a theme family from lenient JSON.
func Parse(data []byte) (*Family, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}

	var family Family
	if err := json.Unmarshal(std, &family); err != nil {
		return nil, err
	}
	return &family, nil
}

package registry

import (
	"fmt"
	"path/filepath"
)

// DefaultFileName is the registry index file inside the working tree.
const DefaultFileName = "extensions.toml"

// Entry is one extension declared in the registry index.
type Entry struct {
	ID        string `toml:"-" json:"id"`
	Submodule string `toml:"submodule" json:"submodule"` // checkout location, relative to the working tree
	Version   string `toml:"version" json:"version"`
	Path      string `toml:"path" json:"path,omitempty"` // optional sub-path inside the submodule
}

// Dir returns the extension's root directory under the working tree root.
func (e Entry) Dir(root string) string {
	dir := filepath.Join(root, filepath.FromSlash(e.Submodule))
	if e.Path != "" {
		dir = filepath.Join(dir, filepath.FromSlash(e.Path))
	}
	return dir
}

// LoadError reports a registry index that could not be read or parsed. It
// is fatal to a survey run.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading registry index %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

package registry

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Index is the loaded registry: read-only for the duration of a run.
type Index struct {
	entries map[string]Entry
	ids     []string // sorted
}

// New builds an index from in-memory entries. Later duplicates of an id
// replace earlier ones.
func New(entries ...Entry) *Index {
	idx := &Index{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		idx.entries[e.ID] = e
	}
	idx.sortIDs()
	return idx
}

// Load reads the registry index file from the working tree root. An empty
// fileName selects DefaultFileName.
func Load(root, fileName string) (*Index, error) {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return LoadFile(filepath.Join(root, fileName))
}

// LoadFile reads and parses a registry index at path. Every table must
// declare submodule and version.
func LoadFile(path string) (*Index, error) {
	var raw map[string]Entry
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	idx := &Index{entries: make(map[string]Entry, len(raw))}
	for id, e := range raw {
		for _, key := range []string{"submodule", "version"} {
			if !meta.IsDefined(id, key) {
				return nil, &LoadError{Path: path, Err: fmt.Errorf("extension %q: missing %s", id, key)}
			}
		}
		if strings.TrimSpace(e.Submodule) == "" {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("extension %q: empty submodule", id)}
		}

		e.ID = id
		idx.entries[id] = e
	}
	idx.sortIDs()

	return idx, nil
}

func (i *Index) sortIDs() {
	i.ids = make([]string, 0, len(i.entries))
	for id := range i.entries {
		i.ids = append(i.ids, id)
	}
	sort.Strings(i.ids)
}

// Len returns the number of entries.
func (i *Index) Len() int { return len(i.ids) }

// Get returns the entry for id.
func (i *Index) Get(id string) (Entry, bool) {
	e, ok := i.entries[id]
	return e, ok
}

// Entries returns all entries ordered by id.
func (i *Index) Entries() []Entry {
	out := make([]Entry, 0, len(i.ids))
	for _, id := range i.ids {
		out = append(out, i.entries[id])
	}
	return out
}

// Select returns an index restricted to ids. Every id must be present.
func (i *Index) Select(ids []string) (*Index, error) {
	var selected []Entry
	var unknown []string
	for _, id := range ids {
		e, ok := i.Get(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		selected = append(selected, e)
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown extension(s): %s", strings.Join(unknown, ", "))
	}
	return New(selected...), nil
}

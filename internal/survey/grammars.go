package survey

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/agentx-labs/extsurvey/internal/manifest"
	"github.com/agentx-labs/extsurvey/internal/report"
)

// DuplicateGrammarsHeading titles the post-pass group of grammar sources
// declared by more than one extension.
const DuplicateGrammarsHeading = "Grammars provided by multiple extensions"

// Grammars lists the grammars each extension declares and, once every
// extension has been seen, the sources that more than one extension ships.
type Grammars struct {
	// providers maps a canonical source to declaring extension ids in
	// traversal order.
	providers map[string][]string
}

// NewGrammars creates a grammars survey with an empty reverse index.
func NewGrammars() *Grammars {
	return &Grammars{providers: make(map[string][]string)}
}

func (g *Grammars) Name() string       { return "grammars" }
func (g *Grammars) Title() string      { return "Extensions providing grammars" }
func (g *Grammars) ItemsLabel() string { return "Grammars" }
func (g *Grammars) Needs() Needs       { return Needs{Manifest: true} }

func (g *Grammars) Evaluate(s *Subject) Finding {
	if s.Manifest == nil || len(s.Manifest.Grammars) == 0 {
		return Finding{}
	}

	names := make([]string, 0, len(s.Manifest.Grammars))
	for name := range s.Manifest.Grammars {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]string, 0, len(names))
	for _, name := range names {
		grammar := s.Manifest.Grammars[name]

		item := fmt.Sprintf("`%s`: repo %s, rev %s", name, grammar.Repository, grammar.Revision())
		if grammar.Path != "" {
			item += ", path " + grammar.Path
		}
		items = append(items, item)

		source := CanonicalSource(grammar)
		if !slices.Contains(g.providers[source], s.Entry.ID) {
			g.providers[source] = append(g.providers[source], s.Entry.ID)
		}
	}
	return Finding{Items: items}
}

// Finish appends one group per source declared by two or more extensions.
// Sources are sorted; members keep traversal order.
func (g *Grammars) Finish(r *report.Report) {
	for _, source := range g.Duplicates() {
		r.AddGroup(report.Group{
			Heading: DuplicateGrammarsHeading,
			Key:     source,
			Members: append([]string(nil), g.providers[source]...),
		})
	}
}

// Duplicates returns the sorted canonical sources with more than one
// declaring extension.
func (g *Grammars) Duplicates() []string {
	var dupes []string
	for source, ids := range g.providers {
		if len(ids) > 1 {
			dupes = append(dupes, source)
		}
	}
	sort.Strings(dupes)
	return dupes
}

// CanonicalSource identifies where a grammar comes from: the repository
// without a trailing ".git", plus "/<path>" when a sub-path is declared.
func CanonicalSource(g manifest.GrammarEntry) string {
	source := g.Repository
	for strings.HasSuffix(source, ".git") {
		source = strings.TrimSuffix(source, ".git")
	}
	if g.Path != "" {
		source += "/" + g.Path
	}
	return source
}

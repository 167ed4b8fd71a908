// Package survey runs a survey over every extension in the registry index:
// it loads each extension's manifest and theme files, hands them to a
// survey-specific evaluation and collects the findings into a report.
package survey

import (
	"path/filepath"

	"github.com/agentx-labs/extsurvey/internal/issue"
	"github.com/agentx-labs/extsurvey/internal/manifest"
	"github.com/agentx-labs/extsurvey/internal/registry"
	"github.com/agentx-labs/extsurvey/internal/report"
	"github.com/agentx-labs/extsurvey/internal/theme"
)

// State is the terminal state of one extension within a run.
type State int

const (
	// Skipped: the extension has nothing this survey looks at.
	Skipped State = iota
	// ManifestError: the manifest is required but missing or unparseable.
	ManifestError
	// NoMatch: everything loaded and the survey found nothing.
	NoMatch
	// Matched: the survey recorded at least one finding.
	Matched
)

func (s State) String() string {
	switch s {
	case Skipped:
		return "skipped"
	case ManifestError:
		return "manifest-error"
	case NoMatch:
		return "no-match"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// Needs declares which inputs a survey requires for an extension.
type Needs struct {
	// Themes skips extensions without a themes directory and loads theme
	// files for the rest.
	Themes bool
	// Manifest excludes extensions whose manifest cannot be loaded. When
	// false, a manifest is still loaded if present, for the repository link.
	Manifest bool
}

// Subject is everything the engine loaded for one extension.
type Subject struct {
	Entry registry.Entry
	Dir   string
	// Manifest is nil when it could not be loaded and the survey does not
	// require one.
	Manifest *manifest.ExtensionManifest
	Format   manifest.Format
	Themes   []theme.Theme
}

// Finding is what a survey extracted from one subject.
type Finding struct {
	Items []string
	// Issue, when set, is attached as a remediation link for extensions
	// with at least one item.
	Issue *issue.Template
}

// Survey is one kind of question asked of every extension.
type Survey interface {
	Name() string
	Title() string
	ItemsLabel() string
	Needs() Needs
	// Evaluate must not fail: anything it cannot interpret is not a match.
	Evaluate(s *Subject) Finding
}

// Finisher is implemented by surveys that add a post-pass to the report
// once every extension has been evaluated.
type Finisher interface {
	Finish(r *report.Report)
}

// relPath shortens path to be relative to dir for display.
func relPath(dir, path string) string {
	if rel, err := filepath.Rel(dir, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}

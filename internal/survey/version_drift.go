package survey

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/agentx-labs/extsurvey/internal/issue"
)

// VersionDrift lists extensions whose manifest version differs from the
// version the registry publishes.
type VersionDrift struct{}

func (VersionDrift) Name() string       { return "version-drift" }
func (VersionDrift) ItemsLabel() string { return "Versions" }
func (VersionDrift) Needs() Needs       { return Needs{Manifest: true} }

func (VersionDrift) Title() string {
	return "Extensions whose manifest version differs from the registry"
}

func (VersionDrift) Evaluate(s *Subject) Finding {
	if s.Manifest == nil {
		return Finding{}
	}
	published, declared := s.Entry.Version, s.Manifest.Version

	var item string
	cmp, err := compareVersions(published, declared)
	switch {
	case err != nil:
		if published == declared {
			return Finding{}
		}
		item = fmt.Sprintf("Registry publishes %q but %s declares %q (%v)", published, s.Format.FileName(), declared, err)
	case cmp == 0:
		return Finding{}
	case cmp < 0:
		item = fmt.Sprintf("Registry publishes %s but %s declares newer %s", published, s.Format.FileName(), declared)
	default:
		item = fmt.Sprintf("Registry publishes %s but %s declares older %s", published, s.Format.FileName(), declared)
	}

	return Finding{
		Items: []string{item},
		Issue: &issue.Template{
			Title: "Manifest version does not match registry",
			Body: fmt.Sprintf("The extensions registry lists version `%s` for `%s`, but the extension manifest declares version `%s`.\n\n",
				published, s.Entry.ID, declared) +
				"Please bump the manifest version or publish a registry update so the two agree.\n",
		},
	}
}

// compareVersions returns -1, 0 or 1 as a is older than, equal to or newer
// than b. A leading "v" is tolerated.
func compareVersions(a, b string) (int, error) {
	av, err := semver.NewVersion(strings.TrimPrefix(a, "v"))
	if err != nil {
		return 0, fmt.Errorf("parsing registry version %q: %w", a, err)
	}
	bv, err := semver.NewVersion(strings.TrimPrefix(b, "v"))
	if err != nil {
		return 0, fmt.Errorf("parsing manifest version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

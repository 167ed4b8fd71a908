package survey

import (
	"github.com/agentx-labs/extsurvey/internal/issue"
	"github.com/agentx-labs/extsurvey/internal/manifest"
)

const manifestDocsURL = "https://zed.dev/docs/extensions/developing-extensions#directory-structure-of-a-zed-extension"

var migrateIssue = issue.Template{
	Title: "Migrate to `extension.toml`",
	Body: "This extension has been identified as still using the legacy `extension.json` manifest format.\n\n" +
		"Extensions should use the new `extension.toml` manifest format. See the [Zed extension documentation](" +
		manifestDocsURL + ") for more information.",
}

// ExtensionJSON lists extensions whose manifest is still the legacy
// extension.json.
type ExtensionJSON struct{}

func (ExtensionJSON) Name() string       { return "extension-json" }
func (ExtensionJSON) Title() string      { return "Extensions using `" + manifest.JSONFileName + "`" }
func (ExtensionJSON) ItemsLabel() string { return "Manifest" }
func (ExtensionJSON) Needs() Needs       { return Needs{Manifest: true} }

func (ExtensionJSON) Evaluate(s *Subject) Finding {
	if s.Manifest == nil || !s.Format.Legacy() {
		return Finding{}
	}
	t := migrateIssue
	return Finding{
		Items: []string{s.Format.FileName() + " (version " + s.Manifest.Version + ")"},
		Issue: &t,
	}
}

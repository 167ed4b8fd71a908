package manifest

// ExtensionManifest is the metadata an extension declares about itself.
type ExtensionManifest struct {
	ID            string `toml:"id" json:"id" yaml:"id"`
	Name          string `toml:"name" json:"name" yaml:"name"`
	Version       string `toml:"version" json:"version" yaml:"version"`
	SchemaVersion int    `toml:"schema_version" json:"schema_version" yaml:"schema_version"`

	Description string   `toml:"description" json:"description,omitempty" yaml:"description,omitempty"`
	Repository  string   `toml:"repository" json:"repository,omitempty" yaml:"repository,omitempty"`
	Authors     []string `toml:"authors" json:"authors,omitempty" yaml:"authors,omitempty"`
	Lib         LibEntry `toml:"lib" json:"lib" yaml:"lib"`

	Themes     []string `toml:"themes" json:"themes,omitempty" yaml:"themes,omitempty"`
	IconThemes []string `toml:"icon_themes" json:"icon_themes,omitempty" yaml:"icon_themes,omitempty"`
	Languages  []string `toml:"languages" json:"languages,omitempty" yaml:"languages,omitempty"`
	Snippets   string   `toml:"snippets" json:"snippets,omitempty" yaml:"snippets,omitempty"`

	Grammars             map[string]GrammarEntry        `toml:"grammars" json:"grammars,omitempty" yaml:"grammars,omitempty"`
	LanguageServers      map[string]LanguageServerEntry `toml:"language_servers" json:"language_servers,omitempty" yaml:"language_servers,omitempty"`
	ContextServers       map[string]struct{}            `toml:"context_servers" json:"context_servers,omitempty" yaml:"context_servers,omitempty"`
	SlashCommands        map[string]SlashCommandEntry   `toml:"slash_commands" json:"slash_commands,omitempty" yaml:"slash_commands,omitempty"`
	IndexedDocsProviders map[string]struct{}            `toml:"indexed_docs_providers" json:"indexed_docs_providers,omitempty" yaml:"indexed_docs_providers,omitempty"`
	Capabilities         []Capability                   `toml:"capabilities" json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
}

// legacyManifest is the subset of extension.json that carries over to the
// TOML manifest. Other legacy keys use shapes the current format dropped.
type legacyManifest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Version       string   `json:"version"`
	SchemaVersion int      `json:"schema_version"`
	Description   string   `json:"description"`
	Repository    string   `json:"repository"`
	Authors       []string `json:"authors"`
}

func (l *legacyManifest) upgrade() *ExtensionManifest {
	return &ExtensionManifest{
		ID:            l.ID,
		Name:          l.Name,
		Version:       l.Version,
		SchemaVersion: l.SchemaVersion,
		Description:   l.Description,
		Repository:    l.Repository,
		Authors:       l.Authors,
	}
}

// LibEntry describes the compiled library an extension ships, if any.
type LibEntry struct {
	Kind    string `toml:"kind" json:"kind,omitempty" yaml:"kind,omitempty"`
	Version string `toml:"version" json:"version,omitempty" yaml:"version,omitempty"`
}

// GrammarEntry points at the source of a syntax grammar. Older manifests
// spell the revision as "commit".
type GrammarEntry struct {
	Repository string `toml:"repository" json:"repository" yaml:"repository"`
	Rev        string `toml:"rev" json:"rev,omitempty" yaml:"rev,omitempty"`
	Commit     string `toml:"commit" json:"commit,omitempty" yaml:"commit,omitempty"`
	Path       string `toml:"path" json:"path,omitempty" yaml:"path,omitempty"`
}

// Revision returns the pinned revision, whichever key declared it.
func (g GrammarEntry) Revision() string {
	if g.Rev != "" {
		return g.Rev
	}
	return g.Commit
}

// LanguageServerEntry declares a language server. Language is deprecated in
// favor of Languages.
type LanguageServerEntry struct {
	Language    string            `toml:"language" json:"language,omitempty" yaml:"language,omitempty"`
	Languages   []string          `toml:"languages" json:"languages,omitempty" yaml:"languages,omitempty"`
	LanguageIDs map[string]string `toml:"language_ids" json:"language_ids,omitempty" yaml:"language_ids,omitempty"`
}

// SlashCommandEntry declares an assistant slash command.
type SlashCommandEntry struct {
	Description      string `toml:"description" json:"description" yaml:"description"`
	RequiresArgument bool   `toml:"requires_argument" json:"requires_argument" yaml:"requires_argument"`
}

// Capability is a permission an extension requests. Only "process:exec" is
// currently defined.
type Capability struct {
	Kind    string   `toml:"kind" json:"kind" yaml:"kind"`
	Command string   `toml:"command" json:"command,omitempty" yaml:"command,omitempty"`
	Args    []string `toml:"args" json:"args,omitempty" yaml:"args,omitempty"`
}

// Format identifies which on-disk manifest a manifest was read from.
type Format int

const (
	// FormatTOML is the current extension.toml manifest.
	FormatTOML Format = iota
	// FormatJSON is the legacy extension.json manifest.
	FormatJSON
)

// File names of the two manifest formats, in fallback order.
const (
	TOMLFileName = "extension.toml"
	JSONFileName = "extension.json"
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FileName returns the manifest file name for the format.
func (f Format) FileName() string {
	if f == FormatJSON {
		return JSONFileName
	}
	return TOMLFileName
}

// Legacy reports whether the format is the deprecated JSON manifest.
func (f Format) Legacy() bool { return f == FormatJSON }

// Package report accumulates survey findings into an ordered report and
// renders it once the survey has finished.
package report

import "github.com/agentx-labs/extsurvey/internal/issue"

// UnknownRepository is printed in place of a link when an extension does not
// declare its repository.
const UnknownRepository = "unknown repository"

// Report is the buffered output of one survey run. Sections appear in the
// order they were added.
type Report struct {
	Survey     string    `json:"survey" yaml:"survey"`
	Title      string    `json:"title" yaml:"title"`
	ItemsLabel string    `json:"items_label" yaml:"items_label"`
	Sections   []Section `json:"sections" yaml:"sections"`
	Appendix   []Group   `json:"appendix,omitempty" yaml:"appendix,omitempty"`
	Summary    Summary   `json:"summary" yaml:"summary"`
}

// Section holds the findings for one extension.
type Section struct {
	ExtensionID string   `json:"extension" yaml:"extension"`
	Repository  string   `json:"repository,omitempty" yaml:"repository,omitempty"`
	IssueURL    string   `json:"issue_url,omitempty" yaml:"issue_url,omitempty"`
	IssueError  string   `json:"issue_error,omitempty" yaml:"issue_error,omitempty"`
	Items       []string `json:"items,omitempty" yaml:"items,omitempty"`
	Errors      []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Group is a post-pass finding shared by several extensions, e.g. a grammar
// source declared more than once.
type Group struct {
	Heading string   `json:"heading" yaml:"heading"`
	Key     string   `json:"key" yaml:"key"`
	Members []string `json:"members" yaml:"members"`
}

// Summary counts extensions by their terminal survey state.
type Summary struct {
	Surveyed       int `json:"surveyed" yaml:"surveyed"`
	Skipped        int `json:"skipped" yaml:"skipped"`
	ManifestErrors int `json:"manifest_errors" yaml:"manifest_errors"`
	NoMatch        int `json:"no_match" yaml:"no_match"`
	Matched        int `json:"matched" yaml:"matched"`
	// Errors counts recoverable error lines across all sections.
	Errors int `json:"errors" yaml:"errors"`
}

// New returns an empty report for the named survey.
func New(survey, title, itemsLabel string) *Report {
	if itemsLabel == "" {
		itemsLabel = "Matches"
	}
	return &Report{Survey: survey, Title: title, ItemsLabel: itemsLabel, Sections: []Section{}}
}

// NewSection starts a section for an extension. repository may be empty.
func NewSection(extensionID, repository string) *Section {
	return &Section{ExtensionID: extensionID, Repository: repository}
}

// Add appends a section. Empty sections are dropped.
func (r *Report) Add(s *Section) {
	if s == nil || s.Empty() {
		return
	}
	r.Sections = append(r.Sections, *s)
}

// AddGroup appends a post-pass group.
func (r *Report) AddGroup(g Group) {
	r.Appendix = append(r.Appendix, g)
}

// Empty reports whether the section has nothing to show.
func (s *Section) Empty() bool {
	return len(s.Items) == 0 && len(s.Errors) == 0
}

// AddItem appends one finding line.
func (s *Section) AddItem(item string) {
	s.Items = append(s.Items, item)
}

// AddError appends one recoverable error line.
func (s *Section) AddError(err error) {
	s.Errors = append(s.Errors, err.Error())
}

// AttachIssue builds the remediation link for the section. Without a
// repository nothing is attached; an unusable repository URL leaves a
// degraded line instead of a link.
func (s *Section) AttachIssue(t issue.Template) {
	if s.Repository == "" {
		return
	}
	u, err := t.URL(s.Repository)
	if err != nil {
		s.IssueURL = ""
		s.IssueError = err.Error()
		return
	}
	s.IssueURL = u.String()
	s.IssueError = ""
}

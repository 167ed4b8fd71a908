package survey

import (
	"fmt"
	"strings"

	"github.com/agentx-labs/extsurvey/internal/issue"
	"github.com/agentx-labs/extsurvey/internal/predicate"
)

// ThemeProperty lists themes whose style uses a deprecated property.
type ThemeProperty struct {
	match predicate.Predicate
	// replacement, when set, is named in the issue body as the property to
	// migrate to.
	replacement string
}

// NewThemeProperty creates a theme-property survey.
func NewThemeProperty(match predicate.Predicate, replacement string) *ThemeProperty {
	return &ThemeProperty{match: match, replacement: replacement}
}

func (t *ThemeProperty) Name() string { return "theme-property" }

func (t *ThemeProperty) Title() string {
	return fmt.Sprintf("Extensions using `%s`", t.match.Property())
}

func (t *ThemeProperty) ItemsLabel() string { return "Themes" }

func (t *ThemeProperty) Needs() Needs { return Needs{Themes: true, Manifest: true} }

func (t *ThemeProperty) Evaluate(s *Subject) Finding {
	property := t.match.Property()

	var items []string
	for _, th := range s.Themes {
		if t.match.Match(th.Style) {
			items = append(items, fmt.Sprintf("Theme %q is using deprecated style property `%s`", th.Name, property))
		}
	}
	if len(items) == 0 {
		return Finding{}
	}

	var body strings.Builder
	fmt.Fprintf(&body, "This extension has been identified as using the deprecated `%s` style property.\n\n", property)
	if t.replacement != "" {
		fmt.Fprintf(&body, "This property has been deprecated in favor of `%s`. Please migrate to using the new property.\n\n", t.replacement)
	}
	body.WriteString("The following themes are impacted:\n\n")
	writeList(&body, items)

	return Finding{
		Items: items,
		Issue: &issue.Template{
			Title: fmt.Sprintf("Deprecated `%s` usage", property),
			Body:  body.String(),
		},
	}
}

func writeList(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteByte('\n')
	}
}

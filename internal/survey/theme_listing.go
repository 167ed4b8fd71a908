package survey

import "fmt"

// ThemeListing lists every theme of every extension that ships a themes
// directory. It does not depend on the manifest.
type ThemeListing struct{}

func (ThemeListing) Name() string       { return "theme-listing" }
func (ThemeListing) Title() string      { return "Extension themes" }
func (ThemeListing) ItemsLabel() string { return "Themes" }
func (ThemeListing) Needs() Needs       { return Needs{Themes: true} }

func (ThemeListing) Evaluate(s *Subject) Finding {
	var items []string
	for _, th := range s.Themes {
		appearance := th.Appearance
		if appearance == "" {
			appearance = "unspecified"
		}
		items = append(items, fmt.Sprintf("%q (%s) in %s", th.Name, appearance, relPath(s.Dir, th.File)))
	}
	return Finding{Items: items}
}

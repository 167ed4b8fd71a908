// Package issue builds pre-filled "new issue" links for an extension's
// upstream repository.
package issue

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrInvalidRepository is returned when a repository URL is not an absolute
// URL that paths can be appended to.
var ErrInvalidRepository = errors.New("invalid repository URL")

// Template is the survey-specific title and body of a remediation issue.
type Template struct {
	Title string
	Body  string
}

// NewURL returns the URL for creating a new issue with the given title and
// body on the repository at repositoryURL.
func NewURL(repositoryURL, title, body string) (*url.URL, error) {
	u, err := url.Parse(repositoryURL)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidRepository, repositoryURL, err)
	}
	if !u.IsAbs() || u.Host == "" || u.Opaque != "" {
		return nil, fmt.Errorf("%w %q: not an absolute URL", ErrInvalidRepository, repositoryURL)
	}

	u = u.JoinPath("issues", "new")
	u.RawQuery = "title=" + url.QueryEscape(title) + "&body=" + url.QueryEscape(body)
	u.Fragment = ""

	return u, nil
}

// URL renders the template against a repository.
func (t Template) URL(repositoryURL string) (*url.URL, error) {
	return NewURL(repositoryURL, t.Title, t.Body)
}

package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatMarkdown, FormatJSON, FormatYAML}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatMarkdown, FormatJSON, FormatYAML:
		return f, nil
	case "md", "":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown report format %q (want markdown, json or yaml)", s)
	}
}

// Write renders the whole report into memory first and then writes it in a
// single call, so a rendering failure never leaves partial output behind.
func (r *Report) Write(w io.Writer, format Format) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, format); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Render renders the report in the given format.
func (r *Report) Render(buf *bytes.Buffer, format Format) error {
	switch format {
	case FormatMarkdown, "":
		r.renderMarkdown(buf)
		return nil
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(buf)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func (r *Report) renderMarkdown(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "## %s\n\n", r.Title)

	if len(r.Sections) == 0 {
		buf.WriteString("No extensions matched.\n")
	}

	for _, s := range r.Sections {
		fmt.Fprintf(buf, "- [ ] `%s`\n", s.ExtensionID)
		if s.Repository != "" {
			fmt.Fprintf(buf, "  - Repository: [%s](%s)\n", s.Repository, s.Repository)
		} else {
			fmt.Fprintf(buf, "  - Repository: %s\n", UnknownRepository)
		}

		switch {
		case s.IssueURL != "":
			fmt.Fprintf(buf, "  - Issue: [Create Issue](%s)\n", s.IssueURL)
		case s.IssueError != "":
			fmt.Fprintf(buf, "  - Issue: unavailable (%s)\n", s.IssueError)
		}

		if len(s.Errors) > 0 {
			buf.WriteString("  - Errors:\n")
			for _, e := range s.Errors {
				fmt.Fprintf(buf, "    - %s\n", e)
			}
		}
		if len(s.Items) > 0 {
			fmt.Fprintf(buf, "  - %s:\n", r.ItemsLabel)
			for _, item := range s.Items {
				fmt.Fprintf(buf, "    - %s\n", item)
			}
		}
	}

	heading := ""
	for _, g := range r.Appendix {
		if g.Heading != heading {
			heading = g.Heading
			fmt.Fprintf(buf, "\n## %s\n\n", heading)
		}
		fmt.Fprintf(buf, "- `%s`\n", g.Key)
		for _, m := range g.Members {
			fmt.Fprintf(buf, "  - `%s`\n", m)
		}
	}
}

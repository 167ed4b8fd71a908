package survey

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/agentx-labs/extsurvey/internal/manifest"
	"github.com/agentx-labs/extsurvey/internal/registry"
	"github.com/agentx-labs/extsurvey/internal/report"
	"github.com/agentx-labs/extsurvey/internal/theme"
)

// Engine walks the registry index one extension at a time. An Engine is not
// safe for concurrent use; each Run owns its report until it returns.
type Engine struct {
	root  string
	index *registry.Index
	log   logrus.FieldLogger
}

// New creates an engine over the extensions checked out under root. A nil
// logger discards all log output.
func New(root string, index *registry.Index, log logrus.FieldLogger) *Engine {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Engine{root: root, index: index, log: log}
}

// Run evaluates s against every registry entry in id order and returns the
// finished report. Any error is fatal to the run and no report is returned.
func (e *Engine) Run(s Survey) (*report.Report, error) {
	r := report.New(s.Name(), s.Title(), s.ItemsLabel())
	needs := s.Needs()

	for _, entry := range e.index.Entries() {
		state, section, err := e.inspect(s, needs, entry)
		if err != nil {
			return nil, fmt.Errorf("surveying extension %q: %w", entry.ID, err)
		}

		r.Summary.Surveyed++
		switch state {
		case Skipped:
			r.Summary.Skipped++
		case ManifestError:
			r.Summary.ManifestErrors++
		case NoMatch:
			r.Summary.NoMatch++
		case Matched:
			r.Summary.Matched++
		}

		if section != nil {
			r.Summary.Errors += len(section.Errors)
			r.Add(section)
		}

		e.log.WithFields(logrus.Fields{
			"extension": entry.ID,
			"state":     state.String(),
		}).Debug("extension surveyed")
	}

	if f, ok := s.(Finisher); ok {
		f.Finish(r)
	}

	return r, nil
}

// inspect drives one extension to its terminal state. The returned section
// is nil for skipped extensions.
func (e *Engine) inspect(s Survey, needs Needs, entry registry.Entry) (State, *report.Section, error) {
	dir := entry.Dir(e.root)
	subject := &Subject{Entry: entry, Dir: dir}
	section := report.NewSection(entry.ID, "")

	var themes theme.Result
	if needs.Themes {
		res, err := theme.LoadDir(filepath.Join(dir, theme.DirName))
		if err != nil {
			return Skipped, nil, err
		}
		if !res.Found {
			return Skipped, nil, nil
		}
		themes = res
	}

	m, format, err := manifest.Load(dir)
	switch {
	case err == nil:
		subject.Manifest = m
		subject.Format = format
		section.Repository = m.Repository
	case !isManifestError(err):
		return Skipped, nil, err
	case needs.Manifest && !needs.Themes && errors.Is(err, manifest.ErrNotFound):
		e.log.WithField("extension", entry.ID).Debug("no manifest, skipping")
		return Skipped, nil, nil
	case needs.Manifest:
		e.warn(entry.ID, dir, err)
		section.AddError(err)
		return ManifestError, section, nil
	default:
		e.warn(entry.ID, dir, err)
		section.AddError(err)
	}

	for _, failure := range themes.Failures {
		e.warn(entry.ID, failure.Path, failure)
		section.AddError(failure)
	}
	subject.Themes = themes.Themes

	finding := s.Evaluate(subject)
	if len(finding.Items) == 0 {
		return NoMatch, section, nil
	}

	for _, item := range finding.Items {
		section.AddItem(item)
	}
	if finding.Issue != nil {
		section.AttachIssue(*finding.Issue)
		if section.IssueError != "" {
			e.log.WithFields(logrus.Fields{
				"extension": entry.ID,
				"path":      section.Repository,
			}).Warn(section.IssueError)
		}
	}
	return Matched, section, nil
}

func (e *Engine) warn(id, path string, err error) {
	e.log.WithFields(logrus.Fields{
		"extension": id,
		"path":      path,
	}).Warn(err)
}

// isManifestError reports whether err is one of the per-extension manifest
// failures that the engine records instead of aborting on.
func isManifestError(err error) bool {
	var pe *manifest.ParseError
	return errors.Is(err, manifest.ErrNotFound) || errors.As(err, &pe)
}

// Package catalog maintains the local working tree of the extensions
// repository. It handles cloning, updating, and freshness tracking.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	// freshnessFile is the name of the timestamp marker file.
	freshnessFile = ".extsurvey-updated"

	// DefaultMaxAge is the default staleness threshold (7 days).
	DefaultMaxAge = 7 * 24 * time.Hour

	// tmpSuffix is appended to the target dir during atomic clone.
	tmpSuffix = ".tmp"
)

// runGit executes git with args in dir and returns its combined output.
// Tests replace it to avoid touching the network.
var runGit = func(dir string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, fmt.Errorf("git is required but not found in PATH")
	}
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Clone clones repoURL with all of its submodules into targetDir.
//
// The clone is atomic: it writes to a .tmp directory first, then renames
// on success. On failure the .tmp directory is cleaned up.
func Clone(targetDir, repoURL string) error {
	tmpDir := targetDir + tmpSuffix

	// Clean up any leftover tmp dir from a previous failed attempt.
	_ = os.RemoveAll(tmpDir)

	if err := os.MkdirAll(filepath.Dir(tmpDir), 0o755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	if output, err := runGit("", "clone", "--recurse-submodules", repoURL, tmpDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("cloning extensions repository: %w\n%s", err, strings.TrimSpace(string(output)))
	}

	if err := os.RemoveAll(targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("removing existing work dir: %w", err)
	}
	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("finalizing clone: %w", err)
	}

	return WriteFreshnessMarker(targetDir)
}

// Update pulls the latest changes, submodules included, into workDir. If
// workDir is not a git checkout yet, it clones repoURL instead.
func Update(workDir, repoURL string) error {
	if _, err := os.Stat(filepath.Join(workDir, ".git")); errors.Is(err, fs.ErrNotExist) {
		return Clone(workDir, repoURL)
	}

	if output, err := runGit(workDir, "pull", "--recurse-submodules"); err != nil {
		return fmt.Errorf("pulling extensions repository: %w\n%s", err, strings.TrimSpace(string(output)))
	}

	return WriteFreshnessMarker(workDir)
}

// WriteFreshnessMarker writes the current Unix timestamp to the freshness file.
func WriteFreshnessMarker(workDir string) error {
	markerPath := filepath.Join(workDir, freshnessFile)
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	if err := os.WriteFile(markerPath, []byte(ts), 0o644); err != nil {
		return fmt.Errorf("writing freshness marker: %w", err)
	}
	return nil
}

// ReadFreshnessMarker reads the timestamp from the freshness file.
// Returns zero time if the file doesn't exist or can't be parsed.
func ReadFreshnessMarker(workDir string) time.Time {
	data, err := os.ReadFile(filepath.Join(workDir, freshnessFile))
	if err != nil {
		return time.Time{}
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// IsStale returns true if the work dir was last updated more than maxAge ago.
// Returns true if the freshness marker doesn't exist.
func IsStale(workDir string, maxAge time.Duration) bool {
	lastUpdated := ReadFreshnessMarker(workDir)
	if lastUpdated.IsZero() {
		return true
	}
	return time.Since(lastUpdated) > maxAge
}

package extension

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/extsurvey/internal/registry"
)

// Submodule states reported by List.
const (
	StatusOK            = "ok"
	StatusUninitialized = "uninitialized"
	StatusModified      = "modified"
	StatusConflict      = "conflict"
	StatusMissing       = "missing"
	StatusUnknown       = "unknown"
)

// ExtensionStatus represents the checkout status of a single extension.
type ExtensionStatus struct {
	ID        string
	Version   string
	Submodule string
	Path      string
	Status    string
}

// submoduleStatus runs `git submodule status` in repoRoot. Tests replace it.
var submoduleStatus = func(repoRoot string) ([]byte, error) {
	cmd := exec.Command("git", "submodule", "status")
	cmd.Dir = repoRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git submodule status failed: %w\n%s", err, string(output))
	}
	return output, nil
}

// List returns the status of every registry entry, in registry order. A git
// failure is not fatal: every entry is reported as unknown and the error is
// returned alongside the full list.
func List(repoRoot string, index *registry.Index) ([]ExtensionStatus, error) {
	output, err := submoduleStatus(repoRoot)
	var statusMap map[string]string
	if err == nil {
		statusMap = ParseSubmoduleStatus(string(output))
	}

	var result []ExtensionStatus
	for _, entry := range index.Entries() {
		status := StatusUnknown
		if statusMap != nil {
			var ok bool
			if status, ok = statusMap[filepath.ToSlash(filepath.Clean(entry.Submodule))]; !ok {
				status = StatusMissing
			}
		}

		result = append(result, ExtensionStatus{
			ID:        entry.ID,
			Version:   entry.Version,
			Submodule: entry.Submodule,
			Path:      entry.Path,
			Status:    status,
		})
	}

	return result, err
}

// ParseSubmoduleStatus parses `git submodule status` output into a map of
// submodule path -> status string. Status values:
//   - "ok": submodule is initialized and matches the recorded commit
//   - "uninitialized": submodule is not initialized (prefix -)
//   - "modified": checked out commit differs from the recorded one (prefix +)
//   - "conflict": submodule has merge conflicts (prefix U)
func ParseSubmoduleStatus(output string) map[string]string {
	result := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Format: " <sha> <path> (<desc>)" or "-<sha> <path>" or "+<sha> <path> (<desc>)"
		status := StatusOK
		switch line[0] {
		case '-':
			status = StatusUninitialized
		case '+':
			status = StatusModified
		case 'U':
			status = StatusConflict
		}

		parts := strings.Fields(line[1:])
		if len(parts) >= 2 {
			result[parts[1]] = status
		}
	}
	return result
}

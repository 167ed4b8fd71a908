// Package cli defines the Cobra command tree for the extsurvey CLI. Each file
// in this package registers one top-level command (survey, update-repo,
// status, etc.) with the root command. Command implementations delegate to
// internal packages for business logic and only handle flag parsing, I/O
// formatting, and logging setup.
package cli

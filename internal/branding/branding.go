// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	RepositoryURL string `yaml:"repository_url"`
	RegistryFile  string `yaml:"registry_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:       "extsurvey",
			DisplayName:   "ExtSurvey",
			Description:   "Survey tool for an editor extension registry",
			HomeDir:       ".extsurvey",
			EnvPrefix:     "EXTSURVEY",
			RepositoryURL: "https://github.com/zed-industries/extensions.git",
			RegistryFile:  "extensions.toml",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "extsurvey").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".extsurvey").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "EXTSURVEY").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// RepositoryURL returns the default git URL of the extensions repository.
func RepositoryURL() string { load(); return defaults.RepositoryURL }

// RegistryFile returns the default registry index file name.
func RegistryFile() string { load(); return defaults.RegistryFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("work_dir") → "EXTSURVEY_WORK_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentx-labs/extsurvey/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyWorkDir       = "work_dir"
	KeyRepositoryURL = "repository_url"
	KeyRegistryFile  = "registry_file"
	KeyLogLevel      = "log_level"
)

// Defaults returns the built-in value of every known key.
func Defaults() map[string]string {
	return map[string]string{
		KeyWorkDir:       "work",
		KeyRepositoryURL: branding.RepositoryURL(),
		KeyRegistryFile:  branding.RegistryFile(),
		KeyLogLevel:      "warn",
	}
}

// Keys returns the known configuration keys, sorted.
func Keys() []string {
	d := Defaults()
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKnown reports whether key is a recognized configuration key.
func IsKnown(key string) bool {
	_, ok := Defaults()[key]
	return ok
}

// Dir returns the path to the config directory (~/.extsurvey/).
func Dir() string {
	if v := os.Getenv(branding.EnvVar("home")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.extsurvey/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment. A
// .env file in the working directory is applied to the environment first.
func Load() {
	_ = godotenv.Load()

	for key, value := range Defaults() {
		viper.SetDefault(key, value)
	}

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Package config manages user-level settings stored at ~/.extsurvey/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the working tree location and the extensions repository URL. Values can be
// overridden through EXTSURVEY_* environment variables or a .env file in the
// current directory.
package config

// Package manifest handles parsing and validation of extension manifests.
// An extension declares itself in extension.toml; older extensions still use
// the legacy extension.json, which Load falls back to when no TOML manifest
// exists. Both formats are checked against embedded JSON schemas.
package manifest

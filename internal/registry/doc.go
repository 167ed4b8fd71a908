// Package registry loads the extensions registry index: the extensions.toml
// file at the root of the extensions working tree that maps every extension
// id to the submodule checkout holding it.
package registry

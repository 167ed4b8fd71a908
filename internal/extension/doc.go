// Package extension reports the checkout state of the extensions listed in
// the registry index. Each extension lives in a git submodule of the
// extensions repository; its status comes from `git submodule status`.
package extension

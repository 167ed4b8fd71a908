// Package document models semi-structured values read from extension files
// (theme styles in particular) as a small recursive sum type, so callers can
// walk nested keys without type-asserting raw interface{} trees.
package document

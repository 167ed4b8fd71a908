// Package predicate implements the tests a survey applies to a theme's style
// map: presence of a literal property name, or presence of a value at the
// end of a nested key path.
package predicate

import (
	"fmt"
	"strings"

	"github.com/agentx-labs/extsurvey/internal/document"
)

// Predicate reports whether a style map contains the surveyed property.
// Implementations never fail: a malformed or unexpected shape is a miss.
type Predicate interface {
	Match(style document.Map) bool
	// Property is the human-readable name used in report lines.
	Property() string
}

// FlatKey matches a style map holding a property with a literal name. Dots
// in the name are not path separators.
type FlatKey string

func (k FlatKey) Match(style document.Map) bool {
	return style.Has(string(k))
}

func (k FlatKey) Property() string { return string(k) }

// NestedPath matches when every segment resolves through nested maps.
// Segments are given innermost first: ["b", "a"] means key "b" inside the
// value of key "a", so descent starts from the last segment.
type NestedPath []string

func (p NestedPath) Match(style document.Map) bool {
	if len(p) == 0 {
		return false
	}
	_, ok := style.Lookup(p.outermostFirst()...)
	return ok
}

// Property renders the path outermost first, joined with dots.
func (p NestedPath) Property() string {
	return strings.Join(p.outermostFirst(), ".")
}

func (p NestedPath) outermostFirst() []string {
	keys := make([]string, len(p))
	for i, seg := range p {
		keys[len(p)-1-i] = seg
	}
	return keys
}

// FromSegments picks the predicate shape for user-supplied segments: a single
// segment is a flat key, several are a nested path.
func FromSegments(segments []string) (Predicate, error) {
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("property segments must not be empty")
		}
	}

	switch len(segments) {
	case 0:
		return nil, fmt.Errorf("at least one property segment is required")
	case 1:
		return FlatKey(segments[0]), nil
	default:
		return NestedPath(append([]string(nil), segments...)), nil
	}
}

// Package glob wraps a path-pattern matcher behind the narrow interface the
// resolver needs: compile a pattern once, then ask whether candidate strings
// match it. Candidates are always slash-separated relative strings, so no
// platform-specific separator handling happens here.
package glob

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// A Glob is a compiled pattern. Patterns support "*" (any characters except
// "/"), "**" (any characters including "/"), "?", and "{a,b}" alternation.
type Glob struct {
	pattern string
}

// New validates the pattern and returns a matcher for it.
func New(pattern string) (*Glob, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Errorf("invalid glob pattern %q", pattern)
	}
	return &Glob{pattern: pattern}, nil
}

// MustNew is New for compile-time-constant patterns.
func MustNew(pattern string) *Glob {
	g, err := New(pattern)
	if err != nil {
		panic(err)
	}
	return g
}

// Execute reports whether the candidate string matches the pattern.
func (g *Glob) Execute(candidate string) bool {
	ok, err := doublestar.Match(g.pattern, candidate)
	return err == nil && ok
}

func (g *Glob) String() string {
	return g.pattern
}

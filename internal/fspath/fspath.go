package fspath

import (
	"path"
	"strings"
)

// A Path is an absolute, slash-separated path value. It never touches disk:
// it only exists so resolution rules can be scoped to a root and compared for
// identity. Two Path values are the same path exactly when they are equal.
//
// Windows-style separators are normalized to "/" at construction so that the
// rest of the resolver only ever sees one separator.
type Path struct {
	Text string
}

// New cleans the given text into a canonical Path. Cleaning removes "." and
// ".." segments and collapses repeated slashes, so paths that spell the same
// location the same way compare equal.
func New(text string) Path {
	text = strings.ReplaceAll(text, "\\", "/")
	if text == "" {
		return Path{}
	}
	return Path{Text: path.Clean(text)}
}

// IsZero reports whether this is the zero Path, used throughout the resolver
// to mean "no path was provided".
func (p Path) IsZero() bool {
	return p.Text == ""
}

func (p Path) String() string {
	return p.Text
}

// Join appends further segments to this path, cleaning the result.
func (p Path) Join(parts ...string) Path {
	return New(path.Join(append([]string{p.Text}, parts...)...))
}

// RelativeTo returns the path from "root" down to this path. It reports false
// when this path is not root itself and not underneath it. The result never
// starts with a slash; root itself maps to "".
func (p Path) RelativeTo(root Path) (string, bool) {
	if root.IsZero() || p.IsZero() {
		return "", false
	}
	if p.Text == root.Text {
		return "", true
	}
	prefix := root.Text
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if !strings.HasPrefix(p.Text, prefix) {
		return "", false
	}
	return p.Text[len(prefix):], true
}

// IsAbs reports whether the path text is absolute.
func (p Path) IsAbs() bool {
	return strings.HasPrefix(p.Text, "/")
}

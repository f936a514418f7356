package resolver

import (
	"strings"

	"github.com/pkg/errors"
)

// A Request is a parsed import specifier. The closed set of implementations
// mirrors the ways a specifier can be classified before any filesystem work:
// relative to the importer, absolute, a package lookup, empty, or dynamic
// (built at runtime from non-constant parts, so it has no string form).
type Request interface {
	request()

	// RequestString returns the specifier string for this request. It reports
	// false only for dynamic requests, which short-circuit import map lookups.
	RequestString() (string, bool)
}

// RelativeRequest is a specifier like "./util" or "../lib/a.js".
type RelativeRequest struct {
	Path string
}

// ModuleRequest is a package specifier like "react" or "@scope/pkg/sub".
// Subpath is empty or starts with "/".
type ModuleRequest struct {
	Module  string
	Subpath string
}

// AbsoluteRequest is a specifier that is already an absolute path.
type AbsoluteRequest struct {
	Path string
}

// EmptyRequest is the empty specifier "".
type EmptyRequest struct{}

// DynamicRequest is a specifier whose text is unknown until runtime.
type DynamicRequest struct{}

func (RelativeRequest) request() {}
func (ModuleRequest) request()   {}
func (AbsoluteRequest) request() {}
func (EmptyRequest) request()    {}
func (DynamicRequest) request()  {}

func (r RelativeRequest) RequestString() (string, bool) { return r.Path, true }
func (r ModuleRequest) RequestString() (string, bool)   { return r.Module + r.Subpath, true }
func (r AbsoluteRequest) RequestString() (string, bool) { return r.Path, true }
func (EmptyRequest) RequestString() (string, bool)      { return "", true }
func (DynamicRequest) RequestString() (string, bool)    { return "", false }

// ParseRequest classifies a specifier string. The classification only looks
// at the string itself; whether the target exists is a question for the
// resolution pipeline.
func ParseRequest(text string) (Request, error) {
	switch {
	case text == "":
		return EmptyRequest{}, nil

	case strings.HasPrefix(text, "/"):
		return AbsoluteRequest{Path: text}, nil

	case text == "." || text == ".." ||
		strings.HasPrefix(text, "./") || strings.HasPrefix(text, "../"):
		return RelativeRequest{Path: text}, nil

	case strings.HasPrefix(text, "#"):
		// Package-internal "imports" specifiers are resolved against the
		// importing package's manifest, which this layer never sees.
		return nil, errors.Errorf("cannot resolve package-internal specifier %q here", text)

	case strings.HasPrefix(text, "@"):
		slash := strings.IndexByte(text, '/')
		if slash < 0 {
			return nil, errors.Errorf("invalid module specifier %q: scope without a package name", text)
		}
		rest := text[slash+1:]
		if rest == "" {
			return nil, errors.Errorf("invalid module specifier %q: scope without a package name", text)
		}
		if next := strings.IndexByte(rest, '/'); next >= 0 {
			return ModuleRequest{Module: text[:slash+1+next], Subpath: rest[next:]}, nil
		}
		return ModuleRequest{Module: text}, nil

	default:
		if slash := strings.IndexByte(text, '/'); slash >= 0 {
			return ModuleRequest{Module: text[:slash], Subpath: text[slash:]}, nil
		}
		return ModuleRequest{Module: text}, nil
	}
}

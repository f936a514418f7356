package resolver

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/rivetbuild/rivet/internal/aliasmap"
	"github.com/rivetbuild/rivet/internal/fspath"
	"github.com/rivetbuild/rivet/internal/glob"
)

// ImportMapping describes one rewrite rule for an import request. The set of
// implementations is closed; everything that consumes a mapping does so with
// an exhaustive type switch so a new kind of rule cannot silently fall
// through.
//
// Every string payload is a template: a "*" in it stands for the wildcard
// capture of whatever pattern matched the request, spliced in by Replace.
type ImportMapping interface {
	importMapping()

	// Replace substitutes the wildcard capture into the mapping's string
	// payloads, producing a mapping of the same shape. See AliasTemplate.
	Replace(capture string) (ImportMapping, error)
}

// External marks the request as resolving to a runtime-external reference.
// A non-empty Name replaces the original request string in that reference.
type External struct {
	Name string
}

// PrimaryAlternative re-resolves Name (scoped to Root unless Root is zero)
// in place of the original request. If that re-resolution fails, the caller
// of the resulting Alias must fall back to resolving the original request
// unchanged; that contract is owned by the resolution loop, not by this
// type. Useful for tsconfig-style path aliases.
type PrimaryAlternative struct {
	Name string
	Root fspath.Path
}

// Ignore resolves the request to an intentionally ignored no-op module.
type Ignore struct{}

// Empty resolves the request to an empty module. Kept as a distinct tag from
// Ignore because downstream consumers may special-case one but not the
// other.
type Empty struct{}

// Alternatives tries each mapping in order; the caller accepts the first one
// that yields a usable result.
type Alternatives struct {
	Mappings []ImportMapping
}

func (External) importMapping()           {}
func (PrimaryAlternative) importMapping() {}
func (Ignore) importMapping()             {}
func (Empty) importMapping()              {}
func (Alternatives) importMapping()       {}

func (m External) Replace(capture string) (ImportMapping, error) {
	if m.Name == "" {
		return m, nil
	}
	return External{Name: strings.ReplaceAll(m.Name, "*", capture)}, nil
}

func (m PrimaryAlternative) Replace(capture string) (ImportMapping, error) {
	return PrimaryAlternative{
		Name: strings.ReplaceAll(m.Name, "*", capture),
		Root: m.Root,
	}, nil
}

func (m Ignore) Replace(capture string) (ImportMapping, error) {
	return m, nil
}

func (m Empty) Replace(capture string) (ImportMapping, error) {
	return m, nil
}

func (m Alternatives) Replace(capture string) (ImportMapping, error) {
	mappings := make([]ImportMapping, len(m.Mappings))
	for i, mapping := range m.Mappings {
		replaced, err := mapping.Replace(capture)
		if err != nil {
			// Fail the whole substitution rather than return a partial list
			return nil, err
		}
		mappings[i] = replaced
	}
	return Alternatives{Mappings: mappings}, nil
}

// PrimaryAlternatives builds the mapping for a list of alias targets the way
// tsconfig "paths" arrays are usually configured: an empty list disables the
// request entirely, a single entry aliases it, and multiple entries are
// tried in order.
func PrimaryAlternatives(list []string, root fspath.Path) ImportMapping {
	switch len(list) {
	case 0:
		return Ignore{}
	case 1:
		return PrimaryAlternative{Name: list[0], Root: root}
	}
	mappings := make([]ImportMapping, len(list))
	for i, name := range list {
		mappings[i] = PrimaryAlternative{Name: name, Root: root}
	}
	return Alternatives{Mappings: mappings}
}

// ImportMapResult is the outcome of evaluating a mapping against a request.
// Like ImportMapping, the set of implementations is closed.
type ImportMapResult interface {
	importMapResult()
}

// ResolvedResult is a terminal outcome; no further resolution is needed.
type ResolvedResult struct {
	Result ResolveResult
}

// AliasResult instructs the caller to re-run the whole resolution pipeline
// on Request, scoped to Root unless Root is zero. If that fails, the caller
// must still attempt the original request (see Loop).
type AliasResult struct {
	Request Request
	Root    fspath.Path
}

// AlternativesResult is an ordered retry list; each element is recursively
// any result kind.
type AlternativesResult struct {
	Results []ImportMapResult
}

// NoEntryResult means no rule matched; the caller proceeds with default
// resolution.
type NoEntryResult struct{}

func (ResolvedResult) importMapResult()     {}
func (AliasResult) importMapResult()        {}
func (AlternativesResult) importMapResult() {}
func (NoEntryResult) importMapResult()      {}

// mappingToResult interprets a mapping into the action the resolution loop
// should take. It is total over the closed mapping set; the only failure
// mode is an alias target that doesn't parse as a request.
func mappingToResult(mapping ImportMapping) (ImportMapResult, error) {
	switch m := mapping.(type) {
	case External:
		if m.Name == "" {
			return ResolvedResult{Result: specialResult(SpecialExternal)}, nil
		}
		return ResolvedResult{Result: typedExternalResult(m.Name)}, nil

	case Ignore:
		return ResolvedResult{Result: specialResult(SpecialIgnore)}, nil

	case Empty:
		return ResolvedResult{Result: specialResult(SpecialEmpty)}, nil

	case PrimaryAlternative:
		request, err := ParseRequest(m.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot alias to %q", m.Name)
		}
		return AliasResult{Request: request, Root: m.Root}, nil

	case Alternatives:
		results := make([]ImportMapResult, len(m.Mappings))
		for i, mapping := range m.Mappings {
			result, err := mappingToResult(mapping)
			if err != nil {
				return nil, err
			}
			results[i] = result
		}
		return AlternativesResult{Results: results}, nil
	}

	panic("Internal error: unhandled import mapping kind")
}

// A GlobMapping pairs a glob pattern with the mapping to apply when a
// request matches it.
type GlobMapping struct {
	Glob    *glob.Glob
	Mapping ImportMapping
}

// An ImportMap rewrites import requests before any filesystem lookup. Direct
// is always consulted first; ByGlob is an ordered fallback list where the
// first matching pattern wins.
type ImportMap struct {
	Direct *aliasmap.AliasMap[ImportMapping]
	ByGlob []GlobMapping

	// Log, when set, emits a debug note per lookup decision. It never
	// affects results.
	Log *log.Logger
}

func NewImportMap() *ImportMap {
	return &ImportMap{Direct: aliasmap.New[ImportMapping]()}
}

// Lookup finds the rewrite rule for a request, if any. The algorithm is
// deterministic and side-effect-free for a given map and request, which is
// what makes results safe to memoize keyed by (map identity, request
// string).
//
// The direct table sees the request string exactly as written. Glob matching
// alone treats "foo/" and "foo" identically: a single trailing slash is
// stripped before the ByGlob walk.
func (m *ImportMap) Lookup(ctx context.Context, request Request) (ImportMapResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	requestString, ok := request.RequestString()
	if !ok {
		// Dynamic requests have nothing to match against
		return NoEntryResult{}, nil
	}

	if m.Direct != nil {
		matches, err := m.Direct.Lookup(requestString)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			if m.Log != nil {
				m.Log.Debug("import map direct match", "request", requestString)
			}
			return mappingToResult(matches[0])
		}
	}

	normalized := strings.TrimSuffix(requestString, "/")
	for _, entry := range m.ByGlob {
		if entry.Glob.Execute(normalized) {
			if m.Log != nil {
				m.Log.Debug("import map glob match",
					"request", requestString, "glob", entry.Glob.String())
			}
			return mappingToResult(entry.Mapping)
		}
	}

	if m.Log != nil {
		m.Log.Debug("import map miss", "request", requestString)
	}
	return NoEntryResult{}, nil
}

// A ResolvedGlobMapping rewrites already-resolved paths underneath Root
// whose root-relative path matches Glob.
type ResolvedGlobMapping struct {
	Root    fspath.Path
	Glob    *glob.Glob
	Mapping ImportMapping
}

// A ResolvedMap applies rewrite rules after resolution, uniformly over
// whichever request or search strategy produced the path. Rules are ordered;
// the first match wins.
type ResolvedMap struct {
	ByGlob []ResolvedGlobMapping

	Log *log.Logger
}

// Lookup finds the rewrite rule for a resolved path, if any. Entries whose
// root is not an ancestor of the path are skipped; globs only ever see the
// root-relative path, never an absolute one.
func (m *ResolvedMap) Lookup(ctx context.Context, resolved fspath.Path) (ImportMapResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, entry := range m.ByGlob {
		relative, ok := resolved.RelativeTo(entry.Root)
		if !ok {
			continue
		}
		if entry.Glob.Execute(relative) {
			if m.Log != nil {
				m.Log.Debug("resolved map glob match",
					"path", resolved.Text, "root", entry.Root.Text, "glob", entry.Glob.String())
			}
			return mappingToResult(entry.Mapping)
		}
	}
	return NoEntryResult{}, nil
}

// Package api is the public surface for assembling resolver configuration.
// Everything here is programmatic: there is no config file format at this
// layer, callers build ResolveOptions values in code and hand them to the
// resolution pipeline.
package api

import (
	"github.com/rivetbuild/rivet/internal/fspath"
	"github.com/rivetbuild/rivet/internal/resolver"
)

// Re-exported resolver types. The engine lives in an internal package;
// these aliases are the supported way to name its types from outside.
type (
	ResolveOptions     = resolver.ResolveOptions
	ModulesOptions     = resolver.ModulesOptions
	ResolveModules     = resolver.ResolveModules
	ModulesNested      = resolver.ModulesNested
	ModulesPath        = resolver.ModulesPath
	ModulesRegistry    = resolver.ModulesRegistry
	ResolveIntoPackage = resolver.ResolveIntoPackage
	ExportsField       = resolver.ExportsField
	MainField          = resolver.MainField
	DefaultFile        = resolver.DefaultFile
	ConditionValue     = resolver.ConditionValue
	ImportMap          = resolver.ImportMap
	ResolvedMap        = resolver.ResolvedMap
	ImportMapping      = resolver.ImportMapping
	LockedVersions     = resolver.LockedVersions
	Path               = fspath.Path
)

const (
	ConditionUnknown = resolver.ConditionUnknown
	ConditionSet     = resolver.ConditionSet
	ConditionUnset   = resolver.ConditionUnset
)

type Platform uint8

const (
	PlatformBrowser Platform = iota
	PlatformNode
	PlatformNeutral
)

// ImportKind selects the exports-field condition that distinguishes ES
// module imports from CommonJS requires.
type ImportKind uint8

const (
	KindImport ImportKind = iota
	KindRequire
)

// The main fields to try per platform. If a package specifies "main",
// "module", and "browser" then "browser" wins over "module" for browser
// builds, matching what other bundlers converged on. For node builds the
// "main" field wins because some packages put browser-only code in "module".
// The neutral platform picks no defaults at all; configure it yourself.
var defaultMainFields = map[Platform][]string{
	PlatformBrowser: {"browser", "module", "main"},
	PlatformNode:    {"main", "module"},
	PlatformNeutral: {},
}

var defaultExtensions = []string{".tsx", ".ts", ".jsx", ".js", ".css", ".json"}

// ResolveOptionsArgs configures NewResolveOptions. The zero value is a
// browser-platform ES-import configuration with no maps.
type ResolveOptionsArgs struct {
	Platform Platform
	Kind     ImportKind

	// Root is the directory whose ancestor chain is searched for
	// "node_modules" directories.
	Root Path

	// Extensions overrides the default extension order when non-empty.
	Extensions []string

	// Conditions are extra custom exports-field conditions to enable, on top
	// of the platform and kind conditions.
	Conditions []string

	ImportMap   *ImportMap
	ResolvedMap *ResolvedMap
}

// NewResolveOptions assembles a ResolveOptions value with node-style
// defaults for the given platform and import kind.
func NewResolveOptions(args ResolveOptionsArgs) *ResolveOptions {
	conditions := map[string]ConditionValue{
		"default": ConditionSet,
	}
	switch args.Platform {
	case PlatformBrowser:
		conditions["browser"] = ConditionSet
		conditions["node"] = ConditionUnset
	case PlatformNode:
		conditions["node"] = ConditionSet
		conditions["browser"] = ConditionUnset
	}
	switch args.Kind {
	case KindImport:
		conditions["import"] = ConditionSet
		conditions["require"] = ConditionUnset
	case KindRequire:
		conditions["require"] = ConditionSet
		conditions["import"] = ConditionUnset
	}
	for _, name := range args.Conditions {
		conditions[name] = ConditionSet
	}

	intoPackage := []ResolveIntoPackage{
		ExportsField{
			Field:                 "exports",
			Conditions:            conditions,
			UnspecifiedConditions: ConditionUnknown,
		},
	}
	for _, field := range defaultMainFields[args.Platform] {
		intoPackage = append(intoPackage, MainField{Field: field})
	}
	intoPackage = append(intoPackage, DefaultFile{Name: "index.js"})

	extensions := args.Extensions
	if len(extensions) == 0 {
		extensions = append([]string(nil), defaultExtensions...)
	}

	return &ResolveOptions{
		Extensions: extensions,
		Modules: []ResolveModules{
			ModulesNested{Base: args.Root, Names: []string{"node_modules"}},
		},
		IntoPackage: intoPackage,
		ImportMap:   args.ImportMap,
		ResolvedMap: args.ResolvedMap,
	}
}

// NewRegistryResolveOptions assembles options that resolve packages out of a
// registry-shaped directory with versions pinned by a lockfile snapshot,
// instead of searching nested "node_modules" directories.
func NewRegistryResolveOptions(args ResolveOptionsArgs, registry Path, locked *LockedVersions) *ResolveOptions {
	options := NewResolveOptions(args)
	options.Modules = []ResolveModules{
		ModulesRegistry{Root: registry, Versions: locked},
	}
	return options
}

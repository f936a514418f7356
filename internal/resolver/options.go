package resolver

import (
	"github.com/rivetbuild/rivet/internal/fspath"
)

// ConditionValue is the tri-state value of a package-exports condition.
//
// The distinction between ConditionUnset and ConditionUnknown matters:
// "unknown" means the caller expressed no preference for the condition at
// all, which exports-field matching treats differently from a condition that
// was explicitly turned off.
type ConditionValue uint8

const (
	ConditionUnknown ConditionValue = iota
	ConditionSet
	ConditionUnset
)

// ConditionFromBool converts an explicit on/off choice. Nothing converts to
// ConditionUnknown; that state only exists for conditions the caller never
// mentioned.
func ConditionFromBool(v bool) ConditionValue {
	if v {
		return ConditionSet
	}
	return ConditionUnset
}

func (v ConditionValue) String() string {
	switch v {
	case ConditionSet:
		return "set"
	case ConditionUnset:
		return "unset"
	}
	return "unknown"
}

// ResolveModules describes one place to look for packages. The resolution
// pipeline walks the configured list in order.
type ResolveModules interface {
	resolveModules()
}

// ModulesNested searches named directories (e.g. "node_modules") in the base
// directory and each of its ancestors.
type ModulesNested struct {
	Base  fspath.Path
	Names []string
}

// ModulesPath searches exactly one directory.
type ModulesPath struct {
	Path fspath.Path
}

// ModulesRegistry resolves packages out of a registry-shaped directory where
// packages live at "@scope/name/version/<path-in-package>", with versions
// pinned by a lockfile snapshot.
type ModulesRegistry struct {
	Root     fspath.Path
	Versions *LockedVersions
}

func (ModulesNested) resolveModules()   {}
func (ModulesPath) resolveModules()     {}
func (ModulesRegistry) resolveModules() {}

// ResolveIntoPackage describes one way to pick an entry point once a package
// directory has been matched. Strategies are tried in order; the first that
// succeeds wins.
type ResolveIntoPackage interface {
	resolveIntoPackage()
}

// ExportsField evaluates an exports-field-like manifest entry under a set of
// conditions. Conditions absent from the map fall back to
// UnspecifiedConditions.
type ExportsField struct {
	Field                 string
	Conditions            map[string]ConditionValue
	UnspecifiedConditions ConditionValue
}

// MainField reads a single manifest field (e.g. "main", "module", "browser")
// as the entry path.
type MainField struct {
	Field string
}

// DefaultFile falls back to a fixed entry file at the package root, e.g.
// "index.js".
type DefaultFile struct {
	Name string
}

func (ExportsField) resolveIntoPackage() {}
func (MainField) resolveIntoPackage()    {}
func (DefaultFile) resolveIntoPackage()  {}

// ResolveOptions is the full, immutable configuration for one resolution
// context. It is assembled once (per build configuration or directory scope)
// and then shared by every request resolved in that context; nothing mutates
// it afterwards.
type ResolveOptions struct {
	// Extensions to try, in order, when a path has none.
	Extensions []string

	// Where to search for modules, in order.
	Modules []ResolveModules

	// How to enter a matched package directory, in order.
	IntoPackage []ResolveIntoPackage

	ImportMap   *ImportMap
	ResolvedMap *ResolvedMap
}

// ModulesOptions is the narrowed view of ResolveOptions for consumers that
// only need search roots. The search-root algorithm depends on this type
// rather than on ResolveOptions so that edits to extensions or maps don't
// invalidate its memoized results.
type ModulesOptions struct {
	Modules []ResolveModules
}

// ModulesOptions derives the search-root view. The result carries exactly
// the same module list, in the same order.
func (o *ResolveOptions) ModulesOptions() ModulesOptions {
	return ModulesOptions{Modules: o.Modules}
}

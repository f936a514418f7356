package resolver

// SpecialKind tags terminal outcomes that import map rules can produce
// without any filesystem work.
type SpecialKind uint8

const (
	// The request stays external at runtime under its original name.
	SpecialExternal SpecialKind = iota

	// The request stays external at runtime under an explicit replacement
	// name.
	SpecialTypedExternal

	// The request resolves to an intentionally ignored no-op module.
	SpecialIgnore

	// The request resolves to an empty module. Downstream consumers may
	// special-case this differently from SpecialIgnore, so the two tags are
	// never collapsed even though they look identical here.
	SpecialEmpty
)

func (k SpecialKind) String() string {
	switch k {
	case SpecialExternal:
		return "external"
	case SpecialTypedExternal:
		return "typed-external"
	case SpecialIgnore:
		return "ignore"
	case SpecialEmpty:
		return "empty"
	}
	return "unknown"
}

// A Reference is a dependency edge recorded alongside a resolution outcome.
// Outcomes minted by import map rules always carry an empty reference list;
// the full resolution pipeline attaches references of its own.
type Reference struct {
	Request string
}

// A ResolveResult is a fully formed terminal resolution. The resolver core
// only ever constructs "special" results; results that point at actual files
// come from the surrounding pipeline.
type ResolveResult struct {
	Kind SpecialKind

	// ExternalName is the explicit external name for SpecialTypedExternal
	// results and empty otherwise.
	ExternalName string

	References []Reference
}

func specialResult(kind SpecialKind) ResolveResult {
	return ResolveResult{Kind: kind}
}

func typedExternalResult(name string) ResolveResult {
	return ResolveResult{Kind: SpecialTypedExternal, ExternalName: name}
}

package resolver

// LockedVersions is a snapshot of package versions pinned by a lockfile. The
// resolver core carries it opaquely inside ModulesRegistry; only the external
// search-root algorithm interprets it when mapping a package name to its
// "@scope/name/version" directory under the registry root.
type LockedVersions struct {
	versions map[string]string
}

// NewLockedVersions copies the given name→version snapshot.
func NewLockedVersions(versions map[string]string) *LockedVersions {
	copied := make(map[string]string, len(versions))
	for name, version := range versions {
		copied[name] = version
	}
	return &LockedVersions{versions: copied}
}

// Version returns the pinned version for a package name.
func (l *LockedVersions) Version(name string) (string, bool) {
	version, ok := l.versions[name]
	return version, ok
}

// Len returns the number of pinned packages.
func (l *LockedVersions) Len() int {
	return len(l.versions)
}

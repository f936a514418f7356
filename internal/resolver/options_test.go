package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rivetbuild/rivet/internal/fspath"
)

func TestConditionFromBool(t *testing.T) {
	assert.Equal(t, ConditionSet, ConditionFromBool(true))
	assert.Equal(t, ConditionUnset, ConditionFromBool(false))
}

func TestModulesOptionsView(t *testing.T) {
	modules := []ResolveModules{
		ModulesNested{Base: fspath.New("/proj/src"), Names: []string{"node_modules"}},
		ModulesPath{Path: fspath.New("/proj/vendor")},
		ModulesRegistry{
			Root:     fspath.New("/registry"),
			Versions: NewLockedVersions(map[string]string{"react": "18.2.0"}),
		},
	}
	options := &ResolveOptions{
		Extensions:  []string{".ts", ".js"},
		Modules:     modules,
		IntoPackage: []ResolveIntoPackage{MainField{Field: "main"}},
		ImportMap:   NewImportMap(),
	}

	view := options.ModulesOptions()
	assert.Equal(t, modules, view.Modules)

	// The view is a function of the module list alone: unrelated option
	// fields don't show up in it, so changing them can't invalidate it.
	other := &ResolveOptions{
		Extensions:  []string{".css"},
		Modules:     modules,
		ResolvedMap: &ResolvedMap{},
	}
	assert.Equal(t, view, other.ModulesOptions())
}

func TestLockedVersions(t *testing.T) {
	source := map[string]string{"react": "18.2.0", "@scope/pkg": "1.0.0"}
	locked := NewLockedVersions(source)

	version, ok := locked.Version("react")
	assert.True(t, ok)
	assert.Equal(t, "18.2.0", version)

	_, ok = locked.Version("vue")
	assert.False(t, ok)

	// The snapshot is a copy; later edits to the source map don't leak in
	source["react"] = "19.0.0"
	version, _ = locked.Version("react")
	assert.Equal(t, "18.2.0", version)
	assert.Equal(t, 2, locked.Len())
}

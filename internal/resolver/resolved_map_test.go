package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivetbuild/rivet/internal/fspath"
	"github.com/rivetbuild/rivet/internal/glob"
)

func TestResolvedMapMatchesRelativeToRoot(t *testing.T) {
	m := &ResolvedMap{ByGlob: []ResolvedGlobMapping{{
		Root:    fspath.New("/proj/node_modules"),
		Glob:    glob.MustNew("**/*.node"),
		Mapping: External{},
	}}}

	result, err := m.Lookup(context.Background(), fspath.New("/proj/node_modules/sharp/build/sharp.node"))
	require.NoError(t, err)
	assert.Equal(t, ResolvedResult{Result: specialResult(SpecialExternal)}, result)
}

func TestResolvedMapSkipsForeignRoots(t *testing.T) {
	m := &ResolvedMap{ByGlob: []ResolvedGlobMapping{{
		Root: fspath.New("/proj/node_modules"),
		// "**/*.node" would also match the absolute path below if the root
		// scoping were broken; make the pattern distinguish the two.
		Glob:    glob.MustNew("sharp/**"),
		Mapping: External{},
	}}}

	result, err := m.Lookup(context.Background(), fspath.New("/elsewhere/sharp/build/sharp.node"))
	require.NoError(t, err)
	assert.Equal(t, NoEntryResult{}, result)
}

func TestResolvedMapGlobNeverSeesAbsolutePath(t *testing.T) {
	m := &ResolvedMap{ByGlob: []ResolvedGlobMapping{{
		Root: fspath.New("/proj"),
		// Anchored at the start of the *relative* path; would not match if
		// the absolute path "/proj/polyfills/..." were used instead.
		Glob:    glob.MustNew("polyfills/*.js"),
		Mapping: Ignore{},
	}}}

	result, err := m.Lookup(context.Background(), fspath.New("/proj/polyfills/buffer.js"))
	require.NoError(t, err)
	assert.Equal(t, ResolvedResult{Result: specialResult(SpecialIgnore)}, result)
}

func TestResolvedMapFirstMatchWins(t *testing.T) {
	m := &ResolvedMap{ByGlob: []ResolvedGlobMapping{
		{
			Root:    fspath.New("/proj"),
			Glob:    glob.MustNew("**/*.css"),
			Mapping: Ignore{},
		},
		{
			Root:    fspath.New("/proj"),
			Glob:    glob.MustNew("theme/**"),
			Mapping: Empty{},
		},
	}}

	result, err := m.Lookup(context.Background(), fspath.New("/proj/theme/dark.css"))
	require.NoError(t, err)
	assert.Equal(t, ResolvedResult{Result: specialResult(SpecialIgnore)}, result)
}

func TestResolvedMapNoEntry(t *testing.T) {
	m := &ResolvedMap{}

	result, err := m.Lookup(context.Background(), fspath.New("/proj/a.js"))
	require.NoError(t, err)
	assert.Equal(t, NoEntryResult{}, result)
}

func TestResolvedMapCanceledContext(t *testing.T) {
	m := &ResolvedMap{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Lookup(ctx, fspath.New("/proj/a.js"))
	assert.ErrorIs(t, err, context.Canceled)
}

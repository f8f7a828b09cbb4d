package domain_test

import (
	"testing"

	"github.com/modb-dev/modb/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func mod(name string, deps ...string) *domain.ModuleDescriptor {
	return &domain.ModuleDescriptor{Name: name, Dependencies: deps}
}

func newStore(t *testing.T, modules ...*domain.ModuleDescriptor) *domain.Descriptors {
	t.Helper()
	mapping := make(map[string]*domain.ModuleDescriptor, len(modules))
	for _, m := range modules {
		mapping[m.Name] = m
	}
	return domain.NewDescriptors("test_app", modules, mapping, "", false)
}

func metadata(t *testing.T, err error) map[string]any {
	t.Helper()
	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	return zErr.Metadata()
}

func TestDescriptors_TopologicalOrder_RespectsDependencies(t *testing.T) {
	d := newStore(t,
		mod("base"),
		mod("platform", "base"),
		mod("ui", "platform", "base"),
		mod("feature", "ui"),
		mod("standalone"),
	)

	order, err := d.TopologicalOrder()
	require.NoError(t, err)
	require.Len(t, order, 5)

	index := make(map[string]int, len(order))
	for i, name := range order {
		_, seen := index[name]
		require.False(t, seen, "module %q appears more than once", name)
		index[name] = i
	}

	for _, name := range order {
		m, ok := d.Module(name)
		require.True(t, ok)
		for _, dep := range m.Dependencies {
			assert.Less(t, index[dep], index[name],
				"dependency %q must precede %q", dep, name)
		}
	}
}

func TestDescriptors_TopologicalOrder_Memoized(t *testing.T) {
	d := newStore(t, mod("base"), mod("feature", "base"))

	first, err := d.TopologicalOrder()
	require.NoError(t, err)
	second, err := d.TopologicalOrder()
	require.NoError(t, err)

	require.Equal(t, first, second)
	assert.True(t, &first[0] == &second[0], "repeated calls must return the cached slice")
}

func TestDescriptors_TopologicalOrder_SelfCycle(t *testing.T) {
	d := newStore(t, mod("x", "x"))

	_, err := d.TopologicalOrder()
	require.ErrorIs(t, err, domain.ErrCycleDetected)
	assert.Equal(t, "x", metadata(t, err)["module"])
}

func TestDescriptors_TopologicalOrder_LongCycle(t *testing.T) {
	d := newStore(t,
		mod("a", "b"),
		mod("b", "c"),
		mod("c", "a"),
	)

	_, err := d.TopologicalOrder()
	require.ErrorIs(t, err, domain.ErrCycleDetected)
	assert.Contains(t, []any{"a", "b", "c"}, metadata(t, err)["module"])
}

func TestDescriptors_TopologicalOrder_UnknownModule(t *testing.T) {
	d := newStore(t, mod("a", "ghost"))

	_, err := d.TopologicalOrder()
	require.ErrorIs(t, err, domain.ErrUnknownModule)

	meta := metadata(t, err)
	assert.Equal(t, "ghost", meta["module"])
	assert.Equal(t, "a", meta["referenced_by"])

	// The failure is memoized like the result.
	_, again := d.TopologicalOrder()
	assert.Equal(t, err, again)
}

func TestDescriptors_DependencyClosure(t *testing.T) {
	d := newStore(t,
		mod("a", "b", "c"),
		mod("b", "d"),
		mod("c", "d"),
		mod("d"),
		mod("unrelated"),
	)

	closure, err := d.DependencyClosure("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b", "c", "a"}, closure)

	leaf, err := d.DependencyClosure("d")
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, leaf)
}

func TestDescriptors_DependencyClosure_UnknownModule(t *testing.T) {
	d := newStore(t, mod("a"))

	_, err := d.DependencyClosure("ghost")
	require.ErrorIs(t, err, domain.ErrModuleNotFound)
	assert.Equal(t, "ghost", metadata(t, err)["module"])
}

func TestDescriptors_ResourceList(t *testing.T) {
	x := mod("x")
	x.Resources = []string{"a.js", "b.js"}
	d := newStore(t, x, mod("empty"))

	resources, err := d.ResourceList("x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x/a.js", "x/b.js"}, resources)

	empty, err := d.ResourceList("empty")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = d.ResourceList("missing")
	require.ErrorIs(t, err, domain.ErrModuleNotFound)
	assert.Equal(t, "missing", metadata(t, err)["module"])
}

func TestDescriptors_ApplicationManifest_PreservesOrder(t *testing.T) {
	// Own modules in declaration order, not sorted and not the flattened set.
	own := []*domain.ModuleDescriptor{mod("zeta"), mod("alpha"), mod("mid")}
	flattened := map[string]*domain.ModuleDescriptor{
		"zeta": own[0], "alpha": own[1], "mid": own[2],
		"inherited": mod("inherited"),
	}
	d := domain.NewDescriptors("app", own, flattened, "parent", true)

	manifest := d.ApplicationManifest()
	require.Len(t, manifest.Modules, 3)
	assert.Equal(t, "zeta", manifest.Modules[0].Name)
	assert.Equal(t, "alpha", manifest.Modules[1].Name)
	assert.Equal(t, "mid", manifest.Modules[2].Name)

	assert.Equal(t, "app", d.ApplicationName())
	assert.Equal(t, "parent", d.Extends())
	assert.True(t, d.Worker())
}

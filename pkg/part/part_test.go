package part_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spurline/railparts/pkg/kernel"
	"github.com/spurline/railparts/pkg/part"
)

// namedBuild returns a Build func producing one empty-bodied solid per name.
func namedBuild(names ...string) func(kernel.Kernel) ([]part.Solid, error) {
	return func(kernel.Kernel) ([]part.Solid, error) {
		solids := make([]part.Solid, len(names))
		for i, n := range names {
			solids[i] = part.Solid{Name: n}
		}
		return solids, nil
	}
}

func TestFamilyBuildAll(t *testing.T) {
	f := &part.Family{
		Name: "widgets",
		Variants: []part.Variant{
			{Name: "a", Build: namedBuild("WidgetA")},
			{Name: "b", Build: namedBuild("WidgetB1", "WidgetB2")},
		},
	}
	solids, err := f.BuildAll(nil)
	require.NoError(t, err)
	require.Len(t, solids, 3)
	assert.Equal(t, "WidgetA", solids[0].Name)
	assert.Equal(t, "WidgetB2", solids[2].Name)
}

func TestFamilyBuildAllRejectsDuplicateSolidNames(t *testing.T) {
	f := &part.Family{
		Name: "widgets",
		Variants: []part.Variant{
			{Name: "a", Build: namedBuild("Widget")},
			{Name: "b", Build: namedBuild("Widget")},
		},
	}
	_, err := f.BuildAll(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Widget")
}

func TestFamilyBuildAllPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	f := &part.Family{
		Name: "widgets",
		Variants: []part.Variant{
			{Name: "a", Build: func(kernel.Kernel) ([]part.Solid, error) { return nil, boom }},
		},
	}
	_, err := f.BuildAll(nil)
	require.ErrorIs(t, err, boom)
}

func TestRegistry(t *testing.T) {
	reg := part.NewRegistry()
	require.NoError(t, reg.Register(&part.Family{
		Name:     "clips",
		Variants: []part.Variant{{Name: "standard", Build: namedBuild("Clip")}},
	}))
	require.NoError(t, reg.Register(&part.Family{
		Name:     "boxes",
		Variants: []part.Variant{{Name: "standard", Build: namedBuild("Box")}},
	}))

	f, err := reg.Get("clips")
	require.NoError(t, err)
	assert.Equal(t, "clips", f.Name)

	_, err = reg.Get("missing")
	assert.Error(t, err)

	assert.Equal(t, []string{"boxes", "clips"}, reg.List())
}

func TestRegistryRejectsInvalidFamilies(t *testing.T) {
	reg := part.NewRegistry()

	assert.Error(t, reg.Register(&part.Family{
		Variants: []part.Variant{{Name: "standard", Build: namedBuild("X")}},
	}), "unnamed family")

	assert.Error(t, reg.Register(&part.Family{Name: "empty"}), "no variants")

	require.NoError(t, reg.Register(&part.Family{
		Name:     "dup",
		Variants: []part.Variant{{Name: "standard", Build: namedBuild("X")}},
	}))
	assert.Error(t, reg.Register(&part.Family{
		Name:     "dup",
		Variants: []part.Variant{{Name: "other", Build: namedBuild("Y")}},
	}), "duplicate family name")
}

package cableclip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spurline/railparts/pkg/kernel/sdfx"
	"github.com/spurline/railparts/pkg/params"
	"github.com/spurline/railparts/pkg/parts/cableclip"
)

func TestTablesValidate(t *testing.T) {
	assert.NoError(t, cableclip.Default().Validate())
	assert.NoError(t, cableclip.Extended().Validate())
}

func TestValidateRejectsClosedOpening(t *testing.T) {
	p := cableclip.Default()
	p.LipOverhang = 4.5 // lips would meet across an 8mm bundle
	err := p.Validate()
	var invalid *params.InvalidDimensionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "lip_overhang", invalid.Name)
}

func TestFamilyVariants(t *testing.T) {
	f := cableclip.Family()
	assert.Equal(t, "cableclip", f.Name)
	require.Len(t, f.Variants, 3)

	solids, err := f.BuildAll(sdfx.New())
	require.NoError(t, err)
	require.Len(t, solids, 3)
	assert.Equal(t, "CableClip", solids[0].Name)
	assert.Equal(t, "CableClipLong", solids[1].Name)
	assert.Equal(t, "CableClipLeft", solids[2].Name)
}

func TestClipBounds(t *testing.T) {
	solids, err := cableclip.Family().BuildAll(sdfx.New())
	require.NoError(t, err)

	p := cableclip.Default()
	outer := p.ChannelWidth()
	top := p.Floor + p.CableDiameter
	const tol = 0.01

	// Standard: channel plus tab on +Y.
	min, max := solids[0].Body.BoundingBox()
	assert.InDelta(t, 0, min[0], tol)
	assert.InDelta(t, p.Length, max[0], tol)
	assert.InDelta(t, 0, min[1], tol)
	assert.InDelta(t, outer+p.TabWidth, max[1], tol)
	assert.InDelta(t, top, max[2], tol)

	// Extended differs from standard only in length.
	min, max = solids[1].Body.BoundingBox()
	assert.InDelta(t, cableclip.Extended().Length, max[0], tol)
	assert.InDelta(t, outer+p.TabWidth, max[1], tol)

	// Left-tab mirror puts the tab on -Y.
	min, max = solids[2].Body.BoundingBox()
	assert.InDelta(t, -(outer + p.TabWidth), min[1], tol)
	assert.InDelta(t, 0, max[1], tol)
}

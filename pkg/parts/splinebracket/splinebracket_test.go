package splinebracket_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spurline/railparts/pkg/kernel/sdfx"
	"github.com/spurline/railparts/pkg/params"
	"github.com/spurline/railparts/pkg/parts/splinebracket"
)

func TestDefaultValidates(t *testing.T) {
	assert.NoError(t, splinebracket.Default().Validate())
}

func TestValidateRejectsBadTables(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*splinebracket.Params)
		field  string
	}{
		{"zero bolt", func(p *splinebracket.Params) { p.BoltDiameter = 0 }, "bolt_diameter"},
		{"floor above block", func(p *splinebracket.Params) { p.HolderFloor = 40 }, "holder_floor"},
		{"groove wider than block", func(p *splinebracket.Params) { p.GrooveBottomWidth = 70 }, "groove_bottom_width"},
		{"bolt wider than leg", func(p *splinebracket.Params) { p.BoltDiameter = 12 }, "bolt_diameter"},
		{"groove binds on tongue", func(p *splinebracket.Params) { p.VGrooveWidth = 9 }, "tongue_width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := splinebracket.Default()
			tt.mutate(&p)
			err := p.Validate()
			var invalid *params.InvalidDimensionError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Name)
		})
	}
}

func TestBuildProducesBothSolids(t *testing.T) {
	p := splinebracket.Default()
	solids, err := p.Build(sdfx.New())
	require.NoError(t, err)
	require.Len(t, solids, 2)
	assert.Equal(t, "HolderBlock", solids[0].Name)
	assert.Equal(t, "GussetBracket", solids[1].Name)
}

func TestHolderBounds(t *testing.T) {
	p := splinebracket.Default()
	solids, err := p.Build(sdfx.New())
	require.NoError(t, err)

	min, max := solids[0].Body.BoundingBox()
	const tol = 0.01
	// Block footprint with the V-tongue hanging below y=0.
	assert.InDelta(t, 0, min[0], tol)
	assert.InDelta(t, p.PartWidth, max[0], tol)
	assert.InDelta(t, -p.TongueDepth, min[1], tol)
	assert.InDelta(t, p.HolderHeight, max[1], tol)
	assert.InDelta(t, 0, min[2], tol)
	assert.InDelta(t, p.PartDepth, max[2], tol)
}

func TestBracketBounds(t *testing.T) {
	p := splinebracket.Default()
	solids, err := p.Build(sdfx.New())
	require.NoError(t, err)

	min, max := solids[1].Body.BoundingBox()
	const tol = 0.01
	assert.InDelta(t, 0, min[0], tol)
	assert.InDelta(t, p.PartWidth, max[0], tol)
	assert.InDelta(t, -p.LegHeight, min[1], tol)
	assert.InDelta(t, 0, max[1], tol)
	assert.InDelta(t, 0, min[2], tol)
	assert.InDelta(t, p.PartDepth, max[2], tol)
}

func TestFamily(t *testing.T) {
	f := splinebracket.Family()
	assert.Equal(t, "splinebracket", f.Name)
	solids, err := f.BuildAll(sdfx.New())
	require.NoError(t, err)
	require.Len(t, solids, 2)
}

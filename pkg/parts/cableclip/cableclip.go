// Package cableclip generates screw-down clips for wiring looms under the
// layout. The clip is a lipped C-channel cross-section extruded along the
// cable run, with a flat screw tab on one side. Variants cover two lengths
// and a mirrored left-tab form for runs along the opposite girder face.
package cableclip

import (
	"fmt"

	"github.com/spurline/railparts/pkg/kernel"
	"github.com/spurline/railparts/pkg/params"
	"github.com/spurline/railparts/pkg/part"
)

// pierce is the overshoot applied to through-cuts so booleans never operate
// on coincident faces.
const pierce = 1.0

// Params is the dimension table. Lengths in mm. The clip runs along X with
// its bottom face at z=0; the channel opens upward and the tab extends in +Y.
type Params struct {
	Length        float64 // along the cable run
	CableDiameter float64 // bundle the channel holds
	Wall          float64 // arm and floor thickness
	Floor         float64 // channel floor above the base
	LipOverhang   float64 // each lip, narrows the opening for retention

	TabWidth      float64 // +Y past the channel
	TabThickness  float64
	ScrewDiameter float64
}

// Default returns the standard-length table.
func Default() Params {
	return Params{
		Length:        12.0,
		CableDiameter: 8.0,
		Wall:          2.5,
		Floor:         3.0,
		LipOverhang:   1.5,

		TabWidth:      12.0,
		TabThickness:  3.0,
		ScrewDiameter: 3.2,
	}
}

// Extended returns the long-run table, same cross-section.
func Extended() Params {
	p := Default()
	p.Length = 25.0
	return p
}

// Validate rejects the table before any geometry is constructed.
func (p Params) Validate() error {
	return params.All(
		params.Positive("length", p.Length),
		params.Positive("cable_diameter", p.CableDiameter),
		params.Positive("wall", p.Wall),
		params.Positive("floor", p.Floor),
		params.Positive("lip_overhang", p.LipOverhang),
		// The opening must stay wide enough to press the bundle through.
		params.LessThan("lip_overhang", 2*p.LipOverhang, "cable_diameter", p.CableDiameter),
		params.LessThan("lip_overhang", p.LipOverhang, "cable_diameter", p.CableDiameter),
		params.Positive("tab_width", p.TabWidth),
		params.Positive("tab_thickness", p.TabThickness),
		params.Positive("screw_diameter", p.ScrewDiameter),
		params.LessThan("screw_diameter", p.ScrewDiameter, "tab_width", p.TabWidth),
		params.LessThan("screw_diameter", p.ScrewDiameter, "length", p.Length),
	)
}

// ChannelWidth is the outer Y extent of the channel body.
func (p Params) ChannelWidth() float64 {
	return p.CableDiameter + 2*p.Wall
}

// build constructs the clip; mirrored reflects the tab to the -Y side.
func (p Params) build(k kernel.Kernel, name string, mirrored bool) ([]part.Solid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	w := p.Wall
	l := p.LipOverhang
	outer := p.ChannelWidth()
	top := p.Floor + p.CableDiameter

	// Lipped C cross-section in the YZ plane, swept along the run.
	clip, err := part.ExtrudeX(k, [][2]float64{
		{0, 0},
		{outer, 0},
		{outer, top},
		{outer - w - l, top},
		{outer - w, top - l},
		{outer - w, p.Floor},
		{w, p.Floor},
		{w, top - l},
		{w + l, top},
		{0, top},
	}, p.Length, 0)
	if err != nil {
		return nil, fmt.Errorf("channel: %w", err)
	}

	tab, err := part.BoxAt(k,
		p.Length, p.TabWidth+pierce, p.TabThickness,
		0, outer-pierce, 0)
	if err != nil {
		return nil, err
	}
	clip, err = k.Union(clip, tab)
	if err != nil {
		return nil, fmt.Errorf("tab: %w", err)
	}

	screw, err := part.CylinderZ(k,
		p.TabThickness+2*pierce, p.ScrewDiameter/2,
		p.Length/2, outer+p.TabWidth/2, -pierce)
	if err != nil {
		return nil, err
	}
	clip, err = k.Difference(clip, screw)
	if err != nil {
		return nil, fmt.Errorf("screw hole: %w", err)
	}

	if mirrored {
		clip = k.Mirror(clip, kernel.PlaneXZ)
	}
	return []part.Solid{{Name: name, Body: clip}}, nil
}

// Family returns the registrable part family.
func Family() *part.Family {
	return &part.Family{
		Name: "cableclip",
		Variants: []part.Variant{
			{Name: "standard", Build: func(k kernel.Kernel) ([]part.Solid, error) {
				return Default().build(k, "CableClip", false)
			}},
			{Name: "extended", Build: func(k kernel.Kernel) ([]part.Solid, error) {
				return Extended().build(k, "CableClipLong", false)
			}},
			{Name: "left", Build: func(k kernel.Kernel) ([]part.Solid, error) {
				return Default().build(k, "CableClipLeft", true)
			}},
		},
	}
}

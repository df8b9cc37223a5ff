// Package splinebracket generates a two-part PETG bracket system that holds
// premade spline roadbed and attaches it to a layout module edge. One run
// produces two solids: the spline holder (block with trapezoid groove and
// anti-rotation V-tongue) and the gusset bracket (L-profile with dual gusset
// ribs and a mating V-groove). A single 6.35mm vertical bolt clamps spline,
// holder and bracket; the tongue/groove pair prevents rotation.
//
// The bracket is rotated 90 degrees around Y when assembled, so bracket X
// corresponds to holder Z and vice versa.
package splinebracket

import (
	"fmt"

	"github.com/spurline/railparts/pkg/kernel"
	"github.com/spurline/railparts/pkg/params"
	"github.com/spurline/railparts/pkg/part"
)

// pierce is the overshoot applied to through-cuts so booleans never operate
// on coincident faces.
const pierce = 1.0

// Params is the dimension table shared by both solids. Lengths in mm.
type Params struct {
	// Common.
	PartWidth    float64 // X, across the spline / bracket width
	PartDepth    float64 // Z, along the spline / bracket depth
	BoltDiameter float64 // 1/4 inch bolt

	// Spline holder.
	HolderHeight         float64 // Y
	HolderFloor          float64 // solid floor below the groove
	GrooveBottomWidth    float64 // trapezoid groove, at the floor
	GrooveStraightHeight float64 // vertical walls above the floor
	GrooveTaperHeight    float64 // 45-degree taper zone
	GrooveTaperInset     float64 // each side; 45 degrees means inset == taper height
	TongueWidth          float64 // V-tongue base width
	TongueDepth          float64 // apex extends below y=0

	// Gusset bracket.
	FlangeThickness float64 // horizontal flange height in Y
	LegThickness    float64 // vertical leg width in X
	LegHeight       float64 // total vertical leg extent
	GussetThickness float64 // each rib wall thickness in Z
	BlendRadius     float64 // inside corner blending
	VGrooveWidth    float64 // mates with the tongue, cut wider for clearance
	VGrooveDepth    float64
	LowerBoltY      float64 // lower bolt centerline, negative from bracket top
}

// Default returns the as-built dimension table.
func Default() Params {
	return Params{
		PartWidth:    60.0,
		PartDepth:    60.0,
		BoltDiameter: 6.35,

		HolderHeight:         32.0,
		HolderFloor:          10.0,
		GrooveBottomWidth:    40.0,
		GrooveStraightHeight: 17.0,
		GrooveTaperHeight:    5.0,
		GrooveTaperInset:     5.0,
		TongueWidth:          10.0,
		TongueDepth:          3.0,

		FlangeThickness: 10.0,
		LegThickness:    10.0,
		LegHeight:       120.0,
		GussetThickness: 5.0,
		BlendRadius:     3.0,
		VGrooveWidth:    11.0, // 1mm wider than the tongue
		VGrooveDepth:    3.0,
		LowerBoltY:      -93.0,
	}
}

// Validate rejects the table before any geometry is constructed.
func (p Params) Validate() error {
	return params.All(
		params.Positive("part_width", p.PartWidth),
		params.Positive("part_depth", p.PartDepth),
		params.Positive("bolt_diameter", p.BoltDiameter),
		params.Positive("holder_height", p.HolderHeight),
		params.Positive("holder_floor", p.HolderFloor),
		params.LessThan("holder_floor", p.HolderFloor, "holder_height", p.HolderHeight),
		params.Positive("groove_bottom_width", p.GrooveBottomWidth),
		params.LessThan("groove_bottom_width", p.GrooveBottomWidth, "part_width", p.PartWidth),
		params.Positive("groove_straight_height", p.GrooveStraightHeight),
		params.Positive("groove_taper_height", p.GrooveTaperHeight),
		params.Positive("groove_taper_inset", p.GrooveTaperInset),
		params.Positive("tongue_width", p.TongueWidth),
		params.Positive("tongue_depth", p.TongueDepth),
		params.Positive("flange_thickness", p.FlangeThickness),
		params.Positive("leg_thickness", p.LegThickness),
		params.LessThan("bolt_diameter", p.BoltDiameter, "leg_thickness", p.LegThickness),
		params.Positive("leg_height", p.LegHeight),
		params.Positive("gusset_thickness", p.GussetThickness),
		params.Positive("blend_radius", p.BlendRadius),
		// The groove must clear the tongue or assembly binds.
		params.LessThan("tongue_width", p.TongueWidth, "vgroove_width", p.VGrooveWidth),
		params.Positive("vgroove_depth", p.VGrooveDepth),
	)
}

// derived holds positions computed from the independent parameters.
type derived struct {
	boltRadius float64
	boltX      float64 // holder bolt, centered in X
	boltZ      float64 // centered in Z

	grooveXLeft, grooveXRight     float64
	grooveYBottom, grooveYTaper   float64
	grooveYTop                    float64
	grooveTopLeft, grooveTopRight float64

	tongueXLeft, tongueXRight float64

	vgrooveZLeft, vgrooveZRight float64
}

func (p Params) derive() derived {
	xLeft := (p.PartWidth - p.GrooveBottomWidth) / 2
	return derived{
		boltRadius: p.BoltDiameter / 2,
		boltX:      p.PartWidth / 2,
		boltZ:      p.PartDepth / 2,

		grooveXLeft:    xLeft,
		grooveXRight:   xLeft + p.GrooveBottomWidth,
		grooveYBottom:  p.HolderFloor,
		grooveYTaper:   p.HolderFloor + p.GrooveStraightHeight,
		grooveYTop:     p.HolderFloor + p.GrooveStraightHeight + p.GrooveTaperHeight,
		grooveTopLeft:  xLeft + p.GrooveTaperInset,
		grooveTopRight: xLeft + p.GrooveBottomWidth - p.GrooveTaperInset,

		tongueXLeft:  p.PartWidth/2 - p.TongueWidth/2,
		tongueXRight: p.PartWidth/2 + p.TongueWidth/2,

		vgrooveZLeft:  p.PartDepth/2 - p.VGrooveWidth/2,
		vgrooveZRight: p.PartDepth/2 + p.VGrooveWidth/2,
	}
}

// Build constructs both solids of the bracket system.
func (p Params) Build(k kernel.Kernel) ([]part.Solid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	d := p.derive()

	holder, err := p.buildHolder(k, d)
	if err != nil {
		return nil, fmt.Errorf("holder: %w", err)
	}
	bracket, err := p.buildBracket(k, d)
	if err != nil {
		return nil, fmt.Errorf("bracket: %w", err)
	}
	return []part.Solid{
		{Name: "HolderBlock", Body: holder},
		{Name: "GussetBracket", Body: bracket},
	}, nil
}

// buildHolder builds the spline holder: block, trapezoid groove, V-tongue,
// vertical bolt hole.
func (p Params) buildHolder(k kernel.Kernel, d derived) (kernel.Solid, error) {
	block, err := k.Box(p.PartWidth, p.HolderHeight, p.PartDepth)
	if err != nil {
		return nil, err
	}

	// Groove cross-section in XY, extruded along Z. The profile overshoots
	// the block top so the opening pierces cleanly.
	groove, err := part.ExtrudeZ(k, [][2]float64{
		{d.grooveXLeft, d.grooveYBottom},
		{d.grooveXRight, d.grooveYBottom},
		{d.grooveXRight, d.grooveYTaper},
		{d.grooveTopRight, d.grooveYTop},
		{d.grooveTopRight, d.grooveYTop + pierce},
		{d.grooveTopLeft, d.grooveYTop + pierce},
		{d.grooveTopLeft, d.grooveYTop},
		{d.grooveXLeft, d.grooveYTaper},
	}, p.PartDepth+2*pierce, -pierce)
	if err != nil {
		return nil, fmt.Errorf("groove: %w", err)
	}
	block, err = k.Difference(block, groove)
	if err != nil {
		return nil, fmt.Errorf("groove: %w", err)
	}

	// Anti-rotation V-tongue under the floor, centered on the bolt line.
	tongue, err := part.ExtrudeZ(k, [][2]float64{
		{d.tongueXLeft, 0},
		{d.boltX, -p.TongueDepth},
		{d.tongueXRight, 0},
	}, p.PartDepth, 0)
	if err != nil {
		return nil, fmt.Errorf("tongue: %w", err)
	}
	block, err = k.Union(block, tongue)
	if err != nil {
		return nil, fmt.Errorf("tongue: %w", err)
	}

	// Vertical bolt hole through floor and tongue.
	bolt, err := part.CylinderY(k,
		p.HolderFloor+p.TongueDepth+2*pierce, d.boltRadius,
		d.boltX, -(p.TongueDepth + pierce), d.boltZ)
	if err != nil {
		return nil, fmt.Errorf("bolt hole: %w", err)
	}
	block, err = k.Difference(block, bolt)
	if err != nil {
		return nil, fmt.Errorf("bolt hole: %w", err)
	}
	return block, nil
}

// buildBracket builds the gusset bracket: flange, leg, two triangular ribs
// with blended junctions, V-groove and both bolt holes.
func (p Params) buildBracket(k kernel.Kernel, d derived) (kernel.Solid, error) {
	flange, err := part.BoxAt(k,
		p.PartWidth, p.FlangeThickness, p.PartDepth,
		0, -p.FlangeThickness, 0)
	if err != nil {
		return nil, err
	}
	leg, err := part.BoxAt(k,
		p.LegThickness, p.LegHeight, p.PartDepth,
		0, -p.LegHeight, 0)
	if err != nil {
		return nil, err
	}
	// Blending fuses replace the original inside-corner fillets.
	bracket, err := k.UnionSmooth(flange, leg, p.BlendRadius)
	if err != nil {
		return nil, fmt.Errorf("leg: %w", err)
	}

	// Gusset ribs at the front and back faces.
	ribProfile := [][2]float64{
		{p.LegThickness, -p.FlangeThickness},
		{p.LegThickness, -p.LegHeight},
		{p.PartWidth, -p.FlangeThickness},
	}
	for _, z0 := range []float64{0, p.PartDepth - p.GussetThickness} {
		rib, err := part.ExtrudeZ(k, ribProfile, p.GussetThickness, z0)
		if err != nil {
			return nil, fmt.Errorf("gusset rib: %w", err)
		}
		bracket, err = k.UnionSmooth(bracket, rib, p.BlendRadius)
		if err != nil {
			return nil, fmt.Errorf("gusset rib: %w", err)
		}
	}

	// V-groove across the flange top, mating with the holder tongue.
	vgroove, err := part.ExtrudeX(k, [][2]float64{
		{pierce, d.vgrooveZLeft},
		{pierce, d.vgrooveZRight},
		{-p.VGrooveDepth, d.boltZ},
	}, p.PartWidth+2*pierce, -pierce)
	if err != nil {
		return nil, fmt.Errorf("v-groove: %w", err)
	}
	bracket, err = k.Difference(bracket, vgroove)
	if err != nil {
		return nil, fmt.Errorf("v-groove: %w", err)
	}

	// Upper bolt hole: vertical through the flange at center.
	upper, err := part.CylinderY(k,
		p.FlangeThickness+2*pierce, d.boltRadius,
		d.boltX, -(p.FlangeThickness + pierce), d.boltZ)
	if err != nil {
		return nil, fmt.Errorf("upper bolt hole: %w", err)
	}
	bracket, err = k.Difference(bracket, upper)
	if err != nil {
		return nil, fmt.Errorf("upper bolt hole: %w", err)
	}

	// Lower bolt hole: horizontal through the leg.
	lower, err := part.CylinderX(k,
		p.LegThickness+2*pierce, d.boltRadius,
		-pierce, p.LowerBoltY, d.boltZ)
	if err != nil {
		return nil, fmt.Errorf("lower bolt hole: %w", err)
	}
	bracket, err = k.Difference(bracket, lower)
	if err != nil {
		return nil, fmt.Errorf("lower bolt hole: %w", err)
	}
	return bracket, nil
}

// Family returns the registrable part family.
func Family() *part.Family {
	return &part.Family{
		Name: "splinebracket",
		Variants: []part.Variant{
			{Name: "standard", Build: Default().Build},
		},
	}
}

// Package currentlimitbox generates a 3D-printable enclosure for DCC
// current-limiting components: an open-top box with an angled front tab
// carrying a BA15S taillight bulb holder (friction-fit clips and bayonet
// notches), a panel-mount slide switch cutout with M3 screw holes, and
// cylindrical mounting posts for a 5-position terminal strip.
package currentlimitbox

import (
	"fmt"
	"math"

	"github.com/spurline/railparts/pkg/kernel"
	"github.com/spurline/railparts/pkg/params"
	"github.com/spurline/railparts/pkg/part"
)

// pierce is the overshoot applied to cuts and seated features so that
// booleans never operate on coincident faces.
const pierce = 1.0

// Params is the dimension table for the enclosure. All lengths in mm,
// angles in degrees.
type Params struct {
	// Box shell.
	BoxWidth      float64 // X extent
	BoxLength     float64 // Y extent (outer)
	BoxHeight     float64 // Z extent
	WallThickness float64 // walls and floor

	// Angled tab rising from the box top edge.
	TabAngle         float64 // degrees from horizontal
	TabFaceLength    float64 // along the angled surface
	TabWallThickness float64 // normal to the face

	// Terminal strip mounting posts (2x2 grid on the floor).
	PostRadius   float64
	PostHeight   float64
	StripCenterY float64 // strip centerline from the front edge
	PostXSpacing float64 // center-to-center along X
	PostYSpacing float64 // center-to-center across the strip

	// Bulb holder on the tab face.
	BulbX            float64 // center along the tab width
	BulbHoleDiameter float64 // bulb base + clearance
	BulbNotchWidth   float64 // bayonet pin + tolerance
	BulbNotchDepth   float64 // radial extent beyond the hole edge

	// Bulb friction clips on the tab's inner face.
	ClipThickness float64
	ClipWidth     float64
	ClipDepth     float64
	ClipGap       float64 // gap between clip and hole edge

	// Slide switch on the tab face.
	SwitchX             float64
	SwitchCutoutWidth   float64
	SwitchCutoutHeight  float64
	SwitchScrewSpacing  float64
	SwitchScrewDiameter float64
}

// Default returns the as-built dimension table.
func Default() Params {
	return Params{
		BoxWidth:      80.0,
		BoxLength:     49.0,
		BoxHeight:     17.0,
		WallThickness: 2.0,

		TabAngle:         55.0,
		TabFaceLength:    35.0,
		TabWallThickness: 5.0,

		PostRadius:   1.95,
		PostHeight:   6.35,
		StripCenterY: 24.0,
		PostXSpacing: 57.0,
		PostYSpacing: 7.88,

		BulbX:            20.0,
		BulbHoleDiameter: 15.5, // 15mm base + 0.5mm clearance
		BulbNotchWidth:   3.0,  // 2mm bayonet pin + 1mm tolerance
		BulbNotchDepth:   4.0,

		ClipThickness: 2.0,
		ClipWidth:     10.0,
		ClipDepth:     12.0,
		ClipGap:       0.5,

		SwitchX:             55.0,
		SwitchCutoutWidth:   11.8,
		SwitchCutoutHeight:  6.3,
		SwitchScrewSpacing:  37.5,
		SwitchScrewDiameter: 3.2, // M3 clearance
	}
}

// Validate rejects the table before any geometry is constructed.
func (p Params) Validate() error {
	return params.All(
		params.Positive("box_width", p.BoxWidth),
		params.Positive("box_length", p.BoxLength),
		params.Positive("box_height", p.BoxHeight),
		params.Positive("wall_thickness", p.WallThickness),
		params.LessThan("wall_thickness", 2*p.WallThickness, "box_length", p.BoxLength),
		params.LessThan("wall_thickness", 2*p.WallThickness, "box_width", p.BoxWidth),
		params.LessThan("wall_thickness", p.WallThickness, "box_height", p.BoxHeight),
		// 45 degrees from horizontal keeps the overhang printable without supports.
		params.Range("tab_angle", p.TabAngle, 45, 90),
		params.Positive("tab_face_length", p.TabFaceLength),
		params.Positive("tab_wall_thickness", p.TabWallThickness),
		params.Positive("post_radius", p.PostRadius),
		params.Positive("post_height", p.PostHeight),
		params.Positive("strip_center_y", p.StripCenterY),
		params.Positive("post_x_spacing", p.PostXSpacing),
		params.Positive("post_y_spacing", p.PostYSpacing),
		params.Positive("bulb_hole_diameter", p.BulbHoleDiameter),
		params.LessThan("bulb_hole_diameter", p.BulbHoleDiameter, "tab_face_length", p.TabFaceLength),
		params.Positive("bulb_notch_width", p.BulbNotchWidth),
		params.Positive("bulb_notch_depth", p.BulbNotchDepth),
		params.Positive("clip_thickness", p.ClipThickness),
		params.Positive("clip_width", p.ClipWidth),
		params.Positive("clip_depth", p.ClipDepth),
		params.NonNegative("clip_gap", p.ClipGap),
		params.Positive("switch_cutout_width", p.SwitchCutoutWidth),
		params.Positive("switch_cutout_height", p.SwitchCutoutHeight),
		params.Positive("switch_screw_spacing", p.SwitchScrewSpacing),
		params.Positive("switch_screw_diameter", p.SwitchScrewDiameter),
	)
}

// derived holds positions computed from the independent parameters.
// Everything here is a pure function of Params so that variants stay
// consistent under table edits.
type derived struct {
	cavityWidth, cavityLength, cavityDepth float64
	floorZ                                 float64

	postX1, postX2, postYHalf float64

	faceMid    float64 // feature centerline along the tab face
	bulbRadius float64
	clipOffset float64 // clip centerline offset from the bulb center
	screwX1    float64
	screwX2    float64
}

func (p Params) derive() derived {
	return derived{
		cavityWidth:  p.BoxWidth - 2*p.WallThickness,
		cavityLength: p.BoxLength - 2*p.WallThickness,
		cavityDepth:  p.BoxHeight - p.WallThickness,
		floorZ:       p.WallThickness,

		postX1:    (p.BoxWidth - p.PostXSpacing) / 2,
		postX2:    (p.BoxWidth-p.PostXSpacing)/2 + p.PostXSpacing,
		postYHalf: p.PostYSpacing / 2,

		faceMid:    p.TabFaceLength / 2,
		bulbRadius: p.BulbHoleDiameter / 2,
		clipOffset: p.BulbHoleDiameter/2 + p.ClipGap + p.ClipThickness/2,
		screwX1:    p.SwitchX - p.SwitchScrewSpacing/2,
		screwX2:    p.SwitchX + p.SwitchScrewSpacing/2,
	}
}

// Build constructs the enclosure as a single solid named "CurrentLimitBox".
func (p Params) Build(k kernel.Kernel) ([]part.Solid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	d := p.derive()

	// Open-top shell: outer box minus cavity. The cavity overshoots the top
	// face so the opening cut pierces cleanly.
	shell, err := k.Box(p.BoxWidth, p.BoxLength, p.BoxHeight)
	if err != nil {
		return nil, fmt.Errorf("shell: %w", err)
	}
	cavity, err := part.BoxAt(k,
		d.cavityWidth, d.cavityLength, d.cavityDepth+pierce,
		p.WallThickness, p.WallThickness, d.floorZ)
	if err != nil {
		return nil, fmt.Errorf("cavity: %w", err)
	}
	body, err := k.Difference(shell, cavity)
	if err != nil {
		return nil, fmt.Errorf("cavity: %w", err)
	}

	// Angled tab with all its face features, built flat and hinged up.
	tab, err := p.buildTab(k, d)
	if err != nil {
		return nil, err
	}
	body, err = k.Union(body, tab)
	if err != nil {
		return nil, fmt.Errorf("tab: %w", err)
	}

	// 2x2 grid of terminal strip posts, seated into the floor.
	for _, px := range []float64{d.postX1, d.postX2} {
		for _, sign := range []float64{-1, 1} {
			post, err := part.CylinderZ(k,
				p.PostHeight+pierce, p.PostRadius,
				px, p.StripCenterY+sign*d.postYHalf, d.floorZ-pierce)
			if err != nil {
				return nil, fmt.Errorf("post: %w", err)
			}
			body, err = k.Union(body, post)
			if err != nil {
				return nil, fmt.Errorf("post: %w", err)
			}
		}
	}

	return []part.Solid{{Name: "CurrentLimitBox", Body: body}}, nil
}

// buildTab constructs the angled tab in a local frame where the outer face
// is the plane w=0: u runs along the box width (global X), v along the face
// toward its top edge, w along the outward face normal. Material occupies
// w in [-TabWallThickness, 0]. Rotating the finished tab by TabAngle about
// X and lifting it to the box top maps (u, v, w) onto the global frame.
func (p Params) buildTab(k kernel.Kernel, d derived) (kernel.Solid, error) {
	cut := p.TabWallThickness + 2*pierce // through-cut length

	tab, err := part.BoxAt(k,
		p.BoxWidth, p.TabFaceLength, p.TabWallThickness,
		0, 0, -p.TabWallThickness)
	if err != nil {
		return nil, fmt.Errorf("tab: %w", err)
	}

	// Friction clips protrude inward from the inner face, flanking the bulb
	// hole with the documented gap. Seated into the tab by the overshoot.
	for _, sign := range []float64{-1, 1} {
		clipX := p.BulbX + sign*d.clipOffset
		clip, err := part.BoxAt(k,
			p.ClipThickness, p.ClipWidth, p.ClipDepth+pierce,
			clipX-p.ClipThickness/2,
			d.faceMid-p.ClipWidth/2,
			-(p.TabWallThickness + p.ClipDepth))
		if err != nil {
			return nil, fmt.Errorf("bulb clip: %w", err)
		}
		tab, err = k.Union(tab, clip)
		if err != nil {
			return nil, fmt.Errorf("bulb clip: %w", err)
		}
	}

	// Bulb hole through the face, centered at the face midpoint.
	hole, err := part.CylinderZ(k, cut, d.bulbRadius,
		p.BulbX, d.faceMid, -(p.TabWallThickness + pierce))
	if err != nil {
		return nil, fmt.Errorf("bulb hole: %w", err)
	}
	tab, err = k.Difference(tab, hole)
	if err != nil {
		return nil, fmt.Errorf("bulb hole: %w", err)
	}

	// Bayonet pin notches above and below the hole.
	for _, sign := range []float64{-1, 1} {
		vc := d.faceMid + sign*(d.bulbRadius+p.BulbNotchDepth/2)
		notch, err := part.BoxAt(k,
			p.BulbNotchWidth, p.BulbNotchDepth, cut,
			p.BulbX-p.BulbNotchWidth/2,
			vc-p.BulbNotchDepth/2,
			-(p.TabWallThickness + pierce))
		if err != nil {
			return nil, fmt.Errorf("bulb notch: %w", err)
		}
		tab, err = k.Difference(tab, notch)
		if err != nil {
			return nil, fmt.Errorf("bulb notch: %w", err)
		}
	}

	// Slide switch cutout, centered on the face midline.
	sw, err := part.BoxAt(k,
		p.SwitchCutoutWidth, p.SwitchCutoutHeight, cut,
		p.SwitchX-p.SwitchCutoutWidth/2,
		d.faceMid-p.SwitchCutoutHeight/2,
		-(p.TabWallThickness + pierce))
	if err != nil {
		return nil, fmt.Errorf("switch cutout: %w", err)
	}
	tab, err = k.Difference(tab, sw)
	if err != nil {
		return nil, fmt.Errorf("switch cutout: %w", err)
	}

	// M3 screw holes flanking the switch.
	for _, sx := range []float64{d.screwX1, d.screwX2} {
		screw, err := part.CylinderZ(k, cut, p.SwitchScrewDiameter/2,
			sx, d.faceMid, -(p.TabWallThickness + pierce))
		if err != nil {
			return nil, fmt.Errorf("switch screw hole: %w", err)
		}
		tab, err = k.Difference(tab, screw)
		if err != nil {
			return nil, fmt.Errorf("switch screw hole: %w", err)
		}
	}

	// Hinge the flat tab up to the working angle and lift it to the box top.
	tab = k.Rotate(tab, p.TabAngle, 0, 0)
	tab = k.Translate(tab, 0, 0, p.BoxHeight)
	return tab, nil
}

// FaceCenter returns the global (y, z) position of the tab face midpoint,
// where the bulb and switch features are centered. Exposed for tests and
// assembly documentation.
func (p Params) FaceCenter() (y, z float64) {
	a := p.TabAngle * math.Pi / 180
	mid := p.TabFaceLength / 2
	return mid * math.Cos(a), p.BoxHeight + mid*math.Sin(a)
}

// Family returns the registrable part family.
func Family() *part.Family {
	return &part.Family{
		Name: "currentlimitbox",
		Variants: []part.Variant{
			{Name: "standard", Build: Default().Build},
		},
	}
}

// Package servomount generates L-brackets that hang a 9g turnout servo under
// the roadbed. The horizontal plate carries the servo body cutout and its
// flanking screw holes; the vertical flange screws to the module girder. The
// flange sits on one end only, so a mirrored solid is generated for mounts
// on the opposite girder face.
package servomount

import (
	"fmt"

	"github.com/spurline/railparts/pkg/kernel"
	"github.com/spurline/railparts/pkg/params"
	"github.com/spurline/railparts/pkg/part"
)

// pierce is the overshoot applied to through-cuts so booleans never operate
// on coincident faces.
const pierce = 1.0

// Params is the dimension table. Lengths in mm. The plate lies in XY at z=0
// with the flange rising at x=0.
type Params struct {
	PlateLength    float64 // X
	PlateWidth     float64 // Y
	PlateThickness float64

	ServoLength   float64 // body cutout, includes press-in clearance
	ServoWidth    float64
	EdgeMargin    float64 // cutout distance from the far plate end
	ScrewSpacing  float64 // servo flange holes, centered on the cutout
	ScrewDiameter float64

	FlangeHeight   float64 // Z
	MountDiameter  float64 // girder screws, through the flange along X
	MountHoleZ     float64
	MountHoleInset float64 // each hole from the nearest plate edge
}

// Default returns the as-built table for an SG90-class servo.
func Default() Params {
	return Params{
		PlateLength:    45.0,
		PlateWidth:     20.0,
		PlateThickness: 3.0,

		ServoLength:   23.2, // 23.0 body + 0.2 clearance
		ServoWidth:    12.6, // 12.3 body + 0.3 clearance
		EdgeMargin:    4.0,
		ScrewSpacing:  27.5,
		ScrewDiameter: 2.2,

		FlangeHeight:   18.0,
		MountDiameter:  3.2,
		MountHoleZ:     12.0,
		MountHoleInset: 5.0,
	}
}

// Validate rejects the table before any geometry is constructed.
func (p Params) Validate() error {
	return params.All(
		params.Positive("plate_length", p.PlateLength),
		params.Positive("plate_width", p.PlateWidth),
		params.Positive("plate_thickness", p.PlateThickness),
		params.Positive("servo_length", p.ServoLength),
		params.LessThan("servo_length", p.ServoLength, "plate_length", p.PlateLength),
		params.Positive("servo_width", p.ServoWidth),
		params.LessThan("servo_width", p.ServoWidth, "plate_width", p.PlateWidth),
		params.Positive("edge_margin", p.EdgeMargin),
		// The flange screws sit outside the body cutout.
		params.LessThan("servo_length", p.ServoLength, "screw_spacing", p.ScrewSpacing),
		params.Positive("screw_diameter", p.ScrewDiameter),
		params.Positive("flange_height", p.FlangeHeight),
		params.LessThan("plate_thickness", p.PlateThickness, "flange_height", p.FlangeHeight),
		params.Positive("mount_diameter", p.MountDiameter),
		params.Range("mount_hole_z", p.MountHoleZ, p.PlateThickness+p.MountDiameter/2, p.FlangeHeight-p.MountDiameter/2),
		params.Positive("mount_hole_inset", p.MountHoleInset),
		params.LessThan("mount_hole_inset", 2*p.MountHoleInset, "plate_width", p.PlateWidth),
	)
}

// cutoutCenterX is the servo cutout centerline derived from the far margin.
func (p Params) cutoutCenterX() float64 {
	return p.PlateLength - p.EdgeMargin - p.ServoLength/2
}

// build constructs the mount; mirrored reflects it for the opposite face.
func (p Params) build(k kernel.Kernel, name string, mirrored bool) ([]part.Solid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	centerX := p.cutoutCenterX()

	plate, err := k.Box(p.PlateLength, p.PlateWidth, p.PlateThickness)
	if err != nil {
		return nil, err
	}

	flange, err := part.BoxAt(k,
		p.PlateThickness, p.PlateWidth, p.FlangeHeight,
		0, 0, 0)
	if err != nil {
		return nil, err
	}
	mount, err := k.Union(plate, flange)
	if err != nil {
		return nil, fmt.Errorf("flange: %w", err)
	}

	// Servo body drops through the plate.
	cutout, err := part.BoxAt(k,
		p.ServoLength, p.ServoWidth, p.PlateThickness+2*pierce,
		centerX-p.ServoLength/2, p.PlateWidth/2-p.ServoWidth/2, -pierce)
	if err != nil {
		return nil, err
	}
	mount, err = k.Difference(mount, cutout)
	if err != nil {
		return nil, fmt.Errorf("servo cutout: %w", err)
	}

	// Flanking servo screw holes.
	for _, x := range []float64{centerX - p.ScrewSpacing/2, centerX + p.ScrewSpacing/2} {
		hole, err := part.CylinderZ(k,
			p.PlateThickness+2*pierce, p.ScrewDiameter/2,
			x, p.PlateWidth/2, -pierce)
		if err != nil {
			return nil, err
		}
		mount, err = k.Difference(mount, hole)
		if err != nil {
			return nil, fmt.Errorf("servo screw hole: %w", err)
		}
	}

	// Girder mounting holes through the flange.
	for _, y := range []float64{p.MountHoleInset, p.PlateWidth - p.MountHoleInset} {
		hole, err := part.CylinderX(k,
			p.PlateThickness+2*pierce, p.MountDiameter/2,
			-pierce, y, p.MountHoleZ)
		if err != nil {
			return nil, err
		}
		mount, err = k.Difference(mount, hole)
		if err != nil {
			return nil, fmt.Errorf("mount hole: %w", err)
		}
	}

	if mirrored {
		mount = k.Mirror(mount, kernel.PlaneYZ)
	}
	return []part.Solid{{Name: name, Body: mount}}, nil
}

// Family returns the registrable part family.
func Family() *part.Family {
	return &part.Family{
		Name: "servomount",
		Variants: []part.Variant{
			{Name: "right", Build: func(k kernel.Kernel) ([]part.Solid, error) {
				return Default().build(k, "ServoMount", false)
			}},
			{Name: "left", Build: func(k kernel.Kernel) ([]part.Solid, error) {
				return Default().build(k, "ServoMount_Flipped", true)
			}},
		},
	}
}

// Package electricbox generates a family of under-table terminal enclosures.
// One dimension table covers every variant; the slot count scales the box
// length and places one terminal post pair per slot. End walls get a wire
// slot so the loom drops in from above after the lid screws down.
package electricbox

import (
	"fmt"

	"github.com/spurline/railparts/pkg/kernel"
	"github.com/spurline/railparts/pkg/params"
	"github.com/spurline/railparts/pkg/part"
)

// pierce is the overshoot applied to through-cuts so booleans never operate
// on coincident faces.
const pierce = 1.0

// Params is the dimension table. Lengths in mm. The box sits with its
// bottom-left-front corner at the origin, length along X.
type Params struct {
	Slots     int     // terminal post pairs, one per slot
	SlotPitch float64 // X spacing between adjacent pairs
	EndMargin float64 // X from each end wall to the nearest pair

	BoxWidth  float64 // Y
	BoxHeight float64 // Z
	Wall      float64

	PostRadius   float64 // M2.5 self-tap posts
	PostHeight   float64
	PostYSpacing float64 // between the two posts of a pair

	WireSlotWidth float64 // Y extent of the end wall cutout
	WireSlotDepth float64 // cut down from the top edge
}

// Default returns the shared table; the slot count is set per variant.
func Default() Params {
	return Params{
		Slots:     2,
		SlotPitch: 14.0,
		EndMargin: 10.0,

		BoxWidth:  30.0,
		BoxHeight: 15.0,
		Wall:      2.0,

		PostRadius:   1.95,
		PostHeight:   6.35,
		PostYSpacing: 7.88,

		WireSlotWidth: 6.0,
		WireSlotDepth: 5.0,
	}
}

// WithSlots returns a copy of the table for the given slot count.
func (p Params) WithSlots(n int) Params {
	p.Slots = n
	return p
}

// Validate rejects the table before any geometry is constructed.
func (p Params) Validate() error {
	if p.Slots < 1 {
		return &params.InvalidDimensionError{
			Name: "slots", Value: float64(p.Slots), Constraint: "must be at least 1",
		}
	}
	return params.All(
		params.Positive("slot_pitch", p.SlotPitch),
		params.Positive("end_margin", p.EndMargin),
		params.Positive("box_width", p.BoxWidth),
		params.Positive("box_height", p.BoxHeight),
		params.Positive("wall", p.Wall),
		params.LessThan("wall", 2*p.Wall, "box_width", p.BoxWidth),
		params.LessThan("wall", p.Wall, "box_height", p.BoxHeight),
		params.Positive("post_radius", p.PostRadius),
		params.Positive("post_height", p.PostHeight),
		params.LessThan("post_height", p.PostHeight, "box_height", p.BoxHeight),
		params.Positive("post_y_spacing", p.PostYSpacing),
		params.LessThan("post_y_spacing", p.PostYSpacing+2*p.PostRadius, "box_width", p.BoxWidth-2*p.Wall),
		params.Positive("wire_slot_width", p.WireSlotWidth),
		params.LessThan("wire_slot_width", p.WireSlotWidth, "box_width", p.BoxWidth),
		params.Positive("wire_slot_depth", p.WireSlotDepth),
		params.LessThan("wire_slot_depth", p.WireSlotDepth, "box_height", p.BoxHeight),
	)
}

// BoxLength is the outer X extent derived from the slot count.
func (p Params) BoxLength() float64 {
	return 2*p.EndMargin + float64(p.Slots-1)*p.SlotPitch
}

// Build constructs the enclosure solid.
func (p Params) Build(k kernel.Kernel) ([]part.Solid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	length := p.BoxLength()

	box, err := k.Box(length, p.BoxWidth, p.BoxHeight)
	if err != nil {
		return nil, err
	}

	// Open-top cavity, overshooting the top face.
	cavity, err := part.BoxAt(k,
		length-2*p.Wall, p.BoxWidth-2*p.Wall, p.BoxHeight-p.Wall+pierce,
		p.Wall, p.Wall, p.Wall)
	if err != nil {
		return nil, err
	}
	box, err = k.Difference(box, cavity)
	if err != nil {
		return nil, fmt.Errorf("cavity: %w", err)
	}

	// One post pair per slot, seated into the floor.
	for i := 0; i < p.Slots; i++ {
		x := p.EndMargin + float64(i)*p.SlotPitch
		for _, y := range []float64{
			p.BoxWidth/2 - p.PostYSpacing/2,
			p.BoxWidth/2 + p.PostYSpacing/2,
		} {
			post, err := part.CylinderZ(k,
				p.PostHeight+pierce, p.PostRadius,
				x, y, p.Wall-pierce)
			if err != nil {
				return nil, fmt.Errorf("post %d: %w", i, err)
			}
			box, err = k.Union(box, post)
			if err != nil {
				return nil, fmt.Errorf("post %d: %w", i, err)
			}
		}
	}

	// Wire slots through both end walls, open to the top.
	for _, x0 := range []float64{-pierce, length - p.Wall - pierce} {
		slot, err := part.BoxAt(k,
			p.Wall+2*pierce, p.WireSlotWidth, p.WireSlotDepth+pierce,
			x0, p.BoxWidth/2-p.WireSlotWidth/2, p.BoxHeight-p.WireSlotDepth)
		if err != nil {
			return nil, err
		}
		box, err = k.Difference(box, slot)
		if err != nil {
			return nil, fmt.Errorf("wire slot: %w", err)
		}
	}

	return []part.Solid{
		{Name: fmt.Sprintf("ElectricBox%d", p.Slots), Body: box},
	}, nil
}

// Family returns the registrable part family, one variant per slot count.
func Family() *part.Family {
	f := &part.Family{Name: "electricbox"}
	for _, n := range []int{2, 4, 6, 8} {
		f.Variants = append(f.Variants, part.Variant{
			Name:  fmt.Sprintf("%dslot", n),
			Build: Default().WithSlots(n).Build,
		})
	}
	return f
}

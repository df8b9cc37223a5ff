package part

import "github.com/spurline/railparts/pkg/kernel"

// Placement helpers shared by the part families. The kernel's primitives are
// origin-anchored and Z-oriented; the tables in the part families describe
// features by base position and axis, so these helpers do the rotation and
// translation bookkeeping in one place.

// BoxAt creates a box of size (dx, dy, dz) with its minimum corner at
// (x, y, z).
func BoxAt(k kernel.Kernel, dx, dy, dz, x, y, z float64) (kernel.Solid, error) {
	b, err := k.Box(dx, dy, dz)
	if err != nil {
		return nil, err
	}
	return k.Translate(b, x, y, z), nil
}

// CylinderZ creates a cylinder along +Z with its base center at (x, y, z).
func CylinderZ(k kernel.Kernel, height, radius, x, y, z float64) (kernel.Solid, error) {
	c, err := k.Cylinder(height, radius)
	if err != nil {
		return nil, err
	}
	return k.Translate(c, x, y, z), nil
}

// CylinderY creates a cylinder along +Y with its base center at (x, y, z).
func CylinderY(k kernel.Kernel, height, radius, x, y, z float64) (kernel.Solid, error) {
	c, err := k.Cylinder(height, radius)
	if err != nil {
		return nil, err
	}
	// Map the +Z cylinder axis onto +Y.
	c = k.Rotate(c, -90, 0, 0)
	return k.Translate(c, x, y, z), nil
}

// CylinderX creates a cylinder along +X with its base center at (x, y, z).
func CylinderX(k kernel.Kernel, height, radius, x, y, z float64) (kernel.Solid, error) {
	c, err := k.Cylinder(height, radius)
	if err != nil {
		return nil, err
	}
	// Map the +Z cylinder axis onto +X.
	c = k.Rotate(c, 0, 90, 0)
	return k.Translate(c, x, y, z), nil
}

// ExtrudeX extrudes a closed profile along +X for the given length, starting
// at x = x0. Profile points are (y, z) pairs, counter-clockwise.
func ExtrudeX(k kernel.Kernel, profile [][2]float64, length, x0 float64) (kernel.Solid, error) {
	s, err := k.Extrude(profile, length)
	if err != nil {
		return nil, err
	}
	// Cycle the axes: profile-x onto Y, profile-y onto Z, extrusion onto X.
	s = k.Rotate(s, 90, 0, 90)
	return k.Translate(s, x0, 0, 0), nil
}

// ExtrudeZ extrudes a closed profile along +Z for the given length, starting
// at z = z0. Profile points are (x, y) pairs, counter-clockwise.
func ExtrudeZ(k kernel.Kernel, profile [][2]float64, length, z0 float64) (kernel.Solid, error) {
	s, err := k.Extrude(profile, length)
	if err != nil {
		return nil, err
	}
	return k.Translate(s, 0, 0, z0), nil
}

// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx) provide solid modeling and boolean operations
// behind this interface. The kernel abstraction allows swapping backends
// without changing the part families built on top of it.
package kernel

// Plane names a mirror plane through the origin.
type Plane int

const (
	PlaneXY Plane = iota // z -> -z
	PlaneXZ              // y -> -y
	PlaneYZ              // x -> -x
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	default:
		return "unknown"
	}
}

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface. Construction and
// combination methods return an error instead of a solid when the inputs
// cannot form a valid printable body; a build is all-or-nothing, so callers
// abort on the first error.
type Kernel interface {
	// Primitives. Box has its minimum corner at the origin; Cylinder runs
	// along +Z with its base center at the origin; Extrude sweeps a closed
	// 2D profile from z=0 to z=height.
	Box(x, y, z float64) (Solid, error)
	Cylinder(height, radius float64) (Solid, error)
	Extrude(profile [][2]float64, height float64) (Solid, error)

	// Boolean operations. Union requires overlapping operands (a fused part
	// must be one connected body); Difference requires the feature to
	// actually intersect the base and to leave material behind.
	Union(a, b Solid) (Solid, error)
	UnionSmooth(a, b Solid, radius float64) (Solid, error)
	Difference(a, b Solid) (Solid, error)

	// Transforms.
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees
	Mirror(s Solid, p Plane) Solid

	// Mesh output.
	ToMesh(s Solid) (*Mesh, error)
	ExportSTL(s Solid, path string, cells int) error
	Export3MF(s Solid, path string, cells int) error
}

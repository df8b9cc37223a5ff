// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"
	"math"
	"os"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/spurline/railparts/pkg/kernel"
	"github.com/spurline/railparts/pkg/params"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// defaultMeshCells controls marching cubes tessellation resolution
// for ToMesh. File exports take an explicit cell count.
const defaultMeshCells = 200

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// Kernel implements kernel.Kernel using sdfx.
type Kernel struct{}

// New returns a new sdfx-backed Kernel.
func New() *Kernel {
	return &Kernel{}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

// Box creates a box with the given dimensions. The resulting solid has its
// minimum corner at the origin (0,0,0) so that placement translations work
// the way the part tables are written — a feature "at x=10" is 10mm from the
// part's corner. sdf.Box3D centers the box at the origin, so we translate by
// half-dimensions.
func (k *Kernel) Box(x, y, z float64) (kernel.Solid, error) {
	if err := params.All(
		params.Positive("x", x),
		params.Positive("y", y),
		params.Positive("z", z),
	); err != nil {
		return nil, err
	}
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Box3D: %w", err)
	}
	// Shift from center-origin to min-corner-origin.
	m := sdf.Translate3d(v3.Vec{X: x / 2, Y: y / 2, Z: z / 2})
	return wrap(sdf.Transform3D(s, m)), nil
}

// Cylinder creates a cylinder along +Z with its base center at the origin.
func (k *Kernel) Cylinder(height, radius float64) (kernel.Solid, error) {
	if err := params.All(
		params.Positive("height", height),
		params.Positive("radius", radius),
	); err != nil {
		return nil, err
	}
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Cylinder3D: %w", err)
	}
	// Shift from center-origin to base-at-origin.
	m := sdf.Translate3d(v3.Vec{Z: height / 2})
	return wrap(sdf.Transform3D(s, m)), nil
}

// Extrude sweeps a closed 2D profile from z=0 to z=height. The profile is
// given as ordered (x, y) points, counter-clockwise, without repeating the
// first point.
func (k *Kernel) Extrude(profile [][2]float64, height float64) (kernel.Solid, error) {
	if len(profile) < 3 {
		return nil, &params.InvalidDimensionError{
			Name:       "profile",
			Value:      float64(len(profile)),
			Constraint: "polygon needs at least 3 points",
		}
	}
	if err := params.Positive("height", height); err != nil {
		return nil, err
	}
	pts := make([]v2.Vec, len(profile))
	for i, p := range profile {
		pts[i] = v2.Vec{X: p[0], Y: p[1]}
	}
	poly, err := sdf.Polygon2D(pts)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Polygon2D: %w", err)
	}
	s := sdf.Extrude3D(poly, height)
	// Extrude3D is symmetric about z=0; shift to 0..height.
	m := sdf.Translate3d(v3.Vec{Z: height / 2})
	return wrap(sdf.Transform3D(s, m)), nil
}

// overlaps reports whether two bounding boxes intersect.
func overlaps(a, b sdf.SDF3) bool {
	ba, bb := a.BoundingBox(), b.BoundingBox()
	return ba.Min.X <= bb.Max.X && bb.Min.X <= ba.Max.X &&
		ba.Min.Y <= bb.Max.Y && bb.Min.Y <= ba.Max.Y &&
		ba.Min.Z <= bb.Max.Z && bb.Min.Z <= ba.Max.Z
}

// describe renders a solid's bounding box for error messages.
func describe(s sdf.SDF3) string {
	bb := s.BoundingBox()
	return fmt.Sprintf("solid[(%.3g,%.3g,%.3g)..(%.3g,%.3g,%.3g)]",
		bb.Min.X, bb.Min.Y, bb.Min.Z, bb.Max.X, bb.Max.Y, bb.Max.Z)
}

// Union returns the union of two solids. Disjoint operands are rejected:
// a fused part must be a single connected printable body.
func (k *Kernel) Union(a, b kernel.Solid) (kernel.Solid, error) {
	ua, ub := unwrap(a), unwrap(b)
	if !overlaps(ua, ub) {
		return nil, &kernel.GeometryError{
			Op:     "union",
			Base:   describe(ua),
			Tool:   describe(ub),
			Reason: "operands are disjoint; the fused result would not be one body",
		}
	}
	return wrap(sdf.Union3D(ua, ub)), nil
}

// UnionSmooth returns the union of two solids with polynomial blending of
// the junction, the SDF counterpart of an inside-corner fillet.
func (k *Kernel) UnionSmooth(a, b kernel.Solid, radius float64) (kernel.Solid, error) {
	if err := params.Positive("blend_radius", radius); err != nil {
		return nil, err
	}
	ua, ub := unwrap(a), unwrap(b)
	if !overlaps(ua, ub) {
		return nil, &kernel.GeometryError{
			Op:     "union",
			Base:   describe(ua),
			Tool:   describe(ub),
			Reason: "operands are disjoint; the fused result would not be one body",
		}
	}
	u := sdf.Union3D(ua, ub)
	if blend, ok := u.(*sdf.UnionSDF3); ok {
		blend.SetMin(sdf.PolyMin(radius))
	}
	return wrap(u), nil
}

// Difference returns the difference a - b. The feature must intersect the
// base, and must not swallow it entirely.
func (k *Kernel) Difference(a, b kernel.Solid) (kernel.Solid, error) {
	ua, ub := unwrap(a), unwrap(b)
	if !overlaps(ua, ub) {
		return nil, &kernel.GeometryError{
			Op:     "difference",
			Base:   describe(ua),
			Tool:   describe(ub),
			Reason: "feature lies entirely outside the base",
		}
	}
	if engulfs(ub, ua) {
		return nil, &kernel.GeometryError{
			Op:     "difference",
			Base:   describe(ua),
			Tool:   describe(ub),
			Reason: "feature swallows the base; the result would be empty",
		}
	}
	return wrap(sdf.Difference3D(ua, ub)), nil
}

// engulfs reports whether the tool contains the base's entire bounding box.
// It evaluates the tool's distance field at the box corners, face centers
// and center; for the convex cutting features the part families use (boxes,
// cylinders, convex profiles) corner containment is exact.
func engulfs(tool, base sdf.SDF3) bool {
	bb := base.BoundingBox()
	lo, hi := bb.Min, bb.Max
	mid := v3.Vec{X: (lo.X + hi.X) / 2, Y: (lo.Y + hi.Y) / 2, Z: (lo.Z + hi.Z) / 2}
	samples := []v3.Vec{
		{X: lo.X, Y: lo.Y, Z: lo.Z}, {X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z}, {X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z}, {X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z}, {X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: mid.Y, Z: mid.Z}, {X: hi.X, Y: mid.Y, Z: mid.Z},
		{X: mid.X, Y: lo.Y, Z: mid.Z}, {X: mid.X, Y: hi.Y, Z: mid.Z},
		{X: mid.X, Y: mid.Y, Z: lo.Z}, {X: mid.X, Y: mid.Y, Z: hi.Z},
		mid,
	}
	for _, p := range samples {
		if tool.Evaluate(p) > 0 {
			return false
		}
	}
	return true
}

// Translate moves a solid by (x, y, z).
func (k *Kernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// Rotate rotates a solid by Euler angles (degrees) around X, Y, Z axes.
func (k *Kernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	xRad := x * math.Pi / 180.0
	yRad := y * math.Pi / 180.0
	zRad := z * math.Pi / 180.0

	m := sdf.RotateZ(zRad).Mul(sdf.RotateY(yRad)).Mul(sdf.RotateX(xRad))
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// Mirror reflects a solid across the given plane through the origin.
func (k *Kernel) Mirror(s kernel.Solid, p kernel.Plane) kernel.Solid {
	var m sdf.M44
	switch p {
	case kernel.PlaneXY:
		m = sdf.MirrorXY()
	case kernel.PlaneXZ:
		m = sdf.MirrorXZ()
	case kernel.PlaneYZ:
		m = sdf.MirrorYZ()
	default:
		panic(fmt.Sprintf("sdfx: unknown mirror plane %v", p))
	}
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *Kernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	sdf3 := unwrap(s)

	renderer := render.NewMarchingCubesUniform(defaultMeshCells)
	triangles := render.ToTriangles(sdf3, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		// Compute face normal.
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}

// ExportSTL writes a solid to an STL file using octree marching cubes.
func (k *Kernel) ExportSTL(s kernel.Solid, path string, cells int) error {
	if cells <= 0 {
		cells = defaultMeshCells
	}
	render.ToSTL(unwrap(s), path, render.NewMarchingCubesOctree(cells))
	return statExport("stl", path)
}

// Export3MF writes a solid to a 3MF archive using octree marching cubes.
func (k *Kernel) Export3MF(s kernel.Solid, path string, cells int) error {
	if cells <= 0 {
		cells = defaultMeshCells
	}
	render.To3MF(unwrap(s), path, render.NewMarchingCubesOctree(cells))
	return statExport("3mf", path)
}

// statExport checks that the renderer actually produced the output file.
// The sdfx render writers log failures instead of returning them.
func statExport(format, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s export did not produce %s: %w", format, path, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%s export produced empty file %s", format, path)
	}
	return nil
}

// Package part defines the unit of generation: named solid bodies grouped
// into part families, and a registry of every family the module can build.
package part

import (
	"fmt"

	"github.com/spurline/railparts/pkg/kernel"
)

// Solid is a finished, uniquely named body ready for mesh export.
type Solid struct {
	Name string
	Body kernel.Solid
}

// BuildFunc constructs the solids of one variant against a geometry kernel.
// A build is all-or-nothing: on error no solids are returned.
type BuildFunc func(k kernel.Kernel) ([]Solid, error)

// Variant is one parameter substitution of a family: a slot count, an
// extended body, a mirrored tab.
type Variant struct {
	Name  string
	Build BuildFunc
}

// Family groups the variants produced from one parameter table shape.
type Family struct {
	Name     string
	Variants []Variant
}

// BuildAll runs every variant of the family and returns the combined solids.
// Solid names are checked for uniqueness across the whole family; duplicate
// names would silently overwrite each other's export files.
func (f *Family) BuildAll(k kernel.Kernel) ([]Solid, error) {
	var out []Solid
	seen := make(map[string]string) // solid name -> variant name
	for _, v := range f.Variants {
		solids, err := v.Build(k)
		if err != nil {
			return nil, fmt.Errorf("build %s/%s: %w", f.Name, v.Name, err)
		}
		for _, s := range solids {
			if prev, dup := seen[s.Name]; dup {
				return nil, fmt.Errorf("build %s/%s: solid name %q already produced by variant %s",
					f.Name, v.Name, s.Name, prev)
			}
			seen[s.Name] = v.Name
		}
		out = append(out, solids...)
	}
	return out, nil
}

package kernel

import "fmt"

// GeometryError reports a boolean combination that produced a degenerate
// result: a subtraction whose feature misses the base entirely, a cut that
// removes all material, or a union of disjoint bodies. The Op and operand
// names identify which combination step failed so the parameter table can
// be corrected.
type GeometryError struct {
	Op     string // "union", "difference"
	Base   string // description of the first operand
	Tool   string // description of the second operand
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry error: %s of %s and %s: %s", e.Op, e.Base, e.Tool, e.Reason)
}

// Package params validates the numeric dimension tables that drive part
// generation. Every check runs before any geometry is constructed; a part
// build never starts with an invalid table.
package params

import (
	"fmt"
	"math"
)

// InvalidDimensionError reports a parameter that violates a positivity or
// range constraint. The Name is the symbolic parameter name from the part
// family's table, not a Go field name.
type InvalidDimensionError struct {
	Name       string  // symbolic parameter name, e.g. "wall_thickness"
	Value      float64 // the offending value
	Constraint string  // human-readable constraint, e.g. "must be positive"
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("invalid dimension %s = %g: %s", e.Name, e.Value, e.Constraint)
}

// finite rejects NaN and infinities, which would otherwise slip through
// ordered comparisons.
func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidDimensionError{Name: name, Value: v, Constraint: "must be finite"}
	}
	return nil
}

// Positive returns an error unless v > 0.
func Positive(name string, v float64) error {
	if err := finite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return &InvalidDimensionError{Name: name, Value: v, Constraint: "must be positive"}
	}
	return nil
}

// NonNegative returns an error unless v >= 0.
func NonNegative(name string, v float64) error {
	if err := finite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return &InvalidDimensionError{Name: name, Value: v, Constraint: "must not be negative"}
	}
	return nil
}

// Range returns an error unless lo <= v <= hi.
func Range(name string, v, lo, hi float64) error {
	if err := finite(name, v); err != nil {
		return err
	}
	if v < lo || v > hi {
		return &InvalidDimensionError{
			Name:       name,
			Value:      v,
			Constraint: fmt.Sprintf("must be within [%g, %g]", lo, hi),
		}
	}
	return nil
}

// LessThan returns an error unless v < limit. Used for relational
// constraints such as "hole diameter less than the material it pierces".
func LessThan(name string, v float64, limitName string, limit float64) error {
	if err := finite(name, v); err != nil {
		return err
	}
	if v >= limit {
		return &InvalidDimensionError{
			Name:       name,
			Value:      v,
			Constraint: fmt.Sprintf("must be less than %s (%g)", limitName, limit),
		}
	}
	return nil
}

// All runs the given checks in order and returns the first failure.
// Part families list their whole table in one All call so the first
// offending parameter is the one reported.
func All(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

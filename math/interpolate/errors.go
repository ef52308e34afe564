package interpolate

import (
	"fmt"
)

// A DomainError reports a parameter axis that cannot support a cubic
// spline fit: too few samples or not strictly increasing.
type DomainError struct {
	Axis   string // name of the offending axis
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("interpolate: %s axis %s", e.Axis, e.Reason)
}

// A ShapeError reports a sample array whose dimensions disagree with the
// parameter axes it is fitted over.
type ShapeError struct {
	Name      string // name of the offending sample array
	Got, Want string // formatted dimensions, e.g. "(100, 50)"
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf(
		"interpolate: %s has shape %s, want %s", e.Name, e.Got, e.Want,
	)
}

// A SampleError reports a non-finite value in a sample table. A spline
// fitted through a NaN or Inf sample would silently evaluate to NaN
// everywhere, so constructors reject such tables instead.
type SampleError struct {
	Name  string // name of the offending sample array
	Index string // formatted position, e.g. "(3, 7)"
	Value float64
}

func (e *SampleError) Error() string {
	return fmt.Sprintf(
		"interpolate: %s has non-finite sample %g at %s",
		e.Name, e.Value, e.Index,
	)
}

// CheckAxis verifies that xs can serve as a parameter axis for a cubic
// spline fit: at least four samples, strictly increasing. It returns a
// *DomainError describing the first violation found, or nil.
func CheckAxis(name string, xs []float64) error {
	if len(xs) < 4 {
		return &DomainError{
			name, fmt.Sprintf("has %d samples, but a cubic fit needs "+
				"at least 4", len(xs)),
		}
	}
	for i := 0; i < len(xs)-1; i++ {
		if xs[i+1] <= xs[i] {
			return &DomainError{
				name, fmt.Sprintf("is not strictly increasing at index %d "+
					"(%g followed by %g)", i, xs[i], xs[i+1]),
			}
		}
	}
	return nil
}

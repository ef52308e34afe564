/*Package curve represents smooth planar curves parameterized by t and
fitted to sampled (x, y) coordinates.

A Curve is built from two cubic spline interpolants sharing a single t
axis. All queries are pure functions of the query point and the immutable
fitted state, so a Curve may be queried concurrently.

Queries outside the fitted t range extrapolate the boundary spline pieces
instead of failing.
*/
package curve

import (
	"errors"
	"fmt"
	"math"

	"github.com/chunglabmit/pmetsurf/math/interpolate"
)

// DegenerateTol is the smallest tangent magnitude treated as
// non-degenerate. Below it the normal direction and the curvature are
// numerically undefined.
const DegenerateTol = 1e-9

// ErrDegenerate is returned by queries at parameter points where the
// tangent vector vanishes. Batch queries report such points as NaN
// instead of failing.
var ErrDegenerate = errors.New("curve: degenerate point: tangent vanishes")

// Curve is a smooth planar parametric curve C(t) = (x, y). It is
// immutable once constructed.
type Curve struct {
	t0, t1 float64
	x, y   *interpolate.Spline
}

// New fits a Curve through the samples (x[i], y[i]) taken at t[i]. t must
// be strictly increasing with at least four samples (violations are
// reported as a *interpolate.DomainError), x and y must have the same
// length as t (violations are reported as a *interpolate.ShapeError), and
// every sample must be finite (violations are reported as a
// *interpolate.SampleError).
func New(t, x, y []float64) (*Curve, error) {
	if err := interpolate.CheckAxis("t", t); err != nil {
		return nil, err
	}
	for _, ch := range []struct {
		name string
		vals []float64
	}{{"x", x}, {"y", y}} {
		if len(ch.vals) != len(t) {
			return nil, &interpolate.ShapeError{
				Name: ch.name,
				Got:  fmt.Sprintf("(%d)", len(ch.vals)),
				Want: fmt.Sprintf("(%d)", len(t)),
			}
		}
		for i, val := range ch.vals {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return nil, &interpolate.SampleError{
					Name:  ch.name,
					Index: fmt.Sprintf("(%d)", i),
					Value: val,
				}
			}
		}
	}

	return &Curve{
		t0: t[0], t1: t[len(t)-1],
		x: interpolate.NewSpline(t, x),
		y: interpolate.NewSpline(t, y),
	}, nil
}

// Domain returns the fitted parameter range. Queries outside it
// extrapolate rather than fail.
func (c *Curve) Domain() (tMin, tMax float64) {
	return c.t0, c.t1
}

// At returns the curve point at t.
func (c *Curve) At(t float64) (x, y float64) {
	return c.x.Eval(t), c.y.Eval(t)
}

// Tangent returns the derivative vector dC/dt at t.
func (c *Curve) Tangent(t float64) (dx, dy float64) {
	return c.x.Deriv(t, 1), c.y.Deriv(t, 1)
}

// Normal returns the unit normal at t, the tangent direction rotated a
// quarter turn counterclockwise. For a clockwise-traversed circle such as
// (sin t, cos t) it points outward. Normal returns ErrDegenerate where
// the tangent is smaller than DegenerateTol.
func (c *Curve) Normal(t float64) (nx, ny float64, err error) {
	dx, dy := c.Tangent(t)
	speed2 := dx*dx + dy*dy
	// The negated comparison also catches NaN.
	if !(speed2 > DegenerateTol*DegenerateTol) {
		return 0, 0, ErrDegenerate
	}
	speed := math.Sqrt(speed2)
	return -dy / speed, dx / speed, nil
}

// Curvature returns the signed curvature at t. It is positive where the
// curve bends away from its normal, so the clockwise circle
// (R sin t, R cos t) has curvature 1/R everywhere. Curvature returns
// ErrDegenerate where the tangent vanishes.
func (c *Curve) Curvature(t float64) (float64, error) {
	dx, dy := c.Tangent(t)
	speed2 := dx*dx + dy*dy
	if !(speed2 > DegenerateTol*DegenerateTol) {
		return math.NaN(), ErrDegenerate
	}
	ddx, ddy := c.x.Deriv(t, 2), c.y.Deriv(t, 2)
	return (dy*ddx - dx*ddy) / (speed2 * math.Sqrt(speed2)), nil
}

// AtAll returns the curve point at each ts[i]. If an output array is
// given, the output is written to that array (the array is still returned
// as a convenience).
//
// If more than one output array is provided, only the first is used.
func (c *Curve) AtAll(ts []float64, out ...[][2]float64) [][2]float64 {
	if len(out) == 0 {
		out = [][][2]float64{make([][2]float64, len(ts))}
	}
	for i, t := range ts {
		x, y := c.At(t)
		out[0][i] = [2]float64{x, y}
	}
	return out[0]
}

// NormalAll returns the unit normal at each ts[i], with the same output
// conventions as AtAll. Degenerate points come back as NaN pairs.
func (c *Curve) NormalAll(ts []float64, out ...[][2]float64) [][2]float64 {
	if len(out) == 0 {
		out = [][][2]float64{make([][2]float64, len(ts))}
	}
	for i, t := range ts {
		nx, ny, err := c.Normal(t)
		if err != nil {
			nx, ny = math.NaN(), math.NaN()
		}
		out[0][i] = [2]float64{nx, ny}
	}
	return out[0]
}

// CurvatureAll returns the signed curvature at each ts[i], with the same
// output conventions as AtAll. Degenerate points come back as NaN.
func (c *Curve) CurvatureAll(ts []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(ts))}
	}
	for i, t := range ts {
		k, err := c.Curvature(t)
		if err != nil {
			k = math.NaN()
		}
		out[0][i] = k
	}
	return out[0]
}

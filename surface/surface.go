/*Package surface represents smooth 3D surfaces parameterized by (u, v) and
fitted to rectangular grids of sampled coordinates.

A Surface is built from three bicubic interpolants, one per spatial
coordinate, sharing a single (u, v) grid. Every geometric query (position,
tangents, normal, fundamental forms, curvature) is a pure function of the
query point and the immutable fitted state, so a Surface may be queried
from multiple goroutines concurrently without locking.

Curvature, normals and the fundamental forms are implementations of the
equations in
http://web.mit.edu/hyperbook/Patrikalakis-Maekawa-Cho/node30.html and
https://en.wikipedia.org/wiki/Parametric_surface.

Queries outside the fitted (u, v) rectangle extrapolate the boundary
patches instead of failing. Callers that want strict containment should
check query points against Domain first.
*/
package surface

import (
	"fmt"
	"math"

	"github.com/chunglabmit/pmetsurf/geom"
	"github.com/chunglabmit/pmetsurf/math/interpolate"
)

// Surface is a smooth parametric surface S(u, v) = (x, y, z). It is
// immutable once constructed.
type Surface struct {
	x, y, z        *interpolate.RectBivariate
	u0, u1, v0, v1 float64
}

// New fits a Surface through sample grids x, y and z, where x[i][j] is the
// X coordinate of the surface at (u[i], v[j]) and likewise for y and z.
//
// u and v must be strictly increasing with at least four samples each
// (violations are reported as a *interpolate.DomainError), each sample
// grid must have shape (len(u), len(v)) (violations are reported as a
// *interpolate.ShapeError), and every sample must be finite: a single NaN
// or Inf node would poison the fitted coordinate channel, so it is
// rejected as a *interpolate.SampleError instead.
func New(u, v []float64, x, y, z [][]float64) (*Surface, error) {
	channels := []struct {
		name string
		vals [][]float64
	}{{"x", x}, {"y", y}, {"z", z}}

	for _, ch := range channels {
		if err := checkShape(ch.name, u, v, ch.vals); err != nil {
			return nil, err
		}
	}

	sx, err := interpolate.NewRectBivariate(u, v, x)
	if err != nil {
		return nil, err
	}
	sy, err := interpolate.NewRectBivariate(u, v, y)
	if err != nil {
		return nil, err
	}
	sz, err := interpolate.NewRectBivariate(u, v, z)
	if err != nil {
		return nil, err
	}

	s := &Surface{x: sx, y: sy, z: sz}
	s.u0, s.u1, s.v0, s.v1 = sx.Bounds()
	return s, nil
}

func checkShape(name string, u, v []float64, vals [][]float64) error {
	want := fmt.Sprintf("(%d, %d)", len(u), len(v))
	if len(vals) != len(u) {
		return &interpolate.ShapeError{
			Name: name,
			Got:  fmt.Sprintf("(%d, ...)", len(vals)),
			Want: want,
		}
	}
	for i := range vals {
		if len(vals[i]) != len(v) {
			return &interpolate.ShapeError{
				Name: name,
				Got:  fmt.Sprintf("(%d, %d) at row %d", len(vals), len(vals[i]), i),
				Want: want,
			}
		}
		for j, val := range vals[i] {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return &interpolate.SampleError{
					Name:  name,
					Index: fmt.Sprintf("(%d, %d)", i, j),
					Value: val,
				}
			}
		}
	}
	return nil
}

// Domain returns the fitted parameter rectangle as
// (uMin, uMax, vMin, vMax). Queries outside these bounds extrapolate
// rather than fail.
func (s *Surface) Domain() (uMin, uMax, vMin, vMax float64) {
	return s.u0, s.u1, s.v0, s.v1
}

func (s *Surface) deriv(u, v float64, du, dv int) geom.Vec {
	return geom.Vec{
		s.x.Deriv(u, v, du, dv),
		s.y.Deriv(u, v, du, dv),
		s.z.Deriv(u, v, du, dv),
	}
}

// At returns the surface point at (u, v).
func (s *Surface) At(u, v float64) geom.Vec {
	return s.deriv(u, v, 0, 0)
}

// Du returns the tangent vector dS/du at (u, v).
func (s *Surface) Du(u, v float64) geom.Vec {
	return s.deriv(u, v, 1, 0)
}

// Dv returns the tangent vector dS/dv at (u, v).
func (s *Surface) Dv(u, v float64) geom.Vec {
	return s.deriv(u, v, 0, 1)
}

// Duu returns the second derivative vector d2S/du2 at (u, v).
func (s *Surface) Duu(u, v float64) geom.Vec {
	return s.deriv(u, v, 2, 0)
}

// Duv returns the mixed derivative vector d2S/dudv at (u, v).
func (s *Surface) Duv(u, v float64) geom.Vec {
	return s.deriv(u, v, 1, 1)
}

// Dvv returns the second derivative vector d2S/dv2 at (u, v).
func (s *Surface) Dvv(u, v float64) geom.Vec {
	return s.deriv(u, v, 0, 2)
}

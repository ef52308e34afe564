package interpolate

import (
	"fmt"
	"math"
)

// RectBivariate is a bicubic interpolant over a rectangular grid. It fits
// a twice-differentiable function f(u, v) through samples given at every
// node of a strictly increasing (u, v) axis pair and evaluates f and its
// mixed partial derivatives up to order (2, 2) at arbitrary points.
//
// The interpolant is a tensor product of natural cubic splines: one spline
// along v per grid row, with a cross spline along u rebuilt from the row
// evaluations for every query. No state is shared between queries, so a
// RectBivariate may be used from multiple goroutines concurrently.
//
// Points outside the fitted rectangle are evaluated by extending the
// boundary patches rather than rejected.
type RectBivariate struct {
	us, vs []float64
	rows   []*Spline
}

// NewRectBivariate fits a bicubic interpolant through vals, where
// vals[i][j] is the sample at (us[i], vs[j]). Both axes must be strictly
// increasing with at least four samples each, vals must have shape
// (len(us), len(vs)), and every sample must be finite. Violations are
// reported as a *DomainError, a *ShapeError or a *SampleError.
func NewRectBivariate(us, vs []float64, vals [][]float64) (*RectBivariate, error) {
	if err := CheckAxis("u", us); err != nil {
		return nil, err
	}
	if err := CheckAxis("v", vs); err != nil {
		return nil, err
	}
	if len(vals) != len(us) {
		return nil, &ShapeError{
			Name: "vals",
			Got:  fmt.Sprintf("(%d, ...)", len(vals)),
			Want: fmt.Sprintf("(%d, %d)", len(us), len(vs)),
		}
	}
	for i := range vals {
		if len(vals[i]) != len(vs) {
			return nil, &ShapeError{
				Name: "vals",
				Got:  fmt.Sprintf("(%d, %d) at row %d", len(vals), len(vals[i]), i),
				Want: fmt.Sprintf("(%d, %d)", len(us), len(vs)),
			}
		}
		for j, val := range vals[i] {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return nil, &SampleError{
					Name:  "vals",
					Index: fmt.Sprintf("(%d, %d)", i, j),
					Value: val,
				}
			}
		}
	}

	rv := &RectBivariate{}
	rv.us = make([]float64, len(us))
	rv.vs = make([]float64, len(vs))
	copy(rv.us, us)
	copy(rv.vs, vs)

	rv.rows = make([]*Spline, len(us))
	for i := range rv.rows {
		rv.rows[i] = NewSpline(rv.vs, vals[i])
	}
	return rv, nil
}

// Eval computes the value of the interpolant at (u, v).
func (rv *RectBivariate) Eval(u, v float64) float64 {
	return rv.Deriv(u, v, 0, 0)
}

// EvalAll evaluates the interpolant at each (us[i], vs[i]) pair. If an
// output array is given, the output is written to that array (the array is
// still returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (rv *RectBivariate) EvalAll(us, vs []float64, out ...[]float64) []float64 {
	return rv.DerivAll(us, vs, 0, 0, out...)
}

// Deriv computes the (du, dv) mixed partial derivative of the interpolant
// at (u, v). du and dv must each be in 0..2.
func (rv *RectBivariate) Deriv(u, v float64, du, dv int) float64 {
	if du < 0 || du > 2 || dv < 0 || dv > 2 {
		panic(fmt.Sprintf(
			"Derivative order (%d, %d) given to RectBivariate.Deriv() is "+
				"not supported.", du, dv,
		))
	}

	cross := make([]float64, len(rv.us))
	for i, row := range rv.rows {
		cross[i] = row.Deriv(v, dv)
	}
	return NewSpline(rv.us, cross).Deriv(u, du)
}

// DerivAll computes the (du, dv) mixed partial derivative at each
// (us[i], vs[i]) pair, with the same output conventions as EvalAll.
func (rv *RectBivariate) DerivAll(
	us, vs []float64, du, dv int, out ...[]float64,
) []float64 {
	if len(us) != len(vs) {
		panic(fmt.Sprintf(
			"len(us) = %d, but len(vs) = %d", len(us), len(vs),
		))
	}
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(us))}
	}
	for i := range us {
		out[0][i] = rv.Deriv(us[i], vs[i], du, dv)
	}
	return out[0]
}

// Bounds returns the fitted parameter rectangle as
// (uMin, uMax, vMin, vMax).
func (rv *RectBivariate) Bounds() (uMin, uMax, vMin, vMax float64) {
	return rv.us[0], rv.us[len(rv.us)-1], rv.vs[0], rv.vs[len(rv.vs)-1]
}

package interpolate

// Interpolator is a 1D interpolator.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
	// Deriv evaluates the derivative of the given order at x.
	Deriv(x float64, order int) float64
}

var (
	_ Interpolator = &Spline{}
)

// BiInterpolator is a 2D interpolator over a rectangular grid.
type BiInterpolator interface {
	// Eval evaluates the interpolator at a point.
	Eval(x, y float64) float64
	// EvalAll evaluates a sequence of points and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs, ys []float64, out ...[]float64) []float64
	// Deriv evaluates the (dx, dy) mixed partial derivative at a point.
	Deriv(x, y float64, dx, dy int) float64
	// DerivAll evaluates the (dx, dy) mixed partial derivative at a
	// sequence of points.
	DerivAll(xs, ys []float64, dx, dy int, out ...[]float64) []float64
}

var (
	_ BiInterpolator = &RectBivariate{}
)

package surface

import (
	"fmt"
	"math"

	"github.com/chunglabmit/pmetsurf/geom"
)

// Batch queries evaluate a whole sequence of (u, v) pairs with one call.
// Results are elementwise identical to the corresponding scalar queries.
// Where a scalar query would return ErrDegenerate, the batch fills that
// slot with NaN instead of aborting; all other slots are unaffected.

var nanVec = geom.Vec{math.NaN(), math.NaN(), math.NaN()}

func checkPairs(us, vs []float64) {
	if len(us) != len(vs) {
		panic(fmt.Sprintf("len(us) = %d, but len(vs) = %d", len(us), len(vs)))
	}
}

// AtAll returns the surface point at each (us[i], vs[i]). If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (s *Surface) AtAll(us, vs []float64, out ...[]geom.Vec) []geom.Vec {
	checkPairs(us, vs)
	if len(out) == 0 {
		out = [][]geom.Vec{make([]geom.Vec, len(us))}
	}
	for i := range us {
		out[0][i] = s.At(us[i], vs[i])
	}
	return out[0]
}

// NormalAll returns the unit surface normal at each (us[i], vs[i]).
// Degenerate points come back as NaN vectors.
func (s *Surface) NormalAll(us, vs []float64, out ...[]geom.Vec) []geom.Vec {
	checkPairs(us, vs)
	if len(out) == 0 {
		out = [][]geom.Vec{make([]geom.Vec, len(us))}
	}
	for i := range us {
		n, err := s.Normal(us[i], vs[i])
		if err != nil {
			n = nanVec
		}
		out[0][i] = n
	}
	return out[0]
}

func (s *Surface) scalarAll(
	us, vs []float64, f func(u, v float64) (float64, error), out [][]float64,
) []float64 {
	checkPairs(us, vs)
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(us))}
	}
	for i := range us {
		k, err := f(us[i], vs[i])
		if err != nil {
			k = math.NaN()
		}
		out[0][i] = k
	}
	return out[0]
}

// KmaxAll returns the larger principal curvature at each (us[i], vs[i]).
// Degenerate points come back as NaN.
func (s *Surface) KmaxAll(us, vs []float64, out ...[]float64) []float64 {
	return s.scalarAll(us, vs, s.Kmax, out)
}

// KminAll returns the smaller principal curvature at each (us[i], vs[i]).
// Degenerate points come back as NaN.
func (s *Surface) KminAll(us, vs []float64, out ...[]float64) []float64 {
	return s.scalarAll(us, vs, s.Kmin, out)
}

// GaussianAll returns the Gaussian curvature at each (us[i], vs[i]).
// Degenerate points come back as NaN.
func (s *Surface) GaussianAll(us, vs []float64, out ...[]float64) []float64 {
	return s.scalarAll(us, vs, s.Gaussian, out)
}

// MeanAll returns the mean curvature at each (us[i], vs[i]). Degenerate
// points come back as NaN.
func (s *Surface) MeanAll(us, vs []float64, out ...[]float64) []float64 {
	return s.scalarAll(us, vs, s.Mean, out)
}

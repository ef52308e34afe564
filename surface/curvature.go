package surface

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/chunglabmit/pmetsurf/geom"
)

// DegenerateTol is the smallest |dS/du x dS/dv| treated as non-degenerate.
// Below it the normal direction, and with it every curvature quantity, is
// numerically undefined.
const DegenerateTol = 1e-9

// ErrDegenerate is returned by queries at parameter points where the
// tangent vectors are parallel or vanish, such as the poles of a sphere
// parameterization. Callers are responsible for avoiding singular (u, v)
// inputs; batch queries report such points as NaN instead of failing.
var ErrDegenerate = errors.New(
	"surface: degenerate point: tangent vectors are parallel")

// Normal returns the unit vector normal to the surface at (u, v), oriented
// by the u -> v right-hand rule of the parameterization. Callers wanting
// the opposite orientation must negate it themselves.
//
// Normal returns ErrDegenerate where the tangent cross product is smaller
// than DegenerateTol.
func (s *Surface) Normal(u, v float64) (geom.Vec, error) {
	n, _, _, err := s.normal(u, v)
	return n, err
}

func (s *Surface) normal(u, v float64) (n, su, sv geom.Vec, err error) {
	su, sv = s.Du(u, v), s.Dv(u, v)
	c := su.Cross(sv)
	c2 := c.Norm2()
	// The negated comparison also catches NaN.
	if !(c2 > DegenerateTol*DegenerateTol) {
		return geom.Vec{}, su, sv, ErrDegenerate
	}
	return c.Scale(1 / math.Sqrt(c2)), su, sv, nil
}

// FirstForm returns the first fundamental form coefficients at (u, v):
// E = Su.Su, F = Su.Sv, G = Sv.Sv.
func (s *Surface) FirstForm(u, v float64) (E, F, G float64) {
	su, sv := s.Du(u, v), s.Dv(u, v)
	return su.Dot(su), su.Dot(sv), sv.Dot(sv)
}

// SecondForm returns the second fundamental form coefficients L, M, N at
// (u, v).
//
// The form is taken against the oriented normal so that curvature comes
// out positive where the surface bends away from it: a sphere sampled
// with an outward right-hand normal has L/E = 1/R, not -1/R.
func (s *Surface) SecondForm(u, v float64) (L, M, N float64, err error) {
	n, _, _, err := s.normal(u, v)
	if err != nil {
		return 0, 0, 0, err
	}
	m := n.Scale(-1)
	L = s.Duu(u, v).Dot(m)
	M = s.Duv(u, v).Dot(m)
	N = s.Dvv(u, v).Dot(m)
	return L, M, N, nil
}

// forms gathers both fundamental forms with a single set of derivative
// evaluations.
func (s *Surface) forms(u, v float64) (E, F, G, L, M, N float64, err error) {
	n, su, sv, err := s.normal(u, v)
	if err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}
	m := n.Scale(-1)
	E, F, G = su.Dot(su), su.Dot(sv), sv.Dot(sv)
	L = s.Duu(u, v).Dot(m)
	M = s.Duv(u, v).Dot(m)
	N = s.Dvv(u, v).Dot(m)
	return E, F, G, L, M, N, nil
}

// Gaussian returns the Gaussian curvature K = (LN - M^2) / (EG - F^2) at
// (u, v), or ErrDegenerate where the first fundamental form is singular.
func (s *Surface) Gaussian(u, v float64) (float64, error) {
	E, F, G, L, M, N, err := s.forms(u, v)
	if err != nil {
		return math.NaN(), err
	}
	return (L*N - M*M) / (E*G - F*F), nil
}

// Mean returns the mean curvature
// H = (EN - 2FM + GL) / (2(EG - F^2)) at (u, v), or ErrDegenerate where
// the first fundamental form is singular.
func (s *Surface) Mean(u, v float64) (float64, error) {
	E, F, G, L, M, N, err := s.forms(u, v)
	if err != nil {
		return math.NaN(), err
	}
	return (E*N - 2*F*M + G*L) / (2 * (E*G - F*F)), nil
}

// principals returns both principal curvatures, kmax >= kmin.
func (s *Surface) principals(u, v float64) (kmax, kmin float64, err error) {
	E, F, G, L, M, N, err := s.forms(u, v)
	if err != nil {
		return math.NaN(), math.NaN(), err
	}

	den := E*G - F*F
	K := (L*N - M*M) / den
	H := (E*N - 2*F*M + G*L) / (2 * den)

	// H^2 - K = ((kmax - kmin)/2)^2 is non-negative up to roundoff.
	disc := H*H - K
	if disc < 0 {
		disc = 0
	}
	r := math.Sqrt(disc)
	return H + r, H - r, nil
}

// Kmax returns the larger signed principal curvature at (u, v), or
// ErrDegenerate where the parameterization is singular. Curvature is
// positive where the surface bends away from the oriented normal.
func (s *Surface) Kmax(u, v float64) (float64, error) {
	kmax, _, err := s.principals(u, v)
	return kmax, err
}

// Kmin returns the smaller signed principal curvature at (u, v), or
// ErrDegenerate where the parameterization is singular.
func (s *Surface) Kmin(u, v float64) (float64, error) {
	_, kmin, err := s.principals(u, v)
	return kmin, err
}

// Weingarten returns the shape operator matrix
//
//	W = | E F |^-1 * | L M |
//	    | F G |      | M N |
//
// at (u, v). Its eigenvalues are the principal curvatures Kmax and Kmin,
// its trace twice the mean curvature and its determinant the Gaussian
// curvature. Weingarten returns ErrDegenerate where the first fundamental
// form is not invertible.
func (s *Surface) Weingarten(u, v float64) (*mat.Dense, error) {
	E, F, G, L, M, N, err := s.forms(u, v)
	if err != nil {
		return nil, err
	}

	first := mat.NewDense(2, 2, []float64{E, F, F, G})
	second := mat.NewDense(2, 2, []float64{L, M, M, N})

	var w mat.Dense
	if err := w.Solve(first, second); err != nil {
		return nil, ErrDegenerate
	}
	return &w, nil
}

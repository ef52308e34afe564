package surface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chunglabmit/pmetsurf/math/interpolate"
)

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	xs[n-1] = hi
	return xs
}

func sampleGrid(u, v []float64, f func(u, v float64) float64) [][]float64 {
	vals := make([][]float64, len(u))
	for i := range u {
		vals[i] = make([]float64, len(v))
		for j := range v {
			vals[i][j] = f(u[i], v[j])
		}
	}
	return vals
}

// dome returns a spherical cap of radius 10 centered on the origin:
// x = 10u, y = 10v, z = sqrt(100 - x^2 - y^2) over
// u, v in [-1/sqrt(2), 1/sqrt(2)]. The corner nodes sit exactly on the
// rim, where roundoff can push the radicand below zero, so it is clamped.
func dome(t *testing.T) *Surface {
	lim := 1 / math.Sqrt2
	u := linspace(-lim, lim, 100)
	v := linspace(-lim, lim, 100)
	x := sampleGrid(u, v, func(u, v float64) float64 { return 10 * u })
	y := sampleGrid(u, v, func(u, v float64) float64 { return 10 * v })
	z := sampleGrid(u, v, func(u, v float64) float64 {
		return math.Sqrt(math.Max(0, 100-100*u*u-100*v*v))
	})
	s, err := New(u, v, x, y, z)
	assert.NoError(t, err)
	return s
}

// plane returns the flat surface x = u, y = v, z = 0 over [0, 1]^2.
func plane(t *testing.T) *Surface {
	u := linspace(0, 1, 10)
	v := linspace(0, 1, 10)
	x := sampleGrid(u, v, func(u, v float64) float64 { return u })
	y := sampleGrid(u, v, func(u, v float64) float64 { return v })
	z := sampleGrid(u, v, func(u, v float64) float64 { return 0 })
	s, err := New(u, v, x, y, z)
	assert.NoError(t, err)
	return s
}

// sphere returns the unit sphere parameterized by longitude
// u in [-pi, pi] and latitude v in [-pi/2, pi/2]. The parameterization is
// degenerate at the poles v = +-pi/2.
func sphere(t *testing.T) *Surface {
	u := linspace(-math.Pi, math.Pi, 40)
	v := linspace(-math.Pi/2, math.Pi/2, 20)
	x := sampleGrid(u, v, func(u, v float64) float64 {
		return math.Cos(v) * math.Cos(u)
	})
	y := sampleGrid(u, v, func(u, v float64) float64 {
		return math.Cos(v) * math.Sin(u)
	})
	z := sampleGrid(u, v, func(u, v float64) float64 { return math.Sin(v) })
	s, err := New(u, v, x, y, z)
	assert.NoError(t, err)
	return s
}

func TestDomePosition(t *testing.T) {
	s := dome(t)
	cases := []struct {
		u, v    float64
		x, y, z float64
	}{
		{-0.5, 0, -5, 0, math.Sqrt(75)},
		{0, 0, 0, 0, 10},
		{0, 0.5, 0, 5, math.Sqrt(75)},
	}
	for _, c := range cases {
		p := s.At(c.u, c.v)
		assert.InDelta(t, c.x, p[0], 1e-6, "x at (%g, %g)", c.u, c.v)
		assert.InDelta(t, c.y, p[1], 1e-6, "y at (%g, %g)", c.u, c.v)
		assert.InDelta(t, c.z, p[2], 1e-6, "z at (%g, %g)", c.u, c.v)
	}
}

func TestDomeRimIsFinite(t *testing.T) {
	s := dome(t)
	// The corner nodes lie on z = 0 exactly; a single NaN sample there
	// would poison the whole fitted z channel.
	lim := 1 / math.Sqrt2
	for _, p := range [][2]float64{{lim, lim}, {-lim, lim}, {lim, -lim}, {-lim, -lim}} {
		pt := s.At(p[0], p[1])
		for i := 0; i < 3; i++ {
			assert.False(t, math.IsNaN(pt[i]), "component %d at %v", i, p)
		}
	}
	assert.InDelta(t, 10, s.At(0, 0)[2], 1e-6, "apex unaffected by rim nodes")
}

func TestDomeNormal(t *testing.T) {
	s := dome(t)
	// The normal of a sphere centered on the origin is the surface point
	// over the radius.
	for _, p := range [][2]float64{{-0.5, 0}, {0, 0}, {0, 0.5}, {0.3, -0.2}} {
		n, err := s.Normal(p[0], p[1])
		assert.NoError(t, err, "normal at %v", p)

		want := s.At(p[0], p[1]).Scale(0.1)
		for i := 0; i < 3; i++ {
			assert.InDelta(t, want[i], n[i], 1e-4, "component %d at %v", i, p)
		}
	}
}

func TestNormalIsUnit(t *testing.T) {
	s := dome(t)
	for _, p := range [][2]float64{{0, 0}, {-0.6, 0.1}, {0.25, 0.25}, {0.5, -0.4}} {
		n, err := s.Normal(p[0], p[1])
		assert.NoError(t, err, "normal at %v", p)
		assert.InDelta(t, 1, n.Norm(), 1e-12, "unit length at %v", p)
	}
}

func TestTangentsSpanTheSurface(t *testing.T) {
	s := dome(t)
	u, v := 0.2, -0.3
	su, sv := s.Du(u, v), s.Dv(u, v)

	// x = 10u and y = 10v exactly, so the tangents have fixed x and y
	// components.
	assert.InDelta(t, 10, su[0], 1e-9, "dx/du")
	assert.InDelta(t, 0, su[1], 1e-9, "dy/du")
	assert.InDelta(t, 0, sv[0], 1e-9, "dx/dv")
	assert.InDelta(t, 10, sv[1], 1e-9, "dy/dv")

	// Tangents are perpendicular to the sphere normal.
	n, err := s.Normal(u, v)
	assert.NoError(t, err)
	assert.InDelta(t, 0, n.Dot(su)/su.Norm(), 1e-6, "n.Su")
	assert.InDelta(t, 0, n.Dot(sv)/sv.Norm(), 1e-6, "n.Sv")
}

func TestPlaneGeometry(t *testing.T) {
	s := plane(t)
	for _, p := range [][2]float64{{0.1, 0.1}, {0.5, 0.5}, {0.9, 0.2}} {
		n, err := s.Normal(p[0], p[1])
		assert.NoError(t, err, "normal at %v", p)
		assert.InDelta(t, 0, n[0], 1e-9, "nx at %v", p)
		assert.InDelta(t, 0, n[1], 1e-9, "ny at %v", p)
		assert.InDelta(t, 1, n[2], 1e-9, "nz at %v", p)

		kmax, err := s.Kmax(p[0], p[1])
		assert.NoError(t, err)
		kmin, err := s.Kmin(p[0], p[1])
		assert.NoError(t, err)
		assert.InDelta(t, 0, kmax, 1e-9, "kmax at %v", p)
		assert.InDelta(t, 0, kmin, 1e-9, "kmin at %v", p)
	}
}

func TestExtrapolationOutsideDomain(t *testing.T) {
	s := dome(t)
	u0, u1, v0, v1 := s.Domain()
	assert.InDelta(t, -1/math.Sqrt2, u0, 1e-15, "uMin")
	assert.InDelta(t, 1/math.Sqrt2, u1, 1e-15, "uMax")
	assert.InDelta(t, -1/math.Sqrt2, v0, 1e-15, "vMin")
	assert.InDelta(t, 1/math.Sqrt2, v1, 1e-15, "vMax")

	// Queries slightly past the fitted rectangle extend the boundary
	// patches instead of failing.
	p := s.At(u1+0.01, 0)
	assert.InDelta(t, 10*(u1+0.01), p[0], 1e-3, "extrapolated x")
	n, err := s.Normal(u1+0.01, 0)
	assert.NoError(t, err, "extrapolated normal")
	assert.InDelta(t, 1, n.Norm(), 1e-12, "extrapolated normal is unit")
}

func TestBatchMatchesScalar(t *testing.T) {
	s := dome(t)
	us := []float64{-0.5, 0, 0.1, 0.25, 0.6}
	vs := []float64{0.2, 0, -0.3, 0.25, -0.1}

	pts := s.AtAll(us, vs)
	ns := s.NormalAll(us, vs)
	kmaxs := s.KmaxAll(us, vs)
	kmins := s.KminAll(us, vs)
	gs := s.GaussianAll(us, vs)
	hs := s.MeanAll(us, vs)

	for i := range us {
		u, v := us[i], vs[i]
		assert.Equal(t, s.At(u, v), pts[i], "position %d", i)

		n, err := s.Normal(u, v)
		assert.NoError(t, err)
		assert.Equal(t, n, ns[i], "normal %d", i)

		kmax, _ := s.Kmax(u, v)
		kmin, _ := s.Kmin(u, v)
		g, _ := s.Gaussian(u, v)
		h, _ := s.Mean(u, v)
		assert.Equal(t, kmax, kmaxs[i], "kmax %d", i)
		assert.Equal(t, kmin, kmins[i], "kmin %d", i)
		assert.Equal(t, g, gs[i], "gaussian %d", i)
		assert.Equal(t, h, hs[i], "mean %d", i)
	}

	buf := make([]float64, len(us))
	got := s.KmaxAll(us, vs, buf)
	assert.Equal(t, &buf[0], &got[0], "output buffer reused")

	assert.Panics(t, func() { s.AtAll(us, vs[:2]) }, "mismatched batch input")
}

func TestConstructionErrors(t *testing.T) {
	u := linspace(0, 1, 10)
	v := linspace(0, 1, 8)
	x := sampleGrid(u, v, func(u, v float64) float64 { return u })
	y := sampleGrid(u, v, func(u, v float64) float64 { return v })
	z := sampleGrid(u, v, func(u, v float64) float64 { return 0 })

	var se *interpolate.ShapeError
	_, err := New(u, v, x, y, z[:7])
	assert.ErrorAs(t, err, &se, "truncated z")

	ragged := sampleGrid(u, v, func(u, v float64) float64 { return 0 })
	ragged[3] = ragged[3][:5]
	_, err = New(u, v, x, ragged, z)
	assert.ErrorAs(t, err, &se, "ragged y")

	var de *interpolate.DomainError
	badU := linspace(0, 1, 10)
	badU[4] = badU[6]
	badX := sampleGrid(badU, v, func(u, v float64) float64 { return u })
	_, err = New(badU, v, badX, y, z)
	assert.ErrorAs(t, err, &de, "non-monotonic u")

	shortV := []float64{0, 1, 2}
	sx := sampleGrid(u, shortV, func(u, v float64) float64 { return u })
	sy := sampleGrid(u, shortV, func(u, v float64) float64 { return v })
	sz := sampleGrid(u, shortV, func(u, v float64) float64 { return 0 })
	_, err = New(u, shortV, sx, sy, sz)
	assert.ErrorAs(t, err, &de, "short v")

	var sme *interpolate.SampleError
	badZ := sampleGrid(u, v, func(u, v float64) float64 { return 0 })
	badZ[2][5] = math.NaN()
	_, err = New(u, v, x, y, badZ)
	assert.ErrorAs(t, err, &sme, "NaN z sample")
	assert.Equal(t, "z", sme.Name, "offending channel named")

	badY := sampleGrid(u, v, func(u, v float64) float64 { return v })
	badY[0][0] = math.Inf(1)
	_, err = New(u, v, x, badY, z)
	assert.ErrorAs(t, err, &sme, "Inf y sample")
}

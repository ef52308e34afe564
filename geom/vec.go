/*Package geom contains routines for computing geometric quantities.

Pretty much everything only covers three dimensional vectors because that's
all the surface code has needed so far.*/
package geom

import (
	"math"
)

// Vec is a three dimensional vector.
type Vec [3]float64

// Dot computes the inner product of v and u.
func (v Vec) Dot(u Vec) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Cross computes the right-handed cross product of v and u.
func (v Vec) Cross(u Vec) Vec {
	return Vec{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

// Norm computes the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Norm2())
}

// Norm2 computes the squared Euclidean length of v.
func (v Vec) Norm2() float64 {
	return v.Dot(v)
}

// Scale multiplies every component of v by c.
func (v Vec) Scale(c float64) Vec {
	return Vec{v[0] * c, v[1] * c, v[2] * c}
}

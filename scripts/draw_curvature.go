/*draw_curvature fits a spherical cap of radius 10 and plots the recovered
principal curvatures along the v = 0 line against the analytic value 0.1.
Useful for eyeballing the fit quality near the domain boundary.*/
package main

import (
	"log"
	"math"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/chunglabmit/pmetsurf/surface"
)

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	xs[n-1] = hi
	return xs
}

func main() {
	lim := 1 / math.Sqrt2
	u := linspace(-lim, lim, 100)
	v := linspace(-lim, lim, 100)

	x := make([][]float64, len(u))
	y := make([][]float64, len(u))
	z := make([][]float64, len(u))
	for i := range u {
		x[i] = make([]float64, len(v))
		y[i] = make([]float64, len(v))
		z[i] = make([]float64, len(v))
		for j := range v {
			x[i][j] = 10 * u[i]
			y[i][j] = 10 * v[j]
			// The corner nodes sit exactly on the rim, where roundoff can
			// push the radicand below zero.
			z[i][j] = math.Sqrt(math.Max(0, 100-100*u[i]*u[i]-100*v[j]*v[j]))
		}
	}

	surf, err := surface.New(u, v, x, y, z)
	if err != nil {
		log.Fatal(err.Error())
	}

	qus := linspace(-lim, lim, 400)
	qvs := make([]float64, len(qus))
	kmaxs := surf.KmaxAll(qus, qvs)
	kmins := surf.KminAll(qus, qvs)

	exact := make([]float64, len(qus))
	for i := range exact {
		exact[i] = 0.1
	}

	plt.Reset()
	plt.Plot(qus, exact, "k")
	plt.Plot(qus, kmaxs, "r", plt.LW(2))
	plt.Plot(qus, kmins, "b", plt.LW(2))
	plt.Show()
}

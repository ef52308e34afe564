package io

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// ReadGrid reads a surface sample grid from a whitespace-separated table
// with columns u, v, x, y, z and one row per grid node. Nodes must be in
// row-major order: v varies fastest, u is constant within each block.
func ReadGrid(file string) (us, vs []float64, x, y, z [][]float64, err error) {
	cols, err := table.ReadTable(file, []int{0, 1, 2, 3, 4}, nil)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	uCol, vCol := cols[0], cols[1]
	if len(uCol) == 0 {
		return nil, nil, nil, nil, nil,
			fmt.Errorf("Grid file %s is empty.", file)
	}

	// The length of the leading block of equal u values gives the v axis
	// length.
	n := 0
	for n < len(uCol) && uCol[n] == uCol[0] {
		n++
	}
	if len(uCol)%n != 0 {
		return nil, nil, nil, nil, nil, fmt.Errorf(
			"Grid file %s has %d rows, which cannot tile blocks of %d.",
			file, len(uCol), n,
		)
	}
	m := len(uCol) / n

	us = make([]float64, m)
	vs = make([]float64, n)
	for i := range us {
		us[i] = uCol[i*n]
	}
	copy(vs, vCol[:n])

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			row := i*n + j
			if uCol[row] != us[i] || vCol[row] != vs[j] {
				return nil, nil, nil, nil, nil, fmt.Errorf(
					"Grid file %s is not a row-major rectangular grid "+
						"at row %d.", file, row,
				)
			}
		}
	}

	x = blockMatrix(cols[2], m, n)
	y = blockMatrix(cols[3], m, n)
	z = blockMatrix(cols[4], m, n)
	return us, vs, x, y, z, nil
}

func blockMatrix(col []float64, m, n int) [][]float64 {
	out := make([][]float64, m)
	for i := range out {
		out[i] = make([]float64, n)
		copy(out[i], col[i*n:(i+1)*n])
	}
	return out
}

// ReadPoints reads query points from a whitespace-separated table with
// columns u, v.
func ReadPoints(file string) (us, vs []float64, err error) {
	cols, err := table.ReadTable(file, []int{0, 1}, nil)
	if err != nil {
		return nil, nil, err
	}
	return cols[0], cols[1], nil
}

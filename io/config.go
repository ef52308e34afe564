/*Package io reads the configuration files and the grid and point tables
consumed by the pmetsurf command line tool. The fitted surface itself has
no persisted state; this package only marshals arrays in and out of the
surface package's interface.*/
package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

const ExampleQueryFile = `[Query]

#######################
# Required Parameters #
#######################

# Whitespace-separated table with columns u, v, x, y, z and one row per
# grid node. Nodes must be in row-major order: all the nodes of the first
# u value first, with v increasing within each block.
GridFile = path/to/grid.dat

# Whitespace-separated table with columns u, v, one row per query point.
# Points outside the fitted grid are extrapolated, not rejected.
PointsFile = path/to/points.dat

# The quantity to evaluate at each query point. One of:
# [ Position | Normal | Kmax | Kmin | Gaussian | Mean ]
# Degenerate points (parallel tangent vectors) are written as NaN.
Quantity = Position

#######################
# Optional Parameters #
#######################

# File the output table is written to. Defaults to stdout.
# OutputFile = out.dat`

// QueryWrapper is the gcfg wrapper for the [Query] section.
type QueryWrapper struct {
	Query QueryConfig
}

// QueryConfig describes a single evaluation run of the pmetsurf tool.
type QueryConfig struct {
	GridFile   string
	PointsFile string
	Quantity   string

	OutputFile string
}

var quantities = map[string]bool{
	"Position": true,
	"Normal":   true,
	"Kmax":     true,
	"Kmin":     true,
	"Gaussian": true,
	"Mean":     true,
}

// ValidQuantity returns whether the Quantity field names a supported
// surface query.
func (con *QueryConfig) ValidQuantity() bool {
	return quantities[con.Quantity]
}

// ReadQueryConfig reads a [Query] configuration file.
func ReadQueryConfig(fname string) (*QueryConfig, error) {
	wrap := &QueryWrapper{}
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Query

	if con.GridFile == "" {
		return nil, fmt.Errorf("Config file %s needs a 'GridFile' value.", fname)
	}
	if con.PointsFile == "" {
		return nil, fmt.Errorf("Config file %s needs a 'PointsFile' value.", fname)
	}
	if !con.ValidQuantity() {
		return nil, fmt.Errorf(
			"Config file %s has invalid 'Quantity' value '%s'.",
			fname, con.Quantity,
		)
	}
	return con, nil
}

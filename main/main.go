package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chunglabmit/pmetsurf/io"
	"github.com/chunglabmit/pmetsurf/surface"
)

func main() {
	var (
		query         string
		exampleConfig string
	)

	flag.StringVar(
		&query, "Query", "",
		"Configuration file for [Query] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Query'.",
	)

	flag.Parse()

	switch {
	case exampleConfig != "":
		if exampleConfig != "Query" {
			log.Fatalf(
				"Unrecognized config type '%s'. The only accepted argument "+
					"is 'Query'.", exampleConfig,
			)
		}
		fmt.Println(io.ExampleQueryFile)
	case query != "":
		con, err := io.ReadQueryConfig(query)
		if err != nil {
			log.Fatal(err.Error())
		}
		queryMain(con)
	default:
		log.Fatal("Must select a mode. Run with -help for a list.")
	}
}

func queryMain(con *io.QueryConfig) {
	us, vs, x, y, z, err := io.ReadGrid(con.GridFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	surf, err := surface.New(us, vs, x, y, z)
	if err != nil {
		log.Fatal(err.Error())
	}
	qus, qvs, err := io.ReadPoints(con.PointsFile)
	if err != nil {
		log.Fatal(err.Error())
	}

	out := os.Stdout
	if con.OutputFile != "" {
		out, err = os.Create(con.OutputFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer out.Close()
	}

	switch con.Quantity {
	case "Position":
		pts := surf.AtAll(qus, qvs)
		for i := range qus {
			fmt.Fprintf(out, "%g %g %g %g %g\n",
				qus[i], qvs[i], pts[i][0], pts[i][1], pts[i][2])
		}
	case "Normal":
		ns := surf.NormalAll(qus, qvs)
		for i := range qus {
			fmt.Fprintf(out, "%g %g %g %g %g\n",
				qus[i], qvs[i], ns[i][0], ns[i][1], ns[i][2])
		}
	default:
		var ks []float64
		switch con.Quantity {
		case "Kmax":
			ks = surf.KmaxAll(qus, qvs)
		case "Kmin":
			ks = surf.KminAll(qus, qvs)
		case "Gaussian":
			ks = surf.GaussianAll(qus, qvs)
		case "Mean":
			ks = surf.MeanAll(qus, qvs)
		}
		for i := range qus {
			fmt.Fprintf(out, "%g %g %g\n", qus[i], qvs[i], ks[i])
		}
	}
}

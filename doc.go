// Package mapframe maps named column subsets of a tabular container through
// independently fitted transformer pipelines and assembles the results into a
// single numeric feature matrix.
//
// The library keeps enough bookkeeping to trace every output column back to
// the feature that produced it: per-feature output widths are recorded at fit
// time, and cumulative offsets and per-column back-references are derived
// from them on demand.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/mapframe/frame"
//	    "github.com/YuminosukeSato/mapframe/mapper"
//	    "github.com/YuminosukeSato/mapframe/preprocessing"
//	)
//
//	func main() {
//	    X, err := frame.NewTable(
//	        []string{"age", "city"},
//	        [][]float64{{23, 31, 45, 31, 52}, {0, 1, 2, 1, 0}},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    m, err := mapper.NewMapper([]mapper.Feature{
//	        mapper.FeatureOf("age"),
//	        mapper.NewFeature(mapper.Col("city"), preprocessing.NewOneHotEncoderDefault()),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    Xt, err := m.FitTransform(X, nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    r, c := Xt.Dims()
//	    fmt.Printf("combined feature matrix: %dx%d\n", r, c)
//	}
//
// Dense outputs use gonum's mat.Dense; sparse feature outputs combine into a
// CSR matrix, returned as-is when the mapper's sparse flag is set and
// materialized to dense otherwise.
package mapframe

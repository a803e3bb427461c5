// Package partls provides partitioned least squares regression for Go:
// interpretable linear models over grouped attributes, fitted by alternating
// optimization on gonum matrices.
//
// # Features
//
// - Two fitting variants: NNLS-based and convex-solver-based
// - Injectable numeric backends with deterministic defaults
// - Checkpoint/resume boundary for long-running fits
// - Structured warnings and errors with stack traces
//
// # Installation
//
// Install partls using go get:
//
//	go get github.com/YuminosukeSato/partls
//
// # Quick Start
//
// Here's a simple example of a partitioned fit:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/partls/partls"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 2, []float64{1, 2, 2, 3, 3, 5, 4, 7})
//	    y := mat.NewDense(4, 1, []float64{3, 5, 8, 11})
//	    P := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
//
//	    reg := partls.NewRegression(P, partls.WithIterations(50))
//	    if err := reg.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(reg.Objective)
//	}
//
// See the partls package documentation for the full API.
package partls

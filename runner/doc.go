// Package runner is the thin timed harness around the geodes library: it
// loads blueprint descriptor files, scores them, measures wall-clock time,
// and compares answers against expected values.
//
// Runs are declared in an HCL manifest:
//
//	run "example" {
//	  input    = "testdata/example.txt"
//	  horizon  = 24
//	  mode     = "sum"     # "sum" (quality levels) or "product"
//	  top      = 3         # product mode: number of leading blueprints
//	  expected = 33        # optional golden answer
//	}
//
// The harness carries no algorithmic weight; all scoring is delegated to
// the quality and search packages.
package runner

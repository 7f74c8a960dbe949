// Package bench times the kernels of this module the way the interactive driver did:
// every variant of a kernel is run against the same inputs a configurable number of
// times, and the wall-clock samples are summarised, reported as YAML and optionally
// drawn as a bar chart.
//
// Benchmark plans are HCL files made of run blocks:
//
//	run "mul-256" {
//	  kernel  = "winograd"
//	  rows    = 256
//	  cols    = 256
//	  mode    = "pipelined"
//	  repeat  = 10
//	  samples = 5
//	  threads = 4
//	}
//
// Relative input paths resolve against the plan file's directory.
package bench

// Package app runs one kernels command: it builds the logger, executes the requested
// benchmark through package bench and prints, reports and charts the results.
// It is independent of the command-line front end in package cli.
package app

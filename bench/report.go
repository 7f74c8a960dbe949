package bench

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Report is the YAML document written by WriteReport.
type Report struct {
	Results []Result `yaml:"results"`
}

// WriteReport encodes results as a YAML document with two-space indentation.
// Durations are written in time.Duration string form ("1.5ms").
func WriteReport(w io.Writer, results []Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Report{Results: results}); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return enc.Close()
}

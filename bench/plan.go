package bench

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Kernel names accepted in plans and on the command line.
const (
	KernelTSP      = "tsp"
	KernelGauss    = "gauss"
	KernelWinograd = "winograd"
)

// Plan is a decoded benchmark plan.
type Plan struct {
	Runs []Run `hcl:"run,block"`

	// Dir is the directory that relative input paths are resolved against.
	Dir string
}

// Run is a single benchmark entry.
type Run struct {
	Name   string `hcl:"name,label"`
	Kernel string `hcl:"kernel"`

	// Inputs are matrix files: one distance matrix (tsp), one augmented matrix (gauss),
	// or two factors (winograd). Winograd may use Rows/Cols instead.
	Inputs []string `hcl:"inputs,optional"`

	// Mode restricts the run to one variant; empty runs every variant of the kernel.
	Mode string `hcl:"mode,optional"`

	// Samples is the number of timed invocations per variant.
	Samples int `hcl:"samples,optional"`

	// Repeat is passed to the kernel (tsp blocks, winograd repeats, gauss solves per sample).
	Repeat int `hcl:"repeat,optional"`

	Threads int   `hcl:"threads,optional"`
	Seed    int64 `hcl:"seed,optional"`

	// Rows and Cols size random winograd factors: A is Rows×Cols, B is Cols×Rows.
	Rows int `hcl:"rows,optional"`
	Cols int `hcl:"cols,optional"`
}

type hclPlanFile struct {
	Runs []Run `hcl:"run,block"`
}

// LoadPlan parses and validates the HCL plan at path.
func LoadPlan(path string) (*Plan, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse plan %s: %w", path, diags)
	}

	return decodePlan(file.Body, path)
}

// ParsePlan is LoadPlan for in-memory source; filename is used in diagnostics and
// as the base for relative inputs.
func ParsePlan(src []byte, filename string) (*Plan, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse plan %s: %w", filename, diags)
	}

	return decodePlan(file.Body, filename)
}

func decodePlan(body hcl.Body, filename string) (*Plan, error) {
	var parsed hclPlanFile
	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode plan %s: %w", filename, diags)
	}

	plan := &Plan{Runs: parsed.Runs, Dir: filepath.Dir(filename)}
	seen := make(map[string]bool, len(plan.Runs))
	for i := range plan.Runs {
		r := &plan.Runs[i]
		if seen[r.Name] {
			return nil, benchErrorf("run "+r.Name, fmt.Errorf("duplicate name: %w", ErrBadPlan))
		}
		seen[r.Name] = true
		r.normalize()
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	return plan, nil
}

// normalize lower-cases names and fills zero counts with 1.
func (r *Run) normalize() {
	r.Kernel = strings.ToLower(strings.TrimSpace(r.Kernel))
	if r.Kernel == "ant" {
		r.Kernel = KernelTSP
	}
	r.Mode = strings.ToLower(strings.TrimSpace(r.Mode))
	if r.Samples <= 0 {
		r.Samples = 1
	}
	if r.Repeat <= 0 {
		r.Repeat = 1
	}
}

// Validate checks that the run names a known kernel with the inputs it needs.
func (r Run) Validate() error {
	tag := "run " + r.Name
	switch r.Kernel {
	case KernelTSP, KernelGauss:
		if len(r.Inputs) != 1 {
			return benchErrorf(tag, fmt.Errorf("%s needs exactly one input, got %d: %w", r.Kernel, len(r.Inputs), ErrBadPlan))
		}
	case KernelWinograd:
		random := r.Rows > 0 && r.Cols > 0
		if len(r.Inputs) != 2 && !random {
			return benchErrorf(tag, fmt.Errorf("winograd needs two inputs or rows and cols: %w", ErrBadPlan))
		}
	default:
		return benchErrorf(tag, fmt.Errorf("%q: %w", r.Kernel, ErrUnknownKernel))
	}
	if _, err := r.variants(); err != nil {
		return benchErrorf(tag, err)
	}

	return nil
}

// Package runner - manifest loading and validation.
//
// Decoding uses hclparse + gohcl; manifest shape errors surface as the
// ErrBadManifest sentinel wrapped around the HCL diagnostics.
package runner

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Sentinel errors for manifest handling.
var (
	// ErrBadManifest indicates a manifest that fails to parse or decode,
	// or a run with an unusable field value.
	ErrBadManifest = errors.New("runner: malformed manifest")

	// ErrBadMode indicates a run mode other than "sum" or "product".
	ErrBadMode = errors.New("runner: unknown run mode")
)

// Mode selects how a run aggregates its blueprints.
type Mode string

const (
	// ModeSum totals quality levels (ID × geodes) over every blueprint.
	ModeSum Mode = "sum"

	// ModeProduct multiplies geode yields over the first Top blueprints.
	ModeProduct Mode = "product"
)

// defaultTop is the number of leading blueprints scored in product mode
// when the manifest does not say otherwise.
const defaultTop = 3

// Run is one fully resolved manifest entry.
type Run struct {
	// Name is the run label from the manifest block.
	Name string

	// Input is the path of the blueprint descriptor file.
	Input string

	// Horizon is the tick budget handed to the search engine.
	Horizon int

	// Mode selects the aggregate; Top applies in ModeProduct only.
	Mode Mode
	Top  int

	// Expected, when non-nil, is the golden answer to verify against.
	Expected *int
}

// manifestHCL mirrors the top-level manifest structure for decoding.
type manifestHCL struct {
	Runs []runHCL `hcl:"run,block"`
}

// runHCL mirrors one run block; optional attributes decode into pointers
// or carry the ",optional" flag.
type runHCL struct {
	Name     string  `hcl:"name,label"`
	Input    string  `hcl:"input"`
	Horizon  int     `hcl:"horizon"`
	Mode     *string `hcl:"mode,optional"`
	Top      *int    `hcl:"top,optional"`
	Expected *int    `hcl:"expected,optional"`
}

// ParseManifest decodes manifest source into resolved runs.
//
// Defaults: mode "sum"; top 3 (product mode only).
// Errors: ErrBadManifest (syntax, decoding, empty input path, horizon or
// top ≤ 0), ErrBadMode.
func ParseManifest(src []byte, filename string) ([]Run, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %v", ErrBadManifest, diags)
	}

	var mf manifestHCL
	diags = gohcl.DecodeBody(file.Body, nil, &mf)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %v", ErrBadManifest, diags)
	}

	runs := make([]Run, 0, len(mf.Runs))
	var rb runHCL
	for _, rb = range mf.Runs {
		run := Run{
			Name:     rb.Name,
			Input:    rb.Input,
			Horizon:  rb.Horizon,
			Mode:     ModeSum,
			Top:      defaultTop,
			Expected: rb.Expected,
		}
		if rb.Mode != nil {
			run.Mode = Mode(*rb.Mode)
		}
		if rb.Top != nil {
			run.Top = *rb.Top
		}

		if run.Input == "" || run.Horizon <= 0 || run.Top <= 0 {
			return nil, fmt.Errorf("%w: run %q", ErrBadManifest, run.Name)
		}
		switch run.Mode {
		case ModeSum, ModeProduct:
			// ok
		default:
			return nil, fmt.Errorf("%w: run %q: %q", ErrBadMode, run.Name, run.Mode)
		}

		runs = append(runs, run)
	}

	return runs, nil
}

// LoadManifest reads and parses a manifest file from disk.
func LoadManifest(path string) ([]Run, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("runner: read manifest: %w", err)
	}

	return ParseManifest(src, path)
}

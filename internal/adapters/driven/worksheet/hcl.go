// Package worksheet loads reaction worksheets written in HCL.
//
// A worksheet is a list of named reaction blocks:
//
//	reaction "water" {
//	  equation = "H2 + O2 -> H2O"
//	  moles    = [2, 1]
//	}
//
// The moles attribute is optional. When present it must convert to a
// list of numbers, one per reactant.
package worksheet

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
	"github.com/custodia-labs/chemeq-cli/internal/core/ports/driven"
	"github.com/custodia-labs/chemeq-cli/internal/logger"
)

// Verify interface compliance.
var _ driven.WorksheetLoader = (*Loader)(nil)

// hclWorksheetFile is the top-level structure of a worksheet for decoding.
type hclWorksheetFile struct {
	Reactions []*hclReaction `hcl:"reaction,block"`
}

type hclReaction struct {
	Name     string         `hcl:"name,label"`
	Equation string         `hcl:"equation"`
	Moles    hcl.Expression `hcl:"moles,optional"`
}

// Loader parses worksheet files.
type Loader struct{}

// NewLoader creates a worksheet loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the worksheet at path. A fresh parser is used for every call
// so that a watched file is always re-read from disk.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Worksheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parsing %s: %s", domain.ErrInvalidInput, path, diags.Error())
	}

	var parsed hclWorksheetFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w: decoding %s: %s", domain.ErrInvalidInput, path, diags.Error())
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	ws := &domain.Worksheet{
		Path:    abs,
		Entries: make([]domain.WorksheetEntry, 0, len(parsed.Reactions)),
	}

	seen := make(map[string]bool, len(parsed.Reactions))
	for _, r := range parsed.Reactions {
		if seen[r.Name] {
			return nil, fmt.Errorf("%w: %s: duplicate reaction %q", domain.ErrInvalidInput, path, r.Name)
		}
		seen[r.Name] = true

		moles, err := decodeMoles(r.Moles)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: reaction %q: %s", domain.ErrInvalidInput, path, r.Name, err.Error())
		}
		ws.Entries = append(ws.Entries, domain.WorksheetEntry{
			Name:     r.Name,
			Equation: r.Equation,
			Moles:    moles,
		})
	}

	logger.Debug("worksheet %s: %d reactions", abs, len(ws.Entries))
	return ws, nil
}

// decodeMoles evaluates the optional moles expression.
// A missing or null attribute yields nil.
func decodeMoles(expr hcl.Expression) ([]float64, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("moles must be a constant list")
	}

	list, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("moles must be a list of numbers: %w", err)
	}
	if list.LengthInt() == 0 {
		return nil, nil
	}

	var moles []float64
	if err := gocty.FromCtyValue(list, &moles); err != nil {
		return nil, fmt.Errorf("moles: %w", err)
	}
	return moles, nil
}

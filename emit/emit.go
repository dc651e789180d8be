// Package emit generates the derived artifacts of a validated registry: the
// protobuf wire-schema file, a markdown table, and a CSV export. Emitters
// run only after the validation pipeline reports overall pass and always
// consume the record list sorted ascending by ID; none of them feed back
// into pass/fail decisions.
package emit

import (
	"fmt"
	"io"

	"go.uber.org/multierr"

	"github.com/subseawireless/paramcheck/registry"
)

// Request selects which artifacts to produce. Zero-valued fields are
// skipped; a missing artifact flag is not an error.
type Request struct {
	// ProtoPath, when set, receives the wire-schema artifact.
	ProtoPath string

	// CSVPath, when set, receives the CSV artifact.
	CSVPath string

	// Table, when set, writes the markdown table to Out.
	Table bool

	// Out receives the markdown table and the per-artifact announcement
	// lines. Nil silences both.
	Out io.Writer

	// SourcePath names the registry file in announcement lines.
	SourcePath string
}

// All produces every requested artifact, in the order proto, table, CSV.
// Emitters are independent, so one failing does not stop the others; the
// failures are combined into a single error.
func All(params []*registry.Parameter, req Request) error {
	var errs error
	if req.ProtoPath != "" {
		err := WriteProtoFile(req.ProtoPath, params)
		errs = multierr.Append(errs, err)
		if err == nil && req.Out != nil {
			fmt.Fprintf(req.Out, "\n### Protobuf\nGenerated %s from %s\n", req.ProtoPath, req.SourcePath)
		}
	}
	if req.Table && req.Out != nil {
		errs = multierr.Append(errs, Table(req.Out, params))
	}
	if req.CSVPath != "" {
		err := WriteCSVFile(req.CSVPath, params)
		errs = multierr.Append(errs, err)
		if err == nil && req.Out != nil {
			fmt.Fprintf(req.Out, "\n### CSV File\nGenerated %s from %s\n", req.CSVPath, req.SourcePath)
		}
	}
	return errs
}

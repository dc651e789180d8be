// Package paramcheck validates a protocol parameter registry against a JSON
// Schema, enforces the cross-record invariants the schema cannot express,
// and optionally repairs the registry in place.
//
// The pipeline runs in fixed stages: schema conformance over the raw record
// list, the flag-gated repair passes (default-access backfill, ID
// auto-numbering), the identifier invariant checks over the possibly
// repaired data, and finally the decision gate that combines the two
// reports, persists repairs on overall pass, and clears the way for
// artifact emission.
//
// # Quick start
//
//	runner, err := paramcheck.New(paramcheck.WithAutoNumbering())
//	if err != nil { ... }
//	result, err := runner.Run(ctx, "parameters.json", "parameters.schema.json")
//	if err != nil { ... }
//	emit.All(result.Doc.SortedByID(), emit.Request{ProtoPath: "parameters.proto"})
//
// The individual checks are pure: they return result lists and never decide
// policy. Immediate-exit versus accumulate-and-report is applied here, in
// one place, by Run.
package paramcheck

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/subseawireless/paramcheck/registry"
	"github.com/subseawireless/paramcheck/schema"
)

// Runner executes the validation pipeline with a fixed configuration.
type Runner struct {
	cfg config
}

// New creates a Runner from the given options.
func New(opts ...Option) (*Runner, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Runner{cfg: cfg}, nil
}

// Run loads the registry and schema from disk, validates, repairs, and — on
// overall pass with repairs applied — writes the registry back to
// registryPath. The returned error is nil exactly when the run passed;
// validation failures surface as ErrSchemaViolations and/or ErrTestFailures,
// load failures as wrapped I/O or parse errors.
//
// Repairs applied in memory before an immediate-exit failure are discarded:
// persistence only ever happens after the decision gate confirms overall
// pass.
func (r *Runner) Run(ctx context.Context, registryPath, schemaPath string) (*Result, error) {
	doc, err := registry.ReadFile(registryPath)
	if err != nil {
		fmt.Fprintf(r.cfg.out, "::error::Failed to load JSON file '%s': %v\n", registryPath, err)
		return nil, err
	}
	r.debug("registry loaded", "path", registryPath, "parameters", len(doc.All))

	schemaJSON, err := os.ReadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(r.cfg.out, "::error::Failed to load JSON schema file '%s': %v\n", schemaPath, err)
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	validator, err := schema.NewValidator(schemaJSON)
	if err != nil {
		fmt.Fprintf(r.cfg.out, "::error::Failed to load JSON schema file '%s': %v\n", schemaPath, err)
		return nil, err
	}
	r.debug("schema compiled", "path", schemaPath)

	result, err := r.validate(ctx, doc, validator, registryPath, schemaPath)
	if err != nil {
		return result, err
	}

	if result.Mutated {
		fmt.Fprintf(r.cfg.out, "Overwriting %s\n", registryPath)
		if err := doc.WriteFile(registryPath); err != nil {
			return result, fmt.Errorf("failed to rewrite registry: %w", err)
		}
		result.Persisted = true
		r.debug("registry persisted", "path", registryPath)
	}
	return result, nil
}

// Validate runs the pipeline over in-memory documents, without persistence.
// Callers that want repairs written back check Result.Mutated themselves.
func Validate(ctx context.Context, registryJSON, schemaJSON []byte, opts ...Option) (*Result, error) {
	runner, err := New(opts...)
	if err != nil {
		return nil, err
	}
	doc, err := registry.Parse(registryJSON)
	if err != nil {
		return nil, err
	}
	validator, err := schema.NewValidator(schemaJSON)
	if err != nil {
		return nil, err
	}
	return runner.validate(ctx, doc, validator, "registry", "schema")
}

// validate is the aggregator: it drives the schema pass, the repair passes
// and the invariant checks, prints each section as it completes, and applies
// the immediate-exit policy between passes.
func (r *Runner) validate(ctx context.Context, doc *registry.Document, validator *schema.Validator, file, schemaFile string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Doc: doc}

	violations, err := validator.Validate(doc.RawAll())
	if err != nil {
		fmt.Fprintf(r.cfg.out, "::error::Failed to validate '%s': %v\n", file, err)
		return nil, err
	}
	result.Violations = violations
	printSchemaReport(r.cfg.out, file, schemaFile, violations)
	if len(violations) > 0 && r.cfg.immediateExit {
		return result, ErrSchemaViolations
	}

	// Repair passes. Mutations are tracked so the caller knows the file
	// needs rewriting; nothing is persisted before the gate passes.
	if r.cfg.backfill {
		for _, p := range registry.BackfillAccess(doc) {
			fmt.Fprintf(r.cfg.out, "Adding default readonly access for %s:%s\n", p.ID.String(), p.Description)
			result.Mutated = true
		}
	} else {
		for _, p := range registry.MissingAccess(doc) {
			result.Tests = append(result.Tests, TestResult{
				Description: fmt.Sprintf("No access specified for parameter %s:%s", p.ID.String(), p.Description),
			})
		}
	}

	if r.cfg.autoNumber && registry.HasUnassigned(doc) {
		start, count := registry.AutoNumber(doc)
		fmt.Fprintf(r.cfg.out, "\n### Auto-renumbering from %d to new IDs starting at %d\n", registry.SentinelID, start)
		r.debug("auto-numbering applied", "start", start, "count", count)
		result.Mutated = true
	}

	// Invariant checks run on the possibly repaired data.
	idReport := registry.CheckIDs(doc)
	if len(idReport.Excluded) > 0 {
		result.Tests = append(result.Tests, TestResult{
			Description: "Invalid ID in parameter, should result in schema fail above",
		})
		for _, p := range idReport.Excluded {
			result.Tests = append(result.Tests, TestResult{
				Description: fmt.Sprintf(" -- Invalid ID in %s:%s (%s)", p.ID.String(), p.Name, p.Description),
			})
		}
	}
	for _, dup := range idReport.Duplicates {
		result.Tests = append(result.Tests, TestResult{
			Description: fmt.Sprintf("Duplicate ID %d", dup),
		})
	}
	if idReport.OK() {
		result.Tests = append(result.Tests, TestResult{Description: "Duplicate IDs", Pass: true})
	}

	if failed := printTestReport(r.cfg.out, result.Tests); failed {
		if r.cfg.immediateExit {
			return result, ErrTestFailures
		}
		fmt.Fprintln(r.cfg.out, "Custom tests fail")
	} else {
		fmt.Fprintln(r.cfg.out, "✅ Custom tests pass")
	}

	if !result.Pass() {
		var errs []error
		if len(result.Violations) > 0 {
			errs = append(errs, ErrSchemaViolations)
		}
		if result.failedTests() > 0 {
			errs = append(errs, ErrTestFailures)
		}
		return result, errors.Join(errs...)
	}

	printSummary(r.cfg.out, len(doc.All), doc.HighestID())
	return result, nil
}

func (r *Runner) debug(msg string, args ...any) {
	if r.cfg.logger != nil {
		r.cfg.logger.Debug(msg, args...)
	}
}

package paramcheck

import (
	"fmt"
	"io"

	"github.com/subseawireless/paramcheck/internal/mdtable"
	"github.com/subseawireless/paramcheck/schema"
)

// Report rendering. Each section is printed as soon as its pass completes so
// that an immediate-exit run still shows everything found up to the failure.

func printSchemaReport(w io.Writer, file, schemaFile string, violations []schema.Violation) {
	fmt.Fprintln(w, "\n### Schema Validation Results")
	if len(violations) == 0 {
		fmt.Fprintf(w, "✅ %s validated against %s\n", file, schemaFile)
		return
	}

	rows := make([][]string, len(violations))
	for i, v := range violations {
		rows[i] = []string{v.Path, v.Message, v.Value}
	}
	fmt.Fprint(w, mdtable.Render([]string{"Path", "Message", "Value"}, rows))
	fmt.Fprintf(w, "Schema validation failed: %s is not valid against schema defined in %s\n", file, schemaFile)
}

// printTestReport renders the custom test table and reports whether any test
// failed. The pass/fail trailer is the caller's job: under immediate exit the
// run stops right after the table.
func printTestReport(w io.Writer, tests []TestResult) (failed bool) {
	fmt.Fprintln(w, "\n### Custom Tests")
	rows := make([][]string, len(tests))
	for i, t := range tests {
		rows[i] = []string{t.Description, t.Status()}
		if !t.Pass {
			failed = true
		}
	}
	fmt.Fprint(w, mdtable.Render([]string{"Test", "Result"}, rows))
	return failed
}

func printSummary(w io.Writer, count int, maxID int64) {
	fmt.Fprintf(w, "  - Parameters defined: %d\n", count)
	fmt.Fprintf(w, "  - Highest ID defined: %d\n", maxID)
}

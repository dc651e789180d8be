package paramcheck

import (
	"github.com/subseawireless/paramcheck/registry"
	"github.com/subseawireless/paramcheck/schema"
)

// TestResult is the outcome of one custom invariant test. It is a separate
// shape from schema.Violation on purpose: violations carry a location path
// and offending value, test results only a description and a verdict, and
// the two lists meet only in the decision gate.
type TestResult struct {
	Description string
	Pass        bool
}

// Status renders the verdict for report tables.
func (t TestResult) Status() string {
	if t.Pass {
		return "PASS"
	}
	return "FAIL"
}

// Result is the consolidated outcome of a validation run.
type Result struct {
	// Violations holds the schema conformance report, ordered by path.
	Violations []schema.Violation

	// Tests holds the custom invariant report, in check order.
	Tests []TestResult

	// Doc is the registry after any in-memory repairs.
	Doc *registry.Document

	// Mutated reports whether a repair changed the registry in memory.
	Mutated bool

	// Persisted reports whether the repaired registry was written back.
	Persisted bool
}

// Pass reports overall success: zero schema violations and zero failing
// custom tests.
func (r *Result) Pass() bool {
	if len(r.Violations) > 0 {
		return false
	}
	for _, t := range r.Tests {
		if !t.Pass {
			return false
		}
	}
	return true
}

// failedTests counts the failing custom tests.
func (r *Result) failedTests() int {
	n := 0
	for _, t := range r.Tests {
		if !t.Pass {
			n++
		}
	}
	return n
}

package paramcheck

import "errors"

// Sentinel errors for the two independent failure reports the decision gate
// combines. Fatal load and parse failures are returned wrapped with context
// instead of as sentinels.
var (
	// ErrSchemaViolations indicates the registry did not conform to the schema.
	ErrSchemaViolations = errors.New("schema validation failed")

	// ErrTestFailures indicates one or more custom invariant tests failed.
	ErrTestFailures = errors.New("custom tests failed")
)

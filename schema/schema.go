// Package schema runs the registry record list through a JSON Schema
// (draft-7) structural validator and reports every violation found, never
// just the first. The schema language itself is opaque to this package; the
// heavy lifting is done by github.com/xeipuuv/gojsonschema.
package schema

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// RootPath is the location reported for violations at the top level of the
// record list.
const RootPath = "root"

// Violation is one structural non-conformance: where it is, what is wrong,
// and the offending value as found in the document.
type Violation struct {
	// Path is the dotted index/field path into the record list ("3.id"),
	// or RootPath for the list itself.
	Path string

	// Message is the validator's human-readable description.
	Message string

	// Value renders the offending document fragment.
	Value string
}

// Validator validates raw registry data against a compiled schema document.
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidator compiles a schema document. A schema that does not compile is
// a fatal error; there is nothing useful to validate against.
func NewValidator(schemaJSON []byte) (*Validator, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &Validator{schema: s}, nil
}

// Validate checks the raw record list against the schema and returns every
// violation, ordered by location path. A nil slice means full conformance.
// The pass is read-only; it never touches the data.
func (v *Validator) Validate(recordsJSON []byte) ([]Violation, error) {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(recordsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to validate: %w", err)
	}

	var violations []Violation
	for _, re := range result.Errors() {
		violations = append(violations, Violation{
			Path:    violationPath(re),
			Message: re.Description(),
			Value:   renderValue(re.Value()),
		})
	}
	sortViolations(violations)
	return violations, nil
}

func violationPath(re gojsonschema.ResultError) string {
	field := re.Field()
	if field == gojsonschema.STRING_CONTEXT_ROOT || field == "" {
		return RootPath
	}
	return field
}

// renderValue produces a compact representation of the offending value for
// report tables. JSON rendering keeps maps and slices readable; anything
// that will not marshal falls back to fmt.
func renderValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// sortViolations orders by path, comparing dot-separated segments
// element-wise with numeric segments compared as numbers, so "2.name" sorts
// before "10.id" and a shorter path sorts before its extensions. Root-level
// violations come first. Ties keep the validator's message order stable.
func sortViolations(violations []Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		return comparePaths(violations[i].Path, violations[j].Path) < 0
	})
}

func comparePaths(a, b string) int {
	if a == b {
		return 0
	}
	if a == RootPath {
		return -1
	}
	if b == RootPath {
		return 1
	}

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareSegments(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return len(as) - len(bs)
}

func compareSegments(a, b string) int {
	an, aerr := strconv.Atoi(a)
	bn, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		return an - bn
	case aerr == nil:
		// Numeric segments (list indices) sort before field names.
		return -1
	case berr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

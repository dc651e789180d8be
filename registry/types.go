package registry

// Parameter is a single data point in the protocol catalogue. Field names
// match the registry document; the JSON schema supplied at validation time is
// the authority on which combinations are legal.
type Parameter struct {
	// ID is the wire identifier, unique across the registry once validated.
	ID ID `json:"id"`

	// Name is the symbolic identifier, used verbatim as the protobuf enum label.
	Name string `json:"name"`

	// Description is free text shown in generated tables.
	Description string `json:"description"`

	// Representation is the declared value kind (e.g. "integer", "string").
	Representation string `json:"representation,omitempty"`

	// Minimum and Maximum are optional numeric bounds.
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Pattern is an optional string constraint.
	Pattern string `json:"pattern,omitempty"`

	// ValidIntegers and ValidStrings enumerate the legal values when set.
	ValidIntegers []int64  `json:"valid integers,omitempty"`
	ValidStrings  []string `json:"valid strings,omitempty"`

	// Access is the capability matrix; nil means the record does not specify
	// one and is subject to default-access backfill.
	Access *Access `json:"access,omitempty"`

	// Optional maps named optional behaviors to values, in document order.
	Optional OptionalSet `json:"optional,omitempty"`
}

// Access is the two-interface capability matrix of a parameter.
type Access struct {
	Dry AccessInterface `json:"dry"`
	Wet AccessInterface `json:"wet"`
}

// AccessInterface holds the per-direction capability flags for one interface.
// The option/auth sub-flags qualify the corresponding direction.
type AccessInterface struct {
	Read        bool `json:"read,omitempty"`
	Write       bool `json:"write,omitempty"`
	ReadOption  bool `json:"read_option,omitempty"`
	WriteOption bool `json:"write_option,omitempty"`
	ReadAuth    bool `json:"read_auth,omitempty"`
	WriteAuth   bool `json:"write_auth,omitempty"`
}

// DefaultAccess returns the backfill default: read-only on both interfaces.
func DefaultAccess() *Access {
	return &Access{
		Dry: AccessInterface{Read: true},
		Wet: AccessInterface{Read: true},
	}
}

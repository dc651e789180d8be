package registry

import (
	"encoding/json"
	"strconv"
)

// SentinelID is the reserved identifier meaning "not yet assigned". It is
// within the limits of the schema but never used as a real ID; auto-numbering
// replaces it with freshly minted values.
const SentinelID = 255

type idState int

const (
	// idInvalid is the zero state so a Parameter whose document entry has no
	// "id" key at all reports an invalid ID rather than a spurious zero.
	idInvalid idState = iota
	idAssigned
	idUnassigned
)

// ID is a parameter identifier. The wire form is a plain JSON integer, with
// SentinelID standing in for "unassigned"; internally the sentinel is kept as
// a distinct state so it cannot be confused with a deliberately chosen value.
//
// A missing or non-integer "id" in the document does not abort decoding.
// It yields an invalid ID carrying the original raw bytes, so invariant
// checking can report the record and carry on with the rest of the registry.
type ID struct {
	value int64
	state idState
	raw   json.RawMessage
}

// NewID returns an assigned ID, or the unassigned ID when n == SentinelID.
func NewID(n int64) ID {
	if n == SentinelID {
		return UnassignedID()
	}
	return ID{value: n, state: idAssigned}
}

// UnassignedID returns the ID that serializes as the sentinel value.
func UnassignedID() ID {
	return ID{state: idUnassigned}
}

// Assigned reports whether the ID holds a concrete, non-sentinel value.
func (id ID) Assigned() bool { return id.state == idAssigned }

// Unassigned reports whether the ID is the sentinel placeholder.
func (id ID) Unassigned() bool { return id.state == idUnassigned }

// Valid reports whether the ID decoded as an integer (assigned or sentinel).
func (id ID) Valid() bool { return id.state == idAssigned || id.state == idUnassigned }

// Int returns the concrete value and true for an assigned ID. For the
// sentinel it returns SentinelID and true, since that is the integer the
// document carries. Invalid IDs return 0 and false.
func (id ID) Int() (int64, bool) {
	switch id.state {
	case idAssigned:
		return id.value, true
	case idUnassigned:
		return SentinelID, true
	default:
		return 0, false
	}
}

// String renders the ID the way it appears in the document: the integer for
// valid IDs, the original raw JSON for invalid ones, "null" when absent.
func (id ID) String() string {
	if n, ok := id.Int(); ok {
		return strconv.FormatInt(n, 10)
	}
	if len(id.raw) > 0 {
		return string(id.raw)
	}
	return "null"
}

// MarshalJSON serializes assigned IDs as their value and the sentinel as
// SentinelID. Invalid IDs re-emit the bytes they were decoded from so a
// failed registry round-trips without silently rewriting bad data.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, ok := id.Int(); ok {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	if len(id.raw) > 0 {
		return id.raw, nil
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts any JSON value. Integers become assigned or
// unassigned IDs; everything else is preserved as an invalid ID for the
// invariant checker to report.
func (id *ID) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*id = NewID(n)
		return nil
	}
	*id = ID{state: idInvalid, raw: append(json.RawMessage(nil), data...)}
	return nil
}

package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// registryPermissions is the file mode used when a repaired registry is
// written back. The registry is source-controlled data, so world-readable.
const registryPermissions = 0o644

// Document is a parameter registry: the wrapping container with its single
// "all" list. RawAll keeps the undecoded list bytes so the schema checker can
// validate exactly what the document said, not what decoding made of it.
type Document struct {
	All []*Parameter

	rawAll json.RawMessage
}

// ReadFile reads and parses a registry document from the given path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}
	return Parse(data)
}

// Parse parses registry JSON data. A document without the "all" list is a
// parse failure: the container key is the one piece of structure the loader
// itself insists on.
//
// Wrong-typed fields are NOT parse failures. The decoder fills in what it
// can and the conformance pass reports the mismatches over the raw bytes, so
// a registry with a string where a number belongs still gets its full
// violation table and its custom tests run.
func Parse(data []byte) (*Document, error) {
	var wrapper struct {
		All json.RawMessage `json:"all"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to parse registry JSON: %w", err)
	}
	if wrapper.All == nil {
		return nil, fmt.Errorf("failed to parse registry JSON: missing \"all\" list")
	}

	var params []*Parameter
	if err := json.Unmarshal(wrapper.All, &params); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("failed to parse registry JSON: %w", err)
		}
	}
	for i, p := range params {
		// A list element that is not an object at all decodes to nothing;
		// keep a placeholder so the record count matches the document and
		// the ID checks can report it.
		if p == nil {
			params[i] = &Parameter{}
		}
	}

	return &Document{All: params, rawAll: wrapper.All}, nil
}

// RawAll returns the undecoded bytes of the "all" list as loaded.
func (d *Document) RawAll() json.RawMessage {
	return d.rawAll
}

// WriteFile writes the registry to the given path with deterministic
// formatting. Record order is preserved; key order within each record is
// canonical rather than whatever the original file used.
func (d *Document) WriteFile(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, registryPermissions)
}

// WriteTo writes the registry to the given writer.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	data, err := d.Marshal()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Marshal serializes the registry with its "all" wrapper, four-space indented
// to match the files the registry's maintainers hand-edit.
func (d *Document) Marshal() ([]byte, error) {
	wrapper := struct {
		All []*Parameter `json:"all"`
	}{All: d.All}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(wrapper); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MaxID returns the highest assigned ID, or -1 when no record has one. The
// sentinel does not count: auto-numbering mints from here and must never
// start above values that are still placeholders.
func (d *Document) MaxID() int64 {
	maxID := int64(-1)
	for _, p := range d.All {
		if !p.ID.Assigned() {
			continue
		}
		if n, _ := p.ID.Int(); n > maxID {
			maxID = n
		}
	}
	return maxID
}

// HighestID returns the highest ID as it appears on the wire, sentinel
// included, or -1 for a registry with no valid IDs. This is the number the
// pass summary reports.
func (d *Document) HighestID() int64 {
	maxID := int64(-1)
	for _, p := range d.All {
		if n, ok := p.ID.Int(); ok && n > maxID {
			maxID = n
		}
	}
	return maxID
}

// SortedByID returns a copy of the record list sorted ascending by integer
// ID, for artifact emission. The document itself keeps input order.
func (d *Document) SortedByID() []*Parameter {
	out := make([]*Parameter, len(d.All))
	copy(out, d.All)
	sortParams(out)
	return out
}

func sortParams(params []*Parameter) {
	sort.SliceStable(params, func(i, j int) bool {
		a, aok := params[i].ID.Int()
		b, bok := params[j].ID.Int()
		if aok != bok {
			// Invalid IDs sort last; emission only ever sees valid ones.
			return aok
		}
		return a < b
	})
}

// Exists returns true if a registry file exists at the given path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

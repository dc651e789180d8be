package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OptionalValue is one named optional behavior of a parameter.
type OptionalValue struct {
	Name  string
	Value any
}

// OptionalSet is the "optional" object of a parameter, kept as a slice so the
// document's key order survives a load/save round trip and generated tables
// list behaviors in the order the author wrote them.
type OptionalSet []OptionalValue

// MarshalJSON writes the set back as a JSON object in its original order.
func (s OptionalSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ov := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ov.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(ov.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving key order. A value that is
// not an object leaves the set empty instead of erroring: an error here would
// abort decoding the whole document, and shape mismatches are the
// conformance pass's finding to report.
func (s *OptionalSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		*s = nil
		return nil
	}

	out := OptionalSet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("optional: expected key, got %v", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		out = append(out, OptionalValue{Name: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}

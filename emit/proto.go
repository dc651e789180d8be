package emit

import (
	"fmt"
	"io"
	"os"

	"github.com/subseawireless/paramcheck/registry"
)

// The surrounding boilerplate is fixed text consumed by downstream protobuf
// builds; only the enum body between header and footer is derived from the
// registry. Do not reflow it — existing consumers match it byte for byte.

const protoHeader = `
// This file is auto-generated by the validation action when parameters are updated
// DO NOT EDIT IT MANUALLY
syntax = "proto3";
package subseawireless;
option java_package = "com.subseawireless.parameters";

message Parameter{
  enum identifier{
    INVALID = 0;
`

const protoFooter = `  }
  identifier id = 1;
  bool bool = 2;
  int32 integer = 3;
  string string = 32;
}

message Message{
  int32 source = 1;
  int32 target = 2;
  repeated int32 requests = 3;  // List of parameter IDs requested
  repeated Parameter parameters = 4; // List of parameters sent
  repeated Parameter responses = 5; // List of parameters sent as response
}
        `

// Proto writes the wire-schema artifact: one enum entry per record in the
// given order, which callers provide sorted ascending by ID. proto3 requires
// enums to start at zero; zero is never a real parameter ID, so the fixed
// INVALID = 0 entry fills that slot.
func Proto(w io.Writer, params []*registry.Parameter) error {
	if _, err := io.WriteString(w, protoHeader); err != nil {
		return err
	}
	for _, p := range params {
		if _, err := fmt.Fprintf(w, "    %s = %s;\n", p.Name, p.ID.String()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, protoFooter)
	return err
}

// WriteProtoFile writes the wire-schema artifact to the given path.
func WriteProtoFile(path string, params []*registry.Parameter) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create proto file: %w", err)
	}
	if err := Proto(f, params); err != nil {
		f.Close()
		return fmt.Errorf("failed to write proto file: %w", err)
	}
	return f.Close()
}

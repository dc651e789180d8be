package registry

import (
	"encoding/json"
	"testing"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name           string
		json           string
		wantAssigned   bool
		wantUnassigned bool
		wantValue      int64
		wantString     string
	}{
		{
			name:         "assigned integer",
			json:         `{"id": 7}`,
			wantAssigned: true,
			wantValue:    7,
			wantString:   "7",
		},
		{
			name:         "zero is a real id",
			json:         `{"id": 0}`,
			wantAssigned: true,
			wantValue:    0,
			wantString:   "0",
		},
		{
			name:           "sentinel becomes unassigned",
			json:           `{"id": 255}`,
			wantUnassigned: true,
			wantValue:      255,
			wantString:     "255",
		},
		{
			name:       "string id is invalid",
			json:       `{"id": "seven"}`,
			wantString: `"seven"`,
		},
		{
			name:       "float id is invalid",
			json:       `{"id": 1.5}`,
			wantString: "1.5",
		},
		{
			name:       "missing id is invalid",
			json:       `{}`,
			wantString: "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Parameter
			if err := json.Unmarshal([]byte(tt.json), &p); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got := p.ID.Assigned(); got != tt.wantAssigned {
				t.Errorf("Assigned() = %v, want %v", got, tt.wantAssigned)
			}
			if got := p.ID.Unassigned(); got != tt.wantUnassigned {
				t.Errorf("Unassigned() = %v, want %v", got, tt.wantUnassigned)
			}
			if tt.wantAssigned || tt.wantUnassigned {
				n, ok := p.ID.Int()
				if !ok || n != tt.wantValue {
					t.Errorf("Int() = (%d, %v), want (%d, true)", n, ok, tt.wantValue)
				}
			} else if _, ok := p.ID.Int(); ok {
				t.Error("Int() ok = true for invalid ID")
			}
			if got := p.ID.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
		})
	}
}

func TestID_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		want string
	}{
		{name: "assigned", id: NewID(42), want: "42"},
		{name: "unassigned serializes as sentinel", id: UnassignedID(), want: "255"},
		{name: "zero value is null", id: ID{}, want: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.id)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestID_InvalidRoundTrip(t *testing.T) {
	// A registry with a bad id must re-emit the original bytes unchanged.
	var id ID
	if err := json.Unmarshal([]byte(`"oops"`), &id); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"oops"` {
		t.Errorf("round trip = %s, want %q", data, `"oops"`)
	}
}

func TestNewID_SentinelCollapsesToUnassigned(t *testing.T) {
	id := NewID(SentinelID)
	if !id.Unassigned() {
		t.Error("NewID(SentinelID).Unassigned() = false, want true")
	}
}

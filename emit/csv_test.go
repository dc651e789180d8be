package emit

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csvRows(t *testing.T, registryJSON string) [][]string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, params(t, registryJSON)))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSV_Header(t *testing.T) {
	rows := csvRows(t, `{"all": []}`)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{
		"ID", "Name", "Description", "Representation",
		"Min", "Max",
		"Pattern", "Valid Integers", "Valid Strings",
		"Dry Read", "Dry Write", "Wet Read", "Wet Write",
		"Optionals",
	}, rows[0])
}

func TestCSV_Fields(t *testing.T) {
	rows := csvRows(t, `{"all": [{
		"id": 3,
		"name": "DEPTH",
		"description": "Depth below surface",
		"representation": "integer",
		"minimum": 0,
		"maximum": 11000,
		"pattern": "^d+$",
		"valid integers": [1, 2, 3],
		"valid strings": ["a", "b"],
		"optional": {"persist": true, "notify": false}
	}]}`)
	require.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, "3", row[0])
	assert.Equal(t, "DEPTH", row[1])
	assert.Equal(t, "Depth below surface", row[2])
	assert.Equal(t, "integer", row[3])
	assert.Equal(t, "0", row[4])
	assert.Equal(t, "11000", row[5])
	assert.Equal(t, "^d+$", row[6])
	assert.Equal(t, "1,2,3", row[7])
	assert.Equal(t, "a,b", row[8])
	assert.Equal(t, "Persist , Notify ", row[13])
}

func TestCSV_AccessEncoding(t *testing.T) {
	tests := []struct {
		name   string
		access string
		want   []string // dry read, dry write, wet read, wet write
	}{
		{
			name:   "no access",
			access: ``,
			want:   []string{"", "", "", ""},
		},
		{
			name:   "plain read both interfaces",
			access: `"access": {"dry": {"read": true}, "wet": {"read": true}}`,
			want:   []string{"Yes", "", "Yes", ""},
		},
		{
			name:   "write only wet",
			access: `"access": {"dry": {}, "wet": {"write": true}}`,
			want:   []string{"", "", "", "Yes"},
		},
		{
			name:   "read option flag",
			access: `"access": {"dry": {"read": true, "read_option": true}, "wet": {}}`,
			want:   []string{"Opt ", "", "", ""},
		},
		{
			name:   "read auth flag",
			access: `"access": {"dry": {"read": true, "read_auth": true}, "wet": {}}`,
			want:   []string{"Auth", "", "", ""},
		},
		{
			name:   "option and auth compose",
			access: `"access": {"dry": {"read": true, "read_option": true, "read_auth": true}, "wet": {}}`,
			want:   []string{"Opt Auth", "", "", ""},
		},
		{
			// The option/auth qualifiers come from the dry sub-object even
			// for the wet columns; existing consumers rely on it.
			name:   "wet columns use dry qualifiers",
			access: `"access": {"dry": {"write_auth": true}, "wet": {"write": true}}`,
			want:   []string{"", "", "", "Auth"},
		},
		{
			name:   "false direction is empty",
			access: `"access": {"dry": {"read": false}, "wet": {"read": true}}`,
			want:   []string{"", "", "Yes", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := `{"id": 1, "name": "A", "description": "d"`
			if tt.access != "" {
				record += ", " + tt.access
			}
			record += `}`

			rows := csvRows(t, `{"all": [`+record+`]}`)
			require.Len(t, rows, 2)
			assert.Equal(t, tt.want, rows[1][9:13])
		})
	}
}

package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/subseawireless/paramcheck/internal/mdtable"
	"github.com/subseawireless/paramcheck/registry"
)

// absent marks a field the record does not carry.
const absent = "—"

var tableHeader = []string{
	"ID", "Name", "Description", "Representation", "Min", "Max",
	"Pattern", "Valid Ints", "Valid Strings",
	"Dry Access", "Wet Access", "Optionals",
}

// Table writes the human-readable markdown table of the registry. Callers
// provide the records sorted ascending by ID.
func Table(w io.Writer, params []*registry.Parameter) error {
	rows := make([][]string, len(params))
	for i, p := range params {
		rows[i] = tableRow(p)
	}
	_, err := io.WriteString(w, mdtable.Render(tableHeader, rows))
	return err
}

func tableRow(p *registry.Parameter) []string {
	return []string{
		p.ID.String(),
		p.Name,
		p.Description,
		orAbsent(p.Representation),
		boundOrAbsent(p.Minimum),
		boundOrAbsent(p.Maximum),
		orAbsent(p.Pattern),
		listOrAbsent(joinInts(p.ValidIntegers, ", "), p.ValidIntegers == nil),
		listOrAbsent(strings.Join(p.ValidStrings, ", "), p.ValidStrings == nil),
		accessSummary(p.Access, dry),
		accessSummary(p.Access, wet),
		tableOptionals(p.Optional),
	}
}

// accessSummary renders the read/write state of one interface, with absent
// flags shown as dashes rather than false.
func accessSummary(a *registry.Access, i iface) string {
	if a == nil {
		return fmt.Sprintf("R: %s, W: %s", absent, absent)
	}
	ai := a.Dry
	if i == wet {
		ai = a.Wet
	}
	return fmt.Sprintf("R: %s, W: %s", flagOrAbsent(ai.Read), flagOrAbsent(ai.Write))
}

func tableOptionals(opts registry.OptionalSet) string {
	if opts == nil {
		return absent
	}
	parts := make([]string, len(opts))
	for i, ov := range opts {
		parts[i] = fmt.Sprintf("%s: %v", capitalize(ov.Name), ov.Value)
	}
	return strings.Join(parts, ", ")
}

func flagOrAbsent(set bool) string {
	if set {
		return "true"
	}
	return absent
}

func orAbsent(s string) string {
	if s == "" {
		return absent
	}
	return s
}

func boundOrAbsent(v *float64) string {
	if v == nil {
		return absent
	}
	return formatBound(v)
}

func listOrAbsent(joined string, missing bool) string {
	if missing {
		return absent
	}
	return joined
}

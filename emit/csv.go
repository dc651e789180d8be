package emit

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/subseawireless/paramcheck/registry"
)

// csvHeader is the fixed column order of the CSV artifact.
var csvHeader = []string{
	"ID", "Name", "Description", "Representation",
	"Min", "Max",
	"Pattern", "Valid Integers", "Valid Strings",
	"Dry Read", "Dry Write", "Wet Read", "Wet Write",
	"Optionals",
}

// CSV writes the CSV artifact. Callers provide the records sorted ascending
// by ID.
func CSV(w io.Writer, params []*registry.Parameter) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range params {
		if err := cw.Write(csvRow(p)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the CSV artifact to the given path.
func WriteCSVFile(path string, params []*registry.Parameter) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	if err := CSV(f, params); err != nil {
		f.Close()
		return fmt.Errorf("failed to write CSV file: %w", err)
	}
	return f.Close()
}

func csvRow(p *registry.Parameter) []string {
	return []string{
		p.ID.String(),
		p.Name,
		p.Description,
		p.Representation,
		formatBound(p.Minimum),
		formatBound(p.Maximum),
		p.Pattern,
		joinInts(p.ValidIntegers, ","),
		strings.Join(p.ValidStrings, ","),
		accessCell(p.Access, dry, read),
		accessCell(p.Access, dry, write),
		accessCell(p.Access, wet, read),
		accessCell(p.Access, wet, write),
		csvOptionals(p.Optional),
	}
}

type iface int

const (
	dry iface = iota
	wet
)

type direction int

const (
	read direction = iota
	write
)

// accessCell encodes one interface/direction pair. Empty when the direction
// is absent or false. Otherwise the option/auth qualifiers are taken from the
// dry sub-object regardless of which interface is being encoded — an
// asymmetry the existing consumers depend on, kept deliberately
// (confirmation pending with the standard's owner, see DESIGN.md).
func accessCell(a *registry.Access, i iface, d direction) string {
	if a == nil {
		return ""
	}

	ai := a.Dry
	if i == wet {
		ai = a.Wet
	}
	enabled := ai.Read
	if d == write {
		enabled = ai.Write
	}
	if !enabled {
		return ""
	}

	option, auth := a.Dry.ReadOption, a.Dry.ReadAuth
	if d == write {
		option, auth = a.Dry.WriteOption, a.Dry.WriteAuth
	}

	cell := ""
	if option {
		cell += "Opt "
	}
	if auth {
		cell += "Auth"
	}
	if cell == "" {
		cell = "Yes"
	}
	return cell
}

// csvOptionals lists the optional behavior names. Each entry carries a
// trailing space, matching the format already in circulation.
func csvOptionals(opts registry.OptionalSet) string {
	if opts == nil {
		return ""
	}
	parts := make([]string, len(opts))
	for i, ov := range opts {
		parts[i] = capitalize(ov.Name) + " "
	}
	return strings.Join(parts, ", ")
}

func joinInts(values []int64, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, sep)
}

func formatBound(v *float64) string {
	if v == nil {
		return ""
	}
	// 'f' keeps large bounds out of scientific notation.
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

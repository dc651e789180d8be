package registry

// IDReport is the outcome of the identifier invariant checks. It is plain
// data; turning it into pass/fail report lines is the caller's business.
type IDReport struct {
	// Clean holds the records whose ID decoded as an integer.
	Clean []*Parameter

	// Excluded holds the records with a missing or non-integer ID. They are
	// left out of duplicate analysis so one malformed record cannot poison
	// the rest of the checks.
	Excluded []*Parameter

	// Duplicates lists the ID values that occur more than once among the
	// clean records, in order of first occurrence.
	Duplicates []int64
}

// CheckIDs verifies identifier integrity over the (possibly repaired)
// registry. It partitions records into clean and excluded sets and counts
// duplicate occurrences among the clean ones. When auto-numbering has already
// resolved the sentinels nothing sentinel-valued remains to count; when it
// has not run, multiple unassigned records legitimately show up as a
// duplicate of the sentinel value.
func CheckIDs(d *Document) IDReport {
	var report IDReport
	for _, p := range d.All {
		if p.ID.Valid() {
			report.Clean = append(report.Clean, p)
		} else {
			report.Excluded = append(report.Excluded, p)
		}
	}

	counts := make(map[int64]int, len(report.Clean))
	var order []int64
	for _, p := range report.Clean {
		n, _ := p.ID.Int()
		if counts[n] == 0 {
			order = append(order, n)
		}
		counts[n]++
	}
	for _, n := range order {
		if counts[n] > 1 {
			report.Duplicates = append(report.Duplicates, n)
		}
	}
	return report
}

// OK reports whether every record passed: no exclusions and no duplicates.
func (r IDReport) OK() bool {
	return len(r.Excluded) == 0 && len(r.Duplicates) == 0
}

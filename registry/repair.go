package registry

// The repair passes are deliberately policy-free: they mutate the document
// and report what they touched, and the caller decides whether a missing
// access field is a repair or a test failure, and whether anything needs to
// be persisted.

// MissingAccess returns the records that carry no access matrix, in document
// order. Read-only companion to BackfillAccess for when backfill is disabled
// and the absence must be reported instead of repaired.
func MissingAccess(d *Document) []*Parameter {
	var out []*Parameter
	for _, p := range d.All {
		if p.Access == nil {
			out = append(out, p)
		}
	}
	return out
}

// BackfillAccess assigns the default read-only access matrix to every record
// lacking one and returns the records it touched. Records that already have
// an access field are never modified.
func BackfillAccess(d *Document) []*Parameter {
	var filled []*Parameter
	for _, p := range d.All {
		if p.Access != nil {
			continue
		}
		p.Access = DefaultAccess()
		filled = append(filled, p)
	}
	return filled
}

// AutoNumber replaces every unassigned (sentinel) ID with a freshly minted
// one. Numbering starts at one past the highest assigned ID — or at 0 when
// nothing is assigned yet — and counts up in document order, so new IDs never
// collide with existing ones or with each other. Running it again once no
// sentinel remains is a no-op.
//
// It returns the first newly assigned value and how many records were
// renumbered; count is 0 when there was nothing to do.
func AutoNumber(d *Document) (start int64, count int) {
	start = d.MaxID() + 1

	next := start
	for _, p := range d.All {
		if !p.ID.Unassigned() {
			continue
		}
		p.ID = NewID(next)
		next++
		count++
	}
	return start, count
}

// HasUnassigned reports whether any record's ID is the sentinel.
func HasUnassigned(d *Document) bool {
	for _, p := range d.All {
		if p.ID.Unassigned() {
			return true
		}
	}
	return false
}

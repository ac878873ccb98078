package export

// SlotLine is one printable (subject, hours) line.
type SlotLine struct {
	Subject string
	Hours   float64
}

// DateBlock groups the printable lines for a single date. Blocks must be
// supplied in ascending date order; exporters never re-sort them.
type DateBlock struct {
	Date  string
	Slots []SlotLine
}

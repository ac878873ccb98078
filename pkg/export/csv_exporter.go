package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// noStudySubject marks dates whose slot list is empty in tabular output.
const noStudySubject = "Unavailable / No Study"

// CSVExporter renders a timetable into CSV bytes with the same row layout
// as the PDF document.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the date blocks.
func (e *CSVExporter) Render(blocks []DateBlock) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write([]string{"Date", "Subject", "Hours"}); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, block := range blocks {
		if len(block.Slots) == 0 {
			if err := writer.Write([]string{block.Date, noStudySubject, "0"}); err != nil {
				return nil, fmt.Errorf("write csv row: %w", err)
			}
			continue
		}
		for _, slot := range block.Slots {
			if err := writer.Write([]string{block.Date, slot.Subject, formatHours(slot.Hours)}); err != nil {
				return nil, fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry in points on A4 (595 x 842).
const (
	pageMargin   = 40.0
	titleY       = 40.0
	bandTop      = 50.0
	bandHeight   = 24.0
	bandWidth    = 520.0
	firstCursor  = 86.0 // below the column header band on page one
	resetCursor  = 60.0
	pageBound    = 740.0 // safe printable bound; crossing it starts a new page
	dateLineH    = 16.0
	slotLineH    = 14.0
	blockSpacerH = 8.0
)

type lineKind int

const (
	lineDate lineKind = iota
	lineSlot
)

type docLine struct {
	kind lineKind
	date string
	slot SlotLine
}

// PDFExporter renders a timetable into a paginated tabular PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render produces the printable document: a title, a Date/Subject/Hours
// header band, then per date a header-styled line followed by its slot
// lines.
func (e *PDFExporter) Render(blocks []DateBlock, title string) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Text(pageMargin, titleY, title)

	pdf.SetFillColor(40, 100, 200)
	pdf.Rect(pageMargin, bandTop, bandWidth, bandHeight, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 12)
	pdf.Text(pageMargin+6, bandTop+18, "Date")
	pdf.Text(pageMargin+120, bandTop+18, "Subject")
	pdf.Text(pageMargin+420, bandTop+18, "Hours")
	pdf.SetTextColor(0, 0, 0)

	for i, page := range paginate(blocks) {
		if i > 0 {
			pdf.AddPage()
		}
		y := resetCursor
		if i == 0 {
			y = firstCursor
		}
		for _, line := range page {
			switch line.kind {
			case lineDate:
				pdf.SetFont("Arial", "B", 12)
				y += dateLineH
				pdf.Text(pageMargin+6, y, line.date)
			case lineSlot:
				pdf.SetFont("Arial", "", 12)
				y += slotLineH
				pdf.Text(pageMargin+120, y, line.slot.Subject)
				pdf.Text(pageMargin+420, y, formatHours(line.slot.Hours))
			}
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// paginate walks the date blocks with a vertical cursor and splits them into
// pages. The bound check runs after each slot line and after each block's
// trailing spacer, so a date with many slots breaks mid-block instead of
// overflowing the page.
func paginate(blocks []DateBlock) [][]docLine {
	pages := make([][]docLine, 0, 1)
	page := make([]docLine, 0)
	cursor := firstCursor

	flush := func() {
		pages = append(pages, page)
		page = make([]docLine, 0)
		cursor = resetCursor
	}

	for _, block := range blocks {
		page = append(page, docLine{kind: lineDate, date: block.Date})
		cursor += dateLineH
		for _, slot := range block.Slots {
			page = append(page, docLine{kind: lineSlot, slot: slot})
			cursor += slotLineH
			if cursor > pageBound {
				flush()
			}
		}
		cursor += blockSpacerH
		if cursor > pageBound {
			flush()
		}
	}
	if len(page) > 0 || len(pages) == 0 {
		pages = append(pages, page)
	}
	return pages
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

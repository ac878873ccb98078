package view

import (
	"fmt"
	"strconv"

	"github.com/noah-isme/study-planner/internal/dto"
	"github.com/noah-isme/study-planner/internal/models"
)

// NoStudyLine is the sentinel rendered for a date whose slot list is empty.
// It is visually distinct (muted) from a date carrying zero-hour slots.
const NoStudyLine = "Unavailable / No Study"

// Table renders the timetable as a day-ordered list view, ascending by date.
// Slot order within a date is significant and preserved as received.
func Table(tt models.Timetable) []dto.TableRow {
	rows := make([]dto.TableRow, 0, len(tt))
	for _, date := range tt.Dates() {
		slots := tt[date]
		if len(slots) == 0 {
			rows = append(rows, dto.TableRow{Date: date, Lines: []string{NoStudyLine}, NoStudy: true})
			continue
		}
		lines := make([]string, 0, len(slots))
		for _, slot := range slots {
			lines = append(lines, SlotLine(slot))
		}
		rows = append(rows, dto.TableRow{Date: date, Lines: lines})
	}
	return rows
}

// SlotLine formats a single study slot for display.
func SlotLine(slot models.StudySlot) string {
	return fmt.Sprintf("%s — %s hr", slot.Subject, FormatHours(slot.Hours))
}

// FormatHours renders hours without trailing zeros ("3", "2.5").
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

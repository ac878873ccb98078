package models

import "sort"

// StudySlot is a single (subject, hours) entry within one day's plan.
type StudySlot struct {
	Subject string  `json:"subject"`
	Hours   float64 `json:"hours"`
}

// Timetable maps an ISO calendar date (YYYY-MM-DD) to the ordered slots
// planned for that day. An empty slice means the day is unavailable or has
// no study planned, which renders differently from a day that is absent.
//
// ISO dates sort correctly as strings, so every presentation component
// iterates dates in plain lexicographic order.
type Timetable map[string][]StudySlot

// Dates returns the timetable's dates in ascending order.
func (t Timetable) Dates() []string {
	dates := make([]string, 0, len(t))
	for date := range t {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// HoursOn sums the scheduled hours for a date. Missing dates report zero.
func (t Timetable) HoursOn(date string) float64 {
	var total float64
	for _, slot := range t[date] {
		total += slot.Hours
	}
	return total
}

// DayClassification is the derived state of one calendar cell.
type DayClassification string

const (
	DayUnavailable DayClassification = "UNAVAILABLE"
	DayBusy        DayClassification = "BUSY"
	DayPartial     DayClassification = "PARTIAL"
	DayFree        DayClassification = "FREE"
)

// BusyEpsilon absorbs floating-point drift when comparing scheduled hours
// against the daily budget.
const BusyEpsilon = 0.01

// ClassifyDay derives a day's state from its scheduled total, the daily
// budget and unavailability. Unavailability wins over everything, including
// hours recorded against an unavailable date.
func ClassifyDay(scheduled float64, dailyBudget float64, unavailable bool) DayClassification {
	switch {
	case unavailable:
		return DayUnavailable
	case scheduled > 0 && scheduled >= dailyBudget-BusyEpsilon:
		return DayBusy
	case scheduled > 0:
		return DayPartial
	default:
		return DayFree
	}
}

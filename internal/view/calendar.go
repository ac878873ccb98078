package view

import (
	"time"

	"github.com/noah-isme/study-planner/internal/dto"
	"github.com/noah-isme/study-planner/internal/models"
)

const daysPerWeek = 7

// Calendar classifies every day of the month containing now into the
// four-state grid behind the mini calendar. Weeks start on Sunday; leading
// and trailing blank cells pad each row to seven columns so the first day
// lands in its weekday column.
//
// Unavailability always wins, even when hours are recorded against an
// unavailable date.
func Calendar(tt models.Timetable, unavailableDates []string, dailyBudget float64, now time.Time) dto.CalendarGrid {
	unavailable := make(map[string]struct{}, len(unavailableDates))
	for _, d := range unavailableDates {
		unavailable[d] = struct{}{}
	}

	year, month, _ := now.UTC().Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()

	grid := dto.CalendarGrid{Year: year, Month: int(month)}
	week := make([]dto.CalendarCell, 0, daysPerWeek)
	for i := 0; i < int(first.Weekday()); i++ {
		week = append(week, dto.CalendarCell{})
	}

	for day := 1; day <= lastDay; day++ {
		if len(week) == daysPerWeek {
			grid.Weeks = append(grid.Weeks, week)
			week = make([]dto.CalendarCell, 0, daysPerWeek)
		}
		iso := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		_, isUnavailable := unavailable[iso]
		hours := tt.HoursOn(iso)
		week = append(week, dto.CalendarCell{
			Day:   day,
			Date:  iso,
			State: models.ClassifyDay(hours, dailyBudget, isUnavailable),
			Hours: hours,
		})
	}

	for len(week) < daysPerWeek {
		week = append(week, dto.CalendarCell{})
	}
	grid.Weeks = append(grid.Weeks, week)
	return grid
}

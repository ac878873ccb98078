package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/study-planner/internal/models"
)

var january2025 = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

func TestCalendarPadsWeekRows(t *testing.T) {
	grid := Calendar(models.Timetable{}, nil, 5, january2025)

	assert.Equal(t, 2025, grid.Year)
	assert.Equal(t, 1, grid.Month)
	require.Len(t, grid.Weeks, 5)
	for _, week := range grid.Weeks {
		assert.Len(t, week, 7)
	}

	// 2025-01-01 is a Wednesday: three leading blanks, then day one.
	first := grid.Weeks[0]
	assert.Equal(t, 0, first[0].Day)
	assert.Equal(t, 0, first[1].Day)
	assert.Equal(t, 0, first[2].Day)
	assert.Equal(t, 1, first[3].Day)

	// Day 31 lands on Friday: the final row ends with one blank cell.
	last := grid.Weeks[4]
	assert.Equal(t, 31, last[5].Day)
	assert.Equal(t, 0, last[6].Day)
}

func TestCalendarClassification(t *testing.T) {
	tt := models.Timetable{
		"2025-01-05": {{Subject: "Math", Hours: 3}},
		"2025-01-06": {{Subject: "Math", Hours: 5}},
		"2025-01-07": {{Subject: "Math", Hours: 4.995}},
		"2025-01-08": {{Subject: "Math", Hours: 2}},
	}
	unavailable := []string{"2025-01-08", "2025-01-09"}

	grid := Calendar(tt, unavailable, 5, january2025)
	cells := map[string]models.DayClassification{}
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.Day > 0 {
				cells[cell.Date] = cell.State
			}
		}
	}

	assert.Equal(t, models.DayPartial, cells["2025-01-05"])
	assert.Equal(t, models.DayBusy, cells["2025-01-06"])
	// Within epsilon of the budget still counts as busy.
	assert.Equal(t, models.DayBusy, cells["2025-01-07"])
	// Unavailability overrides recorded hours.
	assert.Equal(t, models.DayUnavailable, cells["2025-01-08"])
	assert.Equal(t, models.DayUnavailable, cells["2025-01-09"])
	assert.Equal(t, models.DayFree, cells["2025-01-10"])
}

func TestCalendarEmptySlotListIsFree(t *testing.T) {
	tt := models.Timetable{"2025-01-05": {}}
	grid := Calendar(tt, nil, 5, january2025)
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.Date == "2025-01-05" {
				assert.Equal(t, models.DayFree, cell.State)
				return
			}
		}
	}
	t.Fatal("cell for 2025-01-05 not found")
}

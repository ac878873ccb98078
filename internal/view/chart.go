package view

import (
	"github.com/noah-isme/study-planner/internal/dto"
	"github.com/noah-isme/study-planner/internal/models"
)

// Chart aggregates per-day study totals against the daily budget into the
// two parallel series behind the grouped hours chart. Dates follow the same
// ascending order as the table view; free hours are clamped at zero.
func Chart(tt models.Timetable, dailyBudget float64) dto.ChartSeries {
	series := dto.ChartSeries{
		Labels: make([]string, 0, len(tt)),
		Study:  make([]float64, 0, len(tt)),
		Free:   make([]float64, 0, len(tt)),
	}
	for _, date := range tt.Dates() {
		study := tt.HoursOn(date)
		free := dailyBudget - study
		if free < 0 {
			free = 0
		}
		series.Labels = append(series.Labels, date)
		series.Study = append(series.Study, study)
		series.Free = append(series.Free, free)
	}
	return series
}

package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/study-planner/internal/models"
)

func TestChartComputesStudyAndFreeSeries(t *testing.T) {
	tt := models.Timetable{
		"2025-01-05": {{Subject: "Math", Hours: 3}},
	}

	series := Chart(tt, 5)
	assert.Equal(t, []string{"2025-01-05"}, series.Labels)
	assert.Equal(t, []float64{3}, series.Study)
	assert.Equal(t, []float64{2}, series.Free)
}

func TestChartFreeHoursNeverNegative(t *testing.T) {
	tt := models.Timetable{
		"2025-01-05": {{Subject: "Math", Hours: 4}, {Subject: "DBMS", Hours: 3}},
		"2025-01-06": {{Subject: "Math", Hours: 5}},
		"2025-01-07": {},
	}

	series := Chart(tt, 5)
	assert.Equal(t, []float64{7, 5, 0}, series.Study)
	assert.Equal(t, []float64{0, 0, 5}, series.Free)
	for _, free := range series.Free {
		assert.GreaterOrEqual(t, free, 0.0)
	}
}

func TestChartAlignsWithTableOrdering(t *testing.T) {
	tt := models.Timetable{
		"2025-01-09": {{Subject: "A", Hours: 1}},
		"2025-01-03": {{Subject: "B", Hours: 2}},
		"2025-01-06": {{Subject: "C", Hours: 3}},
	}

	series := Chart(tt, 5)
	rows := Table(tt)
	for i, row := range rows {
		assert.Equal(t, row.Date, series.Labels[i])
	}
}

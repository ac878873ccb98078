package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/study-planner/internal/models"
)

func TestTableOrdersDatesAscending(t *testing.T) {
	tt := models.Timetable{
		"2025-01-10": {{Subject: "Math", Hours: 2}},
		"2025-01-02": {{Subject: "DBMS", Hours: 1}},
		"2025-01-05": {},
	}

	rows := Table(tt)
	require.Len(t, rows, 3)
	assert.Equal(t, "2025-01-02", rows[0].Date)
	assert.Equal(t, "2025-01-05", rows[1].Date)
	assert.Equal(t, "2025-01-10", rows[2].Date)
}

func TestTableEmptyDayRendersSentinel(t *testing.T) {
	rows := Table(models.Timetable{"2025-01-05": {}})
	require.Len(t, rows, 1)
	assert.True(t, rows[0].NoStudy)
	assert.Equal(t, []string{NoStudyLine}, rows[0].Lines)
}

func TestTablePreservesSlotOrder(t *testing.T) {
	tt := models.Timetable{
		"2025-01-05": {
			{Subject: "Python", Hours: 1.5},
			{Subject: "Math", Hours: 3},
			{Subject: "DBMS", Hours: 0},
		},
	}

	rows := Table(tt)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].NoStudy)
	assert.Equal(t, []string{
		"Python — 1.5 hr",
		"Math — 3 hr",
		"DBMS — 0 hr",
	}, rows[0].Lines)
}

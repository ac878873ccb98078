package dto

import (
	"time"

	"github.com/noah-isme/study-planner/internal/models"
)

// SubjectRowInput mirrors one raw subject row from the planning form.
// Numeric fields arrive as the raw strings the user typed; the collector
// applies parse-or-default coercion so half-filled rows never block a
// submission.
type SubjectRowInput struct {
	Name         string `json:"name"`
	SyllabusSize string `json:"syllabusSize"`
	Difficulty   string `json:"difficulty"`
	Importance   string `json:"importance"`
	Deadline     string `json:"deadline"`
	TaskType     string `json:"taskType"`
}

// PlanRequest carries the full planning form state for generate/reschedule.
type PlanRequest struct {
	Subjects         []SubjectRowInput `json:"subjects"`
	DailyHours       string            `json:"dailyHours"`
	ScheduleType     string            `json:"scheduleType" validate:"required"`
	UnavailableDates []string          `json:"unavailableDates"`
	LimitWeekends    bool              `json:"limitWeekends"`
}

// SaveRequest persists the latest timetable under a user-supplied title.
type SaveRequest struct {
	Title string `json:"title" validate:"required"`
}

// ExportRequest selects the rendered document format.
type ExportRequest struct {
	Format string `json:"format" validate:"omitempty,oneof=pdf csv"`
}

// ExportResult points at a rendered export file.
type ExportResult struct {
	File      string    `json:"file"`
	Format    string    `json:"format"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// TableRow is one date's rendered entry in the timetable list view.
// NoStudy marks the muted sentinel row for days with an empty slot list.
type TableRow struct {
	Date    string   `json:"date"`
	Lines   []string `json:"lines"`
	NoStudy bool     `json:"noStudy"`
}

// ChartSeries feeds the grouped bar chart: two parallel series aligned on
// one label per date.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Study  []float64 `json:"study"`
	Free   []float64 `json:"free"`
}

// CalendarCell is one cell of the month grid. Day zero marks the blank
// padding cells that align the first day to its weekday column.
type CalendarCell struct {
	Day   int                      `json:"day"`
	Date  string                   `json:"date,omitempty"`
	State models.DayClassification `json:"state,omitempty"`
	Hours float64                  `json:"hours,omitempty"`
}

// CalendarGrid is the displayed month as full 7-column week rows, Sunday
// first.
type CalendarGrid struct {
	Year  int              `json:"year"`
	Month int              `json:"month"`
	Weeks [][]CalendarCell `json:"weeks"`
}

// PlanView bundles every presentation of the current timetable.
type PlanView struct {
	Timetable models.Timetable `json:"timetable"`
	Table     []TableRow       `json:"table"`
	Chart     ChartSeries      `json:"chart"`
	Calendar  CalendarGrid     `json:"calendar"`
	Variant   *string          `json:"variant,omitempty"`
}

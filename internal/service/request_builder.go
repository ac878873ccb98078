package service

import (
	"strings"
	"time"

	"github.com/noah-isme/study-planner/internal/dto"
	"github.com/noah-isme/study-planner/internal/form"
	"github.com/noah-isme/study-planner/internal/models"
	appErrors "github.com/noah-isme/study-planner/pkg/errors"
)

const isoDate = "2006-01-02"

// BuildScheduleRequest assembles the wire payload from collected subjects
// and the remaining form state. The schedule type is a caller precondition:
// submitting with none selected is a validation error. The variant token is
// populated only for a generate-another-variant request; reschedule never
// carries one.
func BuildScheduleRequest(req dto.PlanRequest, subjects []models.Subject, variant *string, defaultDailyHours float64) (models.ScheduleRequest, error) {
	scheduleType := strings.TrimSpace(req.ScheduleType)
	if scheduleType == "" {
		return models.ScheduleRequest{}, appErrors.Clone(appErrors.ErrValidation, "schedule type is required")
	}
	return models.ScheduleRequest{
		Subjects:         subjects,
		DailyHours:       form.ParseFloat(req.DailyHours, defaultDailyHours),
		ScheduleType:     scheduleType,
		UnavailableDates: NormalizeDates(req.UnavailableDates),
		Variant:          variant,
		LimitWeekends:    req.LimitWeekends,
	}, nil
}

// NormalizeDates reduces picker selections to UTC calendar-day ISO strings,
// which keeps the picker and the rendering calendar agreeing on the day even
// when their local times straddle midnight. Values that parse as neither a
// timestamp nor a plain date pass through trimmed, mirroring the scheduling
// service's own tolerant handling.
func NormalizeDates(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, value := range raw {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if ts, err := time.Parse(time.RFC3339, value); err == nil {
			out = append(out, ts.UTC().Format(isoDate))
			continue
		}
		if day, err := time.Parse(isoDate, value); err == nil {
			out = append(out, day.Format(isoDate))
			continue
		}
		out = append(out, value)
	}
	return out
}

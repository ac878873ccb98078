package form

import (
	"strings"

	"github.com/noah-isme/study-planner/internal/dto"
	"github.com/noah-isme/study-planner/internal/models"
	appErrors "github.com/noah-isme/study-planner/pkg/errors"
)

const (
	defaultSyllabusSize = 1.0
	defaultRating       = 3
)

// CollectSubjects turns raw form rows into typed subjects.
//
// Rows whose trimmed name is empty are skipped silently so draft rows never
// block a submission. A kept row without a deadline aborts the whole
// collection: no partial list is ever returned.
func CollectSubjects(rows []dto.SubjectRowInput) ([]models.Subject, error) {
	subjects := make([]models.Subject, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}
		if strings.TrimSpace(row.Deadline) == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, "deadline required for all subjects")
		}
		subjects = append(subjects, models.Subject{
			Name:         name,
			SyllabusSize: ParseFloat(row.SyllabusSize, defaultSyllabusSize),
			Difficulty:   ParseInt(row.Difficulty, defaultRating),
			Importance:   ParseInt(row.Importance, defaultRating),
			Deadline:     strings.TrimSpace(row.Deadline),
			TaskType:     models.ParseTaskType(row.TaskType),
		})
	}
	return subjects, nil
}

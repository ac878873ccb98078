package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/study-planner/internal/dto"
	"github.com/noah-isme/study-planner/internal/models"
	appErrors "github.com/noah-isme/study-planner/pkg/errors"
)

func TestCollectSubjectsSkipsEmptyNames(t *testing.T) {
	rows := []dto.SubjectRowInput{
		{Name: "   ", Deadline: "2025-01-10"},
		{Name: "Math", SyllabusSize: "10", Difficulty: "5", Importance: "4", Deadline: "2025-01-10", TaskType: "Exam"},
		{Name: ""},
	}

	subjects, err := CollectSubjects(rows)
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "Math", subjects[0].Name)
	assert.Equal(t, 10.0, subjects[0].SyllabusSize)
	assert.Equal(t, 5, subjects[0].Difficulty)
	assert.Equal(t, 4, subjects[0].Importance)
	assert.Equal(t, models.TaskExam, subjects[0].TaskType)
}

func TestCollectSubjectsMissingDeadlineAbortsCollection(t *testing.T) {
	rows := []dto.SubjectRowInput{
		{Name: ""},
		{Name: "Physics", SyllabusSize: "6"},
	}

	subjects, err := CollectSubjects(rows)
	require.Error(t, err)
	assert.Nil(t, subjects)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "deadline")
}

func TestCollectSubjectsAppliesDefaults(t *testing.T) {
	rows := []dto.SubjectRowInput{
		{Name: "DBMS", SyllabusSize: "", Difficulty: "lots", Importance: "0", Deadline: "2025-02-01", TaskType: "Quiz"},
	}

	subjects, err := CollectSubjects(rows)
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, 1.0, subjects[0].SyllabusSize)
	assert.Equal(t, 3, subjects[0].Difficulty)
	assert.Equal(t, 3, subjects[0].Importance)
	assert.Equal(t, models.TaskExam, subjects[0].TaskType)
}

func TestCollectSubjectsTaskTypes(t *testing.T) {
	rows := []dto.SubjectRowInput{
		{Name: "A", Deadline: "2025-02-01", TaskType: "Assignment"},
		{Name: "B", Deadline: "2025-02-01", TaskType: "Project"},
		{Name: "C", Deadline: "2025-02-01"},
	}

	subjects, err := CollectSubjects(rows)
	require.NoError(t, err)
	require.Len(t, subjects, 3)
	assert.Equal(t, models.TaskAssignment, subjects[0].TaskType)
	assert.Equal(t, models.TaskProject, subjects[1].TaskType)
	assert.Equal(t, models.TaskExam, subjects[2].TaskType)
}

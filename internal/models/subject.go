package models

// TaskType enumerates what a subject's deadline refers to.
type TaskType string

const (
	TaskExam       TaskType = "Exam"
	TaskAssignment TaskType = "Assignment"
	TaskProject    TaskType = "Project"
)

// ParseTaskType maps raw form input onto the enumerated set, defaulting to
// Exam for anything unknown or empty.
func ParseTaskType(raw string) TaskType {
	switch TaskType(raw) {
	case TaskAssignment:
		return TaskAssignment
	case TaskProject:
		return TaskProject
	default:
		return TaskExam
	}
}

// Subject is one validated row of planning input. Immutable once embedded in
// a schedule request. JSON tags follow the scheduling service's wire format.
type Subject struct {
	Name         string   `json:"name"`
	SyllabusSize float64  `json:"syllabus_size"`
	Difficulty   int      `json:"difficulty"`
	Importance   int      `json:"importance"`
	Deadline     string   `json:"deadline"`
	TaskType     TaskType `json:"task_type"`
}

// ScheduleRequest is the payload sent to the scheduling service's generate
// and reschedule endpoints.
type ScheduleRequest struct {
	Subjects         []Subject `json:"subjects"`
	DailyHours       float64   `json:"daily_hours"`
	ScheduleType     string    `json:"schedule_type"`
	UnavailableDates []string  `json:"unavailable_dates"`
	Variant          *string   `json:"variant,omitempty"`
	LimitWeekends    bool      `json:"limit_weekends"`
}

package models

// ScheduleStatus marks a timetable slot as held or cancelled.
type ScheduleStatus string

const (
	ScheduleActive    ScheduleStatus = "Active"
	ScheduleCancelled ScheduleStatus = "Cancelled"
)

// ScheduleEntry is a weekly timetable slot.
type ScheduleEntry struct {
	ID         int64          `db:"id" json:"id"`
	Day        string         `db:"day" json:"day"`
	StartTime  string         `db:"start_time" json:"startTime"`
	EndTime    string         `db:"end_time" json:"endTime"`
	Course     string         `db:"course" json:"course"`
	CourseCode string         `db:"course_code" json:"courseCode"`
	Room       *string        `db:"room" json:"room,omitempty"`
	Building   *string        `db:"building" json:"building,omitempty"`
	Type       string         `db:"type" json:"type"`
	Status     ScheduleStatus `db:"status" json:"status"`
}

// ScheduleCreateRequest is the payload for adding a timetable slot.
type ScheduleCreateRequest struct {
	Day        string          `json:"day" validate:"required"`
	StartTime  string          `json:"startTime" validate:"required"`
	EndTime    string          `json:"endTime" validate:"required"`
	Course     string          `json:"course" validate:"required"`
	CourseCode string          `json:"courseCode" validate:"required"`
	Room       *string         `json:"room,omitempty"`
	Building   *string         `json:"building,omitempty"`
	Type       string          `json:"type" validate:"required"`
	Status     *ScheduleStatus `json:"status,omitempty"`
}

// SchedulePatch holds the mutable schedule fields for partial updates.
type SchedulePatch struct {
	Day        *string         `json:"day,omitempty"`
	StartTime  *string         `json:"startTime,omitempty"`
	EndTime    *string         `json:"endTime,omitempty"`
	Course     *string         `json:"course,omitempty"`
	CourseCode *string         `json:"courseCode,omitempty"`
	Room       *string         `json:"room,omitempty"`
	Building   *string         `json:"building,omitempty"`
	Type       *string         `json:"type,omitempty"`
	Status     *ScheduleStatus `json:"status,omitempty"`
}

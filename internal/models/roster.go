package models

// StudentEntry is a pre-registered student id in the admin roster. A
// student registration claims an entry; Assigned flips once and UserID
// points at the claiming account.
type StudentEntry struct {
	ID         int64   `db:"id" json:"id"`
	StudentID  string  `db:"student_id" json:"studentId"`
	Section    *string `db:"section" json:"section,omitempty"`
	Department *string `db:"department" json:"department,omitempty"`
	Year       *int    `db:"year" json:"year,omitempty"`
	Semester   *string `db:"semester" json:"semester,omitempty"`
	Assigned   bool    `db:"assigned" json:"assigned"`
	UserID     *int64  `db:"user_id" json:"userId,omitempty"`
}

// StudentEntryCreateRequest is the payload for pre-registering a
// student id on the roster.
type StudentEntryCreateRequest struct {
	StudentID  string  `json:"studentId" validate:"required"`
	Section    *string `json:"section,omitempty"`
	Department *string `json:"department,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Semester   *string `json:"semester,omitempty"`
}

// StudentEntryPatch holds the mutable roster fields for partial updates.
type StudentEntryPatch struct {
	Section    *string `json:"section,omitempty"`
	Department *string `json:"department,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Semester   *string `json:"semester,omitempty"`
	Assigned   *bool   `json:"assigned,omitempty"`
	UserID     *int64  `json:"userId,omitempty"`
}

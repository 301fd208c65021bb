package models

// UserRole represents the available roles for access control.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// User represents a portal account stored in the users table. Student
// specific fields are nil for admin accounts.
type User struct {
	ID           int64    `db:"id" json:"id"`
	Username     string   `db:"username" json:"username"`
	PasswordHash string   `db:"password_hash" json:"-"`
	FullName     string   `db:"full_name" json:"fullName"`
	Role         UserRole `db:"role" json:"userType"`
	StudentID    *string  `db:"student_id" json:"studentId,omitempty"`
	Section      *string  `db:"section" json:"section,omitempty"`
	Department   *string  `db:"department" json:"department,omitempty"`
	Year         *int     `db:"year" json:"year,omitempty"`
	Semester     *string  `db:"semester" json:"semester,omitempty"`
	CGPA         *string  `db:"cgpa" json:"cgpa,omitempty"`
}

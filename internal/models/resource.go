package models

import "time"

// Resource is downloadable course material uploaded by an admin.
type Resource struct {
	ID         int64     `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	CourseCode *string   `db:"course_code" json:"courseCode,omitempty"`
	Category   string    `db:"category" json:"category"`
	FileType   string    `db:"file_type" json:"fileType"`
	FileSize   *string   `db:"file_size" json:"fileSize,omitempty"`
	FileURL    string    `db:"file_url" json:"fileUrl"`
	UploadDate time.Time `db:"upload_date" json:"uploadDate"`
}

// ResourceCreateRequest is the payload for uploading resource metadata.
type ResourceCreateRequest struct {
	Title      string  `json:"title" validate:"required"`
	CourseCode *string `json:"courseCode,omitempty"`
	Category   string  `json:"category" validate:"required"`
	FileType   string  `json:"fileType" validate:"required"`
	FileSize   *string `json:"fileSize,omitempty"`
	FileURL    string  `json:"fileUrl" validate:"required"`
}

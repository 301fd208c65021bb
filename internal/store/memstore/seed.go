package memstore

import (
	"context"
	"time"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
)

func strPtr(s string) *string { return &s }

// SeedDemoData loads a small demonstration dataset: a couple of
// assignments, resources, notices, timetable slots, and events. Intended
// for the in-memory backend in development deployments.
func (s *Store) SeedDemoData(ctx context.Context) error {
	now := time.Now().UTC()
	day := now.Truncate(24 * time.Hour)

	assignments := []*models.Assignment{
		{
			Title:       "Database Normalization Exercise",
			Course:      "Database Systems",
			CourseCode:  "CSE-301",
			DueDate:     day.AddDate(0, 0, 7),
			Status:      models.AssignmentPending,
			Description: strPtr("Complete the database normalization exercises from chapter 4"),
			PostedDate:  now,
		},
		{
			Title:       "Network Security Protocol Analysis",
			Course:      "Network Security",
			CourseCode:  "CSE-305",
			DueDate:     day.AddDate(0, 0, 10),
			Status:      models.AssignmentPending,
			Description: strPtr("Analyze the security protocols discussed in class"),
			PostedDate:  now,
		},
	}
	for _, a := range assignments {
		if err := s.CreateAssignment(ctx, a); err != nil {
			return err
		}
	}

	resources := []*models.Resource{
		{
			Title:      "Database Systems Concepts Ch.4-6",
			CourseCode: strPtr("CSE-301"),
			Category:   "Textbooks",
			FileType:   "PDF",
			FileSize:   strPtr("5.2 MB"),
			FileURL:    "/resources/db-concepts-ch4-6.pdf",
			UploadDate: now,
		},
		{
			Title:      "Network Security Lecture Notes Week 8",
			CourseCode: strPtr("CSE-305"),
			Category:   "Lecture Notes",
			FileType:   "DOC",
			FileSize:   strPtr("1.8 MB"),
			FileURL:    "/resources/network-security-week8.doc",
			UploadDate: now,
		},
	}
	for _, r := range resources {
		if err := s.CreateResource(ctx, r); err != nil {
			return err
		}
	}

	expiry1 := day.AddDate(0, 0, 7)
	expiry2 := day.AddDate(0, 0, 15)
	notices := []*models.Notice{
		{
			Title:      "Lab Cancelled",
			Content:    "The Database Systems lab scheduled for Oct 12 has been cancelled.",
			Category:   "Urgent",
			PostedDate: now,
			ExpiryDate: &expiry1,
		},
		{
			Title:      "Holiday Announcement",
			Content:    "The campus will be closed on Oct 24 for the national holiday.",
			Category:   "General",
			PostedDate: now,
			ExpiryDate: &expiry2,
		},
	}
	for _, n := range notices {
		if err := s.CreateNotice(ctx, n); err != nil {
			return err
		}
	}

	schedule := []*models.ScheduleEntry{
		{
			Day:        "Thursday",
			StartTime:  "10:00",
			EndTime:    "11:30",
			Course:     "Database Systems",
			CourseCode: "CSE-301",
			Room:       strPtr("Lab 3"),
			Building:   strPtr("Block B"),
			Type:       "Lab",
			Status:     models.ScheduleCancelled,
		},
		{
			Day:        "Thursday",
			StartTime:  "13:00",
			EndTime:    "14:30",
			Course:     "Network Security",
			CourseCode: "CSE-305",
			Room:       strPtr("Room 204"),
			Building:   strPtr("Block A"),
			Type:       "Lecture",
			Status:     models.ScheduleActive,
		},
	}
	for _, e := range schedule {
		if err := s.CreateScheduleEntry(ctx, e); err != nil {
			return err
		}
	}

	events := []*models.Event{
		{
			Title:       "Database Assignment Due",
			Date:        day.AddDate(0, 0, 7),
			Category:    "Assignment",
			Description: strPtr("Database Normalization Exercise due"),
		},
		{
			Title:       "Database Systems Exam",
			Date:        day.AddDate(0, 0, 9),
			Category:    "Exam",
			Description: strPtr("Midterm exam covering chapters 1-6"),
		},
	}
	for _, e := range events {
		if err := s.CreateEvent(ctx, e); err != nil {
			return err
		}
	}

	return nil
}

package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store"
)

const scheduleColumns = `id, day, start_time, end_time, course, course_code, room, building, type, status`

func (s *Store) ListSchedule(ctx context.Context, day string) ([]models.ScheduleEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM schedule`, scheduleColumns)
	var args []interface{}
	if day != "" {
		query += " WHERE day = $1"
		args = append(args, day)
	}
	query += " ORDER BY id"

	entries := []models.ScheduleEntry{}
	if err := s.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}
	return entries, nil
}

func (s *Store) CreateScheduleEntry(ctx context.Context, entry *models.ScheduleEntry) error {
	const query = `INSERT INTO schedule (day, start_time, end_time, course, course_code, room, building, type, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := s.db.QueryRowxContext(ctx, query,
		entry.Day, entry.StartTime, entry.EndTime, entry.Course, entry.CourseCode,
		entry.Room, entry.Building, entry.Type, entry.Status,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("create schedule entry: %w", err)
	}
	return nil
}

func (s *Store) UpdateScheduleEntry(ctx context.Context, id int64, patch models.SchedulePatch) (*models.ScheduleEntry, error) {
	b := &setBuilder{}
	if patch.Day != nil {
		b.add("day", *patch.Day)
	}
	if patch.StartTime != nil {
		b.add("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		b.add("end_time", *patch.EndTime)
	}
	if patch.Course != nil {
		b.add("course", *patch.Course)
	}
	if patch.CourseCode != nil {
		b.add("course_code", *patch.CourseCode)
	}
	if patch.Room != nil {
		b.add("room", *patch.Room)
	}
	if patch.Building != nil {
		b.add("building", *patch.Building)
	}
	if patch.Type != nil {
		b.add("type", *patch.Type)
	}
	if patch.Status != nil {
		b.add("status", *patch.Status)
	}
	if b.empty() {
		return s.getScheduleEntry(ctx, id)
	}
	query := fmt.Sprintf(`UPDATE schedule SET %s WHERE id = $%d RETURNING %s`, b.set(), b.next(), scheduleColumns)
	args := append(b.args, id)
	var entry models.ScheduleEntry
	if err := s.db.GetContext(ctx, &entry, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("update schedule entry: %w", err)
	}
	return &entry, nil
}

func (s *Store) getScheduleEntry(ctx context.Context, id int64) (*models.ScheduleEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM schedule WHERE id = $1`, scheduleColumns)
	var entry models.ScheduleEntry
	if err := s.db.GetContext(ctx, &entry, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get schedule entry: %w", err)
	}
	return &entry, nil
}

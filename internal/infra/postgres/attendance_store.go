package postgres

import (
	"context"
	"fmt"

	"classroom-ledger-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// AttendanceStore persists attendance records. The unique index on
// (video_id, student_email) backs the one-record invariant.
type AttendanceStore struct {
	pool *pgxpool.Pool
}

func NewAttendanceStore(pool *pgxpool.Pool) *AttendanceStore {
	return &AttendanceStore{pool: pool}
}

func (s *AttendanceStore) CreateAttendance(ctx context.Context, record domain.AttendanceRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO attendance (video_id, student_email, watch_percentage)
		 VALUES ($1, $2, $3)`,
		record.VideoID, record.StudentEmail, record.WatchPercentage)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateAttendance
	}
	if err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

func (s *AttendanceStore) HasAttendance(ctx context.Context, videoID, studentEmail string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM attendance WHERE video_id = $1 AND student_email = $2)`,
		videoID, studentEmail).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check attendance: %w", err)
	}
	return exists, nil
}

func (s *AttendanceStore) AttendanceByStudent(ctx context.Context, studentEmail string) ([]domain.AttendanceRecord, error) {
	return s.list(ctx,
		`SELECT video_id, student_email, watch_percentage FROM attendance WHERE student_email = $1`,
		studentEmail)
}

func (s *AttendanceStore) AttendanceByVideo(ctx context.Context, videoID string) ([]domain.AttendanceRecord, error) {
	return s.list(ctx,
		`SELECT video_id, student_email, watch_percentage FROM attendance WHERE video_id = $1`,
		videoID)
}

func (s *AttendanceStore) list(ctx context.Context, query string, arg interface{}) ([]domain.AttendanceRecord, error) {
	rows, err := s.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	var records []domain.AttendanceRecord
	for rows.Next() {
		var r domain.AttendanceRecord
		if err := rows.Scan(&r.VideoID, &r.StudentEmail, &r.WatchPercentage); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

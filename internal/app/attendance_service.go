package app

import (
	"context"

	"classroom-ledger-service/internal/domain"
)

// AttendanceStore persists attendance records and enforces the (video, student)
// uniqueness invariant: CreateAttendance must return domain.ErrDuplicateAttendance
// on a second insert for the same pair.
type AttendanceStore interface {
	CreateAttendance(ctx context.Context, record domain.AttendanceRecord) error
	HasAttendance(ctx context.Context, videoID, studentEmail string) (bool, error)
	AttendanceByStudent(ctx context.Context, studentEmail string) ([]domain.AttendanceRecord, error)
	AttendanceByVideo(ctx context.Context, videoID string) ([]domain.AttendanceRecord, error)
}

// AttendanceService records and reads watch-threshold attendance.
type AttendanceService struct {
	records AttendanceStore
}

func NewAttendanceService(records AttendanceStore) *AttendanceService {
	return &AttendanceService{records: records}
}

// MarkAttendance records attendance for a (video, student) pair. The duplicate
// check runs before the threshold check, so a repeat call reports the duplicate
// even when the new percentage would not clear the threshold. Repeats are never
// upgraded, regardless of a higher percentage.
func (s *AttendanceService) MarkAttendance(ctx context.Context, videoID, studentEmail string, watchPercentage float64) error {
	marked, err := s.records.HasAttendance(ctx, videoID, studentEmail)
	if err != nil {
		return err
	}
	if marked {
		return domain.ErrDuplicateAttendance
	}
	if watchPercentage < domain.WatchThreshold {
		return domain.ErrBelowWatchThreshold
	}
	return s.records.CreateAttendance(ctx, domain.AttendanceRecord{
		VideoID:         videoID,
		StudentEmail:    studentEmail,
		WatchPercentage: watchPercentage,
	})
}

// StudentAttendance lists a student's records; an empty set is reported as not found.
func (s *AttendanceService) StudentAttendance(ctx context.Context, studentEmail string) ([]domain.AttendanceRecord, error) {
	records, err := s.records.AttendanceByStudent(ctx, studentEmail)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrAttendanceNotFound
	}
	return records, nil
}

// VideoAttendance lists records for a video. Unlike the student-scoped read,
// an empty set is an ordinary result, not an error.
func (s *AttendanceService) VideoAttendance(ctx context.Context, videoID string) ([]domain.AttendanceRecord, error) {
	return s.records.AttendanceByVideo(ctx, videoID)
}

// AttendancePercentage computes attended/available as a percentage. With no
// videos available the result is 0, never NaN.
func (s *AttendanceService) AttendancePercentage(ctx context.Context, studentEmail string, totalVideos int) (float64, error) {
	records, err := s.records.AttendanceByStudent(ctx, studentEmail)
	if err != nil {
		return 0, err
	}
	return attendancePercentage(len(records), totalVideos), nil
}

func attendancePercentage(attended, available int) float64 {
	if available == 0 {
		return 0
	}
	return float64(attended) / float64(available) * 100
}

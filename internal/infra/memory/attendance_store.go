package memory

import (
	"context"
	"sync"

	"classroom-ledger-service/internal/domain"
)

// AttendanceStore keeps attendance records in memory, enforcing the
// (video, student) uniqueness invariant.
type AttendanceStore struct {
	mu      sync.RWMutex
	records map[attendanceKey]domain.AttendanceRecord
	order   []attendanceKey
}

type attendanceKey struct {
	videoID      string
	studentEmail string
}

func NewAttendanceStore() *AttendanceStore {
	return &AttendanceStore{records: make(map[attendanceKey]domain.AttendanceRecord)}
}

func (s *AttendanceStore) CreateAttendance(_ context.Context, record domain.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := attendanceKey{record.VideoID, record.StudentEmail}
	if _, ok := s.records[key]; ok {
		return domain.ErrDuplicateAttendance
	}
	s.records[key] = record
	s.order = append(s.order, key)
	return nil
}

func (s *AttendanceStore) HasAttendance(_ context.Context, videoID, studentEmail string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[attendanceKey{videoID, studentEmail}]
	return ok, nil
}

func (s *AttendanceStore) AttendanceByStudent(_ context.Context, studentEmail string) ([]domain.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []domain.AttendanceRecord
	for _, key := range s.order {
		if key.studentEmail == studentEmail {
			records = append(records, s.records[key])
		}
	}
	return records, nil
}

func (s *AttendanceStore) AttendanceByVideo(_ context.Context, videoID string) ([]domain.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []domain.AttendanceRecord
	for _, key := range s.order {
		if key.videoID == videoID {
			records = append(records, s.records[key])
		}
	}
	return records, nil
}

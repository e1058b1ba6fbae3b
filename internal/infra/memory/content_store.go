package memory

import (
	"context"
	"sync"

	"classroom-ledger-service/internal/domain"
)

// VideoStore keeps video metadata in memory.
type VideoStore struct {
	mu     sync.RWMutex
	videos map[string]domain.Video
	order  []string
}

func NewVideoStore() *VideoStore {
	return &VideoStore{videos: make(map[string]domain.Video)}
}

func (s *VideoStore) CreateVideo(_ context.Context, video domain.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.videos[video.ID]; !ok {
		s.order = append(s.order, video.ID)
	}
	s.videos[video.ID] = video
	return nil
}

func (s *VideoStore) GetVideo(_ context.Context, videoID string) (domain.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	video, ok := s.videos[videoID]
	if !ok {
		return domain.Video{}, domain.ErrVideoNotFound
	}
	return video, nil
}

func (s *VideoStore) ListVideos(_ context.Context) ([]domain.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	videos := make([]domain.Video, 0, len(s.order))
	for _, id := range s.order {
		videos = append(videos, s.videos[id])
	}
	return videos, nil
}

func (s *VideoStore) CountVideos(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.videos), nil
}

// AssignmentStore keeps assignment metadata in memory.
type AssignmentStore struct {
	mu          sync.RWMutex
	assignments []domain.Assignment
}

func NewAssignmentStore() *AssignmentStore {
	return &AssignmentStore{}
}

func (s *AssignmentStore) CreateAssignment(_ context.Context, assignment domain.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments = append(s.assignments, assignment)
	return nil
}

func (s *AssignmentStore) ListAssignments(_ context.Context) ([]domain.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assignments := make([]domain.Assignment, len(s.assignments))
	copy(assignments, s.assignments)
	return assignments, nil
}

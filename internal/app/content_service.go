package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"classroom-ledger-service/internal/domain"
	"github.com/google/uuid"
)

// VideoStore persists lecture video metadata.
type VideoStore interface {
	CreateVideo(ctx context.Context, video domain.Video) error
	GetVideo(ctx context.Context, videoID string) (domain.Video, error)
	ListVideos(ctx context.Context) ([]domain.Video, error)
	CountVideos(ctx context.Context) (int, error)
}

// AssignmentStore persists assignment metadata.
type AssignmentStore interface {
	CreateAssignment(ctx context.Context, assignment domain.Assignment) error
	ListAssignments(ctx context.Context) ([]domain.Assignment, error)
}

// NotificationAppender is the sink contract content workflows write to.
type NotificationAppender interface {
	Append(ctx context.Context, n domain.Notification) (domain.Notification, error)
}

// ContentService registers videos and assignments. Each successful write
// appends a notification; the primary write succeeds even if the notification
// write fails.
type ContentService struct {
	videos        VideoStore
	assignments   AssignmentStore
	notifications NotificationAppender
	now           func() time.Time
}

func NewContentService(videos VideoStore, assignments AssignmentStore, notifications NotificationAppender) *ContentService {
	return &ContentService{videos: videos, assignments: assignments, notifications: notifications, now: time.Now}
}

// RegisterVideo stores lecture metadata and announces it.
func (s *ContentService) RegisterVideo(ctx context.Context, title, url, teacherName, teacherID string) (domain.Video, error) {
	video := domain.Video{
		ID:          uuid.NewString(),
		Title:       title,
		URL:         url,
		TeacherName: teacherName,
		TeacherID:   teacherID,
		CreatedAt:   s.now(),
	}
	if err := s.videos.CreateVideo(ctx, video); err != nil {
		return domain.Video{}, err
	}

	if _, err := s.notifications.Append(ctx, domain.Notification{
		Type:    domain.NotificationVideo,
		Title:   fmt.Sprintf("New Video: %s", title),
		Message: fmt.Sprintf("A new video has been uploaded by %s", teacherName),
		Data: map[string]any{
			"videoId":     video.ID,
			"teacherName": teacherName,
			"title":       title,
		},
		Link: fmt.Sprintf("/videos/%s", video.ID),
	}); err != nil {
		log.Printf("video %s registered but notification failed: %v", video.ID, err)
	}
	return video, nil
}

// GetVideo fetches one video by ID.
func (s *ContentService) GetVideo(ctx context.Context, videoID string) (domain.Video, error) {
	return s.videos.GetVideo(ctx, videoID)
}

// ListVideos returns all registered videos.
func (s *ContentService) ListVideos(ctx context.Context) ([]domain.Video, error) {
	return s.videos.ListVideos(ctx)
}

// CountVideos returns the catalog size; each video counts as one class.
func (s *ContentService) CountVideos(ctx context.Context) (int, error) {
	return s.videos.CountVideos(ctx)
}

// CreateAssignment stores assignment metadata and announces it.
func (s *ContentService) CreateAssignment(ctx context.Context, teacherEmail, title, description string, dueDate time.Time) (domain.Assignment, error) {
	assignment := domain.Assignment{
		ID:           uuid.NewString(),
		TeacherEmail: teacherEmail,
		Title:        title,
		Description:  description,
		DueDate:      dueDate,
		CreatedAt:    s.now(),
	}
	if err := s.assignments.CreateAssignment(ctx, assignment); err != nil {
		return domain.Assignment{}, err
	}

	if _, err := s.notifications.Append(ctx, domain.Notification{
		Type:    domain.NotificationAssignment,
		Title:   fmt.Sprintf("New Assignment: %s", title),
		Message: fmt.Sprintf("Due: %s", dueDate.Format("2006-01-02")),
		Data: map[string]any{
			"assignmentId": assignment.ID,
			"title":        title,
			"dueDate":      dueDate.Format(time.RFC3339),
		},
		Link: fmt.Sprintf("/assignments/%s", assignment.ID),
	}); err != nil {
		log.Printf("assignment %s created but notification failed: %v", assignment.ID, err)
	}
	return assignment, nil
}

// ListAssignments returns all assignments.
func (s *ContentService) ListAssignments(ctx context.Context) ([]domain.Assignment, error) {
	return s.assignments.ListAssignments(ctx)
}

package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"classroom-ledger-service/internal/app"
	"classroom-ledger-service/internal/domain"
	"classroom-ledger-service/internal/infra/memory"
)

func TestRegisterVideoAppendsNotification(t *testing.T) {
	ctx := context.Background()
	notifications := app.NewNotificationService(memory.NewNotificationStore())
	service := app.NewContentService(memory.NewVideoStore(), memory.NewAssignmentStore(), notifications)

	video, err := service.RegisterVideo(ctx, "Limits", "https://cdn.school.edu/limits.mp4", "Ms. Njoroge", "teacher-1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if video.ID == "" {
		t.Fatal("expected generated video ID")
	}

	appended, err := notifications.List(ctx)
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(appended) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(appended))
	}
	if appended[0].Type != domain.NotificationVideo {
		t.Fatalf("expected VIDEO notification, got %s", appended[0].Type)
	}
	if appended[0].Data["videoId"] != video.ID {
		t.Fatalf("notification data missing video id: %+v", appended[0].Data)
	}
}

func TestRegisterVideoSurvivesNotificationFailure(t *testing.T) {
	ctx := context.Background()
	service := app.NewContentService(memory.NewVideoStore(), memory.NewAssignmentStore(), failingAppender{})

	video, err := service.RegisterVideo(ctx, "Limits", "https://cdn.school.edu/limits.mp4", "Ms. Njoroge", "teacher-1")
	if err != nil {
		t.Fatalf("primary write must succeed despite sink failure: %v", err)
	}

	stored, err := service.GetVideo(ctx, video.ID)
	if err != nil {
		t.Fatalf("video not persisted: %v", err)
	}
	if stored.Title != "Limits" {
		t.Fatalf("unexpected stored video: %+v", stored)
	}
}

func TestCreateAssignmentAppendsNotification(t *testing.T) {
	ctx := context.Background()
	notifications := app.NewNotificationService(memory.NewNotificationStore())
	service := app.NewContentService(memory.NewVideoStore(), memory.NewAssignmentStore(), notifications)

	due := time.Now().Add(7 * 24 * time.Hour)
	assignment, err := service.CreateAssignment(ctx, "njoroge@school.edu", "Problem Set 3", "Chapters 4-5", due)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if assignment.ID == "" {
		t.Fatal("expected generated assignment ID")
	}

	appended, err := notifications.List(ctx)
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(appended) != 1 || appended[0].Type != domain.NotificationAssignment {
		t.Fatalf("expected one ASSIGNMENT notification, got %+v", appended)
	}
}

func TestCreateAssignmentSurvivesNotificationFailure(t *testing.T) {
	ctx := context.Background()
	service := app.NewContentService(memory.NewVideoStore(), memory.NewAssignmentStore(), failingAppender{})

	if _, err := service.CreateAssignment(ctx, "njoroge@school.edu", "Problem Set 3", "Chapters 4-5", time.Now()); err != nil {
		t.Fatalf("primary write must succeed despite sink failure: %v", err)
	}

	assignments, err := service.ListAssignments(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(assignments) != 1 {
		t.Fatalf("expected persisted assignment, got %d", len(assignments))
	}
}

func TestGetVideoNotFound(t *testing.T) {
	ctx := context.Background()
	service := app.NewContentService(memory.NewVideoStore(), memory.NewAssignmentStore(), failingAppender{})

	if _, err := service.GetVideo(ctx, "missing"); !errors.Is(err, domain.ErrVideoNotFound) {
		t.Fatalf("expected video not found, got %v", err)
	}
}

// failingAppender simulates an unavailable notification sink.
type failingAppender struct{}

func (failingAppender) Append(context.Context, domain.Notification) (domain.Notification, error) {
	return domain.Notification{}, errors.New("sink unavailable")
}

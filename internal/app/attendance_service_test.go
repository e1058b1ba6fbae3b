package app_test

import (
	"context"
	"errors"
	"testing"

	"classroom-ledger-service/internal/app"
	"classroom-ledger-service/internal/domain"
	"classroom-ledger-service/internal/infra/memory"
)

func TestMarkAttendanceBelowThreshold(t *testing.T) {
	ctx := context.Background()
	service := app.NewAttendanceService(memory.NewAttendanceStore())

	if err := service.MarkAttendance(ctx, "video-1", "alice@school.edu", 59); !errors.Is(err, domain.ErrBelowWatchThreshold) {
		t.Fatalf("expected below-threshold error, got %v", err)
	}
	// The rejected call must leave no record, so a later qualifying call succeeds.
	if err := service.MarkAttendance(ctx, "video-1", "alice@school.edu", 75); err != nil {
		t.Fatalf("expected success after rejected attempt, got %v", err)
	}

	records, err := service.StudentAttendance(ctx, "alice@school.edu")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(records) != 1 || records[0].WatchPercentage != 75 {
		t.Fatalf("expected exactly one record at 75%%, got %+v", records)
	}
}

func TestMarkAttendanceRejectsRepeats(t *testing.T) {
	ctx := context.Background()
	service := app.NewAttendanceService(memory.NewAttendanceStore())

	if err := service.MarkAttendance(ctx, "video-1", "alice@school.edu", 80); err != nil {
		t.Fatalf("first mark failed: %v", err)
	}
	// A higher percentage does not upgrade the existing record.
	if err := service.MarkAttendance(ctx, "video-1", "alice@school.edu", 95); !errors.Is(err, domain.ErrDuplicateAttendance) {
		t.Fatalf("expected duplicate attendance error, got %v", err)
	}

	records, err := service.StudentAttendance(ctx, "alice@school.edu")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(records) != 1 || records[0].WatchPercentage != 80 {
		t.Fatalf("expected single record at original 80%%, got %+v", records)
	}
}

func TestMarkAttendanceDuplicateCheckedBeforeThreshold(t *testing.T) {
	ctx := context.Background()
	service := app.NewAttendanceService(memory.NewAttendanceStore())

	if err := service.MarkAttendance(ctx, "video-1", "alice@school.edu", 80); err != nil {
		t.Fatalf("first mark failed: %v", err)
	}
	if err := service.MarkAttendance(ctx, "video-1", "alice@school.edu", 10); !errors.Is(err, domain.ErrDuplicateAttendance) {
		t.Fatalf("expected duplicate before threshold check, got %v", err)
	}
}

func TestAttendanceScopedPerVideoAndStudent(t *testing.T) {
	ctx := context.Background()
	service := app.NewAttendanceService(memory.NewAttendanceStore())

	if err := service.MarkAttendance(ctx, "video-1", "alice@school.edu", 90); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if err := service.MarkAttendance(ctx, "video-2", "alice@school.edu", 90); err != nil {
		t.Fatalf("second video mark failed: %v", err)
	}
	if err := service.MarkAttendance(ctx, "video-1", "bob@school.edu", 90); err != nil {
		t.Fatalf("second student mark failed: %v", err)
	}

	byStudent, err := service.StudentAttendance(ctx, "alice@school.edu")
	if err != nil {
		t.Fatalf("student read failed: %v", err)
	}
	if len(byStudent) != 2 {
		t.Fatalf("expected 2 records for alice, got %d", len(byStudent))
	}

	byVideo, err := service.VideoAttendance(ctx, "video-1")
	if err != nil {
		t.Fatalf("video read failed: %v", err)
	}
	if len(byVideo) != 2 {
		t.Fatalf("expected 2 records for video-1, got %d", len(byVideo))
	}
}

func TestStudentAttendanceReportsEmptyAsNotFound(t *testing.T) {
	ctx := context.Background()
	service := app.NewAttendanceService(memory.NewAttendanceStore())

	if _, err := service.StudentAttendance(ctx, "ghost@school.edu"); !errors.Is(err, domain.ErrAttendanceNotFound) {
		t.Fatalf("expected not-found for student without records, got %v", err)
	}
}

func TestVideoAttendanceReturnsEmptyListWithoutRecords(t *testing.T) {
	ctx := context.Background()
	service := app.NewAttendanceService(memory.NewAttendanceStore())

	records, err := service.VideoAttendance(ctx, "video-ghost")
	if err != nil {
		t.Fatalf("expected empty read to succeed, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %+v", records)
	}
}

func TestAttendancePercentage(t *testing.T) {
	ctx := context.Background()
	service := app.NewAttendanceService(memory.NewAttendanceStore())

	// No videos available must yield 0, never NaN.
	pct, err := service.AttendancePercentage(ctx, "alice@school.edu", 0)
	if err != nil {
		t.Fatalf("percentage failed: %v", err)
	}
	if pct != 0 {
		t.Fatalf("expected 0%% with no videos, got %v", pct)
	}

	for _, videoID := range []string{"video-1", "video-2", "video-3"} {
		if err := service.MarkAttendance(ctx, videoID, "alice@school.edu", 100); err != nil {
			t.Fatalf("mark failed: %v", err)
		}
	}
	pct, err = service.AttendancePercentage(ctx, "alice@school.edu", 4)
	if err != nil {
		t.Fatalf("percentage failed: %v", err)
	}
	if pct != 75 {
		t.Fatalf("expected 75%%, got %v", pct)
	}
}

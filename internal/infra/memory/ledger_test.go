package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"classroom-ledger-service/internal/domain"
	"classroom-ledger-service/internal/infra/memory"
)

func TestResultStoreEnforcesUniqueness(t *testing.T) {
	ctx := context.Background()
	store := memory.NewResultStore()

	result := domain.Result{QuizID: "quiz-1", StudentEmail: "alice@school.edu", Score: 1, Total: 1, SubmittedAt: time.Now()}
	if err := store.CreateResult(ctx, result); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if err := store.CreateResult(ctx, result); !errors.Is(err, domain.ErrDuplicateSubmission) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	// Different quiz or different student is a distinct pair.
	result.QuizID = "quiz-2"
	if err := store.CreateResult(ctx, result); err != nil {
		t.Fatalf("distinct pair rejected: %v", err)
	}
}

func TestAttendanceStoreEnforcesUniqueness(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAttendanceStore()

	record := domain.AttendanceRecord{VideoID: "video-1", StudentEmail: "alice@school.edu", WatchPercentage: 80}
	if err := store.CreateAttendance(ctx, record); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if err := store.CreateAttendance(ctx, record); !errors.Is(err, domain.ErrDuplicateAttendance) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	record.StudentEmail = "bob@school.edu"
	if err := store.CreateAttendance(ctx, record); err != nil {
		t.Fatalf("distinct pair rejected: %v", err)
	}
}

func TestQuizStoreListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.NewQuizStore().Seed(
		domain.Quiz{ID: "q1", Title: "first", Course: "MATH101"},
		domain.Quiz{ID: "q2", Title: "second", Course: "ENG201"},
		domain.Quiz{ID: "q3", Title: "third", Course: "MATH101"},
	)

	quizzes, err := store.ListQuizzes(ctx, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(quizzes) != 3 || quizzes[0].ID != "q1" || quizzes[2].ID != "q3" {
		t.Fatalf("unexpected listing order: %+v", quizzes)
	}
}

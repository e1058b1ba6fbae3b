package integration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"classroom-ledger-service/internal/app"
	"classroom-ledger-service/internal/domain"
	pgstore "classroom-ledger-service/internal/infra/postgres"
	pgmigrations "classroom-ledger-service/internal/infra/postgres/migrations"
	rediscache "classroom-ledger-service/internal/infra/redis"
	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

func TestLedgerEndToEnd(t *testing.T) {
	ctx := context.Background()

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	applyMigrations(t, ctx, pgURL)

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}

	quizzes := pgstore.NewQuizStore(pool)
	results := pgstore.NewResultStore(pool)
	attendance := pgstore.NewAttendanceStore(pool)
	videos := pgstore.NewVideoStore(pool)
	assignments := pgstore.NewAssignmentStore(pool)
	notifications := app.NewNotificationService(pgstore.NewNotificationStore(pool))

	reader := rediscache.NewQuizCache(redisClient, quizzes, 5*time.Minute)
	quizService := app.NewQuizService(quizzes, reader, results)
	attendanceService := app.NewAttendanceService(attendance)
	contentService := app.NewContentService(videos, assignments, notifications)

	quiz, err := quizService.CreateQuiz(ctx, "Algebra", "MATH101", "teacher-1", []domain.Question{
		{Text: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: "4"},
		{Text: "3+3?", Options: []string{"5", "6"}, CorrectAnswer: "6"},
	})
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}

	result, err := quizService.Submit(ctx, quiz.ID, "alice@school.edu", []string{"4", "5"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Score != 1 || result.Total != 2 {
		t.Fatalf("expected 1/2, got %d/%d", result.Score, result.Total)
	}

	if _, err := quizService.Submit(ctx, quiz.ID, "alice@school.edu", []string{"4", "6"}); !errors.Is(err, domain.ErrDuplicateSubmission) {
		t.Fatalf("expected duplicate submission, got %v", err)
	}

	// The unique index itself must reject a direct competing insert.
	err = results.CreateResult(ctx, domain.Result{
		QuizID: quiz.ID, StudentEmail: "alice@school.edu", Score: 2, Total: 2, SubmittedAt: time.Now(),
	})
	if !errors.Is(err, domain.ErrDuplicateSubmission) {
		t.Fatalf("expected constraint-backed duplicate, got %v", err)
	}

	stored, err := quizService.ListResults(ctx, "alice@school.edu")
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(stored) != 1 || stored[0].Score != 1 {
		t.Fatalf("expected single unchanged result, got %+v", stored)
	}

	video, err := contentService.RegisterVideo(ctx, "Limits", "https://cdn.school.edu/limits.mp4", "Ms. Njoroge", "teacher-1")
	if err != nil {
		t.Fatalf("register video: %v", err)
	}

	if err := attendanceService.MarkAttendance(ctx, video.ID, "alice@school.edu", 80); err != nil {
		t.Fatalf("mark attendance: %v", err)
	}
	if err := attendanceService.MarkAttendance(ctx, video.ID, "alice@school.edu", 95); !errors.Is(err, domain.ErrDuplicateAttendance) {
		t.Fatalf("expected duplicate attendance, got %v", err)
	}

	listed, err := notifications.List(ctx)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(listed) != 1 || listed[0].Type != domain.NotificationVideo {
		t.Fatalf("expected one VIDEO notification, got %+v", listed)
	}
}

func applyMigrations(t *testing.T, ctx context.Context, dsn string) {
	t.Helper()
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "ledger", "POSTGRES_PASSWORD": "ledgerpass", "POSTGRES_DB": "ledgerdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://ledger:ledgerpass@%s:%s/ledgerdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(opts), nil
}

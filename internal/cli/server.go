package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classroom-ledger-service/internal/app"
	"classroom-ledger-service/internal/config"
	"classroom-ledger-service/internal/domain"
	"classroom-ledger-service/internal/infra/memory"
	pgstore "classroom-ledger-service/internal/infra/postgres"
	rediscache "classroom-ledger-service/internal/infra/redis"
	transport "classroom-ledger-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the classroom ledger server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var (
		quizzes       app.QuizStore
		results       app.ResultStore
		attendance    app.AttendanceStore
		videos        app.VideoStore
		assignments   app.AssignmentStore
		notifications app.NotificationStore
	)
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
		quizzes = pgstore.NewQuizStore(pool)
		results = pgstore.NewResultStore(pool)
		attendance = pgstore.NewAttendanceStore(pool)
		videos = pgstore.NewVideoStore(pool)
		assignments = pgstore.NewAssignmentStore(pool)
		notifications = pgstore.NewNotificationStore(pool)
	} else {
		log.Printf("postgres not configured, using in-memory stores")
		quizzes = memory.NewQuizStore().Seed(sampleQuiz())
		results = memory.NewResultStore()
		attendance = memory.NewAttendanceStore()
		videos = memory.NewVideoStore()
		assignments = memory.NewAssignmentStore()
		notifications = memory.NewNotificationStore()
	}

	cacheTTL := config.TTLDuration(cfg.Quiz.CacheTTL, 10*time.Minute)
	var reader app.QuizReader
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		reader = rediscache.NewQuizCache(client, quizzes, cacheTTL)
	} else {
		reader = memory.NewQuizCache(quizzes, cacheTTL)
	}

	notificationService := app.NewNotificationService(notifications)
	handler := transport.NewHandler(
		app.NewQuizService(quizzes, reader, results),
		app.NewAttendanceService(attendance),
		app.NewContentService(videos, assignments, notificationService),
		notificationService,
		app.NewPerformanceService(results, attendance, videos),
	)

	e := transport.NewRouter(handler)
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 15 * time.Second

	go func() {
		log.Printf("starting classroom ledger on :%s", finalPort)
		if err := e.Start(":" + finalPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// sampleQuiz seeds the in-memory demo mode with one quiz.
func sampleQuiz() domain.Quiz {
	return domain.Quiz{
		ID:        "quiz-1",
		Title:     "Algebra Basics",
		Course:    "MATH101",
		TeacherID: "teacher-1",
		Questions: []domain.Question{
			{
				Text:          "What is 2 + 2?",
				Options:       []string{"3", "4", "5"},
				CorrectAnswer: "4",
			},
		},
		CreatedAt: time.Now(),
	}
}

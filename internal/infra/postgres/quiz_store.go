package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"classroom-ledger-service/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// QuizStore persists quizzes with the question list as a JSONB document.
type QuizStore struct {
	pool *pgxpool.Pool
}

func NewQuizStore(pool *pgxpool.Pool) *QuizStore {
	return &QuizStore{pool: pool}
}

func (s *QuizStore) CreateQuiz(ctx context.Context, quiz domain.Quiz) error {
	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO quizzes (id, title, course, teacher_id, questions, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		quiz.ID, quiz.Title, quiz.Course, quiz.TeacherID, string(questions), quiz.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert quiz: %w", err)
	}
	return nil
}

func (s *QuizStore) GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	var (
		quiz domain.Quiz
		raw  []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, course, teacher_id, questions, created_at FROM quizzes WHERE id = $1`,
		quizID).Scan(&quiz.ID, &quiz.Title, &quiz.Course, &quiz.TeacherID, &raw, &quiz.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("load quiz: %w", err)
	}
	if err := json.Unmarshal(raw, &quiz.Questions); err != nil {
		return domain.Quiz{}, fmt.Errorf("unmarshal questions: %w", err)
	}
	return quiz, nil
}

func (s *QuizStore) ListQuizzes(ctx context.Context, course string) ([]domain.Quiz, error) {
	query := `SELECT id, title, course, teacher_id, questions, created_at FROM quizzes`
	args := []interface{}{}
	if course != "" {
		query += ` WHERE course = $1`
		args = append(args, course)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	var quizzes []domain.Quiz
	for rows.Next() {
		var (
			quiz domain.Quiz
			raw  []byte
		)
		if err := rows.Scan(&quiz.ID, &quiz.Title, &quiz.Course, &quiz.TeacherID, &raw, &quiz.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		if err := json.Unmarshal(raw, &quiz.Questions); err != nil {
			return nil, fmt.Errorf("unmarshal questions: %w", err)
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes, rows.Err()
}

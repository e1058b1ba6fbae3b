package postgres

import (
	"context"
	"fmt"

	"classroom-ledger-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ResultStore persists scored results. The unique index on
// (quiz_id, student_email) backs the one-attempt invariant.
type ResultStore struct {
	pool *pgxpool.Pool
}

func NewResultStore(pool *pgxpool.Pool) *ResultStore {
	return &ResultStore{pool: pool}
}

func (s *ResultStore) CreateResult(ctx context.Context, result domain.Result) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO results (quiz_id, student_email, score, total, submitted_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		result.QuizID, result.StudentEmail, result.Score, result.Total, result.SubmittedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateSubmission
	}
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

func (s *ResultStore) HasResult(ctx context.Context, quizID, studentEmail string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM results WHERE quiz_id = $1 AND student_email = $2)`,
		quizID, studentEmail).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check result: %w", err)
	}
	return exists, nil
}

func (s *ResultStore) ResultsByStudent(ctx context.Context, studentEmail string) ([]domain.Result, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT quiz_id, student_email, score, total, submitted_at
		 FROM results WHERE student_email = $1`,
		studentEmail)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var results []domain.Result
	for rows.Next() {
		var r domain.Result
		if err := rows.Scan(&r.QuizID, &r.StudentEmail, &r.Score, &r.Total, &r.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

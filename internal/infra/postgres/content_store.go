package postgres

import (
	"context"
	"errors"
	"fmt"

	"classroom-ledger-service/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// VideoStore persists lecture video metadata.
type VideoStore struct {
	pool *pgxpool.Pool
}

func NewVideoStore(pool *pgxpool.Pool) *VideoStore {
	return &VideoStore{pool: pool}
}

func (s *VideoStore) CreateVideo(ctx context.Context, video domain.Video) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO videos (id, title, url, teacher_name, teacher_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		video.ID, video.Title, video.URL, video.TeacherName, video.TeacherID, video.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert video: %w", err)
	}
	return nil
}

func (s *VideoStore) GetVideo(ctx context.Context, videoID string) (domain.Video, error) {
	var v domain.Video
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, url, teacher_name, teacher_id, created_at FROM videos WHERE id = $1`,
		videoID).Scan(&v.ID, &v.Title, &v.URL, &v.TeacherName, &v.TeacherID, &v.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Video{}, domain.ErrVideoNotFound
	}
	if err != nil {
		return domain.Video{}, fmt.Errorf("load video: %w", err)
	}
	return v, nil
}

func (s *VideoStore) ListVideos(ctx context.Context) ([]domain.Video, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, url, teacher_name, teacher_id, created_at FROM videos`)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		var v domain.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.URL, &v.TeacherName, &v.TeacherID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (s *VideoStore) CountVideos(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM videos`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count videos: %w", err)
	}
	return count, nil
}

// AssignmentStore persists assignment metadata.
type AssignmentStore struct {
	pool *pgxpool.Pool
}

func NewAssignmentStore(pool *pgxpool.Pool) *AssignmentStore {
	return &AssignmentStore{pool: pool}
}

func (s *AssignmentStore) CreateAssignment(ctx context.Context, assignment domain.Assignment) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO assignments (id, teacher_email, title, description, due_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		assignment.ID, assignment.TeacherEmail, assignment.Title, assignment.Description,
		assignment.DueDate, assignment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

func (s *AssignmentStore) ListAssignments(ctx context.Context) ([]domain.Assignment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, teacher_email, title, description, due_date, created_at FROM assignments`)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		if err := rows.Scan(&a.ID, &a.TeacherEmail, &a.Title, &a.Description, &a.DueDate, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

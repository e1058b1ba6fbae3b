package app

import (
	"context"
	"fmt"
	"time"

	"classroom-ledger-service/internal/domain"
	"github.com/google/uuid"
)

// QuizStore persists quiz documents.
type QuizStore interface {
	CreateQuiz(ctx context.Context, quiz domain.Quiz) error
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
	ListQuizzes(ctx context.Context, course string) ([]domain.Quiz, error)
}

// QuizReader is the read side used on the scoring path; a cache usually sits here.
type QuizReader interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// ResultStore persists scored results and enforces the (quiz, student) uniqueness
// invariant: CreateResult must return domain.ErrDuplicateSubmission on a second
// insert for the same pair.
type ResultStore interface {
	CreateResult(ctx context.Context, result domain.Result) error
	HasResult(ctx context.Context, quizID, studentEmail string) (bool, error)
	ResultsByStudent(ctx context.Context, studentEmail string) ([]domain.Result, error)
}

// QuizService contains quiz authoring and one-attempt scoring use cases.
type QuizService struct {
	quizzes QuizStore
	reader  QuizReader
	results ResultStore
	now     func() time.Time
}

func NewQuizService(quizzes QuizStore, reader QuizReader, results ResultStore) *QuizService {
	return &QuizService{quizzes: quizzes, reader: reader, results: results, now: time.Now}
}

// NewQuizServiceWithClock is test-only for deterministic timestamps.
func NewQuizServiceWithClock(quizzes QuizStore, reader QuizReader, results ResultStore, now func() time.Time) *QuizService {
	return &QuizService{quizzes: quizzes, reader: reader, results: results, now: now}
}

// CreateQuiz validates and persists a new quiz, assigning it a fresh identifier.
func (s *QuizService) CreateQuiz(ctx context.Context, title, course, teacherID string, questions []domain.Question) (domain.Quiz, error) {
	if title == "" || course == "" || len(questions) == 0 {
		return domain.Quiz{}, fmt.Errorf("%w: title, course and questions are required", domain.ErrInvalidQuiz)
	}
	for i, q := range questions {
		if q.Text == "" {
			return domain.Quiz{}, fmt.Errorf("%w: question %d has no text", domain.ErrInvalidQuiz, i+1)
		}
		if len(q.Options) < 2 {
			return domain.Quiz{}, fmt.Errorf("%w: question %d needs at least two options", domain.ErrInvalidQuiz, i+1)
		}
		if q.CorrectAnswer == "" {
			return domain.Quiz{}, fmt.Errorf("%w: question %d has no correct answer", domain.ErrInvalidQuiz, i+1)
		}
		if !containsOption(q.Options, q.CorrectAnswer) {
			return domain.Quiz{}, fmt.Errorf("%w: question %d correct answer is not one of its options", domain.ErrInvalidQuiz, i+1)
		}
	}

	quiz := domain.Quiz{
		ID:        uuid.NewString(),
		Title:     title,
		Course:    course,
		TeacherID: teacherID,
		Questions: questions,
		CreatedAt: s.now(),
	}
	if err := s.quizzes.CreateQuiz(ctx, quiz); err != nil {
		return domain.Quiz{}, err
	}
	return quiz, nil
}

// GetQuiz fetches one quiz by ID.
func (s *QuizService) GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	return s.reader.GetQuiz(ctx, quizID)
}

// ListQuizzes returns all quizzes, optionally filtered by course.
func (s *QuizService) ListQuizzes(ctx context.Context, course string) ([]domain.Quiz, error) {
	return s.quizzes.ListQuizzes(ctx, course)
}

// Submit scores a student's answers against the stored answer key and records
// the result. Each (quiz, student) pair may submit exactly once; the storage
// uniqueness constraint is the authoritative duplicate signal, the initial
// lookup only short-circuits the common case.
func (s *QuizService) Submit(ctx context.Context, quizID, studentEmail string, answers []string) (domain.Result, error) {
	taken, err := s.results.HasResult(ctx, quizID, studentEmail)
	if err != nil {
		return domain.Result{}, err
	}
	if taken {
		return domain.Result{}, domain.ErrDuplicateSubmission
	}

	quiz, err := s.reader.GetQuiz(ctx, quizID)
	if err != nil {
		return domain.Result{}, err
	}

	result := domain.Result{
		QuizID:       quizID,
		StudentEmail: studentEmail,
		Score:        scoreAnswers(quiz.Questions, answers),
		Total:        len(quiz.Questions),
		SubmittedAt:  s.now(),
	}
	if err := s.results.CreateResult(ctx, result); err != nil {
		return domain.Result{}, err
	}
	return result, nil
}

// ListResults returns all results recorded for a student.
func (s *QuizService) ListResults(ctx context.Context, studentEmail string) ([]domain.Result, error) {
	return s.results.ResultsByStudent(ctx, studentEmail)
}

// scoreAnswers counts exact, case-sensitive matches by question position.
// A missing answer scores as incorrect.
func scoreAnswers(questions []domain.Question, answers []string) int {
	score := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			score++
		}
	}
	return score
}

func containsOption(options []string, answer string) bool {
	for _, opt := range options {
		if opt == answer {
			return true
		}
	}
	return false
}

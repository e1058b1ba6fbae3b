package memory

import (
	"context"
	"sync"

	"classroom-ledger-service/internal/domain"
)

// QuizStore keeps quiz documents in an in-memory map. It backs unit tests and
// the no-postgres demo mode.
type QuizStore struct {
	mu      sync.RWMutex
	quizzes map[string]domain.Quiz
	order   []string
}

func NewQuizStore() *QuizStore {
	return &QuizStore{quizzes: make(map[string]domain.Quiz)}
}

// Seed pre-loads quizzes, preserving call order for listings.
func (s *QuizStore) Seed(quizzes ...domain.Quiz) *QuizStore {
	for _, quiz := range quizzes {
		_ = s.CreateQuiz(context.Background(), quiz)
	}
	return s
}

func (s *QuizStore) CreateQuiz(_ context.Context, quiz domain.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quizzes[quiz.ID]; !ok {
		s.order = append(s.order, quiz.ID)
	}
	s.quizzes[quiz.ID] = quiz
	return nil
}

func (s *QuizStore) GetQuiz(_ context.Context, quizID string) (domain.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quiz, ok := s.quizzes[quizID]
	if !ok {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	return quiz, nil
}

func (s *QuizStore) ListQuizzes(_ context.Context, course string) ([]domain.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quizzes := make([]domain.Quiz, 0, len(s.order))
	for _, id := range s.order {
		quiz := s.quizzes[id]
		if course != "" && quiz.Course != course {
			continue
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes, nil
}

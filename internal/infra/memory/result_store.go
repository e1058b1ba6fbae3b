package memory

import (
	"context"
	"sync"

	"classroom-ledger-service/internal/domain"
)

// ResultStore keeps scored results in memory, enforcing the same
// (quiz, student) uniqueness the postgres index provides.
type ResultStore struct {
	mu      sync.RWMutex
	results map[resultKey]domain.Result
	order   []resultKey
}

type resultKey struct {
	quizID       string
	studentEmail string
}

func NewResultStore() *ResultStore {
	return &ResultStore{results: make(map[resultKey]domain.Result)}
}

func (s *ResultStore) CreateResult(_ context.Context, result domain.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := resultKey{result.QuizID, result.StudentEmail}
	if _, ok := s.results[key]; ok {
		return domain.ErrDuplicateSubmission
	}
	s.results[key] = result
	s.order = append(s.order, key)
	return nil
}

func (s *ResultStore) HasResult(_ context.Context, quizID, studentEmail string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.results[resultKey{quizID, studentEmail}]
	return ok, nil
}

func (s *ResultStore) ResultsByStudent(_ context.Context, studentEmail string) ([]domain.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []domain.Result
	for _, key := range s.order {
		if key.studentEmail == studentEmail {
			results = append(results, s.results[key])
		}
	}
	return results, nil
}

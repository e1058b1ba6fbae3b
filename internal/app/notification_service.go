package app

import (
	"context"
	"sync"
	"time"

	"classroom-ledger-service/internal/domain"
	"github.com/google/uuid"
)

// NotificationStore persists user-facing event records.
type NotificationStore interface {
	CreateNotification(ctx context.Context, n domain.Notification) error
	// ListNotifications returns records sorted by creation time descending.
	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) (domain.Notification, error)
}

// NotificationService is the sink for event records produced by other
// workflows. New records fan out to in-process subscribers.
type NotificationService struct {
	store NotificationStore
	now   func() time.Time

	mu          sync.Mutex
	subscribers map[chan domain.Notification]struct{}
}

func NewNotificationService(store NotificationStore) *NotificationService {
	return &NotificationService{
		store:       store,
		now:         time.Now,
		subscribers: make(map[chan domain.Notification]struct{}),
	}
}

// Append records a new notification and broadcasts it to subscribers.
// Callers on a primary write path treat failures here as non-fatal.
func (s *NotificationService) Append(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	n.ID = uuid.NewString()
	n.Read = false
	n.CreatedAt = s.now()
	if err := s.store.CreateNotification(ctx, n); err != nil {
		return domain.Notification{}, err
	}
	s.broadcast(n)
	return n, nil
}

// List returns all notifications, newest first.
func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	return s.store.ListNotifications(ctx)
}

// MarkRead flags a notification as read and returns the updated record.
func (s *NotificationService) MarkRead(ctx context.Context, id string) (domain.Notification, error) {
	return s.store.MarkRead(ctx, id)
}

// Subscribe returns a channel receiving notifications appended after the call.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *NotificationService) Subscribe() (<-chan domain.Notification, func()) {
	ch := make(chan domain.Notification, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *NotificationService) broadcast(n domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- n:
		default:
			// Drop the oldest pending record so a slow subscriber cannot
			// block the write path.
			select {
			case <-ch:
			default:
			}
			ch <- n
		}
	}
}

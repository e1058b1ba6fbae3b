package memory

import (
	"context"
	"sort"
	"sync"

	"classroom-ledger-service/internal/domain"
)

// NotificationStore keeps notifications in memory.
type NotificationStore struct {
	mu            sync.RWMutex
	notifications map[string]domain.Notification
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{notifications: make(map[string]domain.Notification)}
}

func (s *NotificationStore) CreateNotification(_ context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications[n.ID] = n
	return nil
}

func (s *NotificationStore) ListNotifications(_ context.Context) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	notifications := make([]domain.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		notifications = append(notifications, n)
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (s *NotificationStore) MarkRead(_ context.Context, id string) (domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	if !ok {
		return domain.Notification{}, domain.ErrNotificationNotFound
	}
	n.Read = true
	s.notifications[id] = n
	return n, nil
}

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

// NotificationStore persists event records; the data payload is JSONB.
type NotificationStore struct {
	pool *pgxpool.Pool
}

func NewNotificationStore(pool *pgxpool.Pool) *NotificationStore {
	return &NotificationStore{pool: pool}
}

func (s *NotificationStore) CreateNotification(ctx context.Context, n domain.Notification) error {
	data, err := json.Marshal(n.Data)
	if err != nil {
		return fmt.Errorf("marshal notification data: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO notifications (id, type, title, message, data, link, read, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, string(n.Type), n.Title, n.Message, string(data), n.Link, n.Read, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (s *NotificationStore) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, type, title, message, data, link, read, created_at
		 FROM notifications ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows.Scan)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (s *NotificationStore) MarkRead(ctx context.Context, id string) (domain.Notification, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1
		 RETURNING id, type, title, message, data, link, read, created_at`,
		id)
	n, err := scanNotification(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Notification{}, domain.ErrNotificationNotFound
	}
	if err != nil {
		return domain.Notification{}, err
	}
	return n, nil
}

func scanNotification(scan func(dest ...interface{}) error) (domain.Notification, error) {
	var (
		n        domain.Notification
		typeName string
		data     []byte
	)
	if err := scan(&n.ID, &typeName, &n.Title, &n.Message, &data, &n.Link, &n.Read, &n.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Notification{}, err
		}
		return domain.Notification{}, fmt.Errorf("scan notification: %w", err)
	}
	n.Type = domain.NotificationType(typeName)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &n.Data); err != nil {
			return domain.Notification{}, fmt.Errorf("unmarshal notification data: %w", err)
		}
	}
	return n, nil
}

package http

import (
	"log"

	"github.com/labstack/echo/v4"
)

// streamNotifications upgrades the request and pushes notifications appended
// after the connection was established. One-way: inbound frames are read only
// to detect the client going away.
func (h *Handler) streamNotifications(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return nil
	}
	defer conn.Close()

	updates, cancel := h.notifications.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case n, ok := <-updates:
			if !ok {
				return nil
			}
			if err := conn.WriteJSON(n); err != nil {
				log.Printf("ws write error: %v", err)
				return nil
			}
		case <-done:
			return nil
		}
	}
}

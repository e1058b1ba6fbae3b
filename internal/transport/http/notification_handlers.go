package http

import (
	"net/http"

	"classroom-ledger-service/internal/domain"
	"github.com/labstack/echo/v4"
)

func (h *Handler) listNotifications(c echo.Context) error {
	notifications, err := h.notifications.List(c.Request().Context())
	if err != nil {
		return err
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	return c.JSON(http.StatusOK, notifications)
}

func (h *Handler) markNotificationRead(c echo.Context) error {
	notification, err := h.notifications.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notification)
}

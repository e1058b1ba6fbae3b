package http

import (
	"net/http"

	"classroom-ledger-service/internal/domain"
	"github.com/labstack/echo/v4"
)

type markAttendanceRequest struct {
	StudentEmail string `json:"studentEmail" validate:"required,email"`
	// required also rejects a zero percentage, matching the reference behavior.
	WatchPercentage float64 `json:"watchPercentage" validate:"required,gte=0,lte=100"`
}

func (h *Handler) markAttendance(c echo.Context) error {
	var req markAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.attendance.MarkAttendance(c.Request().Context(), c.Param("videoId"), req.StudentEmail, req.WatchPercentage); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Attendance marked successfully"})
}

func (h *Handler) studentAttendance(c echo.Context) error {
	records, err := h.attendance.StudentAttendance(c.Request().Context(), c.Param("studentEmail"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) videoAttendance(c echo.Context) error {
	records, err := h.attendance.VideoAttendance(c.Request().Context(), c.Param("videoId"))
	if err != nil {
		return err
	}
	if records == nil {
		records = []domain.AttendanceRecord{}
	}
	return c.JSON(http.StatusOK, records)
}

package http

import (
	"net/http"
	"time"

	"classroom-ledger-service/internal/domain"
	"github.com/labstack/echo/v4"
)

type registerVideoRequest struct {
	Title       string `json:"title" validate:"required"`
	URL         string `json:"url" validate:"required,url"`
	TeacherName string `json:"teacherName" validate:"required"`
	TeacherID   string `json:"teacherId" validate:"required"`
}

func (h *Handler) registerVideo(c echo.Context) error {
	var req registerVideoRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	video, err := h.content.RegisterVideo(c.Request().Context(), req.Title, req.URL, req.TeacherName, req.TeacherID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Video uploaded successfully", "video": video})
}

func (h *Handler) listVideos(c echo.Context) error {
	videos, err := h.content.ListVideos(c.Request().Context())
	if err != nil {
		return err
	}
	if videos == nil {
		videos = []domain.Video{}
	}
	return c.JSON(http.StatusOK, videos)
}

func (h *Handler) getVideo(c echo.Context) error {
	video, err := h.content.GetVideo(c.Request().Context(), c.Param("videoId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, video)
}

type createAssignmentRequest struct {
	TeacherEmail string    `json:"teacherEmail" validate:"required,email"`
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description" validate:"required"`
	DueDate      time.Time `json:"dueDate" validate:"required"`
}

func (h *Handler) createAssignment(c echo.Context) error {
	var req createAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	assignment, err := h.content.CreateAssignment(c.Request().Context(), req.TeacherEmail, req.Title, req.Description, req.DueDate)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Assignment created successfully", "assignment": assignment})
}

func (h *Handler) listAssignments(c echo.Context) error {
	assignments, err := h.content.ListAssignments(c.Request().Context())
	if err != nil {
		return err
	}
	if assignments == nil {
		assignments = []domain.Assignment{}
	}
	return c.JSON(http.StatusOK, assignments)
}

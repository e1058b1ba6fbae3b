package http

import (
	"net/http"

	"classroom-ledger-service/internal/app"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Handler wires the application services into the REST surface.
type Handler struct {
	quizzes       *app.QuizService
	attendance    *app.AttendanceService
	content       *app.ContentService
	notifications *app.NotificationService
	performance   *app.PerformanceService
	upgrader      websocket.Upgrader
}

func NewHandler(
	quizzes *app.QuizService,
	attendance *app.AttendanceService,
	content *app.ContentService,
	notifications *app.NotificationService,
	performance *app.PerformanceService,
) *Handler {
	return &Handler{
		quizzes:       quizzes,
		attendance:    attendance,
		content:       content,
		notifications: notifications,
		performance:   performance,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// NewRouter builds the echo router with validation and error mapping installed.
func NewRouter(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler
	e.Validator = &requestValidator{validate: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")
	api.POST("/quizzes", h.createQuiz)
	api.GET("/quizzes", h.listQuizzes)
	api.GET("/quizzes/quiz/:id", h.getQuiz)
	api.POST("/quizzes/submit", h.submitQuiz)
	api.GET("/results/:studentEmail", h.listResults)
	api.GET("/performance/:studentEmail", h.performanceReport)

	api.POST("/videos", h.registerVideo)
	api.GET("/videos", h.listVideos)
	api.GET("/videos/:videoId", h.getVideo)
	api.POST("/videos/:videoId/attendance", h.markAttendance)
	api.GET("/attendance/student/:studentEmail", h.studentAttendance)
	api.GET("/attendance/video/:videoId", h.videoAttendance)

	api.POST("/assignments", h.createAssignment)
	api.GET("/assignments", h.listAssignments)

	api.GET("/notifications", h.listNotifications)
	api.PUT("/notifications/:id/read", h.markNotificationRead)

	e.GET("/ws/notifications", h.streamNotifications)
	return e
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

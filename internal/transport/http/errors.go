package http

import (
	"errors"
	"log"
	"net/http"

	"classroom-ledger-service/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorHandler maps domain errors onto the HTTP surface. Business-rule
// rejections (duplicates, threshold) are expected outcomes and are not logged
// as faults; anything unclassified is a 500 with an opaque body.
func ErrorHandler(err error, c echo.Context) {
	var (
		code    int
		message interface{}
	)

	var httpErr *echo.HTTPError
	var fieldErrs validator.ValidationErrors
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = echo.Map{"message": httpErr.Message}
	case errors.As(err, &fieldErrs):
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field()] = "failed " + fe.Tag() + " validation"
		}
		code = http.StatusBadRequest
		message = echo.Map{"message": "validation failed", "fields": fields}
	case errors.Is(err, domain.ErrQuizNotFound),
		errors.Is(err, domain.ErrVideoNotFound),
		errors.Is(err, domain.ErrAssignmentNotFound),
		errors.Is(err, domain.ErrNotificationNotFound),
		errors.Is(err, domain.ErrAttendanceNotFound):
		code = http.StatusNotFound
		message = echo.Map{"message": err.Error()}
	case errors.Is(err, domain.ErrDuplicateSubmission),
		errors.Is(err, domain.ErrDuplicateAttendance),
		errors.Is(err, domain.ErrBelowWatchThreshold),
		errors.Is(err, domain.ErrInvalidQuiz):
		code = http.StatusBadRequest
		message = echo.Map{"message": err.Error()}
	default:
		log.Printf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		code = http.StatusInternalServerError
		message = echo.Map{"message": http.StatusText(http.StatusInternalServerError)}
	}

	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
		} else {
			_ = c.JSON(code, message)
		}
	}
}

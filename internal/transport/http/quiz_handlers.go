package http

import (
	"net/http"

	"classroom-ledger-service/internal/domain"
	"github.com/labstack/echo/v4"
)

type questionPayload struct {
	Text          string   `json:"questionText" validate:"required"`
	Options       []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
}

type createQuizRequest struct {
	Title     string            `json:"title" validate:"required"`
	Course    string            `json:"course" validate:"required"`
	TeacherID string            `json:"teacherId" validate:"required"`
	Questions []questionPayload `json:"questions" validate:"required,min=1,dive"`
}

func (h *Handler) createQuiz(c echo.Context) error {
	var req createQuizRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	questions := make([]domain.Question, len(req.Questions))
	for i, q := range req.Questions {
		questions[i] = domain.Question{
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
	}

	quiz, err := h.quizzes.CreateQuiz(c.Request().Context(), req.Title, req.Course, req.TeacherID, questions)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Quiz created successfully", "quiz": quiz})
}

func (h *Handler) listQuizzes(c echo.Context) error {
	quizzes, err := h.quizzes.ListQuizzes(c.Request().Context(), c.QueryParam("course"))
	if err != nil {
		return err
	}
	if quizzes == nil {
		quizzes = []domain.Quiz{}
	}
	return c.JSON(http.StatusOK, quizzes)
}

func (h *Handler) getQuiz(c echo.Context) error {
	quiz, err := h.quizzes.GetQuiz(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quiz)
}

type submitQuizRequest struct {
	QuizID       string   `json:"quizId" validate:"required"`
	StudentEmail string   `json:"studentEmail" validate:"required,email"`
	Answers      []string `json:"answers"`
}

func (h *Handler) submitQuiz(c echo.Context) error {
	var req submitQuizRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.quizzes.Submit(c.Request().Context(), req.QuizID, req.StudentEmail, req.Answers)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Quiz submitted successfully",
		"score":   result.Score,
		"total":   result.Total,
	})
}

func (h *Handler) listResults(c echo.Context) error {
	results, err := h.quizzes.ListResults(c.Request().Context(), c.Param("studentEmail"))
	if err != nil {
		return err
	}
	if results == nil {
		results = []domain.Result{}
	}
	return c.JSON(http.StatusOK, results)
}

func (h *Handler) performanceReport(c echo.Context) error {
	report, err := h.performance.Report(c.Request().Context(), c.Param("studentEmail"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

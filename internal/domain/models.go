package domain

import "time"

// WatchThreshold is the minimum percentage of a video a student must watch
// before attendance may be recorded.
const WatchThreshold = 60.0

// Question models an MCQ question with exactly one correct answer string.
// The correct answer must be one of the options.
type Question struct {
	Text          string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Quiz is an ordered set of questions tied to a course. Immutable once created.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Course    string     `json:"course"`
	TeacherID string     `json:"teacherId"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Result is the scored outcome of one student's one attempt at one quiz.
// At most one Result exists per (QuizID, StudentEmail) pair.
type Result struct {
	QuizID       string    `json:"quizId"`
	StudentEmail string    `json:"studentEmail"`
	Score        int       `json:"score"`
	Total        int       `json:"total"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// AttendanceRecord is proof that a student watched a video past the threshold.
// At most one record exists per (VideoID, StudentEmail) pair.
type AttendanceRecord struct {
	VideoID         string  `json:"videoId"`
	StudentEmail    string  `json:"studentEmail"`
	WatchPercentage float64 `json:"watchPercentage"`
}

// Video is lecture metadata; the media itself lives in an external blob store.
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	TeacherName string    `json:"teacherName"`
	TeacherID   string    `json:"teacherId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Assignment is teacher-authored coursework metadata.
type Assignment struct {
	ID           string    `json:"id"`
	TeacherEmail string    `json:"teacherEmail"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DueDate      time.Time `json:"dueDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NotificationType tags the workflow that produced a notification.
type NotificationType string

const (
	NotificationAssignment   NotificationType = "ASSIGNMENT"
	NotificationVideo        NotificationType = "VIDEO"
	NotificationAnnouncement NotificationType = "ANNOUNCEMENT"
)

// Notification is a user-facing event record.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Data      map[string]any   `json:"data,omitempty"`
	Link      string           `json:"link,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

// AttendanceSummary aggregates a student's attendance against the catalog size.
type AttendanceSummary struct {
	TotalClassesAttended  int     `json:"totalClassesAttended"`
	TotalClassesAvailable int     `json:"totalClassesAvailable"`
	AttendancePercentage  float64 `json:"attendancePercentage"`
}

// QuizSummary aggregates a student's quiz results.
type QuizSummary struct {
	TotalQuizzesTaken int      `json:"totalQuizzesTaken"`
	AverageScore      float64  `json:"averageScore"`
	QuizResults       []Result `json:"quizResults"`
}

// PerformanceReport bundles a student's attendance and quiz aggregates.
type PerformanceReport struct {
	StudentEmail string            `json:"studentEmail"`
	Attendance   AttendanceSummary `json:"attendance"`
	Quizzes      QuizSummary       `json:"quizzes"`
}

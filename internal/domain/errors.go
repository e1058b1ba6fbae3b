package domain

import "errors"

var (
	// ErrQuizNotFound indicates the referenced quiz does not exist.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrVideoNotFound indicates the referenced video does not exist.
	ErrVideoNotFound = errors.New("video not found")
	// ErrAssignmentNotFound indicates the referenced assignment does not exist.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrNotificationNotFound indicates the referenced notification does not exist.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrAttendanceNotFound is returned when a filtered read matches no records.
	ErrAttendanceNotFound = errors.New("no attendance records found")

	// ErrDuplicateSubmission enforces the one-attempt-per-quiz invariant.
	ErrDuplicateSubmission = errors.New("you have already submitted this quiz")
	// ErrDuplicateAttendance enforces the one-record-per-video invariant.
	ErrDuplicateAttendance = errors.New("attendance already marked for this video")
	// ErrBelowWatchThreshold rejects attendance under the watch threshold.
	ErrBelowWatchThreshold = errors.New("watch percentage is less than 60%")

	// ErrInvalidQuiz wraps quiz-creation validation failures.
	ErrInvalidQuiz = errors.New("invalid quiz")
)

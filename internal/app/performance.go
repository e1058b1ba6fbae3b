package app

import (
	"context"

	"classroom-ledger-service/internal/domain"
)

// PerformanceService derives per-student aggregates from the ledgers.
type PerformanceService struct {
	results    ResultStore
	attendance AttendanceStore
	videos     VideoStore
}

func NewPerformanceService(results ResultStore, attendance AttendanceStore, videos VideoStore) *PerformanceService {
	return &PerformanceService{results: results, attendance: attendance, videos: videos}
}

// Report bundles a student's attendance percentage and quiz averages.
// Both divisions are zero-guarded: no videos means 0% attendance, no results
// means an average score of 0.
func (s *PerformanceService) Report(ctx context.Context, studentEmail string) (domain.PerformanceReport, error) {
	records, err := s.attendance.AttendanceByStudent(ctx, studentEmail)
	if err != nil {
		return domain.PerformanceReport{}, err
	}
	available, err := s.videos.CountVideos(ctx)
	if err != nil {
		return domain.PerformanceReport{}, err
	}
	results, err := s.results.ResultsByStudent(ctx, studentEmail)
	if err != nil {
		return domain.PerformanceReport{}, err
	}

	average := 0.0
	if len(results) > 0 {
		sum := 0
		for _, r := range results {
			sum += r.Score
		}
		average = float64(sum) / float64(len(results))
	}

	return domain.PerformanceReport{
		StudentEmail: studentEmail,
		Attendance: domain.AttendanceSummary{
			TotalClassesAttended:  len(records),
			TotalClassesAvailable: available,
			AttendancePercentage:  attendancePercentage(len(records), available),
		},
		Quizzes: domain.QuizSummary{
			TotalQuizzesTaken: len(results),
			AverageScore:      average,
			QuizResults:       results,
		},
	}, nil
}

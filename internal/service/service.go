package service

import (
	"time"

	"go.uber.org/zap"

	"campus-portal/config"
	"campus-portal/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Navigation NavigationService
	Cafeteria  CafeteriaService
	Exam       ExamService
	Grade      GradeService
	Attendance AttendanceService
	Schedule   ScheduleService
	Export     ExportService
}

// NewService 创建 Service 聚合
// now 为全局时钟，生产环境传 time.Now
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	now func() time.Time,
	logger *zap.Logger,
) *Service {
	return &Service{
		Navigation: NewNavigationService(),
		Cafeteria:  NewCafeteriaService(repo, cfg, now, logger.Named("cafeteria")),
		Exam:       NewExamService(repo, cfg, now, logger.Named("exam")),
		Grade:      NewGradeService(&cfg.Grading),
		Attendance: NewAttendanceService(repo, &cfg.Attendance, now, logger.Named("attendance")),
		Schedule:   NewScheduleService(repo, &cfg.App, now, logger.Named("schedule")),
		Export:     NewExportService(repo, &cfg.App, now, logger.Named("export")),
	}
}

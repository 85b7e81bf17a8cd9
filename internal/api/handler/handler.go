package handler

import "campus-portal/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Navigation *NavigationHandler
	Cafeteria  *CafeteriaHandler
	Exam       *ExamHandler
	Calculator *CalculatorHandler
	Attendance *AttendanceHandler
	Schedule   *ScheduleHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Navigation: NewNavigationHandler(svc.Navigation),
		Cafeteria:  NewCafeteriaHandler(svc.Cafeteria),
		Exam:       NewExamHandler(svc.Exam),
		Calculator: NewCalculatorHandler(svc.Grade),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Schedule:   NewScheduleHandler(svc.Schedule),
		Export:     NewExportHandler(svc.Export),
	}
}

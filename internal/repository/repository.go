package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	ScheduleCourse ScheduleCourseRepository
	Attendance     AttendanceRepository
	Exam           ExamRepository
	Menu           MenuRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		ScheduleCourse: NewScheduleCourseRepo(db),
		Attendance:     NewAttendanceRepo(db),
		Exam:           NewExamRepo(db),
		Menu:           NewMenuRepo(db),
	}
}

package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campus-portal/internal/model"
)

// AttendanceRepository 缺勤统计数据访问接口
type AttendanceRepository interface {
	List(ctx context.Context) ([]model.AttendanceCourse, error)
	// GetByID 返回课程及其缺勤记录（按日期倒序）
	GetByID(ctx context.Context, id string) (*model.AttendanceCourse, error)
	// Update 仅更新课程本身的计数与状态，不触碰缺勤记录
	Update(ctx context.Context, course *model.AttendanceCourse) error
	BatchCreate(ctx context.Context, courses []model.AttendanceCourse) error
	Count(ctx context.Context) (int64, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) List(ctx context.Context) ([]model.AttendanceCourse, error) {
	var courses []model.AttendanceCourse
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, id ASC").
		Find(&courses).Error
	return courses, err
}

func (r *attendanceRepo) GetByID(ctx context.Context, id string) (*model.AttendanceCourse, error) {
	var course model.AttendanceCourse
	err := r.db.WithContext(ctx).
		Preload("Absences", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		Where("id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *attendanceRepo) Update(ctx context.Context, course *model.AttendanceCourse) error {
	return r.db.WithContext(ctx).
		Model(&model.AttendanceCourse{}).
		Where("id = ?", course.ID).
		Omit(clause.Associations).
		Updates(map[string]interface{}{
			"used_hours":      course.UsedHours,
			"remaining_hours": course.RemainingHours,
			"status":          course.Status,
			"updated_at":      gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}

func (r *attendanceRepo) BatchCreate(ctx context.Context, courses []model.AttendanceCourse) error {
	if len(courses) == 0 {
		return nil
	}
	// 缺勤记录随课程一并创建
	return r.db.WithContext(ctx).Create(&courses).Error
}

func (r *attendanceRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.AttendanceCourse{}).Count(&n).Error
	return n, err
}

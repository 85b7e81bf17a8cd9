package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-portal/internal/model"
)

// ScheduleCourseRepository 课程表数据访问接口
type ScheduleCourseRepository interface {
	List(ctx context.Context) ([]model.ScheduleCourse, error)
	ListByDay(ctx context.Context, dayOfWeek int) ([]model.ScheduleCourse, error)
	GetByID(ctx context.Context, id string) (*model.ScheduleCourse, error)
	BatchCreate(ctx context.Context, courses []model.ScheduleCourse) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type scheduleCourseRepo struct {
	db *gorm.DB
}

// NewScheduleCourseRepo 创建 ScheduleCourseRepository 实例
func NewScheduleCourseRepo(db *gorm.DB) ScheduleCourseRepository {
	return &scheduleCourseRepo{db: db}
}

func (r *scheduleCourseRepo) List(ctx context.Context) ([]model.ScheduleCourse, error) {
	var courses []model.ScheduleCourse
	err := r.db.WithContext(ctx).
		Order("day_of_week ASC, start_time ASC, id ASC").
		Find(&courses).Error
	return courses, err
}

func (r *scheduleCourseRepo) ListByDay(ctx context.Context, dayOfWeek int) ([]model.ScheduleCourse, error) {
	var courses []model.ScheduleCourse
	err := r.db.WithContext(ctx).
		Where("day_of_week = ?", dayOfWeek).
		Order("start_time ASC, id ASC").
		Find(&courses).Error
	return courses, err
}

func (r *scheduleCourseRepo) GetByID(ctx context.Context, id string) (*model.ScheduleCourse, error) {
	var course model.ScheduleCourse
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *scheduleCourseRepo) BatchCreate(ctx context.Context, courses []model.ScheduleCourse) error {
	if len(courses) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&courses).Error
}

func (r *scheduleCourseRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ScheduleCourse{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *scheduleCourseRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ScheduleCourse{}).Count(&n).Error
	return n, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-portal/internal/model"
)

// ExamRepository 考试数据访问接口
type ExamRepository interface {
	// List 按日期、开始时间升序返回全部考试
	List(ctx context.Context) ([]model.Exam, error)
	GetByID(ctx context.Context, id string) (*model.Exam, error)
	UpdateReminder(ctx context.Context, id string, enabled bool) error
	BatchCreate(ctx context.Context, exams []model.Exam) error
	Count(ctx context.Context) (int64, error)
}

type examRepo struct {
	db *gorm.DB
}

// NewExamRepo 创建 ExamRepository 实例
func NewExamRepo(db *gorm.DB) ExamRepository {
	return &examRepo{db: db}
}

func (r *examRepo) List(ctx context.Context) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.WithContext(ctx).
		Order("date ASC, start_time ASC, id ASC").
		Find(&exams).Error
	return exams, err
}

func (r *examRepo) GetByID(ctx context.Context, id string) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&exam).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepo) UpdateReminder(ctx context.Context, id string, enabled bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.Exam{}).
		Where("id = ?", id).
		Update("reminder_enabled", enabled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *examRepo) BatchCreate(ctx context.Context, exams []model.Exam) error {
	if len(exams) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&exams).Error
}

func (r *examRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Exam{}).Count(&n).Error
	return n, err
}

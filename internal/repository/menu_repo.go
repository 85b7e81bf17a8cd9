package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campus-portal/internal/model"
)

// MenuRepository 食堂菜单数据访问接口
type MenuRepository interface {
	// List 按日期升序返回全部菜单（含菜品）
	List(ctx context.Context) ([]model.DailyMenu, error)
	GetByID(ctx context.Context, id string) (*model.DailyMenu, error)
	GetByDate(ctx context.Context, date string) (*model.DailyMenu, error)
	// ApplyVote 在尚未投票时记录一票；返回 false 表示该菜单已投过票
	ApplyVote(ctx context.Context, id, vote string) (bool, error)
	BatchCreate(ctx context.Context, menus []model.DailyMenu) error
	Count(ctx context.Context) (int64, error)
}

type menuRepo struct {
	db *gorm.DB
}

// NewMenuRepo 创建 MenuRepository 实例
func NewMenuRepo(db *gorm.DB) MenuRepository {
	return &menuRepo{db: db}
}

func preloadMeals(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

func (r *menuRepo) List(ctx context.Context) ([]model.DailyMenu, error) {
	var menus []model.DailyMenu
	err := r.db.WithContext(ctx).
		Preload("Meals", preloadMeals).
		Order("date ASC").
		Find(&menus).Error
	return menus, err
}

func (r *menuRepo) GetByID(ctx context.Context, id string) (*model.DailyMenu, error) {
	var menu model.DailyMenu
	err := r.db.WithContext(ctx).
		Preload("Meals", preloadMeals).
		Where("id = ?", id).
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepo) GetByDate(ctx context.Context, date string) (*model.DailyMenu, error) {
	var menu model.DailyMenu
	err := r.db.WithContext(ctx).
		Preload("Meals", preloadMeals).
		Where("date = ?", date).
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepo) ApplyVote(ctx context.Context, id, vote string) (bool, error) {
	var column string
	switch vote {
	case model.VoteLike:
		column = "likes"
	case model.VoteDislike:
		column = "dislikes"
	default:
		return false, fmt.Errorf("未知的投票类型 %q", vote)
	}

	// 条件更新保证同一菜单只能投一次票
	result := r.db.WithContext(ctx).
		Model(&model.DailyMenu{}).
		Where("id = ? AND user_vote = ''", id).
		Updates(map[string]interface{}{
			column:      gorm.Expr(column + " + 1"),
			"user_vote": vote,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *menuRepo) BatchCreate(ctx context.Context, menus []model.DailyMenu) error {
	if len(menus) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&menus).Error
}

func (r *menuRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.DailyMenu{}).Count(&n).Error
	return n, err
}

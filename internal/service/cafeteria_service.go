package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-portal/config"
	"campus-portal/internal/dto"
	"campus-portal/internal/model"
	"campus-portal/internal/repository"
	"campus-portal/pkg/timeutil"
)

// ── 食堂模块业务错误 ──

var (
	ErrMenuNotFound = errors.New("菜单不存在")
	ErrAlreadyVoted = errors.New("该日菜单已投过票")
)

// 拥挤度等级
const (
	DensityLow    = "low"
	DensityMedium = "medium"
	DensityHigh   = "high"
)

// hourlyOccupancy 各整点的食堂占用率（%），未列出的时段视为 0
var hourlyOccupancy = map[int]int{
	11: 35,
	12: 85,
	13: 62,
	14: 20,
}

// CafeteriaService 食堂业务接口
type CafeteriaService interface {
	// ListMenus 从今天起的工作日菜单，数量由 display_days 决定
	ListMenus(ctx context.Context) ([]dto.MenuSummaryResponse, error)
	GetMenu(ctx context.Context, id string) (*dto.MenuDetailResponse, error)
	Vote(ctx context.Context, id string, req *dto.VoteRequest) (*dto.VoteResponse, error)
	GetDensity(ctx context.Context) (*dto.DensityResponse, error)
	GetSatisfaction(ctx context.Context) (*dto.SatisfactionResponse, error)
}

type cafeteriaService struct {
	repo   *repository.Repository
	cfg    *config.CafeteriaConfig
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

// NewCafeteriaService 创建 CafeteriaService 实例
func NewCafeteriaService(repo *repository.Repository, cfg *config.Config, now func() time.Time, logger *zap.Logger) CafeteriaService {
	return &cafeteriaService{
		repo:   repo,
		cfg:    &cfg.Cafeteria,
		loc:    cfg.App.Location(),
		now:    now,
		logger: logger,
	}
}

func (s *cafeteriaService) clock() time.Time {
	return s.now().In(s.loc)
}

// ────────────────────── ListMenus ──────────────────────

func (s *cafeteriaService) ListMenus(ctx context.Context) ([]dto.MenuSummaryResponse, error) {
	menus, err := s.repo.Menu.List(ctx)
	if err != nil {
		s.logger.Error("查询菜单列表失败", zap.Error(err))
		return nil, err
	}

	now := s.clock()
	today := now.Format(timeutil.DateLayout)
	limit := s.cfg.DisplayDays

	upcoming := make([]model.DailyMenu, 0, limit)
	for _, m := range menus {
		if len(upcoming) == limit {
			break
		}
		if m.Date >= today && !s.isWeekendDate(m.Date) {
			upcoming = append(upcoming, m)
		}
	}

	// 今天之后的数据不足时，退回到最早的几个工作日
	if len(upcoming) < limit {
		upcoming = upcoming[:0]
		for _, m := range menus {
			if len(upcoming) == limit {
				break
			}
			if !s.isWeekendDate(m.Date) {
				upcoming = append(upcoming, m)
			}
		}
	}

	result := make([]dto.MenuSummaryResponse, 0, len(upcoming))
	for i := range upcoming {
		result = append(result, s.toMenuSummary(&upcoming[i], today))
	}
	return result, nil
}

// ────────────────────── GetMenu ──────────────────────

func (s *cafeteriaService) GetMenu(ctx context.Context, id string) (*dto.MenuDetailResponse, error) {
	menu, err := s.repo.Menu.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		s.logger.Error("查询菜单失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toMenuDetail(menu), nil
}

// ────────────────────── Vote ──────────────────────

func (s *cafeteriaService) Vote(ctx context.Context, id string, req *dto.VoteRequest) (*dto.VoteResponse, error) {
	if _, err := s.repo.Menu.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		s.logger.Error("查询菜单失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	applied, err := s.repo.Menu.ApplyVote(ctx, id, req.Vote)
	if err != nil {
		s.logger.Error("记录投票失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if !applied {
		return nil, ErrAlreadyVoted
	}

	menu, err := s.repo.Menu.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("重新加载菜单失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	icon := "👍"
	if req.Vote == model.VoteDislike {
		icon = "👎"
	}

	return &dto.VoteResponse{
		Menu: *s.toMenuDetail(menu),
		Toast: dto.ToastResponse{
			Type:      req.Vote,
			Message:   icon + " Oyunuz kaydedildi!",
			ExpiresAt: s.clock().Add(s.cfg.ToastDuration).Format(time.RFC3339),
		},
	}, nil
}

// ────────────────────── GetDensity ──────────────────────

func (s *cafeteriaService) GetDensity(_ context.Context) (*dto.DensityResponse, error) {
	now := s.clock()

	hourly := make([]dto.DensityPoint, 0, s.cfg.LunchEndHour-s.cfg.LunchStartHour+1)
	for h := s.cfg.LunchStartHour; h <= s.cfg.LunchEndHour; h++ {
		pct := hourlyOccupancy[h]
		hourly = append(hourly, dto.DensityPoint{
			Hour:        h,
			Label:       fmt.Sprintf("%02d:00", h),
			PercentFull: pct,
			Level:       densityLevel(pct),
		})
	}

	current := hourlyOccupancy[now.Hour()]
	level := densityLevel(current)
	return &dto.DensityResponse{
		Level:       level,
		LevelLabel:  densityLabel(level),
		PercentFull: current,
		LastUpdated: now.Format(timeutil.ClockLayout),
		Hourly:      hourly,
	}, nil
}

// ────────────────────── GetSatisfaction ──────────────────────

func (s *cafeteriaService) GetSatisfaction(ctx context.Context) (*dto.SatisfactionResponse, error) {
	today := s.clock().Format(timeutil.DateLayout)

	menu, err := s.repo.Menu.GetByDate(ctx, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		s.logger.Error("查询今日菜单失败", zap.String("date", today), zap.Error(err))
		return nil, err
	}

	return &dto.SatisfactionResponse{
		Date:       menu.Date,
		Percentage: likePercentage(menu.Likes, menu.Dislikes),
		TotalVotes: menu.Likes + menu.Dislikes,
		Likes:      menu.Likes,
		Dislikes:   menu.Dislikes,
	}, nil
}

// ── 内部方法 ──

func (s *cafeteriaService) isWeekendDate(date string) bool {
	t, err := timeutil.ParseDate(date, s.loc)
	if err != nil {
		return true
	}
	return timeutil.IsWeekend(t)
}

func (s *cafeteriaService) isLunchTime(t time.Time) bool {
	h := t.Hour()
	return h >= s.cfg.LunchStartHour && h < s.cfg.LunchEndHour
}

func (s *cafeteriaService) toMenuSummary(m *model.DailyMenu, today string) dto.MenuSummaryResponse {
	resp := dto.MenuSummaryResponse{
		ID:      m.ID,
		Date:    m.Date,
		DayName: m.DayName,
		IsToday: m.Date == today,
	}
	if t, err := timeutil.ParseDate(m.Date, s.loc); err == nil {
		resp.ShortDay = timeutil.ShortDays[timeutil.MondayIndex(t)]
		resp.DayNumber = t.Day()
	}
	return resp
}

func (s *cafeteriaService) toMenuDetail(m *model.DailyMenu) *dto.MenuDetailResponse {
	meals := make([]dto.MealResponse, 0, len(m.Meals))
	total := 0
	for _, meal := range m.Meals {
		meals = append(meals, dto.MealResponse{
			ID:       meal.ID,
			Name:     meal.Name,
			Category: meal.Category,
			Calories: meal.Calories,
		})
		total += meal.Calories
	}

	var vote *string
	if m.UserVote != "" {
		v := m.UserVote
		vote = &v
	}

	return &dto.MenuDetailResponse{
		ID:             m.ID,
		Date:           m.Date,
		DayName:        m.DayName,
		Meals:          meals,
		TotalCalories:  total,
		Likes:          m.Likes,
		Dislikes:       m.Dislikes,
		LikePercentage: likePercentage(m.Likes, m.Dislikes),
		UserVote:       vote,
		IsLunchTime:    s.isLunchTime(s.clock()),
		ServiceHours:   s.cfg.ServiceHours,
	}
}

// likePercentage 无投票时为 50
func likePercentage(likes, dislikes int) int {
	total := likes + dislikes
	if total == 0 {
		return 50
	}
	return int(math.Round(float64(likes) / float64(total) * 100))
}

func densityLevel(pct int) string {
	switch {
	case pct < 40:
		return DensityLow
	case pct < 70:
		return DensityMedium
	default:
		return DensityHigh
	}
}

func densityLabel(level string) string {
	switch level {
	case DensityLow:
		return "Sakin"
	case DensityMedium:
		return "Orta"
	default:
		return "Yoğun"
	}
}

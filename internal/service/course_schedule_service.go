package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-portal/config"
	"campus-portal/internal/dto"
	"campus-portal/internal/model"
	"campus-portal/internal/repository"
	"campus-portal/pkg/timeutil"
)

// ── 课程表模块业务错误 ──

var (
	ErrScheduleCourseNotFound = errors.New("课程不存在")
)

const (
	lunchBreakStart = "12:05"
	lunchBreakEnd   = "12:50"
	afternoonFrom   = "12:00"
	onlineRoom      = "UZAKTAN EĞİTİM"
)

// ScheduleService 课程表业务接口
type ScheduleService interface {
	Week(ctx context.Context, req *dto.ScheduleDateRequest) (*dto.ScheduleWeekResponse, error)
	Day(ctx context.Context, req *dto.ScheduleDateRequest) (*dto.ScheduleDayResponse, error)
	Create(ctx context.Context, req *dto.CreateScheduleCourseRequest) (*dto.CreateScheduleCourseResponse, error)
	Delete(ctx context.Context, id string) error
}

type scheduleService struct {
	repo   *repository.Repository
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(repo *repository.Repository, cfg *config.AppConfig, now func() time.Time, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, loc: cfg.Location(), now: now, logger: logger}
}

func (s *scheduleService) clock() time.Time {
	return s.now().In(s.loc)
}

// resolveDate 空字符串表示今天
func (s *scheduleService) resolveDate(date string) (time.Time, error) {
	if strings.TrimSpace(date) == "" {
		return timeutil.StartOfDay(s.clock()), nil
	}
	return timeutil.ParseDate(date, s.loc)
}

// ────────────────────── Week ──────────────────────

func (s *scheduleService) Week(_ context.Context, req *dto.ScheduleDateRequest) (*dto.ScheduleWeekResponse, error) {
	selected, err := s.resolveDate(req.Date)
	if err != nil {
		return nil, err
	}

	today := s.clock().Format(timeutil.DateLayout)
	selectedStr := selected.Format(timeutil.DateLayout)
	start := timeutil.StartOfWeek(selected)

	days := make([]dto.ScheduleWeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		date := d.Format(timeutil.DateLayout)
		days = append(days, dto.ScheduleWeekDay{
			Date:       date,
			DayNumber:  d.Day(),
			DayName:    timeutil.DayNames[i],
			ShortName:  timeutil.DayAbbrs[i],
			DayOfWeek:  i,
			IsSelected: date == selectedStr,
			IsToday:    date == today,
		})
	}

	return &dto.ScheduleWeekResponse{
		MonthLabel: timeutil.MonthLabel(selected),
		Days:       days,
	}, nil
}

// ────────────────────── Day ──────────────────────

func (s *scheduleService) Day(ctx context.Context, req *dto.ScheduleDateRequest) (*dto.ScheduleDayResponse, error) {
	date, err := s.resolveDate(req.Date)
	if err != nil {
		return nil, err
	}
	dow := timeutil.MondayIndex(date)

	courses, err := s.repo.ScheduleCourse.ListByDay(ctx, dow)
	if err != nil {
		s.logger.Error("查询当日课程失败", zap.Int("day_of_week", dow), zap.Error(err))
		return nil, err
	}
	views := scheduleViews(courses)

	resp := &dto.ScheduleDayResponse{
		Date:      date.Format(timeutil.DateLayout),
		DayName:   timeutil.Upper(timeutil.DayNames[dow]),
		DayOfWeek: dow,
		Morning:   make([]dto.ScheduleCourseResponse, 0),
		Afternoon: make([]dto.ScheduleCourseResponse, 0),
		LunchBreak: dto.LunchBreakResponse{
			Title:     "ÖĞLE ARASI",
			StartTime: lunchBreakStart,
			EndTime:   lunchBreakEnd,
		},
		IsEmpty: len(views) == 0,
	}
	for _, v := range views {
		if v.StartTime < afternoonFrom {
			resp.Morning = append(resp.Morning, v)
		} else {
			resp.Afternoon = append(resp.Afternoon, v)
		}
	}

	now := s.clock()
	if resp.Date == now.Format(timeutil.DateLayout) {
		clock := now.Format(timeutil.ClockLayout)
		for _, v := range views {
			if v.StartTime <= clock && clock < v.EndTime {
				resp.ActiveCourseID = v.ID
				break
			}
		}
	}

	return resp, nil
}

// ────────────────────── Create ──────────────────────

func (s *scheduleService) Create(ctx context.Context, req *dto.CreateScheduleCourseRequest) (*dto.CreateScheduleCourseResponse, error) {
	start, end, err := timeutil.ParseRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	var days []int
	for i, on := range req.SelectedDays {
		if on {
			days = append(days, i)
		}
	}
	if len(days) == 0 {
		date, err := s.resolveDate(req.Date)
		if err != nil {
			return nil, err
		}
		days = []int{timeutil.MondayIndex(date)}
	}

	room := strings.TrimSpace(req.Room)
	if room == "" && req.IsOnline {
		room = onlineRoom
	}

	courses := make([]model.ScheduleCourse, 0, len(days))
	for _, d := range days {
		courses = append(courses, model.ScheduleCourse{
			ID:         uuid.New().String(),
			Name:       timeutil.Upper(strings.TrimSpace(req.Name)),
			Instructor: strings.TrimSpace(req.Instructor),
			StartTime:  start,
			EndTime:    end,
			Room:       room,
			DayOfWeek:  d,
			IsOnline:   req.IsOnline,
		})
	}

	if err := s.repo.ScheduleCourse.BatchCreate(ctx, courses); err != nil {
		s.logger.Error("新增课程失败", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	// 带上与已有课程的冲突标记
	all, err := s.repo.ScheduleCourse.List(ctx)
	if err != nil {
		s.logger.Error("查询课程列表失败", zap.Error(err))
		return nil, err
	}
	created := make(map[string]bool, len(courses))
	for _, c := range courses {
		created[c.ID] = true
	}

	resp := &dto.CreateScheduleCourseResponse{Courses: make([]dto.ScheduleCourseResponse, 0, len(courses))}
	for _, v := range scheduleViews(all) {
		if created[v.ID] {
			resp.Courses = append(resp.Courses, v)
		}
	}

	s.logger.Info("新增课程", zap.String("name", courses[0].Name), zap.Int("days", len(courses)))
	return resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.ScheduleCourse.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleCourseNotFound
		}
		s.logger.Error("删除课程失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// scheduleViews 同一星期内时间区间重叠的课程互相标记冲突
func scheduleViews(courses []model.ScheduleCourse) []dto.ScheduleCourseResponse {
	spans := make([]timeSpan, len(courses))
	for i, c := range courses {
		spans[i] = spanOf(weekdayGroup(c.DayOfWeek), c.StartTime, c.EndTime)
	}
	conflicts := detectConflicts(spans)

	views := make([]dto.ScheduleCourseResponse, len(courses))
	for i, c := range courses {
		views[i] = dto.ScheduleCourseResponse{
			ID:          c.ID,
			Name:        c.Name,
			Instructor:  c.Instructor,
			StartTime:   c.StartTime,
			EndTime:     c.EndTime,
			Room:        c.Room,
			DayOfWeek:   c.DayOfWeek,
			IsOnline:    c.IsOnline,
			HasConflict: len(conflicts[i]) > 0,
		}
	}
	return views
}

func weekdayGroup(dow int) string {
	return timeutil.DayAbbrs[((dow%7)+7)%7]
}

package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"campus-portal/config"
	"campus-portal/internal/model"
	"campus-portal/internal/repository"
	"campus-portal/pkg/timeutil"
)

// Run 向空表灌入演示数据；已有数据的表会被跳过
// 考试与菜单的日期相对 now 计算，保证倒计时与“今日菜单”始终有内容
func Run(ctx context.Context, repo *repository.Repository, cfg *config.Config, now time.Time, logger *zap.Logger) error {
	now = now.In(cfg.App.Location())

	steps := []struct {
		name  string
		count func(context.Context) (int64, error)
		fill  func(context.Context) error
	}{
		{"schedule_courses", repo.ScheduleCourse.Count, func(ctx context.Context) error {
			return repo.ScheduleCourse.BatchCreate(ctx, cloneScheduleCourses())
		}},
		{"attendance_courses", repo.Attendance.Count, func(ctx context.Context) error {
			return repo.Attendance.BatchCreate(ctx, cloneAttendanceCourses())
		}},
		{"exams", repo.Exam.Count, func(ctx context.Context) error {
			weekStart, err := examWeekStart(&cfg.Seed, now)
			if err != nil {
				return err
			}
			return repo.Exam.BatchCreate(ctx, buildExams(weekStart))
		}},
		{"daily_menus", repo.Menu.Count, func(ctx context.Context) error {
			return repo.Menu.BatchCreate(ctx, buildMenus(now, cfg.Seed.MenuWeeks))
		}},
	}

	for _, step := range steps {
		n, err := step.count(ctx)
		if err != nil {
			return fmt.Errorf("统计 %s 失败: %w", step.name, err)
		}
		if n > 0 {
			logger.Debug("表中已有数据，跳过种子", zap.String("table", step.name), zap.Int64("rows", n))
			continue
		}
		if err := step.fill(ctx); err != nil {
			return fmt.Errorf("写入 %s 种子数据失败: %w", step.name, err)
		}
		logger.Info("种子数据已写入", zap.String("table", step.name))
	}

	return nil
}

// examWeekStart 配置优先，否则取 now 之后的下一个周一
func examWeekStart(cfg *config.SeedConfig, now time.Time) (time.Time, error) {
	if cfg.ExamWeekStart != "" {
		t, err := timeutil.ParseDate(cfg.ExamWeekStart, now.Location())
		if err != nil {
			return time.Time{}, err
		}
		return timeutil.StartOfWeek(t), nil
	}
	return timeutil.StartOfWeek(now).AddDate(0, 0, 7), nil
}

func buildExams(weekStart time.Time) []model.Exam {
	exams := make([]model.Exam, 0, len(examSeeds))
	for _, s := range examSeeds {
		e := s.exam
		e.ExamType = model.ExamTypeMidterm
		e.Date = weekStart.AddDate(0, 0, s.dayOffset).Format(timeutil.DateLayout)
		e.ReminderEnabled = true
		exams = append(exams, e)
	}
	return exams
}

// buildMenus 从本周一开始生成 weeks 周的每日菜单（含周末）
func buildMenus(now time.Time, weeks int) []model.DailyMenu {
	if weeks <= 0 {
		weeks = 1
	}
	start := timeutil.StartOfWeek(now)
	days := weeks * 7

	menus := make([]model.DailyMenu, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		tpl := menuTemplates[(i+i/7)%len(menuTemplates)]
		id := fmt.Sprintf("%d", i+1)

		meals := make([]model.Meal, 0, len(tpl.meals))
		for j, m := range tpl.meals {
			m.ID = fmt.Sprintf("%s-%d", id, j+1)
			m.MenuID = id
			m.SortOrder = j
			meals = append(meals, m)
		}

		menus = append(menus, model.DailyMenu{
			ID:       id,
			Date:     date.Format(timeutil.DateLayout),
			DayName:  timeutil.DayName(date),
			Likes:    tpl.likes,
			Dislikes: tpl.dislikes,
			Meals:    meals,
		})
	}
	return menus
}

func cloneScheduleCourses() []model.ScheduleCourse {
	out := make([]model.ScheduleCourse, len(scheduleSeeds))
	copy(out, scheduleSeeds)
	return out
}

func cloneAttendanceCourses() []model.AttendanceCourse {
	out := make([]model.AttendanceCourse, len(attendanceSeeds))
	for i, c := range attendanceSeeds {
		c.SortOrder = i
		if len(c.Absences) > 0 {
			abs := make([]model.AbsenceRecord, len(c.Absences))
			copy(abs, c.Absences)
			for j := range abs {
				abs[j].ID = c.ID + "-" + abs[j].ID
			}
			c.Absences = abs
		}
		out[i] = c
	}
	return out
}

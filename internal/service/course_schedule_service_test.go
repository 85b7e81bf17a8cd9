package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"campus-portal/internal/dto"
	"campus-portal/internal/model"
	pkgerrors "campus-portal/pkg/errors"
)

func newTestScheduleService(now time.Time) (ScheduleService, *mockRepos) {
	repo, mocks := newTestRepository()
	mocks.schedule.BatchCreate(context.Background(), []model.ScheduleCourse{
		{ID: "1", Name: "VERİ YAPILARI", Instructor: "Dr. Ayşe Demir", StartTime: "08:45", EndTime: "10:15", Room: "B-201", DayOfWeek: 2},
		{ID: "2", Name: "ALGORİTMALAR", Instructor: "Dr. Mehmet Kaya", StartTime: "10:00", EndTime: "11:30", Room: "B-202", DayOfWeek: 2},
		{ID: "3", Name: "İŞLETİM SİSTEMLERİ", Instructor: "Dr. Can Öz", StartTime: "13:00", EndTime: "14:30", Room: "Lab 3", DayOfWeek: 2},
		{ID: "4", Name: "AĞLAR", Instructor: "Dr. Elif Su", StartTime: "14:30", EndTime: "16:00", Room: "", DayOfWeek: 2, IsOnline: true},
		{ID: "5", Name: "FİZİK", Instructor: "Dr. Ali Er", StartTime: "09:00", EndTime: "10:00", Room: "A-101", DayOfWeek: 0},
	})
	cfg := testConfig()
	return NewScheduleService(repo, &cfg.App, func() time.Time { return now }, zap.NewNop()), mocks
}

// 2026-02-11 周三 10:30
var scheduleTestNow = time.Date(2026, 2, 11, 10, 30, 0, 0, time.UTC)

func TestScheduleService_Week(t *testing.T) {
	svc, _ := newTestScheduleService(scheduleTestNow)

	week, err := svc.Week(context.Background(), &dto.ScheduleDateRequest{Date: "2026-02-13"})
	if err != nil {
		t.Fatalf("Week 应成功: %v", err)
	}
	if week.MonthLabel != "Şubat 2026" {
		t.Errorf("期望 Şubat 2026，实际=%s", week.MonthLabel)
	}
	if len(week.Days) != 7 || week.Days[0].Date != "2026-02-09" {
		t.Fatalf("周应从周一 2026-02-09 开始: %+v", week.Days)
	}
	if !week.Days[4].IsSelected || week.Days[4].ShortName != "CUM" {
		t.Errorf("周五应被选中: %+v", week.Days[4])
	}
	if !week.Days[2].IsToday {
		t.Error("周三应标记为今天")
	}

	if _, err := svc.Week(context.Background(), &dto.ScheduleDateRequest{Date: "13/02/2026"}); !errors.Is(err, pkgerrors.ErrInvalidDate) {
		t.Errorf("期望 ErrInvalidDate，实际=%v", err)
	}
}

func TestScheduleService_Day(t *testing.T) {
	svc, _ := newTestScheduleService(scheduleTestNow)

	day, err := svc.Day(context.Background(), &dto.ScheduleDateRequest{})
	if err != nil {
		t.Fatalf("Day 应成功: %v", err)
	}
	if day.DayName != "ÇARŞAMBA" || day.DayOfWeek != 2 {
		t.Errorf("期望 ÇARŞAMBA/2，实际 %s/%d", day.DayName, day.DayOfWeek)
	}
	if len(day.Morning) != 2 || len(day.Afternoon) != 2 {
		t.Fatalf("期望上午 2 节、下午 2 节，实际 %d/%d", len(day.Morning), len(day.Afternoon))
	}
	if !day.Morning[0].HasConflict || !day.Morning[1].HasConflict {
		t.Error("08:45-10:15 与 10:00-11:30 重叠，双方都应标记冲突")
	}
	if day.Afternoon[0].HasConflict || day.Afternoon[1].HasConflict {
		t.Error("首尾相接的课程不算冲突")
	}
	if day.ActiveCourseID != "2" {
		t.Errorf("10:30 应处于课程 2，实际=%s", day.ActiveCourseID)
	}
	if day.LunchBreak.Title != "ÖĞLE ARASI" || day.IsEmpty {
		t.Errorf("午休或空标记不正确: %+v", day)
	}
}

func TestScheduleService_DayEmpty(t *testing.T) {
	svc, _ := newTestScheduleService(scheduleTestNow)

	day, err := svc.Day(context.Background(), &dto.ScheduleDateRequest{Date: "2026-02-15"})
	if err != nil {
		t.Fatalf("Day 应成功: %v", err)
	}
	if !day.IsEmpty || day.ActiveCourseID != "" {
		t.Errorf("周日应无课程: %+v", day)
	}
	if day.Morning == nil || day.Afternoon == nil {
		t.Error("空列表应序列化为 []，不应为 nil")
	}
}

func TestScheduleService_Create(t *testing.T) {
	svc, mocks := newTestScheduleService(scheduleTestNow)
	ctx := context.Background()

	days := make([]bool, 7)
	days[0], days[3] = true, true
	resp, err := svc.Create(ctx, &dto.CreateScheduleCourseRequest{
		Name:         "lineer cebir",
		Instructor:   " Dr. Zeynep Ak ",
		SelectedDays: days,
		StartTime:    "09:30 AM",
		EndTime:      "11:00 AM",
		IsOnline:     true,
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if len(resp.Courses) != 2 {
		t.Fatalf("选择两天应生成 2 条课程，实际=%d", len(resp.Courses))
	}
	for _, c := range resp.Courses {
		if c.Name != "LİNEER CEBİR" {
			t.Errorf("课程名应按土耳其语规则大写，实际=%s", c.Name)
		}
		if c.StartTime != "09:30" || c.EndTime != "11:00" {
			t.Errorf("时间应规范为 24 小时制，实际 %s-%s", c.StartTime, c.EndTime)
		}
		if c.Room != "UZAKTAN EĞİTİM" || c.Instructor != "Dr. Zeynep Ak" {
			t.Errorf("教室或教师不正确: %s / %s", c.Room, c.Instructor)
		}
	}
	// 周一 09:00-10:00 的 FİZİK 与新课程重叠
	var monday *dto.ScheduleCourseResponse
	for i := range resp.Courses {
		if resp.Courses[i].DayOfWeek == 0 {
			monday = &resp.Courses[i]
		}
	}
	if monday == nil || !monday.HasConflict {
		t.Errorf("周一的新课程应与 FİZİK 冲突: %+v", monday)
	}
	if len(mocks.schedule.courses) != 7 {
		t.Errorf("期望共 7 条课程，实际=%d", len(mocks.schedule.courses))
	}
}

func TestScheduleService_CreateUsesDateWhenNoDaySelected(t *testing.T) {
	svc, _ := newTestScheduleService(scheduleTestNow)

	resp, err := svc.Create(context.Background(), &dto.CreateScheduleCourseRequest{
		Name:      "Seminer",
		StartTime: "16:00",
		EndTime:   "17:00",
		Date:      "2026-02-13",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if len(resp.Courses) != 1 || resp.Courses[0].DayOfWeek != 4 {
		t.Errorf("应落在所选日期的周五，实际=%+v", resp.Courses)
	}
}

func TestScheduleService_CreateInvalidTime(t *testing.T) {
	svc, mocks := newTestScheduleService(scheduleTestNow)
	ctx := context.Background()

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{"结束早于开始", "11:00", "10:00", pkgerrors.ErrInvalidTimeRange},
		{"开始等于结束", "10:00", "10:00", pkgerrors.ErrInvalidTimeRange},
		{"格式错误", "25:99", "26:00", pkgerrors.ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &dto.CreateScheduleCourseRequest{Name: "X", StartTime: tt.start, EndTime: tt.end})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("期望 %v，实际=%v", tt.wantErr, err)
			}
		})
	}
	if len(mocks.schedule.courses) != 5 {
		t.Errorf("校验失败时不应写入，实际=%d", len(mocks.schedule.courses))
	}
}

func TestScheduleService_Delete(t *testing.T) {
	svc, mocks := newTestScheduleService(scheduleTestNow)
	ctx := context.Background()

	if err := svc.Delete(ctx, "1"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, ok := mocks.schedule.courses["1"]; ok {
		t.Error("课程 1 应已删除")
	}

	// 删除后课程 2 不再冲突
	day, _ := svc.Day(ctx, &dto.ScheduleDateRequest{})
	if day.Morning[0].HasConflict {
		t.Error("删除后剩余课程不应再标记冲突")
	}

	if err := svc.Delete(ctx, "1"); !errors.Is(err, ErrScheduleCourseNotFound) {
		t.Errorf("期望 ErrScheduleCourseNotFound，实际=%v", err)
	}
}

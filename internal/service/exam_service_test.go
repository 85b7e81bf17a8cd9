package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"campus-portal/internal/dto"
	"campus-portal/internal/model"
)

func newTestExamService(now time.Time) (ExamService, *mockRepos) {
	repo, mocks := newTestRepository()
	mocks.exam.BatchCreate(context.Background(), []model.Exam{
		{ID: "1", CourseCode: "MAT101", CourseName: "Matematik I", ExamType: model.ExamTypeMidterm, Date: "2026-02-09", StartTime: "09:00", EndTime: "11:00", Building: "A Blok", Room: "Amfi 1", Floor: "Zemin Kat", ReminderEnabled: true},
		{ID: "2", CourseCode: "HUK201", CourseName: "Hukuka Giriş", ExamType: model.ExamTypeMidterm, Date: "2026-02-09", StartTime: "09:00", EndTime: "10:30", Building: "C Blok", Room: "D-204", ReminderEnabled: true},
		{ID: "3", CourseCode: "FIZ102", CourseName: "Fizik II", ExamType: model.ExamTypeFinal, Date: "2026-02-11", StartTime: "13:00", EndTime: "15:00", Building: "B Blok", Room: "B-101"},
		{ID: "4", CourseCode: "KIM101", CourseName: "Kimya", ExamType: model.ExamTypeQuiz, Date: "2026-01-20", StartTime: "10:00", EndTime: "11:00", Building: "B Blok", Room: "B-102"},
	})
	return NewExamService(repo, testConfig(), func() time.Time { return now }, zap.NewNop()), mocks
}

// 2026-02-05 周四 10:00，考试周为下一周
var examTestNow = time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC)

func TestExamService_ListMarksConflicts(t *testing.T) {
	svc, _ := newTestExamService(examTestNow)

	exams, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	byID := make(map[string]dto.ExamResponse)
	for _, e := range exams {
		byID[e.ID] = e
	}

	if !byID["1"].HasConflict || !byID["2"].HasConflict {
		t.Error("MAT101 与 HUK201 时间重叠，双方都应标记冲突")
	}
	if len(byID["1"].ConflictWith) != 1 || byID["1"].ConflictWith[0] != "HUK201" {
		t.Errorf("MAT101 应与 HUK201 冲突，实际=%v", byID["1"].ConflictWith)
	}
	if byID["3"].HasConflict || byID["4"].HasConflict {
		t.Error("无重叠的考试不应标记冲突")
	}
}

func TestExamService_Home(t *testing.T) {
	svc, _ := newTestExamService(examTestNow)

	home, err := svc.Home(context.Background())
	if err != nil {
		t.Fatalf("Home 应成功: %v", err)
	}
	if home.Student.Initials != "AY" {
		t.Errorf("期望首字母 AY，实际=%s", home.Student.Initials)
	}
	if home.NextExam == nil || home.NextExam.Exam.ID != "1" {
		t.Fatalf("下一场考试应为 MAT101，实际=%+v", home.NextExam)
	}
	cd := home.NextExam.Countdown
	if cd.Days != 3 || cd.Hours != 23 || cd.Minutes != 0 || cd.Seconds != 0 {
		t.Errorf("期望倒计时 3 天 23 小时，实际 %+v", cd)
	}
	if !home.Banner.Visible || home.Banner.Badge != "SINAV HAFTASI" {
		t.Errorf("下周有考试时应显示横幅: %+v", home.Banner)
	}
}

func TestExamService_HomeWithoutUpcomingExams(t *testing.T) {
	svc, _ := newTestExamService(time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC))

	home, err := svc.Home(context.Background())
	if err != nil {
		t.Fatalf("Home 应成功: %v", err)
	}
	if home.NextExam != nil {
		t.Errorf("考试全部结束后不应有下一场: %+v", home.NextExam)
	}
	if home.Banner.Visible {
		t.Error("两周内无考试时不应显示横幅")
	}
}

func TestExamService_Get(t *testing.T) {
	svc, _ := newTestExamService(examTestNow)
	ctx := context.Background()

	detail, err := svc.Get(ctx, "1")
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if detail.TypeLabel != "VİZE SINAVI" {
		t.Errorf("期望 VİZE SINAVI，实际=%s", detail.TypeLabel)
	}
	if detail.FormattedDate != "9 Şubat 2026" || detail.DayName != "Pazartesi" {
		t.Errorf("日期展示不正确: %s %s", detail.FormattedDate, detail.DayName)
	}
	if detail.TimeRange != "09:00 - 11:00" || detail.Location != "A Blok - Amfi 1 (Zemin Kat)" {
		t.Errorf("时间或地点不正确: %s / %s", detail.TimeRange, detail.Location)
	}
	if len(detail.ConflictExams) != 1 || detail.ConflictExams[0].CourseCode != "HUK201" {
		t.Errorf("冲突考试应为 HUK201，实际=%+v", detail.ConflictExams)
	}
	if len(detail.StudyNotes) == 0 {
		t.Error("应附带复习提纲")
	}

	if _, err := svc.Get(ctx, "nope"); !errors.Is(err, ErrExamNotFound) {
		t.Errorf("期望 ErrExamNotFound，实际=%v", err)
	}
}

func TestExamService_SetReminder(t *testing.T) {
	svc, mocks := newTestExamService(examTestNow)
	ctx := context.Background()

	off := false
	resp, err := svc.SetReminder(ctx, "1", &dto.UpdateReminderRequest{Enabled: &off})
	if err != nil {
		t.Fatalf("SetReminder 应成功: %v", err)
	}
	if resp.ReminderEnabled || mocks.exam.exams["1"].ReminderEnabled {
		t.Error("提醒应已关闭")
	}
	if !strings.Contains(resp.Message, "iptal") {
		t.Errorf("关闭提示不正确: %s", resp.Message)
	}

	on := true
	resp, _ = svc.SetReminder(ctx, "1", &dto.UpdateReminderRequest{Enabled: &on})
	if !resp.ReminderEnabled || !strings.Contains(resp.Message, "1 gün önce") {
		t.Errorf("开启提示不正确: %+v", resp)
	}

	if _, err := svc.SetReminder(ctx, "nope", &dto.UpdateReminderRequest{Enabled: &on}); !errors.Is(err, ErrExamNotFound) {
		t.Errorf("期望 ErrExamNotFound，实际=%v", err)
	}
}

func TestExamService_Countdown(t *testing.T) {
	svc, _ := newTestExamService(examTestNow)
	ctx := context.Background()

	resp, err := svc.Countdown(ctx, "3")
	if err != nil {
		t.Fatalf("Countdown 应成功: %v", err)
	}
	// 02-05 10:00 → 02-11 13:00
	if resp.Countdown.Days != 6 || resp.Countdown.Hours != 3 || resp.Countdown.Expired {
		t.Errorf("期望 6 天 3 小时，实际 %+v", resp.Countdown)
	}

	past, err := svc.Countdown(ctx, "4")
	if err != nil {
		t.Fatalf("Countdown 应成功: %v", err)
	}
	if !past.Countdown.Expired || past.Countdown.Days != 0 {
		t.Errorf("已过去的考试倒计时应归零: %+v", past.Countdown)
	}
}

func TestExamService_StreamCountdown(t *testing.T) {
	svc, _ := newTestExamService(examTestNow)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// 已过去的考试：推送一次归零值后关闭
	ch, err := svc.StreamCountdown(ctx, "4")
	if err != nil {
		t.Fatalf("StreamCountdown 应成功: %v", err)
	}
	var got []dto.CountdownResponse
	for cd := range ch {
		got = append(got, cd)
	}
	if len(got) != 1 || !got[0].Expired {
		t.Errorf("期望收到 1 个归零值，实际=%+v", got)
	}

	if _, err := svc.StreamCountdown(ctx, "nope"); !errors.Is(err, ErrExamNotFound) {
		t.Errorf("期望 ErrExamNotFound，实际=%v", err)
	}
}

func TestExamService_Week(t *testing.T) {
	svc, _ := newTestExamService(examTestNow)
	ctx := context.Background()

	week, err := svc.Week(ctx, &dto.WeekGridRequest{})
	if err != nil {
		t.Fatalf("Week 应成功: %v", err)
	}
	if week.WeekLabel != "9 - 13 Şubat 2026" {
		t.Errorf("默认应展示考试周，实际=%s", week.WeekLabel)
	}
	if len(week.Days) != 7 || week.Days[0].DayName != "PZT" || week.Days[0].DayNumber != 9 {
		t.Errorf("表头不正确: %+v", week.Days)
	}
	if len(week.Rows) != 6 || week.Rows[0].Slot != "09:00" {
		t.Errorf("期望 6 个时段行，实际=%d", len(week.Rows))
	}
	if cell := week.Rows[0].Cells[0]; cell.Exam == nil || !cell.Exam.HasConflict {
		t.Errorf("周一 09:00 应展示冲突考试，实际=%+v", cell.Exam)
	}
	if cell := week.Rows[3].Cells[2]; cell.Exam == nil || cell.Exam.CourseCode != "FIZ102" {
		t.Errorf("周三 13:00 应为 FIZ102，实际=%+v", cell.Exam)
	}

	if !week.HasConflicts || len(week.Conflicts) != 1 {
		t.Fatalf("期望 1 条冲突提示，实际=%d", len(week.Conflicts))
	}
	w := week.Conflicts[0]
	if w.Title != "Sınav Çakışması (PZT 09:00)" || w.Subtitle != "MAT101 ve HUK201 aynı saatte" {
		t.Errorf("冲突文案不正确: %s / %s", w.Title, w.Subtitle)
	}
}

func TestExamService_WeekWorkweekAndExplicitStart(t *testing.T) {
	svc, _ := newTestExamService(examTestNow)

	week, err := svc.Week(context.Background(), &dto.WeekGridRequest{Start: "2026-03-31", View: WeekViewWorkweek})
	if err != nil {
		t.Fatalf("Week 应成功: %v", err)
	}
	if len(week.Days) != 5 {
		t.Errorf("工作周应为 5 天，实际=%d", len(week.Days))
	}
	if week.WeekLabel != "30 Mart - 3 Nisan 2026" {
		t.Errorf("跨月标签不正确: %s", week.WeekLabel)
	}
	if len(week.Conflicts) != 0 || week.HasConflicts {
		t.Error("该周无考试，不应有冲突")
	}

	if _, err := svc.Week(context.Background(), &dto.WeekGridRequest{Start: "31.03.2026"}); err == nil {
		t.Error("非法日期应报错")
	}
}

func TestExamService_ResolveConflicts(t *testing.T) {
	svc, _ := newTestExamService(examTestNow)
	ctx := context.Background()

	keep, err := svc.ResolveConflicts(ctx, &dto.ResolveConflictRequest{Action: ConflictActionKeep})
	if err != nil {
		t.Fatalf("ResolveConflicts 应成功: %v", err)
	}
	if keep.Resolved || keep.Message != "Mevcut program korundu." {
		t.Errorf("keep 不应标记已解决: %+v", keep)
	}

	res, _ := svc.ResolveConflicts(ctx, &dto.ResolveConflictRequest{Action: ConflictActionReschedule})
	if !res.Resolved {
		t.Error("reschedule 后应标记已解决")
	}

	week, _ := svc.Week(ctx, &dto.WeekGridRequest{})
	if week.HasConflicts {
		t.Error("已解决后 has_conflicts 应为 false")
	}
	if len(week.Conflicts) != 1 || !week.Conflicts[0].IsResolved {
		t.Errorf("冲突提示应保留并标记已解决: %+v", week.Conflicts)
	}
}

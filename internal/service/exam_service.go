package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-portal/config"
	"campus-portal/internal/dto"
	"campus-portal/internal/model"
	"campus-portal/internal/repository"
	"campus-portal/pkg/timeutil"
)

// ── 考试日历模块业务错误 ──

var (
	ErrExamNotFound = errors.New("考试不存在")
)

// 周视图
const (
	WeekViewWeekly   = "weekly"
	WeekViewWorkweek = "workweek"
)

// 冲突处理动作
const (
	ConflictActionReschedule = "reschedule"
	ConflictActionCancel     = "cancel"
	ConflictActionKeep       = "keep"
)

// weekSlots 周视图的时段行
var weekSlots = []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00"}

var examTypeLabels = map[string]string{
	model.ExamTypeMidterm: "VİZE SINAVI",
	model.ExamTypeFinal:   "FİNAL SINAVI",
	model.ExamTypeMakeup:  "BÜTÜNLEME SINAVI",
	model.ExamTypeQuiz:    "QUIZ",
}

var sampleStudyNotes = []dto.StudyNote{
	{ID: "1", Title: "Konu 1: Limitler", Content: "Limit tanımı, tek taraflı limitler, sonsuz limitler"},
	{ID: "2", Title: "Konu 2: Türev", Content: "Türev tanımı, türev kuralları, zincir kuralı"},
	{ID: "3", Title: "Konu 3: İntegral", Content: "Belirsiz integral, belirli integral, alan hesabı"},
}

var todayLessons = []dto.LessonResponse{
	{ID: "1", CourseCode: "YZK101", CourseName: "Yapay Zeka Giriş", Time: "09:00", Room: "Lab 2 - B Blok"},
	{ID: "2", CourseCode: "VYP201", CourseName: "Veri Yapıları", Time: "13:00", Room: "Derslik 104"},
}

var campusNews = []dto.NewsResponse{
	{ID: "1", Title: "Bahar Şenliği Tarihleri Açıklandı!", Date: "2 saat önce"},
	{ID: "2", Title: "Kütüphane Çalışma Saatleri Güncellendi", Date: "Dün"},
}

// ExamService 考试日历业务接口
type ExamService interface {
	Home(ctx context.Context) (*dto.ExamHomeResponse, error)
	List(ctx context.Context) ([]dto.ExamResponse, error)
	Get(ctx context.Context, id string) (*dto.ExamDetailResponse, error)
	SetReminder(ctx context.Context, id string, req *dto.UpdateReminderRequest) (*dto.ReminderResponse, error)
	Countdown(ctx context.Context, id string) (*dto.ExamCountdownResponse, error)
	// StreamCountdown 按配置间隔推送倒计时，ctx 结束或归零时关闭 channel
	StreamCountdown(ctx context.Context, id string) (<-chan dto.CountdownResponse, error)
	Week(ctx context.Context, req *dto.WeekGridRequest) (*dto.WeekGridResponse, error)
	ResolveConflicts(ctx context.Context, req *dto.ResolveConflictRequest) (*dto.ResolveConflictResponse, error)
}

type examService struct {
	repo   *repository.Repository
	cfg    *config.Config
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger

	mu                sync.Mutex
	conflictsResolved bool
}

// NewExamService 创建 ExamService 实例
func NewExamService(repo *repository.Repository, cfg *config.Config, now func() time.Time, logger *zap.Logger) ExamService {
	return &examService{
		repo:   repo,
		cfg:    cfg,
		loc:    cfg.App.Location(),
		now:    now,
		logger: logger,
	}
}

func (s *examService) clock() time.Time {
	return s.now().In(s.loc)
}

// ────────────────────── Home ──────────────────────

func (s *examService) Home(ctx context.Context) (*dto.ExamHomeResponse, error) {
	exams, views, err := s.loadExams(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	resp := &dto.ExamHomeResponse{
		Student: dto.StudentResponse{
			Name:       s.cfg.App.StudentName,
			Initials:   initials(s.cfg.App.StudentName),
			Department: s.cfg.App.Department,
			Faculty:    s.cfg.App.Faculty,
		},
		TodayLessons: todayLessons,
		CampusNews:   campusNews,
	}

	// 考试按时间升序，第一个尚未开始的即为下一场
	for i := range exams {
		start, err := s.examStart(&exams[i])
		if err != nil || !start.After(now) {
			continue
		}
		resp.NextExam = &dto.ExamCountdownResponse{
			Exam:      views[i],
			Countdown: toCountdownResponse(CalculateCountdown(now, start), start),
		}
		break
	}

	// 本周或下周有考试时显示考试周横幅
	weekStart := timeutil.StartOfWeek(now)
	bannerEnd := weekStart.AddDate(0, 0, 14)
	for i := range exams {
		d, err := timeutil.ParseDate(exams[i].Date, s.loc)
		if err != nil {
			continue
		}
		if !d.Before(weekStart) && d.Before(bannerEnd) {
			resp.Banner = dto.ExamBannerResponse{
				Visible:  true,
				Badge:    "SINAV HAFTASI",
				Title:    "Sınav Takvimi Yayında",
				Subtitle: "Sınav takvimine ulaşmak için tıkla",
			}
			break
		}
	}

	return resp, nil
}

// ────────────────────── List ──────────────────────

func (s *examService) List(ctx context.Context) ([]dto.ExamResponse, error) {
	_, views, err := s.loadExams(ctx)
	if err != nil {
		return nil, err
	}
	return views, nil
}

// ────────────────────── Get ──────────────────────

func (s *examService) Get(ctx context.Context, id string) (*dto.ExamDetailResponse, error) {
	exams, views, err := s.loadExams(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOfExam(exams, id)
	if idx < 0 {
		return nil, ErrExamNotFound
	}
	exam := &exams[idx]

	detail := &dto.ExamDetailResponse{
		ExamResponse: views[idx],
		TypeLabel:    examTypeLabel(exam.ExamType),
		TimeRange:    exam.StartTime + " - " + exam.EndTime,
		Location:     examLocation(exam),
		StudyNotes:   sampleStudyNotes,
	}
	if d, err := timeutil.ParseDate(exam.Date, s.loc); err == nil {
		detail.FormattedDate = timeutil.FormatLongDate(d)
		detail.DayName = timeutil.DayName(d)
	}

	for _, code := range views[idx].ConflictWith {
		for i := range views {
			if i != idx && views[i].CourseCode == code && views[i].Date == exam.Date {
				detail.ConflictExams = append(detail.ConflictExams, views[i])
			}
		}
	}

	return detail, nil
}

// ────────────────────── SetReminder ──────────────────────

func (s *examService) SetReminder(ctx context.Context, id string, req *dto.UpdateReminderRequest) (*dto.ReminderResponse, error) {
	enabled := *req.Enabled
	if err := s.repo.Exam.UpdateReminder(ctx, id, enabled); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		s.logger.Error("更新考试提醒失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	msg := "❌ Hatırlatıcı iptal edildi."
	if enabled {
		msg = "✅ Hatırlatıcı ayarlandı! Sınavdan 1 gün önce bildirim alacaksınız."
	}

	return &dto.ReminderResponse{
		ExamID:          id,
		ReminderEnabled: enabled,
		Message:         msg,
		ExpiresAt:       s.clock().Add(s.cfg.Exam.ReminderMessageTTL).Format(time.RFC3339),
	}, nil
}

// ────────────────────── Countdown ──────────────────────

func (s *examService) Countdown(ctx context.Context, id string) (*dto.ExamCountdownResponse, error) {
	exams, views, err := s.loadExams(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOfExam(exams, id)
	if idx < 0 {
		return nil, ErrExamNotFound
	}

	start, err := s.examStart(&exams[idx])
	if err != nil {
		s.logger.Error("考试时间无法解析", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.ExamCountdownResponse{
		Exam:      views[idx],
		Countdown: toCountdownResponse(CalculateCountdown(s.clock(), start), start),
	}, nil
}

func (s *examService) StreamCountdown(ctx context.Context, id string) (<-chan dto.CountdownResponse, error) {
	exam, err := s.repo.Exam.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		s.logger.Error("查询考试失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	start, err := s.examStart(exam)
	if err != nil {
		return nil, err
	}

	src := WatchCountdown(ctx, s.cfg.Exam.CountdownInterval, start, s.now)
	out := make(chan dto.CountdownResponse)
	go func() {
		defer close(out)
		for cd := range src {
			select {
			case out <- toCountdownResponse(cd, start):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// ────────────────────── Week ──────────────────────

func (s *examService) Week(ctx context.Context, req *dto.WeekGridRequest) (*dto.WeekGridResponse, error) {
	exams, views, err := s.loadExams(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	var start time.Time
	if req.Start != "" {
		d, err := timeutil.ParseDate(req.Start, s.loc)
		if err != nil {
			return nil, err
		}
		start = timeutil.StartOfWeek(d)
	} else {
		start = s.defaultWeekStart(exams, now)
	}

	view := req.View
	if view == "" {
		view = WeekViewWeekly
	}
	dayCount := 7
	if view == WeekViewWorkweek {
		dayCount = 5
	}

	today := now.Format(timeutil.DateLayout)
	days := make([]dto.WeekDayHeader, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		d := start.AddDate(0, 0, i)
		date := d.Format(timeutil.DateLayout)
		days = append(days, dto.WeekDayHeader{
			Date:      date,
			DayName:   timeutil.DayAbbrs[i],
			DayNumber: d.Day(),
			IsToday:   date == today,
		})
	}

	rows := make([]dto.WeekGridRow, 0, len(weekSlots))
	for _, slot := range weekSlots {
		row := dto.WeekGridRow{Slot: slot, Cells: make([]dto.WeekGridCell, 0, dayCount)}
		for _, day := range days {
			row.Cells = append(row.Cells, dto.WeekGridCell{
				Date: day.Date,
				Exam: pickSlotExam(views, day.Date, slot),
			})
		}
		rows = append(rows, row)
	}

	s.mu.Lock()
	resolved := s.conflictsResolved
	s.mu.Unlock()

	conflicts := buildConflictWarnings(views, days, resolved)
	return &dto.WeekGridResponse{
		WeekLabel:    weekLabel(start),
		View:         view,
		Days:         days,
		Rows:         rows,
		Conflicts:    conflicts,
		HasConflicts: len(conflicts) > 0 && !resolved,
	}, nil
}

// ────────────────────── ResolveConflicts ──────────────────────

func (s *examService) ResolveConflicts(_ context.Context, req *dto.ResolveConflictRequest) (*dto.ResolveConflictResponse, error) {
	var msg string
	switch req.Action {
	case ConflictActionReschedule:
		msg = "Yeniden planlama talebiniz alındı."
	case ConflictActionCancel:
		msg = "Çakışma uyarısı kapatıldı."
	default:
		return &dto.ResolveConflictResponse{Action: req.Action, Resolved: s.isResolved(), Message: "Mevcut program korundu."}, nil
	}

	s.mu.Lock()
	s.conflictsResolved = true
	s.mu.Unlock()

	s.logger.Info("考试冲突已处理", zap.String("action", req.Action))
	return &dto.ResolveConflictResponse{Action: req.Action, Resolved: true, Message: msg}, nil
}

// ── 内部方法 ──

func (s *examService) isResolved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conflictsResolved
}

// loadExams 读取全部考试并计算冲突标记，返回的两个切片下标一一对应
func (s *examService) loadExams(ctx context.Context) ([]model.Exam, []dto.ExamResponse, error) {
	exams, err := s.repo.Exam.List(ctx)
	if err != nil {
		s.logger.Error("查询考试列表失败", zap.Error(err))
		return nil, nil, err
	}
	return exams, examViews(exams), nil
}

func (s *examService) examStart(e *model.Exam) (time.Time, error) {
	d, err := timeutil.ParseDate(e.Date, s.loc)
	if err != nil {
		return time.Time{}, err
	}
	return timeutil.At(d, e.StartTime)
}

// defaultWeekStart 下一场考试所在周，没有则为本周
func (s *examService) defaultWeekStart(exams []model.Exam, now time.Time) time.Time {
	today := now.Format(timeutil.DateLayout)
	for _, e := range exams {
		if e.Date < today {
			continue
		}
		if d, err := timeutil.ParseDate(e.Date, s.loc); err == nil {
			return timeutil.StartOfWeek(d)
		}
	}
	return timeutil.StartOfWeek(now)
}

// examViews 转换为响应并计算冲突：同一天内时间区间重叠即冲突
func examViews(exams []model.Exam) []dto.ExamResponse {
	spans := make([]timeSpan, len(exams))
	for i, e := range exams {
		spans[i] = spanOf(e.Date, e.StartTime, e.EndTime)
	}
	conflicts := detectConflicts(spans)

	views := make([]dto.ExamResponse, len(exams))
	for i, e := range exams {
		views[i] = dto.ExamResponse{
			ID:              e.ID,
			CourseCode:      e.CourseCode,
			CourseName:      e.CourseName,
			ExamType:        e.ExamType,
			Date:            e.Date,
			StartTime:       e.StartTime,
			EndTime:         e.EndTime,
			Building:        e.Building,
			Room:            e.Room,
			Floor:           e.Floor,
			HasConflict:     len(conflicts[i]) > 0,
			ReminderEnabled: e.ReminderEnabled,
		}
		for _, j := range conflicts[i] {
			views[i].ConflictWith = append(views[i].ConflictWith, exams[j].CourseCode)
		}
	}
	return views
}

// pickSlotExam 该日该时段开始的考试，有冲突的优先
func pickSlotExam(views []dto.ExamResponse, date, slot string) *dto.ExamResponse {
	var found *dto.ExamResponse
	for i := range views {
		v := &views[i]
		if v.Date != date || v.StartTime != slot {
			continue
		}
		if v.HasConflict {
			return v
		}
		if found == nil {
			found = v
		}
	}
	return found
}

// buildConflictWarnings 周内每组相互冲突的考试生成一条提示
func buildConflictWarnings(views []dto.ExamResponse, days []dto.WeekDayHeader, resolved bool) []dto.ConflictWarning {
	abbrByDate := make(map[string]string, len(days))
	for _, d := range days {
		abbrByDate[d.Date] = d.DayName
	}

	warnings := make([]dto.ConflictWarning, 0)
	seen := make(map[string]bool)
	for i := range views {
		v := views[i]
		abbr, inWeek := abbrByDate[v.Date]
		if !inWeek || !v.HasConflict || seen[v.ID] {
			continue
		}

		group := []dto.ExamResponse{v}
		seen[v.ID] = true
		for j := range views {
			o := views[j]
			if seen[o.ID] || o.Date != v.Date || !containsString(v.ConflictWith, o.CourseCode) {
				continue
			}
			group = append(group, o)
			seen[o.ID] = true
		}

		codes := make([]string, 0, len(group))
		for _, g := range group {
			codes = append(codes, g.CourseCode)
		}

		warnings = append(warnings, dto.ConflictWarning{
			Title:      fmt.Sprintf("Sınav Çakışması (%s %s)", abbr, v.StartTime),
			Subtitle:   strings.Join(codes, " ve ") + " aynı saatte",
			Date:       v.Date,
			StartTime:  v.StartTime,
			Exams:      group,
			IsResolved: resolved,
		})
	}
	return warnings
}

// weekLabel 周一到周五的日期范围，如 "9 - 13 Şubat 2026"
func weekLabel(start time.Time) string {
	end := start.AddDate(0, 0, 4)
	if start.Month() == end.Month() {
		return fmt.Sprintf("%d - %s", start.Day(), timeutil.FormatLongDate(end))
	}
	return fmt.Sprintf("%d %s - %s", start.Day(), timeutil.MonthNames[start.Month()-1], timeutil.FormatLongDate(end))
}

func toCountdownResponse(cd Countdown, target time.Time) dto.CountdownResponse {
	return dto.CountdownResponse{
		Days:    cd.Days,
		Hours:   cd.Hours,
		Minutes: cd.Minutes,
		Seconds: cd.Seconds,
		Target:  target.Format(time.RFC3339),
		Expired: cd.IsZero(),
	}
}

func examTypeLabel(t string) string {
	if label, ok := examTypeLabels[t]; ok {
		return label
	}
	return timeutil.Upper(t)
}

func examLocation(e *model.Exam) string {
	loc := e.Building + " - " + e.Room
	if e.Floor != "" {
		loc += " (" + e.Floor + ")"
	}
	return loc
}

func indexOfExam(exams []model.Exam, id string) int {
	for i := range exams {
		if exams[i].ID == id {
			return i
		}
	}
	return -1
}

func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			b.WriteString(timeutil.Upper(string(r)))
			break
		}
	}
	return b.String()
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

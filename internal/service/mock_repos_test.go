package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"campus-portal/config"
	"campus-portal/internal/model"
	"campus-portal/internal/repository"
)

// ── Mock ScheduleCourseRepository ──

type mockScheduleCourseRepo struct {
	courses map[string]*model.ScheduleCourse
}

func newMockScheduleCourseRepo() *mockScheduleCourseRepo {
	return &mockScheduleCourseRepo{courses: make(map[string]*model.ScheduleCourse)}
}

func (m *mockScheduleCourseRepo) sorted(filter func(*model.ScheduleCourse) bool) []model.ScheduleCourse {
	var result []model.ScheduleCourse
	for _, c := range m.courses {
		if filter == nil || filter(c) {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DayOfWeek != result[j].DayOfWeek {
			return result[i].DayOfWeek < result[j].DayOfWeek
		}
		if result[i].StartTime != result[j].StartTime {
			return result[i].StartTime < result[j].StartTime
		}
		return result[i].ID < result[j].ID
	})
	return result
}

func (m *mockScheduleCourseRepo) List(_ context.Context) ([]model.ScheduleCourse, error) {
	return m.sorted(nil), nil
}

func (m *mockScheduleCourseRepo) ListByDay(_ context.Context, dayOfWeek int) ([]model.ScheduleCourse, error) {
	return m.sorted(func(c *model.ScheduleCourse) bool { return c.DayOfWeek == dayOfWeek }), nil
}

func (m *mockScheduleCourseRepo) GetByID(_ context.Context, id string) (*model.ScheduleCourse, error) {
	if c, ok := m.courses[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleCourseRepo) BatchCreate(_ context.Context, courses []model.ScheduleCourse) error {
	for i := range courses {
		c := courses[i]
		m.courses[c.ID] = &c
	}
	return nil
}

func (m *mockScheduleCourseRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.courses[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.courses, id)
	return nil
}

func (m *mockScheduleCourseRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.courses)), nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	courses   map[string]*model.AttendanceCourse
	updateErr error
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{courses: make(map[string]*model.AttendanceCourse)}
}

func (m *mockAttendanceRepo) List(_ context.Context) ([]model.AttendanceCourse, error) {
	var result []model.AttendanceCourse
	for _, c := range m.courses {
		cp := *c
		cp.Absences = nil
		result = append(result, cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SortOrder < result[j].SortOrder })
	return result, nil
}

func (m *mockAttendanceRepo) GetByID(_ context.Context, id string) (*model.AttendanceCourse, error) {
	if c, ok := m.courses[id]; ok {
		cp := *c
		cp.Absences = append([]model.AbsenceRecord(nil), c.Absences...)
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) Update(_ context.Context, course *model.AttendanceCourse) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	stored, ok := m.courses[course.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.UsedHours = course.UsedHours
	stored.RemainingHours = course.RemainingHours
	stored.Status = course.Status
	return nil
}

func (m *mockAttendanceRepo) BatchCreate(_ context.Context, courses []model.AttendanceCourse) error {
	for i := range courses {
		c := courses[i]
		m.courses[c.ID] = &c
	}
	return nil
}

func (m *mockAttendanceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.courses)), nil
}

// ── Mock ExamRepository ──

type mockExamRepo struct {
	exams map[string]*model.Exam
}

func newMockExamRepo() *mockExamRepo {
	return &mockExamRepo{exams: make(map[string]*model.Exam)}
}

func (m *mockExamRepo) List(_ context.Context) ([]model.Exam, error) {
	var result []model.Exam
	for _, e := range m.exams {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		if result[i].StartTime != result[j].StartTime {
			return result[i].StartTime < result[j].StartTime
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *mockExamRepo) GetByID(_ context.Context, id string) (*model.Exam, error) {
	if e, ok := m.exams[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockExamRepo) UpdateReminder(_ context.Context, id string, enabled bool) error {
	e, ok := m.exams[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.ReminderEnabled = enabled
	return nil
}

func (m *mockExamRepo) BatchCreate(_ context.Context, exams []model.Exam) error {
	for i := range exams {
		e := exams[i]
		m.exams[e.ID] = &e
	}
	return nil
}

func (m *mockExamRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.exams)), nil
}

// ── Mock MenuRepository ──

type mockMenuRepo struct {
	menus map[string]*model.DailyMenu
}

func newMockMenuRepo() *mockMenuRepo {
	return &mockMenuRepo{menus: make(map[string]*model.DailyMenu)}
}

func (m *mockMenuRepo) List(_ context.Context) ([]model.DailyMenu, error) {
	var result []model.DailyMenu
	for _, menu := range m.menus {
		result = append(result, *menu)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (m *mockMenuRepo) GetByID(_ context.Context, id string) (*model.DailyMenu, error) {
	if menu, ok := m.menus[id]; ok {
		cp := *menu
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMenuRepo) GetByDate(_ context.Context, date string) (*model.DailyMenu, error) {
	for _, menu := range m.menus {
		if menu.Date == date {
			cp := *menu
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMenuRepo) ApplyVote(_ context.Context, id, vote string) (bool, error) {
	menu, ok := m.menus[id]
	if !ok || menu.UserVote != "" {
		return false, nil
	}
	if vote == model.VoteLike {
		menu.Likes++
	} else {
		menu.Dislikes++
	}
	menu.UserVote = vote
	return true, nil
}

func (m *mockMenuRepo) BatchCreate(_ context.Context, menus []model.DailyMenu) error {
	for i := range menus {
		menu := menus[i]
		m.menus[menu.ID] = &menu
	}
	return nil
}

func (m *mockMenuRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.menus)), nil
}

// ── 测试辅助 ──

type mockRepos struct {
	schedule   *mockScheduleCourseRepo
	attendance *mockAttendanceRepo
	exam       *mockExamRepo
	menu       *mockMenuRepo
}

func newTestRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		schedule:   newMockScheduleCourseRepo(),
		attendance: newMockAttendanceRepo(),
		exam:       newMockExamRepo(),
		menu:       newMockMenuRepo(),
	}
	return &repository.Repository{
		ScheduleCourse: m.schedule,
		Attendance:     m.attendance,
		Exam:           m.exam,
		Menu:           m.menu,
	}, m
}

// testConfig 使用 UTC，避免依赖系统时区数据库
func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Timezone:    "UTC",
			University:  "Bandırma Onyedi Eylül Üniversitesi",
			Term:        "2025-2026 Bahar Dönemi",
			StudentName: "Ahmet Yılmaz",
			Department:  "Bilgisayar Mühendisliği",
			Faculty:     "Mühendislik Fakültesi",
		},
		Attendance: config.AttendanceConfig{UndoWindow: 3 * time.Second, WarningThreshold: 3, PreviewCount: 3},
		Cafeteria: config.CafeteriaConfig{
			ToastDuration:  4 * time.Second,
			LunchStartHour: 11,
			LunchEndHour:   14,
			DisplayDays:    5,
			ServiceHours:   "11:30 - 14:00",
		},
		Exam:    config.ExamConfig{CountdownInterval: time.Millisecond, ReminderMessageTTL: 3 * time.Second},
		Grading: config.GradingConfig{FinalWeight: 60, PassGrade: 50, MinFinalScore: 50},
	}
}

// fakeClock 可手动拨动的时钟
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{t: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

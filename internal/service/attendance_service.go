package service

import (
	"context"
	"errors"
	"math"
	"strconv"
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

// ── 缺勤模块业务错误 ──

var (
	ErrAttendanceCourseNotFound = errors.New("课程不存在")
)

// AttendanceService 缺勤统计业务接口
type AttendanceService interface {
	List(ctx context.Context, req *dto.AttendanceListRequest) (*dto.AttendanceListResponse, error)
	Get(ctx context.Context, id string, req *dto.AttendanceDetailRequest) (*dto.AttendanceDetailResponse, error)
	// Decrement 记一次缺勤，并覆盖撤销槽位
	Decrement(ctx context.Context, id string) (*dto.DecrementResponse, error)
	// Undo 撤销窗口内且课程一致时还原快照，否则不做任何修改
	Undo(ctx context.Context, id string) (*dto.UndoResponse, error)
}

// pendingUndo 单槽撤销记录：最近一次扣减前的快照
type pendingUndo struct {
	courseID  string
	snapshot  model.AttendanceCourse
	expiresAt time.Time
}

type attendanceService struct {
	repo   *repository.Repository
	cfg    *config.AttendanceConfig
	now    func() time.Time
	logger *zap.Logger

	mu      sync.Mutex
	pending *pendingUndo
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, cfg *config.AttendanceConfig, now func() time.Time, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, cfg: cfg, now: now, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *attendanceService) List(ctx context.Context, req *dto.AttendanceListRequest) (*dto.AttendanceListResponse, error) {
	courses, err := s.repo.Attendance.List(ctx)
	if err != nil {
		s.logger.Error("查询缺勤列表失败", zap.Error(err))
		return nil, err
	}

	resp := &dto.AttendanceListResponse{
		Summary: dto.AttendanceSummary{CourseCount: len(courses)},
		Courses: make([]dto.AttendanceCourseResponse, 0, len(courses)),
	}
	for i := range courses {
		switch courses[i].Status {
		case model.AttendanceStatusCritical:
			resp.Summary.CriticalCount++
		case model.AttendanceStatusWarning:
			resp.Summary.WarningCount++
		}
	}

	shown := courses
	if !req.ShowAll && s.cfg.PreviewCount > 0 && len(courses) > s.cfg.PreviewCount {
		shown = courses[:s.cfg.PreviewCount]
		resp.HasMore = true
	}
	for i := range shown {
		resp.Courses = append(resp.Courses, toAttendanceResponse(&shown[i]))
	}

	return resp, nil
}

// ────────────────────── Get ──────────────────────

func (s *attendanceService) Get(ctx context.Context, id string, req *dto.AttendanceDetailRequest) (*dto.AttendanceDetailResponse, error) {
	course, err := s.repo.Attendance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceCourseNotFound
		}
		s.logger.Error("查询课程缺勤失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 导航参数非空时覆盖存储值，数字无法解析记为 0
	if req.Name != "" {
		course.Name = req.Name
	}
	if req.Instructor != "" {
		course.Instructor = req.Instructor
	}
	if req.TotalHours != "" {
		course.TotalHours = lenientInt(req.TotalHours)
	}
	if req.UsedHours != "" {
		course.UsedHours = lenientInt(req.UsedHours)
	}
	negativeLabel := false
	if req.RemainingHours != "" {
		if strings.TrimSpace(req.RemainingHours) == "-" {
			negativeLabel = true
		} else {
			course.RemainingHours = lenientInt(req.RemainingHours)
		}
	}

	view := toAttendanceResponse(course)
	if negativeLabel {
		view.RemainingLabel = "-"
	}

	resp := &dto.AttendanceDetailResponse{
		AttendanceCourseResponse: view,
		Absences:                 make([]dto.AbsenceRecordResponse, 0, len(course.Absences)),
	}
	for _, a := range course.Absences {
		rec := dto.AbsenceRecordResponse{ID: a.ID, Date: a.Date, Status: a.Status}
		if d, err := timeutil.ParseDate(a.Date, time.UTC); err == nil {
			rec.FormattedDate = timeutil.FormatLongDate(d)
			rec.DayName = timeutil.DayName(d)
		}
		resp.Absences = append(resp.Absences, rec)
	}

	return resp, nil
}

// ────────────────────── Decrement ──────────────────────

func (s *attendanceService) Decrement(ctx context.Context, id string) (*dto.DecrementResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, err := s.repo.Attendance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceCourseNotFound
		}
		s.logger.Error("查询课程缺勤失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	snapshot := *course
	snapshot.Absences = nil

	course.UsedHours++
	course.RemainingHours--
	course.Status = classifyAttendance(course.RemainingHours, s.cfg.WarningThreshold)

	if err := s.repo.Attendance.Update(ctx, course); err != nil {
		s.logger.Error("更新缺勤统计失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	expiresAt := s.now().Add(s.cfg.UndoWindow)
	s.pending = &pendingUndo{courseID: id, snapshot: snapshot, expiresAt: expiresAt}

	return &dto.DecrementResponse{
		Course: toAttendanceResponse(course),
		Undo: dto.UndoTokenResponse{
			CourseID:  id,
			ExpiresAt: expiresAt.Format(time.RFC3339Nano),
		},
	}, nil
}

// ────────────────────── Undo ──────────────────────

func (s *attendanceService) Undo(ctx context.Context, id string) (*dto.UndoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.pending
	if p == nil || p.courseID != id || !s.now().Before(p.expiresAt) {
		return &dto.UndoResponse{Applied: false, Message: "Geri alma süresi doldu"}, nil
	}

	restored := p.snapshot
	if err := s.repo.Attendance.Update(ctx, &restored); err != nil {
		s.logger.Error("撤销缺勤失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	s.pending = nil

	view := toAttendanceResponse(&restored)
	return &dto.UndoResponse{Applied: true, Message: "İşlem geri alındı", Course: &view}, nil
}

// ── 内部方法 ──

// classifyAttendance 剩余 ≤ 0 为 critical，≤ threshold 为 warning
func classifyAttendance(remaining, threshold int) string {
	switch {
	case remaining <= 0:
		return model.AttendanceStatusCritical
	case remaining <= threshold:
		return model.AttendanceStatusWarning
	default:
		return model.AttendanceStatusNormal
	}
}

func toAttendanceResponse(c *model.AttendanceCourse) dto.AttendanceCourseResponse {
	label := strconv.Itoa(c.RemainingHours)
	if c.RemainingHours < 0 {
		label = "-"
	}

	usage := 0
	if c.TotalHours > 0 {
		usage = int(math.Round(float64(c.UsedHours) / float64(c.TotalHours) * 100))
	}

	return dto.AttendanceCourseResponse{
		ID:              c.ID,
		Code:            c.Code,
		Name:            c.Name,
		Instructor:      c.Instructor,
		TotalHours:      c.TotalHours,
		UsedHours:       c.UsedHours,
		RemainingHours:  c.RemainingHours,
		RemainingLabel:  label,
		UsagePercentage: usage,
		Status:          c.Status,
	}
}

// lenientIntMax 课时数的合理上限，超出视为无效输入
const lenientIntMax = 1e6

// lenientInt 宽松解析整数，无法解析或超出 ±lenientIntMax 时记为 0
func lenientInt(s string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > lenientIntMax {
		return 0
	}
	return int(v)
}

package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"campus-portal/internal/dto"
	"campus-portal/internal/service"
	"campus-portal/pkg/response"
)

// ExamHandler 考试日历模块 HTTP 处理器
type ExamHandler struct {
	examSvc service.ExamService
}

// NewExamHandler 创建 ExamHandler
func NewExamHandler(examSvc service.ExamService) *ExamHandler {
	return &ExamHandler{examSvc: examSvc}
}

// Home 考试日历首页
// GET /api/v1/exam-calendar/home
func (h *ExamHandler) Home(c *gin.Context) {
	home, err := h.examSvc.Home(c.Request.Context())
	if err != nil {
		h.handleExamError(c, err)
		return
	}

	response.OK(c, home)
}

// ListExams 获取全部考试
// GET /api/v1/exam-calendar/exams
func (h *ExamHandler) ListExams(c *gin.Context) {
	exams, err := h.examSvc.List(c.Request.Context())
	if err != nil {
		h.handleExamError(c, err)
		return
	}

	response.OK(c, gin.H{"list": exams})
}

// GetExam 获取考试详情
// GET /api/v1/exam-calendar/exams/:id
func (h *ExamHandler) GetExam(c *gin.Context) {
	id, ok := MustGetPathID(c, "Sınav ID boş olamaz")
	if !ok {
		return
	}

	exam, err := h.examSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleExamError(c, err)
		return
	}

	response.OK(c, exam)
}

// SetReminder 开关考试提醒
// PUT /api/v1/exam-calendar/exams/:id/reminder
func (h *ExamHandler) SetReminder(c *gin.Context) {
	id, ok := MustGetPathID(c, "Sınav ID boş olamaz")
	if !ok {
		return
	}

	var req dto.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, "enabled alanı zorunludur", err)
		return
	}

	resp, err := h.examSvc.SetReminder(c.Request.Context(), id, &req)
	if err != nil {
		h.handleExamError(c, err)
		return
	}

	response.OK(c, resp)
}

// GetCountdown 获取倒计时快照
// GET /api/v1/exam-calendar/exams/:id/countdown
func (h *ExamHandler) GetCountdown(c *gin.Context) {
	id, ok := MustGetPathID(c, "Sınav ID boş olamaz")
	if !ok {
		return
	}

	cd, err := h.examSvc.Countdown(c.Request.Context(), id)
	if err != nil {
		h.handleExamError(c, err)
		return
	}

	response.OK(c, cd)
}

// StreamCountdown 以 SSE 推送倒计时，客户端断开或归零时结束
// GET /api/v1/exam-calendar/exams/:id/countdown/stream
func (h *ExamHandler) StreamCountdown(c *gin.Context) {
	id, ok := MustGetPathID(c, "Sınav ID boş olamaz")
	if !ok {
		return
	}

	ch, err := h.examSvc.StreamCountdown(c.Request.Context(), id)
	if err != nil {
		h.handleExamError(c, err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.Stream(func(w io.Writer) bool {
		cd, ok := <-ch
		if !ok {
			return false
		}
		c.SSEvent("countdown", cd)
		return !cd.Expired
	})
}

// GetWeek 考试周视图
// GET /api/v1/exam-calendar/week?start=YYYY-MM-DD&view=weekly
func (h *ExamHandler) GetWeek(c *gin.Context) {
	var req dto.WeekGridRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, "view weekly veya workweek olmalı", err)
		return
	}

	week, err := h.examSvc.Week(c.Request.Context(), &req)
	if err != nil {
		h.handleExamError(c, err)
		return
	}

	response.OK(c, week)
}

// ResolveConflicts 处理考试冲突提示
// POST /api/v1/exam-calendar/conflicts/resolve
func (h *ExamHandler) ResolveConflicts(c *gin.Context) {
	var req dto.ResolveConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, "action reschedule, cancel veya keep olmalı", err)
		return
	}

	resp, err := h.examSvc.ResolveConflicts(c.Request.Context(), &req)
	if err != nil {
		h.handleExamError(c, err)
		return
	}

	response.OK(c, resp)
}

func (h *ExamHandler) handleExamError(c *gin.Context, err error) {
	if handleInputError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrExamNotFound):
		response.NotFound(c, 22001, "Sınav bulunamadı")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campus-portal/internal/dto"
	"campus-portal/internal/service"
	"campus-portal/pkg/response"
)

// AttendanceHandler 缺勤模块 HTTP 处理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// ListCourses 获取课程缺勤列表
// GET /api/v1/attendance/courses?show_all=true
func (h *AttendanceHandler) ListCourses(c *gin.Context) {
	var req dto.AttendanceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, "show_all true veya false olmalı", err)
		return
	}

	resp, err := h.attendanceSvc.List(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.OK(c, resp)
}

// GetCourse 获取课程缺勤详情（导航参数覆盖存储值）
// GET /api/v1/attendance/courses/:id
func (h *AttendanceHandler) GetCourse(c *gin.Context) {
	id, ok := MustGetPathID(c, "Ders ID boş olamaz")
	if !ok {
		return
	}

	var req dto.AttendanceDetailRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, "Geçersiz sorgu parametreleri", err)
		return
	}

	resp, err := h.attendanceSvc.Get(c.Request.Context(), id, &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, resp)
}

// Decrement 记一次缺勤
// POST /api/v1/attendance/courses/:id/decrement
func (h *AttendanceHandler) Decrement(c *gin.Context) {
	id, ok := MustGetPathID(c, "Ders ID boş olamaz")
	if !ok {
		return
	}

	resp, err := h.attendanceSvc.Decrement(c.Request.Context(), id)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, resp)
}

// Undo 撤销最近一次缺勤扣减
// POST /api/v1/attendance/courses/:id/undo
func (h *AttendanceHandler) Undo(c *gin.Context) {
	id, ok := MustGetPathID(c, "Ders ID boş olamaz")
	if !ok {
		return
	}

	resp, err := h.attendanceSvc.Undo(c.Request.Context(), id)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, resp)
}

func (h *AttendanceHandler) handleAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAttendanceCourseNotFound):
		response.NotFound(c, 23001, "Ders bulunamadı")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campus-portal/internal/dto"
	"campus-portal/internal/service"
	"campus-portal/pkg/response"
)

// ScheduleHandler 课程表模块 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// GetWeek 周选择条
// GET /api/v1/schedule/week?date=YYYY-MM-DD
func (h *ScheduleHandler) GetWeek(c *gin.Context) {
	var req dto.ScheduleDateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, "Geçersiz sorgu parametreleri", err)
		return
	}

	week, err := h.scheduleSvc.Week(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, week)
}

// GetDay 某日课程时间线
// GET /api/v1/schedule/day?date=YYYY-MM-DD
func (h *ScheduleHandler) GetDay(c *gin.Context) {
	var req dto.ScheduleDateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, "Geçersiz sorgu parametreleri", err)
		return
	}

	day, err := h.scheduleSvc.Day(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, day)
}

// CreateCourse 新增课程（每个选中的星期一条）
// POST /api/v1/schedule/courses
func (h *ScheduleHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateScheduleCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, "Ders adı, başlangıç ve bitiş saati zorunludur", err)
		return
	}

	resp, err := h.scheduleSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, resp)
}

// DeleteCourse 删除课程
// DELETE /api/v1/schedule/courses/:id
func (h *ScheduleHandler) DeleteCourse(c *gin.Context) {
	id, ok := MustGetPathID(c, "Ders ID boş olamaz")
	if !ok {
		return
	}

	if err := h.scheduleSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	if handleInputError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrScheduleCourseNotFound):
		response.NotFound(c, 24001, "Ders bulunamadı")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}

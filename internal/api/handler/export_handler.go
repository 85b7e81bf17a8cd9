package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campus-portal/internal/service"
	"campus-portal/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportSchedule 导出周课程表
// GET /api/v1/schedule/export?date=YYYY-MM-DD
func (h *ExportHandler) ExportSchedule(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportWeeklySchedule(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	response.Attachment(c, filename, service.ContentTypeXLSX, buf)
}

// ExportExamCalendar 导出考试日历
// GET /api/v1/exam-calendar/exams.ics
func (h *ExportHandler) ExportExamCalendar(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportExamCalendar(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	response.Attachment(c, filename, service.ContentTypeICS, buf)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	if handleInputError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrExportNoCourses):
		response.NotFound(c, 25001, "Ders programı boş")
	case errors.Is(err, service.ErrExportNoExams):
		response.NotFound(c, 25002, "Sınav kaydı bulunamadı")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}

package handler

import (
	"github.com/gin-gonic/gin"

	"campus-portal/internal/dto"
	"campus-portal/internal/service"
	"campus-portal/pkg/response"
)

// CalculatorHandler 成绩计算器 HTTP 处理器
type CalculatorHandler struct {
	gradeSvc service.GradeService
}

// NewCalculatorHandler 创建 CalculatorHandler
func NewCalculatorHandler(gradeSvc service.GradeService) *CalculatorHandler {
	return &CalculatorHandler{gradeSvc: gradeSvc}
}

// GetDefaults 计算器默认成绩项
// GET /api/v1/exam-calendar/calculator/defaults
func (h *CalculatorHandler) GetDefaults(c *gin.Context) {
	response.OK(c, h.gradeSvc.Defaults())
}

// Evaluate 计算期末所需分数与及格判定
// POST /api/v1/exam-calendar/calculator/evaluate
func (h *CalculatorHandler) Evaluate(c *gin.Context) {
	var req dto.EvaluateGradesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, "Geçersiz istek gövdesi", err)
		return
	}

	response.OK(c, h.gradeSvc.Evaluate(&req))
}

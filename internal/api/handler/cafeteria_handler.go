package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campus-portal/internal/dto"
	"campus-portal/internal/service"
	"campus-portal/pkg/response"
)

// CafeteriaHandler 食堂模块 HTTP 处理器
type CafeteriaHandler struct {
	cafeteriaSvc service.CafeteriaService
}

// NewCafeteriaHandler 创建 CafeteriaHandler
func NewCafeteriaHandler(cafeteriaSvc service.CafeteriaService) *CafeteriaHandler {
	return &CafeteriaHandler{cafeteriaSvc: cafeteriaSvc}
}

// ListMenus 获取近几个工作日的菜单
// GET /api/v1/cafeteria/menus
func (h *CafeteriaHandler) ListMenus(c *gin.Context) {
	menus, err := h.cafeteriaSvc.ListMenus(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": menus})
}

// GetMenu 获取某日菜单详情
// GET /api/v1/cafeteria/menus/:id
func (h *CafeteriaHandler) GetMenu(c *gin.Context) {
	id, ok := MustGetPathID(c, "Menü ID boş olamaz")
	if !ok {
		return
	}

	menu, err := h.cafeteriaSvc.GetMenu(c.Request.Context(), id)
	if err != nil {
		h.handleCafeteriaError(c, err)
		return
	}

	response.OK(c, menu)
}

// Vote 为某日菜单投票
// POST /api/v1/cafeteria/menus/:id/vote
func (h *CafeteriaHandler) Vote(c *gin.Context) {
	id, ok := MustGetPathID(c, "Menü ID boş olamaz")
	if !ok {
		return
	}

	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, "Oy değeri like veya dislike olmalı", err)
		return
	}

	resp, err := h.cafeteriaSvc.Vote(c.Request.Context(), id, &req)
	if err != nil {
		h.handleCafeteriaError(c, err)
		return
	}

	response.OK(c, resp)
}

// GetDensity 获取当前拥挤度
// GET /api/v1/cafeteria/density
func (h *CafeteriaHandler) GetDensity(c *gin.Context) {
	density, err := h.cafeteriaSvc.GetDensity(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.OK(c, density)
}

// GetSatisfaction 获取今日满意度
// GET /api/v1/cafeteria/analytics
func (h *CafeteriaHandler) GetSatisfaction(c *gin.Context) {
	stats, err := h.cafeteriaSvc.GetSatisfaction(c.Request.Context())
	if err != nil {
		h.handleCafeteriaError(c, err)
		return
	}

	response.OK(c, stats)
}

func (h *CafeteriaHandler) handleCafeteriaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMenuNotFound):
		response.NotFound(c, 21001, "Menü bulunamadı")
	case errors.Is(err, service.ErrAlreadyVoted):
		response.Conflict(c, 21002, "Bu menü için zaten oy verdiniz")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}

package handler

import (
	"github.com/gin-gonic/gin"

	"campus-portal/internal/service"
	"campus-portal/pkg/response"
)

// NavigationHandler 导航壳 HTTP 处理器
type NavigationHandler struct {
	navSvc service.NavigationService
}

// NewNavigationHandler 创建 NavigationHandler
func NewNavigationHandler(navSvc service.NavigationService) *NavigationHandler {
	return &NavigationHandler{navSvc: navSvc}
}

// ListScreens 获取功能页面列表
// GET /api/v1/screens
func (h *NavigationHandler) ListScreens(c *gin.Context) {
	response.OK(c, gin.H{"list": h.navSvc.Screens()})
}

// GetEvents 活动页占位
// GET /api/v1/events
func (h *NavigationHandler) GetEvents(c *gin.Context) {
	response.OK(c, h.navSvc.Events())
}

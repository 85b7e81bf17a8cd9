package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "campus-portal/pkg/errors"
	"campus-portal/pkg/response"
)

// MustGetPathID 从路由参数中提取 id，为空时写入 400 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetPathID(c *gin.Context, message string) (string, bool) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, message)
		return "", false
	}
	return id, true
}

// bindFailed 写入参数绑定失败响应，details 带上校验错误原文
// 请求体超过 BodyLimit 时返回 413
func bindFailed(c *gin.Context, message string, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, "İstek gövdesi çok büyük")
		return
	}
	response.ErrorWithDetails(c, http.StatusBadRequest, 10001, message, err.Error())
}

// handleInputError 处理跨模块共享的日期/时间格式错误，已写入响应时返回 true
func handleInputError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, pkgerrors.ErrInvalidDate):
		response.BadRequest(c, 10006, "Geçersiz tarih, YYYY-MM-DD biçiminde olmalı")
	case errors.Is(err, pkgerrors.ErrInvalidTime):
		response.BadRequest(c, 10007, "Geçersiz saat, SS:DD veya ss:DD AM/PM biçiminde olmalı")
	case errors.Is(err, pkgerrors.ErrInvalidTimeRange):
		response.BadRequest(c, 10008, "Bitiş saati başlangıç saatinden sonra olmalı")
	default:
		return false
	}
	return true
}

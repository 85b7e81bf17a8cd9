package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"campus-portal/pkg/redis"
	"campus-portal/pkg/response"
)

// RateLimit 基于 Redis 滑动窗口的速率限制中间件
// 以 客户端 IP + 路由模板 计数；rdb 为 nil（未启用 Redis）时直接放行
// SSE 倒计时流是长连接，只在建立时计一次
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(window.Round(time.Second) / time.Second))

	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		key := c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			// Redis 出错时降级放行
			_ = c.Error(err)
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", retryAfter)
			response.Error(c, http.StatusTooManyRequests, 10004, "Çok fazla istek, lütfen daha sonra tekrar deneyin")
			c.Abort()
			return
		}

		c.Next()
	}
}

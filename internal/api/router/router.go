package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-portal/config"
	"campus-portal/internal/api/handler"
	"campus-portal/internal/api/middleware"
	"campus-portal/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 可为 nil，此时限流中间件直接放行
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window))
	{
		// 导航壳
		v1.GET("/screens", h.Navigation.ListScreens)
		v1.GET("/events", h.Navigation.GetEvents)

		// 食堂模块
		cafeteria := v1.Group("/cafeteria")
		{
			cafeteria.GET("/menus", h.Cafeteria.ListMenus)
			cafeteria.GET("/menus/:id", h.Cafeteria.GetMenu)
			cafeteria.POST("/menus/:id/vote", h.Cafeteria.Vote)
			cafeteria.GET("/density", h.Cafeteria.GetDensity)
			cafeteria.GET("/analytics", h.Cafeteria.GetSatisfaction)
		}

		// 考试日历模块（含成绩计算器与日历导出）
		exams := v1.Group("/exam-calendar")
		{
			exams.GET("/home", h.Exam.Home)
			exams.GET("/exams", h.Exam.ListExams)
			exams.GET("/exams.ics", h.Export.ExportExamCalendar)
			exams.GET("/exams/:id", h.Exam.GetExam)
			exams.PUT("/exams/:id/reminder", h.Exam.SetReminder)
			exams.GET("/exams/:id/countdown", h.Exam.GetCountdown)
			exams.GET("/exams/:id/countdown/stream", h.Exam.StreamCountdown)
			exams.GET("/week", h.Exam.GetWeek)
			exams.POST("/conflicts/resolve", h.Exam.ResolveConflicts)
			exams.GET("/calculator/defaults", h.Calculator.GetDefaults)
			exams.POST("/calculator/evaluate", h.Calculator.Evaluate)
		}

		// 缺勤模块
		attendance := v1.Group("/attendance")
		{
			attendance.GET("/courses", h.Attendance.ListCourses)
			attendance.GET("/courses/:id", h.Attendance.GetCourse)
			attendance.POST("/courses/:id/decrement", h.Attendance.Decrement)
			attendance.POST("/courses/:id/undo", h.Attendance.Undo)
		}

		// 课程表模块
		schedule := v1.Group("/schedule")
		{
			schedule.GET("/week", h.Schedule.GetWeek)
			schedule.GET("/day", h.Schedule.GetDay)
			schedule.POST("/courses", h.Schedule.CreateCourse)
			schedule.DELETE("/courses/:id", h.Schedule.DeleteCourse)
			schedule.GET("/export", h.Export.ExportSchedule)
		}
	}

	return r
}

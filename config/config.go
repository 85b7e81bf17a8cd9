package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"db"`
	Redis      RedisConfig      `mapstructure:"redis"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Log        LogConfig        `mapstructure:"log"`
	App        AppConfig        `mapstructure:"app"`
	Seed       SeedConfig       `mapstructure:"seed"`
	Attendance AttendanceConfig `mapstructure:"attendance"`
	Cafeteria  CafeteriaConfig  `mapstructure:"cafeteria"`
	Exam       ExamConfig       `mapstructure:"exam"`
	Grading    GradingConfig    `mapstructure:"grading"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port      int        `mapstructure:"port"`
	BodyLimit int64      `mapstructure:"body_limit"` // 字节
	CORS      CORSConfig `mapstructure:"cors"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig SQLite 内存数据库配置
// 数据仅在进程生命周期内存在，每次启动重新灌入种子数据
type DatabaseConfig struct {
	DSN      string `mapstructure:"dsn"`
	LogLevel string `mapstructure:"log_level"` // silent | error | warn | info
}

// RedisConfig Redis 配置（可选，仅用于限流）
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AppConfig 门户基础信息
type AppConfig struct {
	Timezone    string `mapstructure:"timezone"`
	University  string `mapstructure:"university"`
	Term        string `mapstructure:"term"`
	StudentName string `mapstructure:"student_name"`
	Department  string `mapstructure:"department"`
	Faculty     string `mapstructure:"faculty"`
}

// Location 解析时区，Validate 已保证合法
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SeedConfig 种子数据锚点
type SeedConfig struct {
	// ExamWeekStart 考试周的周一（YYYY-MM-DD），为空时取启动时刻之后的下一个周一
	ExamWeekStart string `mapstructure:"exam_week_start"`
	// MenuWeeks 从本周一起生成几周的食堂菜单
	MenuWeeks int `mapstructure:"menu_weeks"`
}

// AttendanceConfig 缺勤模块配置
type AttendanceConfig struct {
	UndoWindow       time.Duration `mapstructure:"undo_window"`
	WarningThreshold int           `mapstructure:"warning_threshold"`
	PreviewCount     int           `mapstructure:"preview_count"`
}

// CafeteriaConfig 食堂模块配置
type CafeteriaConfig struct {
	ToastDuration  time.Duration `mapstructure:"toast_duration"`
	LunchStartHour int           `mapstructure:"lunch_start_hour"`
	LunchEndHour   int           `mapstructure:"lunch_end_hour"`
	DisplayDays    int           `mapstructure:"display_days"`
	ServiceHours   string        `mapstructure:"service_hours"`
}

// ExamConfig 考试日历模块配置
type ExamConfig struct {
	CountdownInterval  time.Duration `mapstructure:"countdown_interval"`
	ReminderMessageTTL time.Duration `mapstructure:"reminder_message_ttl"`
}

// GradingConfig 成绩计算配置
type GradingConfig struct {
	FinalWeight   float64 `mapstructure:"final_weight"`
	PassGrade     float64 `mapstructure:"pass_grade"`
	MinFinalScore float64 `mapstructure:"min_final_score"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.body_limit", 1<<20)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:8081", "http://localhost:19006"})

	v.SetDefault("db.dsn", "file:campus_portal?mode=memory&cache=shared")
	v.SetDefault("db.log_level", "warn")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rate_limit.requests", 120)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("app.timezone", "Europe/Istanbul")
	v.SetDefault("app.university", "Bandırma Onyedi Eylül Üniversitesi")
	v.SetDefault("app.term", "2025-2026 Bahar Dönemi")
	v.SetDefault("app.student_name", "Ahmet Yılmaz")
	v.SetDefault("app.department", "Bilgisayar Mühendisliği")
	v.SetDefault("app.faculty", "Mühendislik Fakültesi")

	v.SetDefault("seed.exam_week_start", "")
	v.SetDefault("seed.menu_weeks", 3)

	v.SetDefault("attendance.undo_window", "3s")
	v.SetDefault("attendance.warning_threshold", 3)
	v.SetDefault("attendance.preview_count", 3)

	v.SetDefault("cafeteria.toast_duration", "4s")
	v.SetDefault("cafeteria.lunch_start_hour", 11)
	v.SetDefault("cafeteria.lunch_end_hour", 14)
	v.SetDefault("cafeteria.display_days", 5)
	v.SetDefault("cafeteria.service_hours", "11:30 - 14:00")

	v.SetDefault("exam.countdown_interval", "1s")
	v.SetDefault("exam.reminder_message_ttl", "3s")

	v.SetDefault("grading.final_weight", 60)
	v.SetDefault("grading.pass_grade", 50)
	v.SetDefault("grading.min_final_score", 50)

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("PORTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("配置校验失败: db.dsn 不能为空")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("配置校验失败: app.timezone 无效: %w", err)
	}
	if c.Seed.ExamWeekStart != "" {
		if _, err := time.Parse("2006-01-02", c.Seed.ExamWeekStart); err != nil {
			return fmt.Errorf("配置校验失败: seed.exam_week_start 须为 YYYY-MM-DD")
		}
	}
	if c.Attendance.UndoWindow <= 0 {
		return fmt.Errorf("配置校验失败: attendance.undo_window 必须大于 0")
	}
	if c.Exam.CountdownInterval <= 0 {
		return fmt.Errorf("配置校验失败: exam.countdown_interval 必须大于 0")
	}
	if c.Cafeteria.LunchStartHour < 0 || c.Cafeteria.LunchEndHour > 24 || c.Cafeteria.LunchStartHour >= c.Cafeteria.LunchEndHour {
		return fmt.Errorf("配置校验失败: cafeteria 午餐时段无效")
	}
	if c.Grading.FinalWeight <= 0 || c.Grading.FinalWeight >= 100 {
		return fmt.Errorf("配置校验失败: grading.final_weight 必须在 (0, 100) 之间")
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("配置校验失败: rate_limit 配置无效")
	}
	return nil
}

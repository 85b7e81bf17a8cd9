package dto

// ── 课程表模块 DTO ──

// ScheduleDateRequest 日期查询参数
type ScheduleDateRequest struct {
	Date string `form:"date"` // YYYY-MM-DD，空则为今天
}

// ScheduleCourseResponse 课程
type ScheduleCourseResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Instructor  string `json:"instructor"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Room        string `json:"room"`
	DayOfWeek   int    `json:"day_of_week"`
	IsOnline    bool   `json:"is_online"`
	HasConflict bool   `json:"has_conflict"`
}

// ScheduleWeekDay 周选择条中的一天
type ScheduleWeekDay struct {
	Date       string `json:"date"`
	DayNumber  int    `json:"day_number"`
	DayName    string `json:"day_name"`   // "Pazartesi"
	ShortName  string `json:"short_name"` // "PZT"
	DayOfWeek  int    `json:"day_of_week"`
	IsSelected bool   `json:"is_selected"`
	IsToday    bool   `json:"is_today"`
}

// ScheduleWeekResponse 周选择条
type ScheduleWeekResponse struct {
	MonthLabel string            `json:"month_label"` // "Şubat 2026"
	Days       []ScheduleWeekDay `json:"days"`
}

// LunchBreakResponse 午休
type LunchBreakResponse struct {
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ScheduleDayResponse 某日时间线
type ScheduleDayResponse struct {
	Date       string                   `json:"date"`
	DayName    string                   `json:"day_name"` // 大写，如 "ÇARŞAMBA"
	DayOfWeek  int                      `json:"day_of_week"`
	Morning    []ScheduleCourseResponse `json:"morning"`
	Afternoon  []ScheduleCourseResponse `json:"afternoon"`
	LunchBreak LunchBreakResponse       `json:"lunch_break"`
	IsEmpty    bool                     `json:"is_empty"`
	// ActiveCourseID 所选日期为今天且当前时刻落在某节课内时非空
	ActiveCourseID string `json:"active_course_id,omitempty"`
}

// CreateScheduleCourseRequest 新增课程
type CreateScheduleCourseRequest struct {
	Name         string `json:"name"          binding:"required,max=100"`
	Instructor   string `json:"instructor"    binding:"max=100"`
	Room         string `json:"room"          binding:"max=50"`
	SelectedDays []bool `json:"selected_days" binding:"omitempty,len=7"`
	StartTime    string `json:"start_time"    binding:"required"` // "08:45" 或 "08:45 AM"
	EndTime      string `json:"end_time"      binding:"required"`
	Date         string `json:"date"` // 未选任何一天时按该日期的星期落位
	IsOnline     bool   `json:"is_online"`
}

// CreateScheduleCourseResponse 新增结果
type CreateScheduleCourseResponse struct {
	Courses []ScheduleCourseResponse `json:"courses"`
}

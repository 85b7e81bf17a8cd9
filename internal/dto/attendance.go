package dto

// ── 缺勤模块 DTO ──

// AttendanceListRequest 列表查询参数
type AttendanceListRequest struct {
	ShowAll bool `form:"show_all"`
}

// AttendanceCourseResponse 课程缺勤统计
type AttendanceCourseResponse struct {
	ID              string `json:"id"`
	Code            string `json:"code"`
	Name            string `json:"name"`
	Instructor      string `json:"instructor"`
	TotalHours      int    `json:"total_hours"`
	UsedHours       int    `json:"used_hours"`
	RemainingHours  int    `json:"remaining_hours"`
	RemainingLabel  string `json:"remaining_label"` // 负数时为 "-"
	UsagePercentage int    `json:"usage_percentage"`
	Status          string `json:"status"`
}

// AttendanceSummary 汇总
type AttendanceSummary struct {
	CourseCount   int `json:"course_count"`
	CriticalCount int `json:"critical_count"`
	WarningCount  int `json:"warning_count"`
}

// AttendanceListResponse 列表
type AttendanceListResponse struct {
	Summary AttendanceSummary          `json:"summary"`
	Courses []AttendanceCourseResponse `json:"courses"`
	HasMore bool                       `json:"has_more"`
}

// AttendanceDetailRequest 从列表页带过来的导航参数，非空时覆盖存储值
type AttendanceDetailRequest struct {
	Name           string `form:"name"`
	Instructor     string `form:"instructor"`
	TotalHours     string `form:"total_hours"`
	UsedHours      string `form:"used_hours"`
	RemainingHours string `form:"remaining_hours"`
}

// AbsenceRecordResponse 缺勤记录
type AbsenceRecordResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	FormattedDate string `json:"formatted_date"` // "12 Mart 2025"
	DayName       string `json:"day_name"`
	Status        string `json:"status"`
}

// AttendanceDetailResponse 详情
type AttendanceDetailResponse struct {
	AttendanceCourseResponse
	Absences []AbsenceRecordResponse `json:"absences"`
}

// UndoTokenResponse 撤销凭据
type UndoTokenResponse struct {
	CourseID  string `json:"course_id"`
	ExpiresAt string `json:"expires_at"`
}

// DecrementResponse 扣减结果
type DecrementResponse struct {
	Course AttendanceCourseResponse `json:"course"`
	Undo   UndoTokenResponse        `json:"undo"`
}

// UndoResponse 撤销结果；Applied=false 表示已过期或课程不匹配
type UndoResponse struct {
	Applied bool                      `json:"applied"`
	Message string                    `json:"message"`
	Course  *AttendanceCourseResponse `json:"course,omitempty"`
}

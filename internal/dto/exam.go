package dto

// ── 考试日历模块 DTO ──

// ExamResponse 考试信息（含实时计算的冲突标记）
type ExamResponse struct {
	ID              string   `json:"id"`
	CourseCode      string   `json:"course_code"`
	CourseName      string   `json:"course_name"`
	ExamType        string   `json:"exam_type"`
	Date            string   `json:"date"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	Building        string   `json:"building"`
	Room            string   `json:"room"`
	Floor           string   `json:"floor,omitempty"`
	HasConflict     bool     `json:"has_conflict"`
	ConflictWith    []string `json:"conflict_with,omitempty"`
	ReminderEnabled bool     `json:"reminder_enabled"`
}

// StudyNote 复习提纲
type StudyNote struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ExamDetailResponse 考试详情弹窗
type ExamDetailResponse struct {
	ExamResponse
	TypeLabel     string         `json:"type_label"`     // "VİZE SINAVI"
	FormattedDate string         `json:"formatted_date"` // "10 Şubat 2026"
	DayName       string         `json:"day_name"`
	TimeRange     string         `json:"time_range"`
	Location      string         `json:"location"`
	ConflictExams []ExamResponse `json:"conflict_exams,omitempty"`
	StudyNotes    []StudyNote    `json:"study_notes"`
}

// UpdateReminderRequest 开关考试提醒
type UpdateReminderRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// ReminderResponse 提醒开关结果（仅提示文案，不实际推送）
type ReminderResponse struct {
	ExamID          string `json:"exam_id"`
	ReminderEnabled bool   `json:"reminder_enabled"`
	Message         string `json:"message"`
	ExpiresAt       string `json:"expires_at"`
}

// CountdownResponse 倒计时快照
type CountdownResponse struct {
	Days    int    `json:"days"`
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Seconds int    `json:"seconds"`
	Target  string `json:"target"`
	Expired bool   `json:"expired"`
}

// ExamCountdownResponse 某场考试的倒计时
type ExamCountdownResponse struct {
	Exam      ExamResponse      `json:"exam"`
	Countdown CountdownResponse `json:"countdown"`
}

// ── 首页 ──

// StudentResponse 当前学生
type StudentResponse struct {
	Name       string `json:"name"`
	Initials   string `json:"initials"`
	Department string `json:"department"`
	Faculty    string `json:"faculty"`
}

// LessonResponse 今日课程
type LessonResponse struct {
	ID         string `json:"id"`
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	Time       string `json:"time"`
	Room       string `json:"room"`
}

// NewsResponse 校园新闻
type NewsResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// ExamBannerResponse 考试周横幅
type ExamBannerResponse struct {
	Visible  bool   `json:"visible"`
	Badge    string `json:"badge"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// ExamHomeResponse 考试日历首页
type ExamHomeResponse struct {
	Student      StudentResponse        `json:"student"`
	Banner       ExamBannerResponse     `json:"banner"`
	NextExam     *ExamCountdownResponse `json:"next_exam"`
	TodayLessons []LessonResponse       `json:"today_lessons"`
	CampusNews   []NewsResponse         `json:"campus_news"`
}

// ── 周视图 ──

// WeekGridRequest 周视图查询参数
type WeekGridRequest struct {
	Start string `form:"start"` // YYYY-MM-DD，空则取考试周
	View  string `form:"view" binding:"omitempty,oneof=weekly workweek"`
}

// WeekDayHeader 周视图表头
type WeekDayHeader struct {
	Date      string `json:"date"`
	DayName   string `json:"day_name"` // "PZT"
	DayNumber int    `json:"day_number"`
	IsToday   bool   `json:"is_today"`
}

// WeekGridCell 单元格：该日该时段开始的考试
type WeekGridCell struct {
	Date string        `json:"date"`
	Exam *ExamResponse `json:"exam"`
}

// WeekGridRow 一个时段行
type WeekGridRow struct {
	Slot  string         `json:"slot"`
	Cells []WeekGridCell `json:"cells"`
}

// ConflictWarning 冲突提示
type ConflictWarning struct {
	Title      string         `json:"title"`    // "Sınav Çakışması (PZT 09:00)"
	Subtitle   string         `json:"subtitle"` // "MAT101 ve HUK201 aynı saatte"
	Date       string         `json:"date"`
	StartTime  string         `json:"start_time"`
	Exams      []ExamResponse `json:"exams"`
	IsResolved bool           `json:"is_resolved"`
}

// WeekGridResponse 周视图
type WeekGridResponse struct {
	WeekLabel    string            `json:"week_label"` // "9 - 13 Şubat 2026"
	View         string            `json:"view"`
	Days         []WeekDayHeader   `json:"days"`
	Rows         []WeekGridRow     `json:"rows"`
	Conflicts    []ConflictWarning `json:"conflicts"`
	HasConflicts bool              `json:"has_conflicts"`
}

// ResolveConflictRequest 处理冲突
type ResolveConflictRequest struct {
	Action string `json:"action" binding:"required,oneof=reschedule cancel keep"`
}

// ResolveConflictResponse 处理结果
type ResolveConflictResponse struct {
	Action   string `json:"action"`
	Resolved bool   `json:"resolved"`
	Message  string `json:"message"`
}

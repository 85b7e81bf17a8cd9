package model

// 缺勤状态
const (
	AttendanceStatusNormal   = "normal"
	AttendanceStatusWarning  = "warning"
	AttendanceStatusCritical = "critical"
)

// AttendanceCourse 课程缺勤统计（表 attendance_courses）
// RemainingHours 可以为负数（超出缺勤上限），展示层显示为 "-"
type AttendanceCourse struct {
	ID             string `gorm:"type:text;primaryKey" json:"id"`
	Code           string `gorm:"type:text;not null"   json:"code"`
	Name           string `gorm:"type:text;not null"   json:"name"`
	Instructor     string `gorm:"type:text;not null"   json:"instructor"`
	TotalHours     int    `gorm:"not null"             json:"total_hours"`
	UsedHours      int    `gorm:"not null"             json:"used_hours"`
	RemainingHours int    `gorm:"not null"             json:"remaining_hours"`
	Status         string `gorm:"type:text;not null"   json:"status"` // normal | warning | critical
	SortOrder      int    `gorm:"not null;default:0"   json:"-"`
	BaseModel

	// 关联
	Absences []AbsenceRecord `gorm:"foreignKey:CourseID;references:ID" json:"absences,omitempty"`
}

// TableName 指定表名
func (AttendanceCourse) TableName() string { return "attendance_courses" }

// AbsenceRecord 缺勤记录（表 absence_records）
type AbsenceRecord struct {
	ID       string `gorm:"type:text;primaryKey" json:"id"`
	CourseID string `gorm:"type:text;not null"   json:"course_id"`
	Date     string `gorm:"type:text;not null"   json:"date"` // YYYY-MM-DD
	Status   string `gorm:"type:text;not null"   json:"status"`
}

// TableName 指定表名
func (AbsenceRecord) TableName() string { return "absence_records" }

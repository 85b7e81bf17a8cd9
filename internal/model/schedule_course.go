package model

// ScheduleCourse 课程表条目（表 schedule_courses）
type ScheduleCourse struct {
	ID         string `gorm:"type:text;primaryKey"  json:"id"`
	Name       string `gorm:"type:text;not null"    json:"name"`
	Instructor string `gorm:"type:text;not null"    json:"instructor"`
	StartTime  string `gorm:"type:text;not null"    json:"start_time"` // "08:45"
	EndTime    string `gorm:"type:text;not null"    json:"end_time"`   // "09:30"
	Room       string `gorm:"type:text;not null"    json:"room"`
	DayOfWeek  int    `gorm:"not null"              json:"day_of_week"` // 0=周一 … 6=周日
	IsOnline   bool   `gorm:"not null;default:false" json:"is_online"`
	BaseModel
}

// TableName 指定表名
func (ScheduleCourse) TableName() string { return "schedule_courses" }

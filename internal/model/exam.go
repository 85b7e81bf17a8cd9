package model

// 考试类型
const (
	ExamTypeMidterm = "vize"
	ExamTypeFinal   = "final"
	ExamTypeMakeup  = "bütünleme"
	ExamTypeQuiz    = "quiz"
)

// Exam 考试（表 exams）
// 冲突标记不落库，由服务层按时间区间重叠实时计算
type Exam struct {
	ID              string `gorm:"type:text;primaryKey"  json:"id"`
	CourseCode      string `gorm:"type:text;not null"    json:"course_code"`
	CourseName      string `gorm:"type:text;not null"    json:"course_name"`
	ExamType        string `gorm:"type:text;not null"    json:"exam_type"`
	Date            string `gorm:"type:text;not null"    json:"date"`       // YYYY-MM-DD
	StartTime       string `gorm:"type:text;not null"    json:"start_time"` // HH:MM
	EndTime         string `gorm:"type:text;not null"    json:"end_time"`
	Building        string `gorm:"type:text;not null"    json:"building"`
	Room            string `gorm:"type:text;not null"    json:"room"`
	Floor           string `gorm:"type:text;not null"    json:"floor"`
	ReminderEnabled bool   `gorm:"not null;default:true" json:"reminder_enabled"`
	BaseModel
}

// TableName 指定表名
func (Exam) TableName() string { return "exams" }

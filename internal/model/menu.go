package model

// 投票取值
const (
	VoteLike    = "like"
	VoteDislike = "dislike"
)

// DailyMenu 每日菜单（表 daily_menus）
type DailyMenu struct {
	ID       string `gorm:"type:text;primaryKey" json:"id"`
	Date     string `gorm:"type:text;not null"   json:"date"` // YYYY-MM-DD
	DayName  string `gorm:"type:text;not null"   json:"day_name"`
	Likes    int    `gorm:"not null;default:0"   json:"likes"`
	Dislikes int    `gorm:"not null;default:0"   json:"dislikes"`
	UserVote string `gorm:"type:text;not null"   json:"user_vote"` // "" | like | dislike
	BaseModel

	// 关联
	Meals []Meal `gorm:"foreignKey:MenuID;references:ID" json:"meals,omitempty"`
}

// TableName 指定表名
func (DailyMenu) TableName() string { return "daily_menus" }

// Meal 菜品（表 meals）
type Meal struct {
	ID        string `gorm:"type:text;primaryKey" json:"id"`
	MenuID    string `gorm:"type:text;not null"   json:"menu_id"`
	Name      string `gorm:"type:text;not null"   json:"name"`
	Category  string `gorm:"type:text;not null"   json:"category"` // çorba | ana yemek | yardımcı | tatlı
	Calories  int    `gorm:"not null"             json:"calories"`
	SortOrder int    `gorm:"not null;default:0"   json:"-"`
}

// TableName 指定表名
func (Meal) TableName() string { return "meals" }

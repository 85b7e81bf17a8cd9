package dto

// ── 食堂模块 DTO ──

// MealResponse 菜品
type MealResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Calories int    `json:"calories"`
}

// MenuSummaryResponse 日期选择条中的一天
type MenuSummaryResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	DayName   string `json:"day_name"`
	ShortDay  string `json:"short_day"`
	DayNumber int    `json:"day_number"`
	IsToday   bool   `json:"is_today"`
}

// MenuDetailResponse 某日菜单详情
type MenuDetailResponse struct {
	ID             string         `json:"id"`
	Date           string         `json:"date"`
	DayName        string         `json:"day_name"`
	Meals          []MealResponse `json:"meals"`
	TotalCalories  int            `json:"total_calories"`
	Likes          int            `json:"likes"`
	Dislikes       int            `json:"dislikes"`
	LikePercentage int            `json:"like_percentage"`
	UserVote       *string        `json:"user_vote"` // 未投票为 null
	IsLunchTime    bool           `json:"is_lunch_time"`
	ServiceHours   string         `json:"service_hours"`
}

// VoteRequest 投票请求
type VoteRequest struct {
	Vote string `json:"vote" binding:"required,oneof=like dislike"`
}

// ToastResponse 短暂提示，过期后客户端自行隐藏
type ToastResponse struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	ExpiresAt string `json:"expires_at"`
}

// VoteResponse 投票结果
type VoteResponse struct {
	Menu  MenuDetailResponse `json:"menu"`
	Toast ToastResponse      `json:"toast"`
}

// DensityPoint 某一小时的拥挤度
type DensityPoint struct {
	Hour        int    `json:"hour"`
	Label       string `json:"label"` // "12:00"
	PercentFull int    `json:"percent_full"`
	Level       string `json:"level"`
}

// DensityResponse 当前拥挤度
type DensityResponse struct {
	Level       string         `json:"level"` // low | medium | high
	LevelLabel  string         `json:"level_label"`
	PercentFull int            `json:"percent_full"`
	LastUpdated string         `json:"last_updated"`
	Hourly      []DensityPoint `json:"hourly"`
}

// SatisfactionResponse 今日满意度
type SatisfactionResponse struct {
	Date       string `json:"date"`
	Percentage int    `json:"percentage"`
	TotalVotes int    `json:"total_votes"`
	Likes      int    `json:"likes"`
	Dislikes   int    `json:"dislikes"`
}
